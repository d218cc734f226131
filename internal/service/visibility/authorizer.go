// Package visibility decides which reports and alerts a requester may see
// and which actions their role permits.
package visibility

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Action is a role-gated operation.
type Action string

const (
	ActionFileReport   Action = "report:create"
	ActionEditReport   Action = "report:update"
	ActionChangeStatus Action = "report:update_status"
	ActionAssignTeam   Action = "report:assign"
	ActionReadStats    Action = "stats:read"
	ActionHandleAlert  Action = "alert:handle"
)

const rbacModel = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.act == p.act
`

// defaultRules grants actions to roles. Ownership and area checks happen in
// the role policies on top of these grants.
var defaultRules = [][]string{
	{string(domain.UserRoleCitizen), string(ActionFileReport)},
	{string(domain.UserRoleCitizen), string(ActionEditReport)},

	{string(domain.UserRolePolice), string(ActionEditReport)},
	{string(domain.UserRolePolice), string(ActionChangeStatus)},
	{string(domain.UserRolePolice), string(ActionAssignTeam)},
	{string(domain.UserRolePolice), string(ActionReadStats)},
	{string(domain.UserRolePolice), string(ActionHandleAlert)},

	{string(domain.UserRoleAdmin), string(ActionHandleAlert)},
}

// Authorizer evaluates role → action rules with casbin.
type Authorizer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewAuthorizer builds an authorizer loaded with the built-in rules.
func NewAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parse rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	if _, err := e.AddPolicies(defaultRules); err != nil {
		return nil, fmt.Errorf("load rbac rules: %w", err)
	}

	return &Authorizer{enforcer: e}, nil
}

// Allowed reports whether role may perform act. Evaluation errors deny.
func (a *Authorizer) Allowed(role domain.UserRole, act Action) bool {
	ok, err := a.enforcer.Enforce(string(role), string(act))
	return err == nil && ok
}
