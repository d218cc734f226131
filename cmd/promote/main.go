// Command promote changes a user's role by email address. It is used to
// bootstrap the first admin and to enrol police officers into a department
// and team.
//
// Usage:
//
//	promote --email=user@example.com --role=admin
//	promote --email=officer@example.com --role=police --department=Central --badge=A-17 --team=Alpha
//
// Reads the same configuration as the server (CONFIG_PATH or env).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/department"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/team"
	userrepo "github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/crimewatch-backend/internal/app"
	"github.com/heartmarshall/crimewatch-backend/internal/config"
	"github.com/heartmarshall/crimewatch-backend/internal/domain"
	usersvc "github.com/heartmarshall/crimewatch-backend/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "new role: citizen, police or admin")
	dept := flag.String("department", "", "department name (police only)")
	badge := flag.String("badge", "", "badge number (police only)")
	teamName := flag.String("team", "", "team name inside the department; created when missing")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|police|citizen] [--department=NAME] [--badge=NUMBER] [--team=NAME]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := usersvc.NewService(logger, userrepo.New(pool), department.New(pool), team.New(pool), postgres.NewTxManager(pool))

	input := usersvc.PromoteInput{
		Email:      *email,
		Role:       domain.UserRole(*role),
		Department: *dept,
		Team:       *teamName,
	}
	if *badge != "" {
		input.BadgeNumber = badge
	}

	user, err := svc.Promote(ctx, input)
	if err != nil {
		pool.Close()
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			for _, fe := range verr.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
			}
		case errors.Is(err, domain.ErrNotFound):
			fmt.Fprintf(os.Stderr, "No user or department found for %q.\n", *email)
		default:
			fmt.Fprintf(os.Stderr, "promote: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("User %q is now %s.\n", user.Email, user.Role)
}
