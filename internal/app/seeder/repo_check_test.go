package seeder_test

import (
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/crimetype"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/department"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/team"
	"github.com/heartmarshall/crimewatch-backend/internal/app/seeder"
)

// Compile-time checks: the postgres repos satisfy the seeder contracts.
var (
	_ seeder.DepartmentRepo = (*department.Repo)(nil)
	_ seeder.CrimeTypeRepo  = (*crimetype.Repo)(nil)
	_ seeder.TeamRepo       = (*team.Repo)(nil)
)
