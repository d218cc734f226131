package seeder

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// Config holds seeder settings.
type Config struct {
	DataPath string `yaml:"data_path" env:"SEEDER_DATA_PATH" env-default:"./seed.yaml"`
	DryRun   bool   `yaml:"dry_run"   env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder settings from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	return &cfg, nil
}

// Dataset is the reference data an operator loads into a fresh deployment.
type Dataset struct {
	Departments []DepartmentSeed `yaml:"departments"`
	CrimeTypes  []CrimeTypeSeed  `yaml:"crime_types"`
	Teams       []TeamSeed       `yaml:"teams"`
}

type DepartmentSeed struct {
	Name      string  `yaml:"name"`
	Address   string  `yaml:"address"`
	Area      string  `yaml:"area"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Phone     string  `yaml:"phone"`
	Email     string  `yaml:"email"`
}

func (d DepartmentSeed) toDomain() domain.PoliceDepartment {
	return domain.PoliceDepartment{
		Name:     strings.TrimSpace(d.Name),
		Address:  d.Address,
		Area:     d.Area,
		Location: domain.Point{Lat: d.Latitude, Lon: d.Longitude},
		Phone:    d.Phone,
		Email:    d.Email,
	}
}

type CrimeTypeSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// TeamSeed names its department; the department must be in the same file or
// already exist.
type TeamSeed struct {
	Department string `yaml:"department"`
	Name       string `yaml:"name"`
}

// LoadDataset reads a YAML dataset file.
func LoadDataset(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder dataset: %w", err)
	}

	var ds Dataset
	if err := cleanenv.ReadConfig(path, &ds); err != nil {
		return nil, fmt.Errorf("seeder dataset: read %s: %w", path, err)
	}

	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("seeder dataset: %w", err)
	}
	return &ds, nil
}

// Validate checks required names, coordinates and duplicates.
func (ds *Dataset) Validate() error {
	var errs []domain.FieldError

	depts := make(map[string]bool, len(ds.Departments))
	for i, d := range ds.Departments {
		prefix := fmt.Sprintf("departments[%d].", i)
		name := strings.TrimSpace(d.Name)
		switch {
		case name == "":
			errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "required"})
		case depts[name]:
			errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "duplicate department " + name})
		}
		depts[name] = true
		errs = append(errs, domain.Point{Lat: d.Latitude, Lon: d.Longitude}.Validate(prefix)...)
		if d.Phone != "" && !domain.ValidPhone(d.Phone) {
			errs = append(errs, domain.FieldError{Field: prefix + "phone", Message: "invalid phone number"})
		}
	}

	types := make(map[string]bool, len(ds.CrimeTypes))
	for i, ct := range ds.CrimeTypes {
		field := fmt.Sprintf("crime_types[%d].name", i)
		name := strings.TrimSpace(ct.Name)
		switch {
		case name == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		case types[name]:
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate crime type " + name})
		}
		types[name] = true
	}

	for i, t := range ds.Teams {
		prefix := fmt.Sprintf("teams[%d].", i)
		if strings.TrimSpace(t.Department) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "department", Message: "required"})
		}
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "required"})
		}
	}

	return domain.NewValidationErrors(errs)
}
