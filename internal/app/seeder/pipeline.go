package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crimewatch-backend/internal/domain"
)

// allPhases defines the canonical execution order. Teams depend on
// departments, so departments always run first when both are selected.
var allPhases = []string{"departments", "crime_types", "teams"}

// Phases returns the phase names in execution order.
func Phases() []string {
	return append([]string(nil), allPhases...)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Upserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Repos bundles the repositories the pipeline writes to.
type Repos struct {
	Departments DepartmentRepo
	CrimeTypes  CrimeTypeRepo
	Teams       TeamRepo
}

// Pipeline loads a Dataset phase by phase.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	data    *Dataset
	cfg     Config
	results map[string]PhaseResult

	// department name -> id, filled by the departments phase.
	deptIDs map[string]uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, data *Dataset, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repos:   repos,
		data:    data,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
		deptIDs: make(map[string]uuid.UUID),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run. Unknown phase names are rejected before anything is written.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "departments":
			result = p.runDepartments(ctx)
		case "crime_types":
			result = p.runCrimeTypes(ctx)
		case "teams":
			result = p.runTeams(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("upserted", result.Upserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)), slog.Bool("dry_run", p.cfg.DryRun))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		ph = strings.TrimSpace(ph)
		if !isKnownPhase(ph) {
			return nil, fmt.Errorf("seeder: unknown phase %q (known: %s)", ph, strings.Join(allPhases, ", "))
		}
		filter[ph] = true
	}

	var filtered []string
	for _, ph := range allPhases {
		if filter[ph] {
			filtered = append(filtered, ph)
		}
	}
	return filtered, nil
}

func isKnownPhase(name string) bool {
	for _, ph := range allPhases {
		if ph == name {
			return true
		}
	}
	return false
}

func (p *Pipeline) runDepartments(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.data.Departments)}
	}

	var result PhaseResult
	for _, d := range p.data.Departments {
		got, err := p.repos.Departments.Upsert(ctx, d.toDomain())
		if err != nil {
			result.Errors++
			p.log.Warn("department upsert failed",
				slog.String("department", d.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		p.deptIDs[got.Name] = got.ID
		result.Upserted++
	}
	return result
}

func (p *Pipeline) runCrimeTypes(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.data.CrimeTypes)}
	}

	var result PhaseResult
	for _, ct := range p.data.CrimeTypes {
		if _, err := p.repos.CrimeTypes.Upsert(ctx, strings.TrimSpace(ct.Name), ct.Description); err != nil {
			result.Errors++
			p.log.Warn("crime type upsert failed",
				slog.String("crime_type", ct.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Upserted++
	}
	return result
}

func (p *Pipeline) runTeams(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.data.Teams)}
	}

	var result PhaseResult
	for _, t := range p.data.Teams {
		deptID, err := p.departmentID(ctx, strings.TrimSpace(t.Department))
		if err != nil {
			result.Errors++
			p.log.Warn("team department lookup failed",
				slog.String("team", t.Name),
				slog.String("department", t.Department),
				slog.String("error", err.Error()),
			)
			continue
		}

		if _, err := p.repos.Teams.Upsert(ctx, deptID, strings.TrimSpace(t.Name)); err != nil {
			result.Errors++
			p.log.Warn("team upsert failed",
				slog.String("team", t.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Upserted++
	}
	return result
}

// departmentID resolves a department name, first from the departments phase
// and then from the database.
func (p *Pipeline) departmentID(ctx context.Context, name string) (uuid.UUID, error) {
	if id, ok := p.deptIDs[name]; ok {
		return id, nil
	}

	d, err := p.repos.Departments.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("department %q does not exist", name)
		}
		return uuid.Nil, err
	}
	p.deptIDs[d.Name] = d.ID
	return d.ID, nil
}
