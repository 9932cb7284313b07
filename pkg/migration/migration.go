// Package migration implements the core of issues-migrate: the migration
// mapper, the cross-reference rewriter and the import engine.
package migration

import (
	"context"
	"fmt"

	"github.com/lerenn/issues-migrate/internal/base"
	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/lerenn/issues-migrate/pkg/issue"
	"github.com/lerenn/issues-migrate/pkg/logger"
	"github.com/lerenn/issues-migrate/pkg/prompt"
	"github.com/lerenn/issues-migrate/pkg/template"
	"github.com/lerenn/issues-migrate/pkg/tracker"
)

// Migrator drives a full migration run.
type Migrator interface {
	// Run executes the whole pipeline: fetch, plan, resolve, confirm,
	// create. Everything before the confirmation gate is read-only.
	Run(ctx context.Context) error

	// SetLogger sets the logger for this Migrator instance.
	SetLogger(l logger.Logger)
}

// NewMigratorParams contains parameters for creating a new Migrator.
type NewMigratorParams struct {
	Config          *config.Resolved
	Logger          logger.Logger
	Prompt          prompt.Prompter
	Renderer        *template.Renderer
	TrackerProvider tracker.Provider
	Verbose         bool
}

type realMigrator struct {
	*base.Base
	renderer *template.Renderer
	provider tracker.Provider
	trackers map[string]tracker.Tracker
	phase    Phase
}

// NewMigrator creates a new Migrator instance.
func NewMigrator(params NewMigratorParams) Migrator {
	loggerInstance := params.Logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNoopLogger()
	}

	return &realMigrator{
		Base: base.NewBase(base.NewBaseParams{
			Config:  params.Config,
			Logger:  loggerInstance,
			Prompt:  params.Prompt,
			Verbose: params.Verbose,
		}),
		renderer: params.Renderer,
		provider: params.TrackerProvider,
		trackers: make(map[string]tracker.Tracker),
		phase:    PhaseInitializing,
	}
}

// SetLogger sets the logger for this Migrator instance.
func (m *realMigrator) SetLogger(l logger.Logger) {
	m.Logger = l
}

// Run executes the whole pipeline. The run is fully sequential: no
// operation starts before the previous one completes, and any failure is
// terminal. Already-applied creations are not rolled back; recovery is a
// rerun relying on already-migrated detection.
func (m *realMigrator) Run(ctx context.Context) error {
	m.setPhase(PhaseFetchingIssues)

	sourceIssues, err := m.fetchSourceIssues(ctx)
	if err != nil {
		return err
	}

	targetTracker, err := m.trackerFor(ctx, m.Config.Target)
	if err != nil {
		return err
	}

	// The tracker offers no plain issue count, so snapshotting the
	// target means listing every issue it has.
	targetIssues, err := targetTracker.ListIssues(ctx, tracker.StateAll)
	if err != nil {
		return err
	}
	m.VerbosePrint("Target %s currently has %d issues", m.Config.Target, len(targetIssues))

	plan, err := BuildPlan(sourceIssues, m.Config.Target, len(targetIssues), func(iss *issue.Issue) (issue.Ref, bool) {
		return DetectMigrated(iss.Body, m.Config.Target)
	})
	if err != nil {
		return err
	}

	m.setPhase(PhaseGenerating)

	prep, err := m.prepare(ctx, plan)
	if err != nil {
		return err
	}

	m.setPhase(PhaseConfirmation)

	m.Logger.Logf("%s", renderSummary(m.Config.Target, prep))
	confirmed, err := m.Prompt.PromptForConfirmation("Are you sure you wish to continue?", true)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		m.Logger.Logf("Aborted, no changes were made.")
		return nil
	}

	m.setPhase(PhaseImporting)

	if err := m.execute(ctx, prep); err != nil {
		return err
	}

	m.setPhase(PhaseComplete)
	return nil
}

// setPhase records the new run phase. Phases drive progress reporting
// only, never control flow.
func (m *realMigrator) setPhase(phase Phase) {
	m.phase = phase
	m.VerbosePrint("Run phase: %s", phase)
}

// trackerFor returns the tracker bound to a repository, building it on
// first use.
func (m *realMigrator) trackerFor(ctx context.Context, repo string) (tracker.Tracker, error) {
	if t, ok := m.trackers[repo]; ok {
		return t, nil
	}

	settings, err := m.Config.ForRepository(repo)
	if err != nil {
		return nil, err
	}

	t, err := m.provider(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to build tracker for %s: %w", repo, err)
	}

	m.trackers[repo] = t
	return t, nil
}
