package migration

import (
	"context"
	"fmt"

	"github.com/lerenn/issues-migrate/pkg/config"
	"github.com/lerenn/issues-migrate/pkg/issue"
	"github.com/lerenn/issues-migrate/pkg/tracker"
)

// preparedIssue is one issue fully resolved for creation: body rendered,
// milestone and labels mapped to their target-side objects, comments
// fetched. Nothing in it requires further network reads at creation time
// except the original-body refetch before patching.
type preparedIssue struct {
	record   Record
	source   issue.Issue
	settings config.RepoSettings

	title    string
	body     string
	assignee string

	// milestone and labels point into the shared known-object maps, so a
	// later creation pass can fill in tracker-assigned milestone numbers
	// once for every issue referencing them.
	milestone *issue.Milestone
	labels    []*issue.Label

	comments []issue.Comment
}

// importPlan is the resolved, confirmed-or-rejected unit of work: every
// mutation the run would apply, computed before the first write.
type importPlan struct {
	issues        []*preparedIssue
	skipped       []Record
	newMilestones []*issue.Milestone
	newLabels     []*issue.Label
	commentCount  int
}

// prepare resolves the mapping plan into an importPlan. It performs only
// reads: target milestones and labels are listed once, and comments are
// fetched per issue. Milestones dedupe by title and labels by name against
// both the target state and earlier issues of the same run, so each
// distinct object is created at most once.
func (m *realMigrator) prepare(ctx context.Context, plan *Plan) (*importPlan, error) {
	target, err := m.trackerFor(ctx, m.Config.Target)
	if err != nil {
		return nil, err
	}

	knownMilestones, err := m.fetchKnownMilestones(ctx, target)
	if err != nil {
		return nil, err
	}

	knownLabels, err := m.fetchKnownLabels(ctx, target)
	if err != nil {
		return nil, err
	}

	prep := &importPlan{}

	for i, record := range plan.Records() {
		if record.AlreadyMigrated {
			prep.skipped = append(prep.skipped, record)
			continue
		}

		iss := plan.Issue(i)

		settings, err := m.Config.ForRepository(iss.Repository)
		if err != nil {
			return nil, err
		}

		p := &preparedIssue{
			record:   record,
			source:   *iss,
			settings: settings,
			title:    issueTitle(iss),
		}

		if settings.ImportAssignee {
			p.assignee = iss.Assignee
		}

		if settings.ImportMilestone && iss.Milestone != nil {
			p.milestone = resolveMilestone(iss.Milestone, knownMilestones, prep)
		}

		if settings.ImportLabels {
			for _, label := range iss.Labels {
				p.labels = append(p.labels, resolveLabel(label, settings.NormalizeLabels, knownLabels, prep))
			}
		}

		if settings.ImportComments && iss.Comments > 0 {
			source, err := m.trackerFor(ctx, iss.Repository)
			if err != nil {
				return nil, err
			}
			comments, err := source.ListComments(ctx, iss.Number)
			if err != nil {
				return nil, err
			}
			p.comments = comments
			prep.commentCount += len(comments)
		}

		body, err := m.renderBody(iss, plan, settings)
		if err != nil {
			return nil, err
		}
		p.body = body

		prep.issues = append(prep.issues, p)
	}

	return prep, nil
}

// execute applies the import plan: milestones first, then labels, then
// issues in plan order with their original-issue patch and comments. The
// first error aborts the run; nothing already created is rolled back.
func (m *realMigrator) execute(ctx context.Context, prep *importPlan) error {
	target, err := m.trackerFor(ctx, m.Config.Target)
	if err != nil {
		return err
	}

	for _, milestone := range prep.newMilestones {
		created, err := target.CreateMilestone(ctx, *milestone)
		if err != nil {
			return err
		}
		// The tracker assigns the number; propagate it to every prepared
		// issue holding this milestone pointer.
		milestone.Number = created.Number
		m.Logger.Logf("Successfully created milestone '%s'", milestone.Title)
	}

	for _, label := range prep.newLabels {
		if _, err := target.CreateLabel(ctx, *label); err != nil {
			return err
		}
		m.Logger.Logf("Successfully created label '%s'", label.Name)
	}

	for _, p := range prep.issues {
		if err := m.importIssue(ctx, target, p); err != nil {
			return err
		}
	}

	m.Logger.Logf("Migration complete: created %d issues in %s.", len(prep.issues), m.Config.Target)
	return nil
}

// importIssue creates one issue in the target, patches the original with
// the migrated marker, then copies the comments over.
func (m *realMigrator) importIssue(ctx context.Context, target tracker.Tracker, p *preparedIssue) error {
	payload := tracker.CreateIssuePayload{
		Title:    p.title,
		Body:     p.body,
		Assignee: p.assignee,
	}
	if p.milestone != nil {
		number := p.milestone.Number
		payload.Milestone = &number
	}
	for _, label := range p.labels {
		payload.Labels = append(payload.Labels, label.Name)
	}

	created, err := target.CreateIssue(ctx, payload)
	if err != nil {
		return err
	}
	m.Logger.Logf("Successfully created issue '%s'", p.title)

	if created.Number != p.record.Destination.Number {
		m.Logger.Logf("Warning: %s was created as #%d instead of the predicted #%d; rewritten cross-references may be stale",
			p.record.Source, created.Number, p.record.Destination.Number)
	}

	if err := m.patchOriginal(ctx, p, created.Ref()); err != nil {
		return err
	}

	for i := range p.comments {
		body, err := m.renderer.RenderComment(&p.comments[i])
		if err != nil {
			return err
		}
		if _, err := target.CreateComment(ctx, created.Number, body); err != nil {
			return err
		}
	}
	if len(p.comments) > 0 {
		m.Logger.Logf(" > Successfully added %d comments.", len(p.comments))
	}

	return nil
}

// patchOriginal prepends the migrated marker to the original issue body
// and optionally closes it. The body is refetched right before patching so
// edits made between the initial fetch and the write are not clobbered.
func (m *realMigrator) patchOriginal(ctx context.Context, p *preparedIssue, destination issue.Ref) error {
	var patch tracker.IssuePatch

	source, err := m.trackerFor(ctx, p.source.Repository)
	if err != nil {
		return err
	}

	if p.settings.CreateBackrefs {
		fresh, err := source.GetIssue(ctx, p.source.Number)
		if err != nil {
			return err
		}
		body := FormatMigratedMarker(destination) + "\n\n" + fresh.Body
		patch.Body = &body
	}

	if p.settings.CloseIssues && !p.source.Closed() {
		state := "closed"
		patch.State = &state
	}

	if patch.Empty() {
		return nil
	}

	if _, err := source.PatchIssue(ctx, p.source.Number, patch); err != nil {
		return fmt.Errorf("failed to update original issue %s: %w", p.record.Source, err)
	}
	m.Logger.Logf("Updated original issue with mapping %s -> %s", p.record.Source, destination)

	return nil
}

// renderBody rewrites cross-references and, unless back-references are
// disabled for the source repository, wraps the result in the configured
// issue or pull-request template.
func (m *realMigrator) renderBody(iss *issue.Issue, plan *Plan, settings config.RepoSettings) (string, error) {
	rewritten := RewriteReferences(iss.Body, iss.Repository, plan)
	if !settings.CreateBackrefs {
		return rewritten, nil
	}
	return m.renderer.RenderIssue(iss, rewritten)
}

func (m *realMigrator) fetchKnownMilestones(ctx context.Context, target tracker.Tracker) (map[string]*issue.Milestone, error) {
	milestones, err := target.ListOpenMilestones(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]*issue.Milestone, len(milestones))
	for i := range milestones {
		known[milestones[i].Title] = &milestones[i]
	}
	return known, nil
}

func (m *realMigrator) fetchKnownLabels(ctx context.Context, target tracker.Tracker) (map[string]*issue.Label, error) {
	labels, err := target.ListLabels(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]*issue.Label, len(labels))
	for i := range labels {
		known[labels[i].Name] = &labels[i]
	}
	return known, nil
}

// resolveMilestone returns the target-side milestone for a source one,
// matching by title. An unknown title schedules a creation and becomes
// known for the rest of the run.
func resolveMilestone(source *issue.Milestone, known map[string]*issue.Milestone, prep *importPlan) *issue.Milestone {
	if milestone, ok := known[source.Title]; ok {
		return milestone
	}

	milestone := *source
	milestone.Number = 0
	known[milestone.Title] = &milestone
	prep.newMilestones = append(prep.newMilestones, &milestone)
	return &milestone
}

// resolveLabel returns the target-side label for a source one, matching by
// name, optionally normalized first.
func resolveLabel(source issue.Label, normalize bool, known map[string]*issue.Label, prep *importPlan) *issue.Label {
	name := source.Name
	if normalize {
		name = issue.NormalizeLabelName(name)
	}

	if label, ok := known[name]; ok {
		return label
	}

	label := source
	label.Name = name
	known[name] = &label
	prep.newLabels = append(prep.newLabels, &label)
	return &label
}

// issueTitle prefixes closed source issues, since the migrated copy is
// created open regardless of the original state.
func issueTitle(iss *issue.Issue) string {
	if iss.Closed() {
		return "[CLOSED] " + iss.Title
	}
	return iss.Title
}
