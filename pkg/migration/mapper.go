package migration

import (
	"fmt"
	"sort"

	"github.com/lerenn/issues-migrate/pkg/issue"
)

// Record maps one source issue to its destination identity.
type Record struct {
	Source      issue.Ref
	Destination issue.Ref

	// AlreadyMigrated marks issues detected as migrated by a prior run;
	// they are skipped by the import engine and consume no new number.
	AlreadyMigrated bool
}

// MigratedDetector reports whether an issue was already migrated to the
// target, and where.
type MigratedDetector func(iss *issue.Issue) (issue.Ref, bool)

// Plan is the ordered outcome of the mapping pass: one record per source
// issue, in chronological creation order across all merged sources. This
// order is also the creation order used by the import engine, so that
// destination numbers increase in chronological-of-origin order.
type Plan struct {
	records []Record
	issues  []issue.Issue
	index   map[issue.Ref]int
}

// Records returns the plan records in processing order.
func (p *Plan) Records() []Record {
	return p.records
}

// Issue returns the source issue behind the record at index i.
func (p *Plan) Issue(i int) *issue.Issue {
	return &p.issues[i]
}

// Destination looks up the destination identity assigned to a source issue.
func (p *Plan) Destination(source issue.Ref) (issue.Ref, bool) {
	i, ok := p.index[source]
	if !ok {
		return issue.Ref{}, false
	}
	return p.records[i].Destination, true
}

// NewIssueCount returns the number of issues that will actually be created.
func (p *Plan) NewIssueCount() int {
	count := 0
	for _, record := range p.records {
		if !record.AlreadyMigrated {
			count++
		}
	}
	return count
}

// BuildPlan computes the migration plan for a set of source issues against
// a snapshot of the target state.
//
// Issues are stable-sorted ascending by creation time, so that issues with
// identical timestamps keep their input order (configured source order
// first, then fetch order). Issues the detector recognizes as already
// migrated keep the destination extracted from their marker; every other
// issue is assigned the next predicted target number, starting at
// targetIssueCount+1. The prediction holds only if no other actor creates
// issues in the target between the snapshot and the creation pass.
func BuildPlan(sourceIssues []issue.Issue, target string, targetIssueCount int, detect MigratedDetector) (*Plan, error) {
	sorted := make([]issue.Issue, len(sourceIssues))
	copy(sorted, sourceIssues)

	for i := range sorted {
		if sorted[i].CreatedAt.IsZero() {
			return nil, fmt.Errorf("%w: %s", ErrMissingCreatedAt, sorted[i].Ref())
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	plan := &Plan{
		issues: sorted,
		index:  make(map[issue.Ref]int, len(sorted)),
	}

	nextNumber := targetIssueCount + 1
	for i := range sorted {
		record := Record{Source: sorted[i].Ref()}

		if destination, ok := detect(&sorted[i]); ok {
			record.Destination = destination
			record.AlreadyMigrated = true
		} else {
			record.Destination = issue.Ref{Repository: target, Number: nextNumber}
			nextNumber++
		}

		plan.index[record.Source] = i
		plan.records = append(plan.records, record)
	}

	return plan, nil
}
