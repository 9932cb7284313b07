//go:build unit

package migration

import (
	"testing"
	"time"

	"github.com/lerenn/issues-migrate/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverMigrated(_ *issue.Issue) (issue.Ref, bool) {
	return issue.Ref{}, false
}

func sourceIssue(repo string, number int, createdAt time.Time) issue.Issue {
	return issue.Issue{
		Repository: repo,
		Number:     number,
		Title:      "issue",
		CreatedAt:  createdAt,
	}
}

func TestBuildPlan_ChronologicalMergeAcrossSources(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	// Fetch order has repo1 first, but repo3's issue is older.
	issues := []issue.Issue{
		sourceIssue("orga/repo1", 5, t2),
		sourceIssue("orga/repo3", 9, t1),
	}

	plan, err := BuildPlan(issues, "orgb/repo2", 0, neverMigrated)
	require.NoError(t, err)

	records := plan.Records()
	require.Len(t, records, 2)
	assert.Equal(t, issue.Ref{Repository: "orga/repo3", Number: 9}, records[0].Source)
	assert.Equal(t, issue.Ref{Repository: "orgb/repo2", Number: 1}, records[0].Destination)
	assert.Equal(t, issue.Ref{Repository: "orga/repo1", Number: 5}, records[1].Source)
	assert.Equal(t, issue.Ref{Repository: "orgb/repo2", Number: 2}, records[1].Destination)
}

func TestBuildPlan_NumberingStartsAfterExistingTargetIssues(t *testing.T) {
	issues := []issue.Issue{
		sourceIssue("orga/repo1", 1, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
	}

	plan, err := BuildPlan(issues, "orgb/repo2", 41, neverMigrated)
	require.NoError(t, err)

	assert.Equal(t, issue.Ref{Repository: "orgb/repo2", Number: 42}, plan.Records()[0].Destination)
}

func TestBuildPlan_MigratedIssuesConsumeNoNumber(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	issues := []issue.Issue{
		sourceIssue("orga/repo1", 1, t1),
		sourceIssue("orga/repo1", 2, t1.Add(time.Minute)),
		sourceIssue("orga/repo1", 3, t1.Add(2*time.Minute)),
	}

	detect := func(iss *issue.Issue) (issue.Ref, bool) {
		if iss.Number == 2 {
			return issue.Ref{Repository: "orgb/repo2", Number: 1}, true
		}
		return issue.Ref{}, false
	}

	plan, err := BuildPlan(issues, "orgb/repo2", 1, detect)
	require.NoError(t, err)

	records := plan.Records()
	require.Len(t, records, 3)

	// New numbers stay contiguous around the skipped issue.
	assert.Equal(t, issue.Ref{Repository: "orgb/repo2", Number: 2}, records[0].Destination)
	assert.False(t, records[0].AlreadyMigrated)
	assert.Equal(t, issue.Ref{Repository: "orgb/repo2", Number: 1}, records[1].Destination)
	assert.True(t, records[1].AlreadyMigrated)
	assert.Equal(t, issue.Ref{Repository: "orgb/repo2", Number: 3}, records[2].Destination)
	assert.False(t, records[2].AlreadyMigrated)

	assert.Equal(t, 2, plan.NewIssueCount())
}

func TestBuildPlan_IdenticalTimestampsKeepInputOrder(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	issues := []issue.Issue{
		sourceIssue("orga/repo1", 7, t1),
		sourceIssue("orga/repo3", 2, t1),
	}

	plan, err := BuildPlan(issues, "orgb/repo2", 0, neverMigrated)
	require.NoError(t, err)

	records := plan.Records()
	assert.Equal(t, "orga/repo1", records[0].Source.Repository)
	assert.Equal(t, "orga/repo3", records[1].Source.Repository)
}

func TestBuildPlan_DestinationLookup(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	issues := []issue.Issue{
		sourceIssue("orga/repo1", 5, t1),
	}

	plan, err := BuildPlan(issues, "orgb/repo2", 0, neverMigrated)
	require.NoError(t, err)

	destination, ok := plan.Destination(issue.Ref{Repository: "orga/repo1", Number: 5})
	assert.True(t, ok)
	assert.Equal(t, issue.Ref{Repository: "orgb/repo2", Number: 1}, destination)

	_, ok = plan.Destination(issue.Ref{Repository: "orga/repo1", Number: 6})
	assert.False(t, ok)
}

func TestBuildPlan_MissingCreationTime(t *testing.T) {
	issues := []issue.Issue{
		{Repository: "orga/repo1", Number: 5},
	}

	_, err := BuildPlan(issues, "orgb/repo2", 0, neverMigrated)
	assert.ErrorIs(t, err, ErrMissingCreatedAt)
}

func TestBuildPlan_InputSliceNotReordered(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	issues := []issue.Issue{
		sourceIssue("orga/repo1", 2, t1.Add(time.Hour)),
		sourceIssue("orga/repo1", 1, t1),
	}

	_, err := BuildPlan(issues, "orgb/repo2", 0, neverMigrated)
	require.NoError(t, err)

	assert.Equal(t, 2, issues[0].Number)
	assert.Equal(t, 1, issues[1].Number)
}
