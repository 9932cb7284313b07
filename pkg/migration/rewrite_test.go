//go:build unit

package migration

import (
	"testing"
	"time"

	"github.com/lerenn/issues-migrate/pkg/issue"
	"github.com/stretchr/testify/require"
)

func rewriteTestPlan(t *testing.T) *Plan {
	t.Helper()

	t1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	plan, err := BuildPlan([]issue.Issue{
		sourceIssue("orga/repo1", 5, t1),
		sourceIssue("orga/repo3", 2, t1.Add(time.Minute)),
	}, "orgb/repo2", 10, neverMigrated)
	require.NoError(t, err)

	return plan
}

func TestRewriteReferences(t *testing.T) {
	plan := rewriteTestPlan(t)

	tests := []struct {
		name               string
		body               string
		implicitRepository string
		expected           string
	}{
		{
			name:               "qualified mapped reference becomes bare destination",
			body:               "duplicate of orga/repo1#5",
			implicitRepository: "orga/repo3",
			expected:           "duplicate of #11",
		},
		{
			name:               "bare mapped reference resolves through containing repository",
			body:               "see #5 for details",
			implicitRepository: "orga/repo1",
			expected:           "see #11 for details",
		},
		{
			name:               "bare unmapped reference becomes qualified",
			body:               "see #7 for details",
			implicitRepository: "orga/repo1",
			expected:           "see orga/repo1#7 for details",
		},
		{
			name:               "qualified unmapped reference stays qualified",
			body:               "see other/place#7",
			implicitRepository: "orga/repo1",
			expected:           "see other/place#7",
		},
		{
			name:               "repository prefix matched case-insensitively",
			body:               "see OrgA/Repo1#5",
			implicitRepository: "orga/repo3",
			expected:           "see #11",
		},
		{
			name:               "cross-source reference lands on its destination",
			body:               "blocked by orga/repo3#2",
			implicitRepository: "orga/repo1",
			expected:           "blocked by #12",
		},
		{
			name:               "number with leading zero is not a reference",
			body:               "see #05",
			implicitRepository: "orga/repo1",
			expected:           "see #05",
		},
		{
			name:               "multiple references in one body",
			body:               "#5 duplicates orga/repo3#2 and #9",
			implicitRepository: "orga/repo1",
			expected:           "#11 duplicates #12 and orga/repo1#9",
		},
		{
			name:               "body without references untouched",
			body:               "no references here",
			implicitRepository: "orga/repo1",
			expected:           "no references here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteReferences(tt.body, tt.implicitRepository, plan)
			require.Equal(t, tt.expected, got)
		})
	}
}
