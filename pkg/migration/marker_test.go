//go:build unit

package migration

import (
	"testing"

	"github.com/lerenn/issues-migrate/pkg/issue"
	"github.com/stretchr/testify/assert"
)

func TestFormatMigratedMarker(t *testing.T) {
	marker := FormatMigratedMarker(issue.Ref{Repository: "orgb/repo2", Number: 42})

	assert.Equal(t,
		"*Migrated to orgb/repo2#42 by [lerenn/issues-migrate](https://github.com/lerenn/issues-migrate)*",
		marker)
}

func TestParseMigratedMarker(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected issue.Ref
		ok       bool
	}{
		{
			name:     "own marker",
			line:     FormatMigratedMarker(issue.Ref{Repository: "orgb/repo2", Number: 7}),
			expected: issue.Ref{Repository: "orgb/repo2", Number: 7},
			ok:       true,
		},
		{
			name:     "marker from another tool identity",
			line:     "*Migrated to OrgB/Repo2#12 by [some/other-tool](https://example.com/tool)*",
			expected: issue.Ref{Repository: "OrgB/Repo2", Number: 12},
			ok:       true,
		},
		{
			name: "leading text before marker",
			line: "note: *Migrated to orgb/repo2#7 by [x](https://y)*",
		},
		{
			name: "number with leading zero",
			line: "*Migrated to orgb/repo2#07 by [x](https://y)*",
		},
		{
			name: "different phrase",
			line: "*Moved to orgb/repo2#7 by [x](https://y)*",
		},
		{
			name: "missing repository",
			line: "*Migrated to #7 by [x](https://y)*",
		},
		{
			name: "ordinary body line",
			line: "This issue tracks the rollout.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := ParseMigratedMarker(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, ref)
			}
		})
	}
}

func TestDetectMigrated(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		target   string
		expected issue.Ref
		ok       bool
	}{
		{
			name:     "marker on first line",
			body:     "*Migrated to orgb/repo2#4 by [x](https://y)*\n\noriginal body",
			target:   "orgb/repo2",
			expected: issue.Ref{Repository: "orgb/repo2", Number: 4},
			ok:       true,
		},
		{
			name:     "marker on a later line",
			body:     "original body\n\n*Migrated to orgb/repo2#4 by [x](https://y)*",
			target:   "orgb/repo2",
			expected: issue.Ref{Repository: "orgb/repo2", Number: 4},
			ok:       true,
		},
		{
			name:     "repository compared case-insensitively",
			body:     "*Migrated to OrgB/Repo2#4 by [x](https://y)*",
			target:   "orgb/repo2",
			expected: issue.Ref{Repository: "orgb/repo2", Number: 4},
			ok:       true,
		},
		{
			name:   "marker pointing at another repository",
			body:   "*Migrated to other/place#4 by [x](https://y)*",
			target: "orgb/repo2",
		},
		{
			name:   "no marker at all",
			body:   "plain body mentioning orgb/repo2#4 in prose",
			target: "orgb/repo2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := DetectMigrated(tt.body, tt.target)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, ref)
			}
		})
	}
}
