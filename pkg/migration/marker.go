package migration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lerenn/issues-migrate/pkg/issue"
)

// Tool identity embedded in migrated markers. The marker text is a
// compatibility surface: prior runs are detected by parsing it back out of
// issue bodies, so its shape must not change.
const (
	ToolIdentity = "lerenn/issues-migrate"
	ToolURL      = "https://github.com/lerenn/issues-migrate"
)

// markerRe matches a single migrated-marker line:
//
//	*Migrated to <owner>/<repo>#<number> by [<tool-identity>](<tool-url>)*
//
// The marker phrase is case-sensitive; the repository part is compared
// case-insensitively by the caller.
var markerRe = regexp.MustCompile(
	`^\*Migrated to ([A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+)#([1-9][0-9]*) by \[[^\]]+\]\([^)]+\)\*`)

// FormatMigratedMarker renders the back-reference line prepended to an
// original issue body after migration.
func FormatMigratedMarker(destination issue.Ref) string {
	return fmt.Sprintf("*Migrated to %s by [%s](%s)*", destination, ToolIdentity, ToolURL)
}

// ParseMigratedMarker parses one line as a migrated marker. It is the only
// place the marker grammar is interpreted.
func ParseMigratedMarker(line string) (issue.Ref, bool) {
	m := markerRe.FindStringSubmatch(line)
	if m == nil {
		return issue.Ref{}, false
	}

	number, err := strconv.Atoi(m[2])
	if err != nil {
		return issue.Ref{}, false
	}

	return issue.Ref{Repository: m[1], Number: number}, true
}

// DetectMigrated scans an issue body line by line for a migrated marker
// referencing the configured target repository. A marker referencing any
// other repository does not count: the issue may have been migrated
// elsewhere, but not to this target.
func DetectMigrated(body, target string) (issue.Ref, bool) {
	for _, line := range strings.Split(body, "\n") {
		ref, ok := ParseMigratedMarker(line)
		if !ok {
			continue
		}
		if strings.ToLower(ref.Repository) == target {
			return issue.Ref{Repository: target, Number: ref.Number}, true
		}
	}
	return issue.Ref{}, false
}
