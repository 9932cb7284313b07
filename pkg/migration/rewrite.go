package migration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lerenn/issues-migrate/pkg/issue"
)

// crossRefRe matches issue cross-reference tokens: an optional owner/repo
// prefix immediately followed by '#' and a number without leading zero.
// The owner/repo part is case-insensitive.
var crossRefRe = regexp.MustCompile(`(?i)(?:([A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+))?#([1-9][0-9]*)`)

// RewriteReferences rewrites issue cross-references inside a body so they
// stay internally consistent once the text moves to the target repository.
//
// A bare reference resolves against implicitRepository, the repository the
// containing issue originally belonged to. References to issues in the
// plan become bare references to their destination number, since every
// mapped issue ends up in the same target repository. References to
// anything else become fully qualified, so a formerly-implicit same-repo
// reference does not silently dangle after the move.
//
// A single substitution pass over the body; replaced text is never
// re-scanned. Only issue bodies are rewritten; comment bodies pass through
// the pipeline unchanged.
func RewriteReferences(body, implicitRepository string, plan *Plan) string {
	return crossRefRe.ReplaceAllStringFunc(body, func(token string) string {
		m := crossRefRe.FindStringSubmatch(token)

		repository := strings.ToLower(m[1])
		if repository == "" {
			repository = implicitRepository
		}

		number, err := strconv.Atoi(m[2])
		if err != nil {
			return token
		}

		if destination, ok := plan.Destination(issue.Ref{Repository: repository, Number: number}); ok {
			return fmt.Sprintf("#%d", destination.Number)
		}

		return issue.Ref{Repository: repository, Number: number}.String()
	})
}
