package migration

// Phase names the stage a run is currently in. It exists purely for
// progress reporting; it is never consulted as a control mechanism and
// carries no resumption logic.
type Phase int

// Run phases, in execution order.
const (
	PhaseInitializing Phase = iota
	PhaseFetchingIssues
	PhaseGenerating
	PhaseConfirmation
	PhaseImporting
	PhaseComplete
)

// String returns the phase name used in progress output.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseFetchingIssues:
		return "fetching-issues"
	case PhaseGenerating:
		return "generating"
	case PhaseConfirmation:
		return "import-confirmation"
	case PhaseImporting:
		return "importing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
