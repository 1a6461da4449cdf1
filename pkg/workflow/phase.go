package workflow

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseExtracting Phase = "extracting"
	PhasePrompting  Phase = "prompting"
	PhaseGenerating Phase = "generating"
	PhaseApplying   Phase = "applying"
	PhaseComplete   Phase = "complete"
	PhaseError      Phase = "error"
)

var order = map[Phase]int{
	PhaseIdle:       0,
	PhaseExtracting: 1,
	PhasePrompting:  2,
	PhaseGenerating: 3,
	PhaseApplying:   4,
	PhaseComplete:   5,
}

func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseError
}

// CanAdvance reports whether next is a legal successor of p: any later phase
// of the success path, or error from a non-terminal phase.
func (p Phase) CanAdvance(next Phase) bool {
	if p.Terminal() {
		return false
	}

	if next == PhaseError {
		return true
	}

	return order[next] > order[p]
}

// State is the progress of one workflow execution.
type State struct {
	Phase Phase `json:"phase"`

	Content  string `json:"content,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	Error string `json:"error,omitempty"`
}
