package branchcreator

// State is a step of a branch creation.
type State int

// Branch creation states. StateFailed is reachable from the first three and absorbing.
const (
	StateValidating State = iota
	StateResolving
	StateCreating
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateResolving:
		return "resolving"
	case StateCreating:
		return "creating"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
