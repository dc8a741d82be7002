package model

// StateKind enumerates the presentation states.
type StateKind int

const (
	StateIdle StateKind = iota
	StatePlatformChosen
	StateDownloading
	StateCompleted
	StateFailed
)

// String returns the string representation of StateKind
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "Idle"
	case StatePlatformChosen:
		return "PlatformChosen"
	case StateDownloading:
		return "Downloading"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// UIState is the presentation state. Platform is set from PlatformChosen on
// and survives Completed/Failed so the user can download again right away.
// Message is only meaningful for Failed.
type UIState struct {
	Kind     StateKind
	Platform Platform
	Message  string
}

// IdleState returns the initial state.
func IdleState() UIState {
	return UIState{Kind: StateIdle}
}

// IsInteractive reports whether the download trigger may be pressed.
func (s UIState) IsInteractive() bool {
	return s.Kind == StatePlatformChosen
}

// String returns the string representation of UIState
func (s UIState) String() string {
	switch s.Kind {
	case StatePlatformChosen:
		return s.Kind.String() + "(" + s.Platform.Label() + ")"
	case StateFailed:
		return s.Kind.String() + "(" + s.Message + ")"
	default:
		return s.Kind.String()
	}
}
