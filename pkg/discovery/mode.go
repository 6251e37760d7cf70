package discovery

// Mode identifies which discovery interaction is active. Exactly one mode
// is active at a time; transitions go through Engine.SetMode and friends so
// highlight and selection state can never straddle two modes.
type Mode int

const (
	// ModeNone is the idle state: the playlist's plain sequential
	// connections are shown, nothing is highlighted.
	ModeNone Mode = iota
	// ModeSimilar highlights the neighborhood of whichever track the user
	// clicks.
	ModeSimilar
	// ModePathfinding collects a start and end track, then computes a
	// journey between them.
	ModePathfinding
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSimilar:
		return "similar"
	case ModePathfinding:
		return "pathfinding"
	default:
		return "unknown"
	}
}

// State is the discovery state machine's data: the active mode plus, in
// pathfinding, the endpoint selection sub-state.
type State struct {
	Mode Mode

	// Pathfinding sub-state. StartTrack/EndTrack are empty until chosen.
	StartTrack    string
	EndTrack      string
	AwaitingStart bool
	AwaitingEnd   bool
}

// resetPathfinding clears endpoint selection without touching the mode.
func (s *State) resetPathfinding() {
	s.StartTrack = ""
	s.EndTrack = ""
	s.AwaitingStart = false
	s.AwaitingEnd = false
}

// ReadyToFindPath reports whether both journey endpoints are chosen.
func (s *State) ReadyToFindPath() bool {
	return s.Mode == ModePathfinding && s.StartTrack != "" && s.EndTrack != ""
}
