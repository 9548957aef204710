package game

// EventKind identifies a notification raised by the session.
type EventKind int

const (
	EventHeartLost EventKind = iota // A life was lost to a miss or a hazard
	EventLevelUp                    // The score crossed into a new level
	EventGameOver                   // Lives reached zero
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHeartLost:
		return "heart_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification for the display surface.
// Level, SpeedBonus and Extreme are set for EventLevelUp; Score for
// EventGameOver.
type Event struct {
	Kind       EventKind
	Level      int
	SpeedBonus int // Percent faster than level 1
	Extreme    bool
	Score      int
}
