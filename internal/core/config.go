package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Surface width in front-end units (cells or pixels)
	ScreenH  int // Surface height in front-end units
	TickRate int // Overrides the game's own tick rates when > 0
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0, // 0 means use the game's per-phase rates
	}
}

// Phase is the screen a session is on. Sessions only move forward.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhasePlaying
	PhaseTerminated
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// EndReason records why a session terminated.
type EndReason int

const (
	EndNone           EndReason = iota
	EndQuit                     // The player asked to leave
	EndEnemyCollision           // An enemy reached the player
)

// String returns a short name used in logs and recordings.
func (r EndReason) String() string {
	switch r {
	case EndQuit:
		return "quit"
	case EndEnemyCollision:
		return "game_over"
	default:
		return "none"
	}
}

// ParseEndReason is the inverse of EndReason.String.
func ParseEndReason(s string) EndReason {
	switch s {
	case "quit":
		return EndQuit
	case "game_over":
		return EndEnemyCollision
	default:
		return EndNone
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int       // Current score
	Phase       Phase     // Current screen
	EndReason   EndReason // Set once Phase is PhaseTerminated
	PlayFrames  int       // Frames simulated in PhasePlaying
	ShotsFired  int
	EnemiesDown int
}

// Terminated reports whether the session has ended.
func (s GameState) Terminated() bool {
	return s.Phase == PhaseTerminated
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
