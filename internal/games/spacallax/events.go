package spacallax

import "github.com/vovakirdan/spacallax/internal/core"

// EventKind classifies a frame event.
type EventKind int

const (
	EventShot        EventKind = iota // player fired
	EventShotBlocked                  // fire pressed during the shot lockout
	EventEnemyShot                    // an enemy fired
	EventKill                         // player projectile destroyed an enemy
	EventPlayerHit                    // player lost one health
	EventPickup                       // player collected a power-up
	EventGameOver                     // health reached zero
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventShotBlocked:
		return "shot-blocked"
	case EventEnemyShot:
		return "enemy-shot"
	case EventKill:
		return "kill"
	case EventPlayerHit:
		return "player-hit"
	case EventPickup:
		return "pickup"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is something that happened during one Update. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind
	Pos  core.Vec2

	Points  int         // EventKill: points awarded, multiplier applied
	PowerUp PowerUpKind // EventPickup
	Score   int         // EventGameOver: final score

	// EventPlayerHit: screen shake request
	ShakeMagnitude float64
	ShakeDuration  float64
}
