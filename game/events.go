package game

// EventType identifies a discrete simulation event. Events are emitted
// during a tick and handed to the presentation adapter with the snapshot,
// which maps them to audio and visual effects.
type EventType int

const (
	EventEnemyKilled EventType = iota
	EventPlayerHit
	EventWorlukEscaped
	EventWizardEscaped
	EventWizardDefeated
	EventWizardTeleported
	EventPhaseChanged
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventEnemyKilled:
		return "enemy-killed"
	case EventPlayerHit:
		return "player-hit"
	case EventWorlukEscaped:
		return "worluk-escaped"
	case EventWizardEscaped:
		return "wizard-escaped"
	case EventWizardDefeated:
		return "wizard-defeated"
	case EventWizardTeleported:
		return "wizard-teleported"
	case EventPhaseChanged:
		return "phase-changed"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is one discrete occurrence. Kind and Points are set for
// enemy-killed, From and To for phase-changed.
type Event struct {
	Type   EventType
	Kind   Kind
	Points int
	From   Phase
	To     Phase
}
