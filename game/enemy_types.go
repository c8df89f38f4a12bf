package game

// Kind identifies an enemy type. The set is closed: behavior is dispatched
// by a switch over Kind, never by subtyping, and a spawned enemy's kind
// never changes.
type Kind int

const (
	KindBurwor Kind = iota
	KindGarwor
	KindThorwor
	KindWorluk
	KindWizard
)

func (k Kind) String() string {
	switch k {
	case KindBurwor:
		return "burwor"
	case KindGarwor:
		return "garwor"
	case KindThorwor:
		return "thorwor"
	case KindWorluk:
		return "worluk"
	case KindWizard:
		return "wizard"
	}
	return "unknown"
}

// KindConfig holds the per-kind tuning: movement speed in tiles per second,
// the score awarded for a kill, and the firing cooldown (zero means the
// kind never fires).
type KindConfig struct {
	Kind         Kind
	Speed        float64
	Points       int
	FireCooldown float64
}

// GetKindConfig returns the tuning for an enemy kind. Speeds are the
// original per-frame pixel speeds with the 0.3 enemy multiplier applied,
// converted to tiles per second.
func GetKindConfig(kind Kind) KindConfig {
	switch kind {
	case KindBurwor:
		return KindConfig{Kind: kind, Speed: 1.3, Points: 100}
	case KindGarwor:
		return KindConfig{Kind: kind, Speed: 1.3, Points: 200}
	case KindThorwor:
		return KindConfig{Kind: kind, Speed: 1.75, Points: 500, FireCooldown: 2.4}
	case KindWorluk:
		return KindConfig{Kind: kind, Speed: 2.2, Points: 1000}
	case KindWizard:
		// The Wizard repositions by teleporting; it chases at Burwor
		// pace between jumps and fires faster than the Thorwor.
		return KindConfig{Kind: kind, Speed: 1.3, Points: 2500, FireCooldown: 0.75}
	}
	return KindConfig{Kind: kind}
}

// Fires reports whether this kind ever shoots.
func (kc KindConfig) Fires() bool { return kc.FireCooldown > 0 }

// normalBatch is the fixed kind distribution of a normal-phase spawn wave.
var normalBatch = [6]Kind{
	KindBurwor, KindBurwor, KindBurwor,
	KindGarwor, KindGarwor,
	KindThorwor,
}
