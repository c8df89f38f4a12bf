package game

// Enemy is an autonomous maze dweller. Kind-specific fields are only
// meaningful for the kinds that use them: invisibility for the Garwor,
// escape intent for the Worluk (and Wizard when escape is enabled),
// teleportation for the Wizard.
type Enemy struct {
	Entity
	Kind Kind

	// FireTimer counts down to the next allowed shot.
	FireTimer float64

	// Visible is false while a Garwor is cloaked. Cloaking affects only
	// rendering and radar detection, never collision or targeting.
	Visible bool
	// InvisTimer counts down to the next visibility toggle.
	InvisTimer float64

	// EscapeIntent is set once a fleeing enemy starts heading for a
	// tunnel portal. EscapeDelay counts down to that moment.
	EscapeIntent bool
	EscapeDelay  float64

	// TeleportTimer counts down to the Wizard's next jump.
	TeleportTimer float64
}

// newEnemy creates an enemy of the given kind centered on a spawn tile.
func newEnemy(cfg *Config, kind Kind, tx, ty int) *Enemy {
	e := &Enemy{
		Entity: Entity{
			X:      tileCenter(tx),
			Y:      tileCenter(ty),
			Facing: DirEast,
			Size:   cfg.EntitySize,
			Alive:  true,
		},
		Kind:    kind,
		Visible: true,
	}
	kc := GetKindConfig(kind)
	if kc.Fires() {
		e.FireTimer = kc.FireCooldown
	}
	switch kind {
	case KindGarwor:
		e.InvisTimer = cfg.GarworVisibleTime
	case KindWorluk:
		e.EscapeDelay = cfg.WorlukEscapeDelay
	case KindWizard:
		e.TeleportTimer = cfg.WizardTeleportInterval
	}
	return e
}

// advanceTimers runs the enemy's dt-driven counters: fire cooldown,
// Garwor visibility toggle, and the escape-intent delay. All counters
// clamp at zero.
func (e *Enemy) advanceTimers(cfg *Config, dt float64) {
	if e.FireTimer > 0 {
		e.FireTimer -= dt
		if e.FireTimer < 0 {
			e.FireTimer = 0
		}
	}
	if e.Kind == KindGarwor {
		e.InvisTimer -= dt
		if e.InvisTimer <= 0 {
			e.Visible = !e.Visible
			if e.Visible {
				e.InvisTimer = cfg.GarworVisibleTime
			} else {
				e.InvisTimer = cfg.GarworCloakedTime
			}
		}
	}
	if e.Kind == KindWizard && e.TeleportTimer > 0 {
		e.TeleportTimer -= dt
		if e.TeleportTimer < 0 {
			e.TeleportTimer = 0
		}
	}
	if e.EscapeDelay > 0 && !e.EscapeIntent {
		e.EscapeDelay -= dt
		if e.EscapeDelay <= 0 {
			e.EscapeDelay = 0
			e.EscapeIntent = true
		}
	}
}
