package game

// Player is the human-controlled entity. Score persists across dungeons;
// lives persist until game over.
type Player struct {
	Entity
	Lives int
	Score int

	// FireTimer counts down to the next allowed shot.
	FireTimer float64

	// InvulnTimer is the post-respawn grace period. While positive the
	// player ignores enemy bullets and body contact.
	InvulnTimer float64

	// SpawnX, SpawnY is where the player respawns after losing a life.
	SpawnX, SpawnY float64
}

// newPlayer creates the player at its spawn tile with a full set of lives.
func newPlayer(cfg *Config, tx, ty int) *Player {
	x, y := tileCenter(tx), tileCenter(ty)
	return &Player{
		Entity: Entity{
			X:      x,
			Y:      y,
			Facing: DirEast,
			Size:   cfg.EntitySize,
			Alive:  true,
		},
		Lives:  cfg.StartLives,
		SpawnX: x,
		SpawnY: y,
	}
}

// Invulnerable reports whether the respawn grace period is active.
func (p *Player) Invulnerable() bool { return p.InvulnTimer > 0 }

// advanceTimers runs the player's dt-driven counters, clamped at zero.
func (p *Player) advanceTimers(dt float64) {
	if p.FireTimer > 0 {
		p.FireTimer -= dt
		if p.FireTimer < 0 {
			p.FireTimer = 0
		}
	}
	if p.InvulnTimer > 0 {
		p.InvulnTimer -= dt
		if p.InvulnTimer < 0 {
			p.InvulnTimer = 0
		}
	}
}

// respawn moves the player back to its spawn tile and starts the
// invulnerability grace period.
func (p *Player) respawn(cfg *Config) {
	p.X = p.SpawnX
	p.Y = p.SpawnY
	p.Facing = DirEast
	p.InvulnTimer = cfg.InvulnDuration
}
