package game

// Bullet is a projectile in flight. Owner is nil for player bullets and
// points at the firing enemy otherwise; it is used to enforce the
// per-owner concurrent cap and to keep enemy fire from hitting enemies.
type Bullet struct {
	Entity
	Owner *Enemy
	Speed float64
	Age   float64
}

// newBullet creates a bullet at the firer's position heading in the given
// direction. A nil owner marks a player bullet.
func newBullet(cfg *Config, x, y float64, dir Direction, owner *Enemy) *Bullet {
	return &Bullet{
		Entity: Entity{
			X:      x,
			Y:      y,
			Facing: dir,
			Size:   cfg.BulletSize,
			Alive:  true,
		},
		Owner: owner,
		Speed: cfg.BulletSpeed,
	}
}

// FromPlayer reports whether the player fired this bullet.
func (b *Bullet) FromPlayer() bool { return b.Owner == nil }
