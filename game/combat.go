package game

// resolveFire turns this tick's fire requests into bullets. A request only
// produces a bullet when the firer's cooldown has elapsed and its
// concurrent-bullet count is under the cap. Enemy cooldowns reset on every
// attempt whether or not a bullet appears; the player's resets only on an
// actual shot, so holding fire is never punished.
func (s *Sim) resolveFire(in Input, decisions []Decision) {
	p := s.player
	if in.Fire && p.FireTimer <= 0 && s.bulletCount(nil) < s.cfg.PlayerBulletCap {
		s.bullets = append(s.bullets, newBullet(s.cfg, p.X, p.Y, p.Facing, nil))
		p.FireTimer = s.cfg.PlayerFireCooldown
	}

	for i, e := range s.enemies {
		if !e.Alive || !decisions[i].Fire {
			continue
		}
		e.FireTimer = GetKindConfig(e.Kind).FireCooldown
		if s.bulletCount(e) >= s.cfg.EnemyBulletCap {
			continue
		}
		s.bullets = append(s.bullets, newBullet(s.cfg, e.X, e.Y, decisions[i].FireDir, e))
	}
}

// bulletCount returns the number of live bullets owned by the given enemy,
// or by the player when owner is nil.
func (s *Sim) bulletCount(owner *Enemy) int {
	n := 0
	for _, b := range s.bullets {
		if b.Alive && b.Owner == owner {
			n++
		}
	}
	return n
}

// advanceBullets moves every bullet and resolves its collisions: walls
// destroy the bullet (no ricochet), lifetime expiry destroys it, and an
// opposing entity hit destroys both. Player bullets hit enemies only;
// enemy bullets hit the player only, never other enemies.
func (s *Sim) advanceBullets(dt float64) {
	for _, b := range s.bullets {
		if !b.Alive {
			continue
		}
		b.Age += dt
		if b.Age > s.cfg.BulletLifetime {
			b.Alive = false
			continue
		}

		dx, dy := b.Facing.Vector()
		b.X += dx * b.Speed * dt
		b.Y += dy * b.Speed * dt
		if wx, wrapped := s.maze.WrapIfTunnel(b.X, b.TileY()); wrapped {
			b.X = wx
		}
		if s.maze.Collides(b.Box()) {
			b.Alive = false
			continue
		}

		if b.FromPlayer() {
			s.resolvePlayerBulletHit(b)
		} else {
			s.resolveEnemyBulletHit(b)
		}
	}
}

// resolvePlayerBulletHit tests a player bullet against every live enemy and
// applies the first hit: bullet and enemy die, the kind's point value is
// scored, and a death event is emitted.
func (s *Sim) resolvePlayerBulletHit(b *Bullet) {
	for _, e := range s.enemies {
		if !e.Alive || !b.Box().Intersects(e.Box()) {
			continue
		}
		kc := GetKindConfig(e.Kind)
		b.Alive = false
		e.Alive = false
		s.player.Score += kc.Points
		s.emit(Event{Type: EventEnemyKilled, Kind: e.Kind, Points: kc.Points})
		if e.Kind == KindWizard {
			s.bossKilled = true
		}
		return
	}
}

// resolveEnemyBulletHit tests an enemy bullet against the player. The
// respawn grace period makes the player untouchable.
func (s *Sim) resolveEnemyBulletHit(b *Bullet) {
	p := s.player
	if p.Invulnerable() || !b.Box().Intersects(p.Box()) {
		return
	}
	b.Alive = false
	s.hitPlayer()
}

// resolveContact applies enemy body contact: touching a live enemy costs a
// life exactly like being shot. At most one life is lost per tick.
func (s *Sim) resolveContact() {
	p := s.player
	if p.Invulnerable() {
		return
	}
	for _, e := range s.enemies {
		if e.Alive && e.Box().Intersects(p.Box()) {
			s.hitPlayer()
			return
		}
	}
}

// hitPlayer decrements a life and starts the respawn sequence. Reaching
// zero lives is handled by the phase check at the end of the tick.
func (s *Sim) hitPlayer() {
	p := s.player
	p.Lives--
	s.emit(Event{Type: EventPlayerHit})
	if p.Lives > 0 {
		p.respawn(s.cfg)
	}
}
