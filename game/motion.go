package game

// moveEntity advances an entity by the desired velocity with axis-separated
// collision resolution: the X component is attempted alone and rejected on
// its own if it collides, then the Y component likewise. A diagonal move
// blocked on one axis still advances on the other, which is what lets
// entities slide along walls near corners. If both axes are blocked the
// entity simply halts for this tick; there is no diagonal rescue.
//
// Tunnel wraparound is applied after the horizontal move. The returned flag
// reports that the entity crossed a grid boundary on the tunnel row (the
// escape condition for fleeing enemies).
func moveEntity(m *Maze, e *Entity, vx, vy, dt float64) bool {
	crossed := false

	if vx != 0 {
		nx := e.X + vx*dt
		if !m.Collides(e.boxAt(nx, e.Y)) {
			e.X = nx
			if wx, wrapped := m.WrapIfTunnel(e.X, e.TileY()); wrapped {
				e.X = wx
				crossed = true
			}
		}
	}

	if vy != 0 {
		ny := e.Y + vy*dt
		if !m.Collides(e.boxAt(e.X, ny)) {
			e.Y = ny
		}
	}

	return crossed
}

// steerVelocity converts an AI direction decision into a velocity. The main
// axis gets full speed; the perpendicular axis gets a centering component
// that pulls the entity toward the corridor center line, clamped so it never
// overshoots within one tick. Centering rides the same axis-separated
// resolution as everything else, so it slides or halts against walls like
// any other movement.
func steerVelocity(e *Entity, dir Direction, speed, dt float64) (float64, float64) {
	dx, dy := dir.Vector()
	vx := dx * speed
	vy := dy * speed

	centering := func(pos float64, tile int) float64 {
		off := tileCenter(tile) - pos
		v := off / dt
		if v > speed {
			v = speed
		} else if v < -speed {
			v = -speed
		}
		return v
	}

	switch {
	case dx != 0:
		vy = centering(e.Y, e.TileY())
	case dy != 0:
		vx = centering(e.X, e.TileX())
	}
	return vx, vy
}
