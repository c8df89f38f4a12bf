package game

// Decision is an enemy's intent for one tick, produced by the kind's policy
// and consumed by motion and combat resolution in the same tick. Decisions
// are computed for every enemy before any entity moves, so no enemy ever
// observes another's partially-updated state.
type Decision struct {
	Dir      Direction
	Fire     bool
	FireDir  Direction
	Teleport bool
}

// probeDist is how far ahead (in tiles) a candidate direction is tested for
// an immediate wall block before the AI will consider it.
const probeDist = 0.3

// decideEnemy dispatches to the fixed kind -> policy mapping.
func decideEnemy(m *Maze, cfg *Config, e *Enemy, p *Player) Decision {
	switch e.Kind {
	case KindBurwor, KindGarwor:
		// Garwor cloaking is timer-driven elsewhere; its movement policy
		// is the same greedy chase as the Burwor.
		return Decision{Dir: chaseDirection(m, e, p.TileX(), p.TileY())}
	case KindThorwor:
		d := Decision{Dir: chaseDirection(m, e, p.TileX(), p.TileY())}
		d.Fire, d.FireDir = wantsFire(cfg, e, p)
		return d
	case KindWorluk:
		if e.EscapeIntent {
			ex, ey := escapeTarget(m, e)
			return Decision{Dir: chaseDirection(m, e, ex, ey)}
		}
		return Decision{Dir: chaseDirection(m, e, p.TileX(), p.TileY())}
	case KindWizard:
		if e.TeleportTimer <= 0 {
			return Decision{Teleport: true}
		}
		d := Decision{Dir: chaseDirection(m, e, p.TileX(), p.TileY())}
		d.Fire, d.FireDir = wantsFire(cfg, e, p)
		return d
	}
	return Decision{}
}

// chaseDirection picks the cardinal direction that minimizes Manhattan
// distance from the enemy's next tile to the target tile, restricted to
// directions that are not immediately wall-blocked. Ties break by the fixed
// chaseOrder (horizontal before vertical), which keeps the pick
// deterministic for a given board state.
func chaseDirection(m *Maze, e *Enemy, tx, ty int) Direction {
	best := DirNone
	bestDist := int(^uint(0) >> 1)
	for _, d := range chaseOrder {
		if dirBlocked(m, &e.Entity, d) {
			continue
		}
		dx, dy := d.Delta()
		nx, ny := e.TileX()+dx, e.TileY()+dy
		dist := manhattan(nx, ny, tx, ty)
		if dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}

// dirBlocked probes a short step in the given direction and reports whether
// the entity's box would overlap a wall there.
func dirBlocked(m *Maze, e *Entity, d Direction) bool {
	dx, dy := d.Vector()
	return m.Collides(e.boxAt(e.X+dx*probeDist, e.Y+dy*probeDist))
}

// escapeTarget returns the tile just beyond the nearer tunnel portal, so a
// fleeing enemy standing on the portal cell keeps pushing outward instead
// of oscillating on it.
func escapeTarget(m *Maze, e *Enemy) (int, int) {
	row := m.TunnelRow()
	westDist := manhattan(e.TileX(), e.TileY(), 0, row)
	eastDist := manhattan(e.TileX(), e.TileY(), m.Width()-1, row)
	if westDist <= eastDist {
		return -1, row
	}
	return m.Width(), row
}

// wantsFire reports whether a shooting kind should fire this tick: the
// kind's cooldown has elapsed and the enemy is roughly aligned with the
// player on one axis. The returned direction points along the aligned axis.
func wantsFire(cfg *Config, e *Enemy, p *Player) (bool, Direction) {
	if e.FireTimer > 0 {
		return false, DirNone
	}
	alignedX := abs(e.X-p.X) < cfg.AlignRange
	alignedY := abs(e.Y-p.Y) < cfg.AlignRange
	if !alignedX && !alignedY {
		return false, DirNone
	}
	return true, fireDirection(cfg, e, p)
}

// fireDirection aims along the axis the player is aligned on: vertically if
// the horizontal offset is within range, horizontally otherwise.
func fireDirection(cfg *Config, e *Enemy, p *Player) Direction {
	if abs(e.X-p.X) < cfg.AlignRange {
		if p.Y > e.Y {
			return DirSouth
		}
		return DirNorth
	}
	if p.X > e.X {
		return DirEast
	}
	return DirWest
}

func manhattan(x0, y0, x1, y1 int) int {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
