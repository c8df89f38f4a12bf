package game

import "math"

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirNone Direction = iota
	DirEast
	DirWest
	DirNorth
	DirSouth
)

// Vector returns the unit vector for a direction. North is -Y.
func (d Direction) Vector() (float64, float64) {
	switch d {
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	}
	return 0, 0
}

// Delta returns the tile-step offset for a direction.
func (d Direction) Delta() (int, int) {
	dx, dy := d.Vector()
	return int(dx), int(dy)
}

func (d Direction) String() string {
	switch d {
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	}
	return "none"
}

// chaseOrder is the deterministic candidate order for AI direction picks:
// horizontal before vertical, positive before negative on each axis.
var chaseOrder = [4]Direction{DirEast, DirWest, DirNorth, DirSouth}

// Box is an axis-aligned bounding box in tile units.
type Box struct {
	MinX, MinY float64
	W, H       float64
}

// MaxX returns the right edge of the box.
func (b Box) MaxX() float64 { return b.MinX + b.W }

// MaxY returns the bottom edge of the box.
func (b Box) MaxY() float64 { return b.MinY + b.H }

// Intersects reports whether two boxes overlap.
func (b Box) Intersects(o Box) bool {
	return b.MinX < o.MaxX() && o.MinX < b.MaxX() &&
		b.MinY < o.MaxY() && o.MinY < b.MaxY()
}

// Entity is the base of every simulated object: a continuous position in
// tile-fractional units (the box center), a facing direction, a bounding
// box edge, and an alive flag. Entities are owned exclusively by the
// simulation; the presentation adapter only reads snapshots.
type Entity struct {
	X, Y   float64
	Facing Direction
	Size   float64
	Alive  bool
}

// Box returns the entity's bounding box centered on its position.
func (e *Entity) Box() Box {
	half := e.Size / 2
	return Box{MinX: e.X - half, MinY: e.Y - half, W: e.Size, H: e.Size}
}

// boxAt returns the bounding box a same-sized entity would occupy at (x, y).
func (e *Entity) boxAt(x, y float64) Box {
	half := e.Size / 2
	return Box{MinX: x - half, MinY: y - half, W: e.Size, H: e.Size}
}

// TileX returns the column of the tile containing the entity's center.
func (e *Entity) TileX() int { return int(math.Floor(e.X)) }

// TileY returns the row of the tile containing the entity's center.
func (e *Entity) TileY() int { return int(math.Floor(e.Y)) }

func floor(v float64) float64 { return math.Floor(v) }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// tileCenter returns the continuous coordinate of a tile's center.
func tileCenter(t int) float64 { return float64(t) + 0.5 }
