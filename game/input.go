package game

// Input is the per-tick snapshot of player controls, polled once per tick
// by the presentation layer and handed to the simulation. Movement fields
// are level (held keys); Fire, Restart and Quit are discrete signals.
type Input struct {
	Up, Down, Left, Right bool

	Fire    bool
	Restart bool
	Quit    bool
}

// moveVector collapses the held directions into a movement vector.
// Opposing keys cancel.
func (in Input) moveVector() (float64, float64) {
	var dx, dy float64
	if in.Left {
		dx -= 1
	}
	if in.Right {
		dx += 1
	}
	if in.Up {
		dy -= 1
	}
	if in.Down {
		dy += 1
	}
	return dx, dy
}
