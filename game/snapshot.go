package game

// Snapshot is the immutable per-tick view of the simulation handed to the
// presentation adapter. It copies every value the adapter needs so the
// adapter never touches live simulation state.
type Snapshot struct {
	Player  PlayerView
	Enemies []EnemyView
	Bullets []BulletView

	Phase   Phase
	Score   int
	Lives   int
	Dungeon int

	// EnemiesLeft is the live enemy count, shown on the HUD.
	EnemiesLeft int

	// Events are the discrete occurrences of this tick, in order.
	Events []Event
}

// PlayerView is the player's renderable state.
type PlayerView struct {
	X, Y         float64
	Facing       Direction
	Alive        bool
	Invulnerable bool
}

// EnemyView is one enemy's renderable state. Visible is false while a
// Garwor is cloaked; cloaked enemies still collide.
type EnemyView struct {
	Kind    Kind
	X, Y    float64
	Facing  Direction
	Visible bool
}

// BulletView is one bullet's renderable state.
type BulletView struct {
	X, Y       float64
	Facing     Direction
	FromPlayer bool
}
