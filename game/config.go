package game

// Config holds the immutable game configuration. It is constructed once at
// startup and passed by reference into the simulation and renderer; nothing
// mutates it afterwards.
type Config struct {
	// Layout is the maze grid, one string per row ('#' wall, '.' path).
	Layout []string

	// TunnelRow is the row index whose leftmost/rightmost path cells act
	// as wraparound portals.
	TunnelRow int

	// EntitySize is the bounding box edge of player/enemy entities in
	// tile units (smaller than one tile to permit corner sliding).
	EntitySize float64

	// BulletSize is the bounding box edge of bullets in tile units.
	BulletSize float64

	// PlayerSpeed is the player movement speed in tiles per second.
	PlayerSpeed float64

	// BulletSpeed is the bullet travel speed in tiles per second.
	BulletSpeed float64

	// BulletLifetime is the maximum bullet age in seconds.
	BulletLifetime float64

	// PlayerFireCooldown is the minimum time between player shots in seconds.
	PlayerFireCooldown float64

	// PlayerBulletCap is the maximum concurrent player bullets.
	PlayerBulletCap int

	// EnemyBulletCap is the maximum concurrent bullets per enemy.
	EnemyBulletCap int

	// StartLives is the number of player lives at game start.
	StartLives int

	// InvulnDuration is the post-respawn grace period in seconds.
	InvulnDuration float64

	// AlignRange is how close (in tiles, on one axis) an enemy must be to
	// the player to count as "roughly aligned" for firing.
	AlignRange float64

	// GarworVisibleTime and GarworCloakedTime drive the Garwor's
	// visibility toggle, in seconds.
	GarworVisibleTime float64
	GarworCloakedTime float64

	// WizardTeleportInterval is the time between Wizard teleports in seconds.
	WizardTeleportInterval float64

	// WorlukEscapeDelay is how long after the bonus phase starts the
	// Worluk begins heading for a tunnel portal, in seconds.
	WorlukEscapeDelay float64

	// EnemySpawnMaxRow limits normal-phase enemy spawn tiles to the top
	// part of the maze (rows <= EnemySpawnMaxRow).
	EnemySpawnMaxRow int

	// BonusSpawnDelay and BossSpawnDelay are the message/timer states
	// before the Worluk and Wizard appear, in seconds.
	BonusSpawnDelay float64
	BossSpawnDelay  float64

	// VictoryDelay is how long the victory banner holds before the next
	// dungeon starts, in seconds.
	VictoryDelay float64

	// WizardCanEscape lets the Wizard flee through a tunnel portal like
	// the Worluk. An escaped Wizard ends the boss phase without points
	// and without a wizard-defeated event.
	WizardCanEscape bool

	// TilePixels is the on-screen size of one tile.
	TilePixels int

	// HUDHeight and RadarHeight are the heights of the HUD and radar
	// strips below the maze, in pixels.
	HUDHeight   int
	RadarHeight int
}

// defaultLayout is the reference 21x15 maze. Row 7 is the tunnel row: its
// edge cells are open and wrap to the opposite side.
var defaultLayout = []string{
	"#####################",
	"#.........#.........#",
	"#.##.###..#..###.##.#",
	"#...................#",
	"###.#.###.#.###.#.###",
	"#...................#",
	"#.##.#.#######.#.##.#",
	".....#.........#.....",
	"#.##.#.#######.#.##.#",
	"#...................#",
	"###.#.###.#.###.#.###",
	"#...................#",
	"#.##.###..#..###.##.#",
	"#.........#.........#",
	"#####################",
}

// DefaultConfig returns the reference configuration. Speeds and timers are
// tile-per-second conversions of the original arcade tuning.
func DefaultConfig() Config {
	return Config{
		Layout:                 defaultLayout,
		TunnelRow:              7,
		EntitySize:             0.9,
		BulletSize:             0.2,
		PlayerSpeed:            7.3,
		BulletSpeed:            20.5,
		BulletLifetime:         3.0,
		PlayerFireCooldown:     0.2,
		PlayerBulletCap:        1,
		EnemyBulletCap:         1,
		StartLives:             3,
		InvulnDuration:         2.0,
		AlignRange:             2.0,
		GarworVisibleTime:      1.5,
		GarworCloakedTime:      1.0,
		WizardTeleportInterval: 1.5,
		WorlukEscapeDelay:      1.0,
		EnemySpawnMaxRow:       6,
		BonusSpawnDelay:        1.0,
		BossSpawnDelay:         1.5,
		VictoryDelay:           2.0,
		WizardCanEscape:        true,
		TilePixels:             41,
		HUDHeight:              80,
		RadarHeight:            60,
	}
}

// MazeWidth returns the grid width in tiles.
func (c Config) MazeWidth() int {
	if len(c.Layout) == 0 {
		return 0
	}
	return len(c.Layout[0])
}

// MazeHeight returns the grid height in tiles.
func (c Config) MazeHeight() int {
	return len(c.Layout)
}

// ScreenWidth returns the window width in pixels.
func (c Config) ScreenWidth() int {
	return c.MazeWidth() * c.TilePixels
}

// ScreenHeight returns the window height in pixels, including the HUD and
// radar strips.
func (c Config) ScreenHeight() int {
	return c.MazeHeight()*c.TilePixels + c.HUDHeight + c.RadarHeight
}
