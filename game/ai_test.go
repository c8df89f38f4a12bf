package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config { return DefaultConfig() }

func TestChaseDirectionTieBreak(t *testing.T) {
	m := testMaze(t)
	cfg := testConfig()

	// From tile (1,1), east and south shorten the distance to (3,3)
	// equally; the fixed order picks horizontal first.
	e := newEnemy(&cfg, KindBurwor, 1, 1)
	dir := chaseDirection(m, e, 3, 3)
	assert.Equal(t, DirEast, dir)
}

func TestChaseDirectionPrefersCloser(t *testing.T) {
	m := testMaze(t)
	cfg := testConfig()

	// Target straight down the corridor: south strictly beats east.
	e := newEnemy(&cfg, KindBurwor, 1, 1)
	dir := chaseDirection(m, e, 1, 5)
	assert.Equal(t, DirSouth, dir)
}

func TestChaseDirectionSkipsBlocked(t *testing.T) {
	m := testMaze(t)
	cfg := testConfig()

	// Corner tile: west and north are walls, so even a target to the
	// northwest yields one of the open directions.
	e := newEnemy(&cfg, KindBurwor, 1, 1)
	dir := chaseDirection(m, e, 0, 0)
	assert.Contains(t, []Direction{DirEast, DirSouth}, dir)
}

func TestGarworCloakToggle(t *testing.T) {
	cfg := testConfig()
	e := newEnemy(&cfg, KindGarwor, 1, 1)

	assert.True(t, e.Visible)

	e.advanceTimers(&cfg, cfg.GarworVisibleTime)
	assert.False(t, e.Visible)

	e.advanceTimers(&cfg, cfg.GarworCloakedTime)
	assert.True(t, e.Visible)
}

func TestWantsFireAlignment(t *testing.T) {
	cfg := testConfig()

	e := newEnemy(&cfg, KindThorwor, 1, 1)
	e.FireTimer = 0

	// Same column, player below: fire south.
	p := newPlayer(&cfg, 1, 5)
	fire, dir := wantsFire(&cfg, e, p)
	assert.True(t, fire)
	assert.Equal(t, DirSouth, dir)

	// Same row, player to the east: fire east.
	p = newPlayer(&cfg, 4, 1)
	fire, dir = wantsFire(&cfg, e, p)
	assert.True(t, fire)
	assert.Equal(t, DirEast, dir)

	// Diagonal, no axis alignment: hold fire.
	p = newPlayer(&cfg, 5, 5)
	fire, _ = wantsFire(&cfg, e, p)
	assert.False(t, fire)

	// Aligned but cooling down: hold fire.
	e.FireTimer = 0.5
	p = newPlayer(&cfg, 1, 5)
	fire, _ = wantsFire(&cfg, e, p)
	assert.False(t, fire)
}

func TestBurworNeverFires(t *testing.T) {
	m := testMaze(t)
	cfg := testConfig()

	e := newEnemy(&cfg, KindBurwor, 1, 1)
	p := newPlayer(&cfg, 1, 5)

	d := decideEnemy(m, &cfg, e, p)
	assert.False(t, d.Fire)
	assert.False(t, d.Teleport)
	assert.NotEqual(t, DirNone, d.Dir)
}

func TestWorlukEscapeIntentAfterDelay(t *testing.T) {
	cfg := testConfig()
	e := newEnemy(&cfg, KindWorluk, 2, 7)

	e.advanceTimers(&cfg, cfg.WorlukEscapeDelay/2)
	assert.False(t, e.EscapeIntent)

	e.advanceTimers(&cfg, cfg.WorlukEscapeDelay)
	assert.True(t, e.EscapeIntent)
}

func TestWorlukFleesToNearerPortal(t *testing.T) {
	m := testMaze(t)
	cfg := testConfig()

	// Close to the west portal: the escape target sits beyond it, so the
	// chase keeps pushing west even from the portal tile itself.
	e := newEnemy(&cfg, KindWorluk, 2, 7)
	e.EscapeIntent = true

	ex, ey := escapeTarget(m, e)
	assert.Equal(t, -1, ex)
	assert.Equal(t, m.TunnelRow(), ey)

	p := newPlayer(&cfg, 10, 7)
	d := decideEnemy(m, &cfg, e, p)
	assert.Equal(t, DirWest, d.Dir)

	// Mirrored on the east side.
	e = newEnemy(&cfg, KindWorluk, 18, 7)
	e.EscapeIntent = true
	ex, ey = escapeTarget(m, e)
	assert.Equal(t, m.Width(), ex)
	assert.Equal(t, m.TunnelRow(), ey)
}

func TestWizardTeleportDecision(t *testing.T) {
	m := testMaze(t)
	cfg := testConfig()

	e := newEnemy(&cfg, KindWizard, 1, 1)
	p := newPlayer(&cfg, 10, 13)

	// Fresh wizard chases until the interval elapses.
	d := decideEnemy(m, &cfg, e, p)
	assert.False(t, d.Teleport)
	assert.NotEqual(t, DirNone, d.Dir)

	e.TeleportTimer = 0
	d = decideEnemy(m, &cfg, e, p)
	assert.True(t, d.Teleport)
}
