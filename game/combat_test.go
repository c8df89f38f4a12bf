package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerFireCooldown(t *testing.T) {
	s := newTestSim(t)

	// Holding fire across consecutive ticks yields exactly one bullet.
	snap := s.Step(Input{Fire: true}, tickDT)
	assert.Equal(t, 1, countPlayerBullets(snap))

	snap = s.Step(Input{Fire: true}, tickDT)
	assert.Equal(t, 1, countPlayerBullets(snap))
}

func TestPlayerBulletCap(t *testing.T) {
	s := newTestSim(t)

	// The cooldown elapses while the first bullet is still flying; the
	// concurrency cap keeps a second one from appearing.
	snap := s.Step(Input{Fire: true}, tickDT)
	require.Equal(t, 1, countPlayerBullets(snap))

	for i := 0; i < 30; i++ {
		snap = s.Step(Input{Fire: true}, tickDT)
		assert.Equal(t, 1, countPlayerBullets(snap))
	}
}

func TestBulletStoppedByWall(t *testing.T) {
	s := newTestSim(t)
	s.enemies = s.enemies[:0]
	s.player.Facing = DirWest

	snap := s.Step(Input{Fire: true}, tickDT)
	require.Equal(t, 1, countPlayerBullets(snap))

	// Two tiles to the west wall; no ricochet, no survivor.
	for i := 0; i < 5; i++ {
		snap = s.Step(Input{}, tickDT)
	}
	assert.Zero(t, countPlayerBullets(snap))
	assert.False(t, hasEvent(snap.Events, EventEnemyKilled))
}

func TestKillScoringPerKind(t *testing.T) {
	s := newTestSim(t)
	kinds := []Kind{KindBurwor, KindGarwor, KindThorwor, KindWorluk, KindWizard}

	total := 0
	for _, kind := range kinds {
		s.phase, s.phaseTimer = PhaseNormal, 0
		s.bullets = s.bullets[:0]
		s.enemies = s.enemies[:0]
		s.enemies = append(s.enemies, newEnemy(s.cfg, kind, 5, 13))

		p := s.player
		p.X, p.Y, p.Facing = tileCenter(1), tileCenter(13), DirEast
		p.FireTimer = 0
		p.InvulnTimer = 999

		before := p.Score
		var killed *Event
		for i := 0; i < 60 && killed == nil; i++ {
			snap := s.Step(Input{Fire: i == 0}, tickDT)
			for _, ev := range snap.Events {
				if ev.Type == EventEnemyKilled {
					ev := ev
					killed = &ev
				}
			}
		}

		require.NotNil(t, killed, "no kill event for %s", kind)
		kc := GetKindConfig(kind)
		assert.Equal(t, kind, killed.Kind)
		assert.Equal(t, kc.Points, killed.Points)
		assert.Equal(t, before+kc.Points, p.Score)
		total += kc.Points
	}

	// One of each kind is worth 4300 all told.
	assert.Equal(t, 4300, s.player.Score)
	assert.Equal(t, 4300, total)
}

func TestEnemyBulletsPassThroughEnemies(t *testing.T) {
	s := newTestSim(t)
	s.enemies = s.enemies[:0]
	shooter := newEnemy(s.cfg, KindThorwor, 3, 13)
	target := newEnemy(s.cfg, KindBurwor, 5, 13)
	s.enemies = append(s.enemies, shooter, target)
	s.player.InvulnTimer = 999

	s.bullets = append(s.bullets, newBullet(s.cfg, shooter.X, shooter.Y, DirEast, shooter))

	for i := 0; i < 20; i++ {
		s.Step(Input{}, tickDT)
	}
	assert.True(t, target.Alive)
}

func TestEnemyCooldownResetsOnBlockedAttempt(t *testing.T) {
	s := newTestSim(t)
	s.enemies = s.enemies[:0]
	e := newEnemy(s.cfg, KindThorwor, 5, 13)
	e.FireTimer = 0
	s.enemies = append(s.enemies, e)
	s.player.InvulnTimer = 999

	// Its one allowed bullet is already in flight.
	s.bullets = append(s.bullets, newBullet(s.cfg, tileCenter(5), tileCenter(9), DirNorth, e))

	s.Step(Input{}, tickDT)

	kc := GetKindConfig(KindThorwor)
	assert.InDelta(t, kc.FireCooldown, e.FireTimer, 1e-9)
	assert.Equal(t, 1, s.bulletCount(e))
}

func TestPlayerHitRespawnsWithGracePeriod(t *testing.T) {
	s := newTestSim(t)
	s.enemies = s.enemies[:0]
	shooter := newEnemy(s.cfg, KindThorwor, 5, 13)
	s.bullets = append(s.bullets, newBullet(s.cfg, tileCenter(2), tileCenter(13), DirWest, shooter))

	hit := false
	for i := 0; i < 10 && !hit; i++ {
		snap := s.Step(Input{}, tickDT)
		hit = hasEvent(snap.Events, EventPlayerHit)
	}

	require.True(t, hit)
	assert.Equal(t, 2, s.player.Lives)
	assert.Equal(t, s.player.SpawnX, s.player.X)
	assert.Equal(t, s.player.SpawnY, s.player.Y)
	assert.True(t, s.player.Invulnerable())
}

func TestInvulnerablePlayerIgnoresBulletsAndContact(t *testing.T) {
	s := newTestSim(t)
	s.enemies = s.enemies[:0]
	s.player.InvulnTimer = 999

	shooter := newEnemy(s.cfg, KindThorwor, 5, 13)
	s.bullets = append(s.bullets, newBullet(s.cfg, tileCenter(2), tileCenter(13), DirWest, shooter))

	// A Burwor right on top of the player.
	e := newEnemy(s.cfg, KindBurwor, 1, 13)
	s.enemies = append(s.enemies, e)

	for i := 0; i < 10; i++ {
		snap := s.Step(Input{}, tickDT)
		assert.False(t, hasEvent(snap.Events, EventPlayerHit))
	}
	assert.Equal(t, 3, s.player.Lives)
}

func TestBodyContactCostsALife(t *testing.T) {
	s := newTestSim(t)
	s.enemies = s.enemies[:0]
	s.enemies = append(s.enemies, newEnemy(s.cfg, KindBurwor, 1, 13))

	snap := s.Step(Input{}, tickDT)

	assert.True(t, hasEvent(snap.Events, EventPlayerHit))
	assert.Equal(t, 2, s.player.Lives)
	assert.True(t, s.player.Invulnerable())
}

func TestGameOverEmitsOnce(t *testing.T) {
	s := newTestSim(t)
	s.enemies = s.enemies[:0]
	s.player.Lives = 1
	shooter := newEnemy(s.cfg, KindThorwor, 5, 13)
	s.bullets = append(s.bullets, newBullet(s.cfg, tileCenter(2), tileCenter(13), DirWest, shooter))

	overEvents := 0
	var snap Snapshot
	for i := 0; i < 20; i++ {
		snap = s.Step(Input{}, tickDT)
		for _, ev := range snap.Events {
			if ev.Type == EventGameOver {
				overEvents++
			}
		}
	}

	assert.Equal(t, 1, overEvents)
	assert.Equal(t, PhaseGameOver, snap.Phase)
	assert.Equal(t, 0, snap.Lives)
	assert.False(t, snap.Player.Alive)

	// The machine is parked: further ticks change nothing and stay silent.
	snap = s.Step(Input{Right: true, Fire: true}, tickDT)
	assert.Equal(t, PhaseGameOver, snap.Phase)
	assert.Empty(t, snap.Events)
}
