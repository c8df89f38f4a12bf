package game

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// Sim is the whole simulation: maze, entities, phase machine, and per-tick
// bookkeeping. It is single-threaded; Step is the only mutation path and
// runs one fixed-timestep tick per call.
type Sim struct {
	cfg  *Config
	maze *Maze
	rng  *rand.Rand

	player  *Player
	enemies []*Enemy
	bullets []*Bullet

	phase      Phase
	phaseTimer float64
	dungeon    int

	// bossKilled distinguishes a shot Wizard from an escaped one when the
	// boss phase ends. Reset on boss phase entry.
	bossKilled bool

	events []Event
}

// NewSim validates the configuration, builds the maze, and starts a fresh
// game at dungeon 1 in the Normal phase.
func NewSim(cfg Config, seed int64) (*Sim, error) {
	maze, err := NewMaze(cfg.Layout, cfg.TunnelRow)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	s := &Sim{
		cfg:    &cfg,
		maze:   maze,
		rng:    rand.New(rand.NewSource(seed)),
		events: make([]Event, 0, 8),
	}
	s.startGame()
	log.WithFields(log.Fields{
		"maze":   fmt.Sprintf("%dx%d", maze.Width(), maze.Height()),
		"tunnel": maze.TunnelRow(),
	}).Info("simulation ready")
	return s, nil
}

// Maze exposes the static grid, shared read-only with the renderer.
func (s *Sim) Maze() *Maze { return s.maze }

// startGame resets everything to a fresh dungeon 1: new player, no score,
// full lives, fresh enemy batch.
func (s *Sim) startGame() {
	s.dungeon = 1
	tx, ty := s.playerSpawnTile()
	s.player = newPlayer(s.cfg, tx, ty)
	s.enemies = s.enemies[:0]
	s.bullets = s.bullets[:0]
	s.enterPhase(PhaseNormal)
}

// nextDungeon advances to the following dungeon, preserving score and
// lives. The maze layout is invariant across dungeons.
func (s *Sim) nextDungeon() {
	s.dungeon++
	s.enemies = s.enemies[:0]
	s.bullets = s.bullets[:0]
	s.player.X = s.player.SpawnX
	s.player.Y = s.player.SpawnY
	s.player.Facing = DirEast
	s.enterPhase(PhaseNormal)
}

// Step runs one simulation tick: timers, phase spawning, AI decisions from
// the pre-move state, motion, combat, and the edge-triggered phase check,
// in that strict order. It returns the tick's snapshot.
func (s *Sim) Step(in Input, dt float64) Snapshot {
	s.events = s.events[:0]

	// Restart/quit short-circuit the rest of the tick.
	if in.Quit {
		return s.snapshot()
	}
	if in.Restart {
		s.handleRestart()
		return s.snapshot()
	}
	if s.phase == PhaseGameOver || dt <= 0 {
		return s.snapshot()
	}

	s.phaseTimer += dt
	s.player.advanceTimers(dt)
	for _, e := range s.enemies {
		if e.Alive {
			e.advanceTimers(s.cfg, dt)
		}
	}

	s.runPhaseSpawns()

	// All decisions are computed before any entity moves so every policy
	// sees the same pre-tick state.
	decisions := make([]Decision, len(s.enemies))
	for i, e := range s.enemies {
		if e.Alive {
			decisions[i] = decideEnemy(s.maze, s.cfg, e, s.player)
		}
	}

	s.movePlayer(in, dt)
	s.moveEnemies(decisions, dt)
	s.resolveFire(in, decisions)
	s.advanceBullets(dt)
	s.resolveContact()
	s.checkPhase()
	s.compact()

	return s.snapshot()
}

// handleRestart maps the restart input onto the current phase: Victory
// advances to the next dungeon immediately, anything else starts a fresh
// game at dungeon 1.
func (s *Sim) handleRestart() {
	if s.phase == PhaseVictory {
		s.nextDungeon()
		return
	}
	s.startGame()
}

// movePlayer resolves the held movement keys. Facing favors the horizontal
// axis so a diagonal hold aims sideways, matching the original's input
// priority. A single-axis hold goes through the same corridor-centering
// steering the enemies use: a player fractionally off the center line still
// slides into an open junction instead of catching on its corner. A diagonal
// hold is passed through raw and relies on axis-separated sliding alone.
func (s *Sim) movePlayer(in Input, dt float64) {
	dx, dy := in.moveVector()
	var dir Direction
	switch {
	case dx > 0:
		dir = DirEast
	case dx < 0:
		dir = DirWest
	case dy > 0:
		dir = DirSouth
	case dy < 0:
		dir = DirNorth
	}
	if dir != DirNone {
		s.player.Facing = dir
	}

	vx, vy := dx*s.cfg.PlayerSpeed, dy*s.cfg.PlayerSpeed
	if dx == 0 || dy == 0 {
		vx, vy = steerVelocity(&s.player.Entity, dir, s.cfg.PlayerSpeed, dt)
	}
	moveEntity(s.maze, &s.player.Entity, vx, vy, dt)
}

// moveEnemies applies each enemy's decision: teleports jump, everything
// else steers through axis-separated motion. A fleeing enemy that crosses
// the tunnel boundary is removed with an escaped outcome and no points.
func (s *Sim) moveEnemies(decisions []Decision, dt float64) {
	for i, e := range s.enemies {
		if !e.Alive {
			continue
		}
		d := decisions[i]
		if d.Teleport {
			s.teleportEnemy(e)
			continue
		}
		if d.Dir != DirNone {
			e.Facing = d.Dir
		}
		vx, vy := steerVelocity(&e.Entity, d.Dir, GetKindConfig(e.Kind).Speed, dt)
		crossed := moveEntity(s.maze, &e.Entity, vx, vy, dt)
		if !crossed {
			continue
		}
		switch {
		case e.Kind == KindWorluk && e.EscapeIntent:
			e.Alive = false
			s.emit(Event{Type: EventWorlukEscaped, Kind: e.Kind})
		case e.Kind == KindWizard && s.cfg.WizardCanEscape:
			e.Alive = false
			s.emit(Event{Type: EventWizardEscaped, Kind: e.Kind})
		}
	}
}

// compact drops dead enemies and bullets.
func (s *Sim) compact() {
	live := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Alive {
			live = append(live, e)
		}
	}
	s.enemies = live

	flying := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Alive {
			flying = append(flying, b)
		}
	}
	s.bullets = flying
}

// enemiesAlive counts live enemies.
func (s *Sim) enemiesAlive() int {
	n := 0
	for _, e := range s.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

func (s *Sim) emit(ev Event) {
	s.events = append(s.events, ev)
}

// snapshot builds the immutable per-tick view for the presentation adapter.
func (s *Sim) snapshot() Snapshot {
	snap := Snapshot{
		Player: PlayerView{
			X:            s.player.X,
			Y:            s.player.Y,
			Facing:       s.player.Facing,
			Alive:        s.player.Lives > 0,
			Invulnerable: s.player.Invulnerable(),
		},
		Phase:       s.phase,
		Score:       s.player.Score,
		Lives:       s.player.Lives,
		Dungeon:     s.dungeon,
		EnemiesLeft: s.enemiesAlive(),
	}
	for _, e := range s.enemies {
		if !e.Alive {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			Kind:    e.Kind,
			X:       e.X,
			Y:       e.Y,
			Facing:  e.Facing,
			Visible: e.Visible,
		})
	}
	for _, b := range s.bullets {
		if !b.Alive {
			continue
		}
		snap.Bullets = append(snap.Bullets, BulletView{
			X:          b.X,
			Y:          b.Y,
			Facing:     b.Facing,
			FromPlayer: b.FromPlayer(),
		})
	}
	if len(s.events) > 0 {
		snap.Events = append([]Event(nil), s.events...)
	}
	return snap
}
