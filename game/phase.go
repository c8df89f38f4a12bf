package game

// Phase is the top-level game state governing which wave is active.
// Transitions are edge-triggered: the controller inspects the entity
// population once per tick and fires at most one transition.
type Phase int

const (
	PhaseNormal Phase = iota
	PhaseBonusSpawning
	PhaseBonusActive
	PhaseBossSpawning
	PhaseBossActive
	PhaseVictory
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseBonusSpawning:
		return "bonus-spawning"
	case PhaseBonusActive:
		return "bonus-active"
	case PhaseBossSpawning:
		return "boss-spawning"
	case PhaseBossActive:
		return "boss-active"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// enterPhase performs a transition: it emits phase-changed, resets the
// elapsed-in-phase timer, and runs the entry actions of the new state.
func (s *Sim) enterPhase(p Phase) {
	if s.phase != p || s.phaseTimer > 0 {
		s.emit(Event{Type: EventPhaseChanged, From: s.phase, To: p})
	}
	s.phase = p
	s.phaseTimer = 0

	switch p {
	case PhaseNormal:
		s.spawnBatch()
	case PhaseBossSpawning:
		s.bossKilled = false
	case PhaseGameOver:
		s.emit(Event{Type: EventGameOver})
	}
}

// runPhaseSpawns is the start-of-tick half of the phase controller: the
// timer states spawn their creature once their delay elapses, and Victory
// rolls over into the next dungeon.
func (s *Sim) runPhaseSpawns() {
	switch s.phase {
	case PhaseBonusSpawning:
		if s.phaseTimer >= s.cfg.BonusSpawnDelay {
			s.spawnSingle(KindWorluk)
			s.enterPhase(PhaseBonusActive)
		}
	case PhaseBossSpawning:
		if s.phaseTimer >= s.cfg.BossSpawnDelay {
			s.spawnSingle(KindWizard)
			s.enterPhase(PhaseBossActive)
		}
	case PhaseVictory:
		if s.phaseTimer >= s.cfg.VictoryDelay {
			s.nextDungeon()
		}
	}
}

// checkPhase is the end-of-tick half of the phase controller. Transitions
// are edge-triggered against the tick's resulting entity population; at
// most one fires per tick. Running out of lives wins over everything.
func (s *Sim) checkPhase() {
	if s.player.Lives <= 0 {
		s.enterPhase(PhaseGameOver)
		return
	}

	switch s.phase {
	case PhaseNormal:
		if s.enemiesAlive() == 0 {
			s.enterPhase(PhaseBonusSpawning)
		}
	case PhaseBonusActive:
		// The Worluk is gone either way: killed (scored in combat) or
		// escaped (no points). Both lead to the boss.
		if s.enemiesAlive() == 0 {
			s.enterPhase(PhaseBossSpawning)
		}
	case PhaseBossActive:
		if s.enemiesAlive() == 0 {
			if s.bossKilled {
				s.emit(Event{Type: EventWizardDefeated, Kind: KindWizard})
			}
			s.enterPhase(PhaseVictory)
		}
	}
}
