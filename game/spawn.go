package game

// playerSpawnTile picks the player's home tile: the bottom-left corner of
// the walkable area, falling back to bottom-right, then to any open tile in
// the bottom half.
func (s *Sim) playerSpawnTile() (int, int) {
	row := s.maze.Height() - 2
	for col := 1; col <= 3; col++ {
		if s.maze.IsOpen(col, row) {
			return col, row
		}
	}
	for col := s.maze.Width() - 2; col >= s.maze.Width()-3; col-- {
		if s.maze.IsOpen(col, row) {
			return col, row
		}
	}
	for _, t := range s.maze.OpenTiles(-1) {
		if t[1] > s.maze.Height()/2 {
			return t[0], t[1]
		}
	}
	tiles := s.maze.OpenTiles(-1)
	return tiles[0][0], tiles[0][1]
}

// pickSpawnTiles selects n distinct open tiles from the candidate list in
// random order, skipping any tile whose spawn box would overlap the player.
// If the candidates run out it falls back to repeating the first safe tile
// rather than failing: a crowded board is never surfaced to the player.
func (s *Sim) pickSpawnTiles(n, maxRow int) [][2]int {
	candidates := s.maze.OpenTiles(maxRow)
	picked := make([][2]int, 0, n)
	for _, i := range s.rng.Perm(len(candidates)) {
		if len(picked) == n {
			break
		}
		t := candidates[i]
		if s.spawnConflicts(t[0], t[1]) {
			continue
		}
		picked = append(picked, t)
	}
	for len(picked) < n {
		picked = append(picked, s.fallbackSpawnTile())
	}
	return picked
}

// spawnConflicts reports whether a spawn box on the tile would overlap the
// player.
func (s *Sim) spawnConflicts(tx, ty int) bool {
	box := Box{
		MinX: tileCenter(tx) - s.cfg.EntitySize/2,
		MinY: tileCenter(ty) - s.cfg.EntitySize/2,
		W:    s.cfg.EntitySize,
		H:    s.cfg.EntitySize,
	}
	return s.player != nil && box.Intersects(s.player.Box())
}

// fallbackSpawnTile returns the first open tile that does not overlap the
// player, scanning top-to-bottom. The maze is validated connected and
// non-empty, so this always finds something.
func (s *Sim) fallbackSpawnTile() [2]int {
	tiles := s.maze.OpenTiles(-1)
	for _, t := range tiles {
		if !s.spawnConflicts(t[0], t[1]) {
			return t
		}
	}
	return tiles[0]
}

// spawnBatch populates a fresh dungeon with the fixed normal-phase wave:
// three Burwors, two Garwors, one Thorwor, all in the top part of the maze.
func (s *Sim) spawnBatch() {
	tiles := s.pickSpawnTiles(len(normalBatch), s.cfg.EnemySpawnMaxRow)
	for i, kind := range normalBatch {
		s.enemies = append(s.enemies, newEnemy(s.cfg, kind, tiles[i][0], tiles[i][1]))
	}
}

// spawnSingle places one enemy of the given kind on a random open tile.
func (s *Sim) spawnSingle(kind Kind) {
	t := s.pickSpawnTiles(1, -1)[0]
	s.enemies = append(s.enemies, newEnemy(s.cfg, kind, t[0], t[1]))
}

// teleportEnemy moves the Wizard to a random open tile away from the
// player and restarts its teleport cooldown.
func (s *Sim) teleportEnemy(e *Enemy) {
	t := s.pickSpawnTiles(1, -1)[0]
	e.X = tileCenter(t[0])
	e.Y = tileCenter(t[1])
	e.TeleportTimer = s.cfg.WizardTeleportInterval
	s.emit(Event{Type: EventWizardTeleported, Kind: e.Kind})
}
