package game

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Maze is the static tile grid. The grid never mutates after construction;
// the only mutable state is the oobLogged throttle, which IsWall flips on
// the first out-of-range query.
type Maze struct {
	walls     [][]bool
	width     int
	height    int
	tunnelRow int

	// oobLogged throttles the out-of-range diagnostic to one line per run.
	oobLogged bool
}

// NewMaze parses and validates a maze layout. It returns an error for
// degenerate configurations (ragged rows, unknown cells, missing tunnel
// portals, disconnected path regions) rather than producing undefined
// collision behavior later.
func NewMaze(layout []string, tunnelRow int) (*Maze, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("maze: empty layout")
	}
	width := len(layout[0])
	walls := make([][]bool, len(layout))
	for y, row := range layout {
		if len(row) != width {
			return nil, fmt.Errorf("maze: row %d has %d cells, want %d", y, len(row), width)
		}
		walls[y] = make([]bool, width)
		for x, c := range row {
			switch c {
			case '#':
				walls[y][x] = true
			case '.':
				walls[y][x] = false
			default:
				return nil, fmt.Errorf("maze: unknown cell %q at (%d,%d)", c, x, y)
			}
		}
	}

	m := &Maze{walls: walls, width: width, height: len(layout), tunnelRow: tunnelRow}

	if tunnelRow < 0 || tunnelRow >= m.height {
		return nil, fmt.Errorf("maze: tunnel row %d out of range", tunnelRow)
	}
	if m.walls[tunnelRow][0] || m.walls[tunnelRow][width-1] {
		return nil, fmt.Errorf("maze: tunnel row %d is not open at both edges", tunnelRow)
	}
	if err := m.checkConnected(); err != nil {
		return nil, err
	}
	return m, nil
}

// checkConnected flood-fills from the first path cell and verifies every
// path cell is reachable (including through the tunnel wrap).
func (m *Maze) checkConnected() error {
	total := 0
	startX, startY := -1, -1
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.walls[y][x] {
				total++
				if startX < 0 {
					startX, startY = x, y
				}
			}
		}
	}
	if total == 0 {
		return fmt.Errorf("maze: no path cells")
	}

	seen := make([][]bool, m.height)
	for y := range seen {
		seen[y] = make([]bool, m.width)
	}
	stack := [][2]int{{startX, startY}}
	seen[startY][startX] = true
	reached := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cur[0]+d[0], cur[1]+d[1]
			if ny == m.tunnelRow {
				// Tunnel wrap links the two edge cells.
				if nx < 0 {
					nx = m.width - 1
				} else if nx >= m.width {
					nx = 0
				}
			}
			if nx < 0 || nx >= m.width || ny < 0 || ny >= m.height {
				continue
			}
			if m.walls[ny][nx] || seen[ny][nx] {
				continue
			}
			seen[ny][nx] = true
			stack = append(stack, [2]int{nx, ny})
		}
	}
	if reached != total {
		return fmt.Errorf("maze: disconnected path network (%d of %d cells reachable)", reached, total)
	}
	return nil
}

// Width returns the grid width in tiles.
func (m *Maze) Width() int { return m.width }

// Height returns the grid height in tiles.
func (m *Maze) Height() int { return m.height }

// TunnelRow returns the index of the wraparound row.
func (m *Maze) TunnelRow() int { return m.tunnelRow }

// IsWall reports whether the tile at (tx, ty) is a wall. Out-of-bounds
// queries on the tunnel row are open (that is the wrap corridor); anywhere
// else they fail closed and are logged once as a diagnostic.
func (m *Maze) IsWall(tx, ty int) bool {
	if ty == m.tunnelRow && (tx < 0 || tx >= m.width) {
		return false
	}
	if tx < 0 || tx >= m.width || ty < 0 || ty >= m.height {
		if !m.oobLogged {
			m.oobLogged = true
			log.Warnf("maze: out-of-range tile query (%d,%d), treating as wall", tx, ty)
		}
		return true
	}
	return m.walls[ty][tx]
}

// IsOpen reports whether the in-bounds tile at (tx, ty) is a path cell.
func (m *Maze) IsOpen(tx, ty int) bool {
	return tx >= 0 && tx < m.width && ty >= 0 && ty < m.height && !m.walls[ty][tx]
}

// Collides reports whether the bounding box overlaps any wall tile. The box
// is smaller than one tile, so testing its four corners is sufficient.
func (m *Maze) Collides(b Box) bool {
	const eps = 1e-9
	x0 := int(floor(b.MinX + eps))
	x1 := int(floor(b.MaxX() - eps))
	y0 := int(floor(b.MinY + eps))
	y1 := int(floor(b.MaxY() - eps))
	return m.IsWall(x0, y0) || m.IsWall(x1, y0) || m.IsWall(x0, y1) || m.IsWall(x1, y1)
}

// WrapIfTunnel wraps an x coordinate that has crossed the grid boundary on
// the tunnel row to the opposite edge. It reports whether a wrap happened.
func (m *Maze) WrapIfTunnel(x float64, ty int) (float64, bool) {
	if ty != m.tunnelRow {
		return x, false
	}
	w := float64(m.width)
	if x < 0 {
		return x + w, true
	}
	if x >= w {
		return x - w, true
	}
	return x, false
}

// OpenTiles returns every path cell as (x, y) pairs, top-to-bottom. maxRow
// < 0 means no row limit.
func (m *Maze) OpenTiles(maxRow int) [][2]int {
	tiles := make([][2]int, 0, m.width*m.height/2)
	for y := 0; y < m.height; y++ {
		if maxRow >= 0 && y > maxRow {
			break
		}
		for x := 0; x < m.width; x++ {
			if !m.walls[y][x] {
				tiles = append(tiles, [2]int{x, y})
			}
		}
	}
	return tiles
}

// PortalTiles returns the two tunnel portal cells, west then east.
func (m *Maze) PortalTiles() [2][2]int {
	return [2][2]int{{0, m.tunnelRow}, {m.width - 1, m.tunnelRow}}
}
