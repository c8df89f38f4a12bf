package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Neon palette, after the original's CRT look.
var (
	colorBackground  = color.RGBA{0, 0, 20, 255}
	colorWall        = color.RGBA{0, 150, 255, 255}
	colorWallFill    = color.RGBA{0, 20, 60, 255}
	colorPlayer      = color.RGBA{255, 255, 0, 255}
	colorPlayerShot  = color.RGBA{0, 255, 255, 255}
	colorEnemyShot   = color.RGBA{255, 50, 50, 255}
	colorRadarFrame  = color.RGBA{100, 100, 100, 255}
	colorHUDText     = color.RGBA{0, 255, 255, 255}
	colorBannerGood  = color.RGBA{0, 255, 100, 255}
	colorBannerBoss  = color.RGBA{200, 0, 255, 255}
	colorBannerOver  = color.RGBA{255, 50, 50, 255}
)

// kindColor maps enemy kinds to their display colors.
func kindColor(k Kind) color.RGBA {
	switch k {
	case KindBurwor:
		return color.RGBA{0, 150, 255, 255}
	case KindGarwor:
		return color.RGBA{255, 150, 0, 255}
	case KindThorwor:
		return color.RGBA{255, 50, 50, 255}
	case KindWorluk:
		return color.RGBA{0, 255, 100, 255}
	case KindWizard:
		return color.RGBA{200, 0, 255, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}

// Renderer draws snapshots. It owns nothing but the config and a frame
// counter for presentation-only effects (Wizard flicker, radar blink,
// invulnerability strobe); everything it draws comes from the snapshot.
type Renderer struct {
	cfg   Config
	frame int
}

// NewRenderer creates a renderer for the given configuration.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Advance bumps the presentation frame counter.
func (r *Renderer) Advance() { r.frame++ }

// Draw renders the maze, entities, radar strip, and HUD from a snapshot.
func (r *Renderer) Draw(screen *ebiten.Image, maze *Maze, snap Snapshot) {
	screen.Fill(colorBackground)
	r.drawMaze(screen, maze)
	r.drawEntities(screen, snap)
	r.drawRadar(screen, maze, snap)
	r.drawHUD(screen, snap)
}

func (r *Renderer) drawMaze(screen *ebiten.Image, maze *Maze) {
	ts := float32(r.cfg.TilePixels)
	for ty := 0; ty < maze.Height(); ty++ {
		for tx := 0; tx < maze.Width(); tx++ {
			if !maze.IsWall(tx, ty) {
				continue
			}
			x := float32(tx) * ts
			y := float32(ty) * ts
			vector.DrawFilledRect(screen, x, y, ts, ts, colorWallFill, false)
			vector.StrokeRect(screen, x, y, ts, ts, 2, colorWall, false)
		}
	}
}

func (r *Renderer) drawEntities(screen *ebiten.Image, snap Snapshot) {
	ts := float64(r.cfg.TilePixels)
	size := float32(r.cfg.EntitySize * ts)

	for _, e := range snap.Enemies {
		if !e.Visible {
			continue
		}
		// Boss flicker is purely cosmetic.
		if e.Kind == KindWizard && r.frame%6 == 0 {
			continue
		}
		x := float32(e.X*ts) - size/2
		y := float32(e.Y*ts) - size/2
		vector.DrawFilledRect(screen, x, y, size, size, kindColor(e.Kind), false)
	}

	if snap.Player.Alive {
		// Strobe during the respawn grace period.
		if !snap.Player.Invulnerable || r.frame%8 < 4 {
			x := float32(snap.Player.X*ts) - size/2
			y := float32(snap.Player.Y*ts) - size/2
			vector.DrawFilledRect(screen, x, y, size, size, colorPlayer, false)
		}
	}

	for _, b := range snap.Bullets {
		clr := colorPlayerShot
		if !b.FromPlayer {
			clr = colorEnemyShot
		}
		vector.DrawFilledCircle(screen, float32(b.X*ts), float32(b.Y*ts), 4, clr, false)
	}
}

// drawRadar draws the minimap strip below the maze. Cloaked enemies blink
// instead of showing solid, which is all the "reduced detection" a cloak
// buys on the radar.
func (r *Renderer) drawRadar(screen *ebiten.Image, maze *Maze, snap Snapshot) {
	top := float32(r.cfg.MazeHeight() * r.cfg.TilePixels)
	w := float32(200)
	h := float32(r.cfg.RadarHeight - 10)
	left := float32(r.cfg.ScreenWidth())/2 - w/2
	vector.StrokeRect(screen, left, top+5, w, h, 1, colorRadarFrame, false)

	cellW := w / float32(maze.Width())
	cellH := h / float32(maze.Height())
	for _, e := range snap.Enemies {
		if !e.Visible && (r.frame/15)%2 == 0 {
			continue
		}
		x := left + float32(e.X)*cellW
		y := top + 5 + float32(e.Y)*cellH
		vector.DrawFilledRect(screen, x-2, y-2, 4, 4, kindColor(e.Kind), false)
	}
	px := left + float32(snap.Player.X)*cellW
	py := top + 5 + float32(snap.Player.Y)*cellH
	vector.DrawFilledRect(screen, px-2, py-2, 4, 4, colorPlayer, false)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap Snapshot) {
	face := basicfont.Face7x13
	y := r.cfg.MazeHeight()*r.cfg.TilePixels + r.cfg.RadarHeight + 20

	line := fmt.Sprintf("SCORE %06d   LIVES %d   DUNGEON %d   ENEMIES %d",
		snap.Score, snap.Lives, snap.Dungeon, snap.EnemiesLeft)
	text.Draw(screen, line, face, 10, y, colorHUDText)

	if msg, clr := r.banner(snap.Phase); msg != "" {
		x := r.cfg.ScreenWidth()/2 - len(msg)*7/2
		text.Draw(screen, msg, face, x, y+25, clr)
	}
}

// banner returns the phase message shown under the HUD line.
func (r *Renderer) banner(p Phase) (string, color.RGBA) {
	switch p {
	case PhaseBonusSpawning:
		return "THE WORLUK APPROACHES!", colorBannerGood
	case PhaseBossSpawning:
		return "I AM THE WIZARD OF WOR!", colorBannerBoss
	case PhaseVictory:
		return "DUNGEON CLEARED! PRESS R", colorBannerGood
	case PhaseGameOver:
		return "GAME OVER - PRESS R TO RESTART", colorBannerOver
	}
	return "", color.RGBA{}
}
