package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// tickDT is the fixed simulation timestep. One tick runs per rendered
// frame at ebiten's default 60 TPS.
const tickDT = 1.0 / 60.0

// Game glues the simulation core to ebiten: it polls the keyboard once per
// tick, steps the simulation, and hands the resulting snapshot to the
// renderer. All game state lives in the Sim; Game only holds the latest
// snapshot.
type Game struct {
	cfg      Config
	sim      *Sim
	renderer *Renderer
	snap     Snapshot
}

// NewGame builds the simulation and renderer from a validated config.
func NewGame(cfg Config, seed int64) (*Game, error) {
	sim, err := NewSim(cfg, seed)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		sim:      sim,
		renderer: NewRenderer(cfg),
	}
	g.snap = sim.Step(Input{}, 0)
	return g, nil
}

// Update polls input and runs one simulation tick.
func (g *Game) Update() error {
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	g.snap = g.sim.Step(in, tickDT)
	g.renderer.Advance()
	return nil
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.Maze(), g.snap)
}

// Layout returns the fixed window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth(), g.cfg.ScreenHeight()
}

// readInput samples the keyboard into the simulation's per-tick input.
// Movement and fire are level signals; restart and quit trigger on the
// key-down edge.
func readInput() Input {
	return Input{
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
