// Package game runs the fixed-timestep loop: poll input, update the player,
// render one frame, present it.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"gloom/internal/config"
	"gloom/internal/game/keytracker"
	"gloom/internal/monitoring"
	"gloom/internal/player"
	"gloom/internal/raycast"
	"gloom/internal/render"
	"gloom/internal/texture"
	"gloom/internal/threading"
	"gloom/internal/world"
)

// maxTickDelta caps the elapsed time fed into movement so a stalled frame
// (window drag, debugger pause) cannot teleport the player through a wall.
const maxTickDelta = 0.1

// Game wires the engine together and implements ebiten.Game.
type Game struct {
	cfg        *config.Config
	grid       *world.Grid
	player     *player.Player
	compositor *render.Compositor
	pool       *threading.WorkerPool

	stats        *monitoring.FrameStats
	statsTracker keytracker.KeyStateTracker
	showStats    bool

	lastUpdate time.Time
}

// New builds the engine from loaded config, grid, and textures. The worker
// pool is started here and stopped when the loop terminates.
func New(cfg *config.Config, grid *world.Grid, atlas *texture.Atlas) *Game {
	// Materialize every texture the grid can demand before parallel
	// rendering starts; the atlas is read-only afterwards.
	atlas.Prewarm(grid)

	pool := threading.NewWorkerPool(0)
	pool.Start()

	caster := raycast.NewCaster(grid, cfg.GetCameraFOV())
	walls := render.NewWallRenderer(atlas, cfg.GetScreenWidth(), cfg.GetCameraFOV(),
		cfg.Graphics.SideShade, cfg.Graphics.FogStart, cfg.Graphics.FogEnd)
	background := render.NewBackground(atlas.Sky(), cfg.Graphics.SkyPanFactor, cfg.Graphics.FloorColor)
	compositor := render.NewCompositor(caster, walls, background, pool,
		cfg.GetScreenWidth(), cfg.GetScreenHeight(), cfg.Graphics.ColumnWidth)

	p := player.New(grid.SpawnX, grid.SpawnY, 0,
		cfg.GetMoveSpeed(), cfg.GetRotSpeed(), cfg.Movement.PlayerRadius)

	return &Game{
		cfg:        cfg,
		grid:       grid,
		player:     p,
		compositor: compositor,
		pool:       pool,
		stats:      monitoring.NewFrameStats(),
	}
}

// Update advances the simulation one tick.
func (g *Game) Update() error {
	if exitRequested() {
		g.pool.Wait()
		g.pool.Stop()
		return ebiten.Termination
	}

	now := time.Now()
	dt := 1.0 / 60
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
		if dt > maxTickDelta {
			dt = maxTickDelta
		}
	}
	g.lastUpdate = now

	if g.statsTracker.IsKeyJustPressed(ebiten.KeySlash) {
		g.showStats = !g.showStats
	}

	timer := g.stats.StartUpdate()
	g.player.Update(pollInput(), dt, g.grid)
	timer.End()

	return nil
}

// Draw renders the frame buffer and presents it.
func (g *Game) Draw(screen *ebiten.Image) {
	timer := g.stats.StartRender()
	frame := g.compositor.Render(g.player.X, g.player.Y, g.player.Angle)
	screen.WritePixels(frame.Pix)
	timer.End()

	if g.showStats {
		ebitenutil.DebugPrint(screen, g.stats.Summary())
	}
}

// Layout reports the fixed internal resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
