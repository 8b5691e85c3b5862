//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"terrain-bg/internal/core"
	"terrain-bg/internal/render"
	"terrain-bg/internal/terrain"
	"terrain-bg/internal/ui"
	pcore "terrain-bg/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game shows a generated texture and regenerates it on demand.
type Game struct {
	req     terrain.Request
	seed    int64
	payload *terrain.Payload
	falloff *pcore.FloatGrid

	painter *render.ImagePainter
	overlay *ui.Overlay
	hud     *ui.HUD
	showHUD bool

	zoom    int
	cadence *core.Cadence
	regen   time.Duration
	elapsed time.Duration
	logger  *log.Logger
}

// defaultRegen is the auto-reseed interval P switches to when -regen is unset.
const defaultRegen = 5 * time.Second

// New generates the first texture for req and returns the preview game.
func New(req terrain.Request, zoom, hudWidth int, regen time.Duration, logger *log.Logger) (*Game, error) {
	if zoom <= 0 {
		zoom = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	seed := pcore.EntropySeed()
	if req.Seed != nil {
		seed = *req.Seed
	}
	req.Logger = logger
	g := &Game{
		req:     req,
		seed:    seed,
		zoom:    zoom,
		showHUD: hudWidth > 0,
		cadence: core.NewCadence(regen),
		regen:   regen,
		logger:  logger,
	}
	g.overlay = ui.NewOverlay(g, zoom)
	g.hud = ui.NewHUD(&g.req, "Terrain", hudWidth)
	if err := g.Regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Regenerate rebuilds the texture from the current parameters and seed. On
// failure the previous texture stays on screen.
func (g *Game) Regenerate() error {
	seed := g.seed
	g.req.Seed = &seed
	start := time.Now()
	payload, err := terrain.Generate(g.req)
	if err != nil {
		return err
	}
	g.payload = payload
	g.falloff = nil
	if !g.painter.Matches(payload.Width, payload.Height) {
		g.painter = render.NewImagePainter(payload.Width, payload.Height)
	}
	render.FillRGBA(g.painter.Buffer(), payload.Image.Pix)
	g.painter.Upload()
	g.overlay.Invalidate()
	g.elapsed = time.Since(start)
	g.hud.SetStatus(g.status())
	return nil
}

// Reseed switches to seed and regenerates.
func (g *Game) Reseed(seed int64) error {
	g.seed = seed
	g.cadence.Reset(time.Now())
	return g.Regenerate()
}

// ToggleAutoReseed pauses the periodic reseed, or resumes it with the -regen
// interval (defaultRegen when none was given).
func (g *Game) ToggleAutoReseed(now time.Time) {
	if g.cadence.Period() > 0 {
		g.cadence.SetPeriod(0)
	} else {
		period := g.regen
		if period <= 0 {
			period = defaultRegen
		}
		g.cadence.SetPeriod(period)
		g.cadence.Reset(now)
	}
	g.hud.SetStatus(g.status())
}

// Size returns the texture size.
func (g *Game) Size() core.Size { return core.Size{W: g.req.Width, H: g.req.Height} }

// FalloffField returns the falloff mask of the current parameters.
func (g *Game) FalloffField() *pcore.FloatGrid {
	if g.falloff == nil {
		g.falloff = g.req.Falloff.Mask(g.req.Width, g.req.Height, g.req.Workers)
	}
	return g.falloff
}

// HeightField returns the composited heights of the current texture.
func (g *Game) HeightField() *pcore.FloatGrid {
	if g.payload == nil {
		return nil
	}
	return g.payload.Composite
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ToggleAutoReseed(time.Now())
	}

	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		err = g.Regenerate()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		err = g.Reseed(pcore.EntropySeed())
	case g.cadence.Due(time.Now()):
		err = g.Reseed(pcore.EntropySeed())
	}

	g.overlay.Update()
	if g.showHUD && g.hud.Update(g.req.Width*g.zoom) {
		err = g.Regenerate()
	}
	if err != nil {
		g.logger.Printf("preview: %v", err)
	}
	return nil
}

// Draw renders the texture, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, float64(g.zoom))
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, g.req.Width*g.zoom, g.req.Height*g.zoom)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.req.Width * g.zoom
	if g.showHUD {
		w += g.hud.Width()
	}
	return w, g.req.Height * g.zoom
}

func (g *Game) status() []string {
	lines := []string{
		fmt.Sprintf("seed %d", g.seed),
		fmt.Sprintf("%dx%d in %s", g.payload.Width, g.payload.Height, g.elapsed.Round(time.Millisecond)),
		fmt.Sprintf("png %d bytes", len(g.payload.PNG)),
	}
	if p := g.cadence.Period(); p > 0 {
		lines = append(lines, fmt.Sprintf("reseed every %s", p))
	}
	for _, fs := range g.payload.Stats.Fields {
		if fs.Degenerate {
			lines = append(lines, "flat height range")
			break
		}
	}
	lines = append(lines, "R redraw  S new seed", "1 falloff  2 height", "P auto reseed", "H hud  Q quit")
	return lines
}
