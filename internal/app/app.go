//go:build ebiten

package app

import (
	"tilescape/internal/camera"
	"tilescape/internal/render"
	"tilescape/internal/ui"
	"tilescape/internal/weather"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

var weatherKeys = map[ebiten.Key]weather.State{
	ebiten.KeyDigit1: weather.Sunny,
	ebiten.KeyDigit2: weather.Night,
	ebiten.KeyDigit3: weather.Rain,
	ebiten.KeyDigit4: weather.Storm,
}

// Game adapts the world to the ebiten.Game interface.
type Game struct {
	world    *World
	renderer *render.Renderer
	hud      *ui.HUD
	help     ui.Help

	width, height int
	lastX, lastY  int
}

// New constructs a Game for the provided world.
func New(w *World, width, height int) *Game {
	g := &Game{
		world:    w,
		renderer: render.NewRenderer(),
		width:    width,
		height:   height,
	}
	g.hud = ui.NewHUD(w, "tilescape: "+w.Layout().Name, hudWidth)
	w.SetPresenter(g.hud)
	w.SetViewport(width, height)
	g.lastX, g.lastY = ebiten.CursorPosition()
	return g
}

// Update handles per-frame input and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.help.Escape() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.help.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.ToggleMode()
	}
	for key, s := range weatherKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.world.SelectWeather(s)
		}
	}

	mx, my := ebiten.CursorPosition()
	in := Input{
		Keys:    heldKeys(),
		MouseDX: float64(mx - g.lastX),
		MouseDY: float64(my - g.lastY),
		CursorX: 2*float64(mx)/float64(g.width) - 1,
		CursorY: 1 - 2*float64(my)/float64(g.height),
	}
	g.lastX, g.lastY = mx, my
	_, in.Wheel = ebiten.Wheel()

	if !g.help.Open() {
		g.hud.Update(g.width)
	}
	overHUD := g.hud.Contains(mx, my)
	if !g.help.Open() {
		in.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !overHUD
		in.Held = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		in.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}
	if overHUD {
		in.Wheel = 0
	}
	g.world.Update(in)
	return nil
}

func heldKeys() camera.Keys {
	var keys camera.Keys
	bind := func(k camera.Keys, alts ...ebiten.Key) {
		for _, a := range alts {
			if ebiten.IsKeyPressed(a) {
				keys |= k
				return
			}
		}
	}
	bind(camera.KeyForward, ebiten.KeyW, ebiten.KeyArrowUp)
	bind(camera.KeyBack, ebiten.KeyS, ebiten.KeyArrowDown)
	bind(camera.KeyLeft, ebiten.KeyA, ebiten.KeyArrowLeft)
	bind(camera.KeyRight, ebiten.KeyD, ebiten.KeyArrowRight)
	bind(camera.KeySprint, ebiten.KeyShift)
	return keys
}

// Draw renders the scene, rain, HUD and help panel.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.world
	view := render.View{
		ViewProj: w.Camera().ViewProjection(w.Aspect()),
		Width:    g.width,
		Height:   g.height,
	}
	var drops []weather.Drop
	if w.Weather().RainVisible() {
		drops = w.Weather().Rain().Drops()
	}
	g.renderer.Draw(screen, w.Graph(), view, drops)
	g.hud.Draw(screen)
	ui.DrawHelp(screen, &g.help)
}

// Layout tracks the window size so projection and picking follow resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.world.SetViewport(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
