package app

import (
	"fmt"
	"log"
	"strconv"

	"tilescape/internal/camera"
	"tilescape/internal/core"
	"tilescape/internal/scene"
	"tilescape/internal/terrain"
	"tilescape/internal/weather"
	rng "tilescape/pkg/core"
)

// Presenter is notified of state transitions the UI mirrors.
type Presenter interface {
	OnWeatherChanged(weather.State, weather.Visuals)
	OnModeChanged(camera.Mode)
}

// Input is one frame of pointer and keyboard state. It is overwritten
// every frame and read once by Update.
type Input struct {
	Keys camera.Keys

	// Cursor movement since the previous frame, in pixels.
	MouseDX, MouseDY float64
	// Wheel is the scroll amount; positive zooms in.
	Wheel float64

	// Cursor in normalized device coordinates.
	CursorX, CursorY float64

	Pressed, Held, Released bool
}

// World owns everything that exists independently of the window: the scene
// graph, terrain, camera, weather and the frame clock.
type World struct {
	seed   int64
	layout terrain.Layout

	graph   *scene.Graph
	terrain *terrain.Map
	camera  *camera.Controller
	weather *weather.Controller
	drag    *camera.TileDrag

	clock *core.FixedStep
	sched *core.Scheduler

	presenter Presenter
	aspect    float64
	looking   bool
	dragging  bool
}

// NewWorld generates the scene for cfg with a fixed seed.
func NewWorld(cfg Config, seed int64) (*World, error) {
	layout, err := terrain.Lookup(cfg.Layout)
	if err != nil {
		return nil, err
	}
	initial, err := weather.ParseState(cfg.Weather)
	if err != nil {
		return nil, err
	}

	r := rng.NewRNG(seed)
	w := &World{
		seed:   seed,
		layout: layout,
		graph:  scene.NewGraph(),
		clock:  core.NewFixedStep(cfg.TPS),
		sched:  core.NewScheduler(),
		aspect: aspectOf(cfg.Width, cfg.Height),
	}
	w.terrain = terrain.Generate(layout, r, w.graph)
	half := layout.HalfExtent()
	w.camera = camera.New(cfg.Camera, half)

	w.weather = weather.New(cfg.Effects, r, w.graph, w.sched, w.terrain.Trees(), half)
	w.weather.SetPresenter(weatherRelay{w})
	w.weather.Select(initial)

	if layout.Draggable {
		w.drag = camera.NewTileDrag(w.pickTile)
	}
	return w, nil
}

func aspectOf(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 16.0 / 9.0
	}
	return float64(width) / float64(height)
}

func (w *World) pickTile(r core.Ray) (*scene.Node, bool) {
	t, ok := w.terrain.Pick(r)
	if !ok {
		return nil, false
	}
	return t.Node, true
}

// weatherRelay logs weather transitions and forwards them to the presenter.
type weatherRelay struct{ w *World }

func (r weatherRelay) OnWeatherChanged(s weather.State, v weather.Visuals) {
	log.Printf("weather: %s", s)
	if r.w.presenter != nil {
		r.w.presenter.OnWeatherChanged(s, v)
	}
}

// SetPresenter registers the UI listener.
func (w *World) SetPresenter(p Presenter) { w.presenter = p }

// SetViewport updates the aspect ratio used for projection and picking.
func (w *World) SetViewport(width, height int) { w.aspect = aspectOf(width, height) }

// Aspect returns the viewport aspect ratio.
func (w *World) Aspect() float64 { return w.aspect }

// Seed returns the seed the world was generated with.
func (w *World) Seed() int64 { return w.seed }

// Layout returns the layout preset in use.
func (w *World) Layout() terrain.Layout { return w.layout }

// Graph returns the scene graph.
func (w *World) Graph() *scene.Graph { return w.graph }

// Terrain returns the generated map.
func (w *World) Terrain() *terrain.Map { return w.terrain }

// Camera returns the camera controller.
func (w *World) Camera() *camera.Controller { return w.camera }

// Weather returns the weather controller.
func (w *World) Weather() *weather.Controller { return w.weather }

// Drag returns the tile drag helper, nil when the layout does not allow
// dragging.
func (w *World) Drag() *camera.TileDrag { return w.drag }

// Clock returns the frame clock.
func (w *World) Clock() *core.FixedStep { return w.clock }

// SelectWeather switches the weather state.
func (w *World) SelectWeather(s weather.State) bool { return w.weather.Select(s) }

// ToggleMode switches the camera between orbit and first person.
func (w *World) ToggleMode() camera.Mode {
	m := w.camera.ToggleMode()
	w.modeChanged(m)
	return m
}

// SetMode switches the camera mode and reports whether it changed.
func (w *World) SetMode(m camera.Mode) bool {
	if !w.camera.SetMode(m) {
		return false
	}
	w.modeChanged(m)
	return true
}

func (w *World) modeChanged(m camera.Mode) {
	log.Printf("camera: %s", m)
	if w.presenter != nil {
		w.presenter.OnModeChanged(m)
	}
}

// Update advances one frame: clock and scheduled events, pointer handling
// (tile drag or look), camera, then weather.
func (w *World) Update(in Input) {
	w.clock.Tick()
	w.sched.Advance(w.clock.Step())

	ray := w.camera.Ray(in.CursorX, in.CursorY, w.aspect)
	if in.Pressed {
		if w.drag != nil && w.drag.Press(ray) {
			w.dragging = true
		} else {
			w.looking = true
		}
	}
	if in.Released || !in.Held {
		if w.drag != nil {
			w.drag.Release()
		}
		w.dragging = false
		w.looking = false
	}

	look := w.looking && in.Held
	if w.dragging && in.Held {
		w.drag.Drag(in.MouseDX, in.MouseDY)
	} else if w.drag != nil && !look {
		w.drag.Hover(ray)
	}

	w.camera.Update(camera.Input{
		Keys:    in.Keys,
		MouseDX: in.MouseDX,
		MouseDY: in.MouseDY,
		Looking: look,
		Wheel:   in.Wheel,
	})
	w.weather.Update()
}

// Parameter keys exposed to the HUD.
const (
	KeyWeather     = "weather"
	KeyCameraMode  = "camera.mode"
	KeySpeed       = "camera.speed"
	KeySensitivity = "camera.sensitivity"
)

// Parameters returns the values shown on the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	st := w.camera.State()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Scene",
			Params: []core.Parameter{
				{Key: "layout", Label: "Layout", Type: core.ParamTypeText, Value: w.layout.Name},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeText, Value: strconv.FormatInt(w.seed, 10)},
				{Key: "tiles", Label: "Tiles", Type: core.ParamTypeText, Value: strconv.Itoa(w.terrain.Len())},
			},
		},
		{
			Name: "Camera",
			Params: []core.Parameter{
				{Key: KeyCameraMode, Label: "Mode", Type: core.ParamTypeChoice, Value: st.Mode.String()},
				{Key: KeySpeed, Label: "Speed", Type: core.ParamTypeFloat, Value: formatFloat(w.camera.Speed())},
				{Key: KeySensitivity, Label: "Look", Type: core.ParamTypeFloat, Value: formatFloat(w.camera.Config().Sensitivity)},
				{Key: "camera.position", Label: "Target", Type: core.ParamTypeText, Value: fmt.Sprintf("%.1f, %.1f", st.Target.X, st.Target.Z)},
			},
		},
		{
			Name: "Weather",
			Params: []core.Parameter{
				{Key: KeyWeather, Label: "Weather", Type: core.ParamTypeChoice, Value: w.weather.Current().String()},
				{Key: "weather.strikes", Label: "Strikes", Type: core.ParamTypeText, Value: strconv.Itoa(w.weather.Strikes())},
				{Key: "weather.burning", Label: "Burning", Type: core.ParamTypeText, Value: strconv.Itoa(w.weather.BurningCount())},
			},
		},
	}}
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	states := make([]string, 0, len(weather.States))
	for _, s := range weather.States {
		states = append(states, s.String())
	}
	return []core.ParameterControl{
		{Key: KeyWeather, Label: "Weather", Type: core.ParamTypeChoice, Options: states},
		{Key: KeyCameraMode, Label: "Camera", Type: core.ParamTypeChoice, Options: []string{camera.Orbit.String(), camera.FirstPerson.String()}},
		{Key: KeySpeed, Label: "Speed", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 2},
		{Key: KeySensitivity, Label: "Look", Type: core.ParamTypeFloat, Step: 0.001, Min: 0.001, Max: 0.02},
	}
}

// SetFloatParameter applies a HUD adjustment.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case KeySpeed:
		if value <= 0 {
			return false
		}
		w.camera.SetSpeed(value)
		return true
	case KeySensitivity:
		if value <= 0 {
			return false
		}
		w.camera.SetSensitivity(value)
		return true
	}
	return false
}

// SetChoiceParameter applies a HUD button press.
func (w *World) SetChoiceParameter(key, option string) bool {
	switch key {
	case KeyWeather:
		s, err := weather.ParseState(option)
		if err != nil {
			log.Printf("hud: %v", err)
			return false
		}
		return w.SelectWeather(s)
	case KeyCameraMode:
		for _, m := range []camera.Mode{camera.Orbit, camera.FirstPerson} {
			if m.String() == option {
				return w.SetMode(m)
			}
		}
	}
	return false
}
