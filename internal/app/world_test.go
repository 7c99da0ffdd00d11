package app

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tilescape/internal/camera"
	"tilescape/internal/terrain"
	"tilescape/internal/weather"
)

type recordingPresenter struct {
	weather []weather.State
	modes   []camera.Mode
}

func (p *recordingPresenter) OnWeatherChanged(s weather.State, _ weather.Visuals) {
	p.weather = append(p.weather, s)
}

func (p *recordingPresenter) OnModeChanged(m camera.Mode) { p.modes = append(p.modes, m) }

func newWorld(t *testing.T, layout string) *World {
	t.Helper()
	cfg := NewConfig()
	cfg.Layout = layout
	w, err := NewWorld(*cfg, 7)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestNewWorldRejectsUnknownNames(t *testing.T) {
	cfg := NewConfig()
	cfg.Layout = "swamp"
	if _, err := NewWorld(*cfg, 1); !errors.Is(err, terrain.ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
	cfg = NewConfig()
	cfg.Weather = "hail"
	if _, err := NewWorld(*cfg, 1); !errors.Is(err, weather.ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
}

func TestNewWorldIsDeterministic(t *testing.T) {
	a := newWorld(t, "village")
	b := newWorld(t, "village")
	if a.Terrain().Len() != 900 {
		t.Fatalf("expected 900 tiles, got %d", a.Terrain().Len())
	}
	da, db := a.Terrain().Decorations(), b.Terrain().Decorations()
	if len(da) != len(db) {
		t.Fatalf("decoration counts differ: %d vs %d", len(da), len(db))
	}
	for i := range da {
		if da[i].X != db[i].X || da[i].Z != db[i].Z || da[i].Tag != db[i].Tag {
			t.Fatalf("decoration %d differs: %+v vs %+v", i, da[i], db[i])
		}
	}
}

func TestInitialWeatherFromConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Layout = "meadow"
	cfg.Weather = "night"
	w, err := NewWorld(*cfg, 3)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if w.Weather().Current() != weather.Night {
		t.Fatalf("expected night, got %s", w.Weather().Current())
	}
	if w.Graph().Background != weather.VisualsFor(weather.Night).Background {
		t.Fatalf("night background not applied")
	}
}

func TestPresenterHooks(t *testing.T) {
	w := newWorld(t, "meadow")
	p := &recordingPresenter{}
	w.SetPresenter(p)

	if !w.SetChoiceParameter(KeyWeather, "storm") {
		t.Fatalf("storm should be selectable")
	}
	if w.SetChoiceParameter(KeyWeather, "storm") {
		t.Fatalf("selecting the current weather should be a no-op")
	}
	if w.SetChoiceParameter(KeyWeather, "fog") {
		t.Fatalf("unknown weather should be rejected")
	}
	if len(p.weather) != 1 || p.weather[0] != weather.Storm {
		t.Fatalf("unexpected weather notifications %v", p.weather)
	}

	if m := w.ToggleMode(); m != camera.FirstPerson {
		t.Fatalf("expected first person, got %s", m)
	}
	if !w.SetChoiceParameter(KeyCameraMode, "orbit") {
		t.Fatalf("switching back to orbit should succeed")
	}
	if w.SetMode(camera.Orbit) {
		t.Fatalf("setting the current mode should report no change")
	}
	if len(p.modes) != 2 || p.modes[0] != camera.FirstPerson || p.modes[1] != camera.Orbit {
		t.Fatalf("unexpected mode notifications %v", p.modes)
	}
}

func TestUpdateMovesCameraAndAdvancesClock(t *testing.T) {
	w := newWorld(t, "village")
	before := w.Camera().State().Target
	for i := 0; i < 10; i++ {
		w.Update(Input{Keys: camera.KeyForward})
	}
	after := w.Camera().State().Target
	if after == before {
		t.Fatalf("camera did not move")
	}
	if w.Clock().Ticks() != 10 {
		t.Fatalf("expected 10 ticks, got %d", w.Clock().Ticks())
	}
}

func TestLookRequiresHeldPointer(t *testing.T) {
	w := newWorld(t, "village")
	h := w.Camera().State().AngleH
	w.Update(Input{MouseDX: 50})
	if w.Camera().State().AngleH != h {
		t.Fatalf("camera turned without a held pointer")
	}
	w.Update(Input{Pressed: true, Held: true})
	w.Update(Input{Held: true, MouseDX: 50})
	if w.Camera().State().AngleH == h {
		t.Fatalf("camera did not turn while looking")
	}
	h = w.Camera().State().AngleH
	w.Update(Input{Released: true, MouseDX: 50})
	if w.Camera().State().AngleH != h {
		t.Fatalf("camera turned after release")
	}
}

func TestDragMovesTileUnderCursor(t *testing.T) {
	w := newWorld(t, "meadow")
	if w.Drag() == nil {
		t.Fatalf("meadow should allow tile drag")
	}
	// Look straight down the view axis; the orbit camera targets the map
	// center so the center of the screen hits a tile.
	w.Update(Input{Pressed: true, Held: true})
	sel := w.Drag().Selected()
	if sel == nil {
		t.Fatalf("expected a tile to be grabbed")
	}
	start := sel.Position
	h := w.Camera().State().AngleH
	w.Update(Input{Held: true, MouseDX: 100, MouseDY: -50})
	if sel.Position.X != start.X+1 || sel.Position.Z != start.Z-0.5 {
		t.Fatalf("tile moved to %+v from %+v", sel.Position, start)
	}
	if w.Camera().State().AngleH != h {
		t.Fatalf("camera turned while dragging a tile")
	}
	w.Update(Input{Released: true})
	if w.Drag().Selected() != nil {
		t.Fatalf("tile still held after release")
	}
}

func TestNoDragOnLargeLayouts(t *testing.T) {
	if w := newWorld(t, "castle"); w.Drag() != nil {
		t.Fatalf("castle layout should not allow tile drag")
	}
}

func TestFloatParameters(t *testing.T) {
	w := newWorld(t, "meadow")
	if !w.SetFloatParameter(KeySpeed, 0.5) {
		t.Fatalf("speed should be settable")
	}
	if w.Camera().Speed() != 0.5 {
		t.Fatalf("expected speed 0.5, got %v", w.Camera().Speed())
	}
	if w.SetFloatParameter(KeySensitivity, 0) {
		t.Fatalf("zero sensitivity should be rejected")
	}
	if w.SetFloatParameter("unknown", 1) {
		t.Fatalf("unknown key should be rejected")
	}
	p, ok := w.Parameters().Lookup(KeySpeed)
	if !ok || p.Value != "0.5" {
		t.Fatalf("unexpected speed parameter %+v", p)
	}
	if len(w.ParameterControls()) != 4 {
		t.Fatalf("expected 4 controls")
	}
}

func TestParseFlagsAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	doc := "layout: village\nseed: 99\ncamera:\n  sensitivity: 0.01\neffects:\n  rain_count: 50\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Parse("test", []string{"-config", path, "-seed", "5"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Layout != "village" {
		t.Fatalf("layout from file not applied: %q", cfg.Layout)
	}
	if cfg.Seed != 5 {
		t.Fatalf("flag should override file seed, got %d", cfg.Seed)
	}
	if cfg.Camera.Sensitivity != 0.01 || cfg.Effects.RainCount != 50 {
		t.Fatalf("nested values not applied: %+v %+v", cfg.Camera, cfg.Effects)
	}
	if cfg.Camera.MaxZoom != camera.DefaultConfig().MaxZoom {
		t.Fatalf("missing keys should keep defaults")
	}

	if _, err := Parse("test", []string{"-config", filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := NewConfig().Decode([]byte("layout: [")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLightningFlickerFollowsFrameClock(t *testing.T) {
	cfg := NewConfig()
	cfg.Layout = "meadow"
	cfg.TPS = 50
	w, err := NewWorld(*cfg, 7)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	step := w.Clock().Step()
	if step != 20*time.Millisecond {
		t.Fatalf("expected 20ms step, got %v", step)
	}
	// Run long enough that a clock feeding absolute time into the event
	// queue would skip the whole sequence in one frame.
	for i := 0; i < 600; i++ {
		w.Update(Input{})
	}
	w.Weather().Strike(0, 0)

	want := func(elapsed time.Duration) float64 {
		switch {
		case elapsed < 50*time.Millisecond:
			return 4.0
		case elapsed < 100*time.Millisecond:
			return 1.0
		case elapsed < 150*time.Millisecond:
			return 3.0
		default:
			return 0.5
		}
	}
	visible := int(250 * time.Millisecond / step)
	for frame := 1; frame <= visible; frame++ {
		w.Update(Input{})
		flashes := w.Weather().Flashes()
		if len(flashes) != 1 {
			t.Fatalf("frame %d: expected the flash to persist, got %d flashes", frame, len(flashes))
		}
		elapsed := time.Duration(frame) * step
		if flashes[0].Intensity != want(elapsed) {
			t.Fatalf("frame %d (%v): intensity %v, want %v", frame, elapsed, flashes[0].Intensity, want(elapsed))
		}
	}
	w.Update(Input{})
	if n := len(w.Weather().Flashes()); n != 0 {
		t.Fatalf("flash should be removed after 250ms, %d left", n)
	}
}

func TestRainCoversConfiguredArea(t *testing.T) {
	w := newWorld(t, "castle")
	area := weather.DefaultConfig().RainArea
	if w.Layout().HalfExtent() <= area {
		t.Fatalf("castle map should be larger than the rain volume")
	}
	for i, d := range w.Weather().Rain().Drops() {
		if math.Abs(d.X) > area || math.Abs(d.Z) > area {
			t.Fatalf("drop %d at (%v, %v) outside the rain area %v", i, d.X, d.Z, area)
		}
	}
}
