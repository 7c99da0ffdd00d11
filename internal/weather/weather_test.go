package weather

import (
	"errors"
	"math"
	"testing"
	"time"

	"tilescape/internal/core"
	"tilescape/internal/scene"
	"tilescape/internal/structures"
	rng "tilescape/pkg/core"
)

type recorder struct{ changes []State }

func (r *recorder) OnWeatherChanged(s State, _ Visuals) { r.changes = append(r.changes, s) }

func newController(t *testing.T, cfg Config, trees ...*scene.Node) (*Controller, *scene.Graph, *core.Scheduler) {
	t.Helper()
	g := scene.NewGraph()
	sched := core.NewScheduler()
	return New(cfg, rng.NewRNG(3), g, sched, trees, 20), g, sched
}

func countFlames(g *scene.Graph, tree *scene.Node) int {
	n := 0
	for _, r := range g.Roots() {
		if r.Tag == scene.TagFlame && r.Position == tree.WorldPosition() {
			n++
		}
	}
	return n
}

func TestSelectAppliesTableAndIsIdempotent(t *testing.T) {
	c, g, _ := newController(t, DefaultConfig())
	rec := &recorder{}
	c.SetPresenter(rec)

	if !c.Select(Storm) {
		t.Fatal("expected transition to storm")
	}
	v := VisualsFor(Storm)
	if g.Background != v.Background || g.Ambient.Intensity != v.Ambient || g.Directional.Intensity != v.Directional {
		t.Fatalf("storm visuals not applied: bg=%x ambient=%f dir=%f", g.Background, g.Ambient.Intensity, g.Directional.Intensity)
	}
	before := *g
	if c.Select(Storm) {
		t.Fatal("selecting the current state must report no change")
	}
	if g.Background != before.Background || g.Ambient != before.Ambient || g.Directional != before.Directional {
		t.Fatal("selecting the same state twice must leave parameters unchanged")
	}
	if len(rec.changes) != 1 || rec.changes[0] != Storm {
		t.Fatalf("presenter notified %v, want [storm]", rec.changes)
	}
	if !c.RainVisible() {
		t.Fatal("storm shows rain")
	}
	c.Select(Night)
	if c.RainVisible() || g.Background != VisualsFor(Night).Background {
		t.Fatal("night visuals not applied")
	}
}

func TestCloudsFollowWeather(t *testing.T) {
	c, g, _ := newController(t, DefaultConfig())
	var clouds *scene.Node
	for _, r := range g.Roots() {
		if r.Name == "clouds" {
			clouds = r
		}
	}
	if clouds == nil || !clouds.Hidden {
		t.Fatal("clouds must exist and start hidden in sunny weather")
	}
	c.Select(Rain)
	if clouds.Hidden || clouds.Children[0].Opacity != VisualsFor(Rain).Clouds {
		t.Fatal("rain must show clouds at the table opacity")
	}
}

func TestRainDropWrapsToTop(t *testing.T) {
	const h, v = 20.0, 0.3
	p := &RainPool{drops: []Drop{{Y: h, Speed: v}}, height: h}
	steps := int(math.Ceil(h / v))
	for i := 1; i < steps; i++ {
		p.Step()
		if y := p.Drops()[0].Y; y >= h || y < 0 {
			t.Fatalf("step %d: height %f out of range", i, y)
		}
	}
	p.Step()
	if y := p.Drops()[0].Y; y != h {
		t.Fatalf("after %d steps expected height %f, got %f", steps, h, y)
	}
}

func TestRainPoolScatter(t *testing.T) {
	cfg := DefaultConfig()
	p := NewRainPool(cfg, rng.NewRNG(9))
	if len(p.Drops()) != cfg.RainCount {
		t.Fatalf("expected %d drops, got %d", cfg.RainCount, len(p.Drops()))
	}
	for _, d := range p.Drops() {
		if math.Abs(d.X) > cfg.RainArea || math.Abs(d.Z) > cfg.RainArea || d.Y < 0 || d.Y > cfg.RainHeight {
			t.Fatalf("drop outside the rain volume: %+v", d)
		}
		if d.Speed < cfg.RainSpeedMin || d.Speed > cfg.RainSpeedMax {
			t.Fatalf("drop speed %f out of range", d.Speed)
		}
	}
}

func TestRainOnlyFallsWhenVisible(t *testing.T) {
	c, _, _ := newController(t, DefaultConfig())
	before := c.Rain().Drops()[0]
	c.Update()
	if c.Rain().Drops()[0] != before {
		t.Fatal("rain must not advance in sunny weather")
	}
	c.Select(Rain)
	c.Update()
	if c.Rain().Drops()[0] == before {
		t.Fatal("rain must advance while raining")
	}
}

func TestLightningFiresAfterThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LightningMin, cfg.LightningMax = 5, 5
	c, _, _ := newController(t, cfg)
	c.Select(Storm)
	for i := 1; i <= 5; i++ {
		c.Update()
		if c.Strikes() != 0 {
			t.Fatalf("strike fired early at frame %d", i)
		}
	}
	c.Update()
	if c.Strikes() != 1 {
		t.Fatalf("expected one strike after the threshold, got %d", c.Strikes())
	}
	for i := 0; i < 6; i++ {
		c.Update()
	}
	if c.Strikes() != 2 {
		t.Fatalf("expected timer to restart after a strike, got %d strikes", c.Strikes())
	}

	c.Select(Rain)
	for i := 0; i < 50; i++ {
		c.Update()
	}
	if c.Strikes() != 2 {
		t.Fatal("lightning must only strike during storms")
	}
}

func TestFlashFlickerSequence(t *testing.T) {
	c, g, sched := newController(t, DefaultConfig())
	c.Strike(3, 3)
	if len(c.Flashes()) != 1 {
		t.Fatalf("expected one flash, got %d", len(c.Flashes()))
	}
	flash := c.Flashes()[0]
	want := []struct {
		at        time.Duration
		intensity float64
	}{
		{0, 4.0},
		{50 * time.Millisecond, 1.0},
		{100 * time.Millisecond, 3.0},
		{150 * time.Millisecond, 0.5},
	}
	elapsed := time.Duration(0)
	for _, w := range want {
		sched.Advance(w.at - elapsed)
		elapsed = w.at
		if flash.Intensity != w.intensity {
			t.Fatalf("at %v intensity %f, want %f", w.at, flash.Intensity, w.intensity)
		}
	}
	sched.Advance(99 * time.Millisecond)
	if len(g.Lights()) != 1 {
		t.Fatal("flash must persist until 250ms")
	}
	sched.Advance(time.Millisecond)
	if len(g.Lights()) != 0 || len(c.Flashes()) != 0 {
		t.Fatal("flash must be removed after 250ms")
	}
}

func TestStruckTreeBurnsOnce(t *testing.T) {
	tree := structures.Tree(core.V3(2, 0, -1))
	other := structures.Tree(core.V3(-6, 0, 4))
	c, g, sched := newController(t, DefaultConfig(), tree, other)
	parts := len(tree.Children)

	for i := 0; i < 3; i++ {
		hit, ok := c.Strike(2, -1)
		if !ok || hit != tree {
			t.Fatalf("strike %d missed the tree", i)
		}
	}
	if c.BurningCount() != 1 || !c.IsBurning(tree) || c.IsBurning(other) {
		t.Fatalf("expected exactly one burning tree, got %d", c.BurningCount())
	}
	if n := countFlames(g, tree); n != 1 {
		t.Fatalf("expected one flame, got %d", n)
	}
	if len(tree.Children) != parts {
		t.Fatalf("igniting changed the tree: %d parts, want %d", len(tree.Children), parts)
	}
	sched.Advance(time.Second)
	if len(g.Lights()) != 1 {
		t.Fatalf("expected only the fire light after flashes end, got %d", len(g.Lights()))
	}
	if _, ok := c.Strike(10, 10); ok {
		t.Fatal("strike on open ground must not hit a tree")
	}

	cfg := DefaultConfig()
	for i := 0; i < 20; i++ {
		c.Update()
		for _, l := range c.FireLights() {
			if l.Intensity < cfg.FireMin || l.Intensity >= cfg.FireMax {
				t.Fatalf("fire intensity %f outside [%f, %f)", l.Intensity, cfg.FireMin, cfg.FireMax)
			}
		}
	}
}

func TestParseState(t *testing.T) {
	s, err := ParseState(" Storm ")
	if err != nil || s != Storm {
		t.Fatalf("ParseState(storm) = %v, %v", s, err)
	}
	if _, err := ParseState("hail"); !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
}
