package weather

import (
	"time"

	"tilescape/internal/core"
	"tilescape/internal/scene"
	"tilescape/internal/structures"
	rng "tilescape/pkg/core"
)

// Presenter is told about weather transitions. The UI implements it to
// keep its buttons in sync.
type Presenter interface {
	OnWeatherChanged(State, Visuals)
}

// flickerStep is one point in a lightning flash.
type flickerStep struct {
	at        time.Duration
	intensity float64
}

// Lightning flash sequence; the light is removed after the last step.
var flicker = []flickerStep{
	{0, 4.0},
	{50 * time.Millisecond, 1.0},
	{100 * time.Millisecond, 3.0},
	{150 * time.Millisecond, 0.5},
}

const (
	flashDuration  = 250 * time.Millisecond
	flashHeight    = 15
	flashRange     = 60
	flashColor     = core.Color(0xDDEEFF)
	fireColor      = core.Color(0xFF6600)
	fireRange      = 4
	fireLightAbove = 1.2
	cloudHeight    = 12
)

type burningTree struct {
	tree  *scene.Node
	flame *scene.Node
	light *scene.PointLight
}

// Controller runs the weather state machine and its effects.
type Controller struct {
	cfg       Config
	rng       rng.Rand
	graph     *scene.Graph
	sched     *core.Scheduler
	presenter Presenter
	trees     []*scene.Node
	half      float64

	state     State
	timer     int
	threshold int
	strikes   int

	rain    *RainPool
	clouds  *scene.Node
	flashes []*scene.PointLight

	burning  []burningTree
	isBurned map[*scene.Node]bool
}

// New builds the weather controller. trees are the lightning targets and
// halfExtent bounds strike positions. The controller starts Sunny with
// the Sunny visuals applied.
func New(cfg Config, r rng.Rand, g *scene.Graph, sched *core.Scheduler, trees []*scene.Node, halfExtent float64) *Controller {
	cfg = cfg.sanitized()
	c := &Controller{
		cfg:      cfg,
		rng:      r,
		graph:    g,
		sched:    sched,
		trees:    trees,
		half:     halfExtent,
		rain:     NewRainPool(cfg, r),
		isBurned: make(map[*scene.Node]bool),
	}
	c.clouds = scene.NewGroup("clouds")
	for i := 0; i < cfg.Clouds; i++ {
		pos := core.V3(rng.Range(r, -halfExtent, halfExtent), cloudHeight+rng.Range(r, -1, 1), rng.Range(r, -halfExtent, halfExtent))
		c.clouds.Add(structures.Cloud(pos))
	}
	g.Add(c.clouds)
	c.apply(VisualsFor(Sunny))
	return c
}

// SetPresenter registers the transition listener.
func (c *Controller) SetPresenter(p Presenter) { c.presenter = p }

// Current returns the selected state.
func (c *Controller) Current() State { return c.state }

// Visuals returns the parameters of the selected state.
func (c *Controller) Visuals() Visuals { return VisualsFor(c.state) }

// Rain returns the rain particles.
func (c *Controller) Rain() *RainPool { return c.rain }

// RainVisible reports whether rain should be drawn.
func (c *Controller) RainVisible() bool { return c.Visuals().Rain }

// Strikes returns how many lightning strikes have fired.
func (c *Controller) Strikes() int { return c.strikes }

// Select switches to s and applies its visuals immediately. Selecting the
// current state changes nothing. It reports whether the state changed.
func (c *Controller) Select(s State) bool {
	if _, ok := visuals[s]; !ok || s == c.state {
		return false
	}
	c.state = s
	c.timer = 0
	if s == Storm {
		c.threshold = c.nextThreshold()
	}
	v := VisualsFor(s)
	c.apply(v)
	if c.presenter != nil {
		c.presenter.OnWeatherChanged(s, v)
	}
	return true
}

func (c *Controller) apply(v Visuals) {
	c.graph.Background = v.Background
	c.graph.Ambient.Intensity = v.Ambient
	c.graph.Directional.Intensity = v.Directional
	c.clouds.Hidden = v.Clouds <= 0
	c.clouds.Walk(func(n *scene.Node) bool {
		n.Opacity = v.Clouds
		return true
	})
}

func (c *Controller) nextThreshold() int {
	return rng.IntRange(c.rng, c.cfg.LightningMin, c.cfg.LightningMax)
}

// Update advances one frame: lightning timing in Storm, rain while it is
// visible, and the flicker of burning trees.
func (c *Controller) Update() {
	if c.state == Storm {
		c.timer++
		if c.timer > c.threshold {
			c.timer = 0
			c.threshold = c.nextThreshold()
			c.Strike(rng.Range(c.rng, -c.half, c.half), rng.Range(c.rng, -c.half, c.half))
		}
	}
	if c.RainVisible() {
		c.rain.Step()
	}
	for _, b := range c.burning {
		b.light.Intensity = rng.Range(c.rng, c.cfg.FireMin, c.cfg.FireMax)
	}
}

// Strike fires a lightning bolt at (x, z): a flash light that steps
// through the flicker sequence on the scheduler and is then removed, and
// a downward hit test against the trees. It returns the struck tree.
func (c *Controller) Strike(x, z float64) (*scene.Node, bool) {
	c.strikes++
	flash := &scene.PointLight{
		Name:      "lightning",
		Position:  core.V3(x, flashHeight, z),
		Color:     flashColor,
		Intensity: flicker[0].intensity,
		Range:     flashRange,
	}
	c.graph.AddLight(flash)
	c.flashes = append(c.flashes, flash)
	for _, step := range flicker[1:] {
		c.sched.After(step.at, func() { flash.Intensity = step.intensity })
	}
	c.sched.After(flashDuration, func() { c.removeFlash(flash) })

	ray := core.Ray{Origin: core.V3(x, c.cfg.StrikeHeight, z), Dir: core.V3(0, -1, 0)}
	hit, ok := scene.Pick(ray, c.trees)
	if !ok {
		return nil, false
	}
	c.Ignite(hit.Node)
	return hit.Node, true
}

func (c *Controller) removeFlash(flash *scene.PointLight) {
	c.graph.RemoveLight(flash)
	for i, f := range c.flashes {
		if f == flash {
			c.flashes = append(c.flashes[:i], c.flashes[i+1:]...)
			break
		}
	}
}

// Flashes returns the lightning lights currently in the scene.
func (c *Controller) Flashes() []*scene.PointLight { return c.flashes }

// Ignite sets tree on fire for the rest of the session. The flame is a
// separate scene root placed on the tree, which itself is left untouched.
// Igniting a tree that already burns is a no-op; it reports whether the
// tree caught.
func (c *Controller) Ignite(tree *scene.Node) bool {
	if tree == nil || c.isBurned[tree] {
		return false
	}
	c.isBurned[tree] = true
	flame := structures.Flame()
	flame.Position = tree.WorldPosition()
	flame.Yaw = tree.WorldYaw()
	c.graph.Add(flame)
	light := &scene.PointLight{
		Name:      "fire",
		Position:  tree.WorldPosition().Add(core.V3(0, fireLightAbove, 0)),
		Color:     fireColor,
		Intensity: (c.cfg.FireMin + c.cfg.FireMax) / 2,
		Range:     fireRange,
	}
	c.graph.AddLight(light)
	c.burning = append(c.burning, burningTree{tree: tree, flame: flame, light: light})
	return true
}

// IsBurning reports whether tree is on fire.
func (c *Controller) IsBurning(tree *scene.Node) bool { return c.isBurned[tree] }

// BurningCount returns the number of burning trees.
func (c *Controller) BurningCount() int { return len(c.burning) }

// FireLights returns the lights of burning trees in ignition order.
func (c *Controller) FireLights() []*scene.PointLight {
	lights := make([]*scene.PointLight, len(c.burning))
	for i, b := range c.burning {
		lights[i] = b.light
	}
	return lights
}
