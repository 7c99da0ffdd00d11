package camera

import (
	"math"

	"tilescape/internal/core"
)

// Mode selects how the eye relates to the target.
type Mode uint8

const (
	// Orbit circles the target at Distance.
	Orbit Mode = iota
	// FirstPerson places the eye PlayerHeight above the target.
	FirstPerson
)

func (m Mode) String() string {
	if m == FirstPerson {
		return "first-person"
	}
	return "orbit"
}

// Vertical angle ranges per mode. Orbit never dips to the horizon so the
// camera cannot flip under the ground.
const (
	OrbitMinAngleV       = 0.1
	OrbitMaxAngleV       = math.Pi / 2
	FirstPersonMinAngleV = -math.Pi / 2
	FirstPersonMaxAngleV = math.Pi / 2
)

// Keys is the set of held movement keys.
type Keys uint8

const (
	KeyForward Keys = 1 << iota
	KeyBack
	KeyLeft
	KeyRight
	KeySprint
)

// Has reports whether every key in k is held.
func (ks Keys) Has(k Keys) bool { return ks&k == k }

// Input is the latest input snapshot. It is overwritten each frame and
// read once; nothing is queued.
type Input struct {
	Keys Keys
	// Cursor movement since the previous frame, in pixels.
	MouseDX, MouseDY float64
	// Looking is true while the look gesture (mouse drag) is held.
	Looking bool
	// Wheel is the scroll amount this frame; positive zooms in.
	Wheel float64
}

// State is the camera state mutated every frame.
type State struct {
	Target   core.Vec3
	Distance float64
	AngleH   float64
	AngleV   float64
	Mode     Mode
}

// Controller owns the camera state and applies input to it.
type Controller struct {
	cfg   Config
	state State
	half  float64
}

// New returns a controller in orbit mode looking at the map center.
// halfExtent is the distance from the center to the map edge.
func New(cfg Config, halfExtent float64) *Controller {
	cfg = cfg.sanitized()
	c := &Controller{
		cfg:  cfg,
		half: math.Max(halfExtent, 0),
		state: State{
			Distance: cfg.Distance,
			AngleV:   cfg.AngleV,
			Mode:     Orbit,
		},
	}
	c.clamp()
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Config returns the active configuration.
func (c *Controller) Config() Config { return c.cfg }

// SetSensitivity changes the look sensitivity in radians per pixel.
func (c *Controller) SetSensitivity(v float64) {
	if v > 0 {
		c.cfg.Sensitivity = v
	}
}

// SetSpeed changes the base movement speed of the active mode.
func (c *Controller) SetSpeed(v float64) {
	if v <= 0 {
		return
	}
	if c.state.Mode == FirstPerson {
		c.cfg.FirstPersonSpeed = v
	} else {
		c.cfg.OrbitSpeed = v
	}
}

// Speed returns the base movement speed of the active mode.
func (c *Controller) Speed() float64 {
	if c.state.Mode == FirstPerson {
		return c.cfg.FirstPersonSpeed
	}
	return c.cfg.OrbitSpeed
}

// SetMode switches modes and re-clamps the vertical angle into the new
// range. It reports whether the mode changed.
func (c *Controller) SetMode(m Mode) bool {
	if m != Orbit && m != FirstPerson {
		return false
	}
	if c.state.Mode == m {
		return false
	}
	c.state.Mode = m
	c.clamp()
	return true
}

// ToggleMode flips between orbit and first person.
func (c *Controller) ToggleMode() Mode {
	if c.state.Mode == Orbit {
		c.SetMode(FirstPerson)
	} else {
		c.SetMode(Orbit)
	}
	return c.state.Mode
}

// Update applies one frame of input: look, zoom, then movement and
// boundary clamping.
func (c *Controller) Update(in Input) {
	if in.Looking {
		c.Look(in.MouseDX, in.MouseDY)
	}
	if in.Wheel != 0 {
		c.Zoom(in.Wheel)
	}
	c.Move(in.Keys)
}

// Look turns the camera by a cursor delta in pixels.
func (c *Controller) Look(dx, dy float64) {
	s := c.cfg.Sensitivity
	c.state.AngleH -= dx * s
	if c.state.Mode == FirstPerson {
		c.state.AngleV -= dy * s
	} else {
		c.state.AngleV += dy * s
	}
	c.clamp()
}

// Zoom moves the orbit eye toward (positive delta) or away from the
// target. It has no effect in first person.
func (c *Controller) Zoom(delta float64) {
	if c.state.Mode != Orbit {
		return
	}
	c.state.Distance -= delta * c.cfg.ZoomStep
	c.clamp()
}

// Forward returns the horizontal unit vector the camera faces.
func (c *Controller) Forward() core.Vec3 {
	s, co := math.Sincos(c.state.AngleH)
	return core.V3(-s, 0, -co)
}

// Right returns the horizontal unit vector to the camera's right.
func (c *Controller) Right() core.Vec3 {
	s, co := math.Sincos(c.state.AngleH)
	return core.V3(co, 0, -s)
}

// Move translates the target by the held keys and clamps it to the map.
func (c *Controller) Move(keys Keys) {
	var dir core.Vec3
	if keys.Has(KeyForward) {
		dir = dir.Add(c.Forward())
	}
	if keys.Has(KeyBack) {
		dir = dir.Sub(c.Forward())
	}
	if keys.Has(KeyRight) {
		dir = dir.Add(c.Right())
	}
	if keys.Has(KeyLeft) {
		dir = dir.Sub(c.Right())
	}
	if dir == (core.Vec3{}) {
		return
	}
	speed := c.Speed()
	if keys.Has(KeySprint) {
		speed *= c.cfg.SprintMultiplier
	}
	c.state.Target = c.state.Target.Add(dir.Normalize().Scale(speed))
	c.clamp()
}

func (c *Controller) clamp() {
	limit := math.Max(c.half-c.cfg.BoundaryOffset, 0)
	c.state.Target.X = core.Clamp(c.state.Target.X, -limit, limit)
	c.state.Target.Z = core.Clamp(c.state.Target.Z, -limit, limit)
	c.state.Distance = core.Clamp(c.state.Distance, c.cfg.MinZoom, c.cfg.MaxZoom)
	lo, hi := c.AngleRange()
	c.state.AngleV = core.Clamp(c.state.AngleV, lo, hi)
}

// AngleRange returns the vertical angle bounds of the active mode.
func (c *Controller) AngleRange() (float64, float64) {
	if c.state.Mode == FirstPerson {
		return FirstPersonMinAngleV, FirstPersonMaxAngleV
	}
	return OrbitMinAngleV, OrbitMaxAngleV
}

// Eye returns the camera position.
func (c *Controller) Eye() core.Vec3 {
	st := c.state
	if st.Mode == FirstPerson {
		return st.Target.Add(core.V3(0, c.cfg.PlayerHeight, 0))
	}
	sh, ch := math.Sincos(st.AngleH)
	sv, cv := math.Sincos(st.AngleV)
	return st.Target.Add(core.V3(sh*cv, sv, ch*cv).Scale(st.Distance))
}

// LookDir returns the unit view direction.
func (c *Controller) LookDir() core.Vec3 {
	st := c.state
	if st.Mode == FirstPerson {
		sh, ch := math.Sincos(st.AngleH)
		sv, cv := math.Sincos(st.AngleV)
		return core.V3(-sh*cv, sv, -ch*cv)
	}
	return st.Target.Sub(c.Eye()).Normalize()
}

// View returns the view matrix.
func (c *Controller) View() core.Mat4 {
	eye := c.Eye()
	dir := c.LookDir()
	up := core.V3(0, 1, 0)
	if math.Abs(dir.Y) > 0.999 {
		// Straight up or down: use the heading as the up vector.
		up = c.Forward()
	}
	return core.LookAt(eye, eye.Add(dir), up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Controller) Projection(aspect float64) core.Mat4 {
	return core.Perspective(c.cfg.FOV, aspect, c.cfg.Near, c.cfg.Far)
}

// ViewProjection returns Projection * View.
func (c *Controller) ViewProjection(aspect float64) core.Mat4 {
	return c.Projection(aspect).Mul(c.View())
}

// Ray returns the world-space ray through a cursor position given in
// normalized device coordinates (x right, y up, both in [-1, 1]).
func (c *Controller) Ray(ndcX, ndcY, aspect float64) core.Ray {
	inv := c.ViewProjection(aspect).Invert()
	near := inv.TransformPoint(core.V3(ndcX, ndcY, -1))
	far := inv.TransformPoint(core.V3(ndcX, ndcY, 1))
	return core.Ray{Origin: near, Dir: far.Sub(near).Normalize()}
}
