package camera

import "math"

// Config holds the camera tunables.
type Config struct {
	OrbitSpeed       float64 `yaml:"orbit_speed"`
	FirstPersonSpeed float64 `yaml:"first_person_speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	Sensitivity      float64 `yaml:"sensitivity"`
	ZoomStep         float64 `yaml:"zoom_step"`
	MinZoom          float64 `yaml:"min_zoom"`
	MaxZoom          float64 `yaml:"max_zoom"`
	Distance         float64 `yaml:"distance"`
	AngleV           float64 `yaml:"angle_v"`
	PlayerHeight     float64 `yaml:"player_height"`
	BoundaryOffset   float64 `yaml:"boundary_offset"`
	FOV              float64 `yaml:"fov"`
	Near             float64 `yaml:"near"`
	Far              float64 `yaml:"far"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		OrbitSpeed:       0.3,
		FirstPersonSpeed: 0.1,
		SprintMultiplier: 2,
		Sensitivity:      0.005,
		ZoomStep:         1,
		MinZoom:          5,
		MaxZoom:          60,
		Distance:         20,
		AngleV:           math.Pi / 4,
		PlayerHeight:     1.7,
		BoundaryOffset:   1,
		FOV:              math.Pi / 3,
		Near:             0.1,
		Far:              1000,
	}
}

// sanitized fills zero or inverted values from the defaults.
func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.OrbitSpeed <= 0 {
		c.OrbitSpeed = def.OrbitSpeed
	}
	if c.FirstPersonSpeed <= 0 {
		c.FirstPersonSpeed = def.FirstPersonSpeed
	}
	if c.SprintMultiplier < 1 {
		c.SprintMultiplier = def.SprintMultiplier
	}
	if c.Sensitivity <= 0 {
		c.Sensitivity = def.Sensitivity
	}
	if c.ZoomStep <= 0 {
		c.ZoomStep = def.ZoomStep
	}
	if c.MinZoom <= 0 {
		c.MinZoom = def.MinZoom
	}
	if c.MaxZoom < c.MinZoom {
		c.MaxZoom = c.MinZoom
	}
	if c.Distance <= 0 {
		c.Distance = def.Distance
	}
	if c.PlayerHeight <= 0 {
		c.PlayerHeight = def.PlayerHeight
	}
	if c.BoundaryOffset < 0 {
		c.BoundaryOffset = 0
	}
	if c.FOV <= 0 || c.FOV >= math.Pi {
		c.FOV = def.FOV
	}
	if c.Near <= 0 {
		c.Near = def.Near
	}
	if c.Far <= c.Near {
		c.Far = def.Far
	}
	return c
}
