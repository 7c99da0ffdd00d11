package weather

// Config holds the weather tunables.
type Config struct {
	RainCount    int     `yaml:"rain_count"`
	RainArea     float64 `yaml:"rain_area"`
	RainHeight   float64 `yaml:"rain_height"`
	RainSpeedMin float64 `yaml:"rain_speed_min"`
	RainSpeedMax float64 `yaml:"rain_speed_max"`

	// Frames between lightning strikes are drawn uniformly from
	// [LightningMin, LightningMax] after every strike.
	LightningMin int     `yaml:"lightning_min"`
	LightningMax int     `yaml:"lightning_max"`
	StrikeHeight float64 `yaml:"strike_height"`

	// Burning tree lights flicker within [FireMin, FireMax].
	FireMin float64 `yaml:"fire_min"`
	FireMax float64 `yaml:"fire_max"`

	Clouds int `yaml:"clouds"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		RainCount:    1000,
		RainArea:     10,
		RainHeight:   20,
		RainSpeedMin: 0.1,
		RainSpeedMax: 0.2,
		LightningMin: 100,
		LightningMax: 300,
		StrikeHeight: 50,
		FireMin:      1.0,
		FireMax:      1.5,
		Clouds:       6,
	}
}

func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.RainCount < 0 {
		c.RainCount = 0
	}
	if c.RainArea <= 0 {
		c.RainArea = def.RainArea
	}
	if c.RainHeight <= 0 {
		c.RainHeight = def.RainHeight
	}
	if c.RainSpeedMin <= 0 {
		c.RainSpeedMin = def.RainSpeedMin
	}
	if c.RainSpeedMax < c.RainSpeedMin {
		c.RainSpeedMax = c.RainSpeedMin
	}
	if c.LightningMin <= 0 {
		c.LightningMin = def.LightningMin
	}
	if c.LightningMax < c.LightningMin {
		c.LightningMax = c.LightningMin
	}
	if c.StrikeHeight <= 0 {
		c.StrikeHeight = def.StrikeHeight
	}
	if c.FireMax < c.FireMin {
		c.FireMax = c.FireMin
	}
	if c.Clouds < 0 {
		c.Clouds = 0
	}
	return c
}
