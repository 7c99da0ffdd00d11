package weather

import rng "tilescape/pkg/core"

// Drop is one rain particle. X and Z never change; the emitter is a fixed
// volume over the map.
type Drop struct {
	X, Y, Z float64
	Speed   float64
}

// RainPool is a fixed set of falling drops.
type RainPool struct {
	drops  []Drop
	height float64
}

// NewRainPool scatters cfg.RainCount drops over the rain volume.
func NewRainPool(cfg Config, r rng.Rand) *RainPool {
	cfg = cfg.sanitized()
	p := &RainPool{drops: make([]Drop, cfg.RainCount), height: cfg.RainHeight}
	for i := range p.drops {
		p.drops[i] = Drop{
			X:     rng.Range(r, -cfg.RainArea, cfg.RainArea),
			Y:     rng.Range(r, 0, cfg.RainHeight),
			Z:     rng.Range(r, -cfg.RainArea, cfg.RainArea),
			Speed: rng.Range(r, cfg.RainSpeedMin, cfg.RainSpeedMax),
		}
	}
	return p
}

// Step lets every drop fall by its speed. Drops that fall below the
// ground restart at the top.
func (p *RainPool) Step() {
	for i := range p.drops {
		d := &p.drops[i]
		d.Y -= d.Speed
		if d.Y < 0 {
			d.Y = p.height
		}
	}
}

// Drops exposes the particles for rendering.
func (p *RainPool) Drops() []Drop { return p.drops }

// Height returns the height drops restart from.
func (p *RainPool) Height() float64 { return p.height }
