package render

import (
	"tilescape/internal/core"
	"tilescape/internal/scene"
)

// RGBA is a linear color with premultiplication left to the backend.
type RGBA struct {
	R, G, B, A float32
}

// Shade lights a face with the graph's ambient, directional and point
// lights. Emissive color is added unlit. Channels saturate at 1.
func Shade(g *scene.Graph, t Triangle) RGBA {
	p := t.Center()
	ar, ag, ab := g.Ambient.Color.Floats()
	lr := ar * g.Ambient.Intensity
	lg := ag * g.Ambient.Intensity
	lb := ab * g.Ambient.Intensity

	if d := t.Normal.Dot(g.Directional.Dir.Scale(-1)); d > 0 {
		dr, dg, db := g.Directional.Color.Floats()
		k := d * g.Directional.Intensity
		lr += dr * k
		lg += dg * k
		lb += db * k
	}
	for _, l := range g.Lights() {
		c := l.Contribution(p)
		if c <= 0 {
			continue
		}
		to := l.Position.Sub(p).Normalize()
		d := t.Normal.Dot(to)
		if d <= 0 {
			continue
		}
		pr, pg, pb := l.Color.Floats()
		lr += pr * c * d
		lg += pg * c * d
		lb += pb * c * d
	}

	cr, cg, cb := t.Color.Floats()
	er, eg, eb := t.Emissive.Floats()
	return RGBA{
		R: float32(core.Clamp(cr*lr+er, 0, 1)),
		G: float32(core.Clamp(cg*lg+eg, 0, 1)),
		B: float32(core.Clamp(cb*lb+eb, 0, 1)),
		A: float32(core.Clamp(t.Alpha, 0, 1)),
	}
}
