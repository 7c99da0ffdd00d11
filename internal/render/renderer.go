//go:build ebiten

package render

import (
	"image"
	"image/color"

	"tilescape/internal/core"
	"tilescape/internal/scene"
	"tilescape/internal/weather"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// Triangles per DrawTriangles call; keeps indices within uint16.
	batchTriangles = 5000

	streakLength = 0.4
)

var rainColor = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0x99}

// Renderer draws the scene graph with painter-sorted flat triangles.
type Renderer struct {
	white *ebiten.Image

	world  []Triangle
	screen []ScreenTriangle
	verts  []ebiten.Vertex
	idx    []uint16
}

// NewRenderer allocates the shared source texture.
func NewRenderer() *Renderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Renderer{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw paints g as seen through v, followed by the rain streaks when drops
// is non-empty.
func (r *Renderer) Draw(dst *ebiten.Image, g *scene.Graph, v View, drops []weather.Drop) {
	dst.Fill(g.Background.ToRGBA())

	r.world = Collect(g, r.world[:0])
	r.screen = Frame(g, v, r.world, r.screen[:0])

	op := &ebiten.DrawTrianglesOptions{}
	for start := 0; start < len(r.screen); start += batchTriangles {
		end := min(start+batchTriangles, len(r.screen))
		r.verts, r.idx = r.verts[:0], r.idx[:0]
		for _, t := range r.screen[start:end] {
			base := uint16(len(r.verts))
			for i := 0; i < 3; i++ {
				r.verts = append(r.verts, ebiten.Vertex{
					DstX:   t.X[i],
					DstY:   t.Y[i],
					SrcX:   1,
					SrcY:   1,
					ColorR: t.Color.R,
					ColorG: t.Color.G,
					ColorB: t.Color.B,
					ColorA: t.Color.A,
				})
			}
			r.idx = append(r.idx, base, base+1, base+2)
		}
		dst.DrawTriangles(r.verts, r.idx, r.white, op)
	}

	up := core.V3(0, streakLength, 0)
	for _, d := range drops {
		s, ok := v.Streak(core.V3(d.X, d.Y, d.Z), up)
		if !ok {
			continue
		}
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, 1, rainColor, false)
	}
}
