package render

import (
	"sort"

	"tilescape/internal/core"
	"tilescape/internal/scene"
)

// View is the camera state a frame is drawn with.
type View struct {
	ViewProj      core.Mat4
	Width, Height int
}

// minW rejects vertices at or behind the eye plane.
const minW = 1e-3

// Project maps a world point to screen pixels with y pointing down. ok is
// false when the point is behind the camera or outside the depth range.
func (v View) Project(p core.Vec3) (sx, sy, depth float64, ok bool) {
	x, y, z, w := v.ViewProj.Transform4(p)
	if w < minW {
		return 0, 0, 0, false
	}
	x, y, z = x/w, y/w, z/w
	if z < -1 || z > 1 {
		return 0, 0, 0, false
	}
	sx = (x + 1) / 2 * float64(v.Width)
	sy = (1 - y) / 2 * float64(v.Height)
	return sx, sy, w, true
}

// ScreenTriangle is a shaded face ready to rasterize.
type ScreenTriangle struct {
	X, Y  [3]float32
	Color RGBA
	Depth float64
}

// Frame projects and shades tris, drops faces that are clipped or fully
// off screen, and sorts the rest back to front.
func Frame(g *scene.Graph, v View, tris []Triangle, out []ScreenTriangle) []ScreenTriangle {
	w, h := float64(v.Width), float64(v.Height)
	for _, t := range tris {
		var st ScreenTriangle
		visible := true
		minX, minY, maxX, maxY := w, h, 0.0, 0.0
		for i, p := range [3]core.Vec3{t.A, t.B, t.C} {
			sx, sy, d, ok := v.Project(p)
			if !ok {
				visible = false
				break
			}
			st.X[i], st.Y[i] = float32(sx), float32(sy)
			st.Depth += d / 3
			minX, maxX = min(minX, sx), max(maxX, sx)
			minY, maxY = min(minY, sy), max(maxY, sy)
		}
		if !visible || maxX < 0 || maxY < 0 || minX > w || minY > h {
			continue
		}
		st.Color = Shade(g, t)
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}

// Segment is a projected line, used for rain streaks.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// Streak projects the segment from p to p+d. ok is false if either end
// is clipped.
func (v View) Streak(p, d core.Vec3) (Segment, bool) {
	x0, y0, _, ok0 := v.Project(p)
	x1, y1, _, ok1 := v.Project(p.Add(d))
	if !ok0 || !ok1 {
		return Segment{}, false
	}
	return Segment{X0: float32(x0), Y0: float32(y0), X1: float32(x1), Y1: float32(y1)}, true
}
