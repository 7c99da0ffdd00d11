package render

import (
	"math"

	"tilescape/internal/core"
	"tilescape/internal/scene"
)

// Triangle is a world-space face with flat material properties.
type Triangle struct {
	A, B, C  core.Vec3
	Normal   core.Vec3
	Color    core.Color
	Emissive core.Color
	Alpha    float64
}

// Center returns the centroid.
func (t Triangle) Center() core.Vec3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3)
}

// Tessellate appends the faces of n's own primitive (not its children)
// in world space. Normals point away from the primitive center.
func Tessellate(n *scene.Node, out []Triangle) []Triangle {
	p := n.Prim
	var local [][3]core.Vec3
	switch p.Shape {
	case scene.ShapeBox:
		local = boxFaces(p.Width/2, p.Height/2, p.Depth/2)
	case scene.ShapeCylinder, scene.ShapeCone:
		local = lathe(p.RadiusTop, p.RadiusBottom, p.Height/2, p.Segments)
	case scene.ShapeSphere:
		local = sphereFaces(p.RadiusBottom, p.Segments)
	default:
		return out
	}
	center := n.WorldPosition()
	alpha := n.Alpha()
	for _, f := range local {
		a, b, c := n.ToWorld(f[0]), n.ToWorld(f[1]), n.ToWorld(f[2])
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
		if normal == (core.Vec3{}) {
			continue
		}
		mid := a.Add(b).Add(c).Scale(1.0 / 3)
		if normal.Dot(mid.Sub(center)) < 0 {
			normal = normal.Scale(-1)
		}
		out = append(out, Triangle{A: a, B: b, C: c, Normal: normal, Color: n.Color, Emissive: n.Emissive, Alpha: alpha})
	}
	return out
}

// Collect tessellates every visible node of g.
func Collect(g *scene.Graph, out []Triangle) []Triangle {
	g.Walk(func(n *scene.Node) {
		out = Tessellate(n, out)
	})
	return out
}

func boxFaces(hx, hy, hz float64) [][3]core.Vec3 {
	v := func(sx, sy, sz float64) core.Vec3 { return core.V3(sx*hx, sy*hy, sz*hz) }
	quads := [][4]core.Vec3{
		{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},     // front
		{v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)}, // back
		{v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1)},     // top
		{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)}, // bottom
		{v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1)},     // right
		{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)}, // left
	}
	faces := make([][3]core.Vec3, 0, 12)
	for _, q := range quads {
		faces = append(faces, [3]core.Vec3{q[0], q[1], q[2]}, [3]core.Vec3{q[0], q[2], q[3]})
	}
	return faces
}

// lathe builds a capped frustum between a bottom ring at -hy and a top
// ring at +hy. A zero top radius yields a cone.
func lathe(top, bottom, hy float64, segments int) [][3]core.Vec3 {
	if segments < 3 {
		segments = 3
	}
	ring := func(r, y float64, i int) core.Vec3 {
		a := 2 * math.Pi * float64(i%segments) / float64(segments)
		return core.V3(r*math.Sin(a), y, r*math.Cos(a))
	}
	var faces [][3]core.Vec3
	apexTop := core.V3(0, hy, 0)
	apexBottom := core.V3(0, -hy, 0)
	for i := 0; i < segments; i++ {
		b0, b1 := ring(bottom, -hy, i), ring(bottom, -hy, i+1)
		if top > 0 {
			t0, t1 := ring(top, hy, i), ring(top, hy, i+1)
			faces = append(faces, [3]core.Vec3{b0, b1, t1}, [3]core.Vec3{b0, t1, t0})
			faces = append(faces, [3]core.Vec3{apexTop, t0, t1})
		} else {
			faces = append(faces, [3]core.Vec3{b0, b1, apexTop})
		}
		if bottom > 0 {
			faces = append(faces, [3]core.Vec3{apexBottom, b1, b0})
		}
	}
	return faces
}

func sphereFaces(r float64, segments int) [][3]core.Vec3 {
	if segments < 4 {
		segments = 4
	}
	stacks := segments
	point := func(i, j int) core.Vec3 {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j%segments) / float64(segments)
		s, c := math.Sincos(phi)
		return core.V3(r*s*math.Sin(theta), r*c, r*s*math.Cos(theta))
	}
	var faces [][3]core.Vec3
	for i := 0; i < stacks; i++ {
		for j := 0; j < segments; j++ {
			p00, p01 := point(i, j), point(i, j+1)
			p10, p11 := point(i+1, j), point(i+1, j+1)
			if i > 0 {
				faces = append(faces, [3]core.Vec3{p00, p10, p01})
			}
			if i < stacks-1 {
				faces = append(faces, [3]core.Vec3{p01, p10, p11})
			}
		}
	}
	return faces
}
