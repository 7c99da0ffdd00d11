package scene

import (
	"math"

	"tilescape/internal/core"
)

// AmbientLight lights every face evenly.
type AmbientLight struct {
	Color     core.Color
	Intensity float64
}

// DirectionalLight shines along Dir, which points from the light toward
// the scene.
type DirectionalLight struct {
	Color     core.Color
	Intensity float64
	Dir       core.Vec3
}

// PointLight radiates from Position with linear falloff to zero at Range.
type PointLight struct {
	Name      string
	Position  core.Vec3
	Color     core.Color
	Intensity float64
	Range     float64
}

// Contribution returns the light intensity reaching p, before the surface
// normal is considered.
func (l *PointLight) Contribution(p core.Vec3) float64 {
	if l == nil || l.Intensity <= 0 {
		return 0
	}
	if l.Range <= 0 {
		return l.Intensity
	}
	d := p.Sub(l.Position).Len()
	if d >= l.Range {
		return 0
	}
	return l.Intensity * (1 - d/l.Range)
}

// Graph is the scene collection handed to the renderer once per frame.
type Graph struct {
	Background  core.Color
	Ambient     AmbientLight
	Directional DirectionalLight

	roots  []*Node
	points []*PointLight
}

// NewGraph returns a graph with the daylight rig: white ambient 0.6 and a
// directional light from (3, 4, 2) at 0.8.
func NewGraph() *Graph {
	return &Graph{
		Background:  0x87CEEB,
		Ambient:     AmbientLight{Color: 0xFFFFFF, Intensity: 0.6},
		Directional: DirectionalLight{Color: 0xFFFFFF, Intensity: 0.8, Dir: core.V3(-3, -4, -2).Normalize()},
	}
}

// Add inserts root nodes.
func (g *Graph) Add(nodes ...*Node) {
	for _, n := range nodes {
		if n != nil {
			g.roots = append(g.roots, n)
		}
	}
}

// Roots returns the top-level nodes in insertion order.
func (g *Graph) Roots() []*Node { return g.roots }

// Walk visits every visible node. Hidden subtrees are skipped.
func (g *Graph) Walk(fn func(*Node)) {
	for _, r := range g.roots {
		r.Walk(func(n *Node) bool {
			if n.Hidden {
				return false
			}
			fn(n)
			return true
		})
	}
}

// AddLight attaches a point light.
func (g *Graph) AddLight(l *PointLight) {
	if l != nil {
		g.points = append(g.points, l)
	}
}

// RemoveLight detaches a point light. Removing a light twice is a no-op.
func (g *Graph) RemoveLight(l *PointLight) bool {
	for i, cur := range g.points {
		if cur == l {
			g.points = append(g.points[:i], g.points[i+1:]...)
			return true
		}
	}
	return false
}

// Lights returns the attached point lights.
func (g *Graph) Lights() []*PointLight { return g.points }

// Hit is the result of a pick.
type Hit struct {
	Node     *Node
	Distance float64
}

// Pick returns the candidate whose bounds the ray enters first. Hidden
// candidates are ignored.
func Pick(r core.Ray, candidates []*Node) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	for _, n := range candidates {
		if n == nil || n.Hidden {
			continue
		}
		d, ok := n.Bounds().Intersect(r)
		if !ok || d >= best.Distance {
			continue
		}
		best = Hit{Node: n, Distance: d}
	}
	return best, best.Node != nil
}
