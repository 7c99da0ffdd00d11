// Package scene holds the retained scene graph the renderer draws: nodes
// carrying simple primitive shapes, plus the light rig and background.
package scene

import (
	"math"

	"tilescape/internal/core"
)

// Shape enumerates the primitive a node draws. Group nodes draw nothing.
type Shape uint8

const (
	ShapeGroup Shape = iota
	ShapeBox
	ShapeCylinder
	ShapeSphere
	ShapeCone
)

// Tag classifies nodes so effects can find them without type switches.
type Tag uint8

const (
	TagNone Tag = iota
	TagTile
	TagTree
	TagHouse
	TagKnight
	TagCastle
	TagCloud
	TagFlame
)

// Primitive describes the geometry of a mesh node in local space. Every
// shape is centered on the node position.
type Primitive struct {
	Shape Shape

	// Box dimensions.
	Width, Height, Depth float64

	// Round shapes. Cones use RadiusBottom.
	RadiusTop, RadiusBottom float64
	Segments                int
}

// Box returns a w*h*d box primitive.
func Box(w, h, d float64) Primitive {
	return Primitive{Shape: ShapeBox, Width: w, Height: h, Depth: d}
}

// Cylinder returns a cylinder with distinct top and bottom radii.
func Cylinder(top, bottom, h float64, segments int) Primitive {
	return Primitive{Shape: ShapeCylinder, RadiusTop: top, RadiusBottom: bottom, Height: h, Segments: segments}
}

// Sphere returns a sphere primitive.
func Sphere(r float64, segments int) Primitive {
	return Primitive{Shape: ShapeSphere, RadiusTop: r, RadiusBottom: r, Height: 2 * r, Segments: segments}
}

// Cone returns a cone primitive with its apex up.
func Cone(r, h float64, segments int) Primitive {
	return Primitive{Shape: ShapeCone, RadiusBottom: r, Height: h, Segments: segments}
}

// LocalBounds returns the axis-aligned extent of the primitive around its
// own origin.
func (p Primitive) LocalBounds() core.AABB {
	switch p.Shape {
	case ShapeBox:
		return core.AABB{
			Min: core.V3(-p.Width/2, -p.Height/2, -p.Depth/2),
			Max: core.V3(p.Width/2, p.Height/2, p.Depth/2),
		}
	case ShapeCylinder, ShapeSphere, ShapeCone:
		r := math.Max(p.RadiusTop, p.RadiusBottom)
		return core.AABB{
			Min: core.V3(-r, -p.Height/2, -r),
			Max: core.V3(r, p.Height/2, r),
		}
	default:
		return core.EmptyAABB()
	}
}

// Node is one element of the scene graph. Position and Yaw are relative
// to the parent node.
type Node struct {
	Name string
	Tag  Tag

	Position core.Vec3
	Yaw      float64

	Prim     Primitive
	Color    core.Color
	Emissive core.Color
	// Opacity of 0 is treated as fully opaque; use Hidden to hide a node.
	Opacity float64
	Hidden  bool

	Children []*Node
	parent   *Node
}

// NewGroup returns an empty group node.
func NewGroup(name string) *Node {
	return &Node{Name: name}
}

// NewMesh returns a node drawing prim in the given color.
func NewMesh(name string, prim Primitive, color core.Color) *Node {
	return &Node{Name: name, Prim: prim, Color: color}
}

// At sets the local position and returns n for chaining.
func (n *Node) At(x, y, z float64) *Node {
	n.Position = core.V3(x, y, z)
	return n
}

// Add attaches children to n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Parent returns the node n is attached to, if any.
func (n *Node) Parent() *Node { return n.parent }

// Alpha returns the effective opacity in [0, 1].
func (n *Node) Alpha() float64 {
	if n.Opacity <= 0 || n.Opacity > 1 {
		return 1
	}
	return n.Opacity
}

// WorldYaw returns the accumulated rotation about Y.
func (n *Node) WorldYaw() float64 {
	yaw := 0.0
	for cur := n; cur != nil; cur = cur.parent {
		yaw += cur.Yaw
	}
	return yaw
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() core.Vec3 {
	return n.ToWorld(core.Vec3{})
}

// ToWorld transforms a point in n's local space into world space.
func (n *Node) ToWorld(p core.Vec3) core.Vec3 {
	for cur := n; cur != nil; cur = cur.parent {
		p = p.RotateY(cur.Yaw).Add(cur.Position)
	}
	return p
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Bounds returns the world-space bounds of n and all of its descendants.
func (n *Node) Bounds() core.AABB {
	box := core.EmptyAABB()
	n.Walk(func(cur *Node) bool {
		local := cur.Prim.LocalBounds()
		if local.Empty() {
			return true
		}
		for i := 0; i < 8; i++ {
			corner := core.V3(
				pick(i&1 != 0, local.Max.X, local.Min.X),
				pick(i&2 != 0, local.Max.Y, local.Min.Y),
				pick(i&4 != 0, local.Max.Z, local.Min.Z),
			)
			box = box.Extend(cur.ToWorld(corner))
		}
		return true
	})
	return box
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
