package structures

import (
	"tilescape/internal/core"
	"tilescape/internal/scene"
)

// Tree builds a low-poly tree standing on pos: a tapered trunk under three
// shrinking leaf layers.
func Tree(pos core.Vec3) *scene.Node {
	group := scene.NewGroup("tree")
	group.Tag = scene.TagTree
	group.Position = pos

	trunk := scene.NewMesh("trunk", scene.Cylinder(0.1, 0.15, 0.5, 5), colorTrunk).At(0, 0.25, 0)
	group.Add(trunk)
	for _, layer := range []struct{ y, scale float64 }{{0.7, 1}, {0.9, 0.8}, {1.1, 0.6}} {
		group.Add(scene.NewMesh("leaves", scene.Sphere(0.4*layer.scale, 4), colorLeaves).At(0, layer.y, 0))
	}
	return group
}

// Flame builds the fire attached to a burning tree, in the tree's local
// space.
func Flame() *scene.Node {
	flame := scene.NewGroup("flame")
	flame.Tag = scene.TagFlame
	flame.Add(
		scene.NewMesh("flame-core", scene.Cone(0.25, 0.6, 5), colorFlame).At(0, 1.45, 0),
		scene.NewMesh("flame-tip", scene.Cone(0.12, 0.35, 4), 0xFFD000).At(0, 1.7, 0),
	)
	for _, n := range flame.Children {
		n.Emissive = 0x552200
		n.Opacity = 0.85
	}
	return flame
}
