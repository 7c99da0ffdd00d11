package structures

import (
	"tilescape/internal/core"
	"tilescape/internal/scene"
)

// Cloud builds a cluster of flattened puffs around pos.
func Cloud(pos core.Vec3) *scene.Node {
	group := scene.NewGroup("cloud")
	group.Tag = scene.TagCloud
	group.Position = pos
	for _, puff := range []struct{ x, y, z, r float64 }{
		{0, 0, 0, 1.2},
		{1.1, -0.2, 0.3, 0.9},
		{-1.0, -0.1, -0.2, 1.0},
		{0.3, 0.4, -0.6, 0.8},
	} {
		p := scene.NewMesh("puff", scene.Cylinder(puff.r, puff.r, 0.5, 8), colorCloud).At(puff.x, puff.y, puff.z)
		group.Add(p)
	}
	return group
}
