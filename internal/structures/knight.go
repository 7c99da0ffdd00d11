package structures

import (
	"tilescape/internal/core"
	"tilescape/internal/scene"
)

// Knight builds a standing knight on pos holding a sword and shield.
func Knight(pos core.Vec3) *scene.Node {
	group := scene.NewGroup("knight")
	group.Tag = scene.TagKnight
	group.Position = pos

	group.Add(
		scene.NewMesh("leg-left", scene.Box(0.08, 0.3, 0.08), colorArmor).At(-0.06, 0.15, 0),
		scene.NewMesh("leg-right", scene.Box(0.08, 0.3, 0.08), colorArmor).At(0.06, 0.15, 0),
		scene.NewMesh("body", scene.Cylinder(0.12, 0.15, 0.35, 6), colorTabard).At(0, 0.475, 0),
		scene.NewMesh("head", scene.Sphere(0.09, 6), colorSkin).At(0, 0.74, 0),
		scene.NewMesh("helmet", scene.Cylinder(0.1, 0.1, 0.1, 6), colorArmor).At(0, 0.78, 0),
		scene.NewMesh("plume", scene.Cone(0.04, 0.12, 4), colorPlume).At(0, 0.89, 0),
		scene.NewMesh("sword", scene.Box(0.03, 0.45, 0.03), colorArmor).At(0.2, 0.5, 0.05),
		scene.NewMesh("hilt", scene.Box(0.12, 0.03, 0.03), colorLeather).At(0.2, 0.33, 0.05),
		scene.NewMesh("shield", scene.Box(0.04, 0.28, 0.2), colorTabard).At(-0.19, 0.47, 0.02),
	)
	return group
}
