package structures

import (
	"math"

	"tilescape/internal/core"
	"tilescape/internal/scene"
)

// House builds a cottage on pos, facing +Z.
func House(pos core.Vec3) *scene.Node {
	group := scene.NewGroup("house")
	group.Tag = scene.TagHouse
	group.Position = pos

	walls := scene.NewMesh("walls", scene.Box(0.8, 0.6, 0.8), colorHouseWall).At(0, 0.3, 0)
	roof := scene.NewMesh("roof", scene.Cone(0.65, 0.5, 4), colorRoof).At(0, 0.85, 0)
	roof.Yaw = math.Pi / 4
	door := scene.NewMesh("door", scene.Box(0.2, 0.35, 0.02), colorDoor).At(0, 0.175, 0.41)
	window := scene.NewMesh("window", scene.Box(0.02, 0.15, 0.2), colorWindow).At(0.41, 0.35, 0)
	chimney := scene.NewMesh("chimney", scene.Box(0.1, 0.3, 0.1), colorStoneDark).At(0.2, 1.0, -0.15)

	group.Add(walls, roof, door, window, chimney)
	return group
}
