package structures

import (
	"math"

	"tilescape/internal/core"
	"tilescape/internal/scene"
)

const (
	castleHalf     = 4.0
	castleWallH    = 2.5
	castleWallT    = 0.5
	gateHalfWidth  = 1.2
	archHalfWidth  = 0.6
	archHeight     = 2.2
	baileyHalf     = 7.0
	baileyWallH    = 1.2
	baileyWallT    = 0.4
	baileyGateHalf = 1.5
	merlonSize     = 0.4
)

// CastleKeepOut is the radius around a castle's origin that its outer
// bailey occupies.
const CastleKeepOut = baileyHalf + 1

// Wall builds a crenellated wall segment standing on the ground between
// a and b (only X and Z are used). The segment is a group centered on the
// midpoint and rotated so its local X axis runs from a to b. One merlon is
// placed per whole unit of length.
func Wall(a, b core.Vec3, height, thickness float64) *scene.Node {
	dx, dz := b.X-a.X, b.Z-a.Z
	length := math.Hypot(dx, dz)

	group := scene.NewGroup("wall")
	group.Position = core.V3((a.X+b.X)/2, 0, (a.Z+b.Z)/2)
	group.Yaw = math.Atan2(-dz, dx)

	if height > 0 {
		group.Add(scene.NewMesh("curtain", scene.Box(length, height, thickness), colorStone).At(0, height/2, 0))
	}
	count := int(math.Floor(length))
	for i := 0; i < count; i++ {
		x := -length/2 + (float64(i)+0.5)*length/float64(count)
		group.Add(scene.NewMesh("merlon", scene.Box(merlonSize, merlonSize, thickness), colorStone).At(x, height+merlonSize/2, 0))
	}
	return group
}

// Castle builds a keep with four corner towers, curtain walls, a gatehouse
// facing +Z and a lower outer bailey, centered on pos.
func Castle(pos core.Vec3) *scene.Node {
	castle := scene.NewGroup("castle")
	castle.Tag = scene.TagCastle
	castle.Position = pos

	castle.Add(keep())

	corners := []core.Vec3{
		core.V3(-castleHalf, 0, -castleHalf),
		core.V3(castleHalf, 0, -castleHalf),
		core.V3(castleHalf, 0, castleHalf),
		core.V3(-castleHalf, 0, castleHalf),
	}
	for _, c := range corners {
		castle.Add(tower(c))
	}

	// Back and side walls run corner to corner; the front wall is split
	// around the gatehouse.
	castle.Add(
		Wall(corners[0], corners[1], castleWallH, castleWallT),
		Wall(corners[1], corners[2], castleWallH, castleWallT),
		Wall(corners[3], corners[0], castleWallH, castleWallT),
		Wall(corners[2], core.V3(gateHalfWidth, 0, castleHalf), castleWallH, castleWallT),
		Wall(core.V3(-gateHalfWidth, 0, castleHalf), corners[3], castleWallH, castleWallT),
	)
	castle.Add(Gatehouse(core.V3(0, 0, castleHalf)))
	castle.Add(bailey())
	return castle
}

func keep() *scene.Node {
	const w, h = 3.0, 5.0
	k := scene.NewGroup("keep")
	k.Add(scene.NewMesh("keep-body", scene.Box(w, h, w), colorStoneDark).At(0, h/2, 0))

	crown := scene.NewGroup("keep-crown").At(0, h, 0)
	edge := []core.Vec3{
		core.V3(-w/2, 0, -w/2), core.V3(w/2, 0, -w/2),
		core.V3(w/2, 0, w/2), core.V3(-w/2, 0, w/2),
	}
	for i := range edge {
		crown.Add(Wall(edge[i], edge[(i+1)%len(edge)], 0, 0.3))
	}
	k.Add(crown)
	return k
}

func tower(pos core.Vec3) *scene.Node {
	const r, h = 0.8, 4.0
	t := scene.NewGroup("tower")
	t.Position = pos
	t.Add(
		scene.NewMesh("tower-body", scene.Cylinder(r, r, h, 8), colorStone).At(0, h/2, 0),
		scene.NewMesh("tower-roof", scene.Cone(r+0.2, 1.5, 8), colorTowerRoof).At(0, h+0.75, 0),
	)
	return t
}

// Gatehouse builds the gate block centered on pos. Two pillars carry a
// lintel, leaving an open archway below archHeight so the path runs
// through.
func Gatehouse(pos core.Vec3) *scene.Node {
	const depth = 1.2
	pillarW := gateHalfWidth - archHalfWidth
	pillarX := archHalfWidth + pillarW/2
	top := castleWallH + 0.8

	g := scene.NewGroup("gatehouse")
	g.Position = pos
	g.Add(
		scene.NewMesh("gate-pillar", scene.Box(pillarW, top, depth), colorStoneDark).At(-pillarX, top/2, 0),
		scene.NewMesh("gate-pillar", scene.Box(pillarW, top, depth), colorStoneDark).At(pillarX, top/2, 0),
		scene.NewMesh("gate-lintel", scene.Box(2*archHalfWidth, top-archHeight, depth), colorStoneDark).At(0, archHeight+(top-archHeight)/2, 0),
		scene.NewMesh("gate-door", scene.Box(2*archHalfWidth, 0.1, 0.1), colorGate).At(0, archHeight-0.05, -depth/2),
	)
	crown := scene.NewGroup("gate-crown").At(0, top, 0)
	crown.Add(Wall(core.V3(-gateHalfWidth, 0, 0), core.V3(gateHalfWidth, 0, 0), 0, depth))
	g.Add(crown)
	return g
}

func bailey() *scene.Node {
	b := scene.NewGroup("bailey")
	c := []core.Vec3{
		core.V3(-baileyHalf, 0, -baileyHalf),
		core.V3(baileyHalf, 0, -baileyHalf),
		core.V3(baileyHalf, 0, baileyHalf),
		core.V3(-baileyHalf, 0, baileyHalf),
	}
	b.Add(
		Wall(c[0], c[1], baileyWallH, baileyWallT),
		Wall(c[1], c[2], baileyWallH, baileyWallT),
		Wall(c[3], c[0], baileyWallH, baileyWallT),
		Wall(c[2], core.V3(baileyGateHalf, 0, baileyHalf), baileyWallH, baileyWallT),
		Wall(core.V3(-baileyGateHalf, 0, baileyHalf), c[3], baileyWallH, baileyWallT),
	)
	for _, p := range c {
		b.Add(scene.NewMesh("bailey-post", scene.Cylinder(0.4, 0.4, 1.8, 6), colorStone).At(p.X, 0.9, p.Z))
	}
	return b
}
