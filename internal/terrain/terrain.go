package terrain

import (
	"math"

	"tilescape/internal/core"
	"tilescape/internal/scene"
	"tilescape/internal/structures"
	rng "tilescape/pkg/core"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Kind classifies a tile.
type Kind uint8

const (
	Grass Kind = iota
	Path
	Stone
	Water
)

func (k Kind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Path:
		return "path"
	case Stone:
		return "stone"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

var kindColors = map[Kind]core.Color{
	Grass: 0x90EE90,
	Path:  0xDEB887,
	Stone: 0xA9A9A9,
	Water: 0x4169E1,
}

// Tile is one grid cell. Kind never changes after generation; Node is the
// visual handle and may be moved by a tile drag.
type Tile struct {
	X, Z int
	Kind Kind
	Node *scene.Node
}

// Decoration is a structure placed on a tile during generation.
type Decoration struct {
	Tag  scene.Tag
	X, Z int
	Node *scene.Node
}

// Sink receives the nodes the generator creates.
type Sink interface {
	Add(nodes ...*scene.Node)
}

// Map is the generated terrain. It indexes tiles by grid coordinate and
// maps visual handles back to tiles for picking.
type Map struct {
	Layout Layout

	extent      core.Extent
	tiles       []Tile
	byNode      map[*scene.Node]int
	decorations []Decoration
	castle      *scene.Node
}

// Generate builds the terrain for layout l. Base tile kinds follow fixed
// rules; ponds and relief come from noise seeded by r, and decorations are
// placed with three independent rolls per tile (tree, house, knight) so a
// given random sequence always yields the same map. Every created node is
// added to sink.
func Generate(l Layout, r rng.Rand, sink Sink) *Map {
	if l.Half < 0 {
		l.Half = 0
	}
	size := l.tileSize()
	m := &Map{
		Layout: l,
		extent: core.Extent{Half: l.Half},
		byNode: make(map[*scene.Node]int),
	}
	m.tiles = make([]Tile, m.extent.Len())

	noise := opensimplex.NewNormalized(int64(r.IntN(math.MaxInt32)))
	pondScale := l.PondScale
	if pondScale <= 0 {
		pondScale = 0.1
	}

	for z := -l.Half; z < l.Half; z++ {
		for x := -l.Half; x < l.Half; x++ {
			kind := m.baseKind(x, z)
			if kind == Grass && l.PondThreshold > 0 && l.PondThreshold < 1 && !m.inKeepOut(x, z) {
				if noise.Eval2(float64(x)*pondScale, float64(z)*pondScale) > l.PondThreshold {
					kind = Water
				}
			}
			relief := 0.0
			if kind == Grass && l.Relief > 0 {
				relief = (noise.Eval2(float64(x)*0.35+100, float64(z)*0.35+100)*2 - 1) * l.Relief
			}
			node := tileNode(kind, float64(x)*size, float64(z)*size, size, relief)
			idx := m.extent.Index(x, z)
			m.tiles[idx] = Tile{X: x, Z: z, Kind: kind, Node: node}
			m.byNode[node] = idx
			sink.Add(node)
		}
	}

	if l.Castle {
		m.castle = structures.Castle(core.V3(0, 0, 0))
		sink.Add(m.castle)
	}

	for i := range m.tiles {
		t := &m.tiles[i]
		treeRoll, houseRoll, knightRoll := r.Float64(), r.Float64(), r.Float64()
		pos := core.V3(float64(t.X)*size, 0, float64(t.Z)*size)
		var deco *scene.Node
		switch {
		case t.Kind == Grass && m.inKeepOut(t.X, t.Z):
		case t.Kind == Grass && treeRoll < l.TreeChance:
			deco = structures.Tree(pos)
		case t.Kind == Grass && houseRoll < l.HouseChance:
			pos.Y = 0.1
			deco = structures.House(pos)
		case t.Kind == Path && knightRoll < l.KnightChance && !m.inKeepOut(t.X, t.Z):
			deco = structures.Knight(pos)
		}
		if deco == nil {
			continue
		}
		m.decorations = append(m.decorations, Decoration{Tag: deco.Tag, X: t.X, Z: t.Z, Node: deco})
		sink.Add(deco)
	}
	return m
}

func (m *Map) baseKind(x, z int) Kind {
	l := m.Layout
	switch l.Paths {
	case PathCross:
		if x == 0 || z == 0 {
			return Path
		}
	case PathLines:
		if abs(x) == l.PathOffset || abs(z) == l.PathOffset {
			return Path
		}
	}
	if l.StoneRadius > 0 {
		d := math.Hypot(float64(x), float64(z))
		if d < l.StoneRadius && abs(x) < l.StoneHalf && abs(z) < l.StoneHalf {
			return Stone
		}
	}
	return Grass
}

func (m *Map) inKeepOut(x, z int) bool {
	if !m.Layout.Castle {
		return false
	}
	size := m.Layout.tileSize()
	return math.Hypot(float64(x)*size, float64(z)*size) < structures.CastleKeepOut
}

// tileNode builds the box for one tile. Grass tops sit at 0.1, paths at
// 0 and water below both.
func tileNode(kind Kind, x, z, size, relief float64) *scene.Node {
	var h, y float64
	switch kind {
	case Path:
		h, y = 0.1, -0.05
	case Stone:
		h, y = 0.25, 0.025
	case Water:
		h, y = 0.05, -0.1
	default:
		h = 0.2 + relief
		y = relief / 2
	}
	n := scene.NewMesh(kind.String(), scene.Box(size, h, size), kindColors[kind]).At(x, y, z)
	n.Tag = scene.TagTile
	if kind == Water {
		n.Opacity = 0.75
	}
	return n
}

// Len returns the number of tiles.
func (m *Map) Len() int { return len(m.tiles) }

// Tiles exposes all tiles in row-major order.
func (m *Map) Tiles() []Tile { return m.tiles }

// Tile returns the tile at grid coordinates (x, z).
func (m *Map) Tile(x, z int) (*Tile, bool) {
	if !m.extent.Contains(x, z) {
		return nil, false
	}
	return &m.tiles[m.extent.Index(x, z)], true
}

// Decorations lists every placed structure except the castle.
func (m *Map) Decorations() []Decoration { return m.decorations }

// Castle returns the castle node, or nil when the layout has none.
func (m *Map) Castle() *scene.Node { return m.castle }

// Trees returns the tree nodes, the targets lightning can strike.
func (m *Map) Trees() []*scene.Node {
	var trees []*scene.Node
	for _, d := range m.decorations {
		if d.Tag == scene.TagTree {
			trees = append(trees, d.Node)
		}
	}
	return trees
}

// Counts tallies tiles by kind.
func (m *Map) Counts() map[Kind]int {
	counts := make(map[Kind]int, 4)
	for _, t := range m.tiles {
		counts[t.Kind]++
	}
	return counts
}

// Pick returns the tile whose box the ray enters first.
func (m *Map) Pick(r core.Ray) (*Tile, bool) {
	nodes := make([]*scene.Node, len(m.tiles))
	for i := range m.tiles {
		nodes[i] = m.tiles[i].Node
	}
	hit, ok := scene.Pick(r, nodes)
	if !ok {
		return nil, false
	}
	return &m.tiles[m.byNode[hit.Node]], true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
