package scene

import (
	"math"
	"testing"

	"tilescape/internal/core"
)

func TestChildWorldPositionFollowsParentYaw(t *testing.T) {
	parent := NewGroup("parent").At(10, 0, 0)
	parent.Yaw = math.Pi / 2
	child := NewMesh("child", Box(1, 1, 1), 0xFFFFFF).At(1, 2, 0)
	parent.Add(child)

	got := child.WorldPosition()
	if math.Abs(got.X-10) > 1e-9 || math.Abs(got.Y-2) > 1e-9 || math.Abs(got.Z+1) > 1e-9 {
		t.Fatalf("unexpected world position %+v", got)
	}
	if child.Parent() != parent {
		t.Fatal("Add must record the parent")
	}
}

func TestBoundsCoverDescendants(t *testing.T) {
	root := NewGroup("root").At(5, 0, 5)
	root.Add(
		NewMesh("low", Box(2, 1, 2), 0).At(0, 0.5, 0),
		NewMesh("high", Sphere(0.5, 6), 0).At(0, 3, 0),
	)
	b := root.Bounds()
	if b.Min.Y != 0 || b.Max.Y != 3.5 {
		t.Fatalf("unexpected vertical bounds %+v", b)
	}
	if b.Min.X != 4 || b.Max.X != 6 {
		t.Fatalf("unexpected horizontal bounds %+v", b)
	}
	if !NewGroup("empty").Bounds().Empty() {
		t.Fatal("a group without meshes has no bounds")
	}
}

func TestPickReturnsNearest(t *testing.T) {
	near := NewMesh("near", Box(1, 1, 1), 0).At(0, 5, 0)
	far := NewMesh("far", Box(1, 1, 1), 0).At(0, 1, 0)
	hidden := NewMesh("hidden", Box(1, 1, 1), 0).At(0, 8, 0)
	hidden.Hidden = true

	ray := core.Ray{Origin: core.V3(0, 20, 0), Dir: core.V3(0, -1, 0)}
	hit, ok := Pick(ray, []*Node{far, hidden, near})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Node != near {
		t.Fatalf("expected nearest node, got %s", hit.Node.Name)
	}
	if _, ok := Pick(core.Ray{Origin: core.V3(5, 20, 0), Dir: core.V3(0, -1, 0)}, []*Node{near, far}); ok {
		t.Fatal("expected miss")
	}
}

func TestGraphLights(t *testing.T) {
	g := NewGraph()
	l := &PointLight{Name: "flash", Intensity: 2, Range: 10}
	g.AddLight(l)
	if len(g.Lights()) != 1 {
		t.Fatalf("expected one light, got %d", len(g.Lights()))
	}
	if !g.RemoveLight(l) || g.RemoveLight(l) {
		t.Fatal("RemoveLight must succeed once and then report false")
	}
	if got := l.Contribution(core.V3(5, 0, 0)); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected half intensity at half range, got %f", got)
	}
}

func TestGraphWalkSkipsHiddenSubtrees(t *testing.T) {
	g := NewGraph()
	hidden := NewGroup("clouds")
	hidden.Hidden = true
	hidden.Add(NewMesh("puff", Sphere(1, 6), 0))
	g.Add(NewMesh("tile", Box(1, 1, 1), 0), hidden)

	var names []string
	g.Walk(func(n *Node) { names = append(names, n.Name) })
	if len(names) != 1 || names[0] != "tile" {
		t.Fatalf("unexpected walk result %v", names)
	}
}
