package structures

import (
	"math"
	"testing"

	"tilescape/internal/core"
	"tilescape/internal/scene"
)

func countNamed(root *scene.Node, name string) int {
	n := 0
	root.Walk(func(cur *scene.Node) bool {
		if cur.Name == name {
			n++
		}
		return true
	})
	return n
}

func TestTreeMatchesReferenceShape(t *testing.T) {
	tree := Tree(core.V3(2, 0, -3))
	if tree.Tag != scene.TagTree {
		t.Fatalf("expected tree tag, got %v", tree.Tag)
	}
	if len(tree.Children) != 4 {
		t.Fatalf("expected trunk plus three leaf layers, got %d children", len(tree.Children))
	}
	b := tree.Bounds()
	if b.Min.Y != 0 {
		t.Fatalf("tree must stand on the ground, min y %f", b.Min.Y)
	}
	if math.Abs(b.Max.Y-1.34) > 1e-9 {
		t.Fatalf("expected top leaf layer to reach 1.34, got %f", b.Max.Y)
	}
	if c := b.Center(); math.Abs(c.X-2) > 1e-9 || math.Abs(c.Z+3) > 1e-9 {
		t.Fatalf("tree not centered on its position: %+v", c)
	}
}

func TestWallGeometry(t *testing.T) {
	tests := []struct {
		name    string
		a, b    core.Vec3
		merlons int
		yaw     float64
	}{
		{"along x", core.V3(0, 0, 0), core.V3(4, 0, 0), 4, 0},
		{"along -z", core.V3(0, 0, 0), core.V3(0, 0, -3.5), 3, math.Pi / 2},
		{"diagonal", core.V3(0, 0, 0), core.V3(3, 0, 4), 5, math.Atan2(-4, 3)},
		{"short", core.V3(1, 0, 1), core.V3(1.5, 0, 1), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Wall(tt.a, tt.b, 2, 0.5)
			if got := countNamed(w, "merlon"); got != tt.merlons {
				t.Fatalf("expected %d merlons, got %d", tt.merlons, got)
			}
			if math.Abs(w.Yaw-tt.yaw) > 1e-9 {
				t.Fatalf("expected yaw %f, got %f", tt.yaw, w.Yaw)
			}
			// The curtain must span exactly from a to b.
			var curtain *scene.Node
			for _, c := range w.Children {
				if c.Name == "curtain" {
					curtain = c
				}
			}
			if curtain == nil {
				t.Fatal("missing curtain")
			}
			end := curtain.ToWorld(core.V3(curtain.Prim.Width/2, 0, 0))
			if math.Abs(end.X-tt.b.X) > 1e-9 || math.Abs(end.Z-tt.b.Z) > 1e-9 {
				t.Fatalf("curtain ends at %+v, want %+v", end, tt.b)
			}
		})
	}
}

func TestGatehouseArchIsOpen(t *testing.T) {
	castle := Castle(core.V3(0, 0, 0))
	var gate *scene.Node
	castle.Walk(func(n *scene.Node) bool {
		if n.Name == "gatehouse" {
			gate = n
		}
		return true
	})
	if gate == nil {
		t.Fatal("castle has no gatehouse")
	}
	var meshes []*scene.Node
	gate.Walk(func(n *scene.Node) bool {
		if n.Prim.Shape != scene.ShapeGroup {
			meshes = append(meshes, n)
		}
		return true
	})
	through := core.Ray{Origin: core.V3(0, 1, 10), Dir: core.V3(0, 0, -1)}
	if hit, ok := scene.Pick(through, meshes); ok {
		t.Fatalf("walking through the arch hit %s", hit.Node.Name)
	}
	above := core.Ray{Origin: core.V3(0, 2.8, 10), Dir: core.V3(0, 0, -1)}
	if _, ok := scene.Pick(above, meshes); !ok {
		t.Fatal("expected the lintel above the arch")
	}
}

func TestCastleComposition(t *testing.T) {
	castle := Castle(core.V3(0, 0, 0))
	if got := countNamed(castle, "tower"); got != 4 {
		t.Fatalf("expected 4 towers, got %d", got)
	}
	if got := countNamed(castle, "bailey"); got != 1 {
		t.Fatalf("expected an outer bailey, got %d", got)
	}
	b := castle.Bounds()
	if b.Max.X > CastleKeepOut || b.Min.Z < -CastleKeepOut {
		t.Fatalf("castle exceeds its keep-out radius: %+v", b)
	}
}

func TestBuildersArePure(t *testing.T) {
	a := House(core.V3(1, 0, 1))
	b := House(core.V3(1, 0, 1))
	if a == b || len(a.Children) != len(b.Children) {
		t.Fatal("builders must return fresh, identical structures")
	}
	if Knight(core.V3(0, 0, 0)).Tag != scene.TagKnight {
		t.Fatal("knight tag missing")
	}
	if Flame().Tag != scene.TagFlame {
		t.Fatal("flame tag missing")
	}
}
