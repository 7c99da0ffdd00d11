package core

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestExtentIndexRoundTrip(t *testing.T) {
	e := Extent{Half: 3}
	if e.Len() != 36 {
		t.Fatalf("expected 36 cells, got %d", e.Len())
	}
	seen := make(map[int]bool)
	for z := -3; z < 3; z++ {
		for x := -3; x < 3; x++ {
			i := e.Index(x, z)
			if i < 0 || i >= e.Len() {
				t.Fatalf("index %d for (%d,%d) out of range", i, x, z)
			}
			if seen[i] {
				t.Fatalf("index %d reused", i)
			}
			seen[i] = true
			gx, gz := e.Coords(i)
			if gx != x || gz != z {
				t.Fatalf("Coords(%d) = (%d,%d), want (%d,%d)", i, gx, gz, x, z)
			}
		}
	}
	if e.Contains(3, 0) || !e.Contains(-3, 2) {
		t.Fatal("Contains must treat the upper bound as exclusive")
	}
}

func TestRotateYTurnsXTowardNegativeZ(t *testing.T) {
	v := V3(1, 0, 0).RotateY(math.Pi / 2)
	if !approx(v.X, 0) || !approx(v.Z, -1) {
		t.Fatalf("unexpected rotation result %+v", v)
	}
}

func TestLookAtMapsCenterOntoNegativeZ(t *testing.T) {
	view := LookAt(V3(0, 0, 10), V3(0, 0, 0), V3(0, 1, 0))
	p := view.TransformPoint(V3(0, 0, 0))
	if !approx(p.X, 0) || !approx(p.Y, 0) || !approx(p.Z, -10) {
		t.Fatalf("expected center 10 units ahead, got %+v", p)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Perspective(math.Pi/3, 1.5, 0.1, 100).Mul(LookAt(V3(3, 4, 5), V3(0, 0, 0), V3(0, 1, 0)))
	id := m.Mul(m.Invert())
	want := Mat4Identity()
	for i := range id {
		if math.Abs(id[i]-want[i]) > 1e-6 {
			t.Fatalf("m*inv(m)[%d] = %f, want %f", i, id[i], want[i])
		}
	}
}

func TestAABBIntersect(t *testing.T) {
	box := AABB{Min: V3(-1, -1, -1), Max: V3(1, 1, 1)}
	tests := []struct {
		name string
		ray  Ray
		hit  bool
		dist float64
	}{
		{"straight down", Ray{Origin: V3(0, 10, 0), Dir: V3(0, -1, 0)}, true, 9},
		{"miss beside", Ray{Origin: V3(3, 10, 0), Dir: V3(0, -1, 0)}, false, 0},
		{"pointing away", Ray{Origin: V3(0, 10, 0), Dir: V3(0, 1, 0)}, false, 0},
		{"inside", Ray{Origin: V3(0, 0, 0), Dir: V3(1, 0, 0)}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := box.Intersect(tt.ray)
			if ok != tt.hit {
				t.Fatalf("hit=%v, want %v", ok, tt.hit)
			}
			if ok && !approx(d, tt.dist) {
				t.Fatalf("distance %f, want %f", d, tt.dist)
			}
		})
	}
	if _, ok := EmptyAABB().Intersect(Ray{Dir: V3(0, -1, 0)}); ok {
		t.Fatal("empty box must never be hit")
	}
}

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })

	if ran := s.Advance(5 * time.Millisecond); ran != 0 {
		t.Fatalf("nothing should be due yet, ran %d", ran)
	}
	s.Advance(10 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order after 15ms: %v", order)
	}
	s.Advance(20 * time.Millisecond)
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("unexpected order after 35ms: %v", order)
	}
	if s.Len() != 0 {
		t.Fatalf("queue should be drained, %d left", s.Len())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(time.Millisecond, func() { fired = true })
	if !s.Cancel(id) {
		t.Fatal("expected pending event to be cancelled")
	}
	if s.Cancel(id) {
		t.Fatal("cancelling twice must report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Fatal("cancelled event must not run")
	}
}

func TestSchedulerChainedEventsRunWhenDue(t *testing.T) {
	s := NewScheduler()
	count := 0
	s.After(0, func() {
		count++
		s.After(0, func() { count++ })
	})
	s.Advance(0)
	if count != 2 {
		t.Fatalf("expected chained zero-delay event to run, count=%d", count)
	}
}

func TestFixedStepTicks(t *testing.T) {
	fs := NewFixedStep(50)
	for i := 0; i < 5; i++ {
		fs.Tick()
	}
	if fs.Now() != 100*time.Millisecond {
		t.Fatalf("expected 100ms after five ticks at 50 TPS, got %v", fs.Now())
	}
	if fs.Ticks() != 5 {
		t.Fatalf("expected 5 ticks, got %d", fs.Ticks())
	}
	if NewFixedStep(0).Step() != time.Second/60 {
		t.Fatal("non-positive TPS must fall back to 60")
	}
}

func TestColorChannels(t *testing.T) {
	c := Color(0x87CEEB).ToRGBA()
	if c.R != 0x87 || c.G != 0xCE || c.B != 0xEB || c.A != 255 {
		t.Fatalf("unexpected channels %+v", c)
	}
}
