package camera

import (
	"tilescape/internal/core"
	"tilescape/internal/scene"
)

const (
	// DragScale converts cursor pixels into world units while dragging.
	DragScale = 0.01

	hoverEmissive  core.Color = 0x222222
	selectEmissive core.Color = 0x333333
)

// PickFunc returns the tile node a ray hits first.
type PickFunc func(core.Ray) (*scene.Node, bool)

// TileDrag implements direct manipulation of terrain tiles: hovering
// highlights a tile, pressing grabs it, and cursor movement slides it over
// the ground plane. There is no snapping and no collision check, so tiles
// may end up overlapping.
type TileDrag struct {
	pick     PickFunc
	hovered  *scene.Node
	selected *scene.Node
}

// NewTileDrag returns a drag helper using pick for hit testing.
func NewTileDrag(pick PickFunc) *TileDrag {
	return &TileDrag{pick: pick}
}

// Hover highlights the tile under the ray. It does nothing while a tile is
// held.
func (d *TileDrag) Hover(r core.Ray) {
	if d.selected != nil {
		return
	}
	if d.hovered != nil {
		d.hovered.Emissive = 0
		d.hovered = nil
	}
	if n, ok := d.pick(r); ok {
		n.Emissive = hoverEmissive
		d.hovered = n
	}
}

// Press grabs the tile under the ray and reports whether one was hit.
func (d *TileDrag) Press(r core.Ray) bool {
	n, ok := d.pick(r)
	if !ok {
		return false
	}
	if d.hovered != nil && d.hovered != n {
		d.hovered.Emissive = 0
	}
	d.hovered = nil
	d.selected = n
	n.Emissive = selectEmissive
	return true
}

// Drag moves the held tile by a cursor delta: horizontal motion along X,
// vertical motion along Z.
func (d *TileDrag) Drag(dx, dy float64) {
	if d.selected == nil {
		return
	}
	d.selected.Position.X += dx * DragScale
	d.selected.Position.Z += dy * DragScale
}

// Release drops the held tile where it is.
func (d *TileDrag) Release() {
	if d.selected == nil {
		return
	}
	d.selected.Emissive = 0
	d.selected = nil
}

// Selected returns the held tile, if any.
func (d *TileDrag) Selected() *scene.Node { return d.selected }

// Hovered returns the highlighted tile, if any.
func (d *TileDrag) Hovered() *scene.Node { return d.hovered }
