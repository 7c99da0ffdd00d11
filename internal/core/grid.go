package core

// Extent describes a square grid centered on the origin. Cells span
// coordinates [-Half, Half) on both axes and are stored row-major by Z.
type Extent struct {
	Half int
}

// Side returns the number of cells along one axis.
func (e Extent) Side() int {
	if e.Half <= 0 {
		return 0
	}
	return 2 * e.Half
}

// Len returns the total number of cells.
func (e Extent) Len() int { return e.Side() * e.Side() }

// Contains reports whether (x, z) lies inside the grid.
func (e Extent) Contains(x, z int) bool {
	return x >= -e.Half && x < e.Half && z >= -e.Half && z < e.Half
}

// Index returns the linear slice index for coordinates (x, z).
func (e Extent) Index(x, z int) int {
	return (z+e.Half)*e.Side() + (x + e.Half)
}

// Coords is the inverse of Index.
func (e Extent) Coords(i int) (int, int) {
	side := e.Side()
	return i%side - e.Half, i/side - e.Half
}
