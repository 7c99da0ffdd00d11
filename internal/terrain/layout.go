package terrain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLayout is returned when a layout name is not registered.
var ErrUnknownLayout = errors.New("unknown layout")

// PathStyle selects the base path pattern.
type PathStyle uint8

const (
	// PathNone lays no paths.
	PathNone PathStyle = iota
	// PathCross lays paths along the two center lines (x == 0 or z == 0).
	PathCross
	// PathLines lays paths on |x| == PathOffset or |z| == PathOffset.
	PathLines
)

// Layout holds the rules that drive one terrain generation.
type Layout struct {
	Name string

	// Tiles span [-Half, Half) on both axes.
	Half     int
	TileSize float64

	Paths      PathStyle
	PathOffset int

	// Stone paves tiles closer than StoneRadius to the center that also
	// satisfy |x| < StoneHalf and |z| < StoneHalf. Zero disables it.
	StoneRadius float64
	StoneHalf   int

	// Castle places a castle on the origin and keeps decorations and ponds
	// out of its footprint.
	Castle bool

	// PondThreshold turns grass into water where normalized noise exceeds
	// it. Values outside (0, 1) disable ponds.
	PondThreshold float64
	PondScale     float64
	// Relief jitters grass tile heights by up to this amount.
	Relief float64

	TreeChance   float64
	HouseChance  float64
	KnightChance float64

	// Draggable lets the user pick tiles up and move them.
	Draggable bool
}

// HalfExtent returns the distance from the center to the map edge in
// world units.
func (l Layout) HalfExtent() float64 {
	return float64(l.Half) * l.tileSize()
}

func (l Layout) tileSize() float64 {
	if l.TileSize <= 0 {
		return 1
	}
	return l.TileSize
}

var layouts = map[string]Layout{}

// Register adds a layout under its name.
func Register(l Layout) {
	if l.Name == "" {
		return
	}
	layouts[l.Name] = l
}

// Lookup returns the layout registered under name.
func Lookup(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("%w %q (have %v)", ErrUnknownLayout, name, Names())
	}
	return l, nil
}

// Names lists registered layouts in sorted order.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Layout{
		Name:       "meadow",
		Half:       5,
		TileSize:   1,
		Paths:      PathCross,
		TreeChance: 0.1,
		Draggable:  true,
	})
	Register(Layout{
		Name:         "village",
		Half:         15,
		TileSize:     1,
		Paths:        PathLines,
		PathOffset:   5,
		Relief:       0.03,
		TreeChance:   0.08,
		HouseChance:  0.03,
		KnightChance: 0.05,
	})
	Register(Layout{
		Name:          "castle",
		Half:          25,
		TileSize:      1,
		Paths:         PathLines,
		PathOffset:    5,
		StoneRadius:   5,
		StoneHalf:     4,
		Castle:        true,
		PondThreshold: 0.55,
		PondScale:     0.12,
		Relief:        0.04,
		TreeChance:    0.06,
		HouseChance:   0.02,
		KnightChance:  0.04,
	})
}
