package weather

import (
	"errors"
	"fmt"
	"strings"

	"tilescape/internal/core"
)

// ErrUnknownState is returned when a weather name cannot be parsed.
var ErrUnknownState = errors.New("unknown weather")

// State is the selected weather.
type State uint8

const (
	Sunny State = iota
	Night
	Rain
	Storm
)

// States lists every state in menu order.
var States = []State{Sunny, Night, Rain, Storm}

func (s State) String() string {
	switch s {
	case Sunny:
		return "sunny"
	case Night:
		return "night"
	case Rain:
		return "rain"
	case Storm:
		return "storm"
	default:
		return fmt.Sprintf("weather(%d)", uint8(s))
	}
}

// ParseState maps a name such as "storm" to its State.
func ParseState(name string) (State, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range States {
		if s.String() == name {
			return s, nil
		}
	}
	return Sunny, fmt.Errorf("%w %q", ErrUnknownState, name)
}

// Visuals are the scene parameters a state sets when selected.
type Visuals struct {
	Background  core.Color
	Ambient     float64
	Directional float64
	Rain        bool
	Clouds      float64
}

var visuals = map[State]Visuals{
	Sunny: {Background: 0x87CEEB, Ambient: 0.6, Directional: 0.8},
	Night: {Background: 0x0B1026, Ambient: 0.15, Directional: 0.1},
	Rain:  {Background: 0x5F6B78, Ambient: 0.4, Directional: 0.3, Rain: true, Clouds: 0.6},
	Storm: {Background: 0x2B3038, Ambient: 0.2, Directional: 0.1, Rain: true, Clouds: 0.9},
}

// VisualsFor returns the fixed parameters of s.
func VisualsFor(s State) Visuals { return visuals[s] }
