package models

import (
	"fmt"
	"strings"
)

// Mode is a fixed board preset selectable from the menu.
type Mode struct {
	Cols int
	Rows int
}

// Modes are the presets offered to the player, in menu order.
var Modes = []Mode{
	{Cols: 8, Rows: 8},
	{Cols: 16, Rows: 16},
	{Cols: 30, Rows: 16},
}

// MineDensityPercent is the share of cells holding a mine.
const MineDensityPercent = 15

// MineTotal is floor(0.15 * cols * rows), computed in integers.
func (m Mode) MineTotal() int {
	return MineDensityPercent * m.Cols * m.Rows / 100
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d", m.Cols, m.Rows)
}

// ParseMode looks a preset up by its "COLSxROWS" name.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if m.String() == name {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("unknown mode %q", s)
}
