package models

import "fmt"

// Position is a grid coordinate. Col grows to the right, Row grows downwards.
type Position struct {
	Col int
	Row int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// FlagState is the marking a player has put on a closed cell.
type FlagState int

const (
	FlagNone FlagState = iota
	FlagFlagged
	FlagUnsure
)

func (f FlagState) String() string {
	switch f {
	case FlagFlagged:
		return "flagged"
	case FlagUnsure:
		return "unsure"
	default:
		return "none"
	}
}

// Cell is one square of the minefield. It holds no reference to the board
// that owns it; operations needing neighbours take the board explicitly.
type Cell struct {
	Pos    Position
	IsMine bool
	IsOpen bool
	Flag   FlagState
}

// IsMarked reports whether the cell carries a flag or a question mark.
// Marked cells reject a reveal.
func (c *Cell) IsMarked() bool {
	return c.Flag != FlagNone
}

// Cycle advances the marking of a closed cell: none -> flagged -> unsure -> none.
// It reports false and leaves the cell untouched when the cell is open.
func (c *Cell) Cycle() bool {
	if c.IsOpen {
		return false
	}

	switch c.Flag {
	case FlagNone:
		c.Flag = FlagFlagged
	case FlagFlagged:
		c.Flag = FlagUnsure
	default:
		c.Flag = FlagNone
	}
	return true
}
