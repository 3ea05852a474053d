package game

import "github.com/dimaq12/minesweaper/models"

// Variant is how a cell is drawn.
type Variant int

const (
	VariantClosed Variant = iota
	VariantFlagged
	VariantUnsure
	VariantOpenBlank
	VariantOpenNumber
	VariantOpenMine
)

// CellView is the render model of one cell. Count is set for
// VariantOpenNumber only.
type CellView struct {
	Pos     models.Position
	Rect    Rect
	Variant Variant
	Count   int
}

// ButtonView is a clickable mode choice on the menu.
type ButtonView struct {
	Label string
	Rect  Rect
	Mode  models.Mode
}

// Snapshot is a read-only picture of the session for one frame.
type Snapshot struct {
	Status    Status
	RoundID   string
	Mode      models.Mode
	Cells     []CellView
	Buttons   []ButtonView
	Message   []string
	MinesLeft int
}

const menuTitle = "Choose size of game field"

var (
	wonMessage  = []string{"Congratulations! You are WINNER!", "Press SPACE to play again."}
	lostMessage = []string{"GAME OVER!", "Press SPACE to restart."}
)

// Snapshot builds the render model. After a loss every closed, unflagged
// mine is shown as well; the cells themselves stay closed.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Status:  s.status,
		RoundID: s.roundID,
		Mode:    s.mode,
	}

	switch s.status {
	case AwaitingMode:
		snap.Message = []string{menuTitle}
		for i, mode := range models.Modes {
			snap.Buttons = append(snap.Buttons, ButtonView{
				Label: mode.String(),
				Rect:  s.geometry.ButtonRect(i),
				Mode:  mode,
			})
		}
		return snap
	case Won:
		snap.Message = wonMessage
	case Lost:
		snap.Message = lostMessage
	}

	snap.MinesLeft = s.mineTotal - s.board.FlaggedCount()
	snap.Cells = make([]CellView, 0, s.board.Size())
	for row := range s.board.Cells {
		for col := range s.board.Cells[row] {
			cell := &s.board.Cells[row][col]
			view := CellView{
				Pos:     cell.Pos,
				Rect:    s.geometry.CellRect(cell.Pos),
				Variant: s.variantOf(cell),
			}
			if view.Variant == VariantOpenNumber {
				view.Count = s.board.AdjacentMineCount(cell.Pos)
			}
			snap.Cells = append(snap.Cells, view)
		}
	}
	return snap
}

func (s *Session) variantOf(cell *models.Cell) Variant {
	switch {
	case cell.IsOpen && cell.IsMine:
		return VariantOpenMine
	case cell.IsOpen:
		if s.board.AdjacentMineCount(cell.Pos) == 0 {
			return VariantOpenBlank
		}
		return VariantOpenNumber
	case cell.Flag == models.FlagFlagged:
		return VariantFlagged
	case s.status == Lost && cell.IsMine:
		return VariantOpenMine
	case cell.Flag == models.FlagUnsure:
		return VariantUnsure
	default:
		return VariantClosed
	}
}
