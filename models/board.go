package models

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the panic value (wrapped) raised when a position outside
// the grid is looked up. Reaching it means a caller skipped the bounds check.
var ErrOutOfBounds = errors.New("position out of bounds")

// neighborOffsets lists the 8 compass directions in the order the flood fill
// visits them: row above left to right, same row, row below.
var neighborOffsets = [8]Position{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board owns every cell of one round. Cells are addressed as Cells[row][col].
type Board struct {
	Cells [][]Cell
	Cols  int
	Rows  int

	minesPlaced bool
}

// NewBoard builds a mine-free board of cols x rows closed cells.
func NewBoard(cols, rows int) *Board {
	board := make([][]Cell, rows)
	for row := range board {
		board[row] = make([]Cell, cols)
		for col := range board[row] {
			board[row][col].Pos = Position{Col: col, Row: row}
		}
	}

	return &Board{
		Cells: board,
		Rows:  rows,
		Cols:  cols,
	}
}

// InBounds reports whether pos lies within [0,Cols) x [0,Rows).
func (b *Board) InBounds(pos Position) bool {
	return pos.Col >= 0 && pos.Col < b.Cols && pos.Row >= 0 && pos.Row < b.Rows
}

// Cell returns the cell at pos. It panics with ErrOutOfBounds when pos is
// outside the board.
func (b *Board) Cell(pos Position) *Cell {
	if !b.InBounds(pos) {
		panic(fmt.Errorf("cell %v on %dx%d board: %w", pos, b.Cols, b.Rows, ErrOutOfBounds))
	}
	return &b.Cells[pos.Row][pos.Col]
}

// Size is the total number of cells.
func (b *Board) Size() int {
	return b.Cols * b.Rows
}

// NeighborsOf returns the cells around pos, clipped to the board, in
// neighborOffsets order.
func (b *Board) NeighborsOf(pos Position) []*Cell {
	if !b.InBounds(pos) {
		panic(fmt.Errorf("neighbors of %v on %dx%d board: %w", pos, b.Cols, b.Rows, ErrOutOfBounds))
	}

	neighbors := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Position{Col: pos.Col + d.Col, Row: pos.Row + d.Row}
		if b.InBounds(n) {
			neighbors = append(neighbors, &b.Cells[n.Row][n.Col])
		}
	}
	return neighbors
}

// AdjacentMineCount counts the mines around pos (0-8).
func (b *Board) AdjacentMineCount(pos Position) int {
	count := 0
	for _, n := range b.NeighborsOf(pos) {
		if n.IsMine {
			count++
		}
	}
	return count
}

// MinesPlaced reports whether PlaceMines already ran on this board.
func (b *Board) MinesPlaced() bool {
	return b.minesPlaced
}

// MineCount is the number of mine cells on the board.
func (b *Board) MineCount() int {
	return b.count(func(c *Cell) bool { return c.IsMine })
}

// OpenedSafeCount is the number of opened cells that are not mines.
func (b *Board) OpenedSafeCount() int {
	return b.count(func(c *Cell) bool { return c.IsOpen && !c.IsMine })
}

// FlaggedCount is the number of cells carrying a flag (unsure marks excluded).
func (b *Board) FlaggedCount() int {
	return b.count(func(c *Cell) bool { return c.Flag == FlagFlagged })
}

func (b *Board) count(match func(c *Cell) bool) int {
	n := 0
	for row := range b.Cells {
		for col := range b.Cells[row] {
			if match(&b.Cells[row][col]) {
				n++
			}
		}
	}
	return n
}
