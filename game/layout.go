package game

import "github.com/dimaq12/minesweaper/models"

// Rect is an axis-aligned hit area in view coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Geometry maps grid positions to view coordinates and back. CellW and CellH
// are the cell pitch along each axis.
type Geometry struct {
	OriginX, OriginY int
	CellW, CellH     int

	MenuX, MenuY int
	ButtonW      int
	ButtonGap    int
}

// TerminalGeometry fits one cell in three columns of one text row, so the
// widest preset (30x16) needs 90x16 characters.
var TerminalGeometry = Geometry{
	OriginX: 1,
	OriginY: 1,
	CellW:   3,
	CellH:   1,

	MenuX:     2,
	MenuY:     3,
	ButtonW:   11,
	ButtonGap: 2,
}

// CellRect is the area a cell occupies on screen.
func (g Geometry) CellRect(pos models.Position) Rect {
	return Rect{
		X: g.OriginX + pos.Col*g.CellW,
		Y: g.OriginY + pos.Row*g.CellH,
		W: g.CellW,
		H: g.CellH,
	}
}

// BoardRect is the area covered by a cols x rows grid.
func (g Geometry) BoardRect(cols, rows int) Rect {
	return Rect{X: g.OriginX, Y: g.OriginY, W: cols * g.CellW, H: rows * g.CellH}
}

// CellAt returns the grid position under (x, y), or false when the point
// misses the board.
func (g Geometry) CellAt(x, y, cols, rows int) (models.Position, bool) {
	if !g.BoardRect(cols, rows).Contains(x, y) {
		return models.Position{}, false
	}
	return models.Position{
		Col: (x - g.OriginX) / g.CellW,
		Row: (y - g.OriginY) / g.CellH,
	}, true
}

// ButtonRect is the hit area of the i-th mode button on the menu.
func (g Geometry) ButtonRect(i int) Rect {
	return Rect{X: g.MenuX, Y: g.MenuY + i*g.ButtonGap, W: g.ButtonW, H: 1}
}
