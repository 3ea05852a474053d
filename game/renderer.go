package game

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	closedStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(30, 30, 30)).Foreground(tcell.ColorGray)
	markStyle   = closedStyle.Foreground(tcell.ColorRed).Bold(true)
	openStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	mineStyle   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	winStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// digitColors is indexed by the adjacent mine count.
var digitColors = [9]tcell.Color{
	tcell.ColorBlack,
	tcell.NewRGBColor(0, 0, 255),
	tcell.NewRGBColor(0, 160, 0),
	tcell.NewRGBColor(255, 0, 0),
	tcell.NewRGBColor(0, 33, 55),
	tcell.NewRGBColor(150, 75, 0),
	tcell.NewRGBColor(48, 213, 200),
	tcell.ColorBlack,
	tcell.ColorGray,
}

var buttonColors = []tcell.Color{tcell.ColorGreen, tcell.ColorYellow, tcell.ColorRed}

// Renderer is the tview primitive that draws snapshots and turns mouse
// clicks inside it into ClickEvents in view-local coordinates.
type Renderer struct {
	*tview.Box
	snap    Snapshot
	onClick func(ClickEvent)
}

func NewRenderer() *Renderer {
	r := &Renderer{Box: tview.NewBox()}
	r.SetBorder(true).SetTitle(" Minesweeper ")
	return r
}

// SetSnapshot replaces what the next Draw shows.
func (r *Renderer) SetSnapshot(snap Snapshot) {
	r.snap = snap
}

// SetClickHandler registers the receiver of click events.
func (r *Renderer) SetClickHandler(fn func(ClickEvent)) {
	r.onClick = fn
}

func (r *Renderer) Draw(screen tcell.Screen) {
	r.Box.DrawForSubclass(screen, r)
	x, y, _, _ := r.GetInnerRect()
	drawSnapshot(screen, x, y, r.snap)
}

func (r *Renderer) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return r.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		x, y := event.Position()
		if r.onClick == nil || !r.InRect(x, y) {
			return false, nil
		}

		ix, iy, _, _ := r.GetInnerRect()
		switch action {
		case tview.MouseLeftClick:
			r.onClick(ClickEvent{X: x - ix, Y: y - iy, Button: ButtonLeft})
		case tview.MouseRightClick:
			r.onClick(ClickEvent{X: x - ix, Y: y - iy, Button: ButtonRight})
		default:
			return false, nil
		}
		setFocus(r)
		return true, nil
	})
}

func drawSnapshot(screen tcell.Screen, x, y int, snap Snapshot) {
	if snap.Status == AwaitingMode {
		if len(snap.Message) > 0 && len(snap.Buttons) > 0 {
			printText(screen, x+snap.Buttons[0].Rect.X, y+snap.Buttons[0].Rect.Y-2, snap.Message[0], textStyle)
		}
		for i, b := range snap.Buttons {
			style := tcell.StyleDefault.Background(buttonColors[i%len(buttonColors)]).Foreground(tcell.ColorBlack)
			fillRect(screen, x, y, b.Rect, style)
			printText(screen, x+b.Rect.X+(b.Rect.W-len(b.Label))/2, y+b.Rect.Y, b.Label, style)
		}
		return
	}

	bottom := 0
	for _, c := range snap.Cells {
		ch, style := glyph(c)
		fillRect(screen, x, y, c.Rect, style)
		screen.SetContent(x+c.Rect.X+c.Rect.W/2, y+c.Rect.Y+c.Rect.H/2, ch, nil, style)
		if end := c.Rect.Y + c.Rect.H; end > bottom {
			bottom = end
		}
	}

	status := fmt.Sprintf("%s  mines left: %d", snap.Mode, snap.MinesLeft)
	printText(screen, x+1, y+bottom+1, status, textStyle)

	style := alertStyle
	if snap.Status == Won {
		style = winStyle
	}
	for i, line := range snap.Message {
		printText(screen, x+1, y+bottom+3+i, line, style)
	}
}

func glyph(c CellView) (rune, tcell.Style) {
	switch c.Variant {
	case VariantFlagged:
		return 'F', markStyle
	case VariantUnsure:
		return '?', markStyle
	case VariantOpenBlank:
		return ' ', openStyle
	case VariantOpenNumber:
		return rune(strconv.Itoa(c.Count)[0]), openStyle.Foreground(digitColors[c.Count])
	case VariantOpenMine:
		return 'M', mineStyle
	default:
		return '.', closedStyle
	}
}

func fillRect(screen tcell.Screen, x, y int, r Rect, style tcell.Style) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			screen.SetContent(x+r.X+dx, y+r.Y+dy, ' ', nil, style)
		}
	}
}

func printText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
