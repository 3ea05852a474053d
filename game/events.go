package game

// Event is one discrete input delivered to the session per tick. A nil Event
// means no input this tick.
type Event interface {
	isEvent()
}

type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
)

// ClickEvent is a mouse click at view-local coordinates.
type ClickEvent struct {
	X, Y   int
	Button MouseButton
}

type Key int

const (
	KeyUnknown Key = iota
	KeySpace
)

// KeyEvent is a key press. Only KeySpace (restart) has a meaning.
type KeyEvent struct {
	Key Key
}

func (ClickEvent) isEvent() {}
func (KeyEvent) isEvent()   {}
