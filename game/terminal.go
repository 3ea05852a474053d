package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

// Terminal hosts a session in a tview application: it owns the screen, maps
// keys and mouse clicks to events and redraws after every tick.
type Terminal struct {
	screen   tcell.Screen
	app      *tview.Application
	renderer *Renderer
	geometry Geometry
	tick     time.Duration
	log      zerolog.Logger
}

func NewTerminal(tick time.Duration, log zerolog.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	return &Terminal{
		screen:   screen,
		app:      tview.NewApplication().SetScreen(screen),
		renderer: NewRenderer(),
		geometry: TerminalGeometry,
		tick:     tick,
		log:      log,
	}, nil
}

// Audio returns the bell-based player bound to this terminal's screen.
func (t *Terminal) Audio() AudioPlayer {
	return NewBeeper(t.screen, t.log)
}

// Run blocks until the player quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context, session *Session) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := NewController(session, func(snap Snapshot) {
		// Nothing drains the update queue once the application stopped.
		if ctx.Err() != nil {
			return
		}
		t.app.QueueUpdateDraw(func() { t.renderer.SetSnapshot(snap) })
	}, t.tick, t.log)

	t.renderer.SetClickHandler(func(ev ClickEvent) { ctrl.Push(ev) })
	t.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		return t.handleKey(event, ctrl.Push)
	})
	t.app.SetRoot(t.renderer, true).EnableMouse(true)

	go ctrl.Run(ctx)
	go func() {
		<-ctx.Done()
		t.app.Stop()
	}()

	t.log.Info().Dur("tick", t.tick).Msg("terminal started")
	err := t.app.Run()
	cancel()
	if err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

// handleKey maps a key press to a session event, or stops the application.
// Keys it does not use are returned for tview to handle.
func (t *Terminal) handleKey(event *tcell.EventKey, push func(Event)) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		t.app.Stop()
		return nil
	case tcell.KeyRune:
		switch r := event.Rune(); r {
		case ' ':
			push(KeyEvent{Key: KeySpace})
		case 'q', 'Q':
			t.app.Stop()
		case '1', '2', '3':
			// Shortcut for clicking a menu button. The renderer's
			// snapshot is only touched on the UI goroutine, like this
			// callback.
			if t.renderer.snap.Status != AwaitingMode {
				return nil
			}
			b := t.geometry.ButtonRect(int(r - '1'))
			push(ClickEvent{X: b.X, Y: b.Y, Button: ButtonLeft})
		default:
			return event
		}
		return nil
	}
	return event
}
