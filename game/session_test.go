package game

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/dimaq12/minesweaper/models"
)

var mode8 = models.Mode{Cols: 8, Rows: 8}

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Play(cue Cue) { r.cues = append(r.cues, cue) }

func newFixedSession(mines ...models.Position) (*Session, *cueRecorder) {
	rec := &cueRecorder{}
	s := NewSession(WithPlacer(models.FixedPlacer(mines)), WithAudio(rec))
	return s, rec
}

type failingPlacer struct{ err error }

func (p failingPlacer) Place(*models.Board, models.Position, int) error { return p.err }

func TestNewSessionAwaitsMode(t *testing.T) {
	s := NewSession()

	if s.Status() != AwaitingMode {
		t.Fatalf("status = %v, want %v", s.Status(), AwaitingMode)
	}
	if s.Board() != nil {
		t.Fatalf("board exists before a mode is chosen")
	}

	// Reveal and flag before a mode is chosen are absorbed.
	if err := s.HandleReveal(models.Position{}); err != nil {
		t.Fatalf("HandleReveal in menu returned %v", err)
	}
	s.HandleFlag(models.Position{})
	if s.Status() != AwaitingMode {
		t.Fatalf("status changed to %v", s.Status())
	}
}

func TestSelectModeBuildsEmptyBoard(t *testing.T) {
	for _, mode := range models.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			s := NewSession()
			s.SelectMode(mode)

			if s.Status() != Playing {
				t.Fatalf("status = %v, want %v", s.Status(), Playing)
			}
			b := s.Board()
			if b.Cols != mode.Cols || b.Rows != mode.Rows {
				t.Fatalf("board is %dx%d, want %v", b.Cols, b.Rows, mode)
			}
			if b.MineCount() != 0 {
				t.Fatalf("board has %d mines before the first reveal", b.MineCount())
			}
			if s.MineTotal() != mode.MineTotal() {
				t.Fatalf("MineTotal() = %d, want %d", s.MineTotal(), mode.MineTotal())
			}
			if s.RoundID() == "" {
				t.Fatalf("round id not set")
			}

			s.SelectMode(models.Modes[0])
			if s.Mode() != mode {
				t.Fatalf("second SelectMode changed mode to %v", s.Mode())
			}
		})
	}
}

func TestSelectModeRejectsNonPreset(t *testing.T) {
	s := NewSession()
	s.SelectMode(models.Mode{Cols: 10, Rows: 10})

	if s.Status() != AwaitingMode {
		t.Fatalf("status = %v after non-preset mode", s.Status())
	}
}

func TestFirstRevealIsSafe(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := NewSession(WithPlacer(models.NewRandomPlacer(rng)))
		s.SelectMode(models.Modes[1])
		first := models.Position{Col: rng.Intn(16), Row: rng.Intn(16)}

		if err := s.HandleReveal(first); err != nil {
			t.Fatalf("seed %d: HandleReveal failed: %v", seed, err)
		}
		if s.Status() == Lost {
			t.Fatalf("seed %d: first reveal at %v lost the round", seed, first)
		}
		if s.Board().Cell(first).IsMine || !s.Board().Cell(first).IsOpen {
			t.Fatalf("seed %d: first cell %v is not an opened safe cell", seed, first)
		}
		if got := s.Board().MineCount(); got != 38 {
			t.Fatalf("seed %d: %d mines placed, want 38", seed, got)
		}
	}
}

func TestFloodToVictory(t *testing.T) {
	s, rec := newFixedSession(models.Position{Col: 7, Row: 7})
	s.SelectMode(mode8)

	if err := s.HandleReveal(models.Position{Col: 0, Row: 0}); err != nil {
		t.Fatalf("HandleReveal failed: %v", err)
	}

	if got := s.Board().OpenedSafeCount(); got != 63 {
		t.Fatalf("opened %d safe cells, want 63", got)
	}
	if s.Status() != Won {
		t.Fatalf("status = %v, want %v", s.Status(), Won)
	}
	if s.MineTotal() != 1 {
		t.Fatalf("MineTotal() = %d, want the one placed mine", s.MineTotal())
	}
	if !reflect.DeepEqual(rec.cues, []Cue{CueVictory}) {
		t.Fatalf("cues = %v, want one victory", rec.cues)
	}

	// Won rejects further play.
	s.HandleFlag(models.Position{Col: 7, Row: 7})
	if s.Board().Cell(models.Position{Col: 7, Row: 7}).Flag != models.FlagNone {
		t.Fatalf("flag accepted after the win")
	}
	if err := s.HandleReveal(models.Position{Col: 7, Row: 7}); err != nil || s.Status() != Won {
		t.Fatalf("reveal after the win changed state: %v, %v", err, s.Status())
	}
	if len(rec.cues) != 1 {
		t.Fatalf("cues = %v after further input", rec.cues)
	}
}

func TestRevealMineLoses(t *testing.T) {
	mine := models.Position{Col: 3, Row: 3}
	s, rec := newFixedSession(mine)
	s.SelectMode(mode8)

	if err := s.HandleReveal(models.Position{Col: 2, Row: 2}); err != nil {
		t.Fatalf("HandleReveal failed: %v", err)
	}
	if s.Status() != Playing {
		t.Fatalf("status = %v after a numbered cell, want %v", s.Status(), Playing)
	}
	if got := s.Board().OpenedSafeCount(); got != 1 {
		t.Fatalf("numbered cell opened %d cells, want 1", got)
	}

	if err := s.HandleReveal(mine); err != nil {
		t.Fatalf("HandleReveal failed: %v", err)
	}
	if s.Status() != Lost {
		t.Fatalf("status = %v, want %v", s.Status(), Lost)
	}
	if !reflect.DeepEqual(rec.cues, []Cue{CueMineExploded}) {
		t.Fatalf("cues = %v, want one explosion", rec.cues)
	}

	origin := models.Position{Col: 0, Row: 0}
	if err := s.HandleReveal(origin); err != nil {
		t.Fatalf("HandleReveal after loss returned %v", err)
	}
	s.HandleFlag(origin)
	c := s.Board().Cell(origin)
	if c.IsOpen || c.Flag != models.FlagNone || s.Status() != Lost {
		t.Fatalf("input after loss changed state: %+v, %v", c, s.Status())
	}
	if len(rec.cues) != 1 {
		t.Fatalf("cues = %v after further input", rec.cues)
	}
}

func TestMarkedCellBlocksFirstReveal(t *testing.T) {
	s, _ := newFixedSession(models.Position{Col: 7, Row: 7})
	s.SelectMode(mode8)
	pos := models.Position{Col: 0, Row: 0}

	s.HandleFlag(pos)
	if err := s.HandleReveal(pos); err != nil {
		t.Fatalf("HandleReveal failed: %v", err)
	}
	if s.Board().Cell(pos).IsOpen || s.Board().MinesPlaced() {
		t.Fatalf("reveal of a flagged cell was not a no-op")
	}

	s.HandleFlag(pos)
	if s.Board().Cell(pos).Flag != models.FlagUnsure {
		t.Fatalf("flag = %v, want unsure", s.Board().Cell(pos).Flag)
	}
	s.HandleFlag(pos)
	if err := s.HandleReveal(pos); err != nil {
		t.Fatalf("HandleReveal failed: %v", err)
	}
	if !s.Board().Cell(pos).IsOpen {
		t.Fatalf("cell did not open once unmarked")
	}
}

func TestWinDoesNotNeedFlags(t *testing.T) {
	mines := []models.Position{{Col: 0, Row: 7}, {Col: 7, Row: 0}}
	s, _ := newFixedSession(mines...)
	s.SelectMode(mode8)

	if err := s.HandleReveal(models.Position{Col: 4, Row: 4}); err != nil {
		t.Fatalf("HandleReveal failed: %v", err)
	}
	if s.Status() != Won {
		t.Fatalf("status = %v, want %v", s.Status(), Won)
	}
	if s.Board().FlaggedCount() != 0 {
		t.Fatalf("flags appeared on the board")
	}
}

func TestPlacerErrorIsReturned(t *testing.T) {
	s := NewSession(WithPlacer(failingPlacer{err: models.ErrInvalidMineCount}))
	s.SelectMode(mode8)

	err := s.HandleReveal(models.Position{Col: 1, Row: 1})
	if !errors.Is(err, models.ErrInvalidMineCount) {
		t.Fatalf("err = %v, want ErrInvalidMineCount", err)
	}
	if s.Status() != Playing {
		t.Fatalf("status = %v, want %v", s.Status(), Playing)
	}
	if s.Board().Cell(models.Position{Col: 1, Row: 1}).IsOpen {
		t.Fatalf("cell opened although placement failed")
	}
}

func TestRestartFromEveryState(t *testing.T) {
	cases := []struct {
		name  string
		setup func(s *Session)
	}{
		{"awaiting", func(s *Session) {}},
		{"playing", func(s *Session) { s.SelectMode(mode8) }},
		{"won", func(s *Session) {
			s.SelectMode(mode8)
			_ = s.HandleReveal(models.Position{Col: 0, Row: 0})
		}},
		{"lost", func(s *Session) {
			s.SelectMode(mode8)
			_ = s.HandleReveal(models.Position{Col: 2, Row: 2})
			_ = s.HandleReveal(models.Position{Col: 3, Row: 3})
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newFixedSession(models.Position{Col: 3, Row: 3})
			tc.setup(s)

			if err := s.Update(KeyEvent{Key: KeySpace}); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if s.Status() != AwaitingMode || s.Board() != nil || s.MineTotal() != 0 {
				t.Fatalf("restart left status %v, board %v, mines %d", s.Status(), s.Board(), s.MineTotal())
			}

			// A new round starts mine-free.
			s.SelectMode(mode8)
			if s.Board().MineCount() != 0 || s.Board().OpenedSafeCount() != 0 {
				t.Fatalf("new round reused old cell state")
			}
		})
	}
}

func TestUpdateRoutesClicks(t *testing.T) {
	s, _ := newFixedSession(models.Position{Col: 3, Row: 3})
	g := TerminalGeometry

	// Right clicks and misses on the menu do nothing.
	b := g.ButtonRect(0)
	_ = s.Update(ClickEvent{X: b.X, Y: b.Y, Button: ButtonRight})
	_ = s.Update(ClickEvent{X: 0, Y: 0, Button: ButtonLeft})
	_ = s.Update(nil)
	if s.Status() != AwaitingMode {
		t.Fatalf("status = %v, want %v", s.Status(), AwaitingMode)
	}

	_ = s.Update(ClickEvent{X: b.X + b.W - 1, Y: b.Y, Button: ButtonLeft})
	if s.Status() != Playing || s.Mode() != mode8 {
		t.Fatalf("menu click gave status %v mode %v", s.Status(), s.Mode())
	}

	flagged := g.CellRect(models.Position{Col: 5, Row: 6})
	_ = s.Update(ClickEvent{X: flagged.X, Y: flagged.Y, Button: ButtonRight})
	if got := s.Board().Cell(models.Position{Col: 5, Row: 6}).Flag; got != models.FlagFlagged {
		t.Fatalf("right click flag = %v, want flagged", got)
	}

	outside := g.BoardRect(8, 8)
	_ = s.Update(ClickEvent{X: outside.X + outside.W, Y: outside.Y, Button: ButtonLeft})
	if s.Board().MinesPlaced() {
		t.Fatalf("click outside the board reached a cell")
	}

	numbered := g.CellRect(models.Position{Col: 2, Row: 2})
	if err := s.Update(ClickEvent{X: numbered.X + 2, Y: numbered.Y, Button: ButtonLeft}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !s.Board().Cell(models.Position{Col: 2, Row: 2}).IsOpen {
		t.Fatalf("left click did not open (2,2)")
	}
}
