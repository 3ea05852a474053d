package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dimaq12/minesweaper/models"
)

type Status int

const (
	AwaitingMode Status = iota
	Playing
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "awaiting_mode"
	}
}

// Session runs one player's rounds: menu, play, won/lost, restart.
// It is not safe for concurrent use; the host loop owns it.
type Session struct {
	status          Status
	mode            models.Mode
	board           *models.Board
	mineTotal       int
	firstCellOpened bool
	roundID         string

	geometry Geometry
	placer   models.MinePlacer
	audio    AudioPlayer
	log      zerolog.Logger
}

type Option func(*Session)

// WithPlacer replaces the random mine placer.
func WithPlacer(p models.MinePlacer) Option {
	return func(s *Session) { s.placer = p }
}

func WithAudio(a AudioPlayer) Option {
	return func(s *Session) { s.audio = a }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithGeometry(g Geometry) Option {
	return func(s *Session) { s.geometry = g }
}

// NewSession returns a session waiting for a mode choice.
func NewSession(opts ...Option) *Session {
	s := &Session{
		status:   AwaitingMode,
		geometry: TerminalGeometry,
		placer:   models.NewRandomPlacer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		audio:    noAudio,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Status() Status { return s.status }
func (s *Session) Mode() models.Mode { return s.mode }
func (s *Session) Board() *models.Board { return s.board }
func (s *Session) RoundID() string { return s.roundID }

// MineTotal is the preset's mine count until the first reveal places the
// mines. From then on it is the number actually placed, which decides the
// win, so a custom placer may change it mid-round.
func (s *Session) MineTotal() int { return s.mineTotal }

// SelectMode builds a mine-free board for one of the presets and starts
// play. It is ignored outside AwaitingMode and for unknown sizes.
func (s *Session) SelectMode(mode models.Mode) {
	if s.status != AwaitingMode {
		return
	}
	if !isPreset(mode) {
		s.log.Warn().Stringer("mode", mode).Msg("mode is not a preset")
		return
	}

	s.mode = mode
	s.board = models.NewBoard(mode.Cols, mode.Rows)
	s.mineTotal = mode.MineTotal()
	s.firstCellOpened = false
	s.roundID = uuid.NewString()
	s.status = Playing

	s.log.Info().
		Str("round", s.roundID).
		Stringer("mode", mode).
		Int("mines", s.mineTotal).
		Msg("round started")
}

// HandleReveal opens the cell at pos. The first reveal of a round lays the
// mines around it first. Errors come only from the mine placer and mean the
// round cannot continue until Restart.
func (s *Session) HandleReveal(pos models.Position) error {
	if s.status != Playing {
		return nil
	}

	cell := s.board.Cell(pos)
	if cell.IsOpen || cell.IsMarked() {
		return nil
	}

	if !s.firstCellOpened {
		if err := s.placer.Place(s.board, pos, s.mineTotal); err != nil {
			s.log.Error().Err(err).Str("round", s.roundID).Stringer("first", pos).Msg("place mines")
			return fmt.Errorf("place mines for round %s: %w", s.roundID, err)
		}
		s.firstCellOpened = true
		// The placed layout decides the win condition.
		s.mineTotal = s.board.MineCount()
		s.log.Debug().Str("round", s.roundID).Stringer("first", pos).Int("mines", s.mineTotal).Msg("mines placed")
	}

	res := models.RevealFrom(s.board, pos)
	if res.Exploded {
		s.status = Lost
		s.audio.Play(CueMineExploded)
		s.log.Info().Str("round", s.roundID).Stringer("cell", pos).Msg("round lost")
		return nil
	}

	if s.board.OpenedSafeCount() == s.board.Size()-s.mineTotal {
		s.status = Won
		s.audio.Play(CueVictory)
		s.log.Info().Str("round", s.roundID).Msg("round won")
	}
	return nil
}

// HandleFlag cycles the marking of a closed cell.
func (s *Session) HandleFlag(pos models.Position) {
	if s.status != Playing {
		return
	}
	s.board.Cell(pos).Cycle()
}

// Restart drops the board and returns to the menu. It works in every state.
func (s *Session) Restart() {
	if s.status != AwaitingMode {
		s.log.Info().Str("round", s.roundID).Stringer("status", s.status).Msg("restart")
	}
	s.status = AwaitingMode
	s.mode = models.Mode{}
	s.board = nil
	s.mineTotal = 0
	s.firstCellOpened = false
	s.roundID = ""
}

// Update routes one input event. Clicks are hit-tested against the menu
// buttons or the board depending on the status; Space restarts.
func (s *Session) Update(ev Event) error {
	switch ev := ev.(type) {
	case KeyEvent:
		if ev.Key == KeySpace {
			s.Restart()
		}
	case ClickEvent:
		return s.handleClick(ev)
	}
	return nil
}

func (s *Session) handleClick(ev ClickEvent) error {
	switch s.status {
	case AwaitingMode:
		if ev.Button != ButtonLeft {
			return nil
		}
		for i, mode := range models.Modes {
			if s.geometry.ButtonRect(i).Contains(ev.X, ev.Y) {
				s.SelectMode(mode)
				return nil
			}
		}
	case Playing:
		pos, ok := s.geometry.CellAt(ev.X, ev.Y, s.board.Cols, s.board.Rows)
		if !ok {
			return nil
		}
		switch ev.Button {
		case ButtonLeft:
			return s.HandleReveal(pos)
		case ButtonRight:
			s.HandleFlag(pos)
		}
	}
	return nil
}

func isPreset(mode models.Mode) bool {
	for _, m := range models.Modes {
		if m == mode {
			return true
		}
	}
	return false
}
