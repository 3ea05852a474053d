package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Cue is a sound the session asks for on a state transition.
type Cue int

const (
	CueMineExploded Cue = iota
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueMineExploded:
		return "mine_exploded"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// AudioPlayer plays a cue once. Play must not block and reports nothing back.
type AudioPlayer interface {
	Play(cue Cue)
}

// AudioFunc adapts a plain function to AudioPlayer.
type AudioFunc func(cue Cue)

func (f AudioFunc) Play(cue Cue) { f(cue) }

var noAudio = AudioFunc(func(Cue) {})

// Beeper rings the terminal bell, once for an explosion and twice for a win.
type Beeper struct {
	screen tcell.Screen
	log    zerolog.Logger
}

func NewBeeper(screen tcell.Screen, log zerolog.Logger) *Beeper {
	return &Beeper{screen: screen, log: log}
}

func (b *Beeper) Play(cue Cue) {
	rings := 1
	if cue == CueVictory {
		rings = 2
	}
	for i := 0; i < rings; i++ {
		if err := b.screen.Beep(); err != nil {
			b.log.Debug().Err(err).Stringer("cue", cue).Msg("beep")
			return
		}
	}
}
