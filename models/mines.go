package models

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidMineCount is returned when the requested mines do not fit on
	// the board once the first opened cell is kept clear.
	ErrInvalidMineCount = errors.New("invalid mine count")
	// ErrAlreadyPlaced is returned when mines are placed twice on one board.
	ErrAlreadyPlaced = errors.New("mines already placed")
)

// MinePlacer lays the mines of a round. excluded must stay mine-free.
type MinePlacer interface {
	Place(b *Board, excluded Position, total int) error
}

// RandomPlacer places mines uniformly at random using its own source.
type RandomPlacer struct {
	rng *rand.Rand
}

func NewRandomPlacer(rng *rand.Rand) *RandomPlacer {
	return &RandomPlacer{rng: rng}
}

func (p *RandomPlacer) Place(b *Board, excluded Position, total int) error {
	return PlaceMines(b, excluded, total, p.rng)
}

// PlaceMines puts exactly total mines on b, drawn uniformly from every
// position except excluded. It may run only once per board.
func PlaceMines(b *Board, excluded Position, total int, rng *rand.Rand) error {
	if b.minesPlaced {
		return ErrAlreadyPlaced
	}
	if !b.InBounds(excluded) {
		panic(fmt.Errorf("excluded cell %v: %w", excluded, ErrOutOfBounds))
	}
	if total < 0 || total > b.Size()-1 {
		return fmt.Errorf("%d mines on %dx%d board: %w", total, b.Cols, b.Rows, ErrInvalidMineCount)
	}

	// Every candidate coordinate except the one that has to stay safe.
	coords := make([]Position, 0, b.Size()-1)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			pos := Position{Col: col, Row: row}
			if pos != excluded {
				coords = append(coords, pos)
			}
		}
	}

	// Partial Fisher-Yates shuffle: after i steps the first i entries are a
	// uniform sample without replacement.
	// https://en.wikipedia.org/wiki/Fisher–Yates_shuffle
	for i := 0; i < total; i++ {
		j := i + rng.Intn(len(coords)-i)
		coords[i], coords[j] = coords[j], coords[i]
		b.Cell(coords[i]).IsMine = true
	}

	b.minesPlaced = true
	return nil
}

// FixedPlacer places mines at a predetermined set of positions and ignores
// the requested total. It is meant for replays and tests; positions equal to
// the excluded cell are skipped so the first reveal stays safe.
type FixedPlacer []Position

func (p FixedPlacer) Place(b *Board, excluded Position, _ int) error {
	if b.minesPlaced {
		return ErrAlreadyPlaced
	}
	for _, pos := range p {
		if pos == excluded {
			continue
		}
		b.Cell(pos).IsMine = true
	}
	b.minesPlaced = true
	return nil
}
