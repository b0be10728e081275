package model

import "github.com/sheikhrachel/go-dying-gol/rules"

// Float64Source yields uniform samples in [0, 1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// NewRandomBoard fills a board with Alive and Dead cells.
//
// A single threshold is drawn for the whole board and every cell becomes Alive when its
// own sample exceeds it, so the starting density differs from run to run.
func NewRandomBoard(d Dims, src Float64Source) *Board {
	b := NewBoard(d)
	threshold := src.Float64()
	for i := range b.cells {
		if src.Float64() > threshold {
			b.cells[i] = rules.Alive
		} else {
			b.cells[i] = rules.Dead
		}
	}
	return b
}
