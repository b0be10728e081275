package model

import (
	"github.com/sheikhrachel/go-dying-gol/rules"
)

// Board is one tick of the simulation: a flat row-major sequence of cells whose length
// is always Width*Height.
type Board struct {
	Dims
	cells []rules.Cell
}

// NewBoard creates an all-Dead board with the specified dimensions
func NewBoard(d Dims) *Board {
	return &Board{
		Dims:  d,
		cells: make([]rules.Cell, d.Len()),
	}
}

// Len returns the number of cells on the board
func (b *Board) Len() int {
	return len(b.cells)
}

// At returns the cell stored at a row-major index
func (b *Board) At(index int) rules.Cell {
	return b.cells[index]
}

// Get returns the state of a cell, Dead when (x, y) is outside the board
func (b *Board) Get(x, y int) rules.Cell {
	if !b.Contains(x, y) {
		return rules.Dead
	}
	return b.cells[b.IndexOf(x, y)]
}

// Set sets the state of a cell, ignoring coordinates outside the board
func (b *Board) Set(x, y int, c rules.Cell) {
	if b.Contains(x, y) {
		b.cells[b.IndexOf(x, y)] = c
	}
}

// CountLiving returns the number of Alive or Dying cells
func (b *Board) CountLiving() (count int) {
	for _, c := range b.cells {
		if c.IsLive() {
			count++
		}
	}
	return
}

// Equal reports whether two boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if b.Dims != other.Dims || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

/*
CountNeighbors counts the live neighbors of the cell at index.

The scan covers x in [x-1, x+1] and y in [y-1, y+1] with the lower bounds saturating at
zero, so cells on the top and left edges see a smaller block. A probe one column past
the right edge lands on column 0 of the following row and is counted like any other
index; only indices past the end of the board are absent.
*/
func (b *Board) CountNeighbors(index int) int {
	var (
		count = 0
		self  = b.PositionOf(index)
	)

	for x := max(0, self.X-1); x <= self.X+1; x++ {
		for y := max(0, self.Y-1); y <= self.Y+1; y++ {
			if x == self.X && y == self.Y {
				continue
			}
			i := b.IndexOf(x, y)
			if i >= len(b.cells) {
				continue
			}
			if b.cells[i].IsLive() {
				count++
			}
		}
	}

	return count
}

// Next computes the following generation into a new board. The receiver is not modified.
func (b *Board) Next() *Board {
	next := NewBoard(b.Dims)
	for i, state := range b.cells {
		next.cells[i] = rules.Next(b.CountNeighbors(i), state)
	}
	return next
}
