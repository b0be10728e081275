package model

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-dying-gol/rules"
)

const (
	glyphSolid = '█'
	glyphLight = '░'
)

// Display is the surface a board is drawn on
type Display interface {
	Plot(glyph rune, x, y int)
	Flush()
	Clear()
}

// Glyph returns the character drawn for a cell. Dying cells look the same as Alive ones.
func Glyph(c rules.Cell) rune {
	if c.IsLive() {
		return glyphSolid
	}
	return glyphLight
}

// Render plots every cell of the board and then flushes the frame
func Render(b *Board, d Display) {
	for i, c := range b.cells {
		pos := b.PositionOf(i)
		d.Plot(Glyph(c), pos.X, pos.Y)
	}
	d.Flush()
}

// TerminalRenderer draws onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// OpenScreen creates and initializes the terminal screen
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[OpenScreen] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[OpenScreen] failed to initialize screen")
	}
	screen.HideCursor()
	return screen, nil
}

// NewTerminalRenderer creates a renderer drawing onto an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Plot draws a glyph at (x, y). Cells beyond the terminal size are dropped by tcell.
func (r *TerminalRenderer) Plot(glyph rune, x, y int) {
	r.screen.SetContent(x, y, glyph, nil, r.style)
}

// Flush presents the accumulated frame
func (r *TerminalRenderer) Flush() {
	r.screen.Show()
}

// Clear resets the screen for the next frame
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}
