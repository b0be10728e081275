package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-dying-gol/model"
	"github.com/sheikhrachel/go-dying-gol/utils"
)

// errInterrupted is returned when the user presses Ctrl+C or Esc on the raw-mode terminal
var errInterrupted = errors.New("interrupted")

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, src model.Float64Source) (*model.Board, *utils.Stats) {
	board := model.NewRandomBoard(model.Dims{Width: config.Width, Height: config.Height}, src)
	return board, utils.NewStats()
}

// runSimulation renders, advances and sleeps once per tick until ctx is cancelled
func runSimulation(
	ctx context.Context,
	config utils.Config,
	board *model.Board,
	display model.Display,
	stats *utils.Stats,
) error {
	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		model.Render(board, display)

		board = board.Next()
		generation++

		frameStart := time.Now()
		stats.Update(generation, board.CountLiving(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(config.FrameRate):
		}

		display.Clear()
	}
}

// watchInterrupt blocks on terminal events until Ctrl+C or Esc is pressed or the screen is finalized
func watchInterrupt(screen tcell.Screen) error {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return errInterrupted
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// isShutdown reports whether err only signals a requested stop
func isShutdown(err error) bool {
	return errors.Is(err, errInterrupted) || errors.Is(err, context.Canceled)
}

// displayFinalStats logs a summary once the screen has been released
func displayFinalStats(config utils.Config, stats *utils.Stats) {
	log.Printf("Grid: %dx%d | Final stats: %d generations in %.1f seconds",
		config.Width, config.Height, stats.TotalGenerations, stats.Runtime().Seconds())
	log.Printf("Average: %.1f gen/sec, %.1f avg population",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
