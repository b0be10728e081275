package utils

import (
	"time"

	"github.com/pkg/errors"
)

const (
	boardWidth  = 500
	boardHeight = 17
	frameRate   = 30 * time.Millisecond
)

// Config holds the configuration for the game
type Config struct {
	Width     int
	Height    int
	FrameRate time.Duration
}

// DefaultConfig returns the built-in board size and frame interval
func DefaultConfig() Config {
	return Config{
		Width:     boardWidth,
		Height:    boardHeight,
		FrameRate: frameRate,
	}
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Config.Validate] invalid board size: %dx%d", c.Width, c.Height)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Config.Validate] invalid frame rate: %v", c.FrameRate)
	}
	return nil
}
