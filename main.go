package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-dying-gol/model"
	"github.com/sheikhrachel/go-dying-gol/utils"
)

func main() {
	config := utils.DefaultConfig()
	if err := config.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	board, stats := initializeGame(config, utils.NewRNG(time.Now().UnixNano()))

	screen, err := model.OpenScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Handle SIGINT/SIGTERM from outside the terminal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// Finalizing the screen also unblocks watchInterrupt
		defer screen.Fini()
		return runSimulation(ctx, config, board, model.NewTerminalRenderer(screen), stats)
	})
	eg.Go(func() error {
		return watchInterrupt(screen)
	})

	err = eg.Wait()
	displayFinalStats(config, stats)
	if err != nil && !isShutdown(err) {
		log.Fatalf("%+v", err)
	}
}
