package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samdwyer/chunkrun/internal/game"
	"github.com/samdwyer/chunkrun/internal/gamedata"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the simulation in the terminal",
	Long: `Run the simulation in the terminal. Controller 0 uses the arrow keys,
z to jump and x to join or leave (with down). Controller 1 uses wasd, f and g.`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rt, err := setup(ctx, nil)
	if err != nil {
		return err
	}
	defer rt.close(context.Background())

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return fmt.Errorf("load palette: %w", err)
	}

	g, err := game.New(rt.sim, palette, rt.cfg.Sim.FPS)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}
