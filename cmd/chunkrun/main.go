// Package main is the entry point for chunkrun.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samdwyer/chunkrun/internal/config"
	"github.com/samdwyer/chunkrun/internal/game"
	"github.com/samdwyer/chunkrun/internal/gamedata"
	"github.com/samdwyer/chunkrun/internal/logging"
	"github.com/samdwyer/chunkrun/internal/telemetry"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "chunkrun",
	Short: "Tile-chunk platformer movement core",
	Long: `chunkrun simulates characters running and jumping through a map of
linked tile chunks, either in the terminal or headless from a button script.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}

// app is what every subcommand needs once the process is set up.
type app struct {
	cfg      *config.Config
	sim      *game.Simulation
	shutdown func(context.Context) error
	logs     io.Closer
}

// setup loads .env and config, configures logging and telemetry and
// initializes a simulation on the embedded level. logFile overrides the
// configured log destination when non-nil.
func setup(ctx context.Context, logFile *string) (*app, error) {
	// .env is optional; variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logFile != nil {
		cfg.Log.File = *logFile
	}

	logs, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, err
	}
	log := logging.For("main")
	if envErr != nil {
		log.WithError(envErr).Debug(".env not loaded")
	}

	rt := &app{cfg: cfg, logs: logs, shutdown: telemetry.Disable()}
	if cfg.Telemetry.Enabled {
		telemetry.ConfigureEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, running without tracing")
		} else {
			rt.shutdown = shutdown
		}
	}

	level, err := gamedata.LoadLevel()
	if err != nil {
		rt.close(ctx)
		return nil, fmt.Errorf("load level: %w", err)
	}
	registry, err := gamedata.LoadCharacterRegistry()
	if err != nil {
		rt.close(ctx)
		return nil, fmt.Errorf("load characters: %w", err)
	}

	rt.sim = game.NewSimulation(game.Options{
		Params:  cfg.PhysicsParams(),
		Players: cfg.Sim.Players,
		NoClip:  cfg.Sim.NoClip,
		Clouds:  cfg.Sim.Clouds,
	})
	if err := rt.sim.Init(ctx, level, registry); err != nil {
		rt.close(ctx)
		return nil, err
	}
	return rt, nil
}

func (rt *app) close(ctx context.Context) {
	if err := rt.shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("telemetry shutdown failed")
	}
	if err := rt.logs.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %v\n", err)
	}
}
