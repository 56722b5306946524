package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/chunkrun/internal/game"
	"github.com/samdwyer/chunkrun/internal/input"
)

var (
	simFrames  int
	simScripts []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless from button scripts",
	Long: `Run the simulation without a terminal. Each --script is a button script
for the next controller, e.g. "B,N:20,R:60,RA,R:30". Letters: L R U D,
A jump, B join/leave, N none; ":n" repeats a step n frames. Final entity
state is logged.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simFrames, "frames", 0, "frames to run (0 runs the longest script)")
	simulateCmd.Flags().StringArrayVar(&simScripts, "script", []string{"B,N:20,R:60,RA,R:30"}, "button script, once per controller")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	host := game.NewScriptedHost()
	longest := 0
	for i, s := range simScripts {
		script, err := input.ParseScript(s)
		if err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
		host.SetScript(i, script)
		longest = max(longest, len(script))
	}
	frames := simFrames
	if frames <= 0 {
		frames = longest
	}

	// Headless runs log to stderr unless a config file says otherwise.
	stderr := ""
	var logFile *string
	if configPath == "" {
		logFile = &stderr
	}

	ctx := context.Background()
	rt, err := setup(ctx, logFile)
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	return game.RunHeadless(ctx, rt.sim, host, frames)
}
