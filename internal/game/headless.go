package game

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chunkrun/internal/entity"
	"github.com/samdwyer/chunkrun/internal/telemetry"
)

// RunHeadless steps sim for the given number of frames against a scripted
// host, rendering into it every frame.
func RunHeadless(ctx context.Context, sim *Simulation, host *ScriptedHost, frames int) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.simulate")
	defer span.End()

	start := time.Now()
	for i := 0; i < frames; i++ {
		if err := sim.Step(ctx, host); err != nil {
			return fmt.Errorf("frame %d: %w", sim.Frame(), err)
		}
		if err := sim.Render(host); err != nil {
			return fmt.Errorf("frame %d: %w", sim.Frame(), err)
		}
		host.Advance()
	}

	span.SetAttributes(
		attribute.Int("frames", frames),
		attribute.Int("blits", host.Blits),
		attribute.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	LogEntities(sim)
	return nil
}

// LogEntities writes one line per live entity at info level.
func LogEntities(sim *Simulation) {
	log := logrus.WithField("component", "game")
	for i, e := range sim.Entities() {
		c, ok := entity.Live(e)
		if !ok {
			continue
		}
		kind := "npc"
		if _, isPlayer := e.(*entity.PlayerSlot); isPlayer {
			kind = "player"
		}
		log.WithFields(logrus.Fields{
			"entity":    i,
			"kind":      kind,
			"character": c.Def.ID,
			"x":         c.X,
			"y":         c.Y,
			"vel_x":     c.VelX,
			"vel_y":     c.VelY,
			"state":     c.State.String(),
			"on_ground": c.OnGround,
			"frame":     sim.Frame(),
		}).Info("entity")
	}
}
