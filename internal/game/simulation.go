package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/chunkrun/internal/effects"
	"github.com/samdwyer/chunkrun/internal/entity"
	"github.com/samdwyer/chunkrun/internal/gamedata"
	"github.com/samdwyer/chunkrun/internal/input"
	"github.com/samdwyer/chunkrun/internal/physics"
	"github.com/samdwyer/chunkrun/internal/telemetry"
	"github.com/samdwyer/chunkrun/internal/world"
)

var (
	// ErrNotReady is returned by Step and Render before Init.
	ErrNotReady = errors.New("simulation not initialized")
	// ErrAlreadyInitialized is returned by a second Init.
	ErrAlreadyInitialized = errors.New("simulation already initialized")
	// ErrUnknownCharacter is returned when a spawn names a character id the
	// registry does not have.
	ErrUnknownCharacter = errors.New("unknown character")
)

// Palette slots used when drawing.
const (
	ColorBackground uint8 = 0
	ColorGround     uint8 = 1
	ColorAccent     uint8 = 2
	ColorHighlight  uint8 = 3
)

// Options tune a Simulation.
type Options struct {
	Params  physics.Params
	Players int  // Player slots to create from the level's spawns
	NoClip  bool // Players ignore tiles
	Clouds  int  // Cloud pool capacity
}

// DefaultOptions returns stock tuning with two player slots.
func DefaultOptions() Options {
	return Options{
		Params:  physics.DefaultParams(),
		Players: 2,
		Clouds:  16,
	}
}

// Simulation owns the world map and every entity. It advances one fixed
// frame per Step.
type Simulation struct {
	opts  Options
	phase Phase
	frame uint64

	world   *world.Map
	players []*entity.PlayerSlot
	npcs    []*entity.NPC
	clouds  *effects.Pool
	prev    map[int]input.Buttons

	log *logrus.Entry
}

// NewSimulation creates an uninitialized simulation.
func NewSimulation(opts Options) *Simulation {
	return &Simulation{
		opts:   opts,
		phase:  PhaseUninitialized,
		clouds: effects.NewPool(opts.Clouds),
		prev:   make(map[int]input.Buttons),
		log:    logrus.WithField("component", "game"),
	}
}

// Init builds the world from level and creates player slots and NPCs.
// It may be called once.
func (s *Simulation) Init(ctx context.Context, level *gamedata.LevelDef, registry *gamedata.CharacterRegistry) error {
	if s.phase != PhaseUninitialized {
		return ErrAlreadyInitialized
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	specs, err := level.ChunkSpecs()
	if err != nil {
		return fmt.Errorf("level %q: %w", level.Name, err)
	}
	m, err := world.Build(ctx, level.Budget, specs)
	if err != nil {
		return fmt.Errorf("level %q: %w", level.Name, err)
	}

	players := make([]*entity.PlayerSlot, 0, s.opts.Players)
	for i, spawn := range level.Players {
		if i >= s.opts.Players {
			break
		}
		def := registry.GetByID(spawn.Character)
		if def == nil {
			return fmt.Errorf("player %d: %w: %q", i, ErrUnknownCharacter, spawn.Character)
		}
		players = append(players, entity.NewPlayerSlot(i, def, spawn.X, spawn.Y, entity.ParseFacing(spawn.Facing)))
	}

	npcs := make([]*entity.NPC, 0, len(level.NPCs))
	for i, spawn := range level.NPCs {
		def := registry.GetByID(spawn.Character)
		if def == nil {
			return fmt.Errorf("npc %d: %w: %q", i, ErrUnknownCharacter, spawn.Character)
		}
		npcs = append(npcs, entity.NewNPC(def, spawn.X, spawn.Y, entity.ParseFacing(spawn.Facing)))
	}

	s.world = m
	s.players = players
	s.npcs = npcs
	s.phase = PhaseReady

	span.SetAttributes(
		attribute.String("level.name", level.Name),
		attribute.Int("world.chunks", len(m.Chunks())),
		attribute.Int("world.tiles", m.NumTiles()),
		attribute.Int("players", len(players)),
		attribute.Int("npcs", len(npcs)),
	)
	s.log.WithFields(logrus.Fields{
		"level":   level.Name,
		"chunks":  len(m.Chunks()),
		"tiles":   m.NumTiles(),
		"players": len(players),
		"npcs":    len(npcs),
	}).Info("simulation ready")
	return nil
}

// Step advances one frame: player slots in order, then NPCs, then clouds.
func (s *Simulation) Step(ctx context.Context, host Host) error {
	if s.phase != PhaseReady {
		return ErrNotReady
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, slot := range s.players {
		buttons := host.ReadButtons(slot.Controller)
		s.handleJoin(slot, buttons)
		if c, ok := entity.Live(slot); ok {
			physics.Integrate(s.world, c, buttons, s.opts.NoClip, s.clouds, s.opts.Params)
		}
	}

	for _, npc := range s.npcs {
		c, ok := entity.Live(npc)
		if !ok {
			continue
		}
		physics.Integrate(s.world, c, npc.Brain.Buttons(c), false, s.clouds, s.opts.Params)
	}

	s.clouds.Update()
	s.frame++
	return nil
}

// handleJoin toggles a slot on the press edge of Button2. Down+Button2
// leaves; Button2 alone joins a disabled slot.
func (s *Simulation) handleJoin(slot *entity.PlayerSlot, buttons input.Buttons) {
	prev := s.prev[slot.Controller]
	s.prev[slot.Controller] = buttons
	if !buttons.Has(input.Button2) || prev.Has(input.Button2) {
		return
	}

	switch {
	case slot.Enabled && buttons.Has(input.Down):
		slot.Leave()
		s.log.WithField("controller", slot.Controller).Info("player left")
	case !slot.Enabled:
		c := slot.Join()
		s.log.WithFields(logrus.Fields{
			"controller": slot.Controller,
			"x":          c.X,
			"y":          c.Y,
		}).Info("player joined")
	}
}

// Render draws chunks, clouds and live entities through host.
func (s *Simulation) Render(host Host) error {
	if s.phase != PhaseReady {
		return ErrNotReady
	}

	for _, c := range s.world.Chunks() {
		b := c.Bound()
		for ty := 0; ty < b.Height; ty++ {
			for tx := 0; tx < b.Width; tx++ {
				t, _ := c.Tile(tx, ty)
				if !t.Solid() {
					continue
				}
				color, glyph := tileLook(t)
				host.SetDrawColor(color)
				host.Blit((b.X+tx)*world.TileWidth, (b.Y+ty)*world.TileHeight, world.TileWidth, world.TileHeight, glyph)
			}
		}
	}

	host.SetDrawColor(ColorAccent)
	s.clouds.Each(func(c effects.Cloud) {
		host.Blit(c.X, c.Y, 1, 1, '~')
	})

	for _, e := range s.Entities() {
		c, ok := entity.Live(e)
		if !ok {
			continue
		}
		box := c.Bound()
		host.SetDrawColor(c.Def.Color)
		host.Blit(box.X, box.Y, box.W, box.H, c.Glyph())
	}
	return nil
}

func tileLook(t world.Tile) (uint8, rune) {
	switch t {
	case world.TileJoint:
		return ColorAccent, '+'
	case world.TileBrick:
		return ColorHighlight, '='
	default:
		return ColorGround, '#'
	}
}

// Phase returns the lifecycle stage.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Frame returns the number of completed steps.
func (s *Simulation) Frame() uint64 {
	return s.frame
}

// World returns the map, or nil before Init.
func (s *Simulation) World() *world.Map {
	return s.world
}

// Players returns the player slots in controller order.
func (s *Simulation) Players() []*entity.PlayerSlot {
	return s.players
}

// NPCs returns the non-player characters.
func (s *Simulation) NPCs() []*entity.NPC {
	return s.npcs
}

// Clouds returns the cloud pool.
func (s *Simulation) Clouds() *effects.Pool {
	return s.clouds
}

// Entities returns every entity in step order.
func (s *Simulation) Entities() []entity.Entity {
	out := make([]entity.Entity, 0, len(s.players)+len(s.npcs))
	for _, p := range s.players {
		out = append(out, p)
	}
	for _, n := range s.npcs {
		out = append(out, n)
	}
	return out
}

// Focus returns the centre of the first live player, for camera placement.
func (s *Simulation) Focus() (x, y int, ok bool) {
	for _, slot := range s.players {
		if c, live := entity.Live(slot); live {
			box := c.Bound()
			return box.X + box.W/2, box.Y + box.H/2, true
		}
	}
	return 0, 0, false
}
