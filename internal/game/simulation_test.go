package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samdwyer/chunkrun/internal/entity"
	gamemock "github.com/samdwyer/chunkrun/internal/game/mock"
	"github.com/samdwyer/chunkrun/internal/gamedata"
	"github.com/samdwyer/chunkrun/internal/input"
)

func testRegistry() *gamedata.CharacterRegistry {
	return gamedata.NewCharacterRegistry([]gamedata.CharacterDef{
		{
			ID:      "hero",
			Glyph:   "@",
			Color:   ColorHighlight,
			MaxVelX: 2,
			MaxVelY: 6,
			Frames:  map[string]gamedata.FrameDef{"idle": {W: 5, H: 5}},
		},
		{
			ID:      "slime",
			Glyph:   "s",
			Color:   ColorAccent,
			MaxVelX: 1,
			MaxVelY: 6,
			Frames:  map[string]gamedata.FrameDef{"idle": {W: 5, H: 5}},
		},
	})
}

// tinyLevel is one solid tile at pixel (0, 50) and a player spawn in the air.
func tinyLevel() *gamedata.LevelDef {
	return &gamedata.LevelDef{
		Name: "tiny",
		Chunks: []gamedata.ChunkDef{
			{X: 0, Y: 10, Width: 2, Height: 1, Rows: []string{"#."}},
		},
		Players: []gamedata.SpawnDef{
			{Character: "hero", X: 20, Y: 20},
			{Character: "hero", X: 30, Y: 20, Facing: "left"},
		},
	}
}

func newReadySim(t *testing.T, opts Options, level *gamedata.LevelDef) *Simulation {
	t.Helper()
	sim := NewSimulation(opts)
	require.NoError(t, sim.Init(context.Background(), level, testRegistry()))
	return sim
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseUninitialized, "uninitialized"},
		{PhaseReady, "ready"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestStepBeforeInit(t *testing.T) {
	sim := NewSimulation(DefaultOptions())
	host := NewScriptedHost()

	assert.Equal(t, PhaseUninitialized, sim.Phase())
	assert.ErrorIs(t, sim.Step(context.Background(), host), ErrNotReady)
	assert.ErrorIs(t, sim.Render(host), ErrNotReady)
	assert.Nil(t, sim.World())
}

func TestInitTwice(t *testing.T) {
	sim := newReadySim(t, DefaultOptions(), tinyLevel())

	assert.Equal(t, PhaseReady, sim.Phase())
	err := sim.Init(context.Background(), tinyLevel(), testRegistry())
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestInitErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*gamedata.LevelDef)
		want   error
	}{
		{
			name:   "unknown player character",
			mutate: func(l *gamedata.LevelDef) { l.Players[0].Character = "ghost" },
			want:   ErrUnknownCharacter,
		},
		{
			name: "unknown npc character",
			mutate: func(l *gamedata.LevelDef) {
				l.NPCs = []gamedata.SpawnDef{{Character: "ghost", X: 1, Y: 1}}
			},
			want: ErrUnknownCharacter,
		},
		{
			name:   "bad rows",
			mutate: func(l *gamedata.LevelDef) { l.Chunks[0].Rows = []string{"#"} },
			want:   gamedata.ErrBadLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := tinyLevel()
			tt.mutate(level)
			sim := NewSimulation(DefaultOptions())

			err := sim.Init(context.Background(), level, testRegistry())
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, PhaseUninitialized, sim.Phase())
		})
	}
}

func TestInitLimitsPlayerSlots(t *testing.T) {
	opts := DefaultOptions()
	opts.Players = 1
	sim := newReadySim(t, opts, tinyLevel())

	require.Len(t, sim.Players(), 1)
	assert.Equal(t, 0, sim.Players()[0].Controller)
	assert.Nil(t, sim.Players()[0].Character)
}

func TestPlayerJoinLeave(t *testing.T) {
	sim := newReadySim(t, DefaultOptions(), tinyLevel())
	host := NewScriptedHost()
	script, err := input.ParseScript("B:3,N,DB,N,B")
	require.NoError(t, err)
	host.SetScript(1, script)

	slot := sim.Players()[1]
	step := func() {
		t.Helper()
		require.NoError(t, sim.Step(context.Background(), host))
		host.Advance()
	}

	step()
	require.True(t, slot.Enabled)
	require.NotNil(t, slot.Character)
	joined := slot.Character
	assert.Equal(t, entity.FacingLeft, joined.Facing)
	assert.Equal(t, 30.0, joined.X)

	// Holding the button does not toggle again.
	step()
	step()
	assert.True(t, slot.Enabled)

	step()
	step()
	assert.False(t, slot.Enabled)
	_, live := entity.Live(slot)
	assert.False(t, live)

	step()
	step()
	assert.True(t, slot.Enabled)
	assert.Same(t, joined, slot.Character)

	// Controller 0 never pressed anything.
	assert.False(t, sim.Players()[0].Enabled)
	assert.Equal(t, uint64(7), sim.Frame())
}

func TestStepReadsControllersInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := gamemock.NewMockHost(ctrl)
	sim := newReadySim(t, DefaultOptions(), tinyLevel())

	gomock.InOrder(
		host.EXPECT().ReadButtons(0).Return(input.None),
		host.EXPECT().ReadButtons(1).Return(input.None),
	)

	require.NoError(t, sim.Step(context.Background(), host))
	assert.Equal(t, uint64(1), sim.Frame())
}

func TestStepCanceledContext(t *testing.T) {
	sim := newReadySim(t, DefaultOptions(), tinyLevel())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sim.Step(ctx, NewScriptedHost()), context.Canceled)
	assert.Equal(t, uint64(0), sim.Frame())
}

func TestRenderDrawsTilesCloudsAndEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := gamemock.NewMockHost(ctrl)
	sim := newReadySim(t, DefaultOptions(), tinyLevel())

	// Join controller 0. One frame of gravity leaves the position unchanged.
	host.EXPECT().ReadButtons(0).Return(input.Button2)
	host.EXPECT().ReadButtons(1).Return(input.None)
	require.NoError(t, sim.Step(context.Background(), host))

	gomock.InOrder(
		host.EXPECT().SetDrawColor(ColorGround),
		host.EXPECT().Blit(0, 50, 5, 5, '#'),
		host.EXPECT().SetDrawColor(ColorAccent),
		host.EXPECT().SetDrawColor(ColorHighlight),
		host.EXPECT().Blit(20, 20, 5, 5, '@'),
	)
	require.NoError(t, sim.Render(host))
}

func TestNPCPatrolTurnsAtWall(t *testing.T) {
	level := &gamedata.LevelDef{
		Name: "corridor",
		Chunks: []gamedata.ChunkDef{
			{X: 0, Y: 0, Width: 8, Height: 3, Rows: []string{
				"#......#",
				"#......#",
				"########",
			}},
		},
		NPCs: []gamedata.SpawnDef{{Character: "slime", X: 20, Y: 5, Facing: "right"}},
	}
	sim := newReadySim(t, DefaultOptions(), level)
	host := NewScriptedHost()
	npc := sim.NPCs()[0].Character

	turned := false
	for i := 0; i < 120; i++ {
		require.NoError(t, sim.Step(context.Background(), host))
		box := npc.Bound()
		require.GreaterOrEqual(t, box.X, 5)
		require.LessOrEqual(t, box.MaxX(), 34)
		if npc.Facing == entity.FacingLeft {
			turned = true
		}
	}
	assert.True(t, turned)
	assert.Equal(t, 5.0, npc.Y)
}

func TestRunHeadlessEmbeddedLevel(t *testing.T) {
	level, err := gamedata.LoadLevel()
	require.NoError(t, err)
	registry, err := gamedata.LoadCharacterRegistry()
	require.NoError(t, err)

	sim := NewSimulation(DefaultOptions())
	require.NoError(t, sim.Init(context.Background(), level, registry))

	host := NewScriptedHost()
	script, err := input.ParseScript("B,N:20,R:60,N:20")
	require.NoError(t, err)
	host.SetScript(0, script)

	require.NoError(t, RunHeadless(context.Background(), sim, host, len(script)))

	assert.Equal(t, uint64(len(script)), sim.Frame())
	assert.Equal(t, len(script), host.Frame())
	assert.Positive(t, host.Blits)

	hero := sim.Players()[0].Character
	require.NotNil(t, hero)
	assert.Greater(t, hero.X, level.Players[0].X)
	assert.Equal(t, 130.0, hero.Y)
	assert.True(t, hero.OnGround)
	// The block in the second room stops the walk.
	assert.LessOrEqual(t, hero.Bound().MaxX(), 109)

	assert.Nil(t, sim.Players()[1].Character)
}
