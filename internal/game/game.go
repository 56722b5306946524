package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/chunkrun/internal/input"
	"github.com/samdwyer/chunkrun/internal/ui"
)

// terminalHost reads buttons from the keyboard and draws on the screen.
type terminalHost struct {
	*ui.Screen
	keys *ui.Keyboard
}

func (h terminalHost) ReadButtons(controller int) input.Buttons {
	return h.keys.ReadButtons(controller)
}

// Game runs a Simulation in the terminal at a fixed frame rate.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	keys     *ui.Keyboard
	sim      *Simulation
	fps      int
	running  bool
	log      *logrus.Entry
}

// New creates a game for an initialized simulation.
func New(sim *Simulation, palette []tcell.Color, fps int) (*Game, error) {
	if sim.Phase() != PhaseReady {
		return nil, ErrNotReady
	}
	screen, err := ui.NewScreen(palette)
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		keys:     ui.NewKeyboard(ui.DefaultHoldFrames),
		sim:      sim,
		fps:      max(fps, 1),
		running:  true,
		log:      logrus.WithField("component", "game"),
	}, nil
}

// Run executes the frame loop until the player quits or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	// Closed before the screen, so a pending send never outlives Run.
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go pollEvents(g.screen, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.fps))
	defer ticker.Stop()

	host := terminalHost{Screen: g.screen, keys: g.keys}
	g.log.WithField("fps", g.fps).Info("game loop started")

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ev)

		case <-ticker.C:
			if err := g.sim.Step(ctx, host); err != nil {
				return fmt.Errorf("step: %w", err)
			}
			g.keys.Tick()
			g.draw(host)
		}
	}

	LogEntities(g.sim)
	return nil
}

// pollEvents forwards screen events until the screen is closed, which closes
// events, or until done is closed.
func pollEvents(s *ui.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) draw(host terminalHost) {
	if x, y, ok := g.sim.Focus(); ok {
		g.screen.CenterOn(x, y)
	}
	joined := 0
	for _, slot := range g.sim.Players() {
		if slot.Enabled {
			joined++
		}
	}
	status := fmt.Sprintf("frame %d  players %d/%d  [arrows/z/x  wasd/f/g  q quits]",
		g.sim.Frame(), joined, len(g.sim.Players()))

	g.renderer.Render(func() {
		if err := g.sim.Render(host); err != nil {
			g.log.WithError(err).Warn("render failed")
		}
	}, status)
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent quits on Escape, Ctrl-C or q and forwards the rest to the
// keyboard.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			return
		}
	}
	g.keys.HandleKey(ev)
}
