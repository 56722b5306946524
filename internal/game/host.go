package game

import (
	"github.com/samdwyer/chunkrun/internal/input"
)

//go:generate mockgen -destination=mock/mock_host.go -package=gamemock github.com/samdwyer/chunkrun/internal/game Host

// Host is the platform the simulation runs on: it supplies controller input
// and accepts drawing calls in world pixel coordinates.
type Host interface {
	ReadButtons(controller int) input.Buttons
	SetDrawColor(color uint8)
	Blit(x, y, w, h int, glyph rune)
}

// ScriptedHost replays fixed button scripts and discards drawing. It drives
// headless runs.
type ScriptedHost struct {
	scripts map[int][]input.Buttons
	frame   int

	Blits int // Blit calls received
}

// NewScriptedHost creates a host with no scripts; every controller reads
// input.None until one is set.
func NewScriptedHost() *ScriptedHost {
	return &ScriptedHost{scripts: make(map[int][]input.Buttons)}
}

// SetScript assigns the per-frame buttons for a controller.
func (h *ScriptedHost) SetScript(controller int, script []input.Buttons) {
	h.scripts[controller] = script
}

// Advance moves every script to its next frame.
func (h *ScriptedHost) Advance() {
	h.frame++
}

// Frame returns the script frame being replayed.
func (h *ScriptedHost) Frame() int {
	return h.frame
}

// ReadButtons returns the controller's buttons for the current frame, or
// input.None past the end of its script.
func (h *ScriptedHost) ReadButtons(controller int) input.Buttons {
	script := h.scripts[controller]
	if h.frame >= len(script) {
		return input.None
	}
	return script[h.frame]
}

// SetDrawColor is a no-op.
func (h *ScriptedHost) SetDrawColor(uint8) {}

// Blit counts the call.
func (h *ScriptedHost) Blit(int, int, int, int, rune) {
	h.Blits++
}
