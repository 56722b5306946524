package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/chunkrun/internal/input"
)

// DefaultHoldFrames is how long a key press counts as held. Terminals report
// presses and repeats but never releases.
const DefaultHoldFrames = 6

type binding struct {
	controller int
	button     input.Buttons
}

var keyBindings = map[tcell.Key]binding{
	tcell.KeyLeft:  {0, input.Left},
	tcell.KeyRight: {0, input.Right},
	tcell.KeyUp:    {0, input.Up},
	tcell.KeyDown:  {0, input.Down},
}

var runeBindings = map[rune]binding{
	'z': {0, input.Button1},
	' ': {0, input.Button1},
	'x': {0, input.Button2},

	'a': {1, input.Left},
	'd': {1, input.Right},
	'w': {1, input.Up},
	's': {1, input.Down},
	'f': {1, input.Button1},
	'g': {1, input.Button2},
}

// Keyboard turns key presses into per-controller button masks. A press holds
// its button for a fixed number of frames; key repeat keeps it held.
type Keyboard struct {
	hold  uint64
	frame uint64
	until map[binding]uint64
}

// NewKeyboard creates a keyboard whose presses last holdFrames frames.
func NewKeyboard(holdFrames int) *Keyboard {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &Keyboard{
		hold:  uint64(holdFrames),
		until: make(map[binding]uint64),
	}
}

// HandleKey records a key event. It returns false for unbound keys.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) bool {
	return k.Press(ev.Key(), ev.Rune())
}

// Press records a key by code, or by rune when key is tcell.KeyRune.
func (k *Keyboard) Press(key tcell.Key, r rune) bool {
	b, ok := keyBindings[key]
	if key == tcell.KeyRune {
		b, ok = runeBindings[r]
	}
	if !ok {
		return false
	}
	k.until[b] = k.frame + k.hold
	return true
}

// Tick advances one frame, releasing expired presses.
func (k *Keyboard) Tick() {
	k.frame++
	for b, until := range k.until {
		if until <= k.frame {
			delete(k.until, b)
		}
	}
}

// ReadButtons returns the held buttons for a controller.
func (k *Keyboard) ReadButtons(controller int) input.Buttons {
	var out input.Buttons
	for b := range k.until {
		if b.controller == controller {
			out |= b.button
		}
	}
	return out
}
