package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Renderer handles drawing a frame to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render clears the screen, runs draw, overlays the status line on the
// bottom row and flushes.
func (r *Renderer) Render(draw func(), status string) {
	r.screen.Clear()
	draw()
	_, h := r.screen.Size()
	r.RenderMessage(status, h-1)
	r.screen.Show()
}

// RenderMessage displays a message on row y, replacing what was there.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	w, _ := r.screen.Size()
	x := 0
	for _, ch := range msg {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', style)
	}
}
