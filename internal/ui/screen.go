// Package ui provides the terminal host using tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/chunkrun/internal/world"
)

// Pixels covered by one terminal cell. One tile maps to one cell.
const (
	CellWidth  = world.TileWidth
	CellHeight = world.TileHeight
)

// Screen wraps tcell.Screen with pixel-space drawing: a palette-indexed draw
// colour and a camera offset.
type Screen struct {
	screen  tcell.Screen
	palette []tcell.Color
	style   tcell.Style
	camX    int // World pixel at the left edge of the view
	camY    int // World pixel at the top edge of the view
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(palette []tcell.Color) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s, palette)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen, palette []tcell.Color) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	bg := tcell.ColorBlack
	if len(palette) > 0 {
		bg = palette[0]
	}
	s.SetStyle(tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{
		screen:  s,
		palette: palette,
		style:   tcell.StyleDefault.Background(bg),
	}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// CenterOn moves the camera so the world pixel x, y sits mid-view.
func (s *Screen) CenterOn(x, y int) {
	w, h := s.Size()
	s.camX = x - w*CellWidth/2
	s.camY = y - h*CellHeight/2
}

// Camera returns the world pixel at the view's top-left corner.
func (s *Screen) Camera() (x, y int) {
	return s.camX, s.camY
}

// SetDrawColor selects the palette entry used by following Blit calls.
// Indices past the palette draw white.
func (s *Screen) SetDrawColor(color uint8) {
	fg := tcell.ColorWhite
	if int(color) < len(s.palette) {
		fg = s.palette[color]
	}
	s.style = s.style.Foreground(fg)
}

// Blit fills every cell the world pixel rectangle touches with glyph.
func (s *Screen) Blit(x, y, w, h int, glyph rune) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := s.toCell(x, y)
	x1, y1 := s.toCell(x+w-1, y+h-1)
	sw, sh := s.Size()
	for cy := max(y0, 0); cy <= min(y1, sh-1); cy++ {
		for cx := max(x0, 0); cx <= min(x1, sw-1); cx++ {
			s.screen.SetContent(cx, cy, glyph, nil, s.style)
		}
	}
}

func (s *Screen) toCell(px, py int) (int, int) {
	return floorDiv(px-s.camX, CellWidth), floorDiv(py-s.camY, CellHeight)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
