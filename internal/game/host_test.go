package game

import (
	"testing"

	"github.com/samdwyer/chunkrun/internal/input"
)

func TestScriptedHost(t *testing.T) {
	h := NewScriptedHost()
	h.SetScript(0, []input.Buttons{input.Right, input.Right | input.Button1})

	tests := []struct {
		controller int
		frame      int
		want       input.Buttons
	}{
		{0, 0, input.Right},
		{0, 1, input.Right | input.Button1},
		{0, 2, input.None},
		{1, 2, input.None},
	}

	for _, tt := range tests {
		for h.Frame() < tt.frame {
			h.Advance()
		}
		if got := h.ReadButtons(tt.controller); got != tt.want {
			t.Errorf("ReadButtons(%d) at frame %d = %v, want %v", tt.controller, tt.frame, got, tt.want)
		}
	}
}

func TestScriptedHostCountsBlits(t *testing.T) {
	h := NewScriptedHost()
	h.SetDrawColor(3)
	h.Blit(0, 0, 5, 5, '#')
	h.Blit(5, 0, 5, 5, '#')

	if h.Blits != 2 {
		t.Errorf("Blits = %d, want 2", h.Blits)
	}
}
