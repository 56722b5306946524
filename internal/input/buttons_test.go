package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonsHas(t *testing.T) {
	m := Left | Button1

	assert.True(t, m.Has(Left))
	assert.True(t, m.Has(Left|Button1))
	assert.False(t, m.Has(Right))
	assert.False(t, m.Has(Left|Right))
}

func TestButtonsString(t *testing.T) {
	tests := []struct {
		mask     Buttons
		expected string
	}{
		{0, "N"},
		{Right, "R"},
		{Right | Button1, "RA"},
		{Down | Button2, "DB"},
	}

	for _, tt := range tests {
		got := tt.mask.String()
		if got != tt.expected {
			t.Errorf("Buttons(%d).String() = %q, want %q", tt.mask, got, tt.expected)
		}
	}
}

func TestParseScript(t *testing.T) {
	frames, err := ParseScript("R:3, RA ,N:2,L")
	require.NoError(t, err)
	assert.Equal(t, []Buttons{Right, Right, Right, Right | Button1, 0, 0, Left}, frames)
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"", "R:0", "R:x", "Q", ":3", ",,"} {
		_, err := ParseScript(s)
		assert.ErrorIs(t, err, ErrBadScript, "ParseScript(%q)", s)
	}
}
