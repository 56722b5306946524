// Package input defines the per-controller button mask the simulation consumes.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Buttons is an 8-bit mask of held buttons for one controller.
type Buttons uint8

const (
	None    Buttons = 0
	Button1 Buttons = 1 << 0 // jump
	Button2 Buttons = 1 << 1 // join / leave
	Left    Buttons = 1 << 4
	Right   Buttons = 1 << 5
	Up      Buttons = 1 << 6
	Down    Buttons = 1 << 7
)

// ErrBadScript is returned for malformed button scripts.
var ErrBadScript = errors.New("bad button script")

// Has returns true if every button in b is held.
func (m Buttons) Has(b Buttons) bool {
	return m&b == b
}

// String returns the held buttons as script letters, or "N" for none.
func (m Buttons) String() string {
	if m == 0 {
		return "N"
	}
	var sb strings.Builder
	for _, l := range letters {
		if m.Has(l.b) {
			sb.WriteByte(l.c)
		}
	}
	return sb.String()
}

var letters = []struct {
	c byte
	b Buttons
}{
	{'L', Left},
	{'R', Right},
	{'U', Up},
	{'D', Down},
	{'A', Button1},
	{'B', Button2},
}

// ParseScript expands a comma-separated list of "BUTTONS:FRAMES" steps into
// one mask per frame. BUTTONS uses the letters L R U D A B, or N for none;
// ":FRAMES" defaults to 1. Example: "R:30,RA,N:10".
func ParseScript(s string) ([]Buttons, error) {
	var frames []Buttons
	for _, step := range strings.Split(s, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		keys, count, found := strings.Cut(step, ":")
		n := 1
		if found {
			var err error
			n, err = strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: frame count in %q", ErrBadScript, step)
			}
		}
		mask, err := parseKeys(keys)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			frames = append(frames, mask)
		}
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadScript)
	}
	return frames, nil
}

func parseKeys(keys string) (Buttons, error) {
	if keys == "N" {
		return 0, nil
	}
	var mask Buttons
	for i := 0; i < len(keys); i++ {
		found := false
		for _, l := range letters {
			if keys[i] == l.c {
				mask |= l.b
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: unknown button %q", ErrBadScript, keys[i])
		}
	}
	if mask == 0 {
		return 0, fmt.Errorf("%w: no buttons in step", ErrBadScript)
	}
	return mask, nil
}
