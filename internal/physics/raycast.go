// Package physics resolves per-frame movement against the chunked tile map.
package physics

import (
	"github.com/samdwyer/chunkrun/internal/world"
)

// Sign is the direction of travel along an axis.
type Sign int

const (
	Negative Sign = -1
	Positive Sign = 1
)

// SignOf returns Negative for d < 0 and Positive otherwise.
func SignOf(d int) Sign {
	if d < 0 {
		return Negative
	}
	return Positive
}

// Ray is a single-axis probe.
type Ray struct {
	Axis  world.Axis
	Sign  Sign
	Step  int         // Pixels per probe step, at least 1
	Start world.Point // Absolute pixel the probe starts from
	Want  int         // Requested displacement; its magnitude bounds the ray
}

// Hit is the outcome of a Cast.
type Hit struct {
	// Allowed is the signed displacement along the ray that stays clear.
	// |Allowed| <= |Want| always holds.
	Allowed int
	// Offset is the signed correction that moves an already-overlapping
	// start point back out of solid tiles, against the direction of travel.
	// A back-up that reaches the chunk edge stops there with Exited set, so
	// the corrected point may still sit in a neighbouring chunk's tiles.
	Offset   int
	Collided bool
	BackedUp bool
	// Exited is set when the probe left the chunk before finishing.
	Exited bool
}

// Cast probes the chunk along the ray.
//
// A start point inside a solid tile backs up against the direction of travel
// until it reaches an empty tile or the chunk edge. Otherwise the probe
// advances until it meets a solid tile or runs out of requested distance.
// The chunk constrains nothing beyond its own extent: a probe that leaves the
// chunk stops and allows the full request, and a probe that starts outside
// keeps stepping in case it enters.
func Cast(r Ray, c *world.Chunk) Hit {
	step := max(r.Step, 1)
	sign := int(r.Sign)
	want := abs(r.Want)

	probe := func(d int) (world.Tile, error) {
		p := r.Start.Along(r.Axis, sign*d)
		return c.TileAt(p.X, p.Y)
	}

	t, err := probe(0)
	inside := err == nil

	if inside && t.Solid() {
		for k := step; ; k += step {
			t, err := probe(-k)
			if err != nil || !t.Solid() {
				return Hit{Offset: -sign * k, Collided: true, BackedUp: true, Exited: err != nil}
			}
		}
	}

	d := 0
	for d < want {
		next := min(d+step, want)
		t, err := probe(next)
		if err != nil {
			if inside {
				return Hit{Allowed: sign * want, Exited: true}
			}
			d = next
			continue
		}
		inside = true
		if t.Solid() {
			return Hit{Allowed: sign * d, Collided: true}
		}
		d = next
	}
	return Hit{Allowed: sign * want}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
