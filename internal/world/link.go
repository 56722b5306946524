package world

// link fuses every edge the chunk shares with the existing chunks and returns
// the number of seams opened.
func link(c *Chunk, existing []*Chunk) int {
	seams := 0
	for _, other := range existing {
		for _, pair := range [4]struct {
			axis      Axis
			near, far *Chunk
		}{
			{Vertical, other, c},   // new top touches other bottom
			{Vertical, c, other},   // new bottom touches other top
			{Horizontal, other, c}, // new left touches other right
			{Horizontal, c, other}, // new right touches other left
		} {
			if fuseEdge(pair.axis, pair.near, pair.far) {
				seams++
			}
		}
	}
	return seams
}

// fuseEdge opens the seam where near's maximum edge on the axis is flush with
// far's minimum edge. Interior cells of the shared span become empty on both
// sides; the two endpoints become joints so the corners stay collidable.
func fuseEdge(axis Axis, near, far *Chunk) bool {
	nb, fb := near.bound, far.bound

	var lo, hi int
	if axis == Horizontal {
		if nb.X+nb.Width != fb.X {
			return false
		}
		lo, hi = max(nb.Y, fb.Y), min(nb.Y+nb.Height, fb.Y+fb.Height)
	} else {
		if nb.Y+nb.Height != fb.Y {
			return false
		}
		lo, hi = max(nb.X, fb.X), min(nb.X+nb.Width, fb.X+fb.Width)
	}
	if hi-lo < 1 {
		return false
	}

	for s := lo; s < hi; s++ {
		t := TileEmpty
		if s == lo || s == hi-1 {
			t = TileJoint
		}
		// Both cells are in range by construction.
		if axis == Horizontal {
			_ = near.SetTile(nb.Width-1, s-nb.Y, t)
			_ = far.SetTile(0, s-fb.Y, t)
		} else {
			_ = near.SetTile(s-nb.X, nb.Height-1, t)
			_ = far.SetTile(s-fb.X, 0, t)
		}
	}
	return true
}
