package physics

import (
	"math"

	"github.com/samdwyer/chunkrun/internal/effects"
	"github.com/samdwyer/chunkrun/internal/entity"
	"github.com/samdwyer/chunkrun/internal/input"
	"github.com/samdwyer/chunkrun/internal/world"
)

// Result reports what one Integrate call did.
type Result struct {
	DX, DY           int // Applied travel displacement
	OffsetX, OffsetY int // Back-out corrections applied on top of DX, DY
	HitX, HitY       bool
	Jumped           bool
	Chunks           int // Chunk casts made across both passes
}

// Integrate advances one character by one frame.
//
// Input and gravity update the velocity, the velocity is truncated to an
// integer displacement, and the displacement is clipped against every chunk
// the character's box touches: vertical first against the current box, then
// horizontal against the box moved by the vertical result. With noClip the
// collision passes are skipped. Clouds may be nil.
func Integrate(m *world.Map, c *entity.Character, buttons input.Buttons, noClip bool, clouds *effects.Pool, p Params) Result {
	wasOnGround := c.OnGround
	jumped, dir := applyInput(c, buttons, noClip, p)

	dx, dy := int(c.VelX), int(c.VelY)
	c.DispX, c.DispY = dx, dy
	box := c.Bound()

	res := Result{Jumped: jumped}
	if noClip {
		res.DX, res.DY = dx, dy
		c.OnGround, c.BlockedX, c.BlockedY = false, false, false
	} else {
		vSign := SignOf(dy)
		if dy == 0 && c.VelY < 0 {
			vSign = Negative
		}
		v := resolve(m, world.Vertical, vSign, box, dy, p.RayStep)

		hSign := SignOf(dx)
		if dx == 0 && (dir < 0 || (dir == 0 && c.Facing == entity.FacingLeft)) {
			hSign = Negative
		}
		h := resolve(m, world.Horizontal, hSign, box.Translate(0, v.allowed+v.offset), dx, p.RayStep)

		res.DY, res.OffsetY, res.HitY = v.allowed, v.offset, v.collided
		res.DX, res.OffsetX, res.HitX = h.allowed, h.offset, h.collided
		res.Chunks = v.chunks + h.chunks

		if v.collided {
			c.VelY = 0
		}
		// Ground is checked under the box where it ends up, so walking off a
		// ledge clears it on the same frame.
		c.OnGround = vSign == Positive && (v.collided || dy == 0) &&
			standing(m, box.Translate(res.DX+res.OffsetX, res.DY+res.OffsetY), p.RayStep)
		if h.collided {
			c.VelX = 0
		}
		c.BlockedX, c.BlockedY = h.collided, v.collided
	}

	c.X += float64(res.DX + res.OffsetX)
	c.Y += float64(res.DY + res.OffsetY)
	clampToWorld(c, box.W, box.H)
	c.Frame++

	if clouds != nil {
		feetX, feetY := box.X+box.W/2, box.MaxY()
		if jumped {
			clouds.Push(feetX, feetY)
		} else if c.OnGround && !wasOnGround {
			clouds.Push(int(c.X)+box.W/2, int(c.Y)+box.H-1)
		}
	}
	return res
}

// applyInput turns buttons and gravity into velocity and advances the
// movement state. It returns whether a jump started and the held direction.
func applyInput(c *entity.Character, buttons input.Buttons, noClip bool, p Params) (bool, int) {
	dir := 0
	switch {
	case buttons.Has(input.Left) && !buttons.Has(input.Right):
		dir = -1
		c.VelX -= p.Acceleration
		c.Facing = entity.FacingLeft
	case buttons.Has(input.Right) && !buttons.Has(input.Left):
		dir = 1
		c.VelX += p.Acceleration
		c.Facing = entity.FacingRight
	default:
		c.VelX *= p.Decay
		if math.Abs(c.VelX) < p.StopBelow {
			c.VelX = 0
		}
	}

	// Jumps start only from the ground; holding the button in the air does nothing.
	jumped := buttons.Has(input.Button1) && (c.OnGround || noClip)
	if jumped {
		c.VelY = p.JumpImpulse
	}
	c.VelY += p.Gravity

	c.VelX = clamp(c.VelX, -c.MaxVelX, c.MaxVelX)
	c.VelY = clamp(c.VelY, -c.MaxVelY, c.MaxVelY)

	switch {
	case jumped:
		c.State = entity.StateJumping
	case c.State.Airborne() && !c.OnGround:
		if c.State == entity.StateJumping && c.VelY >= 0 {
			c.State = entity.StateOnCeiling
		}
	case dir != 0:
		c.State = entity.StateMoving
	default:
		c.State = entity.StateIdle
	}
	return jumped, dir
}

type axisResult struct {
	allowed  int
	offset   int
	collided bool
	chunks   int
}

// resolve clips a displacement along one axis against every chunk the swept
// box touches. The smallest allowed move and the largest back-out win.
func resolve(m *world.Map, axis world.Axis, sign Sign, box world.Rect, want, step int) axisResult {
	first, second := leadingCorners(axis, sign, box)
	res := axisResult{allowed: want}

	for _, c := range m.Overlapping(box.Sweep(axis, want)) {
		res.chunks++
		allowed, offset, collided := castPair(c, axis, sign, step, want, first, second)
		if abs(allowed) < abs(res.allowed) {
			res.allowed = allowed
		}
		if abs(offset) > abs(res.offset) {
			res.offset = offset
		}
		res.collided = res.collided || collided
	}

	// A back-up that leaves one chunk can land inside a neighbour. Keep
	// backing up until every chunk under the shifted corners reports clear.
	for i := 0; res.offset != 0 && i < maxBackUpPasses; i++ {
		shifted := shiftAlong(axis, box, res.offset)
		first, second := leadingCorners(axis, sign, shifted)
		extra := 0
		for _, c := range m.Overlapping(shifted) {
			_, offset, _ := castPair(c, axis, sign, step, 0, first, second)
			if abs(offset) > abs(extra) {
				extra = offset
			}
		}
		if extra == 0 {
			break
		}
		res.offset += extra
	}
	return res
}

// maxBackUpPasses bounds the cross-chunk back-up re-checks per axis.
const maxBackUpPasses = 8

func shiftAlong(axis world.Axis, box world.Rect, d int) world.Rect {
	if axis == world.Horizontal {
		return box.Translate(d, 0)
	}
	return box.Translate(0, d)
}

// standing reports whether the box rests on a solid tile one pixel below.
func standing(m *world.Map, box world.Rect, step int) bool {
	g := resolve(m, world.Vertical, Positive, box, 1, step)
	return g.collided && g.allowed == 0 && g.offset == 0
}

// castPair casts from both leading corners. The second cast uses what the
// first allowed and is skipped when the first had to back up.
func castPair(c *world.Chunk, axis world.Axis, sign Sign, step, want int, first, second world.Point) (int, int, bool) {
	h1 := Cast(Ray{Axis: axis, Sign: sign, Step: step, Start: first, Want: want}, c)
	if h1.BackedUp {
		return 0, h1.Offset, true
	}
	h2 := Cast(Ray{Axis: axis, Sign: sign, Step: step, Start: second, Want: h1.Allowed}, c)
	if h2.BackedUp {
		return 0, h2.Offset, true
	}
	return h2.Allowed, 0, h1.Collided || h2.Collided
}

// leadingCorners returns the two box corners on the edge facing the move.
func leadingCorners(axis world.Axis, sign Sign, box world.Rect) (world.Point, world.Point) {
	minX, minY, maxX, maxY := box.X, box.Y, box.MaxX(), box.MaxY()
	switch {
	case axis == world.Vertical && sign == Negative:
		return world.Point{X: minX, Y: minY}, world.Point{X: maxX, Y: minY}
	case axis == world.Vertical:
		return world.Point{X: minX, Y: maxY}, world.Point{X: maxX, Y: maxY}
	case sign == Negative:
		return world.Point{X: minX, Y: minY}, world.Point{X: minX, Y: maxY}
	default:
		return world.Point{X: maxX, Y: minY}, world.Point{X: maxX, Y: maxY}
	}
}

func clampToWorld(c *entity.Character, w, h int) {
	c.X = clamp(c.X, world.XLeftBound, float64(world.XRightBound-w))
	c.Y = clamp(c.Y, world.YLowerBound, float64(world.YUpperBound-h))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
