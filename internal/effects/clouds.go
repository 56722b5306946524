// Package effects holds cosmetic particles the movement core may emit.
package effects

// Cloud is a short-lived dust puff at a pixel position.
type Cloud struct {
	X, Y     int
	Age      int
	Lifetime int
}

// Alive returns true while the cloud has frames left.
func (c Cloud) Alive() bool {
	return c.Age < c.Lifetime
}

// DefaultLifetime is the number of frames a pushed cloud lives.
const DefaultLifetime = 12

// Pool is a fixed-capacity ring of clouds. When full, Push overwrites the oldest.
type Pool struct {
	clouds []Cloud
	next   int // Oldest slot once the ring is full
}

// NewPool creates a pool holding up to capacity clouds.
func NewPool(capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{clouds: make([]Cloud, 0, capacity)}
}

// Push adds a cloud at x, y.
func (p *Pool) Push(x, y int) {
	c := Cloud{X: x, Y: y, Lifetime: DefaultLifetime}
	if len(p.clouds) < cap(p.clouds) {
		p.clouds = append(p.clouds, c)
		return
	}
	p.clouds[p.next] = c
	p.next = (p.next + 1) % len(p.clouds)
}

// Update ages every cloud by one frame and drops the expired ones. Survivors
// are kept oldest first so the ring keeps overwriting in age order.
func (p *Pool) Update() {
	n := len(p.clouds)
	live := make([]Cloud, 0, cap(p.clouds))
	for i := 0; i < n; i++ {
		c := p.clouds[(p.next+i)%n]
		c.Age++
		if c.Alive() {
			live = append(live, c)
		}
	}
	p.clouds = live
	p.next = 0
}

// Each calls fn for every live cloud.
func (p *Pool) Each(fn func(Cloud)) {
	for _, c := range p.clouds {
		fn(c)
	}
}

// Len returns the number of live clouds.
func (p *Pool) Len() int {
	return len(p.clouds)
}
