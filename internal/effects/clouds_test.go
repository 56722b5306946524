package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolPushOverwritesOldest(t *testing.T) {
	p := NewPool(2)
	p.Push(1, 1)
	p.Push(2, 2)
	p.Push(3, 3)

	var xs []int
	p.Each(func(c Cloud) { xs = append(xs, c.X) })
	assert.Equal(t, []int{3, 2}, xs)
	assert.Equal(t, 2, p.Len())
}

func TestPoolUpdateRetiresExpired(t *testing.T) {
	p := NewPool(4)
	p.Push(0, 0)
	for i := 0; i < DefaultLifetime-1; i++ {
		p.Update()
	}
	assert.Equal(t, 1, p.Len())

	p.Push(5, 5)
	p.Update()
	assert.Equal(t, 1, p.Len())
	p.Each(func(c Cloud) {
		assert.Equal(t, 5, c.X)
		assert.Equal(t, 1, c.Age)
	})
}

func TestNewPoolMinimumCapacity(t *testing.T) {
	p := NewPool(0)
	p.Push(1, 1)
	p.Push(2, 2)
	assert.Equal(t, 1, p.Len())
}

func TestPoolOverwritesInAgeOrderAfterUpdate(t *testing.T) {
	p := NewPool(3)
	p.Push(1, 0)
	p.Push(2, 0)
	p.Push(3, 0)
	p.Push(4, 0) // replaces 1
	p.Update()
	p.Push(5, 0) // replaces 2, now the oldest

	var xs []int
	p.Each(func(c Cloud) { xs = append(xs, c.X) })
	assert.ElementsMatch(t, []int{3, 4, 5}, xs)
}
