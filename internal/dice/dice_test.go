package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(10), b.IntN(10))
	}
}

func TestScripted_CyclesAndCounts(t *testing.T) {
	s := NewScripted(0.1, 0.9)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.9, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 3, s.Draws())
}

func TestScripted_IntNStaysInRange(t *testing.T) {
	s := NewScripted(0.999999, 0, 0.5)
	assert.Equal(t, 5, s.IntN(6))
	assert.Equal(t, 0, s.IntN(6))
	assert.Equal(t, 3, s.IntN(6))
	assert.Equal(t, 0, s.IntN(0))
}

func TestUniform(t *testing.T) {
	assert.Equal(t, 0.75, Uniform(NewScripted(0), 0.75, 1.25))
	assert.Equal(t, 1.0, Uniform(NewScripted(0.5), 0.75, 1.25))
}

func TestShuffle_IsPermutation(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6, 7}
	Shuffle(New(7), len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7}, xs)
}
