package genpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/genpool"
)

func TestHandle_ZeroValueIsNil(t *testing.T) {
	var h genpool.Handle

	assert.True(t, h.IsNil())
	assert.Equal(t, "Handle{nil}", h.String())
}

func TestHandle_Equality(t *testing.T) {
	pool := genpool.New[int]()

	h1 := pool.Insert(1)
	h2 := pool.Insert(2)

	assert.Equal(t, h1, h1)
	assert.NotEqual(t, h1, h2)
	assert.NotEqual(t, h1, genpool.Handle{})

	// Reusing a slot changes the generation, so the handles differ.
	pool.Remove(h2)
	h3 := pool.Insert(3)
	assert.NotEqual(t, h2, h3)
}

func TestHandle_String(t *testing.T) {
	pool := genpool.New[int]()

	h := pool.Insert(1)
	assert.Equal(t, "Handle{slot: 0, gen: 0}", h.String())

	pool.Remove(h)
	h = pool.Insert(2)
	assert.Equal(t, "Handle{slot: 0, gen: 1}", h.String())
}

func TestHandle_IssuedHandlesAreNeverNil(t *testing.T) {
	pool := genpool.New[int]()

	for i := 0; i < 1000; i++ {
		h := pool.Insert(i)
		if h.IsNil() {
			t.Fatalf("insert %d returned the null handle", i)
		}
	}
}
