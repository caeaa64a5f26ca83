package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c := newChain(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, c.survivors())

	left, right := c.neighbors(0)
	assert.Equal(t, noNeighbor, left)
	assert.Equal(t, 1, right)

	left, right = c.remove(2)
	assert.Equal(t, 1, left)
	assert.Equal(t, 3, right)
	assert.Equal(t, []int{0, 1, 3, 4}, c.survivors())

	left, right = c.neighbors(3)
	assert.Equal(t, 1, left)
	assert.Equal(t, 4, right)

	c.remove(1)
	c.remove(3)
	assert.Equal(t, []int{0, 4}, c.survivors())
	assert.Equal(t, 2, c.length)

	left, right = c.neighbors(4)
	assert.Equal(t, 0, left)
	assert.Equal(t, noNeighbor, right)
}

func TestChain_Empty(t *testing.T) {
	assert.Empty(t, newChain(0).survivors())
}

func TestChain_Invariants(t *testing.T) {
	catch := func(f func()) (err error) {
		defer func() {
			err = HandleReducePanicRecover(recover())
		}()
		f()
		return nil
	}

	c := newChain(3)
	c.remove(1)
	assert.ErrorIs(t, catch(func() { c.remove(1) }), ErrIndexOutOfRange)
	assert.ErrorIs(t, catch(func() { c.neighbors(1) }), ErrIndexOutOfRange)
	assert.ErrorIs(t, catch(func() { c.neighbors(3) }), ErrIndexOutOfRange)
	assert.ErrorIs(t, catch(func() { c.neighbors(-1) }), ErrIndexOutOfRange)
}
