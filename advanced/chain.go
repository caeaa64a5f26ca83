package advanced

// The surviving points of a reduction form a doubly linked list over the
// original indexes. Removing a point is O(1) and never renumbers anything, so
// an index always refers to the same original point.
type chain struct {
	prev, next []int
	removed    []bool
	length     int
}

const noNeighbor = -1

func newChain(m int) *chain {
	c := &chain{
		prev:    make([]int, m),
		next:    make([]int, m),
		removed: make([]bool, m),
		length:  m,
	}
	for i := 0; i < m; i++ {
		c.prev[i] = i - 1
		c.next[i] = i + 1
	}
	if m > 0 {
		c.next[m-1] = noNeighbor
	}
	return c
}

func (c *chain) check(i int) {
	if i < 0 || i >= len(c.prev) {
		fatalf("index %d outside a chain of %d points", i, len(c.prev))
	}
	if c.removed[i] {
		fatalf("index %d has already been removed", i)
	}
}

// The surviving neighbors of i. Either may be noNeighbor at the ends.
func (c *chain) neighbors(i int) (left, right int) {
	c.check(i)
	return c.prev[i], c.next[i]
}

// Unlink i, returning the neighbors that are now adjacent to each other.
func (c *chain) remove(i int) (left, right int) {
	left, right = c.neighbors(i)
	if left != noNeighbor {
		c.next[left] = right
	}
	if right != noNeighbor {
		c.prev[right] = left
	}
	c.removed[i] = true
	c.length--
	return left, right
}

// Original indexes of the surviving points, ascending.
func (c *chain) survivors() []int {
	out := make([]int, 0, c.length)
	if len(c.prev) == 0 {
		return out
	}
	// The first point can never be removed, so it's always the head.
	for i := 0; i != noNeighbor; i = c.next[i] {
		out = append(out, i)
	}
	return out
}
