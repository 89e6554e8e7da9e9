// pkg/cube/node.go
package cube

// wNode owns the X-level arrays for one W-slot.
type wNode struct {
	xFloor  []int32  // floor key of each X-slot's subtree
	xAxis   []*xNode // X-node per slot
	xVolume []uint16 // total keys reachable through each X-slot
}

// xNode owns the Y-level (leaf) arrays for one X-slot.
type xNode struct {
	yFloor []int32  // floor key of each Y-slot (== its first key)
	yAxis  []*yNode // leaf per slot
	zSize  []uint8  // number of entries in use, per leaf
}

// yNode is a leaf: up to ZMax (key, value) pairs in sorted order.
type yNode struct {
	keys [ZMax]int32
	vals [ZMax]any
}

// insertSlice inserts v at position i, shifting the tail one slot right.
func insertSlice[T any](s []T, i int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:len(s)-1])
	s[i] = v
	return s
}

// removeSlice deletes the element at position i, shifting the tail left.
func removeSlice[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// insertWNode grows the cube's W axis by one slot at position w, allocating
// a fresh W-node there. It bumps mSize in steps of M whenever the W axis
// reaches the current threshold; mSize is the fan-out ceiling shared by the
// W, X and Y levels and governs when those levels split or merge.
func (c *Cube) insertWNode(w int) *wNode {
	c.wFloor = insertSlice(c.wFloor, w, int32(0))
	c.wAxis = insertSlice(c.wAxis, w, (*wNode)(nil))
	c.wVolume = insertSlice(c.wVolume, w, int32(0))

	if len(c.wAxis) == c.mSize {
		c.mSize += M
	}

	n := &wNode{}
	c.wAxis[w] = n
	return n
}

// removeWNode frees the W-node at w and shrinks the W axis. When the last
// W-slot is removed, the cube returns to its empty state; mSize is left
// stale and is reinitialized by the next first-ever insertion.
func (c *Cube) removeWNode(w int) {
	newSize := len(c.wAxis) - 1
	if newSize < c.mSize-M {
		c.mSize -= M
	}

	if newSize == 0 {
		c.wFloor = nil
		c.wAxis = nil
		c.wVolume = nil
		return
	}

	c.wFloor = removeSlice(c.wFloor, w)
	c.wAxis = removeSlice(c.wAxis, w)
	c.wVolume = removeSlice(c.wVolume, w)
}

// insertXNode grows W-slot w's X axis by one slot at position x, allocating
// a fresh X-node there.
func (c *Cube) insertXNode(w, x int) *xNode {
	wn := c.wAxis[w]

	wn.xFloor = insertSlice(wn.xFloor, x, int32(0))
	wn.xAxis = insertSlice(wn.xAxis, x, (*xNode)(nil))
	wn.xVolume = insertSlice(wn.xVolume, x, uint16(0))

	n := &xNode{}
	wn.xAxis[x] = n
	return n
}

// removeXNode frees the X-node at (w, x) and shrinks w's X axis. If that
// empties the W-slot, it cascades into removeWNode. Removing slot 0
// refreshes the W-slot's floor from the new occupant of slot 0.
func (c *Cube) removeXNode(w, x int) {
	wn := c.wAxis[w]

	if len(wn.xAxis) == 1 {
		c.removeWNode(w)
		return
	}

	wn.xFloor = removeSlice(wn.xFloor, x)
	wn.xAxis = removeSlice(wn.xAxis, x)
	wn.xVolume = removeSlice(wn.xVolume, x)

	if x == 0 {
		c.wFloor[w] = wn.xFloor[0]
	}
}

// insertYNode grows X-slot x's Y axis by one slot at position y, allocating
// a fresh, empty leaf there.
func (c *Cube) insertYNode(w, x, y int) *yNode {
	xn := c.wAxis[w].xAxis[x]

	xn.yFloor = insertSlice(xn.yFloor, y, int32(0))
	xn.yAxis = insertSlice(xn.yAxis, y, (*yNode)(nil))
	xn.zSize = insertSlice(xn.zSize, y, uint8(0))

	n := &yNode{}
	xn.yAxis[y] = n
	return n
}

// removeYNode frees the leaf at (w, x, y) and shrinks x's Y axis. If that
// empties the X-slot, it cascades into removeXNode. Removing slot 0
// refreshes the X-slot's (and, if x == 0, the W-slot's) floor from the new
// occupant of slot 0.
func (c *Cube) removeYNode(w, x, y int) {
	wn := c.wAxis[w]
	xn := wn.xAxis[x]

	if len(xn.yAxis) == 1 {
		c.removeXNode(w, x)
		return
	}

	xn.yFloor = removeSlice(xn.yFloor, y)
	xn.yAxis = removeSlice(xn.yAxis, y)
	xn.zSize = removeSlice(xn.zSize, y)

	if y == 0 {
		wn.xFloor[x] = xn.yFloor[0]
		if x == 0 {
			c.wFloor[w] = xn.yFloor[0]
		}
	}
}
