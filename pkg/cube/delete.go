// pkg/cube/delete.go
package cube

// removeAt removes the entry at coordinate at, returning its value handle.
// It shifts the leaf left over z, cascades into node removal if the leaf
// emptied, refreshes floors on the way out, and otherwise considers the
// leaf (and its ancestors) for a merge with their left neighbor.
func (c *Cube) removeAt(at coord) any {
	wn := c.wAxis[at.w]
	xn := wn.xAxis[at.x]
	yn := xn.yAxis[at.y]

	val := yn.vals[at.z]

	c.volume--
	c.wVolume[at.w]--
	wn.xVolume[at.x]--

	n := int(xn.zSize[at.y])
	copy(yn.keys[at.z:n-1], yn.keys[at.z+1:n])
	copy(yn.vals[at.z:n-1], yn.vals[at.z+1:n])
	yn.keys[n-1] = 0
	yn.vals[n-1] = nil
	xn.zSize[at.y]--

	if xn.zSize[at.y] == 0 {
		c.removeYNode(at.w, at.x, at.y)
		return val
	}

	if at.z == 0 {
		c.refreshFloor(at.w, at.x, at.y, yn.keys[0])
	}

	c.mergeLeaves(at.w, at.x, at.y)

	return val
}

// refreshFloor mirrors a Y-node's new first key upward through the X, W,
// and Cube floors, stopping as soon as the affected slot is not index 0 of
// its parent.
func (c *Cube) refreshFloor(w, x, y int, key int32) {
	wn := c.wAxis[w]
	xn := wn.xAxis[x]

	xn.yFloor[y] = key
	if y != 0 {
		return
	}

	wn.xFloor[x] = key
	if x != 0 {
		return
	}

	c.wFloor[w] = key
}

// mergeLeaves implements the merge cascade of §4.4: a leaf below Z_MIN
// merges into its left neighbor if that neighbor is also below Z_MIN, and
// the merge may cascade into the X and W levels under the quarter-m_size
// threshold.
func (c *Cube) mergeLeaves(w, x, y int) {
	wn := c.wAxis[w]
	xn := wn.xAxis[x]

	if y == 0 || xn.zSize[y] >= ZMin || xn.zSize[y-1] >= ZMin {
		return
	}

	left := xn.yAxis[y-1]
	right := xn.yAxis[y]
	ln := int(xn.zSize[y-1])
	rn := int(xn.zSize[y])

	copy(left.keys[ln:ln+rn], right.keys[:rn])
	copy(left.vals[ln:ln+rn], right.vals[:rn])
	xn.zSize[y-1] = uint8(ln + rn)

	c.removeYNode(w, x, y)

	c.mergeXNodes(w, x)
}

// mergeXNodes implements the X-level cascade of §4.4.
func (c *Cube) mergeXNodes(w, x int) {
	wn := c.wAxis[w]

	quarter := c.mSize / 4
	if x == 0 || len(wn.xAxis[x].yAxis) >= quarter || len(wn.xAxis[x-1].yAxis) >= quarter {
		return
	}

	left := wn.xAxis[x-1]
	right := wn.xAxis[x]

	left.yFloor = append(left.yFloor, right.yFloor...)
	left.yAxis = append(left.yAxis, right.yAxis...)
	left.zSize = append(left.zSize, right.zSize...)

	wn.xVolume[x-1] += wn.xVolume[x]

	c.removeXNode(w, x)

	c.mergeWNodes(w)
}

// mergeWNodes implements the W-level cascade of §4.4.
func (c *Cube) mergeWNodes(w int) {
	quarter := c.mSize / 4
	if w == 0 || len(c.wAxis[w].xAxis) >= quarter || len(c.wAxis[w-1].xAxis) >= quarter {
		return
	}

	left := c.wAxis[w-1]
	right := c.wAxis[w]

	left.xFloor = append(left.xFloor, right.xFloor...)
	left.xAxis = append(left.xAxis, right.xAxis...)
	left.xVolume = append(left.xVolume, right.xVolume...)

	c.wVolume[w-1] += c.wVolume[w]

	c.removeWNode(w)
}
