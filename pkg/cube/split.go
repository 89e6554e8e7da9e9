// pkg/cube/split.go
package cube

// splitYNode splits a full leaf at (w, x, y) in half, moving its upper
// half into a freshly allocated leaf inserted immediately to its right. It
// cascades into splitXNode if the split pushes x's Y axis to mSize slots.
func (c *Cube) splitYNode(w, x, y int) {
	wn := c.wAxis[w]
	xn := wn.xAxis[x]
	yn := xn.yAxis[y]

	lower := ZMax / 2
	upper := ZMax - lower

	rn := c.insertYNode(w, x, y+1)
	copy(rn.keys[:upper], yn.keys[lower:])
	copy(rn.vals[:upper], yn.vals[lower:])

	var zero int32
	var zeroVal any
	for i := lower; i < ZMax; i++ {
		yn.keys[i] = zero
		yn.vals[i] = zeroVal
	}

	xn.zSize[y] = uint8(lower)
	xn.zSize[y+1] = uint8(upper)
	xn.yFloor[y+1] = rn.keys[0]

	if len(xn.yAxis) == c.mSize {
		c.splitXNode(w, x)
	}
}

// splitXNode splits X-slot x's Y axis in half, moving its upper half into a
// freshly allocated X-node inserted immediately to its right within w. It
// cascades into splitWNode if the split pushes w's X axis to mSize slots.
func (c *Cube) splitXNode(w, x int) {
	wn := c.wAxis[w]
	xn := wn.xAxis[x]

	n := len(xn.yAxis)
	lower := n / 2

	rn := c.insertXNode(w, x+1)

	rn.yFloor = append([]int32(nil), xn.yFloor[lower:]...)
	rn.yAxis = append([]*yNode(nil), xn.yAxis[lower:]...)
	rn.zSize = append([]uint8(nil), xn.zSize[lower:]...)

	xn.yFloor = xn.yFloor[:lower]
	xn.yAxis = xn.yAxis[:lower]
	xn.zSize = xn.zSize[:lower]

	var leftVol, rightVol uint16
	for _, sz := range xn.zSize {
		leftVol += uint16(sz)
	}
	for _, sz := range rn.zSize {
		rightVol += uint16(sz)
	}

	wn.xVolume[x] = leftVol
	wn.xVolume[x+1] = rightVol
	wn.xFloor[x+1] = rn.yFloor[0]

	if len(wn.xAxis) == c.mSize {
		c.splitWNode(w)
	}
}

// splitWNode splits W-slot w's X axis in half, moving its upper half into a
// freshly allocated W-node inserted immediately to its right.
func (c *Cube) splitWNode(w int) {
	wn := c.wAxis[w]

	n := len(wn.xAxis)
	lower := n / 2

	rn := c.insertWNode(w + 1)

	rn.xFloor = append([]int32(nil), wn.xFloor[lower:]...)
	rn.xAxis = append([]*xNode(nil), wn.xAxis[lower:]...)
	rn.xVolume = append([]uint16(nil), wn.xVolume[lower:]...)

	wn.xFloor = wn.xFloor[:lower]
	wn.xAxis = wn.xAxis[:lower]
	wn.xVolume = wn.xVolume[:lower]

	var leftVol, rightVol int32
	for _, v := range wn.xVolume {
		leftVol += int32(v)
	}
	for _, v := range rn.xVolume {
		rightVol += int32(v)
	}

	c.wVolume[w] = leftVol
	c.wVolume[w+1] = rightVol
	c.wFloor[w+1] = rn.xFloor[0]
}
