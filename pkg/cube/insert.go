// pkg/cube/insert.go
package cube

// Set stores val under key, inserting a new entry if key is not already
// present or overwriting the existing value handle in place if it is.
func (c *Cube) Set(key int32, val any) {
	if len(c.wAxis) == 0 {
		c.mSize = M
		wn := c.insertWNode(0)
		xn := c.insertXNode(0, 0)
		yn := c.insertYNode(0, 0, 0)

		yn.keys[0] = key
		yn.vals[0] = val
		xn.zSize[0] = 1
		xn.yFloor[0] = key
		wn.xFloor[0] = key
		wn.xVolume[0] = 1
		c.wFloor[0] = key
		c.wVolume[0] = 1
		c.volume = 1
		return
	}

	_, at, ok := c.findKey(key)
	if ok {
		c.wAxis[at.w].xAxis[at.x].yAxis[at.y].vals[at.z] = val
		return
	}

	c.insertAt(at, key, val)
}

// insertAt writes (key, val) into the leaf named by at, updating floors and
// volume counters on the way back out, then cascades into a split if the
// leaf has reached capacity (and its ancestors, if they reach mSize).
func (c *Cube) insertAt(at coord, key int32, val any) {
	wn := c.wAxis[at.w]
	xn := wn.xAxis[at.x]
	yn := xn.yAxis[at.y]

	n := int(xn.zSize[at.y])
	copy(yn.keys[at.z+1:n+1], yn.keys[at.z:n])
	copy(yn.vals[at.z+1:n+1], yn.vals[at.z:n])
	yn.keys[at.z] = key
	yn.vals[at.z] = val
	xn.zSize[at.y]++

	if at.z == 0 {
		xn.yFloor[at.y] = key
		if at.y == 0 {
			wn.xFloor[at.x] = key
			if at.x == 0 {
				c.wFloor[at.w] = key
			}
		}
	}

	c.volume++
	c.wVolume[at.w]++
	wn.xVolume[at.x]++

	if int(xn.zSize[at.y]) == ZMax {
		c.splitYNode(at.w, at.x, at.y)
	}
}
