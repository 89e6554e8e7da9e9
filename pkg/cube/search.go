// pkg/cube/search.go
package cube

// findKey performs a monotone downward floor search for key.
//
// At the W and X levels it halves the remaining range while the step
// exceeds 3, then walks one slot at a time. At the Y and Z levels it
// quarters the range while the step exceeds 7, checking up to three
// consecutive quarter-jumps before falling back to a linear walk. This
// asymmetric schedule favors cache behavior at the higher fan-out inner
// levels and is preserved deliberately; a uniform binary descent at every
// level would also be correct.
//
// A hit returns (value, coordinate, true). A miss returns coord as the
// position at which key would be inserted, and false; a key smaller than
// the smallest stored key always misses at (0, 0, 0, 0).
func (c *Cube) findKey(key int32) (any, coord, bool) {
	if len(c.wAxis) == 0 || key < c.wFloor[0] {
		return nil, coord{}, false
	}

	mid := len(c.wAxis) - 1
	w := mid
	for mid > 3 {
		mid /= 2
		if key < c.wFloor[w-mid] {
			w -= mid
		}
	}
	for key < c.wFloor[w] {
		w--
	}

	wn := c.wAxis[w]

	mid = len(wn.xAxis) - 1
	x := mid
	for mid > 3 {
		mid /= 2
		if key < wn.xFloor[x-mid] {
			x -= mid
		}
	}
	for key < wn.xFloor[x] {
		x--
	}

	xn := wn.xAxis[x]

	mid = len(xn.yAxis) - 1
	y := mid
	for mid > 7 {
		mid /= 4
		if key < xn.yFloor[y-mid] {
			y -= mid
			if key < xn.yFloor[y-mid] {
				y -= mid
				if key < xn.yFloor[y-mid] {
					y -= mid
				}
			}
		}
	}
	for key < xn.yFloor[y] {
		y--
	}

	yn := xn.yAxis[y]

	mid = int(xn.zSize[y]) - 1
	z := mid
	for mid > 7 {
		mid /= 4
		if key < yn.keys[z-mid] {
			z -= mid
			if key < yn.keys[z-mid] {
				z -= mid
				if key < yn.keys[z-mid] {
					z -= mid
				}
			}
		}
	}
	for key < yn.keys[z] {
		z--
	}

	at := coord{w, x, y, z}

	if key == yn.keys[z] {
		return yn.vals[z], at, true
	}

	return nil, coord{w, x, y, z + 1}, false
}

// findIndex locates the entry at rank i (0-based, key order) by walking
// the stored subtree volumes. It chooses, at every level, whichever of a
// forward or backward scan bounds the remaining work to about half that
// level's slots, independent of total size.
func (c *Cube) findIndex(i int) (any, coord, bool) {
	if i < 0 || i >= int(c.volume) {
		return nil, coord{}, false
	}

	if i < int(c.volume)/2 {
		return c.findIndexForwardW(i)
	}
	return c.findIndexBackwardW(i)
}

func (c *Cube) findIndexForwardW(i int) (any, coord, bool) {
	total := 0
	for w := 0; w < len(c.wAxis); w++ {
		vol := int(c.wVolume[w])
		if total+vol > i {
			if i > total+vol/2 {
				return c.xScanBackward(w, total+vol, i)
			}
			return c.xScanForward(w, total, i)
		}
		total += vol
	}
	return nil, coord{}, false
}

func (c *Cube) findIndexBackwardW(i int) (any, coord, bool) {
	total := int(c.volume)
	for w := len(c.wAxis) - 1; w >= 0; w-- {
		vol := int(c.wVolume[w])
		if total-vol <= i {
			if i < total-vol/2 {
				return c.xScanForward(w, total-vol, i)
			}
			return c.xScanBackward(w, total, i)
		}
		total -= vol
	}
	return nil, coord{}, false
}

func (c *Cube) xScanForward(w, total, i int) (any, coord, bool) {
	wn := c.wAxis[w]
	for x := 0; x < len(wn.xAxis); x++ {
		vol := int(wn.xVolume[x])
		if total+vol > i {
			if i > total+vol/2 {
				return c.yScanBackward(w, x, total+vol, i)
			}
			return c.yScanForward(w, x, total, i)
		}
		total += vol
	}
	return nil, coord{}, false
}

func (c *Cube) xScanBackward(w, total, i int) (any, coord, bool) {
	wn := c.wAxis[w]
	for x := len(wn.xAxis) - 1; x >= 0; x-- {
		vol := int(wn.xVolume[x])
		if total-vol <= i {
			if i < total-vol/2 {
				return c.yScanForward(w, x, total-vol, i)
			}
			return c.yScanBackward(w, x, total, i)
		}
		total -= vol
	}
	return nil, coord{}, false
}

func (c *Cube) yScanForward(w, x, total, i int) (any, coord, bool) {
	wn := c.wAxis[w]
	xn := wn.xAxis[x]
	for y := 0; y < len(xn.yAxis); y++ {
		sz := int(xn.zSize[y])
		if total+sz > i {
			z := i - total
			return xn.yAxis[y].vals[z], coord{w, x, y, z}, true
		}
		total += sz
	}
	return nil, coord{}, false
}

func (c *Cube) yScanBackward(w, x, total, i int) (any, coord, bool) {
	wn := c.wAxis[w]
	xn := wn.xAxis[x]
	for y := len(xn.yAxis) - 1; y >= 0; y-- {
		sz := int(xn.zSize[y])
		if total-sz <= i {
			z := sz - (total - i)
			return xn.yAxis[y].vals[z], coord{w, x, y, z}, true
		}
		total -= sz
	}
	return nil, coord{}, false
}
