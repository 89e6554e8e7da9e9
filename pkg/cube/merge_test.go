// pkg/cube/merge_test.go
package cube

import "testing"

// TestLeafMergeOnUnderflow drives a leaf below Z_MIN via deletion and
// checks that it merges with its left neighbor rather than being left
// sparse.
func TestLeafMergeOnUnderflow(t *testing.T) {
	c := New()
	for i := 0; i < ZMax*3; i++ {
		c.Set(int32(i), i)
	}

	yCount := len(c.wAxis[0].xAxis[0].yAxis)
	if yCount < 2 {
		t.Fatal("expected at least two Y-nodes before forcing a merge")
	}

	// the ascending run leaves six leaves of ZMax/2 keys each. Deleting the
	// first ZMax-ZMin+1 keys empties the first leaf and leaves the second
	// below Z_MIN; doing the same from key ZMax empties the third leaf and
	// drives the fourth below Z_MIN next to an under-populated left
	// neighbor, so the merge policy's two-sided threshold check fires.
	for i := 0; i < ZMax-ZMin+1; i++ {
		if _, ok := c.Delete(int32(i)); !ok {
			t.Fatalf("delete %d: expected hit", i)
		}
	}
	for i := ZMax; i < ZMax+(ZMax-ZMin+1); i++ {
		if _, ok := c.Delete(int32(i)); !ok {
			t.Fatalf("delete %d: expected hit", i)
		}
	}

	checkInvariants(t, c)

	xn := c.wAxis[0].xAxis[0]
	for y := 1; y < len(xn.yAxis); y++ {
		if xn.zSize[y] < ZMin && xn.zSize[y-1] < ZMin {
			t.Fatalf("adjacent leaves %d and %d are both below Z_MIN; merge should have fired", y-1, y)
		}
	}

	for i := 0; i < ZMax*3; i++ {
		deleted := (i < ZMax-ZMin+1) || (i >= ZMax && i < ZMax+(ZMax-ZMin+1))
		val, ok := c.Get(int32(i))
		if deleted {
			if ok {
				t.Errorf("key %d: expected miss after delete, got %v", i, val)
			}
			continue
		}
		if !ok || val != i {
			t.Errorf("key %d: expected (%d, true), got (%v, %v)", i, i, val, ok)
		}
	}
}

// TestMergeCascadeShrinksDeep builds a large cube spanning multiple X- and
// W-nodes, then deletes the overwhelming majority of keys and checks the
// structure shrinks back down and remains consistent, eventually returning
// to a fully empty cube.
func TestMergeCascadeShrinksDeep(t *testing.T) {
	c := New()
	const n = 50000

	for i := 0; i < n; i++ {
		c.Set(int32(i), i)
	}

	for i := 0; i < n; i++ {
		if _, ok := c.Delete(int32(i)); !ok {
			t.Fatalf("delete %d: expected hit", i)
		}
		if i%4999 == 0 {
			checkInvariants(t, c)
		}
	}

	if got := c.Len(); got != 0 {
		t.Fatalf("expected empty cube after draining, got length %d", got)
	}
	if len(c.wAxis) != 0 {
		t.Fatal("expected the W axis to be released once the cube is empty")
	}

	// the cube must still work after being drained to empty
	c.Set(1, "x")
	if val, ok := c.Get(1); !ok || val != "x" {
		t.Fatalf("expected reuse after full drain, got (%v, %v)", val, ok)
	}
}

// TestDeleteByIndexAfterMerges interleaves index-based deletion with
// enough volume to force merges, and checks that key order, floors and
// volumes stay consistent.
func TestDeleteByIndexAfterMerges(t *testing.T) {
	c := New()
	const n = 8000
	for i := 0; i < n; i++ {
		c.Set(int32(i*2), i)
	}

	removed := 0
	for c.Len() > 100 {
		c.DeleteIndex(c.Len() / 2)
		removed++
		if removed%500 == 0 {
			checkInvariants(t, c)
		}
	}

	checkInvariants(t, c)
}
