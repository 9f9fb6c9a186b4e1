package quadtree

import "github.com/ArgishtiAyvazyan/geometry"

// naiveIndex is a brute-force reference oracle used only by this
// package's tests: it keeps every inserted key in a flat slice and
// answers query with a linear intersects scan, giving the optimized
// tree a second, independently-implemented index to be differentially
// tested against.
type naiveIndex[C geometry.Coord, K Key[C]] struct {
	items []K
}

func (idx *naiveIndex[C, K]) insert(k K) bool {
	for _, item := range idx.items {
		if item == k {
			return false
		}
	}
	idx.items = append(idx.items, k)
	return true
}

func (idx *naiveIndex[C, K]) remove(k K) bool {
	for i, item := range idx.items {
		if item == k {
			idx.items = append(idx.items[:i], idx.items[i+1:]...)
			return true
		}
	}
	return false
}

func (idx *naiveIndex[C, K]) query(q geometry.Rect[C]) []K {
	var out []K
	for _, item := range idx.items {
		if geometry.Intersects[C](q, item) {
			out = append(out, item)
		}
	}
	return out
}
