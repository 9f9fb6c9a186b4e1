package quadtree

import "github.com/ArgishtiAyvazyan/geometry"

// valueSet is the ordered set of keys stored at a node: a sorted slice,
// kept small by construction (only keys straddling this node's split
// lines, or keys routed to a unit-sized leaf, ever land here). A sorted
// slice with binary search is the simplest fit for that access pattern.
type valueSet[C geometry.Coord, K Key[C]] struct {
	items []K
}

// insert adds k if not already present, preserving sort order. Reports
// whether k was newly inserted.
func (s *valueSet[C, K]) insert(k K) bool {
	i, found := s.search(k)
	if found {
		return false
	}
	s.items = append(s.items, k)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = k
	return true
}

// remove deletes k if present. Reports whether it was present.
func (s *valueSet[C, K]) remove(k K) bool {
	i, found := s.search(k)
	if !found {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// contains reports whether k is present.
func (s *valueSet[C, K]) contains(k K) bool {
	_, found := s.search(k)
	return found
}

// len returns the number of stored keys.
func (s *valueSet[C, K]) len() int {
	return len(s.items)
}

// each calls fn for every stored key.
func (s *valueSet[C, K]) each(fn func(K)) {
	for _, k := range s.items {
		fn(k)
	}
}

// search returns the index at which k is (or would be) found, and
// whether it is actually present, via binary search over lessKey's
// total order.
func (s *valueSet[C, K]) search(k K) (int, bool) {
	lo, hi := 0, len(s.items)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case lessKey[C](s.items[mid], k):
			lo = mid + 1
		case lessKey[C](k, s.items[mid]):
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}
