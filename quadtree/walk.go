package quadtree

import "github.com/ArgishtiAyvazyan/geometry"

// Walk performs a depth-first traversal of every materialized node,
// calling visit with the node's region, its depth from the root (0 at
// the root), and its stored values. Traversal stops early if visit
// returns false.
//
// Walk lets an external caller introspect or render the tree's shape
// without depending on its internals. It does not change any
// insert/remove/query semantics.
func (t *Tree[C, K]) Walk(visit func(region geometry.Square[C], depth int, values []K) bool) {
	if t.root == nil {
		return
	}
	t.walk(t.root, 0, visit)
}

func (t *Tree[C, K]) walk(n *node[C, K], depth int, visit func(geometry.Square[C], int, []K) bool) bool {
	values := make([]K, 0, n.values.len())
	n.values.each(func(k K) { values = append(values, k) })
	if !visit(n.region, depth, values) {
		return false
	}
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if !t.walk(c, depth+1, visit) {
			return false
		}
	}
	return true
}
