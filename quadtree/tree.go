package quadtree

import (
	"github.com/arl/math32"

	"github.com/ArgishtiAyvazyan/geometry"

	"github.com/ArgishtiAyvazyan/geometry/internal/dbg"
)

// Tree is a dynamically sized spatial index: an ordered set of
// rectangle-like keys supporting insert, remove, contains, and window
// queries. The zero value is a valid, empty tree.
type Tree[C geometry.Coord, K Key[C]] struct {
	root  *node[C, K]
	size  int
	trace *dbg.Logger
}

// New constructs an empty Tree. The tree starts rootless; the root is
// created on the first Insert.
func New[C geometry.Coord, K Key[C]]() *Tree[C, K] {
	return &Tree[C, K]{trace: dbg.New("quadtree")}
}

// Trace enables or disables trace logging of insert/remove/grow events.
func (t *Tree[C, K]) Trace(on bool) {
	if t.trace == nil {
		t.trace = dbg.New("quadtree")
	}
	t.trace.Enable(on)
}

// initialRootSize computes the initial root square's size:
// s = 2^(floor(log2(m))+1), or 1 if m <= 0. floor(log2(m)) is computed
// with math32.Ilog2.
func initialRootSize[C geometry.Coord](m C) C {
	if m <= 0 {
		return 1
	}
	exp := math32.Ilog2(uint32(m))
	s := C(1)
	for i := uint32(0); i <= exp; i++ {
		s *= 2
	}
	return s
}

// growUp repeatedly doubles the root's region, anchored at the origin,
// until it contains k, installing the previous root as the new root's
// LeftBottom child. This preserves all stored data because the old
// root's region occupies exactly the lower-left quadrant of the new,
// doubled region.
func (t *Tree[C, K]) growUp(k K) {
	if t.root == nil {
		m := geometry.Max(topRight[C](k).X, topRight[C](k).Y)
		size := initialRootSize(m)
		t.root = newNode[C, K](geometry.NewSquare(geometry.Point[C]{}, size))
		t.trace.Printf("created root, size=%v", size)
	}
	for !geometry.Contains[C](t.root.region, k) {
		bigger := geometry.NewSquare(geometry.Point[C]{}, t.root.region.Size()*2)
		assertPowerOfTwo(bigger.Size())
		newRoot := newNode[C, K](bigger)
		newRoot.children[leftBottom] = t.root
		t.trace.Printf("grow up: root size %v -> %v", t.root.region.Size(), bigger.Size())
		t.root = newRoot
	}
}

// growDown descends from the root toward the node that should own k,
// materializing child nodes on demand, and returns that node. Every
// stored key ends up held by the shallowest node whose split lines pass
// through it, or by a unit-sized leaf if none does.
func (t *Tree[C, K]) growDown(k K) *node[C, K] {
	n := t.root
	for !n.straddlesSplit(k) && n.region.Size() > 1 {
		pos := n.zOrder(k)
		assertZOrderConsistent(n, k, pos)
		n = n.child(pos, true)
	}
	return n
}

// descendNoGrow walks toward the node that would own k without
// materializing any missing child, for Contains and Remove. It reports
// the node reached and whether the walk had to stop early because a
// needed child was absent.
func (t *Tree[C, K]) descendNoGrow(k K) (target *node[C, K], parents []*node[C, K], positions []childPos, missing bool) {
	n := t.root
	for !n.straddlesSplit(k) && n.region.Size() > 1 {
		pos := n.zOrder(k)
		c := n.child(pos, false)
		if c == nil {
			return nil, nil, nil, true
		}
		parents = append(parents, n)
		positions = append(positions, pos)
		n = c
	}
	return n, parents, positions, false
}

// Insert adds k to the tree, growing the root upward and materializing
// nodes downward as needed. Reports whether k was newly inserted (true)
// or already present (false).
func (t *Tree[C, K]) Insert(k K) bool {
	t.growUp(k)
	n := t.growDown(k)
	inserted := n.values.insert(k)
	if inserted {
		t.size++
	}
	t.trace.Printf("insert %v inserted=%v size=%d", k, inserted, t.size)
	return inserted
}

// Contains reports whether k is stored in the tree. It never
// materializes missing nodes.
func (t *Tree[C, K]) Contains(k K) bool {
	if t.root == nil {
		return false
	}
	n, _, _, missing := t.descendNoGrow(k)
	if missing {
		return false
	}
	return n.values.contains(k)
}

// Remove deletes k from the tree if present, reporting whether it was
// present. If the owning node becomes empty, it is dropped from its
// parent's child slot; non-empty ancestors are never collapsed further.
func (t *Tree[C, K]) Remove(k K) bool {
	if t.root == nil {
		return false
	}
	n, parents, positions, missing := t.descendNoGrow(k)
	if missing {
		return false
	}
	if !n.values.remove(k) {
		return false
	}
	t.size--
	if n != t.root && n.empty() && len(parents) > 0 {
		parent := parents[len(parents)-1]
		parent.children[positions[len(positions)-1]] = nil
	}
	t.trace.Printf("remove %v size=%d", k, t.size)
	return true
}

// Query performs a depth-first traversal from the root, emitting every
// stored key that intersects q via emit. Traversal order is unspecified;
// duplicates are not possible because each key lives in exactly one
// node.
func (t *Tree[C, K]) Query(q geometry.Rect[C], emit func(K)) {
	if t.root == nil {
		return
	}
	t.queryNode(t.root, q, emit)
}

func (t *Tree[C, K]) queryNode(n *node[C, K], q geometry.Rect[C], emit func(K)) {
	if !geometry.Intersects[C](q, n.region) {
		return
	}
	n.values.each(func(k K) {
		if geometry.Intersects[C](q, k) {
			emit(k)
		}
	})
	for _, c := range n.children {
		if c != nil {
			t.queryNode(c, q, emit)
		}
	}
}

// Size returns the number of stored keys, maintained incrementally.
func (t *Tree[C, K]) Size() int {
	return t.size
}

// Empty reports whether the tree has no stored keys.
func (t *Tree[C, K]) Empty() bool {
	return t.size == 0
}

// Clear drops the root, releasing the whole tree, and resets size to 0.
func (t *Tree[C, K]) Clear() {
	t.root = nil
	t.size = 0
}
