package quadtree

import "github.com/ArgishtiAyvazyan/geometry"

// childPos is the z-order position of a child slot. The exact integer
// encoding is an implementation choice; the four logical positions are
// fixed.
type childPos int

const (
	leftBottom childPos = iota
	leftTop
	rightBottom
	rightTop
)

// node owns its region and its four child slots, plus the keys that
// straddle its split lines. Nodes are uniquely owned by their parent's
// child slot (or by the tree for the root); dropping a node transitively
// releases its subtree via plain Go garbage collection, with no arena
// needed.
type node[C geometry.Coord, K Key[C]] struct {
	region   geometry.Square[C]
	children [4]*node[C, K]
	values   valueSet[C, K]
}

func newNode[C geometry.Coord, K Key[C]](region geometry.Square[C]) *node[C, K] {
	return &node[C, K]{region: region}
}

// empty reports whether n has no stored values and no materialized
// children.
func (n *node[C, K]) empty() bool {
	if n.values.len() != 0 {
		return false
	}
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// splitLines returns the node's vertical and horizontal split
// coordinates.
func (n *node[C, K]) splitLines() (mx, my C) {
	half := n.region.Size() / 2
	pos := n.region.Pos()
	return pos.X + half, pos.Y + half
}

// straddlesSplit reports whether k's extent crosses either of n's split
// lines.
func (n *node[C, K]) straddlesSplit(k K) bool {
	mx, my := n.splitLines()
	pos := k.Pos()
	tr := topRight[C](k)
	return (pos.X <= mx && mx <= tr.X) || (pos.Y <= my && my <= tr.Y)
}

// zOrder determines the z-order position of k relative to n's split
// lines.
func (n *node[C, K]) zOrder(k K) childPos {
	mx, my := n.splitLines()
	pos := k.Pos()
	switch {
	case pos.X < mx && pos.Y > my:
		return leftTop
	case pos.X < mx:
		return leftBottom
	case pos.Y > my:
		return rightTop
	default:
		return rightBottom
	}
}

// childRegion returns the region of the given quadrant of n: each
// quadrant has half of n's size.
func (n *node[C, K]) childRegion(pos childPos) geometry.Square[C] {
	half := n.region.Size() / 2
	base := n.region.Pos()
	switch pos {
	case leftBottom:
		return geometry.NewSquare(base, half)
	case leftTop:
		return geometry.NewSquare(geometry.NewPoint(base.X, base.Y+half), half)
	case rightBottom:
		return geometry.NewSquare(geometry.NewPoint(base.X+half, base.Y), half)
	default: // rightTop
		return geometry.NewSquare(geometry.NewPoint(base.X+half, base.Y+half), half)
	}
}

// child returns n's child at pos, materializing it first if absent and
// grow is true ("grow-down"). Returns nil if absent and grow is false.
func (n *node[C, K]) child(pos childPos, grow bool) *node[C, K] {
	if n.children[pos] == nil {
		if !grow {
			return nil
		}
		n.children[pos] = newNode[C, K](n.childRegion(pos))
	}
	return n.children[pos]
}
