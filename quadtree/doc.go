// Package quadtree implements a dynamically sized region tree: an
// ordered set of rectangle-like keys supporting insert, remove,
// contains, and window (range) queries.
//
// The indexed region grows upward (the root's square region doubles until
// it spans any newly inserted key) and downward (children are lazily
// materialized on descent). Keys whose extent straddles a node's split
// lines are stored at that node rather than pushed further down the
// tree.
//
// See DESIGN.md for the root-sizing bit math's provenance.
package quadtree
