package quadtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArgishtiAyvazyan/geometry"
)

func rect(x, y, w, h int32) geometry.Rect[int32] {
	return geometry.NewRect(geometry.NewPoint(x, y), w, h)
}

func TestSeedScenario(t *testing.T) {
	tree := New[int32, geometry.Rect[int32]]()

	a := rect(50, 13, 100, 100)
	b := rect(0, 0, 123, 123)
	c := rect(200, 200, 10, 10)

	require.True(t, tree.Insert(a))
	require.True(t, tree.Insert(b))
	require.True(t, tree.Insert(c))
	require.Equal(t, 3, tree.Size())

	var got []geometry.Rect[int32]
	tree.Query(rect(60, 60, 5, 5), func(k geometry.Rect[int32]) {
		got = append(got, k)
	})
	assert.ElementsMatch(t, []geometry.Rect[int32]{a, b}, got)

	require.True(t, tree.Remove(b))

	got = nil
	tree.Query(rect(60, 60, 5, 5), func(k geometry.Rect[int32]) {
		got = append(got, k)
	})
	assert.ElementsMatch(t, []geometry.Rect[int32]{a}, got)
	assert.Equal(t, 2, tree.Size())
}

func TestInsertDuplicateReturnsFalse(t *testing.T) {
	tree := New[int32, geometry.Rect[int32]]()
	r := rect(1, 1, 1, 1)
	assert.True(t, tree.Insert(r))
	assert.False(t, tree.Insert(r))
	assert.Equal(t, 1, tree.Size())
}

func TestRemoveMissingReturnsFalse(t *testing.T) {
	tree := New[int32, geometry.Rect[int32]]()
	assert.False(t, tree.Remove(rect(1, 1, 1, 1)))
	tree.Insert(rect(5, 5, 1, 1))
	assert.False(t, tree.Remove(rect(1, 1, 1, 1)))
}

func TestContainsMissing(t *testing.T) {
	tree := New[int32, geometry.Rect[int32]]()
	assert.False(t, tree.Contains(rect(1, 1, 1, 1)))
	r := rect(10, 10, 5, 5)
	tree.Insert(r)
	assert.True(t, tree.Contains(r))
	assert.False(t, tree.Contains(rect(999, 999, 1, 1)))
}

func TestClear(t *testing.T) {
	tree := New[int32, geometry.Rect[int32]]()
	tree.Insert(rect(1, 1, 1, 1))
	tree.Insert(rect(500, 500, 10, 10))
	require.False(t, tree.Empty())
	tree.Clear()
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Size())

	var seen []geometry.Rect[int32]
	tree.Query(rect(0, 0, 1000, 1000), func(k geometry.Rect[int32]) { seen = append(seen, k) })
	assert.Empty(t, seen)
}

func TestGrowUpAcrossWideRange(t *testing.T) {
	tree := New[int32, geometry.Rect[int32]]()
	small := rect(1, 1, 1, 1)
	far := rect(100000, 100000, 1, 1)
	tree.Insert(small)
	tree.Insert(far)

	assert.True(t, tree.Contains(small))
	assert.True(t, tree.Contains(far))

	var got []geometry.Rect[int32]
	tree.Query(rect(0, 0, 2, 2), func(k geometry.Rect[int32]) { got = append(got, k) })
	assert.ElementsMatch(t, []geometry.Rect[int32]{small}, got)
}

// TestQueryCrossCheck is a cross-check property test: for random keys
// and random query windows in [0, 1000), the quadtree's query results
// must agree with the naiveIndex brute-force oracle.
func TestQueryCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := New[int32, geometry.Rect[int32]]()
	oracle := &naiveIndex[int32, geometry.Rect[int32]]{}

	for i := 0; i < 200; i++ {
		k := rect(
			int32(rng.Intn(1000)),
			int32(rng.Intn(1000)),
			int32(rng.Intn(50)+1),
			int32(rng.Intn(50)+1),
		)
		tree.Insert(k)
		oracle.insert(k)
	}

	for i := 0; i < 50; i++ {
		q := rect(
			int32(rng.Intn(1000)),
			int32(rng.Intn(1000)),
			int32(rng.Intn(100)+1),
			int32(rng.Intn(100)+1),
		)
		var got []geometry.Rect[int32]
		tree.Query(q, func(k geometry.Rect[int32]) { got = append(got, k) })
		want := oracle.query(q)
		assert.ElementsMatch(t, want, got, "query %v disagreed with oracle", q)
	}
}

func TestSizeAfterInsertRemoveSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tree := New[int32, geometry.Rect[int32]]()
	oracle := &naiveIndex[int32, geometry.Rect[int32]]{}

	for i := 0; i < 100; i++ {
		k := rect(int32(rng.Intn(500)), int32(rng.Intn(500)), 1, 1)
		if rng.Intn(2) == 0 {
			tree.Insert(k)
			oracle.insert(k)
		} else {
			tree.Remove(k)
			oracle.remove(k)
		}
	}
	assert.Equal(t, len(oracle.items), tree.Size())
}
