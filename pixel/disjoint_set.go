package pixel

// DisjointSet is a union-find structure over [0, N) PixelIndex values.
type DisjointSet struct {
	parent []Index
}

// NewDisjointSet returns a DisjointSet of size n with every index its own
// singleton root.
func NewDisjointSet(n int) *DisjointSet {
	parent := make([]Index, n)
	for i := range parent {
		parent[i] = Index(i)
	}

	return &DisjointSet{parent: parent}
}

// Find returns the canonical root of i's class, compressing the path from
// i to that root along the way. Implemented iteratively: a first pass walks
// to the root, a second pass repoints every visited node directly at it.
func (ds *DisjointSet) Find(i Index) Index {
	root := i
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for i != root {
		next := ds.parent[i]
		ds.parent[i] = root
		i = next
	}

	return root
}

// Union merges the classes containing a and b. It is unbalanced and
// leftmost-wins: the resulting root is always Find(a), never Find(b). This
// tie-break is an invariant downstream passes rely on (class identity is
// "the smallest pixel index ever chosen as a root via this bias"); do not
// "optimize" it into a balanced union.
func (ds *DisjointSet) Union(a, b Index) {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra != rb {
		ds.parent[rb] = ra
	}
}

// Flatten runs Find over every index and overwrites parent[i] with the
// result, so that parent[i] == i for every canonical root and parent[i] is
// a root for every other index. Passes that key data structures by
// canonical root call Flatten first.
func (ds *DisjointSet) Flatten() {
	for i := range ds.parent {
		ds.parent[i] = ds.Find(Index(i))
	}
}

// Root returns the current parent[i] without path compression or
// recursion — valid for lookups performed strictly after Flatten.
func (ds *DisjointSet) Root(i Index) Index {
	return ds.parent[i]
}

// Len returns the number of indices tracked by the set.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}
