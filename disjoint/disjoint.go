// Package disjoint provides a fixed-size disjoint-set (union-find) over the
// integer vertex ids [0, n).
//
// Every vertex starts as its own singleton component at construction time, so
// Find never has to allocate or initialise anything lazily. Find uses path
// halving and Union attaches the smaller tree under the larger one, giving
// near-constant amortised cost per operation (inverse Ackermann).
//
// A Set is not safe for concurrent mutation; engines create one per call.
package disjoint

// Set tracks connected-component membership for vertices 0..n-1.
type Set struct {
	parent []int // parent[v] == v for roots
	size   []int // size[r] is meaningful only for roots
	count  int   // number of components
}

// New returns a Set of n singleton components. A negative n yields an empty Set.
// Complexity: O(n) time and memory.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}
	s := &Set{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for v := 0; v < n; v++ {
		s.parent[v] = v
		s.size[v] = 1
	}

	return s
}

// Len returns the number of vertices the Set was built for.
func (s *Set) Len() int { return len(s.parent) }

// Count returns the current number of components.
func (s *Set) Count() int { return s.count }

// Find returns the representative of v's component.
// v must lie in [0, Len()); other values panic like a slice index.
// Complexity: amortised O(α(n)).
func (s *Set) Find(v int) int {
	for s.parent[v] != v {
		// path halving: point v at its grandparent and step there
		s.parent[v] = s.parent[s.parent[v]]
		v = s.parent[v]
	}

	return v
}

// Union merges the components containing u and v.
// It reports false when they were already in the same component (no-op).
// Complexity: amortised O(α(n)).
func (s *Set) Union(u, v int) bool {
	ru, rv := s.Find(u), s.Find(v)
	if ru == rv {
		return false
	}
	if s.size[ru] < s.size[rv] {
		ru, rv = rv, ru
	}
	s.parent[rv] = ru
	s.size[ru] += s.size[rv]
	s.count--

	return true
}

// Connected reports whether u and v share a component.
func (s *Set) Connected(u, v int) bool {
	return s.Find(u) == s.Find(v)
}

// Groups returns the members of every component. Members are ascending and
// groups are ordered by their smallest member, so the output is deterministic.
// Complexity: O(n α(n)).
func (s *Set) Groups() [][]int {
	byRoot := make(map[int]int, s.count) // root -> index in groups
	groups := make([][]int, 0, s.count)
	for v := range s.parent {
		r := s.Find(v)
		idx, ok := byRoot[r]
		if !ok {
			idx = len(groups)
			byRoot[r] = idx
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], v)
	}
	// ascending v: groups are born in order of their smallest member
	return groups
}
