package collections

type Set[V comparable] map[V]struct{}

// NewSet creates a set holding the given values
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

func (set Set[V]) Len() int {
	return len(set)
}

// Slice returns the elements of the set, in no particular order
func (set Set[V]) Slice() []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	return values
}

// Difference returns a new Set containing all elements from the calling set
// not present in the other set
func (set Set[V]) Difference(other Set[V]) Set[V] {
	difference := make(Set[V])
	for value := range set {
		if !other.Contains(value) {
			difference.Add(value)
		}
	}
	return difference
}

// IntersectionEx returns a new Set containing all elements present in both sets,
// and a boolean indicating whether the calling set is a non-strict subset of
// the other
func (set Set[V]) IntersectionEx(other Set[V]) (Set[V], bool) {
	isSubset := true
	intersection := make(Set[V])
	for value := range set {
		if other.Contains(value) {
			intersection.Add(value)
		} else {
			isSubset = false
		}
	}
	return intersection, isSubset
}

// Intersection returns a new Set containing all elements present in both sets
func (set Set[V]) Intersection(other Set[V]) Set[V] {
	intersection, _ := set.IntersectionEx(other)
	return intersection
}

// Equal reports whether both sets hold exactly the same elements
func (set Set[V]) Equal(other Set[V]) bool {
	if len(set) != len(other) {
		return false
	}
	_, isSubset := set.IntersectionEx(other)
	return isSubset
}
