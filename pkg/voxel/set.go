package voxel

import (
	"slices"
)

// Set is an immutable snapshot of alive coordinates. The zero value is an
// empty set. Operations that derive a new generation return a fresh Set and
// never modify their inputs.
type Set struct {
	cells map[Coord]struct{}
}

// NewSet builds a Set from coords. Duplicates collapse.
func NewSet(coords ...Coord) Set {
	cells := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		cells[c] = struct{}{}
	}
	return Set{cells: cells}
}

// Contains reports whether c is alive in s.
func (s Set) Contains(c Coord) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of alive cells.
func (s Set) Len() int { return len(s.cells) }

// Empty reports whether s holds no cells.
func (s Set) Empty() bool { return len(s.cells) == 0 }

// Each calls fn for every coordinate in s in unspecified order. Iteration
// stops early when fn returns false.
func (s Set) Each(fn func(Coord) bool) {
	for c := range s.cells {
		if !fn(c) {
			return
		}
	}
}

// Coords returns the members of s sorted by Z, then Y, then X.
func (s Set) Coords() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCoord)
	return out
}

// Keys returns the canonical keys of s in the order of Coords.
func (s Set) Keys() []Key {
	coords := s.Coords()
	keys := make([]Key, len(coords))
	for i, c := range coords {
		keys[i] = Encode(c)
	}
	return keys
}

// Equal reports whether s and o hold exactly the same coordinates.
func (s Set) Equal(o Set) bool {
	if len(s.cells) != len(o.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// With returns a copy of s that also contains coords.
func (s Set) With(coords ...Coord) Set {
	cells := make(map[Coord]struct{}, len(s.cells)+len(coords))
	for c := range s.cells {
		cells[c] = struct{}{}
	}
	for _, c := range coords {
		cells[c] = struct{}{}
	}
	return Set{cells: cells}
}

func compareCoord(a, b Coord) int {
	switch {
	case a.Z != b.Z:
		return cmpInt(a.Z, b.Z)
	case a.Y != b.Y:
		return cmpInt(a.Y, b.Y)
	default:
		return cmpInt(a.X, b.X)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
