package voxel

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord addresses a single voxel. Coordinates are unbounded; whether a value
// lies inside a grid depends on the grid size it is checked against.
type Coord struct {
	X, Y, Z int
}

// Key is the canonical textual form of a Coord ("x,y,z").
type Key string

// Encode returns the canonical key for c.
func Encode(c Coord) Key {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, int64(c.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Y), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Z), 10)
	return Key(buf)
}

// Decode is the inverse of Encode. It panics on a key Encode could not have
// produced; use ParseKey for untrusted input.
func Decode(k Key) Coord {
	c, err := ParseKey(string(k))
	if err != nil {
		panic(err)
	}
	return c
}

// ParseKey parses an "x,y,z" string. Surrounding whitespace on each component
// is ignored.
func ParseKey(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Coord{}, fmt.Errorf("voxel: malformed key %q: want 3 components, got %d", s, len(parts))
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Coord{}, fmt.Errorf("voxel: malformed key %q: %w", s, err)
		}
		vals[i] = v
	}
	return Coord{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// String implements fmt.Stringer using the canonical key.
func (c Coord) String() string { return string(Encode(c)) }

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

// InBounds reports whether every axis of c lies in [0, n).
func (c Coord) InBounds(n int) bool {
	return c.X >= 0 && c.X < n &&
		c.Y >= 0 && c.Y < n &&
		c.Z >= 0 && c.Z < n
}
