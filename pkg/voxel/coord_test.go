package voxel

import (
	"math"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for x := -12; x <= 12; x += 3 {
		for y := -12; y <= 12; y += 4 {
			for z := -12; z <= 12; z += 5 {
				c := Coord{X: x, Y: y, Z: z}
				if got := Decode(Encode(c)); got != c {
					t.Fatalf("Decode(Encode(%v)) = %v", c, got)
				}
			}
		}
	}

	extremes := []Coord{
		{X: math.MaxInt, Y: math.MinInt, Z: 0},
		{X: -1, Y: -1, Z: -1},
		{X: 0, Y: 0, Z: 0},
	}
	for _, c := range extremes {
		if got := Decode(Encode(c)); got != c {
			t.Fatalf("Decode(Encode(%v)) = %v", c, got)
		}
	}
}

func TestEncodeIsCanonical(t *testing.T) {
	if got := Encode(Coord{X: 3, Y: -4, Z: 10}); got != "3,-4,10" {
		t.Fatalf("unexpected key %q", got)
	}
	if Encode(Coord{X: 1, Y: 23, Z: 4}) == Encode(Coord{X: 12, Y: 3, Z: 4}) {
		t.Fatal("distinct coordinates must not share a key")
	}
}

func TestParseKey(t *testing.T) {
	c, err := ParseKey(" 1, 2 ,-3")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if c != (Coord{X: 1, Y: 2, Z: -3}) {
		t.Fatalf("unexpected coord %v", c)
	}

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c", "1,,3"} {
		if _, err := ParseKey(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDecodePanicsOnMalformedKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for malformed key")
		}
	}()
	Decode("nope")
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		c    Coord
		n    int
		want bool
	}{
		{Coord{0, 0, 0}, 1, true},
		{Coord{9, 9, 9}, 10, true},
		{Coord{10, 0, 0}, 10, false},
		{Coord{0, -1, 0}, 10, false},
		{Coord{0, 0, 0}, 0, false},
		{Coord{0, 0, 0}, -3, false},
	}
	for _, tc := range cases {
		if got := tc.c.InBounds(tc.n); got != tc.want {
			t.Fatalf("%v.InBounds(%d) = %v, want %v", tc.c, tc.n, got, tc.want)
		}
	}
}
