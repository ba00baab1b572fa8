package model

import "testing"

func TestEdgesRotatedModulo(t *testing.T) {
	tile := NewTile(1, 1, 2, 3, 4)
	for r := -9; r <= 9; r++ {
		got := tile.EdgesRotated(r)
		want := tile.EdgesRotated(((r % 4) + 4) % 4)
		if got != want {
			t.Errorf("EdgesRotated(%d) = %v, want %v (modulo form)", r, got, want)
		}
	}
}

func TestEdgesRotatedValues(t *testing.T) {
	tile := NewTile(1, 1, 2, 3, 4) // N=1 E=2 S=3 W=4
	cases := []struct {
		r    int
		want [4]Color
	}{
		{0, [4]Color{1, 2, 3, 4}},
		{1, [4]Color{4, 1, 2, 3}},
		{2, [4]Color{3, 4, 1, 2}},
		{3, [4]Color{2, 3, 4, 1}},
	}
	for _, c := range cases {
		got := tile.EdgesRotated(c.r)
		if got != c.want {
			t.Errorf("EdgesRotated(%d) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestUniqueRotationCount(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		want int
	}{
		{"all same", NewTile(1, 5, 5, 5, 5), 1},
		{"diametric pairs", NewTile(2, 5, 9, 5, 9), 2},
		{"no symmetry", NewTile(3, 1, 2, 3, 4), 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.tile.UniqueRotationCount(); got != c.want {
				t.Errorf("UniqueRotationCount() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestDistinctRotationsLength(t *testing.T) {
	tile := NewTile(1, 5, 9, 5, 9)
	distinct := tile.DistinctRotations()
	if len(distinct) != tile.UniqueRotationCount() {
		t.Errorf("DistinctRotations length %d != UniqueRotationCount %d", len(distinct), tile.UniqueRotationCount())
	}
}
