package board

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct{ v, want int }{{-3, 1}, {0, 1}, {1, 1}, {4, 4}, {8, 8}, {9, 8}}
	for _, tc := range tests {
		if got := clamp(tc.v, 1, 8); got != tc.want {
			t.Errorf("clamp(%d, 1, 8) = %d, want %d", tc.v, got, tc.want)
		}
	}
	if got := clamp[uint8](200, 1, 64); got != 64 {
		t.Errorf("clamp[uint8](200) = %d, want 64", got)
	}
}

func TestClampCoord(t *testing.T) {
	b := New(8)
	if got := b.clampCoord(Coord{0, 12}); got != (Coord{1, 8}) {
		t.Fatalf("clampCoord = %v, want {1 8}", got)
	}
}
