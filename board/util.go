package board

import "golang.org/x/exp/constraints"

// clamp restricts v to the inclusive range [low, high].
func clamp[T constraints.Integer](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// clampCoord pulls c back onto the board.
func (b *Board) clampCoord(c Coord) Coord {
	return Coord{clamp(c.X, 1, b.size), clamp(c.Y, 1, b.size)}
}
