package board

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// squareIndex maps an 8x8 coordinate to the 0..63 layout used by
// dragontoothmg (a1 = 0, h1 = 7, a8 = 56).
func squareIndex(c Coord) uint8 {
	return uint8((c.Y-1)*8 + (c.X - 1))
}

// Occupancy returns one bitboard per color. It is only meaningful for 8x8
// boards; pieces beyond the eighth file or rank are ignored.
func (b *Board) Occupancy() [2]uint64 {
	var occ [2]uint64
	for c, p := range b.squares {
		if c.X < 1 || c.X > 8 || c.Y < 1 || c.Y > 8 {
			continue
		}
		occ[p.Color] |= 1 << squareIndex(c)
	}
	return occ
}

// slideBitboard counts slider moves from magic attack sets. An attack set
// already stops at (and includes) the first blocker on each ray, so masking
// off friendly squares gives the moves and masking on enemy squares gives the
// captures.
func (b *Board) slideBitboard(from Coord, side Color, kind Kind) Counts {
	occ := b.Occupancy()
	all := occ[White] | occ[Black]
	sq := squareIndex(from)

	var attacks uint64
	switch kind {
	case Bishop:
		attacks = dragontoothmg.CalculateBishopMoveBitboard(sq, all)
	case Rook:
		attacks = dragontoothmg.CalculateRookMoveBitboard(sq, all)
	case Queen:
		attacks = dragontoothmg.CalculateBishopMoveBitboard(sq, all) |
			dragontoothmg.CalculateRookMoveBitboard(sq, all)
	}
	return Counts{
		Moves:    bits.OnesCount64(attacks &^ occ[side]),
		Captures: bits.OnesCount64(attacks & occ[side.Opponent()]),
	}
}
