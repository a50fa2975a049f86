package board

// Counts is the number of moves and captures available to one piece.
type Counts struct {
	Moves    int
	Captures int
}

// Offsets and ray directions per piece kind, as (dx, dy).
var (
	knightOffsets = []Coord{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = []Coord{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	diagonalDirs   = []Coord{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	orthogonalDirs = []Coord{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	queenDirs      = append(append([]Coord{}, diagonalDirs...), orthogonalDirs...)
)

// occupant classifies a square relative to a side.
type occupant uint8

const (
	empty occupant = iota
	friend
	enemy
)

func (b *Board) occupantAt(c Coord, side Color) occupant {
	p, ok := b.squares[c]
	switch {
	case !ok:
		return empty
	case p.Color == side:
		return friend
	default:
		return enemy
	}
}

// Count returns the moves and captures of p on b.
func (b *Board) Count(p Piece) Counts {
	from := b.clampCoord(p.At)
	if b.UseBitboards && b.size == 8 && p.Kind.Sliding() {
		return b.slideBitboard(from, p.Color, p.Kind)
	}
	switch p.Kind {
	case Knight:
		return b.leap(from, p.Color, knightOffsets)
	case King:
		return b.leap(from, p.Color, kingOffsets)
	case Pawn:
		return b.pawn(from, p.Color)
	case Bishop:
		return b.slide(from, p.Color, diagonalDirs)
	case Rook:
		return b.slide(from, p.Color, orthogonalDirs)
	case Queen:
		return b.slide(from, p.Color, queenDirs)
	}
	return Counts{}
}

// MovesCount returns the number of destination squares p can reach in one step.
func (b *Board) MovesCount(p Piece) int { return b.Count(p).Moves }

// CapturesCount returns the number of enemy pieces p can take in one step.
func (b *Board) CapturesCount(p Piece) int { return b.Count(p).Captures }

// MovesCount is the package-level form of (*Board).MovesCount.
func MovesCount(p Piece, b *Board) int { return b.MovesCount(p) }

// CapturesCount is the package-level form of (*Board).CapturesCount.
func CapturesCount(p Piece, b *Board) int { return b.CapturesCount(p) }

// leap counts single-step destinations: empty squares are moves, enemy
// squares are moves and captures.
func (b *Board) leap(from Coord, side Color, offsets []Coord) Counts {
	var c Counts
	for _, d := range offsets {
		to := from.Add(d)
		if !b.OnBoard(to) {
			continue
		}
		switch b.occupantAt(to, side) {
		case empty:
			c.Moves++
		case enemy:
			c.Moves++
			c.Captures++
		}
	}
	return c
}

// pawn counts the straight step (empty squares only) and the two diagonal
// captures. White advances towards higher ranks.
func (b *Board) pawn(from Coord, side Color) Counts {
	dy := 1
	if side == Black {
		dy = -1
	}
	var c Counts
	if ahead := from.Add(Coord{0, dy}); b.OnBoard(ahead) && b.occupantAt(ahead, side) == empty {
		c.Moves++
	}
	for _, dx := range [2]int{-1, 1} {
		to := from.Add(Coord{dx, dy})
		if b.OnBoard(to) && b.occupantAt(to, side) == enemy {
			c.Moves++
			c.Captures++
		}
	}
	return c
}

// slide walks each ray outward until it leaves the board or meets a piece.
// The first occupant stops the ray and is counted only if it is an enemy.
func (b *Board) slide(from Coord, side Color, dirs []Coord) Counts {
	var c Counts
	for _, d := range dirs {
		for to := from.Add(d); b.OnBoard(to); to = to.Add(d) {
			occ := b.occupantAt(to, side)
			if occ == empty {
				c.Moves++
				continue
			}
			if occ == enemy {
				c.Moves++
				c.Captures++
			}
			break
		}
	}
	return c
}
