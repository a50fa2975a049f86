package board

import (
	"errors"
	"fmt"
)

// Color is the side that owns a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// Kind is a colorless piece type.
type Kind uint8

const (
	Knight Kind = iota
	King
	Pawn
	Bishop
	Rook
	Queen
)

var kindNames = [...]string{
	Knight: "Knight",
	King:   "King",
	Pawn:   "Pawn",
	Bishop: "Bishop",
	Rook:   "Rook",
	Queen:  "Queen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sliding reports whether the kind moves along rays.
func (k Kind) Sliding() bool { return k == Bishop || k == Rook || k == Queen }

var (
	ErrUnknownColor = errors.New("unknown piece color")
	ErrUnknownKind  = errors.New("unknown piece kind")
)

// ParseColor converts the input words "White" / "Black" to a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "White":
		return White, nil
	case "Black":
		return Black, nil
	default:
		return White, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// ParseKind converts a piece name such as "Knight" to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Coord is a 1-indexed square: X is the file, Y the rank.
type Coord struct {
	X, Y int
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y} }

func (c Coord) String() string { return fmt.Sprintf("%d %d", c.X, c.Y) }

// Piece is a piece standing on a square. Pieces are never moved; only their
// moves are counted.
type Piece struct {
	Kind  Kind
	Color Color
	At    Coord
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Kind, p.Color, p.At)
}
