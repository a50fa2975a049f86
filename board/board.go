// Package board holds a sparse N x N chess board and counts, for any piece on
// it, the moves and captures available from its square. Only board edges and
// occupancy are considered: there is no side to move, no check and no history.
package board

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Board size limits accepted by the input format.
const (
	MinSize = 3
	MaxSize = 1000
)

var (
	ErrOffBoard = errors.New("square is off the board")
	ErrOccupied = errors.New("square is already occupied")
)

// Board is a sparse mapping from squares to pieces. It is filled once with Add
// and then only read, so a populated board may be shared between goroutines.
type Board struct {
	size    int
	squares map[Coord]Piece

	// UseBitboards routes rook, bishop and queen counts through magic
	// bitboard attack sets. Only honoured on 8x8 boards.
	UseBitboards bool
}

// New returns an empty size x size board.
func New(size int) *Board {
	return &Board{size: size, squares: make(map[Coord]Piece)}
}

// Size returns the number of files (and ranks) of the board.
func (b *Board) Size() int { return b.size }

// Len returns the number of pieces on the board.
func (b *Board) Len() int { return len(b.squares) }

// OnBoard reports whether c lies within [1, size] on both axes.
func (b *Board) OnBoard(c Coord) bool {
	return c.X >= 1 && c.X <= b.size && c.Y >= 1 && c.Y <= b.size
}

// Add places p on its square. A square holds at most one piece.
func (b *Board) Add(p Piece) error {
	if !b.OnBoard(p.At) {
		return fmt.Errorf("%w: %s on %dx%d", ErrOffBoard, p.At, b.size, b.size)
	}
	if _, ok := b.squares[p.At]; ok {
		return fmt.Errorf("%w: %s", ErrOccupied, p.At)
	}
	b.squares[p.At] = p
	return nil
}

// PieceAt returns the piece on c, if any.
func (b *Board) PieceAt(c Coord) (Piece, bool) {
	p, ok := b.squares[c]
	return p, ok
}

// Pieces returns every piece ordered by rank, then file.
func (b *Board) Pieces() []Piece {
	keys := maps.Keys(b.squares)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	out := make([]Piece, 0, len(keys))
	for _, c := range keys {
		out = append(out, b.squares[c])
	}
	return out
}

// Kings returns how many kings each side has on the board.
func (b *Board) Kings() (white, black int) {
	for _, p := range b.squares {
		if p.Kind != King {
			continue
		}
		if p.Color == White {
			white++
		} else {
			black++
		}
	}
	return white, black
}
