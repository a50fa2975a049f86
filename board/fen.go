package board

import (
	"errors"
	"fmt"
	"strings"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/notnil/chess"
)

// FENStartPos is the standard initial chess position.
const FENStartPos = gm.FENStartPos

var kindFromFEN = map[gm.PieceType]Kind{
	gm.PieceTypeKing:   King,
	gm.PieceTypeQueen:  Queen,
	gm.PieceTypeRook:   Rook,
	gm.PieceTypeBishop: Bishop,
	gm.PieceTypeKnight: Knight,
	gm.PieceTypePawn:   Pawn,
}

// FromFEN builds an 8x8 board from a FEN string. A bare placement field is
// accepted; the remaining fields are irrelevant to counting. Pieces are
// returned ordered by rank, then file.
func FromFEN(fen string) (*Board, []Piece, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, nil, errors.New("empty FEN")
	}
	if len(fields) == 1 {
		fields = append(fields, "w", "-", "-", "0", "1")
	}
	pos, err := gm.ParseFEN(strings.Join(fields, " "))
	if err != nil {
		return nil, nil, fmt.Errorf("parse FEN %q: %w", fen, err)
	}

	b := New(8)
	for sq := 0; sq < 64; sq++ {
		pc := pos.PieceAt(gm.Square(sq))
		kind, ok := kindFromFEN[pc.Type()]
		if !ok {
			continue
		}
		color := White
		if pc.Color() == gm.Black {
			color = Black
		}
		p := Piece{Kind: kind, Color: color, At: Coord{X: sq%8 + 1, Y: sq/8 + 1}}
		if err := b.Add(p); err != nil {
			return nil, nil, err
		}
	}
	return b, b.Pieces(), nil
}

var fenPieces = [2][6]chess.Piece{
	White: {
		Knight: chess.WhiteKnight, King: chess.WhiteKing, Pawn: chess.WhitePawn,
		Bishop: chess.WhiteBishop, Rook: chess.WhiteRook, Queen: chess.WhiteQueen,
	},
	Black: {
		Knight: chess.BlackKnight, King: chess.BlackKing, Pawn: chess.BlackPawn,
		Bishop: chess.BlackBishop, Rook: chess.BlackRook, Queen: chess.BlackQueen,
	},
}

// ErrNotEightByEight is returned when a board has no FEN form.
var ErrNotEightByEight = errors.New("FEN needs an 8x8 board")

// FEN returns the placement field of an 8x8 board.
func (b *Board) FEN() (string, error) {
	if b.size != 8 {
		return "", fmt.Errorf("%w: board is %dx%d", ErrNotEightByEight, b.size, b.size)
	}
	m := make(map[chess.Square]chess.Piece, len(b.squares))
	for c, p := range b.squares {
		m[chess.Square(squareIndex(c))] = fenPieces[p.Color][p.Kind]
	}
	return chess.NewBoard(m).String(), nil
}
