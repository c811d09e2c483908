package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Castling-rights flag masks. A right is held while both of its squares are
// still flagged; any move touching either square drops the bits and with
// them the right.
const (
	wksFlags = Bitboard(1<<E1 | 1<<H1)
	wqsFlags = Bitboard(1<<A1 | 1<<E1)
	bksFlags = Bitboard(1<<E8 | 1<<H8)
	bqsFlags = Bitboard(1<<A8 | 1<<E8)

	castleFlags = wksFlags | wqsFlags | bksFlags | bqsFlags

	// En-passant target squares live on ranks 3 and 6.
	epFlags = Rank3 | Rank6
)

// Position is an immutable snapshot of a game state: board contents, side to
// move, castling/en-passant flags, and the two clocks. Applying a ply yields
// a new Position; values are never mutated in place.
type Position struct {
	qbb           QuadBitboard
	color         Color
	flags         Bitboard
	halfMoveClock int
	moveNumber    int
}

// Start returns the starting position.
func Start() Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Board returns the position's QuadBitboard.
func (p Position) Board() QuadBitboard {
	return p.qbb
}

// SideToMove returns the color to move.
func (p Position) SideToMove() Color {
	return p.color
}

// HalfMoveClock returns the number of plies since the last capture or pawn
// move.
func (p Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// MoveNumber returns the full move number, starting at 1.
func (p Position) MoveNumber() int {
	return p.moveNumber
}

// EnPassantSquare returns the en-passant target square, or NoSquare.
func (p Position) EnPassantSquare() Square {
	return (p.flags & epFlags).LSB()
}

// Equal reports position identity in the FIDE Article 9.2 sense: board,
// side to move, and castling/en-passant flags. The clocks are not part of
// identity, so repetition counting works on this equality.
func (p Position) Equal(o Position) bool {
	return p.qbb == o.qbb && p.color == o.color && p.flags == o.flags
}

// Hash returns a 64-bit digest of exactly the Article 9.2 identity.
// Positions that are Equal always hash alike.
func (p Position) Hash() uint64 {
	var buf [41]byte
	for k, w := range p.qbb {
		binary.LittleEndian.PutUint64(buf[8*k:], uint64(w))
	}
	binary.LittleEndian.PutUint64(buf[32:], uint64(p.flags))
	buf[40] = byte(p.color)
	return xxhash.Sum64(buf[:])
}

// InCheck returns true if the side to move's king is attacked.
func (p Position) InCheck() bool {
	var king Bitboard
	if p.color == White {
		king = p.qbb.Kings() & p.qbb.White()
	} else {
		king = p.qbb.Kings() & p.qbb.Black()
	}
	if king == 0 {
		return false
	}
	return AttackedBy(p.color.Other(), p.qbb, p.qbb.Occupied(), king.LSB())
}

// InsufficientMaterial returns true if neither side can checkmate.
func (p Position) InsufficientMaterial() bool {
	return p.qbb.InsufficientMaterial()
}

// String returns a visual representation of the position.
func (p Position) String() string {
	s := "\n" + p.qbb.String() + "\n"
	s += fmt.Sprintf("Side to move: %s\n", p.color)
	s += fmt.Sprintf("FEN: %s\n", p.FEN())
	return s
}
