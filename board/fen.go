package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns a Position. The abbreviated
// 4-field form is accepted; the half-move clock then defaults to 0 and the
// move number to 1.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 4 && len(parts) != 6 {
		return Position{}, fmt.Errorf("invalid FEN: need 4 or 6 fields, got %d", len(parts))
	}

	pos := Position{moveNumber: 1}

	// Piece placement (field 0)
	qbb, err := ParsePlacement(parts[0])
	if err != nil {
		return Position{}, err
	}
	pos.qbb = qbb

	// Side to move (field 1)
	switch parts[1] {
	case "w":
		pos.color = White
	case "b":
		pos.color = Black
	default:
		return Position{}, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	// Castling rights (field 2)
	flags, err := parseCastlingField(parts[2])
	if err != nil {
		return Position{}, err
	}
	pos.flags = flags

	// En passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil || SquareBB(sq)&epFlags == 0 {
			return Position{}, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.flags |= SquareBB(sq)
	}

	// Clocks (fields 4 and 5, optional)
	if len(parts) == 6 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil || hmc < 0 {
			return Position{}, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.halfMoveClock = hmc

		fmn, err := strconv.Atoi(parts[5])
		if err != nil || fmn < 1 {
			return Position{}, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.moveNumber = fmn
	}

	return pos, nil
}

// parseCastlingField parses the castling-rights field into flag bits.
func parseCastlingField(castling string) (Bitboard, error) {
	if castling == "-" {
		return Empty, nil
	}

	var flags Bitboard
	for _, c := range castling {
		switch c {
		case 'K':
			flags |= wksFlags
		case 'Q':
			flags |= wqsFlags
		case 'k':
			flags |= bksFlags
		case 'q':
			flags |= bqsFlags
		default:
			return Empty, fmt.Errorf("invalid castling character: %c", c)
		}
	}
	return flags, nil
}

// FEN returns the FEN representation of the position.
func (p Position) FEN() string {
	var sb strings.Builder

	sb.WriteString(p.qbb.Placement())

	sb.WriteByte(' ')
	if p.color == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingString())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantSquare().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.moveNumber))

	return sb.String()
}

// castlingString returns the castling field in K, Q, k, q order.
func (p Position) castlingString() string {
	s := ""
	if p.flags&wksFlags == wksFlags {
		s += "K"
	}
	if p.flags&wqsFlags == wqsFlags {
		s += "Q"
	}
	if p.flags&bksFlags == bksFlags {
		s += "k"
	}
	if p.flags&bqsFlags == bqsFlags {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
