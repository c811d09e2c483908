package board

import "fmt"

// Ply encodes a half-move in 16 bits:
// bits 0-5:   destination square
// bits 6-11:  source square
// bits 12-14: promotion piece type (0 = none)
// Castling is the king's two-square move; en passant is the pawn move onto
// the target square with no promotion bits.
type Ply uint16

// The four castling plies.
var (
	wksPly = NewPly(E1, G1)
	wqsPly = NewPly(E1, C1)
	bksPly = NewPly(E8, G8)
	bqsPly = NewPly(E8, C8)
)

// NewPly creates a ply with no promotion.
func NewPly(src, dst Square) Ply {
	return Ply(dst) | Ply(src)<<6
}

// Source returns the origin square.
func (p Ply) Source() Square {
	return Square(p >> 6 & 0x3F)
}

// Target returns the destination square.
func (p Ply) Target() Square {
	return Square(p & 0x3F)
}

// Promotion returns the promotion piece type and whether one is set.
func (p Ply) Promotion() (PieceType, bool) {
	pt := PieceType(p >> 12 & 7)
	return pt, pt != 0
}

// PromoteTo returns the ply with its promotion bits set to pt. Pawn and King
// are not valid promotion targets and leave the ply unchanged.
func (p Ply) PromoteTo(pt PieceType) Ply {
	if pt == Pawn || pt >= King {
		return p
	}
	return p&0x0FFF | Ply(pt)<<12
}

// UCI returns the 4- or 5-character coordinate notation for the ply
// (e.g. "e2e4", "e7e8q").
func (p Ply) UCI() string {
	s := p.Source().String() + p.Target().String()
	if pt, ok := p.Promotion(); ok {
		s += string("nbrq"[pt-Knight])
	}
	return s
}

// String returns the UCI form.
func (p Ply) String() string {
	return p.UCI()
}

// ParseUCI parses coordinate notation and validates the ply against the
// position's legal plies. A king "capturing" its own rook on its home
// corner is recovered as the corresponding castling ply.
func (p Position) ParseUCI(s string) (Ply, error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, fmt.Errorf("invalid move string: %s", s)
	}

	src, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, err
	}
	dst, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, err
	}

	ply := NewPly(src, dst)
	if len(s) == 5 {
		var pt PieceType
		switch s[4] {
		case 'n':
			pt = Knight
		case 'b':
			pt = Bishop
		case 'r':
			pt = Rook
		case 'q':
			pt = Queen
		default:
			return 0, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		ply = ply.PromoteTo(pt)
	}

	legal := p.LegalPlies()
	if containsPly(legal, ply) {
		return ply, nil
	}

	// Castling given as king-takes-own-rook (the Lichess encoding).
	if _, promoted := ply.Promotion(); !promoted && p.qbb.Kings()&SquareBB(src) != 0 {
		if alias, ok := castlingAlias(src, dst); ok && containsPly(legal, alias) {
			return alias, nil
		}
	}

	return 0, fmt.Errorf("illegal move: %s", s)
}

// castlingAlias maps a king move onto its home-corner rook square to the
// castling ply for that corner.
func castlingAlias(src, dst Square) (Ply, bool) {
	switch {
	case src == E1 && dst == H1:
		return wksPly, true
	case src == E1 && dst == A1:
		return wqsPly, true
	case src == E8 && dst == H8:
		return bksPly, true
	case src == E8 && dst == A8:
		return bqsPly, true
	}
	return 0, false
}

func containsPly(plies []Ply, ply Ply) bool {
	for _, m := range plies {
		if m == ply {
			return true
		}
	}
	return false
}
