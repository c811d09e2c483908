package board

// Castling path masks: the squares that must be empty. The squares the king
// crosses (which must not be attacked) are checked in appendCastlingPlies.
// The queenside rook passes over B1/B8, which only needs to be empty.
const (
	wksEmpty = Bitboard(1<<F1 | 1<<G1)
	wqsEmpty = Bitboard(1<<B1 | 1<<C1 | 1<<D1)
	bksEmpty = Bitboard(1<<F8 | 1<<G8)
	bqsEmpty = Bitboard(1<<B8 | 1<<C8 | 1<<D8)
)

// LegalPlies returns every ply legal in the position: pseudo-legal plies
// that do not leave the mover's king attacked. The order is deterministic
// for a given position.
func (p Position) LegalPlies() []Ply {
	buf := make([]Ply, 0, 256)
	buf = p.pseudoLegal(buf)

	us := p.color
	them := us.Other()
	n := 0
	for _, ply := range buf {
		qbb := p.applyToBoard(ply)
		var king Bitboard
		if us == White {
			king = qbb.Kings() & qbb.White()
		} else {
			king = qbb.Kings() & qbb.Black()
		}
		if !AttackedBy(them, qbb, qbb.Occupied(), king.LSB()) {
			buf[n] = ply
			n++
		}
	}
	return buf[:n]
}

// pseudoLegal appends every pseudo-legal ply for the side to move.
func (p Position) pseudoLegal(buf []Ply) []Ply {
	white := p.qbb.White()
	black := p.qbb.Black()
	occupied := white | black
	empty := ^occupied
	ep := p.flags & epFlags

	var us, them Bitboard
	if p.color == White {
		us, them = white, black
	} else {
		us, them = black, white
	}
	notUs := ^us

	// Pawns: single and double pushes, then captures including en passant.
	pawns := p.qbb.Pawns() & us
	if p.color == White {
		push1 := pawns.North() & empty
		push2 := push1.North() & empty & Rank4
		targets := them | ep
		east := pawns.NorthEast() & targets
		west := pawns.NorthWest() & targets

		buf = appendPawnPlies(buf, push1, 8, Rank8)
		buf = appendPawnPlies(buf, push2, 16, Empty)
		buf = appendPawnPlies(buf, east, 9, Rank8)
		buf = appendPawnPlies(buf, west, 7, Rank8)
	} else {
		push1 := pawns.South() & empty
		push2 := push1.South() & empty & Rank5
		targets := them | ep
		east := pawns.SouthEast() & targets
		west := pawns.SouthWest() & targets

		buf = appendPawnPlies(buf, push1, -8, Rank1)
		buf = appendPawnPlies(buf, push2, -16, Empty)
		buf = appendPawnPlies(buf, east, -7, Rank1)
		buf = appendPawnPlies(buf, west, -9, Rank1)
	}

	// Knights
	knights := p.qbb.Knights() & us
	for knights != 0 {
		from := knights.PopLSB()
		buf = appendPlies(buf, from, knightAttacks[from]&notUs)
	}

	// Bishops
	bishops := p.qbb.Bishops() & us
	for bishops != 0 {
		from := bishops.PopLSB()
		buf = appendPlies(buf, from, DiagonalAttacks(from, occupied)&notUs)
	}

	// Rooks
	rooks := p.qbb.Rooks() & us
	for rooks != 0 {
		from := rooks.PopLSB()
		buf = appendPlies(buf, from, OrthogonalAttacks(from, occupied)&notUs)
	}

	// Queens
	queens := p.qbb.Queens() & us
	for queens != 0 {
		from := queens.PopLSB()
		buf = appendPlies(buf, from, QueenAttacks(from, occupied)&notUs)
	}

	// King
	king := p.qbb.Kings() & us
	if king != 0 {
		from := king.LSB()
		buf = appendPlies(buf, from, kingAttacks[from]&notUs)
	}

	return p.appendCastlingPlies(buf, occupied)
}

// appendPawnPlies emits one ply per destination bit, or the four promotion
// plies (queen, rook, bishop, knight) for destinations on the promotion
// rank. delta is the push offset from source to destination.
func appendPawnPlies(buf []Ply, targets Bitboard, delta int, promoRank Bitboard) []Ply {
	for targets != 0 {
		to := targets.PopLSB()
		from := Square(int(to) - delta)
		if SquareBB(to)&promoRank != 0 {
			ply := NewPly(from, to)
			buf = append(buf,
				ply.PromoteTo(Queen),
				ply.PromoteTo(Rook),
				ply.PromoteTo(Bishop),
				ply.PromoteTo(Knight))
		} else {
			buf = append(buf, NewPly(from, to))
		}
	}
	return buf
}

// appendPlies emits one ply per destination bit.
func appendPlies(buf []Ply, from Square, targets Bitboard) []Ply {
	for targets != 0 {
		buf = append(buf, NewPly(from, targets.PopLSB()))
	}
	return buf
}

// appendCastlingPlies emits the castling plies whose right is held, whose
// path is empty, and whose king route is not attacked in the current
// occupancy.
func (p Position) appendCastlingPlies(buf []Ply, occupied Bitboard) []Ply {
	if p.color == White {
		if p.flags&wksFlags == wksFlags && occupied&wksEmpty == 0 &&
			!AttackedBy(Black, p.qbb, occupied, E1) &&
			!AttackedBy(Black, p.qbb, occupied, F1) &&
			!AttackedBy(Black, p.qbb, occupied, G1) {
			buf = append(buf, wksPly)
		}
		if p.flags&wqsFlags == wqsFlags && occupied&wqsEmpty == 0 &&
			!AttackedBy(Black, p.qbb, occupied, E1) &&
			!AttackedBy(Black, p.qbb, occupied, D1) &&
			!AttackedBy(Black, p.qbb, occupied, C1) {
			buf = append(buf, wqsPly)
		}
	} else {
		if p.flags&bksFlags == bksFlags && occupied&bksEmpty == 0 &&
			!AttackedBy(White, p.qbb, occupied, E8) &&
			!AttackedBy(White, p.qbb, occupied, F8) &&
			!AttackedBy(White, p.qbb, occupied, G8) {
			buf = append(buf, bksPly)
		}
		if p.flags&bqsFlags == bqsFlags && occupied&bqsEmpty == 0 &&
			!AttackedBy(White, p.qbb, occupied, E8) &&
			!AttackedBy(White, p.qbb, occupied, D8) &&
			!AttackedBy(White, p.qbb, occupied, C8) {
			buf = append(buf, bqsPly)
		}
	}
	return buf
}

// castlingDelta returns the XOR delta for ply if it is a castling ply whose
// right is still held.
func (p Position) castlingDelta(ply Ply) (QuadBitboard, bool) {
	switch {
	case ply == wksPly && p.flags&wksFlags == wksFlags:
		return WhiteKingsideCastle, true
	case ply == wqsPly && p.flags&wqsFlags == wqsFlags:
		return WhiteQueensideCastle, true
	case ply == bksPly && p.flags&bksFlags == bksFlags:
		return BlackKingsideCastle, true
	case ply == bqsPly && p.flags&bqsFlags == bqsFlags:
		return BlackQueensideCastle, true
	}
	return QuadBitboard{}, false
}

// applyToBoard performs the board-only part of applying a ply: no flag or
// clock bookkeeping. The check filter runs on this.
func (p Position) applyToBoard(ply Ply) QuadBitboard {
	src := ply.Source()
	dst := ply.Target()

	if delta, ok := p.castlingDelta(ply); ok {
		return p.qbb.Xor(delta)
	}
	if pt, ok := ply.Promotion(); ok {
		if p.color == White {
			return p.qbb.WhitePromotion(src, dst, pt)
		}
		return p.qbb.BlackPromotion(src, dst, pt)
	}
	if p.qbb.Pawns()&SquareBB(src) != 0 && SquareBB(dst)&p.flags&epFlags != 0 {
		return p.qbb.EnPassant(src, dst)
	}
	return p.qbb.Move(src, dst)
}
