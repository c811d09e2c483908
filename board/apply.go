package board

import "fmt"

// Apply produces the successor position without rechecking legality; the
// caller vouches that ply came from LegalPlies. Use DoPly for validated
// application.
func (p Position) Apply(ply Ply) Position {
	src := ply.Source()
	dst := ply.Target()
	srcBB := SquareBB(src)
	dstBB := SquareBB(dst)

	isPawn := p.qbb.Pawns()&srcBB != 0
	isCapture := p.qbb.Occupied()&dstBB != 0

	next := p
	switch {
	case p.isCastlingPly(ply):
		delta, _ := p.castlingDelta(ply)
		next.qbb = p.qbb.Xor(delta)
		// Castling spends both rights of the mover's back rank.
		next.flags &^= epFlags | RankMask[src.Rank()]

	case p.isPromotionPly(ply):
		pt, _ := ply.Promotion()
		if p.color == White {
			next.qbb = p.qbb.WhitePromotion(src, dst, pt)
		} else {
			next.qbb = p.qbb.BlackPromotion(src, dst, pt)
		}
		// A promotion capturing a corner rook kills that right.
		next.flags &^= epFlags | dstBB

	case isPawn && dstBB&p.flags&epFlags != 0:
		next.qbb = p.qbb.EnPassant(src, dst)
		next.flags &^= epFlags
		isCapture = true

	default:
		next.qbb = p.qbb.Move(src, dst)
		next.flags &^= epFlags | srcBB | dstBB
		if isPawn {
			if diff := int(dst) - int(src); diff == 16 || diff == -16 {
				next.flags |= SquareBB(Square(int(src) + diff/2))
			}
		}
	}

	next.color = p.color.Other()
	if isCapture || isPawn {
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock = p.halfMoveClock + 1
	}
	if p.color == Black {
		next.moveNumber = p.moveNumber + 1
	}
	return next
}

// DoPly validates ply against the position's legal plies and applies it.
func (p Position) DoPly(ply Ply) (Position, error) {
	if !containsPly(p.LegalPlies(), ply) {
		return Position{}, fmt.Errorf("illegal ply %s in %s", ply, p.FEN())
	}
	return p.Apply(ply), nil
}

func (p Position) isCastlingPly(ply Ply) bool {
	_, ok := p.castlingDelta(ply)
	return ok
}

// isPromotionPly checks the promotion bits and rejects the encodable but
// invalid pawn/king targets.
func (p Position) isPromotionPly(ply Ply) bool {
	pt, ok := ply.Promotion()
	if !ok {
		return false
	}
	if pt >= King {
		panic(fmt.Sprintf("invalid promotion piece %s in ply %04x", pt, uint16(ply)))
	}
	return true
}
