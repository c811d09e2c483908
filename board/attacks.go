package board

// Ray directions, grouped so that the first four run toward higher square
// indices (blocker found by LSB) and the last four toward lower ones
// (blocker found by MSB).
const (
	dirNorth = iota
	dirNorthEast
	dirEast
	dirNorthWest
	dirSouth
	dirSouthWest
	dirWest
	dirSouthEast
)

// Pre-computed attack tables for non-sliding pieces, plus full-ray masks
// for the classical sliding-attack scan.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]

	rayAttacks [8][64]Bitboard // [direction][Square], excluding the square itself
)

func init() {
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
	initRayAttacks()
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		knightAttacks[sq] = bb.NNE() | bb.NNW() | bb.SSE() | bb.SSW() |
			bb.ENE() | bb.ESE() | bb.WNW() | bb.WSW()
	}
}

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		attacks := bb.North() | bb.South()
		attacks |= bb.East() | bb.West()
		attacks |= bb.NorthEast() | bb.NorthWest()
		attacks |= bb.SouthEast() | bb.SouthWest()
		kingAttacks[sq] = attacks
	}
}

func initPawnAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// White pawn attacks (diagonal captures going up)
		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()

		// Black pawn attacks (diagonal captures going down)
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

func initRayAttacks() {
	steps := [8]func(Bitboard) Bitboard{
		dirNorth:     Bitboard.North,
		dirNorthEast: Bitboard.NorthEast,
		dirEast:      Bitboard.East,
		dirNorthWest: Bitboard.NorthWest,
		dirSouth:     Bitboard.South,
		dirSouthWest: Bitboard.SouthWest,
		dirWest:      Bitboard.West,
		dirSouthEast: Bitboard.SouthEast,
	}

	for dir, step := range steps {
		for sq := A1; sq <= H8; sq++ {
			ray := Empty
			bb := step(SquareBB(sq))
			for bb != 0 {
				ray |= bb
				bb = step(bb)
			}
			rayAttacks[dir][sq] = ray
		}
	}
}

// positiveRay scans a ray running toward higher square indices: the first
// blocker is the lowest set bit, and everything beyond it is masked off.
// The blocker square itself stays in the attack set.
func positiveRay(dir int, sq Square, occupied Bitboard) Bitboard {
	attacks := rayAttacks[dir][sq]
	blockers := attacks & occupied
	if blockers != 0 {
		attacks ^= rayAttacks[dir][blockers.LSB()]
	}
	return attacks
}

// negativeRay is the mirror scan toward lower square indices, using the
// highest set bit as the blocker.
func negativeRay(dir int, sq Square, occupied Bitboard) Bitboard {
	attacks := rayAttacks[dir][sq]
	blockers := attacks & occupied
	if blockers != 0 {
		attacks ^= rayAttacks[dir][blockers.MSB()]
	}
	return attacks
}

// OrthogonalAttacks returns the squares a rook on sq attacks with the given
// occupancy, including the first blocker on each ray.
func OrthogonalAttacks(sq Square, occupied Bitboard) Bitboard {
	return positiveRay(dirNorth, sq, occupied) |
		positiveRay(dirEast, sq, occupied) |
		negativeRay(dirSouth, sq, occupied) |
		negativeRay(dirWest, sq, occupied)
}

// DiagonalAttacks returns the squares a bishop on sq attacks with the given
// occupancy, including the first blocker on each ray.
func DiagonalAttacks(sq Square, occupied Bitboard) Bitboard {
	return positiveRay(dirNorthEast, sq, occupied) |
		positiveRay(dirNorthWest, sq, occupied) |
		negativeRay(dirSouthEast, sq, occupied) |
		negativeRay(dirSouthWest, sq, occupied)
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the pawn capture-target bitboard for a square and color.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return DiagonalAttacks(sq, occupied) | OrthogonalAttacks(sq, occupied)
}

// AttackedBy returns true if any piece of color c in q attacks sq under the
// given occupancy. It unions pawn, knight, slider, and king attack sets from
// sq and intersects them with the attacker's pieces.
func AttackedBy(c Color, q QuadBitboard, occupied Bitboard, sq Square) bool {
	var attackers Bitboard
	if c == White {
		attackers = q.White()
	} else {
		attackers = q.Black()
	}

	if pawnAttacks[c.Other()][sq]&q.Pawns()&attackers != 0 {
		return true
	}
	if knightAttacks[sq]&q.Knights()&attackers != 0 {
		return true
	}
	if DiagonalAttacks(sq, occupied)&q.Diagonals()&attackers != 0 {
		return true
	}
	if OrthogonalAttacks(sq, occupied)&q.Orthogonals()&attackers != 0 {
		return true
	}
	return kingAttacks[sq]&q.Kings()&attackers != 0
}
