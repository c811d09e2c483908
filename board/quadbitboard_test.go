package board

import "testing"

func TestStartingPlacement(t *testing.T) {
	q, err := ParsePlacement("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		t.Fatalf("ParsePlacement failed: %v", err)
	}

	if got := q.Pawns(); got != Rank2|Rank7 {
		t.Errorf("Pawns = %x, want %x", uint64(got), uint64(Rank2|Rank7))
	}
	if got := q.White(); got != Rank1|Rank2 {
		t.Errorf("White = %x, want %x", uint64(got), uint64(Rank1|Rank2))
	}
	if got := q.Black(); got != Rank7|Rank8 {
		t.Errorf("Black = %x, want %x", uint64(got), uint64(Rank7|Rank8))
	}
	if got := q.Occupied(); got != Rank1|Rank2|Rank7|Rank8 {
		t.Errorf("Occupied = %x", uint64(got))
	}

	knights := SquareBB(B1) | SquareBB(G1) | SquareBB(B8) | SquareBB(G8)
	if got := q.Knights(); got != knights {
		t.Errorf("Knights = %x, want %x", uint64(got), uint64(knights))
	}
	queens := SquareBB(D1) | SquareBB(D8)
	if got := q.Queens(); got != queens {
		t.Errorf("Queens = %x, want %x", uint64(got), uint64(queens))
	}
	if got := q.Diagonals(); got != q.Bishops()|q.Queens() {
		t.Errorf("Diagonals = %x, want bishops|queens", uint64(got))
	}
	if got := q.Orthogonals(); got != q.Rooks()|q.Queens() {
		t.Errorf("Orthogonals = %x, want rooks|queens", uint64(got))
	}

	squares := []struct {
		sq   Square
		want Piece
	}{
		{E1, WhiteKing},
		{D1, WhiteQueen},
		{A1, WhiteRook},
		{C1, WhiteBishop},
		{G1, WhiteKnight},
		{E2, WhitePawn},
		{E8, BlackKing},
		{D8, BlackQueen},
		{H8, BlackRook},
		{F8, BlackBishop},
		{B8, BlackKnight},
		{E7, BlackPawn},
		{E4, NoPiece},
	}
	for _, tc := range squares {
		if got := q.At(tc.sq); got != tc.want {
			t.Errorf("At(%s) = %d, want %d", tc.sq, got, tc.want)
		}
	}
}

func TestPlacementRoundTrip(t *testing.T) {
	placements := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8",
		"8/8/8/8/8/8/8/8",
		"k7/8/8/8/8/8/8/7K",
	}
	for _, placement := range placements {
		q, err := ParsePlacement(placement)
		if err != nil {
			t.Fatalf("ParsePlacement(%q) failed: %v", placement, err)
		}
		if got := q.Placement(); got != placement {
			t.Errorf("Placement() = %q, want %q", got, placement)
		}
	}
}

func TestParsePlacementErrors(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/8/8",
		"9/8/8/8/8/8/8/8",
		"x7/8/8/8/8/8/8/8",
		"ppppppppp/8/8/8/8/8/8/8",
	}
	for _, placement := range bad {
		if _, err := ParsePlacement(placement); err == nil {
			t.Errorf("ParsePlacement(%q) should fail", placement)
		}
	}
}

func TestQuadBitboardMove(t *testing.T) {
	q, _ := ParsePlacement("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")

	moved := q.Move(E2, E4)
	if got := moved.At(E2); got != NoPiece {
		t.Errorf("At(e2) after move = %d, want empty", got)
	}
	if got := moved.At(E4); got != WhitePawn {
		t.Errorf("At(e4) after move = %d, want white pawn", got)
	}
	if q.At(E2) != WhitePawn {
		t.Error("Move mutated its receiver")
	}

	// A capture replaces the destination nibble.
	capture := moved.Move(E4, E7)
	if got := capture.At(E7); got != WhitePawn {
		t.Errorf("At(e7) after capture = %d, want white pawn", got)
	}
}

func TestCastleDeltaInvolution(t *testing.T) {
	q, _ := ParsePlacement("r3k2r/8/8/8/8/8/8/R3K2R")

	deltas := []QuadBitboard{
		WhiteKingsideCastle,
		WhiteQueensideCastle,
		BlackKingsideCastle,
		BlackQueensideCastle,
	}
	for _, delta := range deltas {
		if got := q.Xor(delta).Xor(delta); got != q {
			t.Errorf("castle delta applied twice changed the board")
		}
	}

	after := q.Xor(WhiteKingsideCastle)
	if got := after.At(G1); got != WhiteKing {
		t.Errorf("At(g1) after O-O = %d, want white king", got)
	}
	if got := after.At(F1); got != WhiteRook {
		t.Errorf("At(f1) after O-O = %d, want white rook", got)
	}
	if after.At(E1) != NoPiece || after.At(H1) != NoPiece {
		t.Error("e1/h1 not cleared after O-O")
	}
}

func TestEnPassantUpdate(t *testing.T) {
	q, _ := ParsePlacement("k7/8/8/3pP3/8/8/8/7K")

	after := q.EnPassant(E5, D6)
	if got := after.At(D6); got != WhitePawn {
		t.Errorf("At(d6) = %d, want white pawn", got)
	}
	if after.At(E5) != NoPiece {
		t.Error("e5 not cleared")
	}
	if after.At(D5) != NoPiece {
		t.Error("captured pawn on d5 not removed")
	}
}

func TestPromotionUpdate(t *testing.T) {
	q, _ := ParsePlacement("1n5k/P7/8/8/8/8/8/7K")

	push := q.WhitePromotion(A7, A8, Queen)
	if got := push.At(A8); got != WhiteQueen {
		t.Errorf("At(a8) = %d, want white queen", got)
	}
	if push.At(A7) != NoPiece {
		t.Error("a7 not cleared")
	}

	capture := q.WhitePromotion(A7, B8, Knight)
	if got := capture.At(B8); got != WhiteKnight {
		t.Errorf("At(b8) = %d, want white knight", got)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	tests := []struct {
		placement string
		want      bool
	}{
		{"k7/8/8/8/8/8/8/7K", true},           // K vs K
		{"k7/8/8/8/8/8/8/6NK", true},          // K+N vs K
		{"k7/8/8/8/8/8/8/6BK", true},          // K+B vs K
		{"k6b/8/8/8/8/8/8/2B4K", true},        // same-colored bishops
		{"k6b/8/8/8/8/8/8/1B5K", false},       // opposite-colored bishops
		{"k7/8/8/8/8/8/8/5NNK", false},        // two knights are not covered
		{"k7/p7/8/8/8/8/8/7K", false},         // pawn
		{"k7/8/8/8/8/8/8/6RK", false},         // rook
		{"k7/8/8/8/8/8/8/6QK", false},         // queen
		{"kb6/8/8/8/8/8/8/6NK", false},        // minor each, knight present
	}
	for _, tc := range tests {
		q, err := ParsePlacement(tc.placement)
		if err != nil {
			t.Fatalf("ParsePlacement(%q) failed: %v", tc.placement, err)
		}
		if got := q.InsufficientMaterial(); got != tc.want {
			t.Errorf("InsufficientMaterial(%q) = %v, want %v", tc.placement, got, tc.want)
		}
	}
}
