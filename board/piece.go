package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece is the 4-bit nibble code stored per square in a QuadBitboard.
// 0 means empty; white pieces get even codes starting at 2, black pieces the
// odd code one above, so code>>1 - 1 recovers the PieceType.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 2
	BlackPawn   Piece = 3
	WhiteKnight Piece = 4
	BlackKnight Piece = 5
	WhiteBishop Piece = 6
	BlackBishop Piece = 7
	WhiteRook   Piece = 8
	BlackRook   Piece = 9
	WhiteQueen  Piece = 10
	BlackQueen  Piece = 11
	WhiteKing   Piece = 12
	BlackKing   Piece = 13
)

// NewPiece creates a nibble code from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType {
		return NoPiece
	}
	return Piece(2*(pt+1)) | Piece(c)
}

// Type returns the PieceType encoded in the nibble.
func (p Piece) Type() PieceType {
	if p < WhitePawn || p > BlackKing {
		return NoPieceType
	}
	return PieceType(p>>1 - 1)
}

// Color returns the Color encoded in the nibble.
// Only meaningful for non-empty codes: odd is black, even is white.
func (p Piece) Color() Color {
	return Color(p & 1)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p < WhitePawn || p > BlackKing {
		return " "
	}
	chars := "PpNnBbRrQqKk"
	return string(chars[p-2])
}

// PieceFromChar converts a FEN character to a nibble code.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}
