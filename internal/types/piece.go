//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

// Piece combines a Color and a PieceType into a single board-square
// value. The color occupies bit 3, the piece type the low three bits:
//  Piece == (Color << 3) | PieceType
// so e.g. WhitePawn == 0b0000, BlackPawn == 0b1000, PieceNone == 0b0110.
type Piece int8

// Piece constants
const (
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) + 8
	BlackKnight Piece = Piece(Knight) + 8
	BlackBishop Piece = Piece(Bishop) + 8
	BlackRook   Piece = Piece(Rook) + 8
	BlackQueen  Piece = Piece(Queen) + 8
	BlackKing   Piece = Piece(King) + 8

	PieceNone Piece = Piece(PtNone)
)

// MakePiece combines a color and piece type into a Piece
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

// ColorOf returns the color of the piece
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the piece
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid reports whether p denotes an actual piece (not PieceNone)
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

var pieceToChar = map[Piece]string{
	WhitePawn: "P", WhiteKnight: "N", WhiteBishop: "B", WhiteRook: "R", WhiteQueen: "Q", WhiteKing: "K",
	BlackPawn: "p", BlackKnight: "n", BlackBishop: "b", BlackRook: "r", BlackQueen: "q", BlackKing: "k",
}

// PieceFromChar returns the Piece denoted by a single FEN piece letter,
// or PieceNone if s is not a recognized letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for p, c := range pieceToChar {
		if c == s {
			return p
		}
	}
	return PieceNone
}

// String returns the FEN letter for the piece ("P".."K", "p".."k"),
// or "-" for PieceNone.
func (p Piece) String() string {
	if c, ok := pieceToChar[p]; ok {
		return c
	}
	return "-"
}
