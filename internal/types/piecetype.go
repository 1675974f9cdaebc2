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

// PieceType is a set of constants for the six kinds of chess pieces.
// The order matches the move encoding used throughout the engine:
//  Pawn   = 0
//  Knight = 1
//  Bishop = 2
//  Rook   = 3
//  Queen  = 4
//  King   = 5
type PieceType uint8

// PieceType constants
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = PtNone
)

// IsValid checks if pt is one of the six piece kinds
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// IsSlider reports whether the piece type slides along rays (bishop,
// rook or queen) and therefore needs a magic attack lookup.
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeToChar = "pnbrqk-"

// Char returns a single lower case letter representing the piece type,
// used for promotion suffixes in UCI move strings (e.g. "q" for Queen).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var pieceTypeToString = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "PtNone"}

// String returns a human readable name for the piece type
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// PromotionPieceTypeFromChar maps a promotion letter (q, r, b, n -
// case-insensitive) to the corresponding PieceType, or PtNone if c does
// not denote a promotable piece.
func PromotionPieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return PtNone
	}
}
