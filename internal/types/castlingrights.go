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

import "strings"

// CastlingRights is a 4-bit mask of which castling moves are still
// available in a position:
//  CastlingWhiteOO  = 1  // 0001
//  CastlingWhiteOOO = 2  // 0010
//  CastlingBlackOO  = 4  // 0100
//  CastlingBlackOOO = 8  // 1000
type CastlingRights uint8

// Constants for castling rights
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8

	CastlingWhite = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack = CastlingBlackOO | CastlingBlackOOO
	CastlingAny   = CastlingWhite | CastlingBlack
)

// Has checks if rhs is set in cr
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears rhs from cr
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets rhs in cr
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// castlingRightsLostBySquare maps a square to the castling rights that
// are permanently lost the moment a king or rook leaves, or a rook is
// captured on, that square.
var castlingRightsLostBySquare = [SqLength]CastlingRights{}

func init() {
	castlingRightsLostBySquare[SqE1] = CastlingWhite
	castlingRightsLostBySquare[SqA1] = CastlingWhiteOOO
	castlingRightsLostBySquare[SqH1] = CastlingWhiteOO
	castlingRightsLostBySquare[SqE8] = CastlingBlack
	castlingRightsLostBySquare[SqA8] = CastlingBlackOOO
	castlingRightsLostBySquare[SqH8] = CastlingBlackOO
}

// CastlingRightsLostBySquare returns the castling rights that are lost
// the moment a piece moves from or is captured on sq.
func CastlingRightsLostBySquare(sq Square) CastlingRights {
	return castlingRightsLostBySquare[sq]
}

// String returns the FEN castling field for cr, e.g. "KQkq" or "-"
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var os strings.Builder
	if cr.Has(CastlingWhiteOO) {
		os.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		os.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		os.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		os.WriteString("q")
	}
	return os.String()
}
