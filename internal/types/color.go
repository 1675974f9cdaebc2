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

import "fmt"

// Color represents the two sides in a chess game, plus a third index
// used only to address the combined (white|black) occupancy bitboard.
type Color uint8

// Color constants
const (
	White Color = 0
	Black Color = 1
	All   Color = 2

	ColorLength = 2
)

// Flip returns the opposite color
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c is White or Black (not All)
func (c Color) IsValid() bool {
	return c < All
}

// String returns "w" or "b"
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// pawn push direction per color, North for White, South for Black
var pawnPushDirection = [2]Direction{North, South}

// PawnPushDirection returns the direction a pawn of this color
// advances towards promotion
func (c Color) PawnPushDirection() Direction {
	return pawnPushDirection[c]
}

var pawnStartRankBb = [2]Bitboard{Rank2_Bb, Rank7_Bb}

// PawnStartRankBb returns the rank bitboard from which a pawn of this
// color may make a double push
func (c Color) PawnStartRankBb() Bitboard {
	return pawnStartRankBb[c]
}

var pawnPromotionRankBb = [2]Bitboard{Rank7_Bb, Rank2_Bb}

// PawnPromotionRankBb returns the rank bitboard on which a pawn of this
// color promotes on its next push
func (c Color) PawnPromotionRankBb() Bitboard {
	return pawnPromotionRankBb[c]
}
