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

// Square identifies one of the 64 board squares, indexed a1=0 .. h8=63,
// file varying fastest (a1, b1, ..., h1, a2, ...).
type Square uint8

// Square constants
//noinspection GoVarAndConstTypeMayBeOmitted,GoSnakeCaseUsage
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8

	SqNone   Square = 64
	SqLength        = 64
)

// IsValid reports whether sq is one of the 64 board squares (not SqNone)
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file the square lies on
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank the square lies on
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf returns the square at file f and rank r, or SqNone if either
// is not a valid file/rank.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(uint8(r)<<3 + uint8(f))
}

// MakeSquare parses algebraic square notation such as "e4" into a Square.
// It returns SqNone if s is not a valid square string.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

// sqTo precomputes, for every square and direction, the neighbour square
// reached by stepping once in that direction, or SqNone when the step
// would leave the board.
var sqTo [SqLength][8]Square

// squareToPreCompute fills the sqTo neighbour table. Must run before any
// code calls Square.To, in particular the package-level bitboard init.
func squareToPreCompute() {
	for sq := SqA1; sq < SqLength; sq++ {
		f, r := sq.FileOf(), sq.RankOf()
		for i, d := range Directions {
			nf := int(f) + fileDelta(d)
			nr := int(r) + rankDelta(d)
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				sqTo[sq][i] = SqNone
				continue
			}
			sqTo[sq][i] = SquareOf(File(nf), Rank(nr))
		}
	}
}

func fileDelta(d Direction) int {
	switch d {
	case East, Northeast, Southeast:
		return 1
	case West, Northwest, Southwest:
		return -1
	default:
		return 0
	}
}

func rankDelta(d Direction) int {
	switch d {
	case North, Northeast, Northwest:
		return 1
	case South, Southeast, Southwest:
		return -1
	default:
		return 0
	}
}

// To returns the square reached from sq by a single step in direction d,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	for i, dd := range Directions {
		if dd == d {
			return sqTo[sq][i]
		}
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

// Bb returns the single-bit Bitboard for this square
func (sq Square) Bb() Bitboard {
	return BbOne << sq
}

var squareToString = [SqLength]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns algebraic notation for the square, e.g. "e4"
// if sq is not a valid square returns "-"
func (sq Square) String() string {
	if sq >= SqNone {
		return "-"
	}
	return squareToString[sq]
}
