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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardType(t *testing.T) {
	assert.EqualValues(t, 0, BbZero)
	assert.EqualValues(t, 1, BbOne)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), uint64(BbAll))
}

func TestBitboardStr(t *testing.T) {
	b := SqA1.Bb()
	assert.Equal(t, 64, len(b.String()))
	assert.Equal(t, byte('1'), b.String()[63])
}

func TestBitboardPushPop(t *testing.T) {
	b := BbZero
	b.PushSquare(SqE4)
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b.PopSquare(SqE4)
	assert.False(t, b.Has(SqE4))
}

func TestBitboardStrBoard(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb()
	s := b.StringBoard()
	assert.Contains(t, s, "X")
}

func TestBitboardLsbMsb(t *testing.T) {
	b := SqA1.Bb() | SqD4.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.Lsb())
	assert.Equal(t, SqH8, b.Msb())
	assert.Equal(t, SqNone, BbZero.Msb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqA1.Bb() | SqD4.Bb() | SqH8.Bb()
	assert.Equal(t, SqA1, b.PopLsb())
	assert.Equal(t, SqD4, b.PopLsb())
	assert.Equal(t, SqH8, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestBitboardPopCount(t *testing.T) {
	assert.Equal(t, 0, BbZero.PopCount())
	assert.Equal(t, 64, BbAll.PopCount())
	assert.Equal(t, 8, Rank1_Bb.PopCount())
	assert.Equal(t, 8, FileA_Bb.PopCount())
}

func TestBitboardShift(t *testing.T) {
	b := SqE4.Bb()
	assert.Equal(t, SqE5.Bb(), ShiftBitboard(b, North))
	assert.Equal(t, SqE3.Bb(), ShiftBitboard(b, South))
	assert.Equal(t, SqF4.Bb(), ShiftBitboard(b, East))
	assert.Equal(t, SqD4.Bb(), ShiftBitboard(b, West))
	// shifting off the edge produces an empty board
	assert.Equal(t, BbZero, ShiftBitboard(SqH4.Bb(), East))
	assert.Equal(t, BbZero, ShiftBitboard(SqA4.Bb(), West))
	assert.Equal(t, BbZero, ShiftBitboard(Rank8_Bb, North))
}

func TestFileDistance(t *testing.T) {
	assert.Equal(t, 0, FileDistance(FileA, FileA))
	assert.Equal(t, 7, FileDistance(FileA, FileH))
}

func TestRankDistance(t *testing.T) {
	assert.Equal(t, 0, RankDistance(Rank1, Rank1))
	assert.Equal(t, 7, RankDistance(Rank1, Rank8))
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 7, SquareDistance(SqA1, SqA8))
}

func TestIntermediate(t *testing.T) {
	// e1-e8 passes through e2..e7
	mid := Intermediate(SqE1, SqE8)
	assert.True(t, mid.Has(SqE4))
	assert.False(t, mid.Has(SqE1))
	assert.False(t, mid.Has(SqE8))
	// a1-h8 diagonal
	diag := Intermediate(SqA1, SqH8)
	assert.True(t, diag.Has(SqD4))
	// squares not sharing a line have no intermediate squares
	assert.Equal(t, BbZero, Intermediate(SqA1, SqB3))
}

func TestCastleMasks(t *testing.T) {
	assert.True(t, KingSideCastleMask(White).Has(SqF1))
	assert.True(t, KingSideCastleMask(White).Has(SqG1))
	assert.False(t, KingSideCastleMask(White).Has(SqE1))
	assert.True(t, QueenSideCastleMask(White).Has(SqB1))
	assert.True(t, QueenSideCastleMask(White).Has(SqC1))
	assert.True(t, QueenSideCastleMask(White).Has(SqD1))
}

func TestRankFileBb(t *testing.T) {
	assert.Equal(t, Rank1_Bb, Rank1.Bb())
	assert.Equal(t, Rank8_Bb, Rank8.Bb())
	assert.Equal(t, FileA_Bb, FileA.Bb())
	assert.Equal(t, FileH_Bb, FileH.Bb())
}
