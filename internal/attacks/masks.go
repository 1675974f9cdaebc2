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

// Package attacks builds and serves the process-wide attack tables: direct
// lookup for pawns, knights and kings, and magic-bitboard lookup for the
// sliding pieces (bishop, rook, queen). Tables are computed once by Init
// and are read-only afterwards.
package attacks

import (
	. "github.com/frankkopp/magicperft/internal/types"
)

var (
	pawnAttacks   [ColorLength][SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard

	bishopMasks [SqLength]Bitboard
	rookMasks   [SqLength]Bitboard

	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}
	rookDirections   = [4]Direction{North, East, South, West}

	knightDeltas = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// slidingAttack walks the four given ray directions from sq, stopping each
// ray as soon as it hits a square present in occupied (the blocker square
// itself is included, since it may be capturable).
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range directions {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// edgeMask returns the board-edge squares that are never part of a
// relevant occupancy mask for a slider on sq, since a blocker sitting on
// the edge cannot itself block any further square along the ray.
func edgeMask(sq Square) Bitboard {
	return ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
}

func knightMask(sq Square) Bitboard {
	var b Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	for _, d := range knightDeltas {
		nf, nr := f+d[0], r+d[1]
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		b.PushSquare(SquareOf(File(nf), Rank(nr)))
	}
	return b
}

func kingMask(sq Square) Bitboard {
	var b Bitboard
	for _, d := range Directions {
		if next := sq.To(d); next.IsValid() {
			b.PushSquare(next)
		}
	}
	return b
}

func pawnMask(c Color, sq Square) Bitboard {
	var b Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	dr := 1
	if c == Black {
		dr = -1
	}
	for _, df := range [2]int{-1, 1} {
		nf, nr := f+df, r+dr
		if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
			continue
		}
		b.PushSquare(SquareOf(File(nf), Rank(nr)))
	}
	return b
}

func initMasks() {
	for sq := SqA1; sq < SqLength; sq++ {
		knightAttacks[sq] = knightMask(sq)
		kingAttacks[sq] = kingMask(sq)
		pawnAttacks[White][sq] = pawnMask(White, sq)
		pawnAttacks[Black][sq] = pawnMask(Black, sq)
		bishopMasks[sq] = slidingAttack(bishopDirections, sq, BbZero) &^ edgeMask(sq)
		rookMasks[sq] = slidingAttack(rookDirections, sq, BbZero) &^ edgeMask(sq)
	}
}
