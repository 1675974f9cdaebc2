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

package attacks

import (
	"fmt"
	"sync"

	. "github.com/frankkopp/magicperft/internal/types"
)

var (
	bishopMagics [SqLength]Magic
	rookMagics   [SqLength]Magic

	initOnce sync.Once
	initErr  error
)

// Init builds the attack tables: the direct-lookup pawn/knight/king tables
// and the magic-indexed bishop/rook tables. It is idempotent and safe to
// call from multiple goroutines; all callers observe the same error, if
// any. The tables are immutable once built and may then be read
// concurrently without locking.
func Init() error {
	initOnce.Do(func() {
		initMasks()

		bm, err := buildMagicTable(&bishopMasks, bishopDirections)
		if err != nil {
			initErr = err
			return
		}
		rm, err := buildMagicTable(&rookMasks, rookDirections)
		if err != nil {
			initErr = err
			return
		}
		bishopMagics = bm
		rookMagics = rm
	})
	return initErr
}

// MustInit calls Init and panics on failure. A failure here means the
// offline magic search could not find perfect-hash magics within the
// attempt budget - an internal invariant violation with no runtime
// retry, since the tables are meant to be immutable.
func MustInit() {
	if err := Init(); err != nil {
		panic(fmt.Sprintf("attacks: %v", err))
	}
}

// PawnAttacks returns the squares a pawn of color c standing on sq
// attacks diagonally.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// BishopAttacks returns the squares a bishop on sq attacks given the full
// board occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.Index(occ)]
}

// RookAttacks returns the squares a rook on sq attacks given the full
// board occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.Index(occ)]
}

// QueenAttacks returns the squares a queen on sq attacks given the full
// board occupancy occ.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// BishopMask returns the relevant-occupancy mask for a bishop on sq.
func BishopMask(sq Square) Bitboard {
	return bishopMasks[sq]
}

// RookMask returns the relevant-occupancy mask for a rook on sq.
func RookMask(sq Square) Bitboard {
	return rookMasks[sq]
}

// BishopMagicNumber returns the magic multiplier found for a bishop on sq.
func BishopMagicNumber(sq Square) Bitboard {
	return bishopMagics[sq].Number
}

// RookMagicNumber returns the magic multiplier found for a rook on sq.
func RookMagicNumber(sq Square) Bitboard {
	return rookMagics[sq].Number
}

// DynamicBishopAttacks recomputes a bishop's attack set directly by
// walking its rays against occ, bypassing the magic table. Used to verify
// the magic perfect-hash property in tests.
func DynamicBishopAttacks(sq Square, occ Bitboard) Bitboard {
	return slidingAttack(bishopDirections, sq, occ)
}

// DynamicRookAttacks recomputes a rook's attack set directly by walking
// its rays against occ, bypassing the magic table.
func DynamicRookAttacks(sq Square, occ Bitboard) Bitboard {
	return slidingAttack(rookDirections, sq, occ)
}

// IsSquareAttacked reports whether any piece of color bySide attacks sq,
// given the six per-kind piece bitboards of that color and the full
// board occupancy. It uses reverse attack lookup: the squares that attack
// sq are exactly the squares a same-kind piece of the opposite color
// placed on sq would itself attack.
func IsSquareAttacked(sq Square, bySide Color, pieces *[PtLength]Bitboard, occAll Bitboard) bool {
	if PawnAttacks(bySide.Flip(), sq)&pieces[Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&pieces[Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&pieces[King] != 0 {
		return true
	}
	if BishopAttacks(sq, occAll)&(pieces[Bishop]|pieces[Queen]) != 0 {
		return true
	}
	if RookAttacks(sq, occAll)&(pieces[Rook]|pieces[Queen]) != 0 {
		return true
	}
	return false
}
