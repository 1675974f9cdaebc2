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

	. "github.com/frankkopp/magicperft/internal/types"
)

// Magic holds the per-square data needed to index the attack table of a
// sliding piece: mask the occupancy, multiply by the magic and shift the
// high bits down to a contiguous index.
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

// Index computes the table index for a given occupancy of the full board.
func (m *Magic) Index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return uint(occ)
}

// maxMagicAttempts bounds the offline search per square.
const maxMagicAttempts = 100_000_000

// topByteMask isolates the most significant byte, used by the sparse
// magic heuristic below.
const topByteMask Bitboard = 0xFF00000000000000

// magicSeed is the fixed xorshift-32 seed used for magic discovery, chosen
// to make the search reproducible.
const magicSeed uint32 = 1804289383

// xorshift32 is a 32-bit xorshift pseudo-random generator.
type xorshift32 struct {
	state uint32
}

func newXorshift32(seed uint32) *xorshift32 {
	return &xorshift32{state: seed}
}

func (r *xorshift32) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// rand16 returns the low 16 bits of the next generator output.
func (r *xorshift32) rand16() uint64 {
	return uint64(r.next()) & 0xFFFF
}

// random64 assembles a 64-bit value from four 16-bit fragments.
func (r *xorshift32) random64() uint64 {
	return r.rand16() | r.rand16()<<16 | r.rand16()<<32 | r.rand16()<<48
}

// sparseCandidate ANDs together three independently drawn 64-bit randoms,
// which biases the result toward sparse bit patterns - magics with few
// bits set are found faster during the collision search below.
func (r *xorshift32) sparseCandidate() Bitboard {
	return Bitboard(r.random64() & r.random64() & r.random64())
}

// searchMagic finds a magic number for the given mask and reference table
// (reference[i] is the correct attack set for the i-th sub-occupancy, as
// enumerated by the Carry-Rippler traversal of mask). It returns the magic
// and the populated attack table, or ok=false if none was found within
// maxMagicAttempts attempts.
func searchMagic(mask Bitboard, occupancy, reference []Bitboard) (Bitboard, []Bitboard, bool) {
	size := len(occupancy)
	shift := uint(64 - mask.PopCount())
	rng := newXorshift32(magicSeed)
	attacksTbl := make([]Bitboard, size)
	epoch := make([]int, size)
	cnt := 0

	for attempt := 0; attempt < maxMagicAttempts; attempt++ {
		var magic Bitboard
		for {
			magic = rng.sparseCandidate()
			if ((mask * magic) & topByteMask).PopCount() >= 6 {
				break
			}
		}

		cnt++
		collision := false
		for i := 0; i < size; i++ {
			occ := occupancy[i] & mask
			occ *= magic
			idx := uint(occ >> shift)
			if epoch[idx] < cnt {
				epoch[idx] = cnt
				attacksTbl[idx] = reference[i]
			} else if attacksTbl[idx] != reference[i] {
				collision = true
				break
			}
		}
		if !collision {
			return magic, attacksTbl, true
		}
	}
	return BbZero, nil, false
}

// buildMagicTable runs the offline magic search for every square using the
// given per-square relevance masks and ray directions, returning an error
// if a square's search exhausts maxMagicAttempts. MustInit turns that
// error into a panic; there is no retry.
func buildMagicTable(masks *[SqLength]Bitboard, directions [4]Direction) ([SqLength]Magic, error) {
	var magics [SqLength]Magic

	for sq := SqA1; sq < SqLength; sq++ {
		mask := masks[sq]
		k := mask.PopCount()
		size := 1 << uint(k)

		occupancy := make([]Bitboard, size)
		reference := make([]Bitboard, size)

		var b Bitboard
		for i := 0; i < size; i++ {
			occupancy[i] = b
			reference[i] = slidingAttack(directions, sq, b)
			b = (b - mask) & mask
		}

		magic, tbl, ok := searchMagic(mask, occupancy, reference)
		if !ok {
			return magics, fmt.Errorf("attacks: no magic found for square %s after %d attempts", sq, maxMagicAttempts)
		}

		magics[sq] = Magic{
			Mask:    mask,
			Number:  magic,
			Attacks: tbl,
			Shift:   uint(64 - k),
		}
	}
	return magics, nil
}
