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

package moveslice

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/magicperft/internal/types"
)

var (
	e2e4 = CreateDoublePawnPush(SqE2, SqE4, White)
	d7d5 = CreateDoublePawnPush(SqD7, SqD5, Black)
	e4d5 = CreateCapture(SqE4, SqD5, White, Pawn)
	d8d5 = CreateCapture(SqD8, SqD5, Black, Queen)
	b1c3 = CreateMove(SqB1, SqC3, White, Knight)
)

func fiveMoves() *MoveSlice {
	ma := NewMoveSlice(MaxMoves)
	ma.PushBack(e2e4)
	ma.PushBack(d7d5)
	ma.PushBack(e4d5)
	ma.PushBack(d8d5)
	ma.PushBack(b1c3)
	return ma
}

func TestNew(t *testing.T) {
	ma := NewMoveSlice(MaxMoves)
	assert.Equal(t, 0, len(*ma))
	assert.Equal(t, MaxMoves, cap(*ma))
}

func TestNewMoveListUsesMaxMoves(t *testing.T) {
	ma := NewMoveList()
	assert.Equal(t, 0, ma.Len())
	assert.Equal(t, MaxMoves, ma.Cap())
}

func TestPushBackGrowsBeyondInitialCapacity(t *testing.T) {
	ma := fiveMoves()
	assert.Equal(t, 5, len(*ma))
	for i := 0; i < 1000; i++ {
		ma.PushBack(e2e4)
	}
	assert.Equal(t, 1005, len(*ma))
}

func TestPopBackPanicsWhenEmpty(t *testing.T) {
	ma := NewMoveSlice(MaxMoves)
	assert.Panics(t, func() { ma.PopBack() })
}

func TestPopBackReturnsLifoOrder(t *testing.T) {
	ma := fiveMoves()
	assert.Equal(t, b1c3, ma.PopBack())
	assert.Equal(t, d8d5, ma.PopBack())
	assert.Equal(t, 3, len(*ma))
}

func TestPushFront(t *testing.T) {
	ma := NewMoveSlice(MaxMoves)
	ma.PushFront(e2e4)
	ma.PushFront(d7d5)
	assert.Equal(t, 2, len(*ma))
	assert.Equal(t, d7d5, ma.Front())
	assert.Equal(t, e2e4, ma.Back())
}

func TestPopFrontPanicsWhenEmpty(t *testing.T) {
	ma := NewMoveSlice(MaxMoves)
	assert.Panics(t, func() { ma.PopFront() })
}

func TestPopFrontReturnsFifoOrder(t *testing.T) {
	ma := fiveMoves()
	assert.Equal(t, e2e4, ma.PopFront())
	assert.Equal(t, d7d5, ma.PopFront())
	assert.Equal(t, 3, len(*ma))
}

func TestClearRetainsCapacity(t *testing.T) {
	ma := fiveMoves()
	ma.Clear()
	assert.Equal(t, 0, len(*ma))
	assert.Equal(t, MaxMoves, cap(*ma))
}

func TestAccessors(t *testing.T) {
	ma := fiveMoves()
	assert.Equal(t, e2e4, ma.Front())
	assert.Equal(t, ma.At(0), ma.Front())
	assert.Equal(t, b1c3, ma.Back())
	assert.Equal(t, ma.At(ma.Len()-1), ma.Back())

	ma.Set(0, b1c3)
	assert.Equal(t, b1c3, ma.Front())
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	ma := fiveMoves()
	assert.Panics(t, func() { ma.At(-1) })
	assert.Panics(t, func() { ma.At(5) })
}

func TestStringUci(t *testing.T) {
	ma := fiveMoves()
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ma.StringUci())
}

func TestFilterKeepsMatchingElementsInOrder(t *testing.T) {
	ma := fiveMoves()
	ma.Filter(func(i int) bool { return ma.At(i) != e4d5 })
	assert.Equal(t, 4, len(*ma))
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", ma.StringUci())
}

func TestFilterCopyLeavesSourceUntouched(t *testing.T) {
	ma := fiveMoves()
	dest := NewMoveSlice(ma.Cap())
	ma.FilterCopy(dest, func(i int) bool { return ma.At(i) != e4d5 })

	assert.Equal(t, 5, len(*ma))
	assert.Equal(t, "e2e4 d7d5 e4d5 d8d5 b1c3", ma.StringUci())
	assert.Equal(t, 4, len(*dest))
	assert.Equal(t, "e2e4 d7d5 d8d5 b1c3", dest.StringUci())
}

func TestCloneIsIndependentOfSource(t *testing.T) {
	ma := fiveMoves()
	clone := ma.Clone()
	assert.True(t, ma.Equals(clone))

	clone.PopBack()
	assert.False(t, ma.Equals(clone))
	assert.Equal(t, 5, ma.Len(), "mutating the clone must not affect the source")
}

func TestForEachVisitsEveryIndexInOrder(t *testing.T) {
	ma := fiveMoves()
	var visited []Move
	ma.ForEach(func(i int) { visited = append(visited, ma.At(i)) })
	assert.Equal(t, []Move{e2e4, d7d5, e4d5, d8d5, b1c3}, visited)
}

func TestForEachParallelVisitsEveryIndex(t *testing.T) {
	noOfItems := 1000
	ma := NewMoveSlice(noOfItems)
	for i := 0; i < noOfItems; i++ {
		ma.PushBack(e2e4)
	}

	var mux sync.Mutex
	counter := 0
	ma.ForEachParallel(func(i int) {
		mux.Lock()
		counter++
		mux.Unlock()
	})

	assert.Equal(t, noOfItems, counter)
}
