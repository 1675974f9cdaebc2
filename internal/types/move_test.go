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

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4, White, Pawn)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, White, m.Color())
	assert.Equal(t, Pawn, m.PieceType())
	assert.False(t, m.IsCapture())
	assert.False(t, m.IsPromotion())
	assert.False(t, m.IsCastling())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestCreateCapture(t *testing.T) {
	m := CreateCapture(SqD4, SqE5, White, Bishop)
	assert.True(t, m.IsCapture())
	assert.Equal(t, Bishop, m.PieceType())
}

func TestCreateDoublePawnPush(t *testing.T) {
	m := CreateDoublePawnPush(SqE2, SqE4, White)
	assert.True(t, m.IsDoublePawnPush())
	assert.False(t, m.IsCapture())
}

func TestCreateEnPassant(t *testing.T) {
	m := CreateEnPassant(SqE5, SqD6, White)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
	assert.Equal(t, Pawn, m.PieceType())
}

func TestCreatePromotion(t *testing.T) {
	m := CreatePromotion(SqE7, SqE8, White, Queen, false)
	assert.True(t, m.IsPromotion())
	assert.False(t, m.IsCapture())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.StringUci())

	m2 := CreatePromotion(SqE7, SqD8, White, Knight, true)
	assert.True(t, m2.IsPromotion())
	assert.True(t, m2.IsCapture())
	assert.Equal(t, Knight, m2.PromotionType())
	assert.Equal(t, "e7d8n", m2.StringUci())
}

func TestCreateCastling(t *testing.T) {
	m := CreateCastling(SqE1, SqG1, White)
	assert.True(t, m.IsCastling())
	assert.Equal(t, King, m.PieceType())
	assert.False(t, m.IsPromotion())
}

func TestMoveNone(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.StringUci())
	assert.False(t, MoveNone.IsValid())
}
