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
	"fmt"
	"strings"

	"github.com/frankkopp/magicperft/internal/assert"
)

// Move is a 32-bit packed encoding of a chess move.
//  MoveNone Move = 0
//  BITMAP 32-bit, bit 0 is least significant
//  bits  0- 5   source square
//  bits  6-11   target square
//  bit     12   color of the moving side (0 White, 1 Black)
//  bits 13-15   moving piece type
//  bits 16-19   promotion piece type (0 when not a promotion)
//  bit     20   capture flag
//  bit     21   double pawn push flag
//  bit     22   en passant capture flag
//  bit     23   castling flag
type Move uint32

// MoveNone is the zero value, an empty/invalid move
const MoveNone Move = 0

const (
	sourceShift  uint = 0
	targetShift  uint = 6
	colorShift   uint = 12
	pieceShift   uint = 13
	promShift    uint = 16
	captureShift uint = 20
	doublePushShift uint = 21
	epShift      uint = 22
	castlingShift uint = 23

	squareMask Move = 0x3F
	pieceBits  Move = 0x7
	promBits   Move = 0xF
)

// CreateMove encodes a quiet, non-special move. The promotion field is
// left at 0 (no promotion) - Pawn's own numeric value doubles as that
// sentinel since a pawn can never itself be a promotion target.
func CreateMove(from, to Square, c Color, pt PieceType) Move {
	return Move(from)<<sourceShift |
		Move(to)<<targetShift |
		Move(c)<<colorShift |
		Move(pt)<<pieceShift
}

// CreateCapture encodes a capturing, non-special move
func CreateCapture(from, to Square, c Color, pt PieceType) Move {
	return CreateMove(from, to, c, pt) | 1<<captureShift
}

// CreateDoublePawnPush encodes a two-square pawn advance from its start rank
func CreateDoublePawnPush(from, to Square, c Color) Move {
	return CreateMove(from, to, c, Pawn) | 1<<doublePushShift
}

// CreateEnPassant encodes an en passant pawn capture
func CreateEnPassant(from, to Square, c Color) Move {
	return CreateMove(from, to, c, Pawn) | 1<<captureShift | 1<<epShift
}

// CreatePromotion encodes a pawn promotion, optionally also a capture
func CreatePromotion(from, to Square, c Color, promType PieceType, capture bool) Move {
	m := Move(from)<<sourceShift |
		Move(to)<<targetShift |
		Move(c)<<colorShift |
		Move(Pawn)<<pieceShift |
		Move(promType)<<promShift
	if capture {
		m |= 1 << captureShift
	}
	return m
}

// CreateCastling encodes a king move that castles
func CreateCastling(from, to Square, c Color) Move {
	return CreateMove(from, to, c, King) | 1<<castlingShift
}

// From returns the source square of the move
func (m Move) From() Square {
	return Square((m >> sourceShift) & squareMask)
}

// To returns the target square of the move
func (m Move) To() Square {
	return Square((m >> targetShift) & squareMask)
}

// Color returns the color of the moving side
func (m Move) Color() Color {
	return Color((m >> colorShift) & 1)
}

// PieceType returns the type of the moving piece
func (m Move) PieceType() PieceType {
	return PieceType((m >> pieceShift) & pieceBits)
}

// PromotionType returns the promotion piece type (Knight, Bishop, Rook
// or Queen), or Pawn if this move is not a promotion - the promotion
// field is 0 in that case, which is also Pawn's own numeric value.
func (m Move) PromotionType() PieceType {
	return PieceType((m >> promShift) & promBits)
}

// IsPromotion reports whether the move promotes a pawn
func (m Move) IsPromotion() bool {
	return m.PromotionType() != Pawn
}

// IsCapture reports whether the move captures a piece (including en passant)
func (m Move) IsCapture() bool {
	return m&(1<<captureShift) != 0
}

// IsDoublePawnPush reports whether the move is a two-square pawn advance
func (m Move) IsDoublePawnPush() bool {
	return m&(1<<doublePushShift) != 0
}

// IsEnPassant reports whether the move is an en passant capture
func (m Move) IsEnPassant() bool {
	return m&(1<<epShift) != 0
}

// IsCastling reports whether the move is a castling move
func (m Move) IsCastling() bool {
	return m&(1<<castlingShift) != 0
}

// IsValid does a cheap sanity check on the encoded fields of the move.
// MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.From() != m.To() &&
		m.PieceType().IsValid() &&
		(!m.IsPromotion() || m.PromotionType().IsSlider() || m.PromotionType() == Knight)
}

// String returns a human readable representation of the move
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	if assert.DEBUG {
		assert.Assert(m.IsValid(), "invalid move %d", uint32(m))
	}
	return fmt.Sprintf("Move: { %-5s  piece:%s  capture:%t  prom:%s  ep:%t  castle:%t }",
		m.StringUci(), m.PieceType().String(), m.IsCapture(), m.PromotionType().Char(),
		m.IsEnPassant(), m.IsCastling())
}

// StringUci returns the UCI long-algebraic representation of the move,
// e.g. "e2e4" or "a7a8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(m.PromotionType().Char())
	}
	return os.String()
}
