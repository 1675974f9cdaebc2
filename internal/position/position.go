/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position represents the chess board and its position: an 8x8
// mailbox plus per-color-per-kind bitboards, castling rights, en passant
// square and side to move. Create a new instance with NewPosition (start
// position) or NewPositionFen (from a FEN string).
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frankkopp/magicperft/internal/assert"
	"github.com/frankkopp/magicperft/internal/attacks"
	. "github.com/frankkopp/magicperft/internal/types"
)

// StartFen is the FEN string for the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MoveMode selects how MakeMove treats non-capturing moves.
type MoveMode uint8

const (
	// AllMoves accepts any pseudo-legal move.
	AllMoves MoveMode = iota
	// CapturesOnly rejects any move that is not a capture.
	CapturesOnly
)

// state is a full snapshot of a Position, used to undo a move without
// reconstructing it incrementally.
type state struct {
	board           [SqLength]Piece
	piecesBb        [ColorLength][PtLength]Bitboard
	occupiedBb      [3]Bitboard
	castlingRights  CastlingRights
	enPassantSquare Square
	sideToMove      Color
	halfMoveClock   int
	fullMoveNumber  int
	kingSquare      [ColorLength]Square
}

// Position represents one chess position.
type Position struct {
	board           [SqLength]Piece
	piecesBb        [ColorLength][PtLength]Bitboard
	occupiedBb      [3]Bitboard // indexed by Color: White, Black, All
	castlingRights  CastlingRights
	enPassantSquare Square
	sideToMove      Color
	halfMoveClock   int
	fullMoveNumber  int
	kingSquare      [ColorLength]Square

	history []state
}

// NewPosition creates a Position in the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("position: start FEN rejected: %v", err))
	}
	return p
}

// NewPositionFen creates a Position from the given FEN string, or returns
// an error if the FEN is malformed. A Position returned with a non-nil
// error is not valid and must not be used.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{enPassantSquare: SqNone, kingSquare: [ColorLength]Square{SqNone, SqNone}}
	for sq := SqA1; sq < SqLength; sq++ {
		p.board[sq] = PieceNone
	}
	if err := p.parseFen(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// snapshot captures the full position state for later restore.
func (p *Position) snapshot() state {
	return state{
		board:           p.board,
		piecesBb:        p.piecesBb,
		occupiedBb:      p.occupiedBb,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		sideToMove:      p.sideToMove,
		halfMoveClock:   p.halfMoveClock,
		fullMoveNumber:  p.fullMoveNumber,
		kingSquare:      p.kingSquare,
	}
}

func (p *Position) restore(s state) {
	p.board = s.board
	p.piecesBb = s.piecesBb
	p.occupiedBb = s.occupiedBb
	p.castlingRights = s.castlingRights
	p.enPassantSquare = s.enPassantSquare
	p.sideToMove = s.sideToMove
	p.halfMoveClock = s.halfMoveClock
	p.fullMoveNumber = s.fullMoveNumber
	p.kingSquare = s.kingSquare
}

func (p *Position) putPiece(piece Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "position: square %s already occupied", sq)
	}
	p.board[sq] = piece
	p.piecesBb[piece.ColorOf()][piece.TypeOf()].PushSquare(sq)
	if piece.TypeOf() == King {
		p.kingSquare[piece.ColorOf()] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "position: square %s already empty", sq)
	}
	p.board[sq] = PieceNone
	p.piecesBb[piece.ColorOf()][piece.TypeOf()].PopSquare(sq)
	return piece
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}

// recomputeOccupancy rebuilds all three occupancy bitboards from the
// per-kind piece bitboards.
func (p *Position) recomputeOccupancy() {
	var white, black Bitboard
	for pt := Pawn; pt < PtLength; pt++ {
		white |= p.piecesBb[White][pt]
		black |= p.piecesBb[Black][pt]
	}
	p.occupiedBb[White] = white
	p.occupiedBb[Black] = black
	p.occupiedBb[All] = white | black
}

// castleRookMove returns the rook's from/to squares for a castling move
// landing on the king's target square.
func castleRookMove(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("position: %s is not a castling target square", kingTo))
	}
}

// MakeMove applies move to the position. If mode is CapturesOnly and move
// is not a capture, it is rejected. The move is applied speculatively and
// then checked for legality: if it leaves the mover's own king attacked,
// the position is restored to its pre-move state and MakeMove returns
// false. A true return pushes the pre-move state onto an internal undo
// stack popped by UnmakeMove.
func (p *Position) MakeMove(m Move, mode MoveMode) bool {
	if mode == CapturesOnly && !m.IsCapture() {
		return false
	}

	pre := p.snapshot()

	mover := m.Color()
	from, to := m.From(), m.To()

	if m.IsCapture() && !m.IsEnPassant() {
		if assert.DEBUG {
			assert.Assert(p.board[to] != PieceNone, "position: capture move onto empty square %s", to)
		}
		p.removePiece(to)
	}

	p.movePiece(from, to)

	if m.IsPromotion() {
		p.piecesBb[mover][Pawn].PopSquare(to)
		p.board[to] = MakePiece(mover, m.PromotionType())
		p.piecesBb[mover][m.PromotionType()].PushSquare(to)
	}

	if m.IsEnPassant() {
		capSq := to.To(-mover.PawnPushDirection())
		captured := p.removePiece(capSq)
		if assert.DEBUG {
			assert.Assert(captured == MakePiece(mover.Flip(), Pawn), "position: en passant target %s has no enemy pawn", capSq)
		}
	}

	p.enPassantSquare = SqNone
	if m.IsDoublePawnPush() {
		p.enPassantSquare = to.To(-mover.PawnPushDirection())
	}

	if m.IsCastling() {
		rookFrom, rookTo := castleRookMove(to)
		p.movePiece(rookFrom, rookTo)
	}

	p.castlingRights.Remove(CastlingRightsLostBySquare(from))
	p.castlingRights.Remove(CastlingRightsLostBySquare(to))

	if m.IsCapture() || m.PieceType() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if mover == Black {
		p.fullMoveNumber++
	}

	p.recomputeOccupancy()
	p.sideToMove = mover.Flip()

	if p.IsSquareAttacked(p.kingSquare[mover], p.sideToMove) {
		p.restore(pre)
		return false
	}

	p.history = append(p.history, pre)
	return true
}

// UnmakeMove restores the position to the state before the most recent
// successful MakeMove. Panics if there is no move to undo.
func (p *Position) UnmakeMove() {
	if len(p.history) == 0 {
		panic("position: UnmakeMove called with empty history")
	}
	last := len(p.history) - 1
	p.restore(p.history[last])
	p.history = p.history[:last]
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	return attacks.IsSquareAttacked(sq, by, &p.piecesBb[by], p.occupiedBb[All])
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// PieceAt returns the piece occupying sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of pieces of kind pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// Occupied returns the occupancy bitboard for c (White, Black, or All).
func (p *Position) Occupied(c Color) Bitboard {
	return p.occupiedBb[c]
}

// CastlingRights returns the position's current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the en passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the position's half move clock.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// InCheck reports whether the side to move is currently attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
}

// String returns the FEN representation followed by a board diagram.
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringFen())
	os.WriteString("\n")
	os.WriteString(p.StringBoard())
	return os.String()
}

// StringBoard returns a visual matrix of the board and pieces.
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			os.WriteString(p.board[SquareOf(f, r)].String())
			os.WriteString(" ")
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// StringFen returns the FEN string of the current position.
func (p *Position) StringFen() string {
	var fen strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				fen.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			fen.WriteString(pc.String())
		}
		if empty > 0 {
			fen.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			fen.WriteString("/")
		}
		if r == Rank1 {
			break
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.sideToMove.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullMoveNumber))
	return fen.String()
}

// parseFen fills a zeroed Position from a six-field FEN string. The first
// four fields are consumed strictly; halfmove clock and fullmove number
// are read but otherwise unused.
func (p *Position) parseFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: fen must have at least 4 fields, got %d", len(fields))
	}

	sq := SqA8
	file := 0
	rank := 0
	for _, c := range fields[0] {
		switch {
		case c == '/':
			if file != 8 {
				return fmt.Errorf("position: fen rank ended after %d files, want 8", file)
			}
			rank++
			if rank > 7 {
				return fmt.Errorf("position: fen has more than 8 ranks")
			}
			sq -= 16
			file = 0
		case c >= '1' && c <= '8':
			n := int(c - '0')
			if file+n > 8 {
				return fmt.Errorf("position: fen rank overflows after %d files", file+n)
			}
			sq += Square(n)
			file += n
		default:
			if file >= 8 {
				return fmt.Errorf("position: fen rank overflows after %d files", file+1)
			}
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("position: invalid piece character %q", c)
			}
			p.putPiece(piece, sq)
			sq++
			file++
		}
	}
	if file != 8 {
		return fmt.Errorf("position: fen rank ended after %d files, want 8", file)
	}
	p.recomputeOccupancy()

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: invalid side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			default:
				return fmt.Errorf("position: invalid castling right %q", c)
			}
		}
	}

	if fields[3] != "-" {
		ep := MakeSquare(fields[3])
		if ep == SqNone {
			return fmt.Errorf("position: invalid en passant square %q", fields[3])
		}
		p.enPassantSquare = ep
	}

	p.halfMoveClock = 0
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfMoveClock = n
		}
	}
	p.fullMoveNumber = 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullMoveNumber = n
		}
	}

	return nil
}
