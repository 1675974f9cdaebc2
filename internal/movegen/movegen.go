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

// Package movegen generates pseudo-legal and legal moves for a position,
// one per-piece-kind generator feeding a shared MoveSlice.
package movegen

import (
	"github.com/frankkopp/magicperft/internal/attacks"
	"github.com/frankkopp/magicperft/internal/moveslice"
	"github.com/frankkopp/magicperft/internal/position"
	. "github.com/frankkopp/magicperft/internal/types"
)

// GeneratePseudoLegalMoves fills ml with every pseudo-legal move for the
// side to move on p: moves that respect each piece's movement rules but
// may leave the mover's own king in check. ml is cleared first.
func GeneratePseudoLegalMoves(p *position.Position, ml *moveslice.MoveSlice) {
	ml.Clear()
	generatePawnMoves(p, ml)
	generateOfficerMoves(p, Knight, ml)
	generateOfficerMoves(p, Bishop, ml)
	generateOfficerMoves(p, Rook, ml)
	generateOfficerMoves(p, Queen, ml)
	generateKingMoves(p, ml)
	generateCastling(p, ml)
}

// GenerateLegalMoves fills ml with every legal move for the side to move
// on p: the pseudo-legal moves that, once played, do not leave the
// mover's own king attacked. Each candidate is proven by actually playing
// it via Position.MakeMove and immediately unmaking it.
func GenerateLegalMoves(p *position.Position, ml *moveslice.MoveSlice) {
	pseudo := moveslice.NewMoveList()
	GeneratePseudoLegalMoves(p, pseudo)
	ml.Clear()
	pseudo.ForEach(func(i int) {
		m := pseudo.At(i)
		if p.MakeMove(m, position.AllMoves) {
			p.UnmakeMove()
			ml.PushBack(m)
		}
	})
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full move list.
func HasLegalMove(p *position.Position) bool {
	pseudo := moveslice.NewMoveList()
	GeneratePseudoLegalMoves(p, pseudo)
	found := false
	for i := 0; i < pseudo.Len() && !found; i++ {
		m := pseudo.At(i)
		if p.MakeMove(m, position.AllMoves) {
			p.UnmakeMove()
			found = true
		}
	}
	return found
}

// generatePawnMoves emits quiet pushes, double pushes, promotions,
// captures and en passant captures for the side to move's pawns.
func generatePawnMoves(p *position.Position, ml *moveslice.MoveSlice) {
	side := p.SideToMove()
	myPawns := p.PiecesBb(side, Pawn)
	emptySq := ^p.Occupied(All)
	enemySq := p.Occupied(side.Flip())
	pushDir := side.PawnPushDirection()
	backDir := -pushDir

	// quiet single pushes, split into promoting and non-promoting targets
	singlePush := ShiftBitboard(myPawns, pushDir) & emptySq
	promoPush := singlePush & backRankBb(side)
	quietPush := singlePush &^ promoPush

	for promoPush != 0 {
		to := promoPush.PopLsb()
		from := to.To(backDir)
		pushPromotions(from, to, side, false, ml)
	}
	for quietPush != 0 {
		to := quietPush.PopLsb()
		from := to.To(backDir)
		ml.PushBack(CreateMove(from, to, side, Pawn))
	}

	// double pushes from the start rank, blocked if either hop is occupied
	startRankPawns := myPawns & side.PawnStartRankBb()
	oneAhead := ShiftBitboard(startRankPawns, pushDir) & emptySq
	twoAhead := ShiftBitboard(oneAhead, pushDir) & emptySq
	for twoAhead != 0 {
		to := twoAhead.PopLsb()
		from := to.To(backDir).To(backDir)
		ml.PushBack(CreateDoublePawnPush(from, to, side))
	}

	// captures and en passant, source square at a time via the forward
	// pawn attack table of the side to move.
	sources := myPawns
	epBb := BbZero
	if ep := p.EnPassantSquare(); ep != SqNone {
		epBb = ep.Bb()
	}
	for sources != 0 {
		from := sources.PopLsb()
		reach := attacks.PawnAttacks(side, from)

		captures := reach & enemySq
		promoting := from.RankOf() == promotionSourceRank(side)
		for captures != 0 {
			to := captures.PopLsb()
			if promoting {
				pushPromotions(from, to, side, true, ml)
			} else {
				ml.PushBack(CreateCapture(from, to, side, Pawn))
			}
		}

		if reach&epBb != 0 {
			to := (reach & epBb).Lsb()
			ml.PushBack(CreateEnPassant(from, to, side))
		}
	}
}

// pushPromotions emits the four promotion choices (queen first) for a
// pawn moving from 'from' to 'to', optionally as a capture.
func pushPromotions(from, to Square, side Color, capture bool, ml *moveslice.MoveSlice) {
	ml.PushBack(CreatePromotion(from, to, side, Queen, capture))
	ml.PushBack(CreatePromotion(from, to, side, Rook, capture))
	ml.PushBack(CreatePromotion(from, to, side, Bishop, capture))
	ml.PushBack(CreatePromotion(from, to, side, Knight, capture))
}

// promotionSourceRank returns the rank a pawn of side promotes FROM,
// i.e. the one immediately before the back rank.
func promotionSourceRank(side Color) Rank {
	if side == White {
		return Rank7
	}
	return Rank2
}

// backRankBb returns the rank a pawn of side promotes ON, i.e. the
// opponent's home rank.
func backRankBb(side Color) Bitboard {
	if side == White {
		return Rank8_Bb
	}
	return Rank1_Bb
}

// generateOfficerMoves emits quiet and capturing moves for every piece of
// kind pt belonging to the side to move, using the magic attack tables.
func generateOfficerMoves(p *position.Position, pt PieceType, ml *moveslice.MoveSlice) {
	side := p.SideToMove()
	occAll := p.Occupied(All)
	own := p.Occupied(side)
	enemy := p.Occupied(side.Flip())

	pieces := p.PiecesBb(side, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := attacksOf(pt, from, occAll) &^ own
		for targets != 0 {
			to := targets.PopLsb()
			if enemy.Has(to) {
				ml.PushBack(CreateCapture(from, to, side, pt))
			} else {
				ml.PushBack(CreateMove(from, to, side, pt))
			}
		}
	}
}

func attacksOf(pt PieceType, sq Square, occAll Bitboard) Bitboard {
	switch pt {
	case Knight:
		return attacks.KnightAttacks(sq)
	case Bishop:
		return attacks.BishopAttacks(sq, occAll)
	case Rook:
		return attacks.RookAttacks(sq, occAll)
	case Queen:
		return attacks.QueenAttacks(sq, occAll)
	default:
		panic("movegen: attacksOf called with non-slider, non-knight piece type")
	}
}

// generateKingMoves emits the king's quiet and capturing step moves.
// Castling is handled separately by generateCastling.
func generateKingMoves(p *position.Position, ml *moveslice.MoveSlice) {
	side := p.SideToMove()
	from := p.KingSquare(side)
	if from == SqNone {
		return
	}
	own := p.Occupied(side)
	enemy := p.Occupied(side.Flip())

	targets := attacks.KingAttacks(from) &^ own
	for targets != 0 {
		to := targets.PopLsb()
		if enemy.Has(to) {
			ml.PushBack(CreateCapture(from, to, side, King))
		} else {
			ml.PushBack(CreateMove(from, to, side, King))
		}
	}
}

// generateCastling emits the up-to-two castling moves available to the
// side to move. Beyond the source's own preconditions (rights held,
// squares between king and rook empty, king's start and transit square
// not attacked) this also requires the king not be currently in check -
// the source omits that check and relies on coincidence with the
// transit-square test, which does not generally hold.
func generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	side := p.SideToMove()
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occAll := p.Occupied(All)
	opp := side.Flip()

	var kingFrom, kingsideTo, queensideTo Square
	var kingsideRight, queensideRight CastlingRights
	var kingsideEmpty, queensideEmpty Bitboard
	var kingsideTransit, queensideTransit Square

	if side == White {
		kingFrom, kingsideTo, queensideTo = SqE1, SqG1, SqC1
		kingsideRight, queensideRight = CastlingWhiteOO, CastlingWhiteOOO
		kingsideEmpty = SqF1.Bb() | SqG1.Bb()
		queensideEmpty = SqD1.Bb() | SqC1.Bb() | SqB1.Bb()
		kingsideTransit = SqF1
		queensideTransit = SqD1
	} else {
		kingFrom, kingsideTo, queensideTo = SqE8, SqG8, SqC8
		kingsideRight, queensideRight = CastlingBlackOO, CastlingBlackOOO
		kingsideEmpty = SqF8.Bb() | SqG8.Bb()
		queensideEmpty = SqD8.Bb() | SqC8.Bb() | SqB8.Bb()
		kingsideTransit = SqF8
		queensideTransit = SqD8
	}

	if p.IsSquareAttacked(kingFrom, opp) {
		return
	}

	if cr.Has(kingsideRight) && occAll&kingsideEmpty == 0 && !p.IsSquareAttacked(kingsideTransit, opp) {
		ml.PushBack(CreateCastling(kingFrom, kingsideTo, side))
	}
	if cr.Has(queensideRight) && occAll&queensideEmpty == 0 && !p.IsSquareAttacked(queensideTransit, opp) {
		ml.PushBack(CreateCastling(kingFrom, queensideTo, side))
	}
}
