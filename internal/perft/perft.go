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

// Package perft counts leaf nodes of the move generation tree to a given
// ply, exercising move generation and make/unmake together.
package perft

import (
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/magicperft/internal/logging"
	"github.com/frankkopp/magicperft/internal/movegen"
	"github.com/frankkopp/magicperft/internal/moveslice"
	"github.com/frankkopp/magicperft/internal/position"
	. "github.com/frankkopp/magicperft/internal/types"
)

var out = message.NewPrinter(language.German)

// Result holds the node count from a perft run, broken down by the kind
// of move played on the final ply.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft runs perft to depth starting from fen and returns the breakdown.
// A non-positive depth is treated as 1.
func Perft(fen string, depth int) (Result, error) {
	if depth <= 0 {
		depth = 1
	}
	p, err := position.NewPositionFen(fen)
	if err != nil {
		return Result{}, err
	}
	var r Result
	ml := make([]*moveslice.MoveSlice, depth+1)
	for i := range ml {
		ml[i] = moveslice.NewMoveList()
	}
	r.Nodes = search(depth, p, ml, &r)
	return r, nil
}

// search is the recursive node counter described by the perft algorithm:
// generate, make, recurse (or count), unmake. depth's move list is reused
// across sibling calls at the same ply to avoid per-node allocation.
func search(depth int, p *position.Position, ml []*moveslice.MoveSlice, r *Result) uint64 {
	moves := ml[depth]
	movegen.GeneratePseudoLegalMoves(p, moves)

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if depth > 1 {
			if p.MakeMove(m, position.AllMoves) {
				nodes += search(depth-1, p, ml, r)
				p.UnmakeMove()
			}
			continue
		}
		capture := m.IsCapture()
		enPassant := m.IsEnPassant()
		castle := m.IsCastling()
		promotion := m.IsPromotion()
		if p.MakeMove(m, position.AllMoves) {
			nodes++
			if capture {
				r.Captures++
			}
			if enPassant {
				r.EnPassant++
			}
			if castle {
				r.Castles++
			}
			if promotion {
				r.Promotions++
			}
			if p.InCheck() {
				r.Checks++
			}
			p.UnmakeMove()
		}
	}
	return nodes
}

// ParallelPerft runs perft the same way as Perft, but fans the root moves
// out across goroutines, one worker per root move. Per-worker isolation
// follows the copy-make strategy: each worker parses its own Position from
// fen and replays only its own root move before recursing, rather than
// sharing the mutable Position make/unmake stack is built on. Only the
// total node count is aggregated; per-move-type breakdowns are not, since
// the breakdown is only ever recorded on the final ply and summing it
// across workers would require a mutex for no benefit this driver needs.
func ParallelPerft(fen string, depth int) (uint64, error) {
	if depth <= 0 {
		depth = 1
	}
	root, err := position.NewPositionFen(fen)
	if err != nil {
		return 0, err
	}
	rootMoves := moveslice.NewMoveList()
	movegen.GeneratePseudoLegalMoves(root, rootMoves)

	var g errgroup.Group
	totals := make([]uint64, rootMoves.Len())
	for i := 0; i < rootMoves.Len(); i++ {
		i, m := i, rootMoves.At(i)
		g.Go(func() error {
			p, err := position.NewPositionFen(fen)
			if err != nil {
				return err
			}
			if !p.MakeMove(m, position.AllMoves) {
				return nil
			}
			if depth == 1 {
				totals[i] = 1
				return nil
			}
			ml := make([]*moveslice.MoveSlice, depth)
			for j := range ml {
				ml[j] = moveslice.NewMoveList()
			}
			var r Result
			totals[i] = search(depth-1, p, ml, &r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, n := range totals {
		nodes += n
	}
	return nodes, nil
}

// Run executes Perft and logs a formatted report, German-locale grouped
// numbers and all, the way a command-line perft driver would.
func Run(fen string, depth int) (Result, error) {
	log := logging.Default()
	log.Infof("Performing PERFT Test for Depth %d", depth)
	log.Infof("FEN: %s", fen)

	start := time.Now()
	r, err := Perft(fen, depth)
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	nps := uint64(0)
	if elapsed.Nanoseconds() > 0 {
		nps = (r.Nodes * uint64(time.Second.Nanoseconds())) / uint64(elapsed.Nanoseconds())
	}

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", nps)
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", r.Nodes)
	out.Printf("   Captures  : %d\n", r.Captures)
	out.Printf("   EnPassant : %d\n", r.EnPassant)
	out.Printf("   Castles   : %d\n", r.Castles)
	out.Printf("   Promotions: %d\n", r.Promotions)
	out.Printf("   Checks    : %d\n", r.Checks)
	return r, nil
}
