// Package perft counts game-tree leaf nodes to validate and benchmark the
// move generator.
package perft

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/UnkindPartition/chessIO/board"
)

// parallelDepth is the depth from which root subtrees are fanned out to
// worker goroutines. Below it the per-subtree work is too small to pay for
// scheduling.
const parallelDepth = 4

// Perft returns the number of leaf nodes reachable from pos in exactly
// depth plies.
func Perft(pos board.Position, depth int) uint64 {
	if depth < parallelDepth {
		return sequential(pos, depth)
	}

	plies := pos.LegalPlies()
	results := make([]uint64, len(plies))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, ply := range plies {
		g.Go(func() error {
			results[i] = sequential(pos.Apply(ply), depth-1)
			return nil
		})
	}
	// Workers never return errors; Wait is only the join point.
	_ = g.Wait()

	var nodes uint64
	for _, n := range results {
		nodes += n
	}
	return nodes
}

func sequential(pos board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	plies := pos.LegalPlies()
	if depth == 1 {
		return uint64(len(plies))
	}

	var nodes uint64
	for _, ply := range plies {
		nodes += sequential(pos.Apply(ply), depth-1)
	}
	return nodes
}

// RootCount is the node count below a single root ply.
type RootCount struct {
	Ply   board.Ply
	Nodes uint64
}

// Divide returns per-root-ply node counts at the given depth, the standard
// tool for pinning down a generation discrepancy.
func Divide(pos board.Position, depth int) []RootCount {
	plies := pos.LegalPlies()
	counts := make([]RootCount, len(plies))

	if depth <= 1 {
		for i, ply := range plies {
			counts[i] = RootCount{Ply: ply, Nodes: 1}
		}
		return counts
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, ply := range plies {
		g.Go(func() error {
			counts[i] = RootCount{Ply: ply, Nodes: sequential(pos.Apply(ply), depth-1)}
			return nil
		})
	}
	_ = g.Wait()
	return counts
}
