package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/UnkindPartition/chessIO/board"
	"github.com/UnkindPartition/chessIO/internal/cache"
	"github.com/UnkindPartition/chessIO/internal/logx"
	"github.com/UnkindPartition/chessIO/perft"
)

func main() {
	defaultSuite := "perftsuite.epd"
	if env := os.Getenv("CHESSIO_PERFT_SUITE"); env != "" {
		defaultSuite = env
	}

	var (
		suitePath = flag.String("suite", defaultSuite, "EPD perft suite (supports .zst); run as test suite when present")
		fen       = flag.String("fen", board.StartFEN, "Position for benchmark mode")
		maxDepth  = flag.Int("depth", 6, "Maximum depth for benchmark mode")
		divide    = flag.Bool("divide", false, "Print per-root-ply node counts at the maximum depth")
		cacheDir  = flag.String("cache", "", "BadgerDB directory for persisted node counts (benchmark mode)")
	)
	flag.Parse()

	logger := logx.NewLogger()

	if _, err := os.Stat(*suitePath); err == nil {
		runSuite(logger, *suitePath)
		return
	}

	runBench(logger, *fen, *maxDepth, *divide, *cacheDir)
}

// runSuite checks every assertion in the EPD suite and exits non-zero on
// the first mismatch.
func runSuite(logger zerolog.Logger, path string) {
	cases, err := perft.ParseSuite(path)
	if err != nil {
		logger.Fatal().Err(err).Str("suite", path).Msg("parse perft suite")
	}
	logger.Info().Str("suite", path).Int("cases", len(cases)).Msg("running perft suite")

	res := perft.RunSuite(cases, func(o perft.Outcome) {
		if o.OK {
			logger.Info().
				Str("fen", o.Case.FEN).
				Int("depth", o.Assert.Depth).
				Uint64("nodes", o.Actual).
				Msg("OK")
			return
		}
		logger.Error().
			Str("fen", o.Case.FEN).
			Int("depth", o.Assert.Depth).
			Uint64("expected", o.Assert.Nodes).
			Uint64("actual", o.Actual).
			Msg("FAIL")
	})

	logger.Info().
		Int("passed", res.Passed).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", res.Elapsed).
		Float64("nps", res.NPS()).
		Msg("suite finished")

	if res.Failed {
		os.Exit(1)
	}
}

// runBench runs perft for depths 0..maxDepth on a single position,
// consulting the node cache when one is configured.
func runBench(logger zerolog.Logger, fen string, maxDepth int, divide bool, cacheDir string) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		logger.Fatal().Err(err).Str("fen", fen).Msg("parse FEN")
	}

	var store *cache.Cache
	if cacheDir != "" {
		store, err = cache.Open(cacheDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cacheDir).Msg("open node cache")
		}
		defer store.Close()
	}

	for depth := 0; depth <= maxDepth; depth++ {
		if store != nil {
			if nodes, ok, err := store.Get(fen, depth); err != nil {
				logger.Fatal().Err(err).Msg("read node cache")
			} else if ok {
				logger.Info().Int("depth", depth).Uint64("nodes", nodes).Msg("perft (cached)")
				continue
			}
		}

		start := time.Now()
		nodes := perft.Perft(pos, depth)
		elapsed := time.Since(start)

		nps := 0.0
		if secs := elapsed.Seconds(); secs > 0 {
			nps = float64(nodes) / secs
		}
		logger.Info().
			Int("depth", depth).
			Uint64("nodes", nodes).
			Dur("elapsed", elapsed).
			Float64("nps", nps).
			Msg("perft")

		if store != nil {
			if err := store.Put(fen, depth, nodes); err != nil {
				logger.Fatal().Err(err).Msg("write node cache")
			}
		}
	}

	if divide {
		for _, rc := range perft.Divide(pos, maxDepth) {
			logger.Info().Str("ply", rc.Ply.UCI()).Uint64("nodes", rc.Nodes).Msg("divide")
		}
	}
}
