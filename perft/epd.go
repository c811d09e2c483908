package perft

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/UnkindPartition/chessIO/board"
)

// Assertion is one ";Dk n" claim: perft at Depth yields Nodes.
type Assertion struct {
	Depth int
	Nodes uint64
}

// Case is one EPD suite line: a position plus its perft assertions.
type Case struct {
	FEN      string
	Position board.Position
	Asserts  []Assertion
}

// ParseSuite reads an EPD perft suite. Files ending in .zst are
// decompressed transparently.
func ParseSuite(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	return readSuite(r)
}

func readSuite(r io.Reader) ([]Case, error) {
	var cases []Case

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// parseLine splits "<FEN> ;D1 n1 ;D2 n2 ..." into a Case.
func parseLine(line string) (Case, error) {
	parts := strings.Split(line, ";")
	fen := strings.TrimSpace(parts[0])

	pos, err := board.ParseFEN(fen)
	if err != nil {
		return Case{}, fmt.Errorf("bad FEN %q: %w", fen, err)
	}

	c := Case{FEN: fen, Position: pos}
	for _, chunk := range parts[1:] {
		fields := strings.Fields(chunk)
		if len(fields) != 2 || len(fields[0]) < 2 || fields[0][0] != 'D' {
			return Case{}, fmt.Errorf("bad assertion %q", chunk)
		}
		depth, err := strconv.Atoi(fields[0][1:])
		if err != nil || depth < 0 {
			return Case{}, fmt.Errorf("bad depth %q", fields[0])
		}
		nodes, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return Case{}, fmt.Errorf("bad node count %q", fields[1])
		}
		c.Asserts = append(c.Asserts, Assertion{Depth: depth, Nodes: nodes})
	}
	if len(c.Asserts) == 0 {
		return Case{}, fmt.Errorf("no perft assertions")
	}
	return c, nil
}

// Outcome reports one executed assertion to the suite's observer.
type Outcome struct {
	Case   Case
	Assert Assertion
	Actual uint64
	OK     bool
}

// Result summarizes a suite run.
type Result struct {
	Passed  int
	Failed  bool
	Nodes   uint64
	Elapsed time.Duration
}

// NPS returns the run's throughput in nodes per second.
func (r Result) NPS() float64 {
	secs := r.Elapsed.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(r.Nodes) / secs
}

// RunSuite executes assertions in order, reporting each through report, and
// stops at the first failure: one bad count means the generator is wrong
// and everything after it is noise.
func RunSuite(cases []Case, report func(Outcome)) Result {
	start := time.Now()
	var res Result

	for _, c := range cases {
		for _, a := range c.Asserts {
			actual := Perft(c.Position, a.Depth)
			res.Nodes += actual

			ok := actual == a.Nodes
			if report != nil {
				report(Outcome{Case: c, Assert: a, Actual: actual, OK: ok})
			}
			if !ok {
				res.Failed = true
				res.Elapsed = time.Since(start)
				return res
			}
			res.Passed++
		}
	}

	res.Elapsed = time.Since(start)
	return res
}
