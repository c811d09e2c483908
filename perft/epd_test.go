package perft_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/UnkindPartition/chessIO/perft"
)

const suiteText = `rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - ;D1 20 ;D2 400
8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - ;D1 14 ;D2 191

r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - ;D1 48
`

func writeSuite(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}
	return path
}

func TestParseSuite(t *testing.T) {
	cases, err := perft.ParseSuite(writeSuite(t, "suite.epd", suiteText))
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}

	if len(cases) != 3 {
		t.Fatalf("%d cases, want 3", len(cases))
	}
	if len(cases[0].Asserts) != 2 {
		t.Errorf("%d assertions in first case, want 2", len(cases[0].Asserts))
	}
	if a := cases[0].Asserts[1]; a.Depth != 2 || a.Nodes != 400 {
		t.Errorf("second assertion = D%d %d, want D2 400", a.Depth, a.Nodes)
	}
	if cases[2].Position.SideToMove().String() != "White" {
		t.Errorf("unexpected side to move in third case")
	}
}

func TestParseSuiteZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.epd.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		t.Fatalf("create zstd encoder: %v", err)
	}
	if _, err := enc.Write([]byte(suiteText)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	cases, err := perft.ParseSuite(path)
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}
	if len(cases) != 3 {
		t.Errorf("%d cases, want 3", len(cases))
	}
}

func TestParseSuiteErrors(t *testing.T) {
	bad := []string{
		"not a fen ;D1 20",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - ;X1 20",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - ;D1 twenty",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - ;D1 20 30",
	}
	for _, line := range bad {
		if _, err := perft.ParseSuite(writeSuite(t, "bad.epd", line+"\n")); err == nil {
			t.Errorf("ParseSuite(%q) should fail", line)
		}
	}
}

func TestRunSuite(t *testing.T) {
	cases, err := perft.ParseSuite(writeSuite(t, "suite.epd", suiteText))
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}

	var outcomes []perft.Outcome
	res := perft.RunSuite(cases, func(o perft.Outcome) {
		outcomes = append(outcomes, o)
	})

	if res.Failed {
		t.Fatal("suite should pass")
	}
	if res.Passed != 5 {
		t.Errorf("passed = %d, want 5", res.Passed)
	}
	if len(outcomes) != 5 {
		t.Errorf("%d outcomes reported, want 5", len(outcomes))
	}
	for _, o := range outcomes {
		if !o.OK {
			t.Errorf("unexpected failure: %s D%d", o.Case.FEN, o.Assert.Depth)
		}
	}
	if res.Nodes == 0 || res.NPS() <= 0 {
		t.Errorf("throughput not recorded: nodes=%d nps=%f", res.Nodes, res.NPS())
	}
}

// The first wrong count stops the run; later assertions are never evaluated.
func TestRunSuiteShortCircuits(t *testing.T) {
	failing := `rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - ;D1 20 ;D2 999 ;D3 8902
8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - ;D1 14
`
	cases, err := perft.ParseSuite(writeSuite(t, "failing.epd", failing))
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}

	var outcomes []perft.Outcome
	res := perft.RunSuite(cases, func(o perft.Outcome) {
		outcomes = append(outcomes, o)
	})

	if !res.Failed {
		t.Fatal("suite should fail")
	}
	if res.Passed != 1 {
		t.Errorf("passed = %d, want 1", res.Passed)
	}
	if len(outcomes) != 2 {
		t.Fatalf("%d outcomes reported, want 2", len(outcomes))
	}
	last := outcomes[len(outcomes)-1]
	if last.OK || last.Assert.Nodes != 999 || last.Actual != 400 {
		t.Errorf("failing outcome = %+v", last)
	}
}
