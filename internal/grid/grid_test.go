package grid

import (
	"strings"
	"testing"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestLoadReaderTrivial(t *testing.T) {
	const level = "#####\n#@$.#\n#####\n"
	g, err := LoadReader(stringsReader(level))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("got dims (%d,%d), want (3,5)", g.Rows(), g.Cols())
	}
	pos, ok := g.LocatePlayer()
	if !ok || pos != (Pos{1, 1}) {
		t.Fatalf("player at %v, ok=%v", pos, ok)
	}
	if !g.IsBox(1, 2) {
		t.Fatalf("expected box at (1,2)")
	}
	if !g.IsGoal(1, 3) {
		t.Fatalf("expected goal at (1,3)")
	}
}

func TestLoadReaderRejectsUnknownChar(t *testing.T) {
	const level = "#####\n#@$?#\n#####\n"
	if _, err := LoadReader(stringsReader(level)); err == nil {
		t.Fatalf("expected BadLevelFormatError")
	} else if _, ok := err.(*BadLevelFormatError); !ok {
		t.Fatalf("expected *BadLevelFormatError, got %T", err)
	}
}

func TestLoadReaderRejectsMissingPlayer(t *testing.T) {
	const level = "#####\n#.$.#\n#####\n"
	if _, err := LoadReader(stringsReader(level)); err == nil {
		t.Fatalf("expected error for missing player")
	}
}

func TestLoadReaderRejectsBoxGoalMismatch(t *testing.T) {
	const level = "######\n#@$$.#\n######\n"
	if _, err := LoadReader(stringsReader(level)); err == nil {
		t.Fatalf("expected error for box/goal count mismatch")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	const level = "#####\n#@$.#\n#####\n"
	g, err := LoadReader(stringsReader(level))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clone := g.Clone()
	clone.Set(1, 1, Space)
	if g.Get(1, 1) != Player {
		t.Fatalf("mutating clone affected original")
	}
}
