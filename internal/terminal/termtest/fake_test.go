package termtest

import (
	"context"
	"errors"
	"io"
	"testing"
)

func TestFakeInterpretsCursorMoves(t *testing.T) {
	f := New(10, 4)

	f.Write([]byte("\x1b[2;3Hab\x1b[38;5;2mc\x1b[0m"))
	if got := f.Row(1); got != "  abc     " {
		t.Errorf("Row(1) = %q", got)
	}
	if f.Printed != 3 {
		t.Errorf("Printed = %d, expected 3", f.Printed)
	}

	f.Write([]byte("\x1b[2J\x1b[H"))
	if f.Contains("abc") {
		t.Error("clear should blank the grid")
	}
	if f.Clears != 1 {
		t.Errorf("Clears = %d, expected 1", f.Clears)
	}
}

func TestFakeSplitSequence(t *testing.T) {
	f := New(10, 2)

	f.Write([]byte("\x1b[1;"))
	f.Write([]byte("5Hx"))
	if got := f.Cell(4, 0); got != 'x' {
		t.Errorf("Cell(4, 0) = %q, expected 'x'", got)
	}
}

func TestFakeWideRunes(t *testing.T) {
	f := New(6, 1)

	f.Write([]byte("🐍a"))
	if got := f.Cell(0, 0); got != '🐍' {
		t.Errorf("Cell(0, 0) = %q", got)
	}
	if got := f.Cell(1, 0); got != 0 {
		t.Errorf("right half of a wide rune = %q, expected 0", got)
	}
	if got := f.Cell(2, 0); got != 'a' {
		t.Errorf("Cell(2, 0) = %q, expected 'a'", got)
	}
}

func TestFakeInput(t *testing.T) {
	f := New(1, 1)
	f.Feed("ab")

	if !f.KeyAvailable() {
		t.Fatal("KeyAvailable() should be true after Feed")
	}
	if b, ok := f.ReadKey(); !ok || b != 'a' {
		t.Errorf("ReadKey() = %q, %v", b, ok)
	}
	if b, err := f.WaitKey(context.Background()); err != nil || b != 'b' {
		t.Errorf("WaitKey() = %q, %v", b, err)
	}
	if _, err := f.WaitKey(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("WaitKey() on empty queue = %v, expected io.EOF", err)
	}
}

func TestFakeScript(t *testing.T) {
	f := New(1, 1)
	f.Script("x", "yz")

	if f.KeyAvailable() {
		t.Error("scripted presses should not be visible to polling")
	}
	if b, _ := f.WaitKey(context.Background()); b != 'x' {
		t.Errorf("WaitKey() = %q, expected 'x'", b)
	}
	if f.KeyAvailable() {
		t.Error("only one press should be released per WaitKey")
	}
	if b, _ := f.WaitKey(context.Background()); b != 'y' {
		t.Errorf("WaitKey() = %q, expected 'y'", b)
	}
	if b, ok := f.ReadKey(); !ok || b != 'z' {
		t.Errorf("rest of a press should be queued, got %q, %v", b, ok)
	}
}
