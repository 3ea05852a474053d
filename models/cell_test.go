package models

import "testing"

func TestCycleIsThreeStep(t *testing.T) {
	c := &Cell{}
	want := []FlagState{FlagFlagged, FlagUnsure, FlagNone}

	for i, w := range want {
		if !c.Cycle() {
			t.Fatalf("cycle %d refused on a closed cell", i+1)
		}
		if c.Flag != w {
			t.Fatalf("after cycle %d flag = %v, want %v", i+1, c.Flag, w)
		}
	}
}

func TestCycleRefusedOnOpenCell(t *testing.T) {
	c := &Cell{IsOpen: true}

	if c.Cycle() {
		t.Fatalf("Cycle() succeeded on an open cell")
	}
	if c.Flag != FlagNone {
		t.Fatalf("open cell flag changed to %v", c.Flag)
	}
}

func TestIsMarked(t *testing.T) {
	cases := map[FlagState]bool{
		FlagNone:    false,
		FlagFlagged: true,
		FlagUnsure:  true,
	}
	for flag, want := range cases {
		c := &Cell{Flag: flag}
		if got := c.IsMarked(); got != want {
			t.Errorf("IsMarked() with %v = %v, want %v", flag, got, want)
		}
	}
}
