package state

import "testing"

func TestSeedSelectsFirstRow(t *testing.T) {
	var c Cursor
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selection before seeding")
	}
	c.Seed(3)
	idx, ok := c.Selected()
	if !ok || idx != 0 {
		t.Fatalf("expected selection at 0, got %d (selected=%v)", idx, ok)
	}
	c.Down(3)
	c.Seed(3)
	if idx, _ := c.Selected(); idx != 1 {
		t.Fatalf("expected seed to keep existing selection, got %d", idx)
	}
}

func TestSeedEmptyListDoesNothing(t *testing.T) {
	var c Cursor
	c.Seed(0)
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selection for empty list")
	}
}

func TestDownWrapsAfterFullCycle(t *testing.T) {
	var c Cursor
	c.Seed(4)
	for i := 0; i < 4; i++ {
		c.Down(4)
	}
	idx, ok := c.Selected()
	if !ok || idx != 0 {
		t.Fatalf("expected cursor back at 0 after full cycle, got %d", idx)
	}
}

func TestUpFromTopWrapsToBottom(t *testing.T) {
	var c Cursor
	c.Seed(5)
	c.Up(5)
	idx, _ := c.Selected()
	if idx != 4 {
		t.Fatalf("expected wrap to 4, got %d", idx)
	}
	c.Down(5)
	if idx, _ := c.Selected(); idx != 0 {
		t.Fatalf("expected wrap back to 0, got %d", idx)
	}
}

func TestTwoRowListMovement(t *testing.T) {
	var c Cursor
	c.Seed(2)
	c.Down(2)
	if idx, _ := c.Selected(); idx != 1 {
		t.Fatalf("expected cursor at 1, got %d", idx)
	}
	c.Down(2)
	if idx, _ := c.Selected(); idx != 0 {
		t.Fatalf("expected wrap to 0 from last row, got %d", idx)
	}
	c.Up(2)
	if idx, _ := c.Selected(); idx != 1 {
		t.Fatalf("expected wrap to 1 from first row, got %d", idx)
	}
}

func TestEmptyListNeverPanics(t *testing.T) {
	var c Cursor
	c.Seed(1)
	c.Down(0)
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected selection cleared on empty list")
	}
	c.Seed(1)
	c.Up(0)
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected selection cleared on empty list")
	}
	c.AdvanceAfterRemoval(0)
	c.Clamp(0)
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selection after empty-list operations")
	}
}

func TestAdvanceAfterRemoval(t *testing.T) {
	var c Cursor
	c.Seed(3)
	c.Down(3) // index 1
	c.AdvanceAfterRemoval(2)
	idx, _ := c.Selected()
	if idx != 0 {
		t.Fatalf("expected wrap to top after deleting past-end row, got %d", idx)
	}

	c.AdvanceAfterRemoval(2)
	if idx, _ := c.Selected(); idx != 1 {
		t.Fatalf("expected advance to next row, got %d", idx)
	}

	c.AdvanceAfterRemoval(0)
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selection after last row deleted")
	}
}

func TestClampAfterShrink(t *testing.T) {
	var c Cursor
	c.Seed(5)
	for i := 0; i < 4; i++ {
		c.Down(5)
	}
	c.Clamp(2)
	idx, _ := c.Selected()
	if idx != 1 {
		t.Fatalf("expected clamp to 1, got %d", idx)
	}
	c.Clamp(2)
	if idx, _ := c.Selected(); idx != 1 {
		t.Fatalf("expected clamp to be idempotent, got %d", idx)
	}
}
