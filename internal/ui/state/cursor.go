// Package state holds the selection state for the displayed lists.
package state

// Cursor tracks which row of a list is active. It starts with no selection;
// every movement takes the live row count so the index stays legal while the
// list changes underneath it. The UI model is the only owner.
type Cursor struct {
	index  int
	active bool
}

// Selected returns the active index, or false when nothing is selected.
func (c *Cursor) Selected() (int, bool) {
	if !c.active {
		return 0, false
	}
	return c.index, true
}

// Seed selects the first row if nothing is selected yet. No-op on an empty
// list.
func (c *Cursor) Seed(count int) {
	if c.active || count <= 0 {
		return
	}
	c.index = 0
	c.active = true
}

// Clear drops the selection.
func (c *Cursor) Clear() {
	c.index = 0
	c.active = false
}

// Down moves the selection one row down, wrapping from the last row to the
// first. No-op when nothing is selected; an empty list clears the selection.
func (c *Cursor) Down(count int) {
	if !c.active {
		return
	}
	if count <= 0 {
		c.Clear()
		return
	}
	if c.index >= count-1 {
		c.index = 0
	} else {
		c.index++
	}
}

// Up moves the selection one row up, wrapping from the first row to the
// last. No-op when nothing is selected; an empty list clears the selection.
func (c *Cursor) Up(count int) {
	if !c.active {
		return
	}
	if count <= 0 {
		c.Clear()
		return
	}
	if c.index > 0 {
		c.index--
	} else {
		c.index = count - 1
	}
}

// AdvanceAfterRemoval repositions the selection after the active row was
// deleted, given the new row count: past the end wraps to the top, otherwise
// the selection moves to the next row. An empty list clears the selection.
func (c *Cursor) AdvanceAfterRemoval(count int) {
	if !c.active {
		return
	}
	if count <= 0 {
		c.Clear()
		return
	}
	if c.index >= count-1 {
		c.index = 0
	} else {
		c.index++
	}
}

// Clamp pulls an out-of-range selection back to the last row after the list
// shrank. An empty list clears the selection.
func (c *Cursor) Clamp(count int) {
	if !c.active {
		return
	}
	if count <= 0 {
		c.Clear()
		return
	}
	if c.index >= count {
		c.index = count - 1
	}
}
