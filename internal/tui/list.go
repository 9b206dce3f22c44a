// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// listCursor tracks the selected row of a list that can change size under it.
type listCursor struct {
	idx int
}

func (c *listCursor) up() {
	if c.idx > 0 {
		c.idx--
	}
}

func (c *listCursor) down(n int) {
	if c.idx < n-1 {
		c.idx++
	}
}

// clamp keeps the cursor inside a list of n rows.
func (c *listCursor) clamp(n int) {
	if c.idx >= n {
		c.idx = n - 1
	}
	if c.idx < 0 {
		c.idx = 0
	}
}

// pick returns the selected element of items.
func pick[T any](c listCursor, items []T) (T, bool) {
	if c.idx < 0 || c.idx >= len(items) {
		var zero T
		return zero, false
	}
	return items[c.idx], true
}
