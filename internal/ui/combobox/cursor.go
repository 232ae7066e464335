package combobox

// ArrowDown advances the highlight, wrapping past the end. On a closed menu
// it opens and highlights the first item.
func (c *Controller) ArrowDown() bool {
	before := c.State()
	n := len(c.items)
	switch {
	case !c.open:
		c.open = true
		c.highlighted = -1
		if n > 0 {
			c.highlighted = 0
		}
	case n == 0:
		return false
	case c.highlighted < 0 || c.highlighted >= n-1:
		c.highlighted = 0
	default:
		c.highlighted++
	}
	c.EnsureHighlightVisible()
	return c.commit(before)
}

// ArrowUp moves the highlight back, wrapping to the last item. On a closed
// menu it opens and highlights the last item.
func (c *Controller) ArrowUp() bool {
	before := c.State()
	n := len(c.items)
	switch {
	case !c.open:
		c.open = true
		c.highlighted = n - 1
	case n == 0:
		return false
	case c.highlighted <= 0:
		c.highlighted = n - 1
	default:
		c.highlighted--
	}
	c.EnsureHighlightVisible()
	return c.commit(before)
}

// HighlightFirst highlights the first filtered item of an open menu.
func (c *Controller) HighlightFirst() bool {
	return c.highlightAt(0)
}

// HighlightLast highlights the last filtered item of an open menu.
func (c *Controller) HighlightLast() bool {
	return c.highlightAt(len(c.items) - 1)
}

// HighlightIndex highlights the filtered item at index, as hovering does.
func (c *Controller) HighlightIndex(index int) bool {
	return c.highlightAt(index)
}

func (c *Controller) highlightAt(index int) bool {
	if !c.open || index < 0 || index >= len(c.items) {
		return false
	}
	before := c.State()
	c.highlighted = index
	c.EnsureHighlightVisible()
	return c.commit(before)
}

// PageUp moves the highlight back by one page, stopping at the first item.
func (c *Controller) PageUp() bool {
	return c.moveHighlightBy(-c.pageStep())
}

// PageDown moves the highlight forward by one page, stopping at the last item.
func (c *Controller) PageDown() bool {
	return c.moveHighlightBy(c.pageStep())
}

func (c *Controller) moveHighlightBy(delta int) bool {
	n := len(c.items)
	if !c.open || n == 0 {
		return false
	}
	before := c.State()
	next := c.highlighted
	if next < 0 {
		next = 0
	}
	next += delta
	if next < 0 {
		next = 0
	}
	if next >= n {
		next = n - 1
	}
	c.highlighted = next
	c.EnsureHighlightVisible()
	return c.commit(before)
}

func (c *Controller) pageStep() int {
	total := len(c.items)
	if total == 0 {
		return 0
	}
	size := c.pageSize
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// ViewportOffset returns the index of the first visible filtered item.
func (c *Controller) ViewportOffset() int {
	return c.viewportOffset
}

// VisibleRange returns the half-open range of filtered indexes to draw.
func (c *Controller) VisibleRange() (start, end int) {
	n := len(c.items)
	if c.pageSize <= 0 || n <= c.pageSize {
		return 0, n
	}
	start = c.viewportOffset
	if start < 0 {
		start = 0
	}
	if start+c.pageSize > n {
		start = n - c.pageSize
	}
	return start, start + c.pageSize
}

// EnsureHighlightVisible adjusts the viewport offset so the highlighted
// row stays inside the visible page.
func (c *Controller) EnsureHighlightVisible() {
	n := len(c.items)
	if n == 0 || c.pageSize <= 0 {
		c.viewportOffset = 0
		return
	}
	maxOffset := n - c.pageSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.viewportOffset > maxOffset {
		c.viewportOffset = maxOffset
	}
	if c.viewportOffset < 0 {
		c.viewportOffset = 0
	}
	if c.highlighted < 0 {
		return
	}
	if c.highlighted < c.viewportOffset {
		c.viewportOffset = c.highlighted
	}
	if upper := c.viewportOffset + c.pageSize - 1; c.highlighted > upper {
		c.viewportOffset = c.highlighted - c.pageSize + 1
		if c.viewportOffset > maxOffset {
			c.viewportOffset = maxOffset
		}
	}
}

// SetPageSize changes the number of rows visible at once.
func (c *Controller) SetPageSize(n int) {
	if n < 0 {
		n = 0
	}
	c.pageSize = n
	c.EnsureHighlightVisible()
}
