package playfield

// rowFull reports whether every visible column of allocated row y is Locked.
func (g *Grid) rowFull(y int) bool {
	locked := 0
	for x := g.Left(); x < g.Left()+g.width; x++ {
		if g.At(x, y) == Locked {
			locked++
		}
	}
	return locked == g.width
}

// FullRows scans allocated rows top through bottom, clipped to the visible
// area, and returns the full ones in top-down order.
func (g *Grid) FullRows(top, bottom int) []int {
	top = max(top, g.Top())
	bottom = min(bottom, g.Bottom())

	var full []int
	for y := top; y <= bottom; y++ {
		if g.rowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// Collapse removes every full visible row and compacts the rows above it
// downward, preserving their order. Rows left vacant at the top become
// Empty. It returns the number of rows removed.
func (g *Grid) Collapse() int {
	write := g.Bottom()
	for src := g.Bottom(); src >= g.Top(); src-- {
		if g.rowFull(src) {
			continue
		}
		if write != src {
			g.copyRow(src, write)
		}
		write--
	}

	removed := write - g.Top() + 1
	for y := g.Top(); y <= write; y++ {
		for x := g.Left(); x < g.Left()+g.width; x++ {
			g.Set(x, y, Empty)
		}
	}
	return removed
}

// copyRow copies the visible columns of row src over row dst.
func (g *Grid) copyRow(src, dst int) {
	from := g.index(g.Left(), src)
	to := g.index(g.Left(), dst)
	copy(g.cells[to:to+g.width], g.cells[from:from+g.width])
}
