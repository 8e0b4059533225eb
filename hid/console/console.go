// Package console implements the text console: a scanning cursor over the
// memory-mapped character grid.
package console

import "vgahid/hal"

const (
	row = hal.CellsPerRow

	// Blank is the cell written by erase operations.
	Blank uint16 = ' ' | 0x8F00

	// Attr is the attribute applied to ordinary characters.
	Attr uint16 = 0x0F00
)

// Config selects the console region inside the cell buffer.
type Config struct {
	Start    int // first console cell, rounded down to a row boundary
	Capacity int // one past the last console cell
}

// DefaultConfig is the region below the status bar.
func DefaultConfig() Config {
	return Config{Start: hal.GridStart, Capacity: hal.GridCells}
}

// Console owns the cursor and writes through to the cell buffer and the
// hardware cursor registers. It is not safe for concurrent use.
type Console struct {
	cells hal.CellBuffer
	regs  hal.Regs

	start    int
	capacity int
	cursor   int
}

// New creates a console over d. A zero Capacity means the whole grid. The
// region is clipped to the device's cell buffer and spans at least one row.
func New(d hal.Display, cfg Config) *Console {
	def := DefaultConfig()
	if cfg.Capacity <= 0 {
		cfg.Capacity = def.Capacity
	}
	if n := d.Cells().Len(); cfg.Capacity > n {
		cfg.Capacity = n
	}
	cfg.Capacity &^= row - 1
	if cfg.Start < 0 {
		cfg.Start = 0
	}
	cfg.Start &^= row - 1
	if cfg.Start > cfg.Capacity-row {
		cfg.Start = max(cfg.Capacity-row, 0)
	}

	c := &Console{
		cells:    d.Cells(),
		regs:     d.Regs(),
		start:    cfg.Start,
		capacity: cfg.Capacity,
	}
	c.cursor = c.start
	return c
}

// Reset moves the cursor to the first console cell without touching the
// grid or the cursor registers.
func (c *Console) Reset() { c.cursor = c.start }

// Cursor returns the current cell offset.
func (c *Console) Cursor() int { return c.cursor }

// Start returns the first console cell.
func (c *Console) Start() int { return c.start }

// Capacity returns one past the last console cell.
func (c *Console) Capacity() int { return c.capacity }

// PutChar advances the console by one byte. Afterwards the hardware cursor
// registers match the new cursor.
func (c *Console) PutChar(ch byte) {
	switch ch {
	case 8, 127:
		if c.cursor&(row-1) != 0 {
			c.cursor--
			c.cells.Store(c.cursor, Blank)
		}
	case '\r':
		c.cursor &^= row - 1
	case '\n':
		lim := (c.cursor | (row - 1)) + 1
		for c.cursor < lim {
			c.cells.Store(c.cursor, Blank)
			c.cursor++
		}
	default:
		c.cells.Store(c.cursor, uint16(ch)|Attr)
		c.cursor++
	}

	if c.cursor >= c.capacity {
		c.scroll()
	}

	c.regs.Store(hal.RegXCur, uint64(c.cursor&(row-1)))
	c.regs.Store(hal.RegYCur, uint64(c.cursor/row))
}

// Write implements io.Writer over PutChar.
func (c *Console) Write(p []byte) (int, error) {
	for _, b := range p {
		c.PutChar(b)
	}
	return len(p), nil
}

// scroll shifts the console region up one row and blanks the last row.
func (c *Console) scroll() {
	last := c.capacity - row
	for i := c.start; i < c.capacity; i++ {
		if i < last {
			c.cells.Store(i, c.cells.Load(i+row))
		} else {
			c.cells.Store(i, Blank)
		}
	}
	c.cursor = last
}
