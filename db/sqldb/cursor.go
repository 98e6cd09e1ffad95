package sqldb

import "fmt"

type CursorState uint8

const (
	CursorUnopened CursorState = iota // layout not read yet
	CursorOpen                        // layout read, rows may be pending
	CursorClosed                      // underlying Rows released
)

func (s CursorState) String() string {
	switch s {
	case CursorUnopened:
		return "unopened"
	case CursorOpen:
		return "open"
	case CursorClosed:
		return "closed"
	}
	return fmt.Sprintf("CursorState(%d)", uint8(s))
}

// ColumnLayout maps column names to their zero-based positions in a row.
// Names are matched exactly. When a name repeats, its first position is kept.
type ColumnLayout struct {
	names []string
	index map[string]int
}

func NewColumnLayout(names []string) ColumnLayout {
	l := ColumnLayout{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, seen := l.index[name]; !seen {
			l.index[name] = i
		}
	}
	return l
}

func (l ColumnLayout) Position(name string) (int, bool) {
	i, ok := l.index[name]
	return i, ok
}

// Names returns the column names in cursor order, duplicates included.
func (l ColumnLayout) Names() []string { return append([]string(nil), l.names...) }

func (l ColumnLayout) Len() int { return len(l.names) }

// Cursor wraps Rows with an explicit Unopened -> Open -> Closed lifecycle.
// A Cursor is single-pass and must not be shared between goroutines.
type Cursor struct {
	rows   Rows
	state  CursorState
	layout ColumnLayout
	cells  []any
	dests  []any
}

func NewCursor(rows Rows) *Cursor {
	return &Cursor{rows: rows}
}

func (c *Cursor) State() CursorState { return c.state }

// Open reads the column layout. Calling it on an open cursor returns the layout read before.
func (c *Cursor) Open() (ColumnLayout, error) {
	switch c.state {
	case CursorOpen:
		return c.layout, nil
	case CursorClosed:
		return ColumnLayout{}, fmt.Errorf("%w: cursor is closed", ErrInvalidState)
	}
	cols, err := c.rows.Columns()
	if err != nil {
		return ColumnLayout{}, err
	}
	c.layout = NewColumnLayout(cols)
	c.cells = make([]any, len(cols))
	c.dests = make([]any, len(cols))
	for i := range c.cells {
		c.dests[i] = &c.cells[i]
	}
	c.state = CursorOpen
	return c.layout, nil
}

// Next advances to the next row and loads its cells.
// It returns false with a nil error at the end of data.
func (c *Cursor) Next() (bool, error) {
	if c.state != CursorOpen {
		return false, fmt.Errorf("%w: next on %s cursor", ErrInvalidState, c.state)
	}
	if !c.rows.Next() {
		return false, c.rows.Err()
	}
	clear(c.cells)
	if err := c.rows.Scan(c.dests...); err != nil {
		return false, err
	}
	return true, nil
}

// Cell returns the value at pos in the current row. A nil result is the driver's NULL.
func (c *Cursor) Cell(pos int) any {
	return c.cells[pos]
}

// Values returns a copy of the current row's cells.
func (c *Cursor) Values() []any {
	return append([]any(nil), c.cells...)
}

// Close releases the underlying Rows. Only the first call reaches the driver.
func (c *Cursor) Close() error {
	if c.state == CursorClosed {
		return nil
	}
	c.state = CursorClosed
	c.cells, c.dests = nil, nil
	return c.rows.Close()
}

// release closes the cursor and keeps the first error seen.
// It reports whether *err is set, so callers can drop partial results.
func (c *Cursor) release(err *error) bool {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
	return *err != nil
}
