package sqldb

import "fmt"

// Table is a raw, untyped copy of one result set.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Column returns the values of the named column, or false when the table has no such column.
func (t *Table) Column(name string) ([]any, bool) {
	pos, ok := NewColumnLayout(t.Columns).Position(name)
	if !ok {
		return nil, false
	}
	vals := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		vals[i] = row[pos]
	}
	return vals, true
}

// ReadTable drains cur into a Table and closes it.
func ReadTable(cur *Cursor) (tbl *Table, err error) {
	if cur.State() == CursorClosed {
		return nil, fmt.Errorf("%w: cursor already closed", ErrInvalidState)
	}
	defer func() {
		if cur.release(&err) {
			tbl = nil
		}
	}()

	layout, err := cur.Open()
	if err != nil {
		return nil, err
	}
	tbl = &Table{Columns: layout.Names(), Rows: [][]any{}}
	for {
		ok, err := cur.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tbl, nil
		}
		tbl.Rows = append(tbl.Rows, cur.Values())
	}
}

// ReadTables reads every result set of rows, in order, and closes rows.
func ReadTables(rows Rows) (tbls []*Table, err error) {
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			tbls = nil
		}
	}()
	for {
		tbl, err := readResultSet(rows)
		if err != nil {
			return nil, err
		}
		tbls = append(tbls, tbl)
		if !rows.NextResultSet() {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tbls, nil
}

func readResultSet(rows Rows) (*Table, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	tbl := &Table{Columns: cols, Rows: [][]any{}}
	dests := make([]any, len(cols))
	for rows.Next() {
		cells := make([]any, len(cols))
		for i := range cells {
			dests[i] = &cells[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, err
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tbl, nil
}
