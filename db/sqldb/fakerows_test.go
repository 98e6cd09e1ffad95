package sqldb

import (
	"errors"
	"fmt"
)

// fakeRows is an in-memory Rows that records how it was driven.
type fakeRows struct {
	sets [][][]any // result sets of rows
	cols [][]string

	set      int
	pos      int // index of the current row in the current set, -1 before the first Next
	nextN    int // successful Next calls
	scanN    int
	closeN   int
	colsErr  error
	scanErr  error
	iterErr  error // reported by Err once rows are exhausted
	closeErr error
}

func newFakeRows(cols []string, rows ...[]any) *fakeRows {
	return &fakeRows{cols: [][]string{cols}, sets: [][][]any{rows}, pos: -1}
}

func (r *fakeRows) addSet(cols []string, rows ...[]any) *fakeRows {
	r.cols = append(r.cols, cols)
	r.sets = append(r.sets, rows)
	return r
}

func (r *fakeRows) Columns() ([]string, error) {
	if r.colsErr != nil {
		return nil, r.colsErr
	}
	return r.cols[r.set], nil
}

func (r *fakeRows) Next() bool {
	if r.closeN > 0 || r.pos+1 >= len(r.sets[r.set]) {
		return false
	}
	r.pos++
	r.nextN++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	r.scanN++
	if r.scanErr != nil {
		return r.scanErr
	}
	row := r.sets[r.set][r.pos]
	if len(dest) != len(row) {
		return fmt.Errorf("fakeRows: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		p, ok := d.(*any)
		if !ok {
			return errors.New("fakeRows: destination must be *any")
		}
		*p = row[i]
	}
	return nil
}

func (r *fakeRows) Close() error {
	r.closeN++
	return r.closeErr
}

func (r *fakeRows) Err() error { return r.iterErr }

func (r *fakeRows) NextResultSet() bool {
	if r.set+1 >= len(r.sets) {
		return false
	}
	r.set++
	r.pos = -1
	return true
}
