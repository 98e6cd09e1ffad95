package sqldb

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/zeptools/gw-dbconn/constraints"
)

// MapAll maps every row of cur into a new T and closes cur.
//
// A field of T is populated when its name equals a column name exactly;
// NULL cells leave the field at its zero value. An empty result yields an
// empty, non-nil slice. The first failing row aborts the call.
func MapAll[T any](cur *Cursor) (out []T, err error) {
	if cur.State() == CursorClosed {
		return nil, fmt.Errorf("%w: cursor already closed", ErrInvalidState)
	}
	defer func() {
		if cur.release(&err) {
			out = nil
		}
	}()

	layout, err := cur.Open()
	if err != nil {
		return nil, err
	}
	out = []T{}
	for rowIdx := 0; ; rowIdx++ {
		ok, err := cur.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		item, err := mapRow[T](cur, layout, rowIdx)
		if err != nil {
			return nil, err
		}
		out = append(out, *item)
	}
	return out, nil
}

// MapFirst maps the first row of cur into a T and closes cur without reading further.
// found is false when the result had no rows; item is then the zero T.
func MapFirst[T any](cur *Cursor) (item T, found bool, err error) {
	if cur.State() == CursorClosed {
		return item, false, fmt.Errorf("%w: cursor already closed", ErrInvalidState)
	}
	defer func() {
		if cur.release(&err) {
			var zero T
			item, found = zero, false
		}
	}()

	layout, err := cur.Open()
	if err != nil {
		return item, false, err
	}
	ok, err := cur.Next()
	if err != nil || !ok {
		return item, false, err
	}
	p, err := mapRow[T](cur, layout, 0)
	if err != nil {
		return item, false, err
	}
	return *p, true, nil
}

// MapScalarColumn converts the first column of every row into S through its text form.
// NULL renders as the empty string.
func MapScalarColumn[S constraints.Scalar](cur *Cursor) ([]S, error) {
	return MapScalarColumnFunc(cur, constraints.ParseScalar[S])
}

// MapScalarColumnFunc is MapScalarColumn with a caller supplied parser.
func MapScalarColumnFunc[T any](cur *Cursor, parse func(string) (T, error)) (out []T, err error) {
	if cur.State() == CursorClosed {
		return nil, fmt.Errorf("%w: cursor already closed", ErrInvalidState)
	}
	defer func() {
		if cur.release(&err) {
			out = nil
		}
	}()

	layout, err := cur.Open()
	if err != nil {
		return nil, err
	}
	if layout.Len() == 0 {
		return nil, fmt.Errorf("%w: scalar mapping needs at least one", ErrNoColumns)
	}
	out = []T{}
	for rowIdx := 0; ; rowIdx++ {
		ok, err := cur.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		text := CellText(cur.Cell(0))
		v, err := parse(text)
		if err != nil {
			return nil, &ConversionError{Row: rowIdx, Text: text, Type: reflect.TypeOf((*T)(nil)).Elem(), Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// mapRow builds one T from the current row of cur.
func mapRow[T any](cur *Cursor, layout ColumnLayout, rowIdx int) (*T, error) {
	item, fields, err := newRecord[T]()
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		pos, ok := layout.Position(f.Name)
		if !ok {
			continue
		}
		cell := cur.Cell(pos)
		if cell == nil {
			continue
		}
		if err := setField(f, cell); err != nil {
			if tm, ok := err.(*TypeMismatchError); ok {
				tm.Row, tm.Column = rowIdx, pos
			}
			return nil, err
		}
	}
	return item, nil
}

// CellText renders a driver value in its canonical text form.
func CellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
