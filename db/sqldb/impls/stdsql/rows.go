package stdsql

import (
	"database/sql"
	"strings"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

// textTypes are database type names whose cells are character data even when
// the driver hands them out as []byte, as go-sql-driver/mysql does.
// Binary types (BINARY, VARBINARY, BLOB, BIT) are not listed and stay []byte.
var textTypes = map[string]bool{
	"CHAR":       true,
	"VARCHAR":    true,
	"TEXT":       true,
	"TINYTEXT":   true,
	"MEDIUMTEXT": true,
	"LONGTEXT":   true,
	"DECIMAL":    true,
	"ENUM":       true,
	"SET":        true,
	"JSON":       true,
	"TIME":       true,
}

// Rows wraps *sql.Rows. After Columns, []byte cells of text columns scanned into *any
// are handed out as string.
type Rows struct {
	rows *sql.Rows
	text []bool
}

var _ sqldb.Rows = (*Rows)(nil)

func (r *Rows) Columns() ([]string, error) {
	names, err := r.rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := r.rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	r.text = make([]bool, len(types))
	for i, ct := range types {
		r.text[i] = textTypes[strings.ToUpper(ct.DatabaseTypeName())]
	}
	return names, nil
}

func (r *Rows) Next() bool {
	return r.rows.Next()
}

func (r *Rows) Scan(dest ...any) error {
	if err := r.rows.Scan(dest...); err != nil {
		return err
	}
	for i, d := range dest {
		if i >= len(r.text) || !r.text[i] {
			continue
		}
		if p, ok := d.(*any); ok {
			if b, ok := (*p).([]byte); ok {
				*p = string(b)
			}
		}
	}
	return nil
}

func (r *Rows) Close() error {
	return r.rows.Close()
}

// NextResultSet advances to the next result set when the driver reports several,
// e.g. a stored procedure issuing more than one SELECT.
func (r *Rows) NextResultSet() bool {
	r.text = nil
	return r.rows.NextResultSet()
}

func (r *Rows) Err() error {
	return r.rows.Err()
}
