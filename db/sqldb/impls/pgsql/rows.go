package pgsql

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zeptools/gw-dbconn/db/sqldb"
)

type Rows struct {
	conn    *pgxpool.Conn
	current pgx.Rows
	batch   pgx.BatchResults
	pending int   // batch results not read yet
	err     error // failure of a later batch query
}

// Ensure pgsql.Rows implements sqldb.Rows
var _ sqldb.Rows = (*Rows)(nil)

func (r *Rows) Columns() ([]string, error) {
	fds := r.current.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = fd.Name
	}
	return cols, nil
}

func (r *Rows) Next() bool {
	return r.current.Next()
}

func (r *Rows) Scan(dest ...any) error {
	return r.current.Scan(dest...)
}

func (r *Rows) Close() error {
	if r.current != nil {
		r.current.Close()
	}
	var err error
	if r.batch != nil {
		err = r.batch.Close()
		r.batch = nil
	}
	if r.conn != nil {
		r.conn.Release()
		r.conn = nil
	}
	return err
}

func (r *Rows) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.current.Err()
}

func (r *Rows) NextResultSet() bool {
	if r.batch == nil || r.pending == 0 || r.err != nil {
		return false
	}
	r.current.Close()
	if err := r.current.Err(); err != nil {
		r.err = err
		return false
	}
	r.pending--
	nextRows, err := r.batch.Query()
	if err != nil {
		r.err = err
		return false
	}
	r.current = nextRows
	return true
}
