package sqldb

// Rows is a forward-only result set as handed out by a driver implementation.
// Columns reports the column names of the current result set.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
	NextResultSet() bool
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	RowsAffected() (int64, error)
	LastInsertId() (int64, error)
}
