package duckdb

import (
	_ "github.com/marcboeker/go-duckdb" // side-effect
	"github.com/zeptools/gw-dbconn/db/sqldb"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/stdsql"
)

const DBType = sqldb.TypeDuckDB

// NewClient builds a DuckDB client. conf.DB is the database file; empty means in-memory.
func NewClient(conf *sqldb.Conf) *stdsql.Client {
	return stdsql.NewClient(conf, "duckdb", DSN(conf))
}

func DSN(conf *sqldb.Conf) string {
	if conf.DSN != "" {
		return conf.DSN
	}
	return conf.DB
}

// Register adds the duckdb factory to sqldb.
func Register() {
	sqldb.RegisterFactory(DBType, func(conf *sqldb.Conf) (sqldb.Client, error) {
		return NewClient(conf), nil
	})
}
