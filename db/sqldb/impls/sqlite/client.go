package sqlite

import (
	"github.com/zeptools/gw-dbconn/db/sqldb"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/stdsql"
	_ "modernc.org/sqlite" // side-effect
)

const DBType = sqldb.TypeSQLite

// NewClient builds a SQLite client. conf.DB is the database file; empty means in-memory.
func NewClient(conf *sqldb.Conf) *stdsql.Client {
	c := stdsql.NewClient(conf, "sqlite", DSN(conf))
	if c.GetDSN() == ":memory:" {
		// every pooled connection would open its own empty database
		c.MaxOpenConns = 1
		c.ConnMaxLifetime = -1
	}
	return c
}

func DSN(conf *sqldb.Conf) string {
	switch {
	case conf.DSN != "":
		return conf.DSN
	case conf.DB == "" || conf.DB == ":memory:":
		return ":memory:"
	}
	return "file:" + conf.DB + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
}

// Register adds the sqlite factory to sqldb.
func Register() {
	sqldb.RegisterFactory(DBType, func(conf *sqldb.Conf) (sqldb.Client, error) {
		return NewClient(conf), nil
	})
}
