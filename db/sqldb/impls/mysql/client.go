package mysql

import (
	"fmt"
	"net/url"

	_ "github.com/go-sql-driver/mysql" // side-effect
	"github.com/zeptools/gw-dbconn/db/sqldb"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/stdsql"
)

const DBType = sqldb.TypeMySQL

// NewClient builds a MySQL client from conf. Call Init to connect.
func NewClient(conf *sqldb.Conf) *stdsql.Client {
	return stdsql.NewClient(conf, "mysql", DSN(conf))
}

// DSN returns conf.DSN when set, else a DSN assembled from the conf fields.
// multiStatements lets one command return several result sets.
func DSN(conf *sqldb.Conf) string {
	if conf.DSN != "" {
		return conf.DSN
	}
	tz := conf.TZ
	if tz == "" {
		tz = "UTC"
	}
	port := conf.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=%s&sql_mode=ANSI_QUOTES&multiStatements=true",
		conf.User,
		conf.PW,
		conf.Host,
		port,
		conf.DB,
		url.QueryEscape(tz),
	)
}

// Register adds the mysql factory to sqldb.
func Register() {
	sqldb.RegisterFactory(DBType, func(conf *sqldb.Conf) (sqldb.Client, error) {
		return NewClient(conf), nil
	})
}
