package sqldb

import (
	"errors"
	"fmt"
)

const (
	TypeMySQL  = "mysql"
	TypePgSQL  = "pgsql"
	TypeSQLite = "sqlite"
	TypeDuckDB = "duckdb"
)

type Conf struct {
	Type string `json:"type"` // mysql, pgsql, sqlite, duckdb
	Host string `json:"host"`
	Port int    `json:"port"`
	User string `json:"user"`
	PW   string `json:"pw"`
	DB   string `json:"db"`  // database name, or file path for embedded engines
	TZ   string `json:"tz"`  // Connection Timezone
	DSN  string `json:"dsn"` // To Overwrite Default DSN
}

// Validate checks that the Conf carries enough to build a DSN.
func (c *Conf) Validate() error {
	if c.Type == "" {
		return errors.New("sqldb: conf type is required")
	}
	if c.DSN != "" {
		return nil
	}
	switch c.Type {
	case TypeSQLite, TypeDuckDB:
		return nil // empty DB means in-memory
	}
	if c.Host == "" {
		return fmt.Errorf("sqldb: %s conf needs host or dsn", c.Type)
	}
	if c.DB == "" {
		return fmt.Errorf("sqldb: %s conf needs db or dsn", c.Type)
	}
	return nil
}
