package conf

import (
	"log"

	"github.com/zeptools/gw-dbconn/db"
	"github.com/zeptools/gw-dbconn/db/sqldb"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/duckdb"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/mysql"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/pgsql"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/sqlite"
)

// RegisterImpls registers every supported sqldb implementation.
func RegisterImpls() {
	mysql.Register()
	pgsql.Register()
	sqlite.Register()
	duckdb.Register()
}

// PrepareClients builds and initializes a client per configured database.
// On failure, clients initialized so far are closed.
func (c *Conf) PrepareClients() (map[string]sqldb.Client, error) {
	RegisterImpls()
	clients := make(map[string]sqldb.Client, len(c.Databases))
	for _, name := range c.Names() {
		dbConf := c.Databases[name]
		client, err := sqldb.New(dbConf.Type, dbConf)
		if err == nil {
			err = client.Init()
		}
		if err != nil {
			log.Printf("[ERROR][%s] Failed to prepare %q SQL DB client: %v", dbConf.Type, name, err)
			CloseClients(clients)
			return nil, err
		}
		clients[name] = client
	}
	return clients, nil
}

// CloseClients closes every client, logging failures.
func CloseClients(clients map[string]sqldb.Client) {
	for name, client := range clients {
		db.CloseClient[sqldb.Handle](name, client)
	}
}
