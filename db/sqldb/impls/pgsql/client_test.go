package pgsql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

func TestDSN(t *testing.T) {
	conf := &sqldb.Conf{Type: DBType, Host: "pg", User: "app", PW: "secret", DB: "orders"}
	assert.Equal(t,
		"host=pg port=5432 user=app password=secret dbname=orders sslmode=disable TimeZone=UTC",
		DSN(conf))

	conf.DSN = "postgres://app@pg/orders"
	assert.Equal(t, "postgres://app@pg/orders", DSN(conf))
}

func TestClient_NotInitialized(t *testing.T) {
	Register()
	client, err := sqldb.New(DBType, &sqldb.Conf{Type: DBType, Host: "pg", DB: "orders"})
	require.NoError(t, err)

	_, err = client.BeginTx(context.Background())
	assert.ErrorContains(t, err, "not initialized")
	assert.ErrorContains(t, client.Ping(context.Background()), "not initialized")
	assert.NoError(t, client.Close())
}

func TestResult(t *testing.T) {
	r := &Result{lastInsertID: 7, rowsAffected: 1}
	id, err := r.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	n, err := r.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = (&Result{}).LastInsertId()
	assert.ErrorContains(t, err, "RETURNING id")
}
