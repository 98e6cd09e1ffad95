package connector

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeptools/gw-dbconn/db/sqldb"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/sqlite"
	"github.com/zeptools/gw-dbconn/db/sqldb/impls/stdsql"
)

type product struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Price float64
}

func newMockConnector(t *testing.T, dbType string) (*Connector, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(stdsql.WrapDB(&sqldb.Conf{Type: dbType}, db)), mock
}

func TestCommandType_String(t *testing.T) {
	assert.Equal(t, "text", CommandText.String())
	assert.Equal(t, "stored procedure", CommandStoredProcedure.String())
	assert.Equal(t, "CommandType(9)", CommandType(9).String())
}

func TestConnector_NoCommand(t *testing.T) {
	c, _ := newMockConnector(t, sqldb.TypeMySQL)
	ctx := context.Background()

	assert.Nil(t, c.Command())
	assert.ErrorIs(t, c.AddParameter(Param{Name: "a"}), ErrNoCommand)
	assert.ErrorIs(t, c.AddParameterValue("a", 1), ErrNoCommand)

	_, err := c.ExecuteNonQuery(ctx)
	assert.ErrorIs(t, err, ErrNoCommand)
	_, err = c.ExecuteScalar(ctx)
	assert.ErrorIs(t, err, ErrNoCommand)
	_, err = c.ExecuteReaderRaw(ctx)
	assert.ErrorIs(t, err, ErrNoCommand)
	_, err = c.ExecuteReaderDataSet(ctx)
	assert.ErrorIs(t, err, ErrNoCommand)
	_, err = ExecuteReaderMapping[product](ctx, c)
	assert.ErrorIs(t, err, ErrNoCommand)
	_, _, err = ExecuteReaderMappingFirst[product](ctx, c)
	assert.ErrorIs(t, err, ErrNoCommand)
	_, err = ExecuteReaderToType[int](ctx, c)
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestConnector_Params(t *testing.T) {
	c, _ := newMockConnector(t, sqldb.TypeMySQL)
	c.SetCommand("SELECT * FROM t WHERE a = ? AND b = ?")

	require.NoError(t, c.AddParameter(Param{Name: "a", Value: 1}))
	assert.ErrorContains(t, c.AddParameter(Param{Name: "a", Value: 2}), `"a" already added`)
	require.NoError(t, c.AddParameterValue("b", "x"))
	require.NoError(t, c.AddParameterValue("a", 10))

	cmd := c.Command()
	assert.Equal(t, CommandText, cmd.Type)
	assert.Equal(t, []Param{{"a", 10}, {"b", "x"}}, cmd.Params)
	assert.Equal(t, []any{10, "x"}, cmd.Args())

	c.SetCommand("SELECT 1")
	assert.Empty(t, c.Command().Params, "a new command starts without params")
}

func TestConnector_SetProcedure(t *testing.T) {
	c, _ := newMockConnector(t, sqldb.TypeMySQL)
	assert.Error(t, c.SetProcedure("usp orders; DROP TABLE x"))
	assert.Nil(t, c.Command())

	require.NoError(t, c.SetProcedure("sales.usp_orders"))
	assert.Equal(t, &Command{Text: "sales.usp_orders", Type: CommandStoredProcedure}, c.Command())
}

func TestConnector_ExecuteNonQuery(t *testing.T) {
	c, mock := newMockConnector(t, sqldb.TypePgSQL)
	c.SetCommand("UPDATE items SET price = ? WHERE id = ?")
	require.NoError(t, c.AddParameterValue("price", 9.5))
	require.NoError(t, c.AddParameterValue("id", 3))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET price = $1 WHERE id = $2")).
		WithArgs(9.5, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := c.ExecuteNonQuery(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnector_StoredProcedure(t *testing.T) {
	tests := []struct {
		dbType string
		want   string
		errMsg string
	}{
		{dbType: sqldb.TypeMySQL, want: "CALL usp_report(?, ?)"},
		{dbType: sqldb.TypePgSQL, want: "CALL usp_report($1, $2)"},
		{dbType: sqldb.TypeSQLite, errMsg: "stored procedures not supported for sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			c, mock := newMockConnector(t, tt.dbType)
			require.NoError(t, c.SetProcedure("usp_report"))
			require.NoError(t, c.AddParameterValue("from", "2024-01-01"))
			require.NoError(t, c.AddParameterValue("to", "2024-02-01"))

			if tt.errMsg != "" {
				_, err := c.ExecuteNonQuery(context.Background())
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			mock.ExpectExec(regexp.QuoteMeta(tt.want)).
				WithArgs("2024-01-01", "2024-02-01").
				WillReturnResult(sqlmock.NewResult(0, 0))
			_, err := c.ExecuteNonQuery(context.Background())
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConnector_ExecuteScalar(t *testing.T) {
	c, mock := newMockConnector(t, sqldb.TypeMySQL)
	c.SetCommand("SELECT name, id FROM items")

	mock.ExpectQuery("SELECT name, id FROM items").
		WillReturnRows(sqlmock.NewRows([]string{"name", "id"}).AddRow("pen", 1).AddRow("cup", 2)).
		RowsWillBeClosed()
	v, err := c.ExecuteScalar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pen", v)

	mock.ExpectQuery("SELECT name, id FROM items").
		WillReturnRows(sqlmock.NewRows([]string{"name", "id"}))
	v, err = c.ExecuteScalar(context.Background())
	require.NoError(t, err)
	assert.Nil(t, v)

	mock.ExpectQuery("SELECT name, id FROM items").WillReturnError(assert.AnError)
	_, err = c.ExecuteScalar(context.Background())
	assert.Same(t, assert.AnError, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnector_Readers(t *testing.T) {
	c, mock := newMockConnector(t, sqldb.TypeMySQL)
	require.NoError(t, c.SetProcedure("usp_catalog"))
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("CALL usp_catalog()")).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "Price"}).AddRow(int64(1), "pen", 1.25),
		sqlmock.NewRows([]string{"total"}).AddRow(int64(1)),
	)
	set, err := c.ExecuteReaderDataSet(ctx)
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, []string{"total"}, set[1].Columns)

	mock.ExpectQuery(regexp.QuoteMeta("CALL usp_catalog()")).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "pen").AddRow(int64(2), nil),
	)
	tbl, err := c.ExecuteReaderRaw(ctx)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(1), "pen"}, {int64(2), nil}}, tbl.Rows)
	names, ok := tbl.Column("name")
	assert.True(t, ok)
	assert.Equal(t, []any{"pen", nil}, names)

	mock.ExpectQuery(regexp.QuoteMeta("CALL usp_catalog()")).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "Price"}).
			AddRow(int64(1), "pen", 1.25).
			AddRow(int64(2), "cup", 3.0),
	)
	items, err := ExecuteReaderMapping[product](ctx, c)
	require.NoError(t, err)
	assert.Equal(t, []product{{1, "pen", 1.25}, {2, "cup", 3.0}}, items)

	mock.ExpectQuery(regexp.QuoteMeta("CALL usp_catalog()")).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(7), "box").AddRow(int64(8), "bag"),
	).RowsWillBeClosed()
	first, found, err := ExecuteReaderMappingFirst[product](ctx, c)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, product{ID: 7, Name: "box"}, first)

	mock.ExpectQuery(regexp.QuoteMeta("CALL usp_catalog()")).WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow("10").AddRow([]byte("20")),
	)
	ids, err := ExecuteReaderToType[uint16](ctx, c)
	require.NoError(t, err)
	assert.Equal(t, []uint16{10, 20}, ids)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnector_MySQLTextColumns(t *testing.T) {
	c, mock := newMockConnector(t, sqldb.TypeMySQL)
	c.SetCommand("SELECT id, name FROM items")

	mock.ExpectQuery("SELECT id, name FROM items").WillReturnRows(
		sqlmock.NewRowsWithColumnDefinition(
			sqlmock.NewColumn("id").OfType("BIGINT", int64(0)),
			sqlmock.NewColumn("name").OfType("VARCHAR", ""),
		).AddRow(int64(1), []byte("alice")),
	)
	items, err := ExecuteReaderMapping[product](context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, []product{{ID: 1, Name: "alice"}}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnector_ExecuteScalar_CloseError(t *testing.T) {
	c, mock := newMockConnector(t, sqldb.TypeMySQL)
	c.SetCommand("SELECT name FROM items")

	mock.ExpectQuery("SELECT name FROM items").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("pen").CloseError(assert.AnError))
	v, err := c.ExecuteScalar(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, v)
}

func TestConnector_BulkCopy(t *testing.T) {
	c, mock := newMockConnector(t, sqldb.TypeMySQL)

	_, err := c.BulkCopy(context.Background(), nil, "items")
	assert.Error(t, err)

	src := &sqldb.Table{
		Columns: []string{"id", "name"},
		Rows:    [][]any{{1, "pen"}, {2, "cup"}},
	}
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO items (id, name) VALUES (?, ?), (?, ?)")).
		WithArgs(1, "pen", 2, "cup").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := c.BulkCopy(context.Background(), src, "items")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnector_Close(t *testing.T) {
	c, mock := newMockConnector(t, sqldb.TypeMySQL)
	mock.ExpectClose()
	require.NoError(t, c.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_SQLite(t *testing.T) {
	sqlite.Register()
	c, err := Open(&sqldb.Conf{Type: sqldb.TypeSQLite})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	c.SetCommand("CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT, Price REAL)")
	_, err = c.ExecuteNonQuery(ctx)
	require.NoError(t, err)

	n, err := c.BulkCopy(ctx, &sqldb.Table{
		Columns: []string{"id", "name", "Price"},
		Rows:    [][]any{{1, "pen", 1.25}, {2, "cup", 3.5}, {3, nil, 0.5}},
	}, "items")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	c.SetCommand("SELECT id, name, Price FROM items WHERE Price > ? ORDER BY id")
	require.NoError(t, c.AddParameterValue("min", 1.0))
	items, err := ExecuteReaderMapping[product](ctx, c)
	require.NoError(t, err)
	assert.Equal(t, []product{{1, "pen", 1.25}, {2, "cup", 3.5}}, items)

	require.NoError(t, c.AddParameterValue("min", 100.0))
	_, found, err := ExecuteReaderMappingFirst[product](ctx, c)
	require.NoError(t, err)
	assert.False(t, found)

	c.SetCommand("SELECT COUNT(*) FROM items")
	count, err := c.ExecuteScalar(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(&sqldb.Conf{Type: "oracle"})
	assert.ErrorContains(t, err, "unsupported database type: oracle")

	_, err = Open(&sqldb.Conf{})
	assert.Error(t, err)
}
