package sqldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholdersGF(t *testing.T) {
	assert.Equal(t, []string{"?", "?", "?"}, PlaceholdersGF('?')(3))
	assert.Equal(t, []string{"?", "?"}, PlaceholdersGF(0)(2, 5))
	assert.Equal(t, []string{"$1", "$2"}, PlaceholdersGF('$')(2))
	assert.Equal(t, []string{"$4", "$5", "$6"}, PlaceholdersGF('$')(3, 4))
	assert.Empty(t, PlaceholdersGF('$')(0))
}

func TestReplaceStaticPlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		prefix byte
		want   string
	}{
		{"question mark driver", "a = ? AND b = ?", '?', "a = ? AND b = ?"},
		{"sqlite", "a = ?", 0, "a = ?"},
		{"numbered", "a = ? AND b IN (?, ?)", '$', "a = $1 AND b IN ($2, $3)"},
		{"escaped literal", "data ?? 'k' AND id = ?", '$', "data ? 'k' AND id = $1"},
		{"escape then placeholder", "a ??? b", '$', "a ?$1 b"},
		{"escape untouched for question mark driver", "data ?? 'k'", '?', "data ?? 'k'"},
		{"none", "SELECT 1", '$', "SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceStaticPlaceholders(tt.sql, tt.prefix))
		})
	}
}

func TestCallStmt(t *testing.T) {
	proc := NewColumnOrPanic("sales.usp_orders")

	stmt, err := CallStmt(TypeMySQL, proc, 2)
	require.NoError(t, err)
	assert.Equal(t, "CALL sales.usp_orders(?, ?)", stmt)

	stmt, err = CallStmt(TypePgSQL, proc, 3)
	require.NoError(t, err)
	assert.Equal(t, "CALL sales.usp_orders($1, $2, $3)", stmt)

	stmt, err = CallStmt(TypePgSQL, proc, 0)
	require.NoError(t, err)
	assert.Equal(t, "CALL sales.usp_orders()", stmt)

	_, err = CallStmt(TypeDuckDB, proc, 1)
	assert.EqualError(t, err, "stored procedures not supported for duckdb")

	_, err = CallStmt("oracle", proc, 1)
	assert.EqualError(t, err, "unsupported database type: oracle")
}
