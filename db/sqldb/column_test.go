package sqldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColumn(t *testing.T) {
	for _, ok := range []string{"id", "_x", "user.email", "dbo.usp_orders", "A1"} {
		c, err := NewColumn(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, c.Name())
	}
	for _, bad := range []string{"", "1a", "a b", "a.", ".a", "a;b", `"a"`, "a-b"} {
		_, err := NewColumn(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { NewColumnOrPanic("a b") })
}

func TestColumnNames(t *testing.T) {
	names, err := ColumnNames([]string{"a", "b_c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b_c"}, names)

	_, err = ColumnNames([]string{"a", "b c"})
	assert.ErrorContains(t, err, `invalid SQL identifier: "b c"`)
}
