package connector

import (
	"context"

	"github.com/zeptools/gw-dbconn/constraints"
	"github.com/zeptools/gw-dbconn/db/sqldb"
)

// ExecuteReaderMapping runs the command of c and maps every row into a T.
func ExecuteReaderMapping[T any](ctx context.Context, c *Connector) ([]T, error) {
	rows, err := c.rows(ctx)
	if err != nil {
		return nil, err
	}
	return sqldb.MapAll[T](sqldb.NewCursor(rows))
}

// ExecuteReaderMappingFirst maps only the first row; found is false for an empty result.
func ExecuteReaderMappingFirst[T any](ctx context.Context, c *Connector) (T, bool, error) {
	rows, err := c.rows(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return sqldb.MapFirst[T](sqldb.NewCursor(rows))
}

// ExecuteReaderToType converts the first column of every row into T.
func ExecuteReaderToType[T constraints.Scalar](ctx context.Context, c *Connector) ([]T, error) {
	rows, err := c.rows(ctx)
	if err != nil {
		return nil, err
	}
	return sqldb.MapScalarColumn[T](sqldb.NewCursor(rows))
}
