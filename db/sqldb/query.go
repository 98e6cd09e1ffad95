package sqldb

import (
	"context"

	"github.com/zeptools/gw-dbconn/constraints"
)

// QueryAll runs rawSQLStmt on h and maps every row into a T.
func QueryAll[T any](ctx context.Context, h Handle, rawSQLStmt string, args ...any) ([]T, error) {
	rows, err := h.QueryRows(ctx, rawSQLStmt, args...)
	if err != nil {
		return nil, err
	}
	return MapAll[T](NewCursor(rows))
}

// QueryFirst runs rawSQLStmt on h and maps the first row into a T.
// found is false when no row matched.
func QueryFirst[T any](ctx context.Context, h Handle, rawSQLStmt string, args ...any) (T, bool, error) {
	rows, err := h.QueryRows(ctx, rawSQLStmt, args...)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return MapFirst[T](NewCursor(rows))
}

// QueryScalars runs rawSQLStmt on h and converts the first column of each row into S.
func QueryScalars[S constraints.Scalar](ctx context.Context, h Handle, rawSQLStmt string, args ...any) ([]S, error) {
	rows, err := h.QueryRows(ctx, rawSQLStmt, args...)
	if err != nil {
		return nil, err
	}
	return MapScalarColumn[S](NewCursor(rows))
}

// QueryTable runs rawSQLStmt on h and returns its first result set untyped.
func QueryTable(ctx context.Context, h Handle, rawSQLStmt string, args ...any) (*Table, error) {
	rows, err := h.QueryRows(ctx, rawSQLStmt, args...)
	if err != nil {
		return nil, err
	}
	return ReadTable(NewCursor(rows))
}
