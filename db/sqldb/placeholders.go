package sqldb

import (
	"fmt"
	"strconv"
	"strings"
)

var PlaceholderPrefixForDBType = map[string]byte{
	TypeMySQL:  '?',
	TypePgSQL:  '$',
	TypeSQLite: 0, // NOTE: sqlite supports all of them
	TypeDuckDB: '$',
}

// PlaceholdersGF returns a generator of `length` placeholders numbered from `start` (default 1).
func PlaceholdersGF(baseChar byte) func(int, ...int) []string { // length, start
	if baseChar == '?' || baseChar == 0 {
		return func(length int, _ ...int) []string {
			placeholders := make([]string, length)
			for i := range placeholders {
				placeholders[i] = "?"
			}
			return placeholders
		}
	}
	return func(length int, startIndex ...int) []string {
		placeholders := make([]string, length)
		cnt := 1
		if len(startIndex) > 0 {
			cnt = startIndex[0]
		}
		for i := range placeholders {
			placeholders[i] = string(baseChar) + strconv.Itoa(cnt)
			cnt++
		}
		return placeholders
	}
}

// ReplaceStaticPlaceholders numbers every `?` in sql with the prefix of the target driver.
// For numbered drivers `??` writes one literal `?`, e.g. the pgsql jsonb key-exists operator.
// sql is returned as is for `?` drivers.
func ReplaceStaticPlaceholders(sql string, prefix byte) string {
	if prefix == '?' || prefix == 0 {
		return sql
	}
	var builder strings.Builder
	builder.Grow(len(sql) + 8)
	cnt := 1
	for i := 0; i < len(sql); i++ {
		if sql[i] != '?' {
			builder.WriteByte(sql[i])
			continue
		}
		if i+1 < len(sql) && sql[i+1] == '?' {
			builder.WriteByte('?')
			i++
			continue
		}
		builder.WriteByte(prefix)
		builder.WriteString(strconv.Itoa(cnt))
		cnt++
	}
	return builder.String()
}

// CallStmt renders a stored procedure invocation with nargs positional arguments.
// The procedure name must already be a validated identifier.
func CallStmt(dbType string, procedure Column, nargs int) (string, error) {
	prefix, ok := PlaceholderPrefixForDBType[dbType]
	if !ok {
		return "", fmt.Errorf("unsupported database type: %s", dbType)
	}
	switch dbType {
	case TypeMySQL, TypePgSQL:
	default:
		return "", fmt.Errorf("stored procedures not supported for %s", dbType)
	}
	args := strings.Join(PlaceholdersGF(prefix)(nargs), ", ")
	return "CALL " + procedure.Name() + "(" + args + ")", nil
}
