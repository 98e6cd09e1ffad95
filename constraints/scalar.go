package constraints

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Scalar is the set of types that have a canonical text form.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParseScalar parses s into S following strconv rules for the underlying kind.
// Surrounding spaces are ignored for every kind except strings.
func ParseScalar[S Scalar](s string) (S, error) {
	var out S
	rv := reflect.ValueOf(&out).Elem()
	kind := rv.Kind()
	if kind != reflect.String {
		s = strings.TrimSpace(s)
	}
	switch kind {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return out, err
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return out, err
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return out, err
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return out, err
		}
		rv.SetFloat(f)
	default:
		return out, fmt.Errorf("unsupported type %T", out)
	}
	return out, nil
}
