// Package nullable holds NULL-aware field types for mapped records.
// Each type scans like its sql.Null* counterpart and encodes NULL as JSON null.
package nullable

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

func marshal[V any](v V, valid bool) ([]byte, error) {
	if !valid {
		return jsonNull, nil
	}
	return json.Marshal(v)
}

// unmarshal leaves *v and *valid untouched when data is not a valid V.
func unmarshal[V any](data []byte, v *V, valid *bool) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		var zero V
		*v, *valid = zero, false
		return nil
	}
	var decoded V
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*v, *valid = decoded, true
	return nil
}

func ptr[V any](v V, valid bool) *V {
	if !valid {
		return nil
	}
	return &v
}
