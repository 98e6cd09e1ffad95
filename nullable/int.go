package nullable

import "database/sql"

// Int is a int64 that may be NULL.
type Int struct {
	sql.NullInt64
}

func NewInt(v int64) Int {
	return Int{sql.NullInt64{Int64: v, Valid: true}}
}

// IntFrom maps nil to NULL.
func IntFrom(p *int64) Int {
	if p == nil {
		return Int{}
	}
	return NewInt(*p)
}

func (n Int) MarshalJSON() ([]byte, error) { return marshal(n.Int64, n.Valid) }

func (n *Int) UnmarshalJSON(data []byte) error { return unmarshal(data, &n.Int64, &n.Valid) }

// ForceValue returns the zero int64 for NULL.
func (n Int) ForceValue() int64 { return n.Int64 }

func (n Int) Ptr() *int64 { return ptr(n.Int64, n.Valid) }

func (n Int) IsNil() bool { return !n.Valid }
