package nullable

import "database/sql"

// Bool is a bool that may be NULL.
type Bool struct {
	sql.NullBool
}

func NewBool(v bool) Bool {
	return Bool{sql.NullBool{Bool: v, Valid: true}}
}

// BoolFrom maps nil to NULL.
func BoolFrom(p *bool) Bool {
	if p == nil {
		return Bool{}
	}
	return NewBool(*p)
}

func (n Bool) MarshalJSON() ([]byte, error) { return marshal(n.Bool, n.Valid) }

func (n *Bool) UnmarshalJSON(data []byte) error { return unmarshal(data, &n.Bool, &n.Valid) }

// ForceValue returns the zero bool for NULL.
func (n Bool) ForceValue() bool { return n.Bool }

func (n Bool) Ptr() *bool { return ptr(n.Bool, n.Valid) }

func (n Bool) IsNil() bool { return !n.Valid }
