package nullable

import "database/sql"

// String is a string that may be NULL.
type String struct {
	sql.NullString
}

func NewString(v string) String {
	return String{sql.NullString{String: v, Valid: true}}
}

// StringFrom maps nil to NULL.
func StringFrom(p *string) String {
	if p == nil {
		return String{}
	}
	return NewString(*p)
}

func (n String) MarshalJSON() ([]byte, error) { return marshal(n.String, n.Valid) }

func (n *String) UnmarshalJSON(data []byte) error { return unmarshal(data, &n.String, &n.Valid) }

// ForceValue returns the zero string for NULL.
func (n String) ForceValue() string { return n.String }

func (n String) Ptr() *string { return ptr(n.String, n.Valid) }

func (n String) IsNil() bool { return !n.Valid }
