package nullable

import "database/sql"

// Float is a float64 that may be NULL.
type Float struct {
	sql.NullFloat64
}

func NewFloat(v float64) Float {
	return Float{sql.NullFloat64{Float64: v, Valid: true}}
}

// FloatFrom maps nil to NULL.
func FloatFrom(p *float64) Float {
	if p == nil {
		return Float{}
	}
	return NewFloat(*p)
}

func (n Float) MarshalJSON() ([]byte, error) { return marshal(n.Float64, n.Valid) }

func (n *Float) UnmarshalJSON(data []byte) error { return unmarshal(data, &n.Float64, &n.Valid) }

// ForceValue returns the zero float64 for NULL.
func (n Float) ForceValue() float64 { return n.Float64 }

func (n Float) Ptr() *float64 { return ptr(n.Float64, n.Valid) }

func (n Float) IsNil() bool { return !n.Valid }
