package nullable

import (
	"database/sql"
	"time"
)

// Time is a time.Time that may be NULL. JSON text is RFC 3339 without fractional seconds.
type Time struct {
	sql.NullTime
}

func NewTime(t time.Time) Time {
	return Time{sql.NullTime{Time: t, Valid: true}}
}

func TimeFrom(p *time.Time) Time {
	if p == nil {
		return Time{}
	}
	return NewTime(*p)
}

func (n Time) MarshalJSON() ([]byte, error) {
	return marshal(n.Time.Format(time.RFC3339), n.Valid)
}

func (n *Time) UnmarshalJSON(data []byte) error {
	var text string
	var valid bool
	if err := unmarshal(data, &text, &valid); err != nil {
		return err
	}
	if !valid {
		n.Time, n.Valid = time.Time{}, false
		return nil
	}
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return err
	}
	n.Time, n.Valid = t, true
	return nil
}

func (n Time) ForceValue() time.Time { return n.Time }

func (n Time) Ptr() *time.Time { return ptr(n.Time, n.Valid) }

func (n Time) IsNil() bool { return !n.Valid }
