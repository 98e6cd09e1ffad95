package sqldb

import (
	"database/sql"
	"reflect"
)

// Field is a named, settable slot of a destination record.
// Target must be a non-nil pointer into the record.
type Field struct {
	Name   string
	Target any
}

// FieldLister is implemented by *Model types that register their settable fields
// explicitly instead of being walked by reflection.
//
//	func (u *User) Fields() []sqldb.Field {
//		return []sqldb.Field{{"ID", &u.ID}, {"Email", &u.Email}}
//	}
type FieldLister interface {
	Fields() []Field
}

var scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()

// newRecord allocates a zero T and lists its settable fields.
func newRecord[T any]() (*T, []Field, error) {
	p := new(T)
	if fl, ok := any(p).(FieldLister); ok {
		return p, fl.Fields(), nil
	}
	rv := reflect.ValueOf(p).Elem()
	if rv.Kind() != reflect.Struct {
		return nil, nil, &UnsupportedTypeError{Type: rv.Type()}
	}
	return p, structFields(rv, nil), nil
}

// structFields walks exported fields in declaration order; embedded structs are flattened.
func structFields(v reflect.Value, out []Field) []Field {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, hasTag := sf.Tag.Lookup("db")
		if tag == "-" {
			continue
		}
		fv := v.Field(i)
		// exported fields of an unexported embedded struct are still promoted
		if sf.Anonymous && !hasTag && sf.Type.Kind() == reflect.Struct && !reflect.PointerTo(sf.Type).Implements(scannerType) {
			out = structFields(fv, out)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		if tag != "" {
			name = tag
		}
		out = append(out, Field{Name: name, Target: fv.Addr().Interface()})
	}
	return out
}

// setField stores value into target. The returned error is a bare *TypeMismatchError
// without row or column; the caller fills those in.
func setField(f Field, value any) error {
	if s, ok := f.Target.(sql.Scanner); ok {
		if err := s.Scan(value); err != nil {
			return &TypeMismatchError{Field: f.Name, Got: reflect.TypeOf(value), Err: err}
		}
		return nil
	}
	pv := reflect.ValueOf(f.Target)
	if pv.Kind() != reflect.Pointer || pv.IsNil() {
		return &TypeMismatchError{Field: f.Name, Want: reflect.TypeOf(f.Target), Got: reflect.TypeOf(value)}
	}
	dst := pv.Elem()
	src := reflect.ValueOf(value)
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case dst.Kind() == reflect.Pointer && src.Type().AssignableTo(dst.Type().Elem()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(src)
		dst.Set(p)
	default:
		return &TypeMismatchError{Field: f.Name, Want: dst.Type(), Got: src.Type()}
	}
	return nil
}
