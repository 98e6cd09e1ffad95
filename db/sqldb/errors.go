package sqldb

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoRows is returned by Row.Scan when the query yielded no row
	ErrNoRows = errors.New("sqldb: no rows in result set")

	ErrUnsupportedType = errors.New("sqldb: unsupported destination type")
	ErrTypeMismatch    = errors.New("sqldb: type mismatch")
	ErrConversion      = errors.New("sqldb: conversion failed")
	ErrInvalidState    = errors.New("sqldb: invalid cursor state")
	ErrNoColumns       = errors.New("sqldb: result has no columns")
)

// UnsupportedTypeError reports a destination type that cannot be built as a record.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("sqldb: cannot map rows into %s: need a struct or a FieldLister", e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

// TypeMismatchError reports a cell that cannot be assigned to its matched field.
// Row is zero-based.
type TypeMismatchError struct {
	Row    int
	Field  string
	Column int
	Want   reflect.Type
	Got    reflect.Type
	Err    error // set when a sql.Scanner field rejected the value
}

func (e *TypeMismatchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sqldb: row %d: field %q (column %d): %v", e.Row, e.Field, e.Column, e.Err)
	}
	return fmt.Sprintf("sqldb: row %d: field %q (column %d): cannot assign %s to %s",
		e.Row, e.Field, e.Column, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func (e *TypeMismatchError) Unwrap() error { return e.Err }

// ConversionError reports a scalar cell whose text form cannot be parsed into the target type.
type ConversionError struct {
	Row  int
	Text string
	Type reflect.Type
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("sqldb: row %d: cannot convert %q to %s: %v", e.Row, e.Text, e.Type, e.Err)
}

func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

func (e *ConversionError) Unwrap() error { return e.Err }
