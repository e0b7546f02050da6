package reltab

import (
	"errors"
	"fmt"
)

// ErrUnsupported is wrapped by UnsupportedError so callers can test for
// the capability-not-available condition with errors.Is.
var ErrUnsupported = errors.New("operation not supported")

// SchemaMismatchError reports that two schemas cannot take part in a
// union or minus. Position is the first diverging attribute position,
// or -1 when the arities already disagree.
type SchemaMismatchError struct {
	Position int
	ArityA   int
	ArityB   int
	KindA    Kind
	KindB    Kind
}

func (e *SchemaMismatchError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("schema mismatch: arity %d vs %d", e.ArityA, e.ArityB)
	}
	return fmt.Sprintf("schema mismatch: domain %v vs %v at position %d", e.KindA, e.KindB, e.Position)
}

// UnresolvedAttributeError reports an attribute name absent from a schema.
type UnresolvedAttributeError struct {
	Attr string
}

func (e *UnresolvedAttributeError) Error() string {
	return fmt.Sprintf("unresolved attribute %q", e.Attr)
}

// MalformedConditionError reports a condition string that failed to parse
// or cannot be evaluated against the schema. It is raised before any
// tuple is scanned.
type MalformedConditionError struct {
	Cond string
	Err  error
}

func (e *MalformedConditionError) Unwrap() error {
	return e.Err
}

func (e *MalformedConditionError) Error() string {
	return fmt.Sprintf("malformed condition %q: %v", e.Cond, e.Err)
}

// TypeMismatchError reports a tuple that does not conform to a schema.
// Position is the first offending value position, or -1 when the tuple
// has the wrong arity.
type TypeMismatchError struct {
	Position  int
	Want, Got Kind
	WantArity int
	GotArity  int
}

func (e *TypeMismatchError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("type mismatch: tuple arity %d, schema arity %d", e.GotArity, e.WantArity)
	}
	return fmt.Sprintf("type mismatch: %v value in %v column at position %d", e.Got, e.Want, e.Position)
}

// KeyConflictError reports an insert whose key value is already present
// in the primary-key index.
type KeyConflictError struct {
	Table string
	Key   Key
}

func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("%s: duplicate key %v", e.Table, e.Key)
}

// UnsupportedError reports an operator that is declared but deliberately
// not implemented (index join, hash join).
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrUnsupported)
}
