package reltab

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the scalar domain of an attribute. The set is closed:
// four integer widths, two float widths, characters and strings.
type Kind uint8

const (
	KindInt64 Kind = iota
	KindInt32
	KindInt16
	KindInt8
	KindFloat64
	KindFloat32
	KindChar
	KindString
)

var kindNames = map[Kind]string{
	KindInt64:   "Integer64",
	KindInt32:   "Integer32",
	KindInt16:   "Integer16",
	KindInt8:    "Integer8",
	KindFloat64: "Float64",
	KindFloat32: "Float32",
	KindChar:    "Character",
	KindString:  "String",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindNamed maps a domain name from a textual schema definition
// (e.g. "Integer32", "String") to its Kind.
func KindNamed(name string) (Kind, bool) {
	for k, s := range kindNames {
		if s == name {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) isInteger() bool {
	return k == KindInt64 || k == KindInt32 || k == KindInt16 || k == KindInt8
}

func (k Kind) isFloat() bool {
	return k == KindFloat64 || k == KindFloat32
}

// Value is a tagged scalar. The payload lives in num, fp or str depending
// on the kind; the other fields stay zero. Values are immutable.
type Value struct {
	kind Kind
	num  int64
	fp   float64
	str  string
}

func Int64(v int64) Value     { return Value{kind: KindInt64, num: v} }
func Int32(v int32) Value     { return Value{kind: KindInt32, num: int64(v)} }
func Int16(v int16) Value     { return Value{kind: KindInt16, num: int64(v)} }
func Int8(v int8) Value       { return Value{kind: KindInt8, num: int64(v)} }
func Float64(v float64) Value { return Value{kind: KindFloat64, fp: v} }
func Float32(v float32) Value { return Value{kind: KindFloat32, fp: float64(v)} }
func Char(r rune) Value       { return Value{kind: KindChar, num: int64(r)} }
func String(s string) Value   { return Value{kind: KindString, str: s} }

func (v Value) Kind() Kind     { return v.kind }
func (v Value) Int() int64     { return v.num }
func (v Value) Float() float64 { return v.fp }
func (v Value) Rune() rune     { return rune(v.num) }
func (v Value) Text() string   { return v.str }

func (v Value) String() string {
	switch v.kind {
	case KindInt64, KindInt32, KindInt16, KindInt8:
		return strconv.FormatInt(v.num, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.fp, 'g', -1, 64)
	case KindFloat32:
		return strconv.FormatFloat(v.fp, 'g', -1, 32)
	case KindChar:
		return string(rune(v.num))
	case KindString:
		return v.str
	default:
		return "<invalid>"
	}
}

// Equal reports element-wise value equality: same kind, same payload.
// Float payloads follow storage identity rather than IEEE comparison:
// negative and positive zero are equal, and NaN equals NaN.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindFloat64, KindFloat32:
		if math.IsNaN(v.fp) || math.IsNaN(w.fp) {
			return math.IsNaN(v.fp) && math.IsNaN(w.fp)
		}
		return v.fp == w.fp
	case KindString:
		return v.str == w.str
	default:
		return v.num == w.num
	}
}

// Compare orders two values of the same kind: numeric kinds numerically,
// text kinds lexicographically. Comparing across kinds is a caller bug;
// the result for mismatched kinds is the kind order itself so that the
// ordering stays total.
func (v Value) Compare(w Value) int {
	if v.kind != w.kind {
		return cmpOrdered(v.kind, w.kind)
	}
	switch v.kind {
	case KindFloat64, KindFloat32:
		return cmpFloat(v.fp, w.fp)
	case KindString:
		return cmpOrdered(v.str, w.str)
	default:
		return cmpOrdered(v.num, w.num)
	}
}

// cmpFloat totally orders float payloads: NaN equals NaN and sorts
// above every other value, matching the ordered key encoding.
func cmpFloat(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmpOrdered(a, b)
}

func cmpOrdered[T ~int64 | ~uint8 | ~float64 | ~string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// literalValue coerces a decimal integer literal from a condition string
// to the kind of the column it is compared against. Only numeric kinds
// accept integer literals.
func literalValue(lit int64, kind Kind) (Value, error) {
	switch kind {
	case KindInt64:
		return Int64(lit), nil
	case KindInt32:
		if lit < -1<<31 || lit > 1<<31-1 {
			return Value{}, fmt.Errorf("literal %d out of range for %v", lit, kind)
		}
		return Int32(int32(lit)), nil
	case KindInt16:
		if lit < -1<<15 || lit > 1<<15-1 {
			return Value{}, fmt.Errorf("literal %d out of range for %v", lit, kind)
		}
		return Int16(int16(lit)), nil
	case KindInt8:
		if lit < -1<<7 || lit > 1<<7-1 {
			return Value{}, fmt.Errorf("literal %d out of range for %v", lit, kind)
		}
		return Int8(int8(lit)), nil
	case KindFloat64:
		return Float64(float64(lit)), nil
	case KindFloat32:
		return Float32(float32(lit)), nil
	default:
		return Value{}, fmt.Errorf("integer literal cannot be compared to %v column", kind)
	}
}
