package table

import (
	"strconv"

	jsonpool "github.com/dataforge-io/dataprep/pkg/json"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	// KindMissing marks an absent cell. It is distinct from the empty string
	// and from any number, and never participates in numeric computation.
	KindMissing Kind = iota
	// KindString marks a textual cell
	KindString
	// KindNumber marks a numeric cell
	KindNumber
)

// String returns a short name for the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "missing"
	}
}

// Value is a single table cell: missing, string, or number. The zero Value
// is missing. Values are immutable; all accessors are copy-returning.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Missing returns the missing-value marker
func Missing() Value {
	return Value{kind: KindMissing}
}

// String returns a textual cell value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric cell value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Kind returns the variant held by the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is the missing marker
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Str returns the textual payload and whether the value is a string
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Num returns the numeric payload and whether the value is a number
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Equal reports whether two values hold the same variant and payload
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	default:
		return true
	}
}

// Interface returns the value as an untyped interface for logging and JSON
// encoding: nil for missing, string for text, float64 for numbers.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	default:
		return nil
	}
}

// MarshalJSON encodes missing as null, strings as JSON strings, and numbers
// as JSON numbers
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return jsonpool.Marshal(v.str)
	case KindNumber:
		return strconv.AppendFloat(nil, v.num, 'g', -1, 64), nil
	default:
		return []byte("null"), nil
	}
}
