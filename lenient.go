package rdapkit

import (
	"encoding/json"
	"strconv"
	"strings"
)

// VectorStringish is semantically a list<string>, but some RDAP servers
// serialize a single-element list as a bare JSON string. Decoding either
// shape succeeds; the "decoded as scalar" deviation is retained so the
// conformance checker can flag it. Re-encoding always emits a JSON array.
type VectorStringish struct {
	vec      []string
	isString bool
}

// NewVectorStringish builds a VectorStringish from a slice, with no lenient
// provenance (as if it had arrived as a proper JSON array).
func NewVectorStringish(vec []string) VectorStringish {
	return VectorStringish{vec: vec}
}

// VectorStringishFromString builds a VectorStringish from a single value,
// as would result from decoding a bare JSON string.
func VectorStringishFromString(s string) VectorStringish {
	return VectorStringish{vec: []string{s}, isString: true}
}

// Vec returns the underlying []string.
func (v VectorStringish) Vec() []string { return v.vec }

// IsString reports whether decoding observed a bare JSON string rather than
// an array.
func (v VectorStringish) IsString() bool { return v.isString }

func (v *VectorStringish) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v.vec = []string{s}
		v.isString = true
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	v.vec = arr
	v.isString = false
	return nil
}

func (v VectorStringish) MarshalJSON() ([]byte, error) {
	if v.vec == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.vec)
}

// Boolish is semantically a bool, but some RDAP servers serialize it as a
// string. String truth table: trim whitespace, lowercase; "true", "t",
// "yes", "y" are true, everything else is false.
type Boolish struct {
	val      bool
	isString bool
}

// NewBoolish builds a Boolish with no lenient provenance.
func NewBoolish(b bool) Boolish { return Boolish{val: b} }

// Bool returns the boolean value.
func (b Boolish) Bool() bool { return b.val }

// IsString reports whether decoding observed a JSON string rather than a
// JSON boolean.
func (b Boolish) IsString() bool { return b.isString }

func boolishIsTrue(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "t" || s == "yes" || s == "y"
}

func (b *Boolish) UnmarshalJSON(raw []byte) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "true" {
		b.val, b.isString = true, false
		return nil
	}
	if trimmed == "false" {
		b.val, b.isString = false, false
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return err
	}
	b.val = boolishIsTrue(s)
	b.isString = true
	return nil
}

func (b Boolish) MarshalJSON() ([]byte, error) {
	if b.val {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// numberishWidth constrains Numberish to the integer widths the spec names.
type numberishWidth interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Numberish is semantically an unsigned integer of width T, but some RDAP
// servers serialize it as a decimal string. Out-of-range conversions yield
// "no value" (ok=false).
type Numberish[T numberishWidth] struct {
	num      uint64
	isString bool
	valid    bool
}

// NewNumberish builds a Numberish with no lenient provenance.
func NewNumberish[T numberishWidth](v T) Numberish[T] {
	return Numberish[T]{num: uint64(v), valid: true}
}

// IsString reports whether decoding observed a JSON string rather than a
// JSON number.
func (n Numberish[T]) IsString() bool { return n.isString }

// Value returns the typed value and whether it was representable in T.
func (n Numberish[T]) Value() (T, bool) {
	if !n.valid {
		return 0, false
	}
	v := T(n.num)
	if uint64(v) != n.num {
		return 0, false
	}
	return v, true
}

func (n *Numberish[T]) UnmarshalJSON(raw []byte) error {
	trimmed := strings.TrimSpace(string(raw))
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		n.isString = true
		u, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			n.valid = false
			return nil
		}
		n.num, n.valid = u, true
		return nil
	}
	var u uint64
	if err := json.Unmarshal(raw, &u); err != nil {
		n.valid = false
		return nil
	}
	n.num, n.valid, n.isString = u, true, false
	return nil
}

func (n Numberish[T]) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.num)
}
