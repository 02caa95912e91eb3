// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Value is a single remote configuration value.
//
// It is a discriminated union: Type selects which of the payload fields is
// meaningful, the remaining ones are left at their zero values. A Value has
// no "null" variant; absence of a key is modelled by the accessors returning
// the zero value of the requested type.
//
// Coercion policy used by the As* methods (identical for every key):
//   - AsString: numbers are formatted with strconv, booleans as "true"/"false".
//   - AsBoolean: strings matching 1|true|t|yes|y|on (case-insensitive) are
//     true and 0|false|f|no|n|off|"" are false; integers 1 and 0 map to
//     true and false. Anything else, floats included, yields false.
//   - AsInteger: numeric strings are parsed base 10; floats are accepted when
//     they hold an integral value that fits int64. Booleans yield 0.
//   - AsFloat: numeric strings are parsed; integers are widened. Booleans
//     yield 0.
type Value struct {
	Type ValueType

	Str   string
	Bool  bool
	Int   int64
	Float float64
}

var (
	trueRegexp  = regexp.MustCompile(`(?i)^(1|true|t|yes|y|on)$`)
	falseRegexp = regexp.MustCompile(`(?i)^(0|false|f|no|n|off|)$`)
)

// StringValue builds a [TypeString] value.
func StringValue(v string) Value { return Value{Type: TypeString, Str: v} }

// BooleanValue builds a [TypeBoolean] value.
func BooleanValue(v bool) Value { return Value{Type: TypeBoolean, Bool: v} }

// IntegerValue builds a [TypeInteger] value.
func IntegerValue(v int64) Value { return Value{Type: TypeInteger, Int: v} }

// FloatValue builds a [TypeFloat] value.
func FloatValue(v float64) Value { return Value{Type: TypeFloat, Float: v} }

// ParseValue builds a Value of type t from its textual literal.
// It is used by the defaults and template loaders, where every literal is
// declared together with its type. Returns [ErrValueTypeMismatch] (wrapped)
// when the literal cannot be represented as t.
func ParseValue(t ValueType, literal string) (Value, error) {
	switch t {
	case TypeString:
		return StringValue(literal), nil
	case TypeBoolean:
		s := strings.TrimSpace(literal)
		switch {
		case trueRegexp.MatchString(s) && s != "":
			return BooleanValue(true), nil
		case falseRegexp.MatchString(s) && s != "":
			return BooleanValue(false), nil
		}
	case TypeInteger:
		if n, err := strconv.ParseInt(strings.TrimSpace(literal), 10, 64); err == nil {
			return IntegerValue(n), nil
		}
	case TypeFloat:
		if f, err := strconv.ParseFloat(strings.TrimSpace(literal), 64); err == nil {
			return FloatValue(f), nil
		}
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownValueType, int(t))
	}

	return Value{}, fmt.Errorf("%w: %q is not a valid %s", ErrValueTypeMismatch, literal, t)
}

// Equal reports whether v and o carry the same discriminant and payload.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}

	switch v.Type {
	case TypeString:
		return v.Str == o.Str
	case TypeBoolean:
		return v.Bool == o.Bool
	case TypeInteger:
		return v.Int == o.Int
	case TypeFloat:
		return v.Float == o.Float || (math.IsNaN(v.Float) && math.IsNaN(o.Float))
	}
	return true
}

// String returns the textual form of the payload. It is identical to
// [Value.AsString] and exists so that values print naturally in logs.
func (v Value) String() string {
	return v.AsString()
}

// AsString returns the value coerced to a string.
func (v Value) AsString() string {
	switch v.Type {
	case TypeString:
		return v.Str
	case TypeBoolean:
		return strconv.FormatBool(v.Bool)
	case TypeInteger:
		return strconv.FormatInt(v.Int, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	}
	return ""
}

// AsBoolean returns the value coerced to a bool.
func (v Value) AsBoolean() bool {
	switch v.Type {
	case TypeBoolean:
		return v.Bool
	case TypeString:
		return trueRegexp.MatchString(strings.TrimSpace(v.Str))
	case TypeInteger:
		return v.Int == 1
	}
	return false
}

// AsInteger returns the value coerced to an int64.
func (v Value) AsInteger() int64 {
	switch v.Type {
	case TypeInteger:
		return v.Int
	case TypeString:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		if err != nil {
			return 0
		}
		return n
	case TypeFloat:
		if v.Float != math.Trunc(v.Float) || v.Float >= math.MaxInt64 || v.Float < math.MinInt64 {
			return 0
		}
		return int64(v.Float)
	}
	return 0
}

// AsFloat returns the value coerced to a float64.
func (v Value) AsFloat() float64 {
	switch v.Type {
	case TypeFloat:
		return v.Float
	case TypeInteger:
		return float64(v.Int)
	case TypeString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// wireValue is the JSON shape of a Value: {"type":"integer","value":25}.
type wireValue struct {
	Type  ValueType       `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.Type {
	case TypeString:
		payload = v.Str
	case TypeBoolean:
		payload = v.Bool
	case TypeInteger:
		payload = v.Int
	case TypeFloat:
		payload = v.Float
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownValueType, int(v.Type))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireValue{Type: v.Type, Value: raw})
}

// UnmarshalJSON implements json.Unmarshaler. The payload must match the
// declared type exactly; a string literal is not accepted for an integer.
func (v *Value) UnmarshalJSON(b []byte) error {
	var w wireValue
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if len(w.Value) == 0 {
		return fmt.Errorf("%w: missing value for type %s", ErrValueTypeMismatch, w.Type)
	}

	out := Value{Type: w.Type}
	var err error
	switch w.Type {
	case TypeString:
		err = json.Unmarshal(w.Value, &out.Str)
	case TypeBoolean:
		err = json.Unmarshal(w.Value, &out.Bool)
	case TypeInteger:
		err = json.Unmarshal(w.Value, &out.Int)
	case TypeFloat:
		err = json.Unmarshal(w.Value, &out.Float)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownValueType, int(w.Type))
	}
	if err != nil {
		return fmt.Errorf("%w: %s", ErrValueTypeMismatch, err.Error())
	}

	*v = out
	return nil
}
