/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package ion

import (
	"bytes"
	"math"
	"math/big"
)

// A Value is a single Ion value without its annotations: one of the thirteen
// Ion types, or a null of any of those types. The zero Value has NoType and
// represents the absence of a value.
//
// Values are immutable once constructed and safe for concurrent use.
type Value struct {
	t Type
	v interface{}
}

// NewNullValue returns the untyped null value, null.null.
func NewNullValue() Value {
	return Value{t: NullType}
}

// NewTypedNullValue returns a null value of the given type, e.g. null.int.
func NewTypedNullValue(t Type) Value {
	return Value{t: t}
}

// NewBoolValue returns a bool value.
func NewBoolValue(val bool) Value {
	return Value{t: BoolType, v: val}
}

// NewIntValue returns an int value.
func NewIntValue(val int64) Value {
	return Value{t: IntType, v: val}
}

// NewBigIntValue returns an int value from a big.Int. A value that fits in an
// int64 is stored as one, so ints compare equal regardless of how they were
// constructed.
func NewBigIntValue(val *big.Int) Value {
	if val.IsInt64() {
		return Value{t: IntType, v: val.Int64()}
	}
	return Value{t: IntType, v: new(big.Int).Set(val)}
}

// NewFloatValue returns a float value.
func NewFloatValue(val float64) Value {
	return Value{t: FloatType, v: val}
}

// NewDecimalValue returns a decimal value.
func NewDecimalValue(val *Decimal) Value {
	if val == nil {
		return Value{t: DecimalType}
	}
	return Value{t: DecimalType, v: val}
}

// NewTimestampValue returns a timestamp value.
func NewTimestampValue(val Timestamp) Value {
	return Value{t: TimestampType, v: val}
}

// NewStringValue returns a string value.
func NewStringValue(val string) Value {
	return Value{t: StringType, v: val}
}

// NewSymbolValue returns a symbol value.
func NewSymbolValue(val SymbolToken) Value {
	return Value{t: SymbolType, v: val}
}

// NewClobValue returns a clob value. The given bytes are copied.
func NewClobValue(val []byte) Value {
	if val == nil {
		return Value{t: ClobType}
	}
	return Value{t: ClobType, v: copyBytes(val)}
}

// NewBlobValue returns a blob value. The given bytes are copied.
func NewBlobValue(val []byte) Value {
	if val == nil {
		return Value{t: BlobType}
	}
	return Value{t: BlobType, v: copyBytes(val)}
}

// NewListValue returns a list value.
func NewListValue(val *List) Value {
	if val == nil {
		return Value{t: ListType}
	}
	return Value{t: ListType, v: val}
}

// NewSexpValue returns an s-expression value.
func NewSexpValue(val *Sexp) Value {
	if val == nil {
		return Value{t: SexpType}
	}
	return Value{t: SexpType, v: val}
}

// NewStructValue returns a struct value.
func NewStructValue(val *Struct) Value {
	if val == nil {
		return Value{t: StructType}
	}
	return Value{t: StructType, v: val}
}

// Type returns the Ion type of this value. A typed null has the type it was
// declared with; null.null has NullType.
func (v Value) Type() Type {
	return v.t
}

// IsNull returns true if this value is a null of any type.
func (v Value) IsNull() bool {
	return v.t != NoType && v.v == nil
}

// Equal reports whether two values are structurally equal. Values of
// different types are never equal. Floats compare per Go's == operator, so
// NaN is not equal to itself while positive and negative zero are equal.
// Timestamps must agree in instant, precision, and timezone kind; decimals in
// coefficient, exponent, and negative-zero-ness. Structs compare as unordered
// multi-maps of their fields.
func (v Value) Equal(o Value) bool {
	return v.eq(o, false)
}

// Equivalent reports whether two values are equivalent per the Ion data
// model. It differs from Equal only for floats, where NaN is equivalent to
// itself, and timestamps, where only the instant and precision are compared.
func (v Value) Equivalent(o Value) bool {
	return v.eq(o, true)
}

func (v Value) eq(o Value, ionEq bool) bool {
	if v.t != o.t {
		return false
	}
	if v.v == nil || o.v == nil {
		// Typed nulls of the same type are equal to each other.
		return v.v == nil && o.v == nil
	}

	switch v.t {
	case BoolType:
		return v.v.(bool) == o.v.(bool)

	case IntType:
		switch a := v.v.(type) {
		case int64:
			b, ok := o.v.(int64)
			return ok && a == b
		case *big.Int:
			b, ok := o.v.(*big.Int)
			return ok && a.Cmp(b) == 0
		default:
			return false
		}

	case FloatType:
		a := v.v.(float64)
		b := o.v.(float64)
		if ionEq && math.IsNaN(a) && math.IsNaN(b) {
			return true
		}
		return a == b

	case DecimalType:
		return v.v.(*Decimal).Equivalent(o.v.(*Decimal))

	case TimestampType:
		a := v.v.(Timestamp)
		b := o.v.(Timestamp)
		if ionEq {
			return a.Equivalent(b)
		}
		return a.Equal(b)

	case SymbolType:
		return v.v.(SymbolToken).Equal(o.v.(SymbolToken))

	case StringType:
		return v.v.(string) == o.v.(string)

	case ClobType, BlobType:
		return bytes.Equal(v.v.([]byte), o.v.([]byte))

	case ListType:
		return elementsEq(v.v.(*List).elems, o.v.(*List).elems, ionEq)

	case SexpType:
		return elementsEq(v.v.(*Sexp).elems, o.v.(*Sexp).elems, ionEq)

	case StructType:
		return v.v.(*Struct).eq(o.v.(*Struct))

	default:
		return false
	}
}

func copyBytes(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)
	return out
}
