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
	"fmt"
	"math/big"
	"strings"
)

// An Element is a Value together with its ordered sequence of annotations.
// It is the unit of an Ion stream: ReadAll returns Elements, and an Element
// knows how to write itself back out.
//
// Elements are immutable once constructed and safe for concurrent use. The
// With* methods return modified copies rather than mutating in place.
type Element struct {
	annotations []SymbolToken
	value       Value
}

// NewElement returns an un-annotated element wrapping the given value.
func NewElement(v Value) Element {
	return Element{value: v}
}

// NewNullElement returns an untyped null element.
func NewNullElement() Element {
	return Element{value: NewNullValue()}
}

// NewTypedNullElement returns a null element of the given type.
func NewTypedNullElement(t Type) Element {
	return Element{value: NewTypedNullValue(t)}
}

// NewBoolElement returns a bool element.
func NewBoolElement(val bool) Element {
	return Element{value: NewBoolValue(val)}
}

// NewIntElement returns an int element.
func NewIntElement(val int64) Element {
	return Element{value: NewIntValue(val)}
}

// NewBigIntElement returns an int element from a big.Int.
func NewBigIntElement(val *big.Int) Element {
	return Element{value: NewBigIntValue(val)}
}

// NewFloatElement returns a float element.
func NewFloatElement(val float64) Element {
	return Element{value: NewFloatValue(val)}
}

// NewDecimalElement returns a decimal element.
func NewDecimalElement(val *Decimal) Element {
	return Element{value: NewDecimalValue(val)}
}

// NewTimestampElement returns a timestamp element.
func NewTimestampElement(val Timestamp) Element {
	return Element{value: NewTimestampValue(val)}
}

// NewStringElement returns a string element.
func NewStringElement(val string) Element {
	return Element{value: NewStringValue(val)}
}

// NewSymbolElement returns a symbol element.
func NewSymbolElement(val SymbolToken) Element {
	return Element{value: NewSymbolValue(val)}
}

// NewSymbolElementFromString returns a symbol element with the given text.
func NewSymbolElementFromString(val string) Element {
	return Element{value: NewSymbolValue(NewSymbolTokenFromString(val))}
}

// NewClobElement returns a clob element.
func NewClobElement(val []byte) Element {
	return Element{value: NewClobValue(val)}
}

// NewBlobElement returns a blob element.
func NewBlobElement(val []byte) Element {
	return Element{value: NewBlobValue(val)}
}

// NewListElement returns a list element containing the given elements.
func NewListElement(elems ...Element) Element {
	return Element{value: NewListValue(NewList(elems...))}
}

// NewSexpElement returns an s-expression element containing the given elements.
func NewSexpElement(elems ...Element) Element {
	return Element{value: NewSexpValue(NewSexp(elems...))}
}

// NewStructElement returns a struct element containing the given fields.
func NewStructElement(fields ...StructField) Element {
	return Element{value: NewStructValue(NewStruct(fields...))}
}

// WithAnnotations returns a copy of this element annotated with the given
// symbol texts, replacing any existing annotations.
func (e Element) WithAnnotations(texts ...string) Element {
	as := make([]SymbolToken, len(texts))
	for i, text := range texts {
		as[i] = NewSymbolTokenFromString(text)
	}
	return Element{annotations: as, value: e.value}
}

// WithAnnotationSymbols returns a copy of this element annotated with the
// given symbol tokens, replacing any existing annotations.
func (e Element) WithAnnotationSymbols(as ...SymbolToken) Element {
	cp := make([]SymbolToken, len(as))
	copy(cp, as)
	return Element{annotations: cp, value: e.value}
}

// Value returns the element's value, without its annotations.
func (e Element) Value() Value {
	return e.value
}

// Type returns the Ion type of the element's value.
func (e Element) Type() Type {
	return e.value.Type()
}

// IsNull returns true if the element's value is a null of any type.
func (e Element) IsNull() bool {
	return e.value.IsNull()
}

// Annotations returns the element's annotations in order.
func (e Element) Annotations() []SymbolToken {
	if len(e.annotations) == 0 {
		return nil
	}
	as := make([]SymbolToken, len(e.annotations))
	copy(as, e.annotations)
	return as
}

// HasAnnotation returns true if any of the element's annotations has the
// given text.
func (e Element) HasAnnotation(text string) bool {
	for _, a := range e.annotations {
		if a.Text != nil && *a.Text == text {
			return true
		}
	}
	return false
}

// AsBool returns the element's value as a bool. It returns false if the
// element is not a non-null bool.
func (e Element) AsBool() (bool, bool) {
	val, ok := e.value.v.(bool)
	return val, ok
}

// AsInt64 returns the element's value as an int64. It returns false if the
// element is not a non-null int that fits in 64 bits.
func (e Element) AsInt64() (int64, bool) {
	val, ok := e.value.v.(int64)
	return val, ok
}

// AsBigInt returns the element's value as a big.Int. It returns false if the
// element is not a non-null int.
func (e Element) AsBigInt() (*big.Int, bool) {
	switch val := e.value.v.(type) {
	case int64:
		return big.NewInt(val), true
	case *big.Int:
		return new(big.Int).Set(val), true
	default:
		return nil, false
	}
}

// AsFloat returns the element's value as a float64. It returns false if the
// element is not a non-null float.
func (e Element) AsFloat() (float64, bool) {
	val, ok := e.value.v.(float64)
	return val, ok
}

// AsDecimal returns the element's value as a Decimal. It returns false if
// the element is not a non-null decimal.
func (e Element) AsDecimal() (*Decimal, bool) {
	if e.value.t != DecimalType || e.value.v == nil {
		return nil, false
	}
	return e.value.v.(*Decimal), true
}

// AsTimestamp returns the element's value as a Timestamp. It returns false
// if the element is not a non-null timestamp.
func (e Element) AsTimestamp() (Timestamp, bool) {
	val, ok := e.value.v.(Timestamp)
	return val, ok
}

// AsString returns the element's value as a string. It returns false if the
// element is not a non-null string.
func (e Element) AsString() (string, bool) {
	if e.value.t != StringType || e.value.v == nil {
		return "", false
	}
	return e.value.v.(string), true
}

// AsSymbol returns the element's value as a SymbolToken. It returns false if
// the element is not a non-null symbol.
func (e Element) AsSymbol() (SymbolToken, bool) {
	val, ok := e.value.v.(SymbolToken)
	return val, ok
}

// AsText returns the element's text. It returns false if the element is
// neither a non-null string nor a symbol with known text.
func (e Element) AsText() (string, bool) {
	switch e.value.t {
	case StringType:
		return e.AsString()
	case SymbolType:
		if st, ok := e.value.v.(SymbolToken); ok && st.Text != nil {
			return *st.Text, true
		}
	}
	return "", false
}

// AsClob returns the element's value as a clob. It returns false if the
// element is not a non-null clob.
func (e Element) AsClob() ([]byte, bool) {
	if e.value.t != ClobType {
		return nil, false
	}
	return e.AsLob()
}

// AsBlob returns the element's value as a blob. It returns false if the
// element is not a non-null blob.
func (e Element) AsBlob() ([]byte, bool) {
	if e.value.t != BlobType {
		return nil, false
	}
	return e.AsLob()
}

// AsLob returns the element's bytes if it is a non-null clob or blob.
func (e Element) AsLob() ([]byte, bool) {
	val, ok := e.value.v.([]byte)
	if !ok {
		return nil, false
	}
	return copyBytes(val), true
}

// AsList returns the element's value as a List. It returns false if the
// element is not a non-null list.
func (e Element) AsList() (*List, bool) {
	val, ok := e.value.v.(*List)
	return val, ok
}

// AsSexp returns the element's value as a Sexp. It returns false if the
// element is not a non-null s-expression.
func (e Element) AsSexp() (*Sexp, bool) {
	val, ok := e.value.v.(*Sexp)
	return val, ok
}

// AsSequence returns the element's value as a Sequence. It returns false if
// the element is not a non-null list or s-expression.
func (e Element) AsSequence() (Sequence, bool) {
	switch val := e.value.v.(type) {
	case *List:
		return val, true
	case *Sexp:
		return val, true
	default:
		return nil, false
	}
}

// AsStruct returns the element's value as a Struct. It returns false if the
// element is not a non-null struct.
func (e Element) AsStruct() (*Struct, bool) {
	val, ok := e.value.v.(*Struct)
	return val, ok
}

// Equal reports whether two elements are structurally equal: their
// annotation sequences must be equal token by token, and their values must
// be structurally equal per Value.Equal.
func (e Element) Equal(o Element) bool {
	return annotationsEqual(e.annotations, o.annotations) && e.value.Equal(o.value)
}

// Equivalent reports whether two elements are equivalent per the Ion data
// model: equal annotation sequences and equivalent values.
func (e Element) Equivalent(o Element) bool {
	return annotationsEqual(e.annotations, o.annotations) && e.value.Equivalent(o.value)
}

func annotationsEqual(a, b []SymbolToken) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// WriteTo writes this element, annotations included, to the given writer.
func (e Element) WriteTo(w Writer) error {
	if len(e.annotations) > 0 {
		if err := w.Annotations(e.annotations...); err != nil {
			return err
		}
	}
	return e.value.writeTo(w)
}

func (v Value) writeTo(w Writer) error {
	if v.v == nil {
		if v.t == NoType || v.t == NullType {
			return w.WriteNull()
		}
		return w.WriteNullType(v.t)
	}

	switch v.t {
	case BoolType:
		return w.WriteBool(v.v.(bool))

	case IntType:
		if i, ok := v.v.(int64); ok {
			return w.WriteInt(i)
		}
		return w.WriteBigInt(v.v.(*big.Int))

	case FloatType:
		return w.WriteFloat(v.v.(float64))

	case DecimalType:
		return w.WriteDecimal(v.v.(*Decimal))

	case TimestampType:
		return w.WriteTimestamp(v.v.(Timestamp))

	case SymbolType:
		return w.WriteSymbol(v.v.(SymbolToken))

	case StringType:
		return w.WriteString(v.v.(string))

	case ClobType:
		return w.WriteClob(v.v.([]byte))

	case BlobType:
		return w.WriteBlob(v.v.([]byte))

	case ListType:
		if err := w.BeginList(); err != nil {
			return err
		}
		for _, e := range v.v.(*List).elems {
			if err := e.WriteTo(w); err != nil {
				return err
			}
		}
		return w.EndList()

	case SexpType:
		if err := w.BeginSexp(); err != nil {
			return err
		}
		for _, e := range v.v.(*Sexp).elems {
			if err := e.WriteTo(w); err != nil {
				return err
			}
		}
		return w.EndSexp()

	case StructType:
		if err := w.BeginStruct(); err != nil {
			return err
		}
		for _, f := range v.v.(*Struct).fields {
			if err := w.FieldName(f.Name); err != nil {
				return err
			}
			if err := f.Value.WriteTo(w); err != nil {
				return err
			}
		}
		return w.EndStruct()

	default:
		panic(fmt.Sprintf("unexpected type %v", v.t))
	}
}

// String returns this element as canonical Ion text. Reading the result back
// yields an element Equivalent to this one.
func (e Element) String() string {
	buf := strings.Builder{}
	w := NewTextWriterOpts(&buf, TextWriterQuietFinish)
	if err := e.WriteTo(w); err != nil {
		return fmt.Sprintf("<invalid element: %v>", err)
	}
	if err := w.Finish(); err != nil {
		return fmt.Sprintf("<invalid element: %v>", err)
	}
	return buf.String()
}
