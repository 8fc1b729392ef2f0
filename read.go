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

import "fmt"

// ReadAll reads every top-level element from the given text Ion data. On a
// decode error it returns no elements at all, not the elements read so far.
func ReadAll(data []byte) ([]Element, error) {
	return readAll(NewReaderBytes(data))
}

// ReadAllStr reads every top-level element from the given string of text Ion
// data.
func ReadAllStr(str string) ([]Element, error) {
	return readAll(NewReaderStr(str))
}

// ReadFirst reads the first top-level element from the given text Ion data.
// If the input contains no values, it returns (nil, nil). Values after the
// first are not parsed.
func ReadFirst(data []byte) (*Element, error) {
	return readFirst(NewReaderBytes(data))
}

// ReadFirstStr reads the first top-level element from the given string of
// text Ion data.
func ReadFirstStr(str string) (*Element, error) {
	return readFirst(NewReaderStr(str))
}

// ReadOne reads exactly one top-level element from the given text Ion data.
// If the input contains no values or more than one, it returns a
// *CardinalityError.
func ReadOne(data []byte) (*Element, error) {
	return readOne(NewReaderBytes(data))
}

// ReadOneStr reads exactly one top-level element from the given string of
// text Ion data.
func ReadOneStr(str string) (*Element, error) {
	return readOne(NewReaderStr(str))
}

func readAll(r Reader) ([]Element, error) {
	var elems []Element
	for r.Next() {
		e, err := readCurrentElement(r)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return elems, nil
}

func readFirst(r Reader) (*Element, error) {
	if !r.Next() {
		return nil, r.Err()
	}
	e, err := readCurrentElement(r)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func readOne(r Reader) (*Element, error) {
	if !r.Next() {
		if err := r.Err(); err != nil {
			return nil, err
		}
		return nil, &CardinalityError{"ReadOne", "input contains no values"}
	}

	e, err := readCurrentElement(r)
	if err != nil {
		return nil, err
	}

	if r.Next() {
		return nil, &CardinalityError{"ReadOne", "input contains more than one value"}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	return &e, nil
}

// readCurrentElement materializes the value the reader is positioned on,
// annotations included, stepping in to containers as needed.
func readCurrentElement(r Reader) (Element, error) {
	// Annotations have to be captured up front; stepping in to a container
	// clears them.
	as := r.Annotations()

	val, err := readCurrentValue(r)
	if err != nil {
		return Element{}, err
	}

	e := NewElement(val)
	if len(as) > 0 {
		e = e.WithAnnotationSymbols(as...)
	}
	return e, nil
}

func readCurrentValue(r Reader) (Value, error) {
	t := r.Type()
	if r.IsNull() {
		return NewTypedNullValue(t), nil
	}

	switch t {
	case BoolType:
		val, err := r.BoolValue()
		if err != nil {
			return Value{}, err
		}
		return NewBoolValue(val), nil

	case IntType:
		sz, err := r.IntSize()
		if err != nil {
			return Value{}, err
		}
		if sz == BigInt {
			val, err := r.BigIntValue()
			if err != nil {
				return Value{}, err
			}
			return NewBigIntValue(val), nil
		}
		val, err := r.Int64Value()
		if err != nil {
			return Value{}, err
		}
		return NewIntValue(val), nil

	case FloatType:
		val, err := r.FloatValue()
		if err != nil {
			return Value{}, err
		}
		return NewFloatValue(val), nil

	case DecimalType:
		val, err := r.DecimalValue()
		if err != nil {
			return Value{}, err
		}
		return NewDecimalValue(val), nil

	case TimestampType:
		val, err := r.TimestampValue()
		if err != nil {
			return Value{}, err
		}
		return NewTimestampValue(val), nil

	case SymbolType:
		val, err := r.SymbolValue()
		if err != nil {
			return Value{}, err
		}
		return NewSymbolValue(val), nil

	case StringType:
		val, err := r.StringValue()
		if err != nil {
			return Value{}, err
		}
		return NewStringValue(val), nil

	case ClobType:
		val, err := r.ByteValue()
		if err != nil {
			return Value{}, err
		}
		return NewClobValue(val), nil

	case BlobType:
		val, err := r.ByteValue()
		if err != nil {
			return Value{}, err
		}
		return NewBlobValue(val), nil

	case ListType:
		elems, err := readContainer(r)
		if err != nil {
			return Value{}, err
		}
		return NewListValue(&List{elems: elems}), nil

	case SexpType:
		elems, err := readContainer(r)
		if err != nil {
			return Value{}, err
		}
		return NewSexpValue(&Sexp{elems: elems}), nil

	case StructType:
		fields, err := readStruct(r)
		if err != nil {
			return Value{}, err
		}
		return NewStructValue(NewStruct(fields...)), nil

	default:
		return Value{}, &UsageError{"readCurrentValue", fmt.Sprintf("unexpected type %v", t)}
	}
}

func readContainer(r Reader) ([]Element, error) {
	if err := r.StepIn(); err != nil {
		return nil, err
	}

	var elems []Element
	for r.Next() {
		e, err := readCurrentElement(r)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	return elems, r.StepOut()
}

func readStruct(r Reader) ([]StructField, error) {
	if err := r.StepIn(); err != nil {
		return nil, err
	}

	var fields []StructField
	for r.Next() {
		name := r.FieldName()
		if name == nil {
			return nil, &SyntaxError{Msg: "struct field has no name"}
		}

		e, err := readCurrentElement(r)
		if err != nil {
			return nil, err
		}
		fields = append(fields, StructField{Name: *name, Value: e})
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	return fields, r.StepOut()
}
