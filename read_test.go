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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAll(t *testing.T) {
	elems, err := ReadAllStr("1 two [3]")
	require.NoError(t, err)

	expected := []Element{
		NewIntElement(1),
		NewSymbolElementFromString("two"),
		NewListElement(NewIntElement(3)),
	}
	assert.Empty(t, cmp.Diff(expected, elems, cmpStructural))
}

func TestReadAllEmpty(t *testing.T) {
	elems, err := ReadAllStr("")
	require.NoError(t, err)
	assert.Empty(t, elems)

	// Whitespace and comments aren't values either.
	elems, err = ReadAllStr(" // nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, elems)
}

func TestReadAllNoPartialResults(t *testing.T) {
	elems, err := ReadAllStr("1 2 }")
	assert.Error(t, err)
	assert.Empty(t, elems)
}

func TestReadFirst(t *testing.T) {
	e, err := ReadFirstStr("1 2 3")
	require.NoError(t, err)
	require.NotNil(t, e)
	i, _ := e.AsInt64()
	assert.Equal(t, int64(1), i)
}

func TestReadFirstEmpty(t *testing.T) {
	e, err := ReadFirstStr("")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestReadFirstError(t *testing.T) {
	e, err := ReadFirstStr("]")
	assert.Error(t, err)
	assert.Nil(t, e)
}

func TestReadOne(t *testing.T) {
	e, err := ReadOneStr(`{a: 1, a: 2}`)
	require.NoError(t, err)
	require.NotNil(t, e)

	s, ok := e.AsStruct()
	require.True(t, ok)
	assert.Len(t, s.GetAll("a"), 2)
}

func TestReadOneCardinality(t *testing.T) {
	_, err := ReadOneStr("")
	var ce *CardinalityError
	require.Error(t, err)
	assert.IsType(t, ce, err)

	_, err = ReadOneStr("1 2")
	require.Error(t, err)
	assert.IsType(t, ce, err)
}

func TestReadOneDecodeErrorIsNotCardinality(t *testing.T) {
	_, err := ReadOneStr("1 ]")
	require.Error(t, err)
	_, isCardinality := err.(*CardinalityError)
	assert.False(t, isCardinality)
}

func TestReadAnnotatedElement(t *testing.T) {
	e, err := ReadOneStr("foo::bar::[baz::1]")
	require.NoError(t, err)

	assert.True(t, e.HasAnnotation("foo"))
	assert.True(t, e.HasAnnotation("bar"))

	l, ok := e.AsList()
	require.True(t, ok)
	inner := l.Get(0)
	require.NotNil(t, inner)
	assert.True(t, inner.HasAnnotation("baz"))
}

func TestReadNestedStruct(t *testing.T) {
	e, err := ReadOneStr(`{foo: 1, bar: {baz: [true, false]}}`)
	require.NoError(t, err)

	s, ok := e.AsStruct()
	require.True(t, ok)

	bar, ok := s.Get("bar")
	require.True(t, ok)
	inner, ok := bar.AsStruct()
	require.True(t, ok)

	baz, ok := inner.Get("baz")
	require.True(t, ok)
	l, ok := baz.AsList()
	require.True(t, ok)
	assert.Equal(t, 2, l.Len())
}

func TestReadSystemValuesSkipped(t *testing.T) {
	elems, err := ReadAllStr(`$ion_1_0 $ion_symbol_table::{symbols: ["x"]} 1 2`)
	require.NoError(t, err)

	expected := []Element{NewIntElement(1), NewIntElement(2)}
	assert.Empty(t, cmp.Diff(expected, elems, cmpEquivalent))
}

func TestReadUnknownSymbols(t *testing.T) {
	e, err := ReadOneStr("{$10: $11}")
	require.NoError(t, err)

	s, ok := e.AsStruct()
	require.True(t, ok)

	v, ok := s.GetBySymbol(SymbolToken{LocalSID: 10})
	require.True(t, ok)
	st, ok := v.AsSymbol()
	require.True(t, ok)
	assert.Nil(t, st.Text)
	assert.Equal(t, int64(11), st.LocalSID)
}

func TestReadTypedNullElement(t *testing.T) {
	e, err := ReadOneStr("null.list")
	require.NoError(t, err)

	assert.Equal(t, ListType, e.Type())
	assert.True(t, e.IsNull())
	_, ok := e.AsList()
	assert.False(t, ok)
}
