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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructGet(t *testing.T) {
	s := NewStruct(
		NewStructField("a", NewIntElement(1)),
		NewStructField("b", NewIntElement(2)),
		NewStructField("a", NewIntElement(3)),
	)

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())

	// Get returns the last occurrence of a repeated name.
	e, ok := s.Get("a")
	require.True(t, ok)
	i, _ := e.AsInt64()
	assert.Equal(t, int64(3), i)

	e, ok = s.Get("b")
	require.True(t, ok)
	i, _ = e.AsInt64()
	assert.Equal(t, int64(2), i)

	_, ok = s.Get("c")
	assert.False(t, ok)
}

func TestStructGetAll(t *testing.T) {
	s := NewStruct(
		NewStructField("a", NewIntElement(1)),
		NewStructField("b", NewIntElement(2)),
		NewStructField("a", NewIntElement(3)),
	)

	all := s.GetAll("a")
	require.Len(t, all, 2)
	i, _ := all[0].AsInt64()
	assert.Equal(t, int64(1), i)
	i, _ = all[1].AsInt64()
	assert.Equal(t, int64(3), i)

	assert.Empty(t, s.GetAll("c"))
}

func TestStructGetBySymbol(t *testing.T) {
	s := NewStruct(
		NewStructField("a", NewIntElement(1)),
		StructField{Name: SymbolToken{Text: nil, LocalSID: 10}, Value: NewIntElement(2)},
		StructField{Name: SymbolToken{Text: nil, LocalSID: 11}, Value: NewIntElement(3)},
	)

	e, ok := s.GetBySymbol(NewSymbolTokenFromString("a"))
	require.True(t, ok)
	i, _ := e.AsInt64()
	assert.Equal(t, int64(1), i)

	// Fields with unknown-text names all land in one bucket, regardless of
	// symbol ID.
	e, ok = s.GetBySymbol(SymbolToken{Text: nil, LocalSID: 10})
	require.True(t, ok)
	i, _ = e.AsInt64()
	assert.Equal(t, int64(3), i)

	all := s.GetAllBySymbol(SymbolToken{Text: nil, LocalSID: 99})
	assert.Len(t, all, 2)
}

func TestStructFieldsOrder(t *testing.T) {
	s := NewStruct(
		NewStructField("b", NewIntElement(2)),
		NewStructField("a", NewIntElement(1)),
	)

	fields := s.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "b", *fields[0].Name.Text)
	assert.Equal(t, "a", *fields[1].Name.Text)
}

func TestStructEqualIgnoresOrder(t *testing.T) {
	a := NewStruct(
		NewStructField("x", NewIntElement(1)),
		NewStructField("y", NewIntElement(2)),
	)
	b := NewStruct(
		NewStructField("y", NewIntElement(2)),
		NewStructField("x", NewIntElement(1)),
	)

	assert.True(t, a.Equal(b))
	assert.True(t, a.Equivalent(b))
}

func TestStructEqualRepeatedFields(t *testing.T) {
	twoFours := NewStruct(
		NewStructField("a", NewIntElement(4)),
		NewStructField("a", NewIntElement(4)),
	)
	fourAndAnnotated := NewStruct(
		NewStructField("a", NewIntElement(4)),
		NewStructField("a", NewIntElement(4).WithAnnotations("a")),
	)

	// {a:4, a:4} and {a:4, a:a::4} are not equal: the annotated member has
	// no match in the first struct.
	assert.False(t, twoFours.Equal(fourAndAnnotated))
	assert.False(t, fourAndAnnotated.Equal(twoFours))

	assert.True(t, twoFours.Equal(NewStruct(
		NewStructField("a", NewIntElement(4)),
		NewStructField("a", NewIntElement(4)),
	)))
}

func TestStructEqualLength(t *testing.T) {
	a := NewStruct(NewStructField("a", NewIntElement(1)))
	b := NewStruct(
		NewStructField("a", NewIntElement(1)),
		NewStructField("a", NewIntElement(1)),
	)
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))
}

func TestStructEqualUnknownNames(t *testing.T) {
	a := NewStruct(StructField{Name: SymbolToken{LocalSID: 10}, Value: NewIntElement(1)})
	b := NewStruct(StructField{Name: SymbolToken{LocalSID: 11}, Value: NewIntElement(1)})
	c := NewStruct(StructField{Name: SymbolToken{LocalSID: 10}, Value: NewIntElement(2)})

	// Unknown-text names share a single bucket, so only the values matter.
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	d := NewStruct(NewStructField("a", NewIntElement(1)))
	assert.False(t, a.Equal(d))
}

func TestStructEmpty(t *testing.T) {
	s := NewStruct()
	assert.Zero(t, s.Len())
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Fields())

	_, ok := s.Get("a")
	assert.False(t, ok)
	_, ok = s.GetBySymbol(SymbolToken{LocalSID: 10})
	assert.False(t, ok)

	assert.True(t, s.Equal(NewStruct()))
}
