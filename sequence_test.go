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

func TestListAccess(t *testing.T) {
	l := NewList(NewIntElement(1), NewStringElement("two"))

	assert.Equal(t, 2, l.Len())
	assert.False(t, l.IsEmpty())

	e := l.Get(0)
	require.NotNil(t, e)
	i, _ := e.AsInt64()
	assert.Equal(t, int64(1), i)

	assert.Nil(t, l.Get(-1))
	assert.Nil(t, l.Get(2))

	elems := l.Elements()
	require.Len(t, elems, 2)
	s, _ := elems[1].AsString()
	assert.Equal(t, "two", s)
}

func TestEmptySequences(t *testing.T) {
	l := NewList()
	assert.Zero(t, l.Len())
	assert.True(t, l.IsEmpty())
	assert.Empty(t, l.Elements())

	s := NewSexp()
	assert.Zero(t, s.Len())
	assert.True(t, s.IsEmpty())
}

func TestSequenceEqual(t *testing.T) {
	a := NewList(NewIntElement(1), NewIntElement(2))
	b := NewList(NewIntElement(1), NewIntElement(2))
	c := NewList(NewIntElement(2), NewIntElement(1))

	assert.True(t, a.Equal(b))

	// Order matters in sequences.
	assert.False(t, a.Equal(c))

	// Length matters too.
	assert.False(t, a.Equal(NewList(NewIntElement(1))))
}

func TestListAndSexpAreDistinct(t *testing.T) {
	l := NewListElement(NewIntElement(1))
	s := NewSexpElement(NewIntElement(1))

	assert.False(t, l.Equal(s))
	assert.False(t, l.Equivalent(s))
}

func TestListBuilder(t *testing.T) {
	l := new(ListBuilder).
		Add(NewIntElement(1)).
		Add(NewIntElement(2)).
		Build()

	assert.True(t, l.Equal(NewList(NewIntElement(1), NewIntElement(2))))

	// A built list is detached from its builder.
	b := l.CloneBuilder()
	b.Add(NewIntElement(3))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 3, b.Build().Len())
}

func TestSexpBuilder(t *testing.T) {
	s := new(SexpBuilder).
		Add(NewSymbolElementFromString("+")).
		Add(NewIntElement(1)).
		Build()

	assert.Equal(t, 2, s.Len())

	clone := s.CloneBuilder().Build()
	assert.True(t, s.Equal(clone))
}

func TestStructBuilder(t *testing.T) {
	s := new(StructBuilder).
		Add("a", NewIntElement(1)).
		Add("a", NewIntElement(2)).
		Build()

	assert.Equal(t, 2, s.Len())
	e, ok := s.Get("a")
	require.True(t, ok)
	i, _ := e.AsInt64()
	assert.Equal(t, int64(2), i)

	// CloneBuilder preserves field order and duplicates.
	clone := s.CloneBuilder().Build()
	assert.True(t, s.Equal(clone))
	assert.Len(t, clone.GetAll("a"), 2)

	bigger := s.CloneBuilder().Add("b", NewBoolElement(true)).Build()
	assert.Equal(t, 3, bigger.Len())
	assert.Equal(t, 2, s.Len())
}

func TestBuilderReuse(t *testing.T) {
	b := new(ListBuilder).Add(NewIntElement(1))
	first := b.Build()
	b.Add(NewIntElement(2))
	second := b.Build()

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 2, second.Len())
}
