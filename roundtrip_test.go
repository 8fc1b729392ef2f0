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
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering an element to text and reading it back must yield an equivalent
// element.
func testRoundTrip(t *testing.T, e Element) {
	t.Helper()

	str := e.String()
	back, err := ReadOneStr(str)
	require.NoError(t, err, "reading back %q", str)
	assert.True(t, e.Equivalent(*back), "%q did not round-trip", str)
}

func TestRoundTripScalars(t *testing.T) {
	test := func(name string, e Element) {
		t.Run(name, func(t *testing.T) {
			testRoundTrip(t, e)
		})
	}

	ts, err := NewTimestampFromStr("2021-08-04T18:30:00.123Z", Nanosecond, UTC)
	require.NoError(t, err)

	var huge big.Int
	huge.SetString("123456789012345678901234567890", 10)

	test("null", NewNullElement())
	test("null.int", NewTypedNullElement(IntType))
	test("bool", NewBoolElement(true))
	test("int", NewIntElement(-42))
	test("bigint", NewBigIntElement(&huge))
	test("float", NewFloatElement(12.34))
	test("nan", NewFloatElement(math.NaN()))
	test("inf", NewFloatElement(math.Inf(-1)))
	test("decimal", NewDecimalElement(MustParseDecimal("1.200")))
	test("timestamp", NewTimestampElement(ts))
	test("string", NewStringElement("foo\nbar é"))
	test("symbol", NewSymbolElementFromString("foo"))
	test("quoted symbol", NewSymbolElementFromString("needs quoting"))
	test("symbol ref text", NewSymbolElementFromString("$10"))
	test("clob", NewClobElement([]byte("clob\x00data")))
	test("blob", NewBlobElement([]byte{0, 1, 2, 254, 255}))
}

func TestRoundTripContainers(t *testing.T) {
	list := NewListElement(
		NewIntElement(1),
		NewIntElement(2),
		NewIntElement(3),
		NewBoolElement(true),
		NewBoolElement(false),
	)
	testRoundTrip(t, list)

	sexp := NewSexpElement(
		NewIntElement(1),
		NewSymbolElementFromString("+"),
		NewIntElement(2),
	)
	testRoundTrip(t, sexp)

	s := NewStructElement(
		NewStructField("foo", NewIntElement(1)),
		NewStructField("bar", NewIntElement(2)),
		NewStructField("baz", NewListElement(NewBoolElement(true), NewBoolElement(false))),
	)
	testRoundTrip(t, s)
}

func TestRoundTripNested(t *testing.T) {
	e := NewStructElement(
		NewStructField("empty", NewListElement()),
		NewStructField("deep", NewListElement(
			NewSexpElement(
				NewSymbolElementFromString("quote"),
				NewStructElement(
					NewStructField("a field name", NewStringElement("value")),
				).WithAnnotations("ann"),
			),
		)),
	).WithAnnotations("top")

	testRoundTrip(t, e)
}

func TestRoundTripUnknownSymbols(t *testing.T) {
	e := NewStructElement(
		StructField{Name: SymbolToken{LocalSID: 10}, Value: NewSymbolElement(SymbolToken{LocalSID: 11})},
	).WithAnnotationSymbols(SymbolToken{LocalSID: 12})

	testRoundTrip(t, e)
}

func TestRoundTripDuplicateFields(t *testing.T) {
	e := NewStructElement(
		NewStructField("a", NewIntElement(1)),
		NewStructField("a", NewIntElement(2)),
	)

	str := e.String()
	back, err := ReadOneStr(str)
	require.NoError(t, err)

	s, ok := back.AsStruct()
	require.True(t, ok)
	assert.Len(t, s.GetAll("a"), 2)
	assert.True(t, e.Equivalent(*back))
}

func TestRoundTripViaWriter(t *testing.T) {
	elems, err := ReadAllStr(`1 foo::2 [a, "b"] {c: (d e)}`)
	require.NoError(t, err)
	require.Len(t, elems, 4)

	for _, e := range elems {
		testRoundTrip(t, e)
	}
}
