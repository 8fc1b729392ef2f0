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

func _next(t *testing.T, r Reader, et Type) {
	t.Helper()
	require.True(t, r.Next(), "next returned false; err: %v", r.Err())
	assert.Equal(t, et, r.Type())
}

func _eof(t *testing.T, r Reader) {
	t.Helper()
	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

func TestReadTextScalars(t *testing.T) {
	r := NewReaderStr(`null null.bool true 3 -3 0x1F 0b101 1.5e0 1.5 2007T foo "bar"`)

	_next(t, r, NullType)
	assert.True(t, r.IsNull())

	_next(t, r, BoolType)
	assert.True(t, r.IsNull())

	_next(t, r, BoolType)
	val, err := r.BoolValue()
	require.NoError(t, err)
	assert.True(t, val)

	for _, expected := range []int64{3, -3, 0x1F, 5} {
		_next(t, r, IntType)
		i, err := r.Int64Value()
		require.NoError(t, err)
		assert.Equal(t, expected, i)
	}

	_next(t, r, FloatType)
	f, err := r.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	_next(t, r, DecimalType)
	d, err := r.DecimalValue()
	require.NoError(t, err)
	assert.True(t, d.Equal(MustParseDecimal("1.5")))

	_next(t, r, TimestampType)
	ts, err := r.TimestampValue()
	require.NoError(t, err)
	expectedTs, err := tryCreateTimestamp(2007, 1, 1, Year)
	require.NoError(t, err)
	assert.True(t, ts.Equal(expectedTs))

	_next(t, r, SymbolType)
	st, err := r.SymbolValue()
	require.NoError(t, err)
	assert.Equal(t, "foo", *st.Text)

	_next(t, r, StringType)
	s, err := r.StringValue()
	require.NoError(t, err)
	assert.Equal(t, "bar", s)

	_eof(t, r)
}

func TestReadTextBigInt(t *testing.T) {
	r := NewReaderStr("18446744073709551615")
	_next(t, r, IntType)

	sz, err := r.IntSize()
	require.NoError(t, err)
	assert.Equal(t, BigInt, sz)

	_, err = r.Int64Value()
	assert.Error(t, err)

	bi, err := r.BigIntValue()
	require.NoError(t, err)

	var expected big.Int
	expected.SetUint64(math.MaxUint64)
	assert.Zero(t, bi.Cmp(&expected))
}

func TestReadTextSpecialFloats(t *testing.T) {
	r := NewReaderStr("nan +inf -inf")

	_next(t, r, FloatType)
	f, err := r.FloatValue()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))

	_next(t, r, FloatType)
	f, err = r.FloatValue()
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, 1))

	_next(t, r, FloatType)
	f, err = r.FloatValue()
	require.NoError(t, err)
	assert.True(t, math.IsInf(f, -1))

	_eof(t, r)
}

func TestReadTextLobs(t *testing.T) {
	r := NewReaderStr(`{{"clob"}} {{aGVsbG8=}}`)

	_next(t, r, ClobType)
	val, err := r.ByteValue()
	require.NoError(t, err)
	assert.Equal(t, []byte("clob"), val)

	_next(t, r, BlobType)
	val, err = r.ByteValue()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), val)

	_eof(t, r)
}

func TestReadTextContainers(t *testing.T) {
	r := NewReaderStr("[1, [2]] (a b) {c: 3}")

	_next(t, r, ListType)
	require.NoError(t, r.StepIn())
	_next(t, r, IntType)
	_next(t, r, ListType)
	// Not stepping in; Next skips the nested list's contents.
	_eof(t, r)
	require.NoError(t, r.StepOut())

	_next(t, r, SexpType)
	require.NoError(t, r.StepIn())
	_next(t, r, SymbolType)
	// Step out early, skipping 'b'.
	require.NoError(t, r.StepOut())

	_next(t, r, StructType)
	require.NoError(t, r.StepIn())
	_next(t, r, IntType)
	require.NotNil(t, r.FieldName())
	assert.Equal(t, "c", *r.FieldName().Text)
	_eof(t, r)
	require.NoError(t, r.StepOut())

	_eof(t, r)
}

func TestReadTextAnnotations(t *testing.T) {
	r := NewReaderStr("foo::'bar baz'::$4::1")

	_next(t, r, IntType)
	as := r.Annotations()
	require.Len(t, as, 3)
	assert.Equal(t, "foo", *as[0].Text)
	assert.Equal(t, "bar baz", *as[1].Text)
	// $4 resolves against the system symbol table.
	assert.Equal(t, "name", *as[2].Text)
}

func TestReadTextSymbolRefs(t *testing.T) {
	r := NewReaderStr("$4 $0 $99 '$10'")

	_next(t, r, SymbolType)
	st, err := r.SymbolValue()
	require.NoError(t, err)
	assert.Equal(t, "name", *st.Text)
	assert.Equal(t, int64(4), st.LocalSID)

	_next(t, r, SymbolType)
	st, err = r.SymbolValue()
	require.NoError(t, err)
	assert.Nil(t, st.Text)
	assert.Equal(t, int64(0), st.LocalSID)

	_next(t, r, SymbolType)
	st, err = r.SymbolValue()
	require.NoError(t, err)
	assert.Nil(t, st.Text)
	assert.Equal(t, int64(99), st.LocalSID)

	// A quoted '$10' is just text, not a symbol reference.
	_next(t, r, SymbolType)
	st, err = r.SymbolValue()
	require.NoError(t, err)
	assert.Equal(t, "$10", *st.Text)

	_eof(t, r)
}

func TestReadTextVersionMarker(t *testing.T) {
	r := NewReaderStr("$ion_1_0 1")

	_next(t, r, IntType)
	_eof(t, r)
}

func TestReadTextQuotedVersionMarkerIsAValue(t *testing.T) {
	r := NewReaderStr("'$ion_1_0'")

	_next(t, r, SymbolType)
	st, err := r.SymbolValue()
	require.NoError(t, err)
	assert.Equal(t, "$ion_1_0", *st.Text)
	_eof(t, r)
}

func TestReadTextAnnotatedVersionMarkerIsAValue(t *testing.T) {
	r := NewReaderStr("a::$ion_1_0")

	_next(t, r, SymbolType)
	require.Len(t, r.Annotations(), 1)
	_eof(t, r)
}

func TestReadTextSymbolTableSkipped(t *testing.T) {
	r := NewReaderStr(`$ion_1_0 $ion_symbol_table::{symbols: ["a", "b"]} 42`)

	_next(t, r, IntType)
	i, err := r.Int64Value()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)
	_eof(t, r)
}

func TestReadTextNestedSymbolTableIsAValue(t *testing.T) {
	r := NewReaderStr("[$ion_symbol_table::{}]")

	_next(t, r, ListType)
	require.NoError(t, r.StepIn())
	_next(t, r, StructType)
	require.Len(t, r.Annotations(), 1)
	_eof(t, r)
	require.NoError(t, r.StepOut())
	_eof(t, r)
}

func TestReadTextTypedNulls(t *testing.T) {
	r := NewReaderStr("null.struct null.list null.symbol")

	_next(t, r, StructType)
	assert.True(t, r.IsNull())
	assert.Error(t, r.StepIn())

	_next(t, r, ListType)
	assert.True(t, r.IsNull())

	_next(t, r, SymbolType)
	assert.True(t, r.IsNull())

	_eof(t, r)
}

func TestReadTextErrors(t *testing.T) {
	var walk func(r Reader) error
	walk = func(r Reader) error {
		for r.Next() {
			if IsContainer(r.Type()) && !r.IsNull() {
				if err := r.StepIn(); err != nil {
					return err
				}
				if err := walk(r); err != nil {
					return err
				}
				if err := r.StepOut(); err != nil {
					return err
				}
			}
		}
		return r.Err()
	}

	test := func(str string) {
		t.Run(str, func(t *testing.T) {
			assert.Error(t, walk(NewReaderStr(str)))
		})
	}

	test("[1, 2")
	test("1 2}")
	test("{foo}")
	test("{null: 1}")
	test("1.2.3")
	test(`"unterminated`)
}

func TestReadTextWrongTypeAccessors(t *testing.T) {
	r := NewReaderStr("true")
	_next(t, r, BoolType)

	_, err := r.Int64Value()
	assert.Error(t, err)
	_, err = r.StringValue()
	assert.Error(t, err)
	assert.Error(t, r.StepIn())
}
