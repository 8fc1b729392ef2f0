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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTextWriter(t *testing.T, expected string, f func(w Writer)) {
	t.Helper()

	buf := strings.Builder{}
	w := NewTextWriterOpts(&buf, TextWriterQuietFinish)

	f(w)

	require.NoError(t, w.Finish())
	assert.Equal(t, expected, buf.String())
}

func TestWriteTextNulls(t *testing.T) {
	testTextWriter(t, "null\nnull.null\nnull.int\nnull.struct", func(w Writer) {
		assert.NoError(t, w.WriteNull())
		assert.NoError(t, w.WriteNullType(NullType))
		assert.NoError(t, w.WriteNullType(IntType))
		assert.NoError(t, w.WriteNullType(StructType))
	})
}

func TestWriteTextBools(t *testing.T) {
	testTextWriter(t, "true\nfalse", func(w Writer) {
		assert.NoError(t, w.WriteBool(true))
		assert.NoError(t, w.WriteBool(false))
	})
}

func TestWriteTextInts(t *testing.T) {
	testTextWriter(t, "0\n-42\n18446744073709551615", func(w Writer) {
		assert.NoError(t, w.WriteInt(0))
		assert.NoError(t, w.WriteInt(-42))

		var bi big.Int
		bi.SetUint64(math.MaxUint64)
		assert.NoError(t, w.WriteBigInt(&bi))
	})
}

func TestWriteTextFloats(t *testing.T) {
	testTextWriter(t, "1e+0\n1.25e+2\nnan\n+inf\n-inf", func(w Writer) {
		assert.NoError(t, w.WriteFloat(1))
		assert.NoError(t, w.WriteFloat(125))
		assert.NoError(t, w.WriteFloat(math.NaN()))
		assert.NoError(t, w.WriteFloat(math.Inf(1)))
		assert.NoError(t, w.WriteFloat(math.Inf(-1)))
	})
}

func TestWriteTextDecimalsAndTimestamps(t *testing.T) {
	ts, err := NewTimestampFromStr("2010-01-01T12:34:56Z", Second, UTC)
	require.NoError(t, err)

	testTextWriter(t, "1.2\n1.20\n2010-01-01T12:34:56Z", func(w Writer) {
		assert.NoError(t, w.WriteDecimal(MustParseDecimal("1.2")))
		assert.NoError(t, w.WriteDecimal(MustParseDecimal("1.20")))
		assert.NoError(t, w.WriteTimestamp(ts))
	})
}

func TestWriteTextSymbols(t *testing.T) {
	testTextWriter(t, "foo\n'bar baz'\n'$10'\n$10", func(w Writer) {
		assert.NoError(t, w.WriteSymbolFromString("foo"))
		assert.NoError(t, w.WriteSymbolFromString("bar baz"))

		// Symbol text that looks like a symbol reference has to be quoted to
		// round-trip as text, not as a symbol ID.
		assert.NoError(t, w.WriteSymbolFromString("$10"))

		assert.NoError(t, w.WriteSymbol(SymbolToken{Text: nil, LocalSID: 10}))
	})
}

func TestWriteTextStringsAndLobs(t *testing.T) {
	testTextWriter(t, "\"hello\\nworld\"\n{{\"clob\"}}\n{{\"a\\0b\\xFF\"}}\n{{aGVsbG8=}}", func(w Writer) {
		assert.NoError(t, w.WriteString("hello\nworld"))
		assert.NoError(t, w.WriteClob([]byte("clob")))
		assert.NoError(t, w.WriteClob([]byte{'a', 0x00, 'b', 0xFF}))
		assert.NoError(t, w.WriteBlob([]byte("hello")))
	})
}

func TestWriteTextList(t *testing.T) {
	testTextWriter(t, "[1,2,[3]]", func(w Writer) {
		assert.NoError(t, w.BeginList())
		assert.NoError(t, w.WriteInt(1))
		assert.NoError(t, w.WriteInt(2))
		assert.NoError(t, w.BeginList())
		assert.NoError(t, w.WriteInt(3))
		assert.NoError(t, w.EndList())
		assert.NoError(t, w.EndList())
	})
}

func TestWriteTextEndListAtTopLevel(t *testing.T) {
	buf := strings.Builder{}
	w := NewTextWriter(&buf)
	assert.Error(t, w.EndList())
}

func TestWriteTextSexp(t *testing.T) {
	// Operator symbols are not identifiers, so the writer quotes them even
	// inside a sexp.
	testTextWriter(t, "(1 '+' a)", func(w Writer) {
		assert.NoError(t, w.BeginSexp())
		assert.NoError(t, w.WriteInt(1))
		assert.NoError(t, w.WriteSymbolFromString("+"))
		assert.NoError(t, w.WriteSymbolFromString("a"))
		assert.NoError(t, w.EndSexp())
	})
}

func TestWriteTextStruct(t *testing.T) {
	testTextWriter(t, "{foo:1,'a b':two::2}", func(w Writer) {
		assert.NoError(t, w.BeginStruct())

		assert.NoError(t, w.FieldName(NewSymbolTokenFromString("foo")))
		assert.NoError(t, w.WriteInt(1))

		assert.NoError(t, w.FieldName(NewSymbolTokenFromString("a b")))
		assert.NoError(t, w.Annotation(NewSymbolTokenFromString("two")))
		assert.NoError(t, w.WriteInt(2))

		assert.NoError(t, w.EndStruct())
	})
}

func TestWriteTextFieldNameOutsideStruct(t *testing.T) {
	buf := strings.Builder{}
	w := NewTextWriter(&buf)
	assert.Error(t, w.FieldName(NewSymbolTokenFromString("foo")))
}

func TestWriteTextMissingFieldName(t *testing.T) {
	buf := strings.Builder{}
	w := NewTextWriter(&buf)
	require.NoError(t, w.BeginStruct())
	assert.Error(t, w.WriteInt(1))
}

func TestWriteTextAnnotations(t *testing.T) {
	testTextWriter(t, "foo::'bar baz'::$10::true", func(w Writer) {
		assert.NoError(t, w.Annotation(NewSymbolTokenFromString("foo")))
		assert.NoError(t, w.Annotations(
			NewSymbolTokenFromString("bar baz"),
			SymbolToken{Text: nil, LocalSID: 10},
		))
		assert.NoError(t, w.WriteBool(true))
	})
}

func TestWriteTextFinishAtTopLevelOnly(t *testing.T) {
	buf := strings.Builder{}
	w := NewTextWriter(&buf)
	require.NoError(t, w.BeginList())
	assert.Error(t, w.Finish())
}

func TestWriteTextPretty(t *testing.T) {
	buf := strings.Builder{}
	w := NewTextWriterOpts(&buf, TextWriterPretty|TextWriterQuietFinish)

	require.NoError(t, w.BeginStruct())
	require.NoError(t, w.FieldName(NewSymbolTokenFromString("foo")))
	require.NoError(t, w.WriteInt(1))
	require.NoError(t, w.EndStruct())
	require.NoError(t, w.Finish())

	assert.Equal(t, "{\n\tfoo: 1\n}", buf.String())
}
