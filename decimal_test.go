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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalToString(t *testing.T) {
	test := func(n int64, scale int32, expected string) {
		t.Run(expected, func(t *testing.T) {
			d := Decimal{
				n:     big.NewInt(n),
				scale: scale,
			}
			assert.Equal(t, expected, d.String())
		})
	}

	test(0, 0, "0.")
	test(0, -1, "0d1")
	test(0, 1, "0d-1")

	test(1, 0, "1.")
	test(-1, 0, "-1.")

	test(123, 1, "12.3")
	test(123, 2, "1.23")
	test(123, 3, "1.23d-1")
	test(123, -5, "123d5")
}

func TestParseDecimal(t *testing.T) {
	test := func(in string, n int64, scale int32) {
		t.Run(in, func(t *testing.T) {
			d, err := ParseDecimal(in)
			require.NoError(t, err)
			assert.Zero(t, d.n.Cmp(big.NewInt(n)), "wrong coefficient: %v", d.n)
			assert.Equal(t, scale, d.scale)
		})
	}

	test("0", 0, 0)
	test("-1.23", -123, 2)
	test("12d5", 12, -5)
	test("12D-5", 12, 5)
	test("1.2d3", 12, -2)

	_, err := ParseDecimal("")
	assert.Error(t, err)
	_, err = ParseDecimal("1.2d")
	assert.Error(t, err)
	_, err = ParseDecimal("abc")
	assert.Error(t, err)
}

func TestParseDecimalNegativeZero(t *testing.T) {
	d, err := ParseDecimal("-0.")
	require.NoError(t, err)
	assert.True(t, d.isNegZero)

	pz := MustParseDecimal("0.")
	assert.False(t, pz.isNegZero)

	// Numerically equal, but not the same value.
	assert.True(t, pz.Equal(d))
	assert.False(t, pz.Equivalent(d))
}

func TestDecimalEqualVsEquivalent(t *testing.T) {
	onePointZero := MustParseDecimal("1.0")
	onePointZeroZero := MustParseDecimal("1.00")

	// Equal ignores precision; Equivalent preserves it.
	assert.True(t, onePointZero.Equal(onePointZeroZero))
	assert.False(t, onePointZero.Equivalent(onePointZeroZero))

	assert.True(t, onePointZero.Equivalent(MustParseDecimal("1.0")))
	assert.False(t, onePointZero.Equal(MustParseDecimal("1.1")))
}

func TestDecimalCmp(t *testing.T) {
	test := func(a, b string, expected int) {
		t.Run(a+" <=> "+b, func(t *testing.T) {
			assert.Equal(t, expected, MustParseDecimal(a).Cmp(MustParseDecimal(b)))
		})
	}

	test("0", "0", 0)
	test("1", "1.", 0)
	test("1", "1.0", 0)
	test("0.1", "1d-1", 0)
	test("1", "2", -1)
	test("2", "1", 1)
	test("10", "1d1", 0)
}

func TestDecimalCoEx(t *testing.T) {
	co, ex := MustParseDecimal("1.23").CoEx()
	assert.Zero(t, co.Cmp(big.NewInt(123)))
	assert.Equal(t, int32(-2), ex)
}
