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

func TestSymbolTokenEqual(t *testing.T) {
	foo := NewSymbolTokenFromString("foo")

	assert.True(t, foo.Equal(NewSymbolTokenFromString("foo")))
	assert.False(t, foo.Equal(NewSymbolTokenFromString("bar")))

	// Symbol IDs are ignored when both tokens have known text.
	withSID := SymbolToken{Text: newString("foo"), LocalSID: 99}
	assert.True(t, foo.Equal(withSID))

	// Tokens with unknown text compare by symbol ID.
	assert.True(t, SymbolToken{LocalSID: 10}.Equal(SymbolToken{LocalSID: 10}))
	assert.False(t, SymbolToken{LocalSID: 10}.Equal(SymbolToken{LocalSID: 11}))

	// Known text never equals unknown text.
	assert.False(t, foo.Equal(SymbolToken{LocalSID: 10}))
}

func TestNewSymbolTokenFromText(t *testing.T) {
	st, err := newSymbolToken("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", *st.Text)
	assert.Equal(t, int64(SymbolIDUnknown), st.LocalSID)
}

func TestNewSymbolTokenFromRef(t *testing.T) {
	// System symbols resolve to text.
	st, err := newSymbolToken("$2")
	require.NoError(t, err)
	assert.Equal(t, "$ion_1_0", *st.Text)
	assert.Equal(t, int64(2), st.LocalSID)

	// $0 and out-of-range IDs have no text.
	st, err = newSymbolToken("$0")
	require.NoError(t, err)
	assert.Nil(t, st.Text)
	assert.Equal(t, int64(0), st.LocalSID)

	st, err = newSymbolToken("$12345")
	require.NoError(t, err)
	assert.Nil(t, st.Text)
	assert.Equal(t, int64(12345), st.LocalSID)
}

func TestSymbolTokenString(t *testing.T) {
	assert.Equal(t, "foo", NewSymbolTokenFromString("foo").String())
	assert.Equal(t, "$10", SymbolToken{LocalSID: 10}.String())
}
