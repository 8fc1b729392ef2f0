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
	"strconv"
)

// SymbolIDUnknown is the placeholder for when a symbol token has no symbol ID.
const SymbolIDUnknown = -1

// The system symbols defined by Ion 1.0. This library does not maintain local
// symbol tables, so these are the only symbol IDs that resolve to text.
var v1SystemSymbols = []string{
	1: "$ion",
	2: "$ion_1_0",
	3: "$ion_symbol_table",
	4: "name",
	5: "version",
	6: "imports",
	7: "symbols",
	8: "max_id",
	9: "$ion_shared_symbol_table",
}

// A SymbolToken is the symbolic value used for annotations, field names, and
// the textual content of Ion symbol values. A token usually carries known
// text; a token read from a symbol reference (e.g. $10) that cannot be
// resolved carries only its symbol ID.
type SymbolToken struct {
	// Text is the resolved text of this token, or nil if the text is unknown.
	Text *string
	// LocalSID is the symbol ID associated with this token, or
	// SymbolIDUnknown if the token was constructed directly from text.
	LocalSID int64
}

// NewSymbolTokenFromString creates a token with the given known text and no
// symbol ID.
func NewSymbolTokenFromString(text string) SymbolToken {
	return SymbolToken{Text: &text, LocalSID: SymbolIDUnknown}
}

// newSymbolTokenUnknownText creates a token with unknown text and the given
// symbol ID.
func newSymbolTokenUnknownText(sid int64) SymbolToken {
	return SymbolToken{Text: nil, LocalSID: sid}
}

// newSymbolToken turns raw symbol text from the tokenizer into a SymbolToken,
// resolving symbol references ($0, $10, ...) against the system symbol table.
func newSymbolToken(text string) (SymbolToken, error) {
	if !isSymbolRef(text) {
		return NewSymbolTokenFromString(text), nil
	}

	sid, err := strconv.ParseInt(text[1:], 10, 64)
	if err != nil {
		return SymbolToken{}, &SyntaxError{Msg: "invalid symbol reference " + text}
	}
	if sid > 0 && sid < int64(len(v1SystemSymbols)) {
		return SymbolToken{Text: &v1SystemSymbols[sid], LocalSID: sid}, nil
	}

	// $0 and IDs beyond the system table have no known text.
	return newSymbolTokenUnknownText(sid), nil
}

// String implements fmt.Stringer for SymbolToken.
func (st SymbolToken) String() string {
	if st.Text == nil {
		return fmt.Sprintf("$%v", st.LocalSID)
	}
	return *st.Text
}

// Equal reports whether two symbol tokens are the same symbol. Tokens with
// known text are compared by text alone; tokens with unknown text are equal
// only to other unknown-text tokens carrying the same symbol ID.
func (st SymbolToken) Equal(o SymbolToken) bool {
	if st.Text == nil || o.Text == nil {
		return st.Text == nil && o.Text == nil && st.LocalSID == o.LocalSID
	}
	return *st.Text == *o.Text
}
