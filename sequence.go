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

// A Sequence is an ordered collection of elements: a list or an
// s-expression. The two are distinct Ion types with distinct text syntax,
// but are read the same way.
type Sequence interface {
	// Elements returns the contained elements in order.
	Elements() []Element

	// Get returns the element at the given index, or nil if the index is out
	// of range.
	Get(index int) *Element

	// Len returns the number of contained elements.
	Len() int

	// IsEmpty returns true if the sequence contains no elements.
	IsEmpty() bool
}

// A List is an ordered sequence of elements, written [a, b, c] in text.
// Lists are immutable once constructed; use a ListBuilder or CloneBuilder to
// derive new ones.
type List struct {
	elems []Element
}

// NewList returns a list containing the given elements.
func NewList(elems ...Element) *List {
	return &List{elems: copyElements(elems)}
}

// Elements returns the list's elements in order.
func (l *List) Elements() []Element {
	return copyElements(l.elems)
}

// Get returns the element at the given index, or nil if the index is out of
// range.
func (l *List) Get(index int) *Element {
	if index < 0 || index >= len(l.elems) {
		return nil
	}
	e := l.elems[index]
	return &e
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.elems)
}

// IsEmpty returns true if the list contains no elements.
func (l *List) IsEmpty() bool {
	return len(l.elems) == 0
}

// Equal reports whether two lists are structurally equal: the same length,
// with structurally equal elements at each position.
func (l *List) Equal(o *List) bool {
	return elementsEq(l.elems, o.elems, false)
}

// Equivalent reports whether two lists are equivalent per the Ion data
// model: the same length, with equivalent elements at each position.
func (l *List) Equivalent(o *List) bool {
	return elementsEq(l.elems, o.elems, true)
}

// String returns this list as Ion text.
func (l *List) String() string {
	return NewElement(NewListValue(l)).String()
}

// A Sexp is an ordered sequence of elements, written (a b c) in text. Sexps
// are immutable once constructed; use a SexpBuilder or CloneBuilder to
// derive new ones.
type Sexp struct {
	elems []Element
}

// NewSexp returns an s-expression containing the given elements.
func NewSexp(elems ...Element) *Sexp {
	return &Sexp{elems: copyElements(elems)}
}

// Elements returns the sexp's elements in order.
func (s *Sexp) Elements() []Element {
	return copyElements(s.elems)
}

// Get returns the element at the given index, or nil if the index is out of
// range.
func (s *Sexp) Get(index int) *Element {
	if index < 0 || index >= len(s.elems) {
		return nil
	}
	e := s.elems[index]
	return &e
}

// Len returns the number of elements in the sexp.
func (s *Sexp) Len() int {
	return len(s.elems)
}

// IsEmpty returns true if the sexp contains no elements.
func (s *Sexp) IsEmpty() bool {
	return len(s.elems) == 0
}

// Equal reports whether two sexps are structurally equal: the same length,
// with structurally equal elements at each position.
func (s *Sexp) Equal(o *Sexp) bool {
	return elementsEq(s.elems, o.elems, false)
}

// Equivalent reports whether two sexps are equivalent per the Ion data
// model: the same length, with equivalent elements at each position.
func (s *Sexp) Equivalent(o *Sexp) bool {
	return elementsEq(s.elems, o.elems, true)
}

// String returns this sexp as Ion text.
func (s *Sexp) String() string {
	return NewElement(NewSexpValue(s)).String()
}

func copyElements(elems []Element) []Element {
	if len(elems) == 0 {
		return nil
	}
	out := make([]Element, len(elems))
	copy(out, elems)
	return out
}

func elementsEq(a, b []Element, ionEq bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if ionEq {
			if !a[i].Equivalent(b[i]) {
				return false
			}
		} else if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
