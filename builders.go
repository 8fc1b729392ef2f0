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

// A ListBuilder accumulates elements to construct a List. The zero value is
// an empty builder. Add returns the builder, so calls can be chained:
//
//	list := new(ListBuilder).
//		Add(NewIntElement(1)).
//		Add(NewIntElement(2)).
//		Build()
type ListBuilder struct {
	elems []Element
}

// Add appends an element to the list under construction.
func (b *ListBuilder) Add(e Element) *ListBuilder {
	b.elems = append(b.elems, e)
	return b
}

// Build returns the built list. The builder remains usable; elements added
// later do not affect previously built lists.
func (b *ListBuilder) Build() *List {
	return NewList(b.elems...)
}

// CloneBuilder returns a new builder pre-populated with this list's
// elements.
func (l *List) CloneBuilder() *ListBuilder {
	return &ListBuilder{elems: copyElements(l.elems)}
}

// A SexpBuilder accumulates elements to construct a Sexp. The zero value is
// an empty builder.
type SexpBuilder struct {
	elems []Element
}

// Add appends an element to the sexp under construction.
func (b *SexpBuilder) Add(e Element) *SexpBuilder {
	b.elems = append(b.elems, e)
	return b
}

// Build returns the built sexp. The builder remains usable; elements added
// later do not affect previously built sexps.
func (b *SexpBuilder) Build() *Sexp {
	return NewSexp(b.elems...)
}

// CloneBuilder returns a new builder pre-populated with this sexp's
// elements.
func (s *Sexp) CloneBuilder() *SexpBuilder {
	return &SexpBuilder{elems: copyElements(s.elems)}
}

// A StructBuilder accumulates fields to construct a Struct. The zero value
// is an empty builder. Repeated names are kept; building never collapses
// duplicate fields.
type StructBuilder struct {
	fields []StructField
}

// Add appends a field with the given name text to the struct under
// construction.
func (b *StructBuilder) Add(name string, value Element) *StructBuilder {
	return b.AddField(NewStructField(name, value))
}

// AddField appends a field to the struct under construction.
func (b *StructBuilder) AddField(f StructField) *StructBuilder {
	b.fields = append(b.fields, f)
	return b
}

// Build returns the built struct. The builder remains usable; fields added
// later do not affect previously built structs.
func (b *StructBuilder) Build() *Struct {
	return NewStruct(b.fields...)
}

// CloneBuilder returns a new builder pre-populated with this struct's
// fields.
func (s *Struct) CloneBuilder() *StructBuilder {
	b := &StructBuilder{}
	if len(s.fields) > 0 {
		b.fields = make([]StructField, len(s.fields))
		copy(b.fields, s.fields)
	}
	return b
}
