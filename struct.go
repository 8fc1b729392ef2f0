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

// A StructField is a single name/value pair inside a struct.
type StructField struct {
	Name  SymbolToken
	Value Element
}

// NewStructField returns a field with the given name text.
func NewStructField(name string, value Element) StructField {
	return StructField{Name: NewSymbolTokenFromString(name), Value: value}
}

// A Struct is an ordered collection of name/value pairs, written
// {a: 1, b: 2} in text. Field names need not be unique; a name may map to
// several values, and Get-style lookups are backed by a per-name index so
// they don't rescan the field list. Names with no known text all share a
// single index bucket.
//
// Structs are immutable once constructed; use a StructBuilder or
// CloneBuilder to derive new ones.
type Struct struct {
	fields []StructField

	byName  map[string][]int
	unknown []int
}

// NewStruct returns a struct containing the given fields, in order.
func NewStruct(fields ...StructField) *Struct {
	s := &Struct{}
	if len(fields) == 0 {
		return s
	}

	s.fields = make([]StructField, len(fields))
	copy(s.fields, fields)

	s.byName = make(map[string][]int, len(fields))
	for i, f := range s.fields {
		if f.Name.Text != nil {
			s.byName[*f.Name.Text] = append(s.byName[*f.Name.Text], i)
		} else {
			s.unknown = append(s.unknown, i)
		}
	}

	return s
}

// Fields returns the struct's fields in insertion order.
func (s *Struct) Fields() []StructField {
	if len(s.fields) == 0 {
		return nil
	}
	out := make([]StructField, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields in the struct, counting repeated names
// once per occurrence.
func (s *Struct) Len() int {
	return len(s.fields)
}

// IsEmpty returns true if the struct contains no fields.
func (s *Struct) IsEmpty() bool {
	return len(s.fields) == 0
}

// Get returns the value of the last field with the given name text. It
// returns false if no field has that name.
func (s *Struct) Get(name string) (Element, bool) {
	idxs := s.byName[name]
	if len(idxs) == 0 {
		return Element{}, false
	}
	return s.fields[idxs[len(idxs)-1]].Value, true
}

// GetAll returns the values of every field with the given name text, in
// insertion order.
func (s *Struct) GetAll(name string) []Element {
	return s.values(s.byName[name])
}

// GetBySymbol returns the value of the last field whose name matches the
// given token. A token with no text matches every field whose name has no
// text.
func (s *Struct) GetBySymbol(name SymbolToken) (Element, bool) {
	if name.Text != nil {
		return s.Get(*name.Text)
	}
	if len(s.unknown) == 0 {
		return Element{}, false
	}
	return s.fields[s.unknown[len(s.unknown)-1]].Value, true
}

// GetAllBySymbol returns the values of every field whose name matches the
// given token, in insertion order. A token with no text matches every field
// whose name has no text.
func (s *Struct) GetAllBySymbol(name SymbolToken) []Element {
	if name.Text != nil {
		return s.GetAll(*name.Text)
	}
	return s.values(s.unknown)
}

func (s *Struct) values(idxs []int) []Element {
	if len(idxs) == 0 {
		return nil
	}
	out := make([]Element, len(idxs))
	for i, idx := range idxs {
		out[i] = s.fields[idx].Value
	}
	return out
}

// Equal reports whether two structs are structurally equal. Field order
// never matters: the structs must have the same number of fields, and each
// field of one must match a same-named field of the other, in both
// directions. Field values are compared per the Ion data model.
func (s *Struct) Equal(o *Struct) bool {
	return s.eq(o)
}

// Equivalent reports whether two structs are equivalent per the Ion data
// model. For structs this is the same relation as Equal.
func (s *Struct) Equivalent(o *Struct) bool {
	return s.eq(o)
}

func (s *Struct) eq(o *Struct) bool {
	if len(s.fields) != len(o.fields) {
		return false
	}
	// Containment alone is not symmetric when names repeat, so check both
	// directions.
	return s.fieldsIn(o) && o.fieldsIn(s)
}

// fieldsIn reports whether every field of s matches a same-named field of o.
func (s *Struct) fieldsIn(o *Struct) bool {
	for name, idxs := range s.byName {
		oidxs := o.byName[name]
		if len(idxs) != len(oidxs) || !bucketIn(s, idxs, o, oidxs) {
			return false
		}
	}

	if len(s.unknown) != len(o.unknown) {
		return false
	}
	return bucketIn(s, s.unknown, o, o.unknown)
}

// bucketIn reports whether every value in s's bucket is equivalent to some
// value in o's bucket.
func bucketIn(s *Struct, idxs []int, o *Struct, oidxs []int) bool {
	for _, i := range idxs {
		found := false
		for _, j := range oidxs {
			if s.fields[i].Value.Equivalent(o.fields[j].Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// String returns this struct as Ion text.
func (s *Struct) String() string {
	return NewElement(NewStructValue(s)).String()
}
