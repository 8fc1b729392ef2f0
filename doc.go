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

// Package ion provides an immutable in-memory model for Amazon Ion data,
// together with a reader and writer for the Ion text format.
//
// The core type is Element: an Ion value plus its annotations. Elements are
// built either programmatically,
//
//	e := ion.NewStructElement(
//		ion.NewStructField("id", ion.NewIntElement(17)),
//		ion.NewStructField("name", ion.NewStringElement("foo")),
//	)
//
// or by reading Ion text,
//
//	e, err := ion.ReadOneStr(`{id: 17, name: "foo"}`)
//
// and rendered back to text with String or WriteTo. Elements are immutable;
// the builder types (ListBuilder, SexpBuilder, StructBuilder) construct new
// containers, and CloneBuilder seeds a builder from an existing one.
//
// Two equality relations are provided. Equal is structural: NaN is not equal
// to itself, and timestamps must agree in timezone kind as well as instant
// and precision. Equivalent follows the Ion data model: NaN is equivalent to
// itself, and timestamps compare by instant and precision alone. Both
// relations are representation-sensitive for decimals, so 1.0 and 1.00 are
// distinct.
//
// For streaming access without materializing a tree, use Reader and Writer
// directly.
package ion
