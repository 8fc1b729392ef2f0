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
	"github.com/google/go-cmp/cmp"
)

func newString(s string) *string {
	return &s
}

// cmp options for comparing elements in tests by the two relations.
var cmpStructural = cmp.Comparer(func(a, b Element) bool {
	return a.Equal(b)
})

var cmpEquivalent = cmp.Comparer(func(a, b Element) bool {
	return a.Equivalent(b)
})
