// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"sort"
	"strings"
)

// EmptyValue is the reserved marker for a parameter that is intentionally
// left unset in a test case. It is distinct from every declared value; the
// parameter registry rejects "" as a declared value for this reason.
const EmptyValue = ""

// Assignment maps parameter names to selected values. A missing key means
// the parameter has not been decided yet; a key mapped to EmptyValue means
// the parameter is deliberately unset. A complete Assignment with one entry
// per registered parameter represents a single test case.
type Assignment map[string]string

// Decided reports whether the named parameter has been assigned a value,
// including the empty sentinel.
func (a Assignment) Decided(parameter string) bool {
	_, ok := a[parameter]
	return ok
}

// Clone produces an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	res := make(Assignment, len(a))
	for key, value := range a {
		res[key] = value
	}
	return res
}

// Signature returns a canonical textual form of the assignment. Two
// assignments have equal signatures iff they decide the same parameters to
// the same values, which makes the signature usable as a cache key.
func (a Assignment) Signature() string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, key := range keys {
		if i > 0 {
			builder.WriteByte('\x1f')
		}
		builder.WriteString(key)
		builder.WriteByte('\x1e')
		builder.WriteString(a[key])
	}
	return builder.String()
}

func (a Assignment) String() string {
	if a == nil {
		return "{}"
	}

	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(a))
	for _, key := range keys {
		value := a[key]
		if value == EmptyValue {
			value = "<empty>"
		}
		entries = append(entries, key+"->"+value)
	}

	return "{" + strings.Join(entries, ",") + "}"
}
