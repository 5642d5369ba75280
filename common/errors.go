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

// ConstErr is an error type allowing errors to be declared as constants.
// Packages use it to define their sentinel error kinds, which callers
// match with errors.Is even when wrapped with additional detail.
type ConstErr string

func (e ConstErr) Error() string {
	return string(e)
}
