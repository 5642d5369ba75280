// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package param

import (
	"fmt"
	"math"
	"strings"

	"github.com/pairgen/pairgen/common"
)

const (
	// ErrDuplicateParameter is returned when registering a parameter under a
	// name that is already taken.
	ErrDuplicateParameter = common.ConstErr("duplicate parameter")

	// ErrEmptyDomain is returned when registering a parameter without values.
	ErrEmptyDomain = common.ConstErr("parameter has no values")

	// ErrDuplicateValue is returned when a parameter's value list contains
	// the same value more than once.
	ErrDuplicateValue = common.ConstErr("duplicate value")

	// ErrReservedValue is returned when a declared value collides with the
	// reserved empty sentinel.
	ErrReservedValue = common.ConstErr("value is reserved")
)

// Parameter is a named, ordered domain of values. The declaration order of
// values is significant; it defines the deterministic iteration order used
// by the generation algorithms.
type Parameter struct {
	Name   string
	Values []string
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s: {%s}", p.Name, strings.Join(p.Values, ", "))
}

// Registry holds the ordered list of parameters a generation run operates
// on. Parameters are iterated in insertion order, which downstream
// algorithms rely on for reproducible tie-breaking and output ordering.
// A Registry is not safe for concurrent modification.
type Registry struct {
	params   []Parameter
	index    map[string]int
	revision uint64
}

// NewRegistry creates an empty parameter registry.
func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Add registers a new parameter with the given value domain. The value
// slice is copied. Registration fails with ErrDuplicateParameter,
// ErrEmptyDomain, ErrDuplicateValue, or ErrReservedValue if the input is
// not a valid, uniquely named, non-empty domain of distinct values.
func (r *Registry) Add(name string, values []string) error {
	if _, exists := r.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateParameter, name)
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyDomain, name)
	}
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if value == common.EmptyValue {
			return fmt.Errorf("%w: parameter %q declares the empty sentinel as a value", ErrReservedValue, name)
		}
		if _, ok := seen[value]; ok {
			return fmt.Errorf("%w: parameter %q declares %q twice", ErrDuplicateValue, name, value)
		}
		seen[value] = struct{}{}
	}

	r.index[name] = len(r.params)
	r.params = append(r.params, Parameter{
		Name:   name,
		Values: append([]string(nil), values...),
	})
	r.revision++
	return nil
}

// Remove deletes the named parameter, preserving the order of the
// remaining ones. It reports whether the parameter was present.
func (r *Registry) Remove(name string) bool {
	pos, exists := r.index[name]
	if !exists {
		return false
	}
	r.params = append(r.params[:pos], r.params[pos+1:]...)
	delete(r.index, name)
	for i := pos; i < len(r.params); i++ {
		r.index[r.params[i].Name] = i
	}
	r.revision++
	return true
}

// Get retrieves the named parameter. The returned value list is a copy.
func (r *Registry) Get(name string) (Parameter, bool) {
	pos, exists := r.index[name]
	if !exists {
		return Parameter{}, false
	}
	cur := r.params[pos]
	return Parameter{
		Name:   cur.Name,
		Values: append([]string(nil), cur.Values...),
	}, true
}

// Has reports whether a parameter with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, exists := r.index[name]
	return exists
}

// HasValue reports whether the named parameter declares the given value.
func (r *Registry) HasValue(name string, value string) bool {
	pos, exists := r.index[name]
	if !exists {
		return false
	}
	for _, cur := range r.params[pos].Values {
		if cur == value {
			return true
		}
	}
	return false
}

// Parameters lists all registered parameters in insertion order. The
// returned slice and its value lists are copies.
func (r *Registry) Parameters() []Parameter {
	res := make([]Parameter, 0, len(r.params))
	for _, cur := range r.params {
		res = append(res, Parameter{
			Name:   cur.Name,
			Values: append([]string(nil), cur.Values...),
		})
	}
	return res
}

// Names lists the parameter names in insertion order.
func (r *Registry) Names() []string {
	res := make([]string, 0, len(r.params))
	for _, cur := range r.params {
		res = append(res, cur.Name)
	}
	return res
}

// Size returns the number of registered parameters.
func (r *Registry) Size() int {
	return len(r.params)
}

// Reset removes all registered parameters.
func (r *Registry) Reset() {
	r.params = nil
	r.index = map[string]int{}
	r.revision++
}

// Revision returns a counter that changes with every mutation of the
// registry. Derived caches use it to detect that their inputs are stale.
func (r *Registry) Revision() uint64 {
	return r.revision
}

// Combinations returns the size of the full combinatorial product of all
// value domains, saturating at the maximum uint64 value. An empty registry
// has zero combinations.
func (r *Registry) Combinations() uint64 {
	if len(r.params) == 0 {
		return 0
	}
	res := uint64(1)
	for _, cur := range r.params {
		n := uint64(len(cur.Values))
		if res > math.MaxUint64/n {
			return math.MaxUint64
		}
		res *= n
	}
	return res
}
