// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package gf

import (
	"math/big"
	"strconv"

	"github.com/consensys/go-weierstrass/pkg/field"
	"lukechampine.com/uint128"
)

// Element of the prime field determined by M.  The value is always kept in
// canonical form, i.e. in the range [0, p).  The zero value is the additive
// identity.
type Element[M Modulus] struct {
	value uint64
}

// New constructs the element val (mod p).
func New[M Modulus](val uint64) Element[M] {
	return Element[M]{val % order[M]()}
}

// FromInt64 constructs the element val (mod p), where negative values are
// mapped onto their additive inverse.
func FromInt64[M Modulus](val int64) Element[M] {
	if val >= 0 {
		return New[M](uint64(val))
	}
	// NOTE: -val overflows for math.MinInt64, hence the indirection.
	var (
		p = order[M]()
		r = (uint64(-(val + 1)) + 1) % p
	)
	//
	if r == 0 {
		return Element[M]{}
	}
	//
	return Element[M]{p - r}
}

// Add x + y
func (x Element[M]) Add(y Element[M]) Element[M] {
	// Two canonical values can exceed 64 bits for p > 2⁶³.
	return Element[M]{uint128.From64(x.value).Add64(y.value).Mod64(order[M]())}
}

// Sub x - y
func (x Element[M]) Sub(y Element[M]) Element[M] {
	if x.value >= y.value {
		return Element[M]{x.value - y.value}
	}
	// y - x is in (0, p) here.
	return Element[M]{order[M]() - (y.value - x.value)}
}

// Mul x * y
func (x Element[M]) Mul(y Element[M]) Element[M] {
	return Element[M]{uint128.From64(x.value).Mul64(y.value).Mod64(order[M]())}
}

// Neg -x
func (x Element[M]) Neg() Element[M] {
	if x.value == 0 {
		return x
	}
	//
	return Element[M]{order[M]() - x.value}
}

// Div x / y, computed as x * y^(p-2).
func (x Element[M]) Div(y Element[M]) (Element[M], error) {
	if y.value%order[M]() == 0 {
		return Element[M]{}, field.ErrDivisionByZero
	}
	//
	return x.Mul(y.exp(order[M]() - 2)), nil
}

// Inverse x⁻¹, or ErrDivisionByZero if x = 0.
func (x Element[M]) Inverse() (Element[M], error) {
	return New[M](1).Div(x)
}

// Pow xⁿ.  A negative exponent n is replaced by n mod (p-1), which is sound by
// Fermat's little theorem for any non-zero x.  Furthermore, x⁰ = 1 for all x
// (including 0).
func (x Element[M]) Pow(n int64) Element[M] {
	if n >= 0 {
		return x.exp(uint64(n))
	}
	//
	var (
		g = order[M]() - 1
		r = (uint64(-(n + 1)) + 1) % g
	)
	//
	if r == 0 {
		return x.exp(0)
	}
	//
	return x.exp(g - r)
}

// exp computes xⁿ by square-and-multiply.
func (x Element[M]) exp(n uint64) Element[M] {
	var (
		result = New[M](1)
		base   = x
	)
	//
	for n != 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		// div 2
		n >>= 1
		//
		if n != 0 {
			base = base.Mul(base)
		}
	}
	//
	return result
}

// Equals x = y
func (x Element[M]) Equals(y Element[M]) bool {
	return x.value == y.value
}

// IsZero implementation for the Element interface
func (x Element[M]) IsZero() bool {
	return x.value == 0
}

// IsOne implementation for the Element interface
func (x Element[M]) IsOne() bool {
	return x.value == 1
}

// Modulus implementation for the Element interface
func (x Element[M]) Modulus() *big.Int {
	return new(big.Int).SetUint64(order[M]())
}

// SetUint64 implementation for the Element interface
func (x Element[M]) SetUint64(val uint64) Element[M] {
	return New[M](val)
}

// SetInt64 implementation for the Element interface
func (x Element[M]) SetInt64(val int64) Element[M] {
	return FromInt64[M](val)
}

// SetBigInt implementation for the Element interface
func (x Element[M]) SetBigInt(val *big.Int) Element[M] {
	var r big.Int
	// Euclidean modulus, hence non-negative
	r.Mod(val, x.Modulus())
	//
	return Element[M]{r.Uint64()}
}

// Uint64 returns the canonical value of x.
func (x Element[M]) Uint64() uint64 {
	return x.value
}

// BigInt implementation for the Element interface
func (x Element[M]) BigInt() *big.Int {
	return new(big.Int).SetUint64(x.value)
}

func (x Element[M]) String() string {
	return x.Text(10)
}

// Text implementation for the Element interface
func (x Element[M]) Text(base int) string {
	return strconv.FormatUint(x.value, base)
}
