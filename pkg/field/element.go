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
package field

import (
	"errors"
	"fmt"
	"math/big"

	pkgErrors "github.com/pkg/errors"
)

// ErrDivisionByZero is returned when dividing by (or inverting) an element
// whose reduced value is zero.
var ErrDivisionByZero = errors.New("division by zero")

// An Element of a prime-order field.  Elements are immutable values: every
// operation returns a fresh element and leaves its operands untouched.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// Mul x*y
	Mul(y Operand) Operand
	// Div x/y, or ErrDivisionByZero if y = 0.
	Div(y Operand) (Operand, error)
	// Inverse x⁻¹, or ErrDivisionByZero if x = 0.
	Inverse() (Operand, error)
	// Neg -x
	Neg() Operand
	// Pow xⁿ where negative exponents are taken modulo the order of the
	// multiplicative group.
	Pow(n int64) Operand
	// Equals checks whether x = y.
	Equals(y Operand) bool
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// SetUint64 returns the element corresponding to val (mod p).
	SetUint64(val uint64) Operand
	// SetInt64 returns the element corresponding to val (mod p), mapping
	// negative values into range.
	SetInt64(val int64) Operand
	// SetBigInt returns the element corresponding to val (mod p).
	SetBigInt(val *big.Int) Operand
	// BigInt returns the canonical value of x in [0, p).
	BigInt() *big.Int
	// Text returns the numerical value of x in the given base.
	Text(base int) string
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(0)
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Int64 construct a field element from a given int64.  Negative values are
// mapped to their additive inverses.
func Int64[F Element[F]](val int64) F {
	var element F
	//
	return element.SetInt64(val)
}

// BigInt construct a field element from a given big.Int
func BigInt[F Element[F]](val *big.Int) F {
	var element F
	//
	return element.SetBigInt(val)
}

// Div is a convenience wrapper around x.Div(y) which annotates a division by
// zero with the dividend involved.
func Div[F Element[F]](x, y F) (F, error) {
	res, err := x.Div(y)
	if err != nil {
		return res, pkgErrors.Wrapf(err, "cannot divide %s", x.String())
	}
	//
	return res, nil
}
