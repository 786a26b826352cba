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
package bls12_377

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-weierstrass/pkg/field"
)

// Element wraps fr.Element to conform to the field.Element interface.  It
// represents an element of the scalar field of the BLS12-377 curve.
type Element struct {
	fr.Element
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Div x / y, or ErrDivisionByZero if y = 0.
func (x Element) Div(y Element) (Element, error) {
	inv, err := y.Inverse()
	if err != nil {
		return Element{}, err
	}
	//
	return x.Mul(inv), nil
}

// Inverse x⁻¹, or ErrDivisionByZero if x = 0.
func (x Element) Inverse() (Element, error) {
	var elem fr.Element
	// gnark silently maps 0 to 0
	if x.Element.IsZero() {
		return Element{}, field.ErrDivisionByZero
	}
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}, nil
}

// Pow xⁿ, where a negative n is reduced modulo p-1.
func (x Element) Pow(n int64) Element {
	var elem fr.Element
	//
	elem.Exp(x.Element, field.Exponent(n, fr.Modulus()))
	//
	return Element{elem}
}

// Equals x = y
func (x Element) Equals(y Element) bool {
	return x.Element.Equal(&y.Element)
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Modulus implementation for the Element interface
func (x Element) Modulus() *big.Int {
	return fr.Modulus()
}

// SetUint64 implementation for Element.
func (x Element) SetUint64(val uint64) Element {
	var elem fr.Element
	//
	elem.SetUint64(val)
	//
	return Element{elem}
}

// SetInt64 implementation for Element.
func (x Element) SetInt64(val int64) Element {
	var elem fr.Element
	//
	elem.SetInt64(val)
	//
	return Element{elem}
}

// SetBigInt implementation for Element.
func (x Element) SetBigInt(val *big.Int) Element {
	var (
		elem fr.Element
		r    big.Int
	)
	// reduce first, so negative values are handled uniformly
	r.Mod(val, fr.Modulus())
	elem.SetBigInt(&r)
	//
	return Element{elem}
}

// BigInt returns the canonical value of x.
func (x Element) BigInt() *big.Int {
	return x.Element.BigInt(new(big.Int))
}

func (x Element) String() string {
	return x.Element.String()
}

// Text implementation for the Element interface
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
