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
	"errors"
	"math/big"

	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNotPrime signals a modulus which cannot be used to construct a field.
var ErrNotPrime = errors.New("modulus is not prime")

// Modulus determines a prime field.  Implementations are expected to be empty
// structs, such that the order of a field is part of the element type itself.
// This means elements of different fields can never be mixed.
type Modulus interface {
	// Order returns the (prime) number of elements in the field.
	Order() uint64
}

// GF8209 is a small prime field, mostly useful for exhaustive testing.
type GF8209 struct{}

// Order implementation for the Modulus interface.
func (GF8209) Order() uint64 { return 8209 }

// KoalaBear is the field of order 2³¹ - 2²⁴ + 1.
type KoalaBear struct{}

// Order implementation for the Modulus interface.
func (KoalaBear) Order() uint64 { return 2130706433 }

// Mersenne61 is the field of order 2⁶¹ - 1.
type Mersenne61 struct{}

// Order implementation for the Modulus interface.
func (Mersenne61) Order() uint64 { return 1<<61 - 1 }

// Goldilocks is the field of order 2⁶⁴ - 2³² + 1.  Since this exceeds 2⁶³,
// sums of two elements do not fit into 64 bits.
type Goldilocks struct{}

// Order implementation for the Modulus interface.
func (Goldilocks) Order() uint64 { return 18446744069414584321 }

// Validate checks that the modulus M determines a field, i.e. that its order
// is prime.  Elements do not check this themselves, and arithmetic over a
// composite modulus (in particular division) is meaningless.
func Validate[M Modulus]() error {
	var (
		p = order[M]()
		n = new(big.Int).SetUint64(p)
	)
	// Baillie-PSW is exact for all inputs below 2⁶⁴.
	if p < 2 || !n.ProbablyPrime(0) {
		log.Debugf("rejecting modulus %d", p)
		return pkgErrors.Wrapf(ErrNotPrime, "%d", p)
	}
	//
	log.Debugf("accepted modulus %d (%d bits)", p, n.BitLen())
	//
	return nil
}

func order[M Modulus]() uint64 {
	var m M
	return m.Order()
}
