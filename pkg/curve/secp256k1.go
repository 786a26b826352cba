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
package curve

import (
	"math/big"

	"github.com/consensys/go-weierstrass/pkg/field"
	"github.com/consensys/go-weierstrass/pkg/field/secp256k1"
)

// Secp256k1 is the curve y² = x³ + 7 over the secp256k1 base field.
type Secp256k1 struct{}

// A implementation for the Params interface.
func (Secp256k1) A() secp256k1.Element {
	return field.Zero[secp256k1.Element]()
}

// B implementation for the Params interface.
func (Secp256k1) B() secp256k1.Element {
	return field.Uint64[secp256k1.Element](7)
}

// Secp256k1Point is a point on the secp256k1 curve.
type Secp256k1Point = Point[secp256k1.Element, Secp256k1]

// Secp256k1Generator returns the standard base point of secp256k1.
func Secp256k1Generator() Secp256k1Point {
	gx, _ := new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	gy, _ := new(big.Int).SetString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)
	//
	return MustNew[secp256k1.Element, Secp256k1](field.BigInt[secp256k1.Element](gx), field.BigInt[secp256k1.Element](gy))
}
