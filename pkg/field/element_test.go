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
package field_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-weierstrass/pkg/field"
	"github.com/consensys/go-weierstrass/pkg/field/bls12_377"
	"github.com/consensys/go-weierstrass/pkg/field/gf"
	"github.com/consensys/go-weierstrass/pkg/field/secp256k1"
	"github.com/consensys/go-weierstrass/pkg/util/assert"
)

const POW_BASE_MAX uint = 4096
const POW_BASE_INC uint = 4

func init() {
	// make sure the interface is adhered to.
	_ = field.Element[gf.Element[gf.KoalaBear]](gf.Element[gf.KoalaBear]{})
	_ = field.Element[bls12_377.Element](bls12_377.Element{})
	_ = field.Element[secp256k1.Element](secp256k1.Element{})
}

func Test_Pow_00(t *testing.T) {
	PowCheck(t, 1, 1)
}
func Test_Pow_01(t *testing.T) {
	PowCheck(t, 2, 1)
}
func Test_Pow_02(t *testing.T) {
	PowCheck(t, 2, 2)
}
func Test_Pow_03(t *testing.T) {
	PowCheck(t, 3, 5)
}

func Test_Pow_04(t *testing.T) {
	PowCheck(t, 0, 0)
}

func Test_Pow_10(t *testing.T) {
	PowCheckLoop(t, 0)
}

func Test_Pow_11(t *testing.T) {
	PowCheckLoop(t, 1)
}

func Test_Pow_12(t *testing.T) {
	PowCheckLoop(t, 2)
}

func Test_Pow_13(t *testing.T) {
	PowCheckLoop(t, 3)
}

func PowCheckLoop(t *testing.T, first uint) {
	// Enable parallel testing
	t.Parallel()
	// Run through the loop
	for i := first; i < POW_BASE_MAX; i += POW_BASE_INC {
		for j := uint64(0); j < 64; j++ {
			PowCheck(t, i, j)
		}
	}
}

// Check pow computed correctly, both generically and by the element itself.
// This is done by comparing against the existing gnark function.
func PowCheck(t *testing.T, base uint, pow uint64) {
	var (
		k        = new(big.Int).SetUint64(pow)
		x        = field.Uint64[bls12_377.Element](uint64(base))
		expected = fr.NewElement(uint64(base))
	)
	// Compute expected using existing gnark function
	expected.Exp(expected, k)
	// Generic square and multiply
	if actual := field.Pow(x, pow); !actual.Element.Equal(&expected) {
		t.Errorf("Pow(%d,%d)=%s (not %s)", base, pow, actual.String(), expected.String())
	}
	// Backend implementation
	if actual := x.Pow(int64(pow)); !actual.Element.Equal(&expected) {
		t.Errorf("%d.Pow(%d)=%s (not %s)", base, pow, actual.String(), expected.String())
	}
}

func Test_Exponent_01(t *testing.T) {
	var p = big.NewInt(8209)
	//
	assert.Equal(t, int64(5), field.Exponent(5, p).Int64())
	assert.Equal(t, int64(0), field.Exponent(0, p).Int64())
	assert.Equal(t, int64(8207), field.Exponent(-1, p).Int64())
	assert.Equal(t, int64(0), field.Exponent(-8208, p).Int64())
	assert.Equal(t, int64(8207), field.Exponent(-8209, p).Int64())
}

func Test_Helpers_01(t *testing.T) {
	assert.True(t, field.Zero[secp256k1.Element]().IsZero())
	assert.True(t, field.One[secp256k1.Element]().IsOne())
	assert.True(t, field.Int64[secp256k1.Element](-1).Add(field.One[secp256k1.Element]()).IsZero())
	assert.EqualTo(t, field.Uint64[gf.Element[gf.GF8209]](1), field.BigInt[gf.Element[gf.GF8209]](big.NewInt(8210)))
}

func Test_Div_01(t *testing.T) {
	var x = field.Uint64[gf.Element[gf.GF8209]](3)
	//
	_, err := field.Div(x, field.Zero[gf.Element[gf.GF8209]]())
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
	assert.Equal(t, "cannot divide 3: division by zero", err.Error())
}

func Test_Config_01(t *testing.T) {
	checkConfig[gf.Element[gf.GF8209]](t, "GF_8209")
	checkConfig[gf.Element[gf.KoalaBear]](t, "KOALABEAR")
	checkConfig[gf.Element[gf.Mersenne61]](t, "MERSENNE_61")
	checkConfig[gf.Element[gf.Goldilocks]](t, "GOLDILOCKS")
	checkConfig[bls12_377.Element](t, "BLS12_377")
	checkConfig[secp256k1.Element](t, "SECP256K1_FP")
}

func Test_Config_02(t *testing.T) {
	assert.True(t, field.GetConfig("GF_251") == nil)
}

// Check the registered bitwidth of a field matches its backend.
func checkConfig[F field.Element[F]](t *testing.T, name string) {
	var (
		config  = field.GetConfig(name)
		modulus = field.Zero[F]().Modulus()
	)
	//
	if config == nil {
		t.Fatalf("unknown field %q", name)
	}
	//
	assert.Equal(t, uint(modulus.BitLen()), config.BitWidth, "bitwidth of %s", name)
	assert.True(t, modulus.ProbablyPrime(20), "modulus of %s", name)
}
