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

// GF_8209 is small prime field used mostly for testing.
var GF_8209 = Config{"GF_8209", 14}

// KOALABEAR is the 31bit KoalaBear field (2³¹ - 2²⁴ + 1).
var KOALABEAR = Config{"KOALABEAR", 31}

// MERSENNE_61 is the field of the Mersenne prime 2⁶¹ - 1.
var MERSENNE_61 = Config{"MERSENNE_61", 61}

// GOLDILOCKS is the 64bit Goldilocks field (2⁶⁴ - 2³² + 1).
var GOLDILOCKS = Config{"GOLDILOCKS", 64}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377", 253}

// SECP256K1_FP is the base field of the secp256k1 curve.
var SECP256K1_FP = Config{"SECP256K1_FP", 256}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	GF_8209,
	KOALABEAR,
	MERSENNE_61,
	GOLDILOCKS,
	BLS12_377,
	SECP256K1_FP,
}

// Config provides a simple mechanism for identifying the fields which have a
// backend in this module.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Number of bits needed to represent the modulus.
	BitWidth uint
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
