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
	"testing"

	"github.com/consensys/go-weierstrass/pkg/field"
	"github.com/consensys/go-weierstrass/pkg/field/gf"
	"github.com/consensys/go-weierstrass/pkg/util/assert"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type gf10007 struct{}

func (gf10007) Order() uint64 { return 10007 }

type S = gf.Element[gf10007]

// y² = x³ + 2x + 3 over GF(10007)
type small struct{}

func (small) A() S { return field.Uint64[S](2) }
func (small) B() S { return field.Uint64[S](3) }

// enumerate all finite points of the small curve, using plain integer
// arithmetic as an independent reference.
func enumerate() []Point[S, small] {
	const p = 10007
	//
	var (
		roots  = make(map[uint64][]uint64)
		points []Point[S, small]
	)
	//
	for y := uint64(0); y < p; y++ {
		sq := y * y % p
		roots[sq] = append(roots[sq], y)
	}
	//
	for x := uint64(0); x < p; x++ {
		rhs := (x*x%p*x + 2*x + 3) % p
		for _, y := range roots[rhs] {
			points = append(points, MustNew[S, small](field.Uint64[S](x), field.Uint64[S](y)))
		}
	}
	//
	return points
}

func Test_Small_01(t *testing.T) {
	var (
		points = enumerate()
		// including the point at infinity
		order = len(points) + 1
	)
	//
	assert.False(t, IsSingular[S, small]())
	// Lagrange: every point is annihilated by the group order.
	for _, i := range []int{0, 1, len(points) / 2, len(points) - 1} {
		acc := Infinity[S, small]()
		//
		for j := 0; j < order; j++ {
			acc = acc.Add(points[i])
		}
		//
		assert.True(t, acc.IsInfinity(), "%d * %s", order, points[i].String())
	}
}

func Test_Small_02(t *testing.T) {
	// Every other (x, y) pair is rejected.
	for x := uint64(0); x < 32; x++ {
		for y := uint64(0); y < 32; y++ {
			var (
				fx      = field.Uint64[S](x)
				fy      = field.Uint64[S](y)
				_, err  = New[S, small](fx, fy)
				onCurve = IsOnCurve[S, small](fx, fy)
			)
			//
			if onCurve {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotOnCurve)
			}
		}
	}
}

func Test_Small_Properties(t *testing.T) {
	var (
		points     = enumerate()
		parameters = gopter.DefaultTestParameters()
		index      = gen.IntRange(0, len(points)-1)
		infinity   = Infinity[S, small]()
	)
	//
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("P + ∞ = ∞ + P = P", prop.ForAll(
		func(i int) bool {
			p := points[i]
			//
			return p.Add(infinity).Equals(p) && infinity.Add(p).Equals(p)
		}, index))
	//
	properties.Property("P + Q = Q + P", prop.ForAll(
		func(i, j int) bool {
			p, q := points[i], points[j]
			//
			return p.Add(q).Equals(q.Add(p))
		}, index, index))
	//
	properties.Property("(P + Q) + R = P + (Q + R)", prop.ForAll(
		func(i, j, k int) bool {
			p, q, r := points[i], points[j], points[k]
			//
			return p.Add(q).Add(r).Equals(p.Add(q.Add(r)))
		}, index, index, index))
	//
	properties.Property("P + (-P) = ∞", prop.ForAll(
		func(i int) bool {
			p := points[i]
			//
			return p.Add(p.Neg()).IsInfinity()
		}, index))
	//
	properties.Property("P + P = 2P", prop.ForAll(
		func(i int) bool {
			p := points[i]
			//
			return p.Add(p).Equals(p.Double())
		}, index))
	//
	properties.Property("(P + Q) - Q = P", prop.ForAll(
		func(i, j int) bool {
			p, q := points[i], points[j]
			//
			return p.Add(q).Sub(q).Equals(p)
		}, index, index))
	//
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
