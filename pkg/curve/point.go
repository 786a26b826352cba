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

// Package curve implements the group law of short Weierstrass curves
// y² = x³ + Ax + B over an arbitrary prime field.
package curve

import (
	"errors"
	"fmt"

	"github.com/consensys/go-weierstrass/pkg/field"
	pkgErrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNotOnCurve signals coordinates which do not satisfy the curve equation.
var ErrNotOnCurve = errors.New("point not on curve")

// Params determines a curve y² = x³ + Ax + B over the field F.  As with field
// moduli, implementations are expected to be empty structs so that points on
// different curves have different types.
type Params[F field.Element[F]] interface {
	// A returns the coefficient of x.
	A() F
	// B returns the constant coefficient.
	B() F
}

// Point is either the point at infinity (the group identity) or a finite
// point (x, y) on the curve determined by C.  Points are immutable, and the
// zero value is the point at infinity.
type Point[F field.Element[F], C Params[F]] struct {
	x, y   F
	finite bool
}

// New constructs the finite point (x, y), or fails with ErrNotOnCurve if it
// does not satisfy the curve equation.
func New[F field.Element[F], C Params[F]](x, y F) (Point[F, C], error) {
	if !IsOnCurve[F, C](x, y) {
		return Point[F, C]{}, pkgErrors.Wrapf(ErrNotOnCurve, "(%s, %s)", x.String(), y.String())
	}
	//
	return Point[F, C]{x, y, true}, nil
}

// MustNew is like New, but panics if (x, y) is not on the curve.
func MustNew[F field.Element[F], C Params[F]](x, y F) Point[F, C] {
	p, err := New[F, C](x, y)
	if err != nil {
		panic(err)
	}
	//
	return p
}

// Infinity returns the point at infinity.
func Infinity[F field.Element[F], C Params[F]]() Point[F, C] {
	return Point[F, C]{}
}

// IsOnCurve checks whether y² = x³ + Ax + B holds.
func IsOnCurve[F field.Element[F], C Params[F]](x, y F) bool {
	var (
		c   C
		lhs = y.Mul(y)
		rhs = x.Mul(x).Mul(x).Add(c.A().Mul(x)).Add(c.B())
	)
	//
	return lhs.Equals(rhs)
}

// Discriminant returns -16(4A³ + 27B²), which is zero exactly when the curve is
// singular (in fields of characteristic other than 2 and 3).
func Discriminant[F field.Element[F], C Params[F]]() F {
	var (
		c  C
		a  = c.A()
		b  = c.B()
		a3 = a.Mul(a).Mul(a).Mul(field.Uint64[F](4))
		b2 = b.Mul(b).Mul(field.Uint64[F](27))
	)
	//
	return a3.Add(b2).Mul(field.Int64[F](-16))
}

// IsSingular checks whether the curve has a vanishing discriminant.  Singular
// curves are still accepted by this package, though their points do not form
// the usual elliptic curve group.
func IsSingular[F field.Element[F], C Params[F]]() bool {
	return Discriminant[F, C]().IsZero()
}

// Add p + q using the chord-and-tangent rule.  The cases are examined in a
// fixed order: identities first, then equal points (doubling or a vertical
// tangent), then points sharing an x coordinate, then the general chord.
func (p Point[F, C]) Add(q Point[F, C]) Point[F, C] {
	switch {
	case !p.finite:
		// Also covers ∞ + ∞
		return q
	case !q.finite:
		return p
	case p.x.Equals(q.x) && p.y.Equals(q.y):
		if p.y.IsZero() {
			// 2-torsion point, so the tangent is vertical
			return Infinity[F, C]()
		}
		//
		return p.tangent()
	case p.x.Equals(q.x):
		// q = -p
		return Infinity[F, C]()
	default:
		return p.chord(q)
	}
}

// Double p + p
func (p Point[F, C]) Double() Point[F, C] {
	return p.Add(p)
}

// Neg returns the inverse of p, i.e. (x, -y).
func (p Point[F, C]) Neg() Point[F, C] {
	if !p.finite {
		return p
	}
	//
	return Point[F, C]{p.x, p.y.Neg(), true}
}

// Sub p - q
func (p Point[F, C]) Sub(q Point[F, C]) Point[F, C] {
	return p.Add(q.Neg())
}

// s = (3x² + A) / 2y
// x₃ = s² - 2x
// y₃ = s(x - x₃) - y
func (p Point[F, C]) tangent() Point[F, C] {
	var (
		c   C
		num = field.Uint64[F](3).Mul(p.x.Mul(p.x)).Add(c.A())
		den = field.Uint64[F](2).Mul(p.y)
	)
	//
	s, err := field.Div(num, den)
	if err != nil {
		log.Panicf("doubling %s: %v", p.String(), err)
	}
	//
	x3 := s.Mul(s).Sub(p.x.Add(p.x))
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	//
	return result[F, C](x3, y3)
}

// s = (y₂ - y₁) / (x₂ - x₁)
// x₃ = s² - x₁ - x₂
// y₃ = s(x₁ - x₃) - y₁
func (p Point[F, C]) chord(q Point[F, C]) Point[F, C] {
	s, err := field.Div(q.y.Sub(p.y), q.x.Sub(p.x))
	if err != nil {
		log.Panicf("adding %s and %s: %v", p.String(), q.String(), err)
	}
	//
	x3 := s.Mul(s).Sub(p.x).Sub(q.x)
	y3 := s.Mul(p.x.Sub(x3)).Sub(p.y)
	//
	return result[F, C](x3, y3)
}

// result re-validates the outcome of the group law.  For points on the curve
// this cannot fail, hence a failure indicates broken field arithmetic.
func result[F field.Element[F], C Params[F]](x, y F) Point[F, C] {
	r, err := New[F, C](x, y)
	if err != nil {
		log.Panicf("group law produced invalid point %v", err)
	}
	//
	return r
}

// Equals checks whether p and q are the same point.
func (p Point[F, C]) Equals(q Point[F, C]) bool {
	switch {
	case !p.finite || !q.finite:
		return p.finite == q.finite
	default:
		return p.x.Equals(q.x) && p.y.Equals(q.y)
	}
}

// IsInfinity checks whether p is the point at infinity.
func (p Point[F, C]) IsInfinity() bool {
	return !p.finite
}

// Coordinates returns the affine coordinates of p, or false for the point at
// infinity.
func (p Point[F, C]) Coordinates() (F, F, bool) {
	return p.x, p.y, p.finite
}

// X returns the x coordinate of p (which is zero for the point at infinity).
func (p Point[F, C]) X() F {
	return p.x
}

// Y returns the y coordinate of p (which is zero for the point at infinity).
func (p Point[F, C]) Y() F {
	return p.y
}

func (p Point[F, C]) String() string {
	if !p.finite {
		return "∞"
	}
	//
	return fmt.Sprintf("(%s, %s)", p.x.String(), p.y.String())
}
