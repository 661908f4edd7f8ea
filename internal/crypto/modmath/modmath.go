// Package modmath implements the modular arithmetic primitives the curve
// layer is built on: the extended Euclidean algorithm and modular inversion.
package modmath

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotInvertible is returned when an inverse is requested for a value that
// shares a nontrivial factor with the modulus.
var ErrNotInvertible = errors.New("modmath: value is not invertible")

// ExtendedGCD returns (g, s, t) such that g = gcd(a, b) = s*a + t*b.
// The inputs are not modified.
func ExtendedGCD(a, b *big.Int) (*big.Int, *big.Int, *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)

		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	return oldR, oldS, oldT
}

// InverseMod returns x in [0, m) such that n*x ≡ 1 (mod m). It fails with
// ErrNotInvertible when gcd(n, m) != 1. For a prime modulus this only
// happens when n ≡ 0 (mod m).
func InverseMod(n, m *big.Int) (*big.Int, error) {
	g, s, _ := ExtendedGCD(n, m)
	if g.Sign() < 0 {
		// Quo truncates toward zero, so negative inputs can flip the
		// sign of the whole Bézout identity.
		g.Neg(g)
		s.Neg(s)
	}
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: %s modulo %s", ErrNotInvertible, n, m)
	}
	return s.Mod(s, m), nil
}
