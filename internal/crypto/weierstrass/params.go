package weierstrass

import (
	"math/big"
)

// Params describes a short Weierstrass curve y² = x³ + A·x + B over the
// prime field F_P, together with the prime order N of the cyclic subgroup
// generated by the base point (Gx, Gy).
type Params struct {
	Name   string
	A, B   *big.Int
	P      *big.Int
	N      *big.Int
	Gx, Gy *big.Int
}

// Secp256k1 returns the parameters of the secp256k1 curve as standardized
// by SECG and used by Bitcoin.
func Secp256k1() *Params {
	return &Params{
		Name: "secp256k1",
		A:    big.NewInt(0),
		B:    big.NewInt(7),
		P:    mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		N:    mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		Gx:   mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:   mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	}
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("weierstrass: bad hex constant " + s)
	}
	return v
}
