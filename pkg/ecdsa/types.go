package ecdsa

import (
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/weierstrass"
)

// PrivateKey is the secret scalar d in [1, q−1] together with the curve it
// was generated on.
type PrivateKey struct {
	Curve *weierstrass.Curve
	D     *big.Int
}

// PublicKey carries the full curve parameters alongside the public point
// B = d·G. Keeping the key self-describing means verification never depends
// on an ambient curve constant shared out of band.
type PublicKey struct {
	Curve *weierstrass.Curve
	B     weierstrass.Point
}

// Signature is an ECDSA signature pair (r, s). A well-formed signature has
// both values in [1, q−1]; Verify rejects anything else.
type Signature struct {
	R *big.Int
	S *big.Int
}
