// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm
// over a short Weierstrass prime-field curve: key generation, signing and
// verification, built on the affine group law in internal/crypto/weierstrass.
//
// All operations are pure functions of their inputs except for the two
// random draws (the private scalar d and the per-signature nonce k), which
// come from crypto/rand. Each signing call draws a fresh nonce with no
// shared generator state, so concurrent signing cannot replay a nonce.
package ecdsa

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/smallyu/go-ecdsa/internal/crypto/modmath"
	"github.com/smallyu/go-ecdsa/internal/crypto/weierstrass"
)

// Common errors returned by the protocol operations.
var (
	ErrInvalidPrivateKey  = errors.New("ecdsa: private key scalar out of range")
	ErrInvalidPublicKey   = errors.New("ecdsa: public key point is not a valid group element")
	ErrMalformedSignature = errors.New("ecdsa: signature values out of range")
)

// GenerateKeys draws d uniformly from [1, q−1] using crypto/rand and returns
// the public key B = d·G together with the private key.
func GenerateKeys(curve *weierstrass.Curve) (*PublicKey, *PrivateKey, error) {
	d, err := randScalar(curve.Params().N)
	if err != nil {
		return nil, nil, err
	}

	b, err := curve.ScalarMult(d, curve.Generator())
	if err != nil {
		return nil, nil, err
	}

	pub := &PublicKey{Curve: curve, B: b}
	priv := &PrivateKey{Curve: curve, D: d}
	return pub, priv, nil
}

// Sign produces an ECDSA signature over SHA-256(message) using a fresh
// random nonce. The internal rejection loops (r = 0 or s = 0, both of
// negligible probability on a well-chosen curve) retry transparently with
// a new nonce.
func Sign(message []byte, priv *PrivateKey) (*Signature, error) {
	if priv == nil || priv.Curve == nil || priv.D == nil {
		return nil, ErrInvalidPrivateKey
	}
	q := priv.Curve.Params().N
	if priv.D.Sign() <= 0 || priv.D.Cmp(q) >= 0 {
		return nil, ErrInvalidPrivateKey
	}

	e := hashToInt(message)

	for {
		k, err := randScalar(q)
		if err != nil {
			return nil, err
		}

		rp, err := priv.Curve.ScalarMult(k, priv.Curve.Generator())
		if err != nil {
			return nil, err
		}

		r := new(big.Int).Mod(rp.X, q)
		if r.Sign() == 0 {
			continue
		}

		kInv, err := modmath.InverseMod(k, q)
		if err != nil {
			return nil, err
		}

		// s = (e + d·r) · k⁻¹ mod q
		s := new(big.Int).Mul(priv.D, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, q)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid signature of message under pub.
// Signatures with r or s outside [1, q−1] are rejected with
// ErrMalformedSignature rather than processed.
func Verify(message []byte, sig *Signature, pub *PublicKey) (bool, error) {
	if pub == nil || pub.Curve == nil {
		return false, ErrInvalidPublicKey
	}
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, ErrMalformedSignature
	}

	q := pub.Curve.Params().N
	if sig.R.Sign() <= 0 || sig.R.Cmp(q) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(q) >= 0 {
		return false, ErrMalformedSignature
	}
	if pub.B.IsInfinity() || !pub.Curve.IsOnCurve(pub.B) {
		return false, ErrInvalidPublicKey
	}

	w, err := modmath.InverseMod(sig.S, q)
	if err != nil {
		return false, err
	}

	e := hashToInt(message)
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, q)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, q)

	p1, err := pub.Curve.ScalarMult(u1, pub.Curve.Generator())
	if err != nil {
		return false, err
	}
	p2, err := pub.Curve.ScalarMult(u2, pub.B)
	if err != nil {
		return false, err
	}

	p, err := pub.Curve.Add(p1, p2)
	if err != nil {
		return false, err
	}
	if p.IsInfinity() {
		return false, nil
	}

	x := new(big.Int).Mod(p.X, q)
	return x.Cmp(sig.R) == 0, nil
}

// hashToInt interprets the SHA-256 digest of message as a big-endian
// unsigned integer.
func hashToInt(message []byte) *big.Int {
	digest := sha256.Sum256(message)
	return new(big.Int).SetBytes(digest[:])
}

// randScalar draws a uniform scalar from [1, n−1].
func randScalar(n *big.Int) (*big.Int, error) {
	bound := new(big.Int).Sub(n, big.NewInt(1))
	k, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}
