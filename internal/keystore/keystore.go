// Package keystore persists keys and signatures as explicit, version-tagged
// YAML documents. Every document carries a format version and a kind tag,
// and all integers are hex encoded, so files stay portable and auditable.
// Key documents embed the full curve parameters and are self-contained.
package keystore

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-ecdsa/internal/crypto/weierstrass"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

const (
	// Version is the current document format version.
	Version = 1

	// KindPrivateKey tags a private key document.
	KindPrivateKey = "private-key"
	// KindPublicKey tags a public key document.
	KindPublicKey = "public-key"
	// KindSignature tags a signature document.
	KindSignature = "signature"
)

type curveDoc struct {
	Name string `yaml:"name"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	P    string `yaml:"p"`
	N    string `yaml:"n"`
	Gx   string `yaml:"gx"`
	Gy   string `yaml:"gy"`
}

type privateKeyDoc struct {
	Version int      `yaml:"version"`
	Kind    string   `yaml:"kind"`
	Curve   curveDoc `yaml:"curve"`
	D       string   `yaml:"d"`
}

type publicKeyDoc struct {
	Version int      `yaml:"version"`
	Kind    string   `yaml:"kind"`
	Curve   curveDoc `yaml:"curve"`
	Bx      string   `yaml:"bx"`
	By      string   `yaml:"by"`
}

type signatureDoc struct {
	Version int    `yaml:"version"`
	Kind    string `yaml:"kind"`
	R       string `yaml:"r"`
	S       string `yaml:"s"`
}

// EncodePrivateKey serializes priv as a private-key document.
func EncodePrivateKey(priv *ecdsa.PrivateKey) ([]byte, error) {
	doc := privateKeyDoc{
		Version: Version,
		Kind:    KindPrivateKey,
		Curve:   encodeCurve(priv.Curve.Params()),
		D:       formatInt(priv.D),
	}
	return yaml.Marshal(&doc)
}

// DecodePrivateKey parses a private-key document and reconstructs the curve
// group it refers to, re-validating the curve invariants in the process.
func DecodePrivateKey(data []byte) (*ecdsa.PrivateKey, error) {
	var doc privateKeyDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "keystore: decode private key")
	}
	if err := checkHeader(doc.Version, doc.Kind, KindPrivateKey); err != nil {
		return nil, err
	}

	curve, err := decodeCurve(doc.Curve)
	if err != nil {
		return nil, err
	}
	d, err := parseInt(doc.D)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: private key scalar")
	}
	if d.Sign() <= 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, errors.New("keystore: private key scalar out of range")
	}
	return &ecdsa.PrivateKey{Curve: curve, D: d}, nil
}

// EncodePublicKey serializes pub as a public-key document.
func EncodePublicKey(pub *ecdsa.PublicKey) ([]byte, error) {
	if pub.B.IsInfinity() {
		return nil, errors.New("keystore: cannot encode the point at infinity as a public key")
	}
	doc := publicKeyDoc{
		Version: Version,
		Kind:    KindPublicKey,
		Curve:   encodeCurve(pub.Curve.Params()),
		Bx:      formatInt(pub.B.X),
		By:      formatInt(pub.B.Y),
	}
	return yaml.Marshal(&doc)
}

// DecodePublicKey parses a public-key document. The decoded point is
// checked against the curve equation, closing the load-without-validation
// gap of opaque serializers.
func DecodePublicKey(data []byte) (*ecdsa.PublicKey, error) {
	var doc publicKeyDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "keystore: decode public key")
	}
	if err := checkHeader(doc.Version, doc.Kind, KindPublicKey); err != nil {
		return nil, err
	}

	curve, err := decodeCurve(doc.Curve)
	if err != nil {
		return nil, err
	}
	bx, err := parseInt(doc.Bx)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: public key x")
	}
	by, err := parseInt(doc.By)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: public key y")
	}

	b := weierstrass.NewPoint(bx, by)
	if !curve.IsOnCurve(b) {
		return nil, errors.New("keystore: public key point is not on the curve")
	}
	return &ecdsa.PublicKey{Curve: curve, B: b}, nil
}

// EncodeSignature serializes sig as a signature document.
func EncodeSignature(sig *ecdsa.Signature) ([]byte, error) {
	doc := signatureDoc{
		Version: Version,
		Kind:    KindSignature,
		R:       formatInt(sig.R),
		S:       formatInt(sig.S),
	}
	return yaml.Marshal(&doc)
}

// DecodeSignature parses a signature document. Range validation against a
// particular curve order is left to Verify, which knows the curve.
func DecodeSignature(data []byte) (*ecdsa.Signature, error) {
	var doc signatureDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "keystore: decode signature")
	}
	if err := checkHeader(doc.Version, doc.Kind, KindSignature); err != nil {
		return nil, err
	}

	r, err := parseInt(doc.R)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: signature r")
	}
	s, err := parseInt(doc.S)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: signature s")
	}
	return &ecdsa.Signature{R: r, S: s}, nil
}

// SavePrivateKey writes priv to path with owner-only permissions.
func SavePrivateKey(path string, priv *ecdsa.PrivateKey) error {
	data, err := EncodePrivateKey(priv)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrapf(err, "keystore: write private key %s", path)
	}
	return nil
}

// LoadPrivateKey reads a private key from path.
func LoadPrivateKey(path string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "keystore: read private key %s", path)
	}
	return DecodePrivateKey(data)
}

// SavePublicKey writes pub to path.
func SavePublicKey(path string, pub *ecdsa.PublicKey) error {
	data, err := EncodePublicKey(pub)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "keystore: write public key %s", path)
	}
	return nil
}

// LoadPublicKey reads a public key from path.
func LoadPublicKey(path string) (*ecdsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "keystore: read public key %s", path)
	}
	return DecodePublicKey(data)
}

// SaveSignature writes sig to path.
func SaveSignature(path string, sig *ecdsa.Signature) error {
	data, err := EncodeSignature(sig)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "keystore: write signature %s", path)
	}
	return nil
}

// LoadSignature reads a signature from path.
func LoadSignature(path string) (*ecdsa.Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "keystore: read signature %s", path)
	}
	return DecodeSignature(data)
}

func encodeCurve(params *weierstrass.Params) curveDoc {
	return curveDoc{
		Name: params.Name,
		A:    formatInt(params.A),
		B:    formatInt(params.B),
		P:    formatInt(params.P),
		N:    formatInt(params.N),
		Gx:   formatInt(params.Gx),
		Gy:   formatInt(params.Gy),
	}
}

func decodeCurve(doc curveDoc) (*weierstrass.Curve, error) {
	params := &weierstrass.Params{Name: doc.Name}
	for _, field := range []struct {
		name string
		src  string
		dst  **big.Int
	}{
		{"a", doc.A, &params.A},
		{"b", doc.B, &params.B},
		{"p", doc.P, &params.P},
		{"n", doc.N, &params.N},
		{"gx", doc.Gx, &params.Gx},
		{"gy", doc.Gy, &params.Gy},
	} {
		v, err := parseInt(field.src)
		if err != nil {
			return nil, errors.Wrapf(err, "keystore: curve parameter %q", field.name)
		}
		*field.dst = v
	}

	curve, err := weierstrass.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "keystore: stored curve parameters")
	}
	return curve, nil
}

func checkHeader(version int, kind, wantKind string) error {
	if version != Version {
		return errors.Errorf("keystore: unsupported document version %d", version)
	}
	if kind != wantKind {
		return errors.Errorf("keystore: document kind %q, want %q", kind, wantKind)
	}
	return nil
}

func parseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("missing value")
	}
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex integer %q", s)
	}
	return v, nil
}

func formatInt(v *big.Int) string {
	return "0x" + v.Text(16)
}
