package weierstrass

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// paramsDoc is the on-disk form of Params. All integers are hex encoded
// with an optional 0x prefix.
type paramsDoc struct {
	Version int    `yaml:"version"`
	Name    string `yaml:"name"`
	A       string `yaml:"a"`
	B       string `yaml:"b"`
	P       string `yaml:"p"`
	N       string `yaml:"n"`
	Gx      string `yaml:"gx"`
	Gy      string `yaml:"gy"`
}

const paramsDocVersion = 1

// ParseParams decodes curve parameters from a YAML document. The document
// must carry version 1 and hex-encoded values for a, b, p, n, gx and gy.
// The returned parameters are not validated against the non-singularity
// invariant; that happens in New.
func ParseParams(data []byte) (*Params, error) {
	var doc paramsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("weierstrass: decode curve parameters: %w", err)
	}
	if doc.Version != paramsDocVersion {
		return nil, fmt.Errorf("weierstrass: unsupported curve parameter version %d", doc.Version)
	}

	params := &Params{Name: doc.Name}
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
		v, err := parseHexInt(field.src)
		if err != nil {
			return nil, fmt.Errorf("weierstrass: curve parameter %q: %w", field.name, err)
		}
		*field.dst = v
	}
	return params, nil
}

// LoadParams reads curve parameters from a YAML file.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("weierstrass: read curve parameters: %w", err)
	}
	return ParseParams(data)
}

// MarshalParams encodes params as a version-tagged YAML document.
func MarshalParams(params *Params) ([]byte, error) {
	doc := paramsDoc{
		Version: paramsDocVersion,
		Name:    params.Name,
		A:       formatHexInt(params.A),
		B:       formatHexInt(params.B),
		P:       formatHexInt(params.P),
		N:       formatHexInt(params.N),
		Gx:      formatHexInt(params.Gx),
		Gy:      formatHexInt(params.Gy),
	}
	return yaml.Marshal(&doc)
}

func parseHexInt(s string) (*big.Int, error) {
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

func formatHexInt(v *big.Int) string {
	return "0x" + v.Text(16)
}
