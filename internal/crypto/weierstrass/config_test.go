package weierstrass

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsRoundTrip(t *testing.T) {
	params := Secp256k1()

	data, err := MarshalParams(params)
	require.NoError(t, err)

	decoded, err := ParseParams(data)
	require.NoError(t, err)

	assert.Equal(t, params.Name, decoded.Name)
	assert.Zero(t, params.A.Cmp(decoded.A))
	assert.Zero(t, params.B.Cmp(decoded.B))
	assert.Zero(t, params.P.Cmp(decoded.P))
	assert.Zero(t, params.N.Cmp(decoded.N))
	assert.Zero(t, params.Gx.Cmp(decoded.Gx))
	assert.Zero(t, params.Gy.Cmp(decoded.Gy))

	// The decoded parameters must still construct a valid group.
	_, err = New(decoded)
	require.NoError(t, err)
}

func TestParseParams(t *testing.T) {
	t.Run("explicit document", func(t *testing.T) {
		doc := `
version: 1
name: toy-p17
a: "0x2"
b: "0x2"
p: "0x11"
n: "0x13"
gx: "0x5"
gy: "0x1"
`
		params, err := ParseParams([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, "toy-p17", params.Name)
		assert.EqualValues(t, 17, params.P.Int64())
		assert.EqualValues(t, 19, params.N.Int64())

		_, err = New(params)
		require.NoError(t, err)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := ParseParams([]byte("version: 2\nname: x\n"))
		assert.ErrorContains(t, err, "unsupported curve parameter version")
	})

	t.Run("bad hex", func(t *testing.T) {
		doc := `
version: 1
name: bad
a: "xyz"
b: "0x2"
p: "0x11"
n: "0x13"
gx: "0x5"
gy: "0x1"
`
		_, err := ParseParams([]byte(doc))
		assert.ErrorContains(t, err, `curve parameter "a"`)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := ParseParams([]byte("version: 1\nname: empty\n"))
		assert.ErrorContains(t, err, "missing value")
	})

	t.Run("not yaml", func(t *testing.T) {
		_, err := ParseParams([]byte("{{{"))
		assert.Error(t, err)
	})
}

func TestLoadParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "curve.yaml")

	data, err := MarshalParams(Secp256k1())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	params, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, "secp256k1", params.Name)

	_, err = LoadParams(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
