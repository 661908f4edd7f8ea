package weierstrass

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toyParams is the small curve y² = x³ + 2x + 2 over F_17, whose subgroup
// generated by (5, 1) has prime order 19. Small enough to check the whole
// group by hand.
func toyParams() *Params {
	return &Params{
		Name: "toy-p17",
		A:    big.NewInt(2),
		B:    big.NewInt(2),
		P:    big.NewInt(17),
		N:    big.NewInt(19),
		Gx:   big.NewInt(5),
		Gy:   big.NewInt(1),
	}
}

func TestNew(t *testing.T) {
	t.Run("secp256k1", func(t *testing.T) {
		c, err := New(Secp256k1())
		require.NoError(t, err)
		assert.True(t, c.IsOnCurve(c.Generator()))
	})

	t.Run("toy curve", func(t *testing.T) {
		_, err := New(toyParams())
		require.NoError(t, err)
	})

	t.Run("singular curve rejected", func(t *testing.T) {
		params := toyParams()
		params.A = big.NewInt(0)
		params.B = big.NewInt(0)
		_, err := New(params)
		assert.ErrorIs(t, err, ErrSingularCurve)
	})

	t.Run("generator off curve rejected", func(t *testing.T) {
		params := toyParams()
		params.Gy = big.NewInt(2)
		_, err := New(params)
		assert.ErrorIs(t, err, ErrGeneratorOffCurve)
	})
}

func TestGroupLawToyCurve(t *testing.T) {
	c, err := New(toyParams())
	require.NoError(t, err)
	g := c.Generator()

	// Hand-checked multiples of G on the toy curve.
	wantMultiples := map[int64]Point{
		1:  NewPoint(big.NewInt(5), big.NewInt(1)),
		2:  NewPoint(big.NewInt(6), big.NewInt(3)),
		3:  NewPoint(big.NewInt(10), big.NewInt(6)),
		9:  NewPoint(big.NewInt(7), big.NewInt(6)),
		18: NewPoint(big.NewInt(5), big.NewInt(16)),
	}
	for n, want := range wantMultiples {
		got, err := c.ScalarMult(big.NewInt(n), g)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "%d*G: want %s, got %s", n, want, got)
		assert.True(t, c.IsOnCurve(got))
	}

	t.Run("order times G is infinity", func(t *testing.T) {
		p, err := c.ScalarMult(big.NewInt(19), g)
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})

	t.Run("walking the whole subgroup", func(t *testing.T) {
		// Repeated addition of G must agree with scalar multiplication
		// for every element of the subgroup, infinity included.
		acc := Infinity()
		for n := int64(1); n <= 20; n++ {
			var err error
			acc, err = c.Add(acc, g)
			require.NoError(t, err)

			want, err := c.ScalarMult(big.NewInt(n%19), g)
			require.NoError(t, err)
			assert.True(t, want.Equal(acc), "n=%d: want %s, got %s", n, want, acc)
		}
	})
}

func TestIdentityAndInverse(t *testing.T) {
	c, err := New(toyParams())
	require.NoError(t, err)
	g := c.Generator()

	t.Run("infinity is the additive identity", func(t *testing.T) {
		p, err := c.Add(g, Infinity())
		require.NoError(t, err)
		assert.True(t, g.Equal(p))

		p, err = c.Add(Infinity(), g)
		require.NoError(t, err)
		assert.True(t, g.Equal(p))

		p, err = c.Add(Infinity(), Infinity())
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})

	t.Run("adding the inverse yields infinity", func(t *testing.T) {
		p, err := c.Add(g, c.Neg(g))
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})

	t.Run("doubling infinity", func(t *testing.T) {
		p, err := c.Double(Infinity())
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})

	t.Run("zero scalar", func(t *testing.T) {
		p, err := c.ScalarMult(big.NewInt(0), g)
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})

	t.Run("scalar multiple of infinity", func(t *testing.T) {
		p, err := c.ScalarMult(big.NewInt(5), Infinity())
		require.NoError(t, err)
		assert.True(t, p.IsInfinity())
	})

	t.Run("negative scalar rejected", func(t *testing.T) {
		_, err := c.ScalarMult(big.NewInt(-1), g)
		assert.ErrorIs(t, err, ErrNegativeScalar)
	})
}

func TestScalarMultDistributes(t *testing.T) {
	c, err := New(Secp256k1())
	require.NoError(t, err)
	g := c.Generator()

	cases := []struct {
		n1, n2 int64
	}{
		{1, 2},
		{2, 3},
		{7, 100},
		{12345, 67890},
		{1, 0xffffffff},
	}

	for _, tc := range cases {
		p1, err := c.ScalarMult(big.NewInt(tc.n1), g)
		require.NoError(t, err)
		p2, err := c.ScalarMult(big.NewInt(tc.n2), g)
		require.NoError(t, err)

		sum, err := c.Add(p1, p2)
		require.NoError(t, err)

		want, err := c.ScalarMult(big.NewInt(tc.n1+tc.n2), g)
		require.NoError(t, err)
		assert.True(t, want.Equal(sum), "(%d+%d)*G", tc.n1, tc.n2)

		// multiply(2n, G) == double(multiply(n, G))
		doubled, err := c.Double(p1)
		require.NoError(t, err)
		want2, err := c.ScalarMult(big.NewInt(2*tc.n1), g)
		require.NoError(t, err)
		assert.True(t, want2.Equal(doubled), "2*%d*G", tc.n1)
	}
}

// TestAgainstSecp256k1Reference checks the affine arithmetic against the
// hardened decred implementation of the same curve.
func TestAgainstSecp256k1Reference(t *testing.T) {
	c, err := New(Secp256k1())
	require.NoError(t, err)
	g := c.Generator()
	ref := secp256k1.S256()

	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(0xdeadbeef),
		new(big.Int).Sub(c.Params().N, big.NewInt(1)),
		mustHex("1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"),
	}

	for _, k := range scalars {
		got, err := c.ScalarMult(k, g)
		require.NoError(t, err)

		wantX, wantY := ref.ScalarBaseMult(k.Bytes())
		if got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
			t.Fatalf("ScalarMult(%s, G) disagrees with reference:\n%s", k.Text(16), spew.Sdump(got))
		}
	}

	t.Run("point addition", func(t *testing.T) {
		p1, err := c.ScalarMult(big.NewInt(5), g)
		require.NoError(t, err)
		p2, err := c.ScalarMult(big.NewInt(11), g)
		require.NoError(t, err)

		sum, err := c.Add(p1, p2)
		require.NoError(t, err)

		wantX, wantY := ref.Add(p1.X, p1.Y, p2.X, p2.Y)
		assert.Zero(t, sum.X.Cmp(wantX))
		assert.Zero(t, sum.Y.Cmp(wantY))
	})
}
