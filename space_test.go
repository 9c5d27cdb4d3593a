package algodiff_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algodiff "github.com/cwbudde/algo-diff"
	"github.com/cwbudde/algo-diff/gpu"
)

func TestMain(m *testing.M) {
	gpu.RegisterMockBackend()
	os.Exit(m.Run())
}

func TestNewRnInvalidSize(t *testing.T) {
	_, err := algodiff.NewRn(0)
	require.ErrorIs(t, err, algodiff.ErrInvalidSize)

	_, err = algodiff.NewRn(-3)
	require.ErrorIs(t, err, algodiff.ErrInvalidSize)
}

func TestRnElementConstruction(t *testing.T) {
	rn, err := algodiff.NewRn(6)
	require.NoError(t, err)
	assert.Equal(t, 6, rn.Size())

	v, err := rn.Element([]float64{1, 2, 5, 3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 6, v.Len())
	assert.Same(t, rn, v.Space())
	assert.Equal(t, 6, v.Data().Len())

	values, err := v.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 5, 3, 2, 1}, values)

	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, x)

	_, err = v.At(6)
	require.ErrorIs(t, err, algodiff.ErrIndexOutOfRange)

	_, err = rn.Element([]float64{1, 2})
	require.ErrorIs(t, err, algodiff.ErrLengthMismatch)
}

func TestRnZeroElement(t *testing.T) {
	rn, err := algodiff.NewRn(4)
	require.NoError(t, err)

	e, err := rn.NewElement()
	require.NoError(t, err)
	values, err := e.(*algodiff.Vector).Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, values)
}

func TestVectorAllClose(t *testing.T) {
	rn, err := algodiff.NewRn(3)
	require.NoError(t, err)

	a, err := rn.Element([]float64{1, 2, 3})
	require.NoError(t, err)
	b, err := rn.Element([]float64{1, 2, 3.0000001})
	require.NoError(t, err)

	ok, err := a.AllClose(b, 1e-6)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.AllClose(b, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductSpace(t *testing.T) {
	rn, err := algodiff.NewRn(4)
	require.NoError(t, err)

	p, err := algodiff.Product(rn, rn)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Arity())
	assert.Equal(t, 8, p.Size())

	f, err := p.Factor(1)
	require.NoError(t, err)
	assert.Same(t, algodiff.Space(rn), f)
	_, err = p.Factor(2)
	require.ErrorIs(t, err, algodiff.ErrIndexOutOfRange)

	tup, err := p.NewTuple()
	require.NoError(t, err)
	assert.Equal(t, 2, tup.Len())
	for i := 0; i < 2; i++ {
		part, err := tup.Vector(i)
		require.NoError(t, err)
		assert.Equal(t, 4, part.Len())
	}
	_, err = tup.At(2)
	require.ErrorIs(t, err, algodiff.ErrIndexOutOfRange)
}

func TestProductEmpty(t *testing.T) {
	_, err := algodiff.Product()
	require.ErrorIs(t, err, algodiff.ErrEmptyProduct)
}

func TestSameSpace(t *testing.T) {
	a, err := algodiff.NewRn(4)
	require.NoError(t, err)
	b, err := algodiff.NewRn(4)
	require.NoError(t, err)

	assert.True(t, algodiff.SameSpace(a, a))
	// Distinct Rn instances are distinct spaces even at equal size.
	assert.False(t, algodiff.SameSpace(a, b))

	pa, err := algodiff.Product(a, a)
	require.NoError(t, err)
	pb, err := algodiff.Product(a, a)
	require.NoError(t, err)
	assert.True(t, algodiff.SameSpace(pa, pb))

	pc, err := algodiff.Product(a, b)
	require.NoError(t, err)
	assert.False(t, algodiff.SameSpace(pa, pc))
	assert.False(t, algodiff.SameSpace(pa, a))
}

func TestElementwiseHelpers(t *testing.T) {
	rn, err := algodiff.NewRn(3)
	require.NoError(t, err)

	a, err := rn.Element([]float64{1, 2, 3})
	require.NoError(t, err)
	b, err := rn.Element([]float64{10, 20, 30})
	require.NoError(t, err)

	require.NoError(t, algodiff.Add(a, b))
	values, err := a.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, values)

	require.NoError(t, algodiff.Scale(a, -1))
	values, err = a.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{-11, -22, -33}, values)

	require.NoError(t, algodiff.Copy(a, b))
	values, err = a.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, values)

	dot, err := algodiff.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 100.0+400+900, dot)

	other, err := algodiff.NewRn(3)
	require.NoError(t, err)
	c, err := other.Element([]float64{1, 1, 1})
	require.NoError(t, err)
	require.ErrorIs(t, algodiff.Add(a, c), algodiff.ErrElementMismatch)
}
