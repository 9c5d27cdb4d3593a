package operator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algodiff "github.com/cwbudde/algo-diff"
	"github.com/cwbudde/algo-diff/discr"
	"github.com/cwbudde/algo-diff/operator"
)

// uniform2D discretizes L2([0,1]²) onto a rows×cols grid.
func uniform2D(t *testing.T, rows, cols int) *discr.Discretization {
	t.Helper()

	rect, err := discr.NewRectangle([2]float64{0, 0}, [2]float64{1, 1})
	require.NoError(t, err)
	rn, err := algodiff.NewRn(rows * cols)
	require.NoError(t, err)
	d, err := discr.Uniform(discr.NewL2(rect), rn, rows, cols)
	require.NoError(t, err)
	return d
}

func gridOperator(t *testing.T, d *discr.Discretization) *operator.ForwardDiff2D {
	t.Helper()

	shape := d.Shape()
	grad, err := operator.NewForwardDiff2D(d, shape[0], shape[1])
	require.NoError(t, err)
	return grad
}

// laplacian builds -grad.Adjoint()∘grad.
func laplacian(t *testing.T, grad *operator.ForwardDiff2D) operator.Operator {
	t.Helper()

	ata, err := operator.Compose(grad.Adjoint(), grad)
	require.NoError(t, err)
	return operator.Scale(ata, -1)
}

func tupleComponent(t *testing.T, e algodiff.Element, i int) []float64 {
	t.Helper()

	tup, ok := e.(*algodiff.Tuple)
	require.True(t, ok)
	part, err := tup.Vector(i)
	require.NoError(t, err)
	values, err := part.Values()
	require.NoError(t, err)
	return values
}

func TestForwardDiff2DSquare(t *testing.T) {
	d := uniform2D(t, 5, 5)
	fun, err := d.ElementGrid([][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	grad := gridOperator(t, d)
	derivative, err := operator.Call(grad, fun)
	require.NoError(t, err)

	assert.Equal(t, []float64{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 1, -1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}, tupleComponent(t, derivative, 0))

	assert.Equal(t, []float64{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, -1, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}, tupleComponent(t, derivative, 1))

	// -gradᵀ(grad(x)) is the periodic 5-point laplacian.
	lap, err := operator.Call(laplacian(t, grad), fun)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 1, -4, 1, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	}, elementValues(t, lap))
}

func TestForwardDiff2DRectangle(t *testing.T) {
	d := uniform2D(t, 5, 7)
	fun, err := d.ElementGrid([][]float64{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	grad := gridOperator(t, d)
	derivative, err := operator.Call(grad, fun)
	require.NoError(t, err)

	assert.Equal(t, []float64{
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 1, -1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	}, tupleComponent(t, derivative, 0))

	assert.Equal(t, []float64{
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0,
		0, 0, -1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	}, tupleComponent(t, derivative, 1))

	lap, err := operator.Call(laplacian(t, grad), fun)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		0, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0,
		0, 1, -4, 1, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0,
	}, elementValues(t, lap))
}

func TestForwardDiff2DAdjointPairing(t *testing.T) {
	d := uniform2D(t, 4, 6)
	grad := gridOperator(t, d)

	adj := grad.Adjoint()
	assert.True(t, algodiff.SameSpace(adj.Domain(), grad.Range()))
	assert.True(t, algodiff.SameSpace(adj.Range(), grad.Domain()))

	restored := adj.Adjoint()
	assert.True(t, algodiff.SameSpace(restored.Domain(), grad.Domain()))
	assert.True(t, algodiff.SameSpace(restored.Range(), grad.Range()))

	rnd := rand.New(rand.NewSource(5))
	x := randomElement(t, d, rnd)
	want, err := operator.Call(grad, x)
	require.NoError(t, err)
	got, err := operator.Call(restored, x)
	require.NoError(t, err)
	assert.Equal(t, tupleComponent(t, want, 0), tupleComponent(t, got, 0))
	assert.Equal(t, tupleComponent(t, want, 1), tupleComponent(t, got, 1))
}

func TestForwardDiff2DAdjointIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(29))
	d := uniform2D(t, 6, 9)
	grad := gridOperator(t, d)

	x := randomElement(t, d, rnd)
	y := randomElement(t, grad.Range(), rnd)

	dx, err := operator.Call(grad, x)
	require.NoError(t, err)
	ay, err := operator.Call(grad.Adjoint(), y)
	require.NoError(t, err)

	lhs, err := algodiff.Dot(dx, y)
	require.NoError(t, err)
	rhs, err := algodiff.Dot(x, ay)
	require.NoError(t, err)
	assert.InDelta(t, lhs, rhs, 1e-12)
}

func TestForwardDiff2DShapeMismatch(t *testing.T) {
	d := uniform2D(t, 5, 5)

	_, err := operator.NewForwardDiff2D(d, 4, 2)
	require.ErrorIs(t, err, operator.ErrShapeMismatch)

	_, err = operator.NewForwardDiff2D(d, 0, 25)
	require.ErrorIs(t, err, operator.ErrShapeMismatch)

	_, err = operator.NewForwardDiff2DAdjoint(d, 3, 3)
	require.ErrorIs(t, err, operator.ErrShapeMismatch)
}

func TestForwardDiff2DAdjointConstructor(t *testing.T) {
	d := uniform2D(t, 5, 5)
	adj, err := operator.NewForwardDiff2DAdjoint(d, 5, 5)
	require.NoError(t, err)

	grad := gridOperator(t, d)
	assert.True(t, algodiff.SameSpace(adj.Domain(), grad.Range()))
	assert.True(t, algodiff.SameSpace(adj.Range(), grad.Domain()))

	rnd := rand.New(rand.NewSource(13))
	y := randomElement(t, grad.Range(), rnd)
	want, err := operator.Call(grad.Adjoint(), y)
	require.NoError(t, err)
	got, err := operator.Call(adj, y)
	require.NoError(t, err)
	assert.Equal(t, elementValues(t, want), elementValues(t, got))
}

func TestForwardDiff2DSpaceMismatch(t *testing.T) {
	d := uniform2D(t, 5, 5)
	grad := gridOperator(t, d)

	x, err := d.NewElement()
	require.NoError(t, err)
	// A plain domain element is not a valid range tuple.
	require.ErrorIs(t, grad.Apply(x, x), operator.ErrSpaceMismatch)

	other := uniform2D(t, 5, 5)
	foreign, err := other.NewElement()
	require.NoError(t, err)
	out, err := grad.Range().NewElement()
	require.NoError(t, err)
	require.ErrorIs(t, grad.Apply(foreign, out), operator.ErrSpaceMismatch)
}
