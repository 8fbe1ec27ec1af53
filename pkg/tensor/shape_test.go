package tensor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShapeLen(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{NewShape(), 0},
		{NewShape(5), 5},
		{NewShape(2, 3, 4), 24},
		{NewShape(2, 0, 4), 0},
		{NewShape(2, -1), 0},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, test.shape.Len(), "Len(%v)", []int(test.shape))
	}
}

func TestShapeDim(t *testing.T) {
	shape := NewShape(2, 3, 4)
	require.Equal(t, 2, shape.Dim(-3))
	require.Equal(t, 3, shape.Dim(-2))
	require.Equal(t, 4, shape.Dim(-1))
	require.Equal(t, 2, shape.Dim(0))
	require.Equal(t, 4, shape.Dim(2))
	require.Panics(t, func() { shape.Dim(3) })
	require.Panics(t, func() { shape.Dim(-4) })
}

func TestShapeStrides(t *testing.T) {
	require.Equal(t, []int{12, 4, 1}, NewShape(2, 3, 4).Strides())
	require.Nil(t, NewShape().Strides())
}

func TestRavelIndexFollowsStrides(t *testing.T) {
	shape := NewShape(3, 84, 84)
	strides := shape.Strides()
	require.Equal(t, 2*strides[0]+10*strides[1]+5*strides[2], shape.RavelIndex(2, 10, 5))
	require.Equal(t, shape.Len()-1, shape.RavelIndex(2, 83, 83))
}

func TestRavelIndex(t *testing.T) {
	shape := NewShape(2, 3, 4)
	strides := shape.Strides()
	seen := make(map[int]bool, shape.Len())
	for c := 0; c < shape.Dim(-3); c++ {
		for h := 0; h < shape.Dim(-2); h++ {
			for w := 0; w < shape.Dim(-1); w++ {
				index := shape.RavelIndex(c, h, w)
				require.Equal(t, c*strides[0]+h*strides[1]+w, index)
				require.False(t, seen[index], "index %d produced twice", index)
				seen[index] = true
			}
		}
	}
	require.Len(t, seen, shape.Len())
	require.Equal(t, 23, shape.RavelIndex(1, 2, 3))
	require.Panics(t, func() { shape.RavelIndex(0, 1) })
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, NewShape(1, 84, 84).Validate())
	require.ErrorIs(t, NewShape().Validate(), ErrInvalidShape)
	require.ErrorIs(t, NewShape(3, 0).Validate(), ErrInvalidShape)
	require.ErrorIs(t, NewShape(-2, -3).Validate(), ErrInvalidShape)
}
