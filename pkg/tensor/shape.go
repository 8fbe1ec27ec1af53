package tensor

import (
	"errors"
	"fmt"

	onnx "github.com/yalue/onnxruntime_go"
)

var ErrInvalidShape = errors.New("invalid shape")

// Shape is the dimension sizes of a row-major tensor, e.g. [3, 84, 84].
type Shape []int

func NewShape(dims ...int) Shape {
	return append(Shape(nil), dims...)
}

func (s Shape) ortShape() onnx.Shape {
	dims := make(onnx.Shape, len(s))
	for i, d := range s {
		dims[i] = int64(d)
	}
	return dims
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Len returns the total number of elements. Empty shapes and shapes with a
// non-positive dimension hold no elements.
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	for _, d := range s {
		if d <= 0 {
			return 0
		}
	}
	return int(s.ortShape().FlattenedSize())
}

// Dim returns the size of an axis. Negative axes count from the end, so
// Dim(-1) is the last (fastest varying) dimension.
func (s Shape) Dim(axis int) int {
	return s[s.axis(axis)]
}

func (s Shape) axis(axis int) int {
	i := axis
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		panic(fmt.Sprintf("tensor: axis %d out of range for rank %d", axis, len(s)))
	}
	return i
}

// Strides returns the row-major element stride of each axis; the last axis
// has stride 1.
func (s Shape) Strides() []int {
	if len(s) == 0 {
		return nil
	}
	strides := make([]int, len(s))
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// RavelIndex maps coordinates to a flat offset. It panics if the number of
// coordinates differs from the rank.
func (s Shape) RavelIndex(coords ...int) int {
	if len(coords) != len(s) {
		panic(fmt.Sprintf("tensor: %d coordinates for rank %d shape %v", len(coords), len(s), []int(s)))
	}
	var index int
	for i, stride := range s.Strides() {
		index += coords[i] * stride
	}
	return index
}

// Validate reports whether the shape is non-empty with positive dimensions.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: no dimensions", ErrInvalidShape)
	}
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("%w %v: dimension %d is %d", ErrInvalidShape, []int(s), i, d)
		}
	}
	if err := s.ortShape().Validate(); err != nil {
		return fmt.Errorf("%w %v: %w", ErrInvalidShape, []int(s), err)
	}
	return nil
}

func (s Shape) String() string {
	return s.ortShape().String()
}
