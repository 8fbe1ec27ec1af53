package sensor

import (
	"github.com/algo-boyz/obscheck/pkg/tensor"
)

// ObservationSpec describes the shape of a sensor's output.
type ObservationSpec struct {
	Shape tensor.Shape
}

// Vector describes a flat observation of length values.
func Vector(length int) ObservationSpec {
	return ObservationSpec{Shape: tensor.NewShape(length)}
}

// Visual describes an image observation. The shape is stored channel first:
// (channels, height, width).
func Visual(height, width, channels int) ObservationSpec {
	return ObservationSpec{Shape: tensor.NewShape(channels, height, width)}
}

// Len returns the number of values a sensor with this spec writes.
func (s ObservationSpec) Len() int {
	return s.Shape.Len()
}
