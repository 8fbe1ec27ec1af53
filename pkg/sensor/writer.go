package sensor

import (
	"github.com/algo-boyz/obscheck/pkg/tensor"
)

var _ Writer = (*ObservationWriter)(nil)

// ObservationWriter writes into a flat float32 buffer. Writes outside the
// bound buffer panic like any out of range slice access.
type ObservationWriter struct {
	data   []float32
	offset int
	shape  tensor.Shape
}

func NewObservationWriter() *ObservationWriter {
	return &ObservationWriter{}
}

func (w *ObservationWriter) SetTarget(data []float32, spec ObservationSpec, offset int) {
	w.data = data
	w.offset = offset
	w.shape = spec.Shape
}

func (w *ObservationWriter) Set(index int, v float32) {
	w.data[w.offset+index] = v
}

// Set3D writes the value at (h, w, c) of a channel-first (C, H, W) target.
func (w *ObservationWriter) Set3D(h, x, c int, v float32) {
	w.data[w.offset+w.shape.RavelIndex(c, h, x)] = v
}

func (w *ObservationWriter) AddList(values []float32, writeOffset int) {
	copy(w.data[w.offset+writeOffset:w.offset+writeOffset+len(values)], values)
}
