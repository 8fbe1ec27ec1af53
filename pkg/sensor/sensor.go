// Package sensor defines the sensor and observation writer contracts.
package sensor

// Sensor produces observation data for an agent.
type Sensor interface {
	Name() string
	ObservationSpec() ObservationSpec
	// Write fills the writer's target and returns the number of values written.
	Write(w Writer) (int, error)
}

// Writer is the target a sensor writes its observation into.
type Writer interface {
	// SetTarget binds the writer to data starting at offset. It must not
	// modify data.
	SetTarget(data []float32, spec ObservationSpec, offset int)
	Set(index int, v float32)
	Set3D(h, w, c int, v float32)
	AddList(values []float32, writeOffset int)
}
