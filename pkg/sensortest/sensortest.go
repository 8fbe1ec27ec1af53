// Package sensortest provides sensors and assertions for testing code that
// consumes sensor observations.
package sensortest

import (
	"fmt"

	"github.com/algo-boyz/obscheck/pkg/compare"
	"github.com/algo-boyz/obscheck/pkg/fixture"
	"github.com/algo-boyz/obscheck/pkg/sensor"
	"github.com/stretchr/testify/require"
)

var _ sensor.Sensor = (*Replay)(nil)

// Replay is a sensor that writes recorded values unchanged.
type Replay struct {
	SensorName string
	Spec       sensor.ObservationSpec
	Values     []float32
}

// NewReplay replays a fixture with the fixture's shape as observation spec.
func NewReplay(name string, f fixture.Fixture) *Replay {
	return &Replay{
		SensorName: name,
		Spec:       sensor.ObservationSpec{Shape: f.Shape},
		Values:     f.Values,
	}
}

func (r *Replay) Name() string {
	return r.SensorName
}

func (r *Replay) ObservationSpec() sensor.ObservationSpec {
	return r.Spec
}

func (r *Replay) Write(w sensor.Writer) (int, error) {
	if n := r.Spec.Len(); n != len(r.Values) {
		return 0, fmt.Errorf("replay %s: %d recorded values for spec of %d", r.SensorName, len(r.Values), n)
	}
	w.AddList(r.Values, 0)
	return len(r.Values), nil
}

// RequireObservation fails the test unless s writes exactly expected.
func RequireObservation(t require.TestingT, s sensor.Sensor, expected []float32, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.NoError(t, compare.Observation(s, expected), msgAndArgs...)
}

// RequireObservation3D fails the test unless s writes exactly expected,
// indexed [channel][height][width].
func RequireObservation3D(t require.TestingT, s sensor.Sensor, expected [][][]float32, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.NoError(t, compare.Observation3D(s, expected), msgAndArgs...)
}
