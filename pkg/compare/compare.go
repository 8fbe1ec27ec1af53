// Package compare checks the observations a sensor writes against expected
// values. It is meant for unit tests, not production code.
package compare

import (
	"fmt"

	"github.com/algo-boyz/obscheck/pkg/sensor"
	"github.com/algo-boyz/obscheck/pkg/tensor"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/floats/scalar"
)

// Fill is written to every slot of the output buffer before the sensor
// writes, so untouched slots show up as mismatches.
const Fill float32 = -1337

type Config struct {
	// Tolerance is the absolute difference allowed between expected and
	// actual values. Zero means exact equality.
	Tolerance float64
	// AllMismatches keeps comparing after the first mismatch and returns
	// every mismatch combined.
	AllMismatches bool
	// NewWriter creates the writer bound to the output buffer.
	NewWriter func() sensor.Writer
}

func DefaultConfig() Config {
	return Config{
		NewWriter: func() sensor.Writer { return sensor.NewObservationWriter() },
	}
}

// Observation compares a sensor's flat observation against expected using
// DefaultConfig. It returns nil when every value matches.
func Observation(s sensor.Sensor, expected []float32) error {
	return DefaultConfig().Observation(s, expected)
}

// Observation3D compares a sensor's observation against expected, indexed
// [channel][height][width], using DefaultConfig.
func Observation3D(s sensor.Sensor, expected [][][]float32) error {
	return DefaultConfig().Observation3D(s, expected)
}

func (cfg Config) Observation(s sensor.Sensor, expected []float32) error {
	output, err := cfg.write(s, len(expected))
	if err != nil {
		return err
	}
	var mismatches error
	for i := range output {
		if cfg.equal(expected[i], output[i]) {
			continue
		}
		mismatch := &MismatchError{Position: []int{i}, Expected: expected[i], Actual: output[i]}
		if !cfg.AllMismatches {
			return mismatch
		}
		mismatches = multierr.Append(mismatches, mismatch)
	}
	return mismatches
}

func (cfg Config) Observation3D(s sensor.Sensor, expected [][][]float32) error {
	shape, err := cubeShape(expected)
	if err != nil {
		return err
	}
	output, err := cfg.write(s, shape.Len())
	if err != nil {
		return err
	}
	var mismatches error
	// height outer, channel inner; positions are reported as [h, w, c]
	for h := 0; h < shape.Dim(-2); h++ {
		for w := 0; w < shape.Dim(-1); w++ {
			for c := 0; c < shape.Dim(-3); c++ {
				actual := output[shape.RavelIndex(c, h, w)]
				if cfg.equal(expected[c][h][w], actual) {
					continue
				}
				mismatch := &MismatchError{Position: []int{h, w, c}, Expected: expected[c][h][w], Actual: actual}
				if !cfg.AllMismatches {
					return mismatch
				}
				mismatches = multierr.Append(mismatches, mismatch)
			}
		}
	}
	return mismatches
}

// write allocates a sentinel filled buffer of n values, binds a writer to it
// and lets the sensor write its observation.
func (cfg Config) write(s sensor.Sensor, n int) ([]float32, error) {
	output := make([]float32, n)
	for i := range output {
		output[i] = Fill
	}
	if n > 0 && output[0] != Fill {
		return nil, ErrBufferInit
	}
	newWriter := cfg.NewWriter
	if newWriter == nil {
		newWriter = DefaultConfig().NewWriter
	}
	writer := newWriter()
	writer.SetTarget(output, s.ObservationSpec(), 0)
	if n > 0 && output[0] != Fill {
		return nil, ErrWriterSideEffect
	}
	if err := writeObservation(s, writer); err != nil {
		return nil, err
	}
	return output, nil
}

// writeObservation runs the sensor's write, turning a panic (typically a
// write past the end of the buffer) into ErrSensorPanic.
func writeObservation(s sensor.Sensor, writer sensor.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sensor %s: %w: %v", s.Name(), ErrSensorPanic, r)
		}
	}()
	if _, err = s.Write(writer); err != nil {
		return fmt.Errorf("sensor %s: failed to write observation: %w", s.Name(), err)
	}
	return nil
}

func (cfg Config) equal(expected, actual float32) bool {
	if cfg.Tolerance == 0 {
		return expected == actual
	}
	return scalar.EqualWithinAbs(float64(expected), float64(actual), cfg.Tolerance)
}

func cubeShape(expected [][][]float32) (tensor.Shape, error) {
	channels := len(expected)
	if channels == 0 {
		return tensor.NewShape(0, 0, 0), nil
	}
	height := len(expected[0])
	width := 0
	if height > 0 {
		width = len(expected[0][0])
	}
	for c, plane := range expected {
		if len(plane) != height {
			return nil, fmt.Errorf("channel %d has %d rows, want %d: %w", c, len(plane), height, ErrRaggedExpected)
		}
		for h, row := range plane {
			if len(row) != width {
				return nil, fmt.Errorf("channel %d row %d has %d columns, want %d: %w", c, h, len(row), width, ErrRaggedExpected)
			}
		}
	}
	return tensor.NewShape(channels, height, width), nil
}
