package compare

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrBufferInit       = errors.New("Error setting output buffer.")
	ErrWriterSideEffect = errors.New("ObservationWriter.SetTarget modified a buffer it shouldn't have.")
	ErrMismatch         = errors.New("expected and actual observations differ")
	ErrRaggedExpected   = errors.New("expected observation is not a regular cube")
	ErrSensorPanic      = errors.New("sensor panicked while writing observation")
)

// MismatchError reports the first position where the written observation
// differs from the expected one. Position is {i} for flat observations and
// {h, w, c} for 3D ones.
type MismatchError struct {
	Position []int
	Expected float32
	Actual   float32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("Expected and actual differed in position %s. Expected: %v  Actual: %v ",
		e.position(), e.Expected, e.Actual)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

func (e *MismatchError) position() string {
	if len(e.Position) == 1 {
		return strconv.Itoa(e.Position[0])
	}
	parts := make([]string, len(e.Position))
	for i, p := range e.Position {
		parts[i] = strconv.Itoa(p)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
