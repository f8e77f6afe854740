package phasor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a non-finite value or a non-positive window.
	ErrInvalidParameter = errors.New("phasor: invalid parameter")

	// ErrIndexOutOfRange indicates a grid index outside [0, GridSize).
	ErrIndexOutOfRange = errors.New("phasor: index out of range")
)

// ParamError names the parameter that was rejected.
type ParamError struct {
	Name  string
	Value float64
	Cause string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s = %v (%s)", ErrInvalidParameter, e.Name, e.Value, e.Cause)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func checkFinite(name string, v float64) error {
	if isFinite(v) {
		return nil
	}
	return &ParamError{Name: name, Value: v, Cause: "must be finite"}
}

func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return &ParamError{Name: name, Value: v, Cause: "must be > 0"}
	}
	return nil
}

func checkIndex(idx int) error {
	if idx < 0 || idx >= GridSize {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, GridSize)
	}
	return nil
}
