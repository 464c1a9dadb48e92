package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the sentinel wrapped by InvalidConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Configuration defines one interval workout.
type Configuration struct {
	WorkSeconds int
	RestSeconds int
	TotalSeries int
}

// DefaultConfiguration returns the stock workout: 8 series of 30s work and 15s rest.
func DefaultConfiguration() Configuration {
	return Configuration{
		WorkSeconds: 30,
		RestSeconds: 15,
		TotalSeries: 8,
	}
}

// InvalidConfigurationError reports the first field that violates its bound.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (err *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", err.Field, err.Reason)
}

func (err *InvalidConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Validate checks the configuration bounds.
func (config Configuration) Validate() error {
	if config.WorkSeconds < 1 {
		return &InvalidConfigurationError{Field: "work_seconds", Reason: "must be at least 1"}
	}
	if config.RestSeconds < 0 {
		return &InvalidConfigurationError{Field: "rest_seconds", Reason: "must not be negative"}
	}
	if config.TotalSeries < 1 {
		return &InvalidConfigurationError{Field: "total_series", Reason: "must be at least 1"}
	}
	return nil
}
