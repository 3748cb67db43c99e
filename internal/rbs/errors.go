package rbs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks bad caller data. The recompute is aborted and the
	// previous snapshot is kept.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConfiguration marks a defective scoring table. Only returned while
	// building an engine.
	ErrConfiguration = errors.New("configuration defect")
	// ErrLookupMiss means a classified key had no matrix cell, i.e. the
	// classifiers and the matrix disagree.
	ErrLookupMiss = errors.New("matrix lookup miss")
)

type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

type ConfigurationError struct {
	Table  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration defect: %s: %s", e.Table, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func misconfigured(table, format string, args ...any) error {
	return &ConfigurationError{Table: table, Reason: fmt.Sprintf(format, args...)}
}

type LookupMissError struct {
	Key string
}

func (e *LookupMissError) Error() string {
	return fmt.Sprintf("matrix lookup miss: no cell for key %q", e.Key)
}

func (e *LookupMissError) Is(target error) bool { return target == ErrLookupMiss }
