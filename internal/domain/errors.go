package domain

import "fmt"

// DataLoadError reports a reference table that could not be loaded.
// It is fatal at startup.
type DataLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	msg := fmt.Sprintf("load reference data %q: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// UnknownStoreError reports a store id absent from the location table.
type UnknownStoreError struct {
	Store int
}

func (e *UnknownStoreError) Error() string {
	return fmt.Sprintf("store %d not found", e.Store)
}

// InvalidStoreFormatError reports a store input that is not an integer.
type InvalidStoreFormatError struct {
	Input string
	Err   error
}

func (e *InvalidStoreFormatError) Error() string {
	return fmt.Sprintf("store must be a whole number, got %q", e.Input)
}

func (e *InvalidStoreFormatError) Unwrap() error { return e.Err }
