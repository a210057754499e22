// models/errors.go
package models

import "fmt"

// SourceFormatError means the raw sheet export could not be parsed as tabular
// data at all. It is fatal to the whole normalization pass; individual bad
// rows never produce it.
type SourceFormatError struct {
	Reason string
	Err    error
}

func (e *SourceFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sheet source format error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("sheet source format error: %s", e.Reason)
}

func (e *SourceFormatError) Unwrap() error {
	return e.Err
}
