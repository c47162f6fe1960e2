package dqfile

import (
	"errors"
	"fmt"
)

// ErrPageCount is returned when a section produces a different number of
// pages than it declares.
var ErrPageCount = errors.New("dqfile: section page count mismatch")

// BuildError reports the section being built, or the assembly step, when
// generation failed.
type BuildError struct {
	Section string // section name, or "serialize" and "stamp" for assembly steps
	Err     error  // underlying error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dqfile.%s: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("dqfile.%s: unknown error", e.Section)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// newBuildError creates a BuildError for the named section.
func newBuildError(section string, err error) *BuildError {
	return &BuildError{Section: section, Err: err}
}
