package statblock

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorRead        ErrorKind = "read"
	ErrorDecode      ErrorKind = "decode"
	ErrorMissingName ErrorKind = "missing_name"
	ErrorEmpty       ErrorKind = "empty"
)

// LoadError describes a statblock file that could not be turned into
// statblocks. Index is the offending entry for ErrorMissingName and -1
// otherwise.
type LoadError struct {
	Kind  ErrorKind
	Path  string
	Index int
	Err   error
}

func (e *LoadError) Error() string {
	where := e.Path
	if where == "" {
		where = "<bytes>"
	}
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", where, e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Kind)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsKind reports whether err is a LoadError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == kind
}

func newLoadError(kind ErrorKind, path string, index int, err error) *LoadError {
	return &LoadError{Kind: kind, Path: path, Index: index, Err: err}
}
