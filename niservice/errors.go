// Copyright 2026 NIAEFEUP.
// This software is released under an MIT/X11 open source license.

package niservice

import "fmt"

// ErrMissingParameter is returned when a required request parameter
// was not supplied at all.  An empty value is not missing.
type ErrMissingParameter struct {
	Name string
}

func (err ErrMissingParameter) Error() string {
	return fmt.Sprintf("missing required query parameter %q", err.Name)
}
