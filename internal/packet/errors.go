package packet

import "fmt"

// MalformedError reports a line that matched a packet keyword but could not
// be split into that packet's fields. It aborts the whole run.
type MalformedError struct {
	Kind   Kind
	LineNo int
	Raw    string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("line %d: malformed %s packet %q: %v", e.LineNo, e.Kind, e.Raw, e.Err)
	}
	return fmt.Sprintf("malformed %s packet %q: %v", e.Kind, e.Raw, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Unrecognized is a non-blank line that matched no packet keyword.
// These are collected and reported; they never stop the run.
type Unrecognized struct {
	LineNo int
	Raw    string
}

func (u Unrecognized) String() string {
	return fmt.Sprintf("line %d: %s", u.LineNo, u.Raw)
}
