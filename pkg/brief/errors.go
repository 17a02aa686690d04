package brief

import "fmt"

// OracleError is any failure of the AI extraction path. It is recovered by
// falling back to the heuristic parser and surfaced only as a warning.
type OracleError struct {
	Reason string
	Err    error
}

func (e *OracleError) Error() string {
	if e.Err == nil {
		return "oracle: " + e.Reason
	}
	return fmt.Sprintf("oracle: %s: %v", e.Reason, e.Err)
}

func (e *OracleError) Unwrap() error {
	return e.Err
}

func oracleErr(reason string, err error) error {
	return &OracleError{Reason: reason, Err: err}
}
