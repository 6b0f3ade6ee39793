package framework

import "strings"

// Errors collects the errors of parts running side by side,
// like the Runnables of a Runner or the links of a hub.
type Errors []error

// Add appends err unless it's nil.
func (e *Errors) Add(err error) {
	if err != nil {
		*e = append(*e, err)
	}
}

// Err is nil when nothing failed, the only error when one
// failed, and e itself otherwise.
func (e Errors) Err() error {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return e[0]
	}
	return e
}

// Error implements error.
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for n, err := range e {
		msgs[n] = err.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}
