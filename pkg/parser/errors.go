package parser

import "fmt"

// SyntaxError is raised by a family parser when a line matches its lead-in
// marker but is otherwise malformed (spec §7 "ParseError"). The dispatcher
// never recovers from one itself; the linter kernel turns it into a fatal
// Problem for the offending line (spec §4.7 step 3).
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

func errf(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}
