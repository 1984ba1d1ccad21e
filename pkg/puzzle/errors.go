package puzzle

import "fmt"

// ValidationError reports a malformed-input violation: an unknown enum
// value, an out-of-bounds cart, a duplicate ordinal, a gate group without a
// matching switch, and so on. It is returned, never panicked — callers
// construct a Puzzle, call Validate or Build, and get an ordinary error
// back.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("puzzle: invalid %s: %s", e.Field, e.Msg)
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// InvariantError reports an internal invariant violation: a contradiction
// unreachable from any valid input, such as a permanent cell
// discovered to have changed track kind. Unlike ValidationError, this
// category is fatal. Simulator code panics with an *InvariantError as the
// panic value; pkg/sim.Step recovers it and returns it as an ordinary error,
// which pkg/search wraps and returns from Solve.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("puzzle: internal invariant violated: %s", e.Msg)
}

// PanicInvariant panics with an *InvariantError built from format/args. Call
// this, never a bare panic(...), for any internal contradiction detected in
// pkg/sim, pkg/gen, or pkg/cache.
func PanicInvariant(format string, args ...interface{}) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
