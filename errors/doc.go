/*
Package errors implements the error taxonomy used across the ledger.

Reuse the root errors declared in this package whenever possible. If an
extension needs its own category, use Register(code, description) during
program startup. Each root error carries a unique code so that a client can
distinguish failure kinds programmatically.

Create errors at the point of failure with ErrXyz.New("...") or
errors.Wrap(err, "...") so that a stack trace is attached. Only the
innermost wrap records the stack.

Test for a kind with ErrXyz.Is(err). Use %+v to print the stack trace.
*/
package errors
