// Package errors provides coded, actionable errors for the primitives
// runtime and its CLI.
//
// Each code maps to a registered template with a short message, a fix hint
// and a documentation link:
//
//	E201  composition   asChild expects exactly one element child
//	E202  host          no host document is available
//	E203  runtime       a component or effect panicked
//	E204  validation    unknown text direction
//	E205  runtime       tree did not settle
//	E301  cli           unknown demo
//	E302  config        invalid flag value
//	E303  config        config file not found
//	E304  config        invalid config file
//	E305  config        missing AWS credentials
//
// Errors keep the sentinel they describe reachable through errors.Is, so
// callers can match either the code or the package-level sentinel:
//
//	err := errors.New("E201").
//	    Wrap(slot.ErrContractViolation).
//	    WithDetail("got 2 children")
//
//	fmt.Fprint(os.Stderr, err.Format())
package errors
