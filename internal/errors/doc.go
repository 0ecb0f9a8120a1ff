// Package errors provides error handling conventions for the gitstory CLI.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors so
// callers need a single import, defines sentinel errors for common failure
// conditions, and provides [ExitError], which carries the process exit code
// from a command back to the dispatch boundary in main.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// Commands never call os.Exit. They return an [ExitError] and the root
// command translates it into a status code:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    return exitErr.Code
//	}
//
// An ExitError with Reported set has already been shown to the user (for
// example by the output formatter) and must not be printed again.
package errors
