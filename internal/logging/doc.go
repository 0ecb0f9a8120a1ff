// Package logging provides diagnostic logging for the gitstory CLI using slog.
//
// Diagnostics always go to stderr (or a log file) so that stdout carries
// only command output, which in --json mode must stay pure NDJSON.
//
// # Basic Usage
//
//	logger, closer, err := logging.Setup(logging.Options{
//		Level:  "debug",
//		Format: "text",
//		File:   "/tmp/gitstory.log",
//	})
//	if err != nil {
//		return err
//	}
//	defer closer.Close()
//	ctx = logging.NewContext(ctx, logger)
//
// Code further down the call chain retrieves it with [FromContext].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
