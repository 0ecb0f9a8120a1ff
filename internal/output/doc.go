// Package output renders command messages for people or for programs.
//
// A [Formatter] is created once per invocation with a fixed mode. In text
// mode every call prints one or more decorated lines: a glyph chosen by the
// symbols package, ANSI colour when the stream supports it, and indented
// detail lines. In JSON mode every call writes exactly one JSON object
// followed by a newline, so a calling process can consume the stream as
// newline-delimited JSON:
//
//	{"level":"info","message":"Planning STORY-0001.2.4..."}
//	{"status":"success","message":"Done","data":{"count":3}}
//	{"status":"error","message":"Boom","details":null,"exit_code":1}
//	{"type":"table","headers":["id"],"rows":[["A"]]}
//
// [Formatter.Error] does not terminate the process. It renders the failure
// and returns an *errors.ExitError carrying the exit code; the command
// dispatcher decides when to exit.
//
// Write failures are sticky: after the first failed write the remaining
// calls are no-ops and [Formatter.Err] reports the failure.
package output
