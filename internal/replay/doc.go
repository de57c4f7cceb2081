// Package replay decodes recorded loader diagnostic traces and drives
// them through a diag.Router.
//
// A trace is JSON lines, one operation per line: diagnostic messages on
// either dispatch path plus the annotation operations (object naming,
// label regions, session teardown). Replaying a trace against configured
// sinks reproduces exactly what the loader would have emitted live.
package replay
