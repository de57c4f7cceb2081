package diag

import "sync/atomic"

// SinkKind discriminates which dispatch path a sink participates in.
type SinkKind int

const (
	// KindGeneric sinks receive loader-taxonomy messages via LogMessage.
	KindGeneric SinkKind = iota
	// KindDebugUtils sinks receive extension messages via
	// LogDebugUtilsMessage and nothing else.
	KindDebugUtils
)

// Sink receives diagnostic messages whose severity and type bits are fully
// covered by its masks. Implementations must be safe for concurrent calls;
// the router invokes sinks from whatever thread logged the message.
//
// Both Log methods return true to ask the caller to terminate the process.
// The request is advisory: the router aggregates it across sinks and
// surfaces it, nothing more. A sink that does not serve a path returns
// false from it; the kind filter keeps such calls from happening anyway.
type Sink interface {
	ID() uint64
	Kind() SinkKind
	SeverityMask() Severity
	TypeMask() Type

	LogMessage(severity Severity, types Type, data *CallbackData) bool
	LogDebugUtilsMessage(severity DebugSeverity, types DebugType, data *CallbackData) bool
}

var sinkIDs atomic.Uint64

// NextSinkID returns a process-unique identifier for a new sink. Sink
// constructors call it once and report the value from ID.
func NextSinkID() uint64 {
	return sinkIDs.Add(1)
}
