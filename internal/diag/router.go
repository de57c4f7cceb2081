package diag

import (
	"os"
	"sync"
)

// DebugEnv is the environment variable consulted when the default router
// is first used. Recognized values: error, warn, info, all, verbose.
const DebugEnv = "BEACON_LOADER_DEBUG"

// Router fans diagnostic messages out to registered sinks. Registration
// order is dispatch order. All methods are safe for concurrent use; sinks
// are invoked outside the registry lock so a sink may add or remove sinks
// from inside a callback without deadlocking.
type Router struct {
	mu    sync.Mutex
	sinks []Sink
	notes *annotationStore
}

// NewRouter returns an empty router with no sinks registered.
func NewRouter() *Router {
	return &Router{notes: newAnnotationStore()}
}

var (
	defaultOnce   sync.Once
	defaultRouter *Router
)

// Default returns the process-wide router. The first call, from whichever
// thread wins, installs a stderr sink matching only errors and then
// decodes DebugEnv: a recognized verbosity adds a stdout sink covering
// the cumulative severity set, anything else adds nothing. Every caller
// observes the fully built router.
func Default() *Router {
	defaultOnce.Do(func() {
		defaultRouter = bootstrap(os.Getenv(DebugEnv))
	})
	return defaultRouter
}

func bootstrap(debug string) *Router {
	r := NewRouter()
	r.AddSink(NewConsoleSink(os.Stderr, SeverityError))
	if v, ok := ParseVerbosity(debug); ok {
		r.AddSink(NewConsoleSink(os.Stdout, v.Severities()))
	}
	return r
}

// AddSink appends the sink to the registry.
func (r *Router) AddSink(sink Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, sink)
}

// RemoveSink removes the sink with the given ID. Removing an unknown ID
// is a no-op.
func (r *Router) RemoveSink(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, sink := range r.sinks {
		if sink.ID() == id {
			r.sinks = append(r.sinks[:i], r.sinks[i+1:]...)
			return
		}
	}
}

func (r *Router) snapshot() []Sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Sink, len(r.sinks))
	copy(out, r.sinks)
	return out
}

// LogMessage routes a loader-taxonomy message to every generic sink whose
// masks cover it. Object names are resolved before dispatch; generic
// messages are not session-scoped, so no label stack is attached. All
// matching sinks run even after one requests termination; the return
// value is the OR of their requests and is advisory only.
func (r *Router) LogMessage(severity Severity, types Type, messageID, commandName, message string, objects []ObjectInfo) bool {
	data := &CallbackData{
		MessageID:   messageID,
		CommandName: commandName,
		Message:     message,
		Objects:     r.notes.resolveNames(objects),
	}

	terminate := false
	for _, sink := range r.snapshot() {
		if sink.Kind() != KindGeneric {
			continue
		}
		if sink.SeverityMask()&severity != severity || sink.TypeMask()&types != types {
			continue
		}
		terminate = sink.LogMessage(severity, types, data) || terminate
	}
	return terminate
}

// LogDebugUtilsMessage routes an extension message to every debug-utils
// sink whose masks cover the translated severity and type. The payload is
// augmented with resolved object names and the implicated session's label
// stack before dispatch. Ordering and aggregation rules match LogMessage.
func (r *Router) LogDebugUtilsMessage(severity DebugSeverity, types DebugType, data *CallbackData) bool {
	logSeverity := SeverityFromDebugUtils(severity)
	logTypes := TypeFromDebugUtils(types)
	augmented := r.notes.augment(data)

	terminate := false
	for _, sink := range r.snapshot() {
		if sink.Kind() != KindDebugUtils {
			continue
		}
		if sink.SeverityMask()&logSeverity != logSeverity || sink.TypeMask()&logTypes != logTypes {
			continue
		}
		terminate = sink.LogDebugUtilsMessage(severity, types, augmented) || terminate
	}
	return terminate
}

// AddObjectName binds a display name to (handle, objectType). Rebinding
// replaces the name; an empty name clears it.
func (r *Router) AddObjectName(handle uint64, objectType ObjectType, name string) {
	r.notes.addObjectName(handle, objectType, name)
}

// BeginLabelRegion opens a label region on the session's stack.
func (r *Router) BeginLabelRegion(session Session, label Label) {
	r.notes.beginLabelRegion(session, label)
}

// EndLabelRegion closes the innermost label region. No-op when none is
// open.
func (r *Router) EndLabelRegion(session Session) {
	r.notes.endLabelRegion(session)
}

// InsertLabel records a point label that appears once in the session's
// next augmented payload.
func (r *Router) InsertLabel(session Session, label Label) {
	r.notes.insertLabel(session, label)
}

// DeleteSessionLabels drops all label state for the session. The owning
// loader must call this when the session is destroyed.
func (r *Router) DeleteSessionLabels(session Session) {
	r.notes.deleteSessionLabels(session)
}

// Error logs a general error message through the default router.
func Error(messageID, commandName, message string, objects ...ObjectInfo) bool {
	return Default().LogMessage(SeverityError, TypeGeneral, messageID, commandName, message, objects)
}

// Warning logs a general warning message through the default router.
func Warning(messageID, commandName, message string, objects ...ObjectInfo) bool {
	return Default().LogMessage(SeverityWarning, TypeGeneral, messageID, commandName, message, objects)
}

// Info logs a general informational message through the default router.
func Info(messageID, commandName, message string, objects ...ObjectInfo) bool {
	return Default().LogMessage(SeverityInfo, TypeGeneral, messageID, commandName, message, objects)
}

// Verbose logs a general verbose message through the default router.
func Verbose(messageID, commandName, message string, objects ...ObjectInfo) bool {
	return Default().LogMessage(SeverityVerbose, TypeGeneral, messageID, commandName, message, objects)
}

// ConformanceError logs an error flagged as a conformance violation
// through the default router.
func ConformanceError(messageID, commandName, message string, objects ...ObjectInfo) bool {
	return Default().LogMessage(SeverityError, TypeGeneral|TypeConformance, messageID, commandName, message, objects)
}
