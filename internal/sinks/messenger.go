package sinks

import "beacon/internal/diag"

// MessengerCallback receives one debug-utils message. Returning true asks
// the loader to terminate; the request is advisory and travels back
// through the router's dispatch return value.
type MessengerCallback func(severity diag.DebugSeverity, types diag.DebugType, data *diag.CallbackData) bool

// Messenger is a debug-utils-kind sink wrapping a caller-supplied
// callback. Its masks are expressed in the extension vocabulary, the way
// a messenger is created; the router compares them in the loader
// vocabulary, so they are translated once at construction.
type Messenger struct {
	id       uint64
	mask     diag.Severity
	types    diag.Type
	callback MessengerCallback
}

// NewMessenger returns a messenger sink delivering messages that carry
// only severity and type bits present in the given masks.
func NewMessenger(severities diag.DebugSeverity, types diag.DebugType, callback MessengerCallback) *Messenger {
	return &Messenger{
		id:       diag.NextSinkID(),
		mask:     diag.SeverityFromDebugUtils(severities),
		types:    diag.TypeFromDebugUtils(types),
		callback: callback,
	}
}

func (m *Messenger) ID() uint64                  { return m.id }
func (m *Messenger) Kind() diag.SinkKind         { return diag.KindDebugUtils }
func (m *Messenger) SeverityMask() diag.Severity { return m.mask }
func (m *Messenger) TypeMask() diag.Type         { return m.types }

// LogMessage is unused for debug-utils-kind sinks.
func (m *Messenger) LogMessage(diag.Severity, diag.Type, *diag.CallbackData) bool {
	return false
}

func (m *Messenger) LogDebugUtilsMessage(severity diag.DebugSeverity, types diag.DebugType, data *diag.CallbackData) bool {
	if m.callback == nil {
		return false
	}
	return m.callback(severity, types, data)
}
