package diag

// The debug-utils extension ships its own severity and type vocabularies.
// The bit layouts below are fixed by the extension and deliberately do not
// line up with Severity and Type; taxonomy.go owns the mapping.

// DebugSeverity is the debug-utils severity vocabulary.
type DebugSeverity uint32

const (
	DebugSeverityVerbose DebugSeverity = 0x00000001
	DebugSeverityInfo    DebugSeverity = 0x00000010
	DebugSeverityWarning DebugSeverity = 0x00000100
	DebugSeverityError   DebugSeverity = 0x00001000
)

// DebugType is the debug-utils message-type vocabulary.
type DebugType uint32

const (
	DebugTypeGeneral     DebugType = 0x00000001
	DebugTypeValidation  DebugType = 0x00000002
	DebugTypePerformance DebugType = 0x00000004
)

// Session is an opaque runtime session handle. The loader never
// dereferences it; it only keys annotation state.
type Session uint64

// ObjectType identifies which kind of runtime object a handle refers to.
// Name bindings are keyed by (handle, type) because handle values are only
// unique within a type.
type ObjectType uint32

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypeInstance
	ObjectTypeSession
	ObjectTypeAction
	ObjectTypeResource
)

func (t ObjectType) String() string {
	switch t {
	case ObjectTypeInstance:
		return "Instance"
	case ObjectTypeSession:
		return "Session"
	case ObjectTypeAction:
		return "Action"
	case ObjectTypeResource:
		return "Resource"
	default:
		return "Unknown"
	}
}

// ObjectInfo identifies one runtime object implicated in a message. Name
// is the bound display name when one exists, empty otherwise.
type ObjectInfo struct {
	Handle uint64
	Type   ObjectType
	Name   string
}

// RGBA is a label accent color in the 0..1 range.
type RGBA struct {
	R, G, B, A float32
}

// Label is a debug-utils region or point label. Color is optional.
type Label struct {
	Name  string
	Color *RGBA
}

// CallbackData is the payload handed to sinks. It is immutable once a
// dispatch has started; the router and annotation store build a fresh
// value per message rather than mutating a caller's.
type CallbackData struct {
	MessageID   string
	CommandName string
	Message     string
	Objects     []ObjectInfo

	// Session scopes the label snapshot; zero when the message is not
	// session-scoped. When unset the annotation store falls back to the
	// first session-typed object in Objects.
	Session Session

	// SessionLabels is the active label region stack oldest-first, with a
	// pending point label, if any, appended last.
	SessionLabels []Label
}
