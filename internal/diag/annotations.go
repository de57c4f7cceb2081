package diag

import "sync"

type objectKey struct {
	handle uint64
	typ    ObjectType
}

// annotationStore owns object-name bindings and per-session label-region
// stacks. Name bindings live for the whole process; label state lives
// until DeleteSessionLabels. The loader gets no independent signal that a
// session died, so the owner must call DeleteSessionLabels at session
// teardown or the entry leaks.
//
// One mutex guards everything here. Sink dispatch never runs under it;
// the router finishes augmenting before it touches the registry.
type annotationStore struct {
	mu      sync.Mutex
	names   map[objectKey]string
	stacks  map[Session][]Label
	pending map[Session]*Label
}

func newAnnotationStore() *annotationStore {
	return &annotationStore{
		names:   make(map[objectKey]string),
		stacks:  make(map[Session][]Label),
		pending: make(map[Session]*Label),
	}
}

// addObjectName upserts the display name for (handle, typ). An empty name
// removes the binding, matching the debug-utils convention for clearing.
func (a *annotationStore) addObjectName(handle uint64, typ ObjectType, name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := objectKey{handle: handle, typ: typ}
	if name == "" {
		delete(a.names, key)
		return
	}
	a.names[key] = name
}

func (a *annotationStore) beginLabelRegion(session Session, label Label) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stacks[session] = append(a.stacks[session], label)
}

// endLabelRegion pops the innermost region. Unbalanced calls are
// tolerated as no-ops.
func (a *annotationStore) endLabelRegion(session Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	stack := a.stacks[session]
	if len(stack) == 0 {
		return
	}
	a.stacks[session] = stack[:len(stack)-1]
}

// insertLabel records a transient point label. It shows up exactly once,
// in the next augmented payload for the session, and never joins the
// nesting stack.
func (a *annotationStore) insertLabel(session Session, label Label) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending[session] = &label
}

// deleteSessionLabels erases all label state for the session. Later calls
// referencing the session behave as if it had never been annotated.
func (a *annotationStore) deleteSessionLabels(session Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.stacks, session)
	delete(a.pending, session)
}

// resolveNames copies objects, filling in bound display names. Unbound
// objects pass through with an empty name.
func (a *annotationStore) resolveNames(objects []ObjectInfo) []ObjectInfo {
	if len(objects) == 0 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	resolved := make([]ObjectInfo, len(objects))
	for i, obj := range objects {
		resolved[i] = obj
		if name, ok := a.names[objectKey{handle: obj.Handle, typ: obj.Type}]; ok {
			resolved[i].Name = name
		}
	}
	return resolved
}

// augment builds the payload actually handed to debug-utils sinks: the
// caller's data with object names resolved and the implicated session's
// label stack attached oldest-first. A pending point label is appended
// after the stack and consumed. The caller's value is never mutated.
func (a *annotationStore) augment(data *CallbackData) *CallbackData {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := *data
	if len(data.Objects) > 0 {
		out.Objects = make([]ObjectInfo, len(data.Objects))
		for i, obj := range data.Objects {
			out.Objects[i] = obj
			if name, ok := a.names[objectKey{handle: obj.Handle, typ: obj.Type}]; ok {
				out.Objects[i].Name = name
			}
		}
	}

	session := data.Session
	if session == 0 {
		for _, obj := range data.Objects {
			if obj.Type == ObjectTypeSession {
				session = Session(obj.Handle)
				break
			}
		}
	}
	out.Session = session
	out.SessionLabels = nil
	if session == 0 {
		return &out
	}

	if stack := a.stacks[session]; len(stack) > 0 {
		out.SessionLabels = append(out.SessionLabels, stack...)
	}
	if point := a.pending[session]; point != nil {
		out.SessionLabels = append(out.SessionLabels, *point)
		delete(a.pending, session)
	}
	return &out
}
