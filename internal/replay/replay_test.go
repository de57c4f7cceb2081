package replay

import (
	"strings"
	"sync"
	"testing"

	"beacon/internal/diag"
)

// captureSink retains every message the router delivers to it.
type captureSink struct {
	id   uint64
	kind diag.SinkKind

	mu     sync.Mutex
	events []*diag.CallbackData
}

func newCaptureSink(kind diag.SinkKind) *captureSink {
	return &captureSink{id: diag.NextSinkID(), kind: kind}
}

func (s *captureSink) ID() uint64                  { return s.id }
func (s *captureSink) Kind() diag.SinkKind         { return s.kind }
func (s *captureSink) SeverityMask() diag.Severity { return diag.SeverityAll }
func (s *captureSink) TypeMask() diag.Type         { return diag.TypeAll }

func (s *captureSink) LogMessage(_ diag.Severity, _ diag.Type, data *diag.CallbackData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, data)
	return false
}

func (s *captureSink) LogDebugUtilsMessage(_ diag.DebugSeverity, _ diag.DebugType, data *diag.CallbackData) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, data)
	return false
}

const sampleTrace = `# warm-up
{"op":"name","handle":16,"type":"session","name":"Main Session"}
{"op":"label_begin","session":16,"label":"startup"}
{"op":"message","severity":"info","types":["general"],"message_id":"GEN-1","command":"createInstance","message":"instance ready"}
{"op":"debug","severity":"warning","types":["validation"],"session":16,"message_id":"VAL-2","message":"pose space mismatch"}
{"op":"label_end","session":16}
{"op":"session_destroy","session":16}
{"op":"message","severity":"error","types":["general","performance"],"message":"frame deadline missed"}
`

func TestRunDispatchesTrace(t *testing.T) {
	router := diag.NewRouter()
	generic := newCaptureSink(diag.KindGeneric)
	debug := newCaptureSink(diag.KindDebugUtils)
	router.AddSink(generic)
	router.AddSink(debug)

	summary, err := Run(router, strings.NewReader(sampleTrace))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Ops != 7 {
		t.Errorf("ops = %d, want 7", summary.Ops)
	}
	if summary.Messages != 3 {
		t.Errorf("messages = %d, want 3", summary.Messages)
	}
	if summary.TerminateRequested {
		t.Error("no sink requested termination")
	}
	if summary.BySeverity[diag.SeverityWarning] != 1 || summary.BySeverity[diag.SeverityError] != 1 {
		t.Errorf("severity counts = %v", summary.BySeverity)
	}

	if len(generic.events) != 2 {
		t.Fatalf("generic sink saw %d messages, want 2", len(generic.events))
	}
	if len(debug.events) != 1 {
		t.Fatalf("debug sink saw %d messages, want 1", len(debug.events))
	}

	// The debug message ran inside the startup label region of a named
	// session; the augmented payload must show both.
	data := debug.events[0]
	if len(data.SessionLabels) != 1 || data.SessionLabels[0].Name != "startup" {
		t.Errorf("labels = %v", data.SessionLabels)
	}
	if data.Session != 16 {
		t.Errorf("session = %d", data.Session)
	}
}

func TestRunResolvesNamesFromTrace(t *testing.T) {
	trace := `{"op":"name","handle":5,"type":"resource","name":"depth buffer"}
{"op":"message","severity":"info","message":"resource created","objects":[{"handle":5,"type":"resource"}]}
`
	router := diag.NewRouter()
	sink := newCaptureSink(diag.KindGeneric)
	router.AddSink(sink)

	if _, err := Run(router, strings.NewReader(trace)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.events) != 1 || len(sink.events[0].Objects) != 1 {
		t.Fatal("message with objects not delivered")
	}
	if got := sink.events[0].Objects[0].Name; got != "depth buffer" {
		t.Fatalf("object name = %q", got)
	}
}

func TestRunDefaultsTypesToGeneral(t *testing.T) {
	router := diag.NewRouter()
	sink := newCaptureSink(diag.KindGeneric)
	router.AddSink(sink)

	summary, err := Run(router, strings.NewReader(`{"op":"message","severity":"error","message":"boom"}`+"\n"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Messages != 1 || len(sink.events) != 1 {
		t.Fatal("typeless message was not dispatched as general")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		trace string
		want  string
	}{
		{"bad json", "{not json}\n", "line 1: decode"},
		{"unknown op", `{"op":"explode"}` + "\n", `unknown op "explode"`},
		{"unknown severity", `{"op":"message","severity":"loud"}` + "\n", `unknown severity "loud"`},
		{"unknown type", `{"op":"message","severity":"info","types":["fancy"]}` + "\n", `unknown message type "fancy"`},
		{"validation on generic path", `{"op":"message","severity":"info","types":["validation"]}` + "\n", "unknown message type"},
		{"conformance on debug path", `{"op":"debug","severity":"info","types":["conformance"]}` + "\n", "unknown debug message type"},
		{"unknown object type", `{"op":"name","handle":1,"type":"widget","name":"x"}` + "\n", `unknown object type "widget"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Run(diag.NewRouter(), strings.NewReader(tc.trace))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestRunErrorKeepsEarlierDispatches(t *testing.T) {
	trace := `{"op":"message","severity":"info","message":"first"}
{"op":"explode"}
`
	router := diag.NewRouter()
	sink := newCaptureSink(diag.KindGeneric)
	router.AddSink(sink)

	summary, err := Run(router, strings.NewReader(trace))
	if err == nil {
		t.Fatal("expected error")
	}
	if summary.Messages != 1 || len(sink.events) != 1 {
		t.Fatal("message before the bad line was lost")
	}
}

func TestRunSurfacesTermination(t *testing.T) {
	router := diag.NewRouter()
	terminator := &terminateSink{captureSink: captureSink{id: diag.NextSinkID(), kind: diag.KindGeneric}}
	router.AddSink(terminator)

	summary, err := Run(router, strings.NewReader(`{"op":"message","severity":"error","message":"fatal"}`+"\n"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !summary.TerminateRequested {
		t.Fatal("terminate request not surfaced in summary")
	}
}

type terminateSink struct {
	captureSink
}

func (s *terminateSink) LogMessage(severity diag.Severity, types diag.Type, data *diag.CallbackData) bool {
	s.captureSink.LogMessage(severity, types, data)
	return true
}
