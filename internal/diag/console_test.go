package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleSinkFormat(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, SeverityAll)

	sink.LogMessage(SeverityError, TypeGeneral|TypeConformance, &CallbackData{
		MessageID:   "CONF-7",
		CommandName: "createSession",
		Message:     "handle is not valid",
		Objects: []ObjectInfo{
			{Handle: 0xdead, Type: ObjectTypeSession, Name: "Main Session"},
			{Handle: 0xbeef, Type: ObjectTypeAction},
		},
	})

	out := buf.String()
	for _, want := range []string{
		"Error [General | Conformance | CONF-7] createSession: handle is not valid",
		"Session 0xdead (Main Session)",
		"Action 0xbeef",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0xbeef (") {
		t.Errorf("unbound object rendered with a name:\n%s", out)
	}
}

func TestConsoleSinkMasks(t *testing.T) {
	sink := NewConsoleSink(&bytes.Buffer{}, SeverityError|SeverityWarning)
	if sink.Kind() != KindGeneric {
		t.Fatal("console sink must be generic kind")
	}
	if sink.TypeMask() != TypeAll {
		t.Fatal("console sink must accept every type")
	}
	if sink.SeverityMask() != SeverityError|SeverityWarning {
		t.Fatalf("severity mask = %v", sink.SeverityMask())
	}
	if sink.LogDebugUtilsMessage(DebugSeverityError, DebugTypeGeneral, &CallbackData{}) {
		t.Fatal("unsupported path requested termination")
	}
}

func TestConsoleSinkIDsUnique(t *testing.T) {
	a := NewConsoleSink(&bytes.Buffer{}, SeverityAll)
	b := NewConsoleSink(&bytes.Buffer{}, SeverityAll)
	if a.ID() == b.ID() {
		t.Fatal("sink IDs collided")
	}
}
