package sinks

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"beacon/internal/diag"
	"beacon/internal/logging"
)

func TestSlogSinkRoutesThroughRouter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	router := diag.NewRouter()
	router.AddSink(NewSlogSink(logger, diag.SeverityAll))
	router.AddObjectName(0x7, diag.ObjectTypeInstance, "primary")

	terminate := router.LogMessage(diag.SeverityWarning, diag.TypePerformance, "PERF-3", "submitFrame", "frame took too long", []diag.ObjectInfo{
		{Handle: 0x7, Type: diag.ObjectTypeInstance},
	})
	if terminate {
		t.Fatal("slog sink must never request termination")
	}

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"msg":"frame took too long"`,
		`"message_id":"PERF-3"`,
		`"command":"submitFrame"`,
		`"types":"Performance"`,
		`Instance:0x7(primary)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestSlogSinkLevelMapping(t *testing.T) {
	tests := []struct {
		severity diag.Severity
		want     slog.Level
	}{
		{diag.SeverityVerbose, slog.LevelDebug},
		{diag.SeverityInfo, slog.LevelInfo},
		{diag.SeverityWarning, slog.LevelWarn},
		{diag.SeverityError, slog.LevelError},
	}
	for _, tc := range tests {
		if got := levelFor(tc.severity); got != tc.want {
			t.Errorf("levelFor(%v) = %v, want %v", tc.severity, got, tc.want)
		}
	}
}

func TestMessengerReceivesAugmentedPayload(t *testing.T) {
	router := diag.NewRouter()

	var got *diag.CallbackData
	messenger := NewMessenger(diag.DebugSeverityError|diag.DebugSeverityWarning, diag.DebugTypeValidation|diag.DebugTypeGeneral,
		func(severity diag.DebugSeverity, types diag.DebugType, data *diag.CallbackData) bool {
			got = data
			return true
		})
	router.AddSink(messenger)

	session := diag.Session(14)
	router.BeginLabelRegion(session, diag.Label{Name: "load"})

	terminate := router.LogDebugUtilsMessage(diag.DebugSeverityError, diag.DebugTypeValidation, &diag.CallbackData{
		MessageID: "VAL-9",
		Message:   "pose out of range",
		Session:   session,
	})

	if !terminate {
		t.Fatal("callback terminate request was dropped")
	}
	if got == nil {
		t.Fatal("callback never ran")
	}
	if len(got.SessionLabels) != 1 || got.SessionLabels[0].Name != "load" {
		t.Fatalf("payload labels = %v", got.SessionLabels)
	}
}

func TestMessengerMaskTranslation(t *testing.T) {
	messenger := NewMessenger(diag.DebugSeverityError, diag.DebugTypeValidation, nil)
	if messenger.Kind() != diag.KindDebugUtils {
		t.Fatal("messenger must be debug-utils kind")
	}
	if messenger.SeverityMask() != diag.SeverityError {
		t.Fatalf("severity mask = %v", messenger.SeverityMask())
	}
	if messenger.TypeMask() != diag.TypeConformance {
		t.Fatalf("type mask = %v", messenger.TypeMask())
	}
	if messenger.LogDebugUtilsMessage(diag.DebugSeverityError, diag.DebugTypeValidation, &diag.CallbackData{}) {
		t.Fatal("nil callback requested termination")
	}
}

func TestMessengerFiltering(t *testing.T) {
	router := diag.NewRouter()
	calls := 0
	messenger := NewMessenger(diag.DebugSeverityError, diag.DebugTypeGeneral,
		func(diag.DebugSeverity, diag.DebugType, *diag.CallbackData) bool {
			calls++
			return false
		})
	router.AddSink(messenger)

	// Severity outside the mask.
	router.LogDebugUtilsMessage(diag.DebugSeverityInfo, diag.DebugTypeGeneral, &diag.CallbackData{})
	// Type not fully covered.
	router.LogDebugUtilsMessage(diag.DebugSeverityError, diag.DebugTypeGeneral|diag.DebugTypePerformance, &diag.CallbackData{})
	if calls != 0 {
		t.Fatalf("filtered messages reached the callback %d times", calls)
	}

	router.LogDebugUtilsMessage(diag.DebugSeverityError, diag.DebugTypeGeneral, &diag.CallbackData{})
	if calls != 1 {
		t.Fatalf("matching message delivered %d times, want 1", calls)
	}
}
