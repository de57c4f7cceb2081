package sinks

import (
	"context"
	"fmt"
	"log/slog"

	"beacon/internal/diag"
)

// SlogSink forwards loader diagnostics into a structured slog logger. It
// is a generic-kind sink and never requests termination.
type SlogSink struct {
	id     uint64
	mask   diag.Severity
	logger *slog.Logger
}

// NewSlogSink returns a sink logging messages in the given severity set
// through logger.
func NewSlogSink(logger *slog.Logger, mask diag.Severity) *SlogSink {
	return &SlogSink{id: diag.NextSinkID(), mask: mask, logger: logger}
}

func (s *SlogSink) ID() uint64                  { return s.id }
func (s *SlogSink) Kind() diag.SinkKind         { return diag.KindGeneric }
func (s *SlogSink) SeverityMask() diag.Severity { return s.mask }
func (s *SlogSink) TypeMask() diag.Type         { return diag.TypeAll }

func (s *SlogSink) LogMessage(severity diag.Severity, types diag.Type, data *diag.CallbackData) bool {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("types", types.String()))
	if data.MessageID != "" {
		attrs = append(attrs, slog.String("message_id", data.MessageID))
	}
	if data.CommandName != "" {
		attrs = append(attrs, slog.String("command", data.CommandName))
	}
	if len(data.Objects) > 0 {
		objects := make([]string, len(data.Objects))
		for i, obj := range data.Objects {
			if obj.Name != "" {
				objects[i] = fmt.Sprintf("%s:0x%x(%s)", obj.Type, obj.Handle, obj.Name)
			} else {
				objects[i] = fmt.Sprintf("%s:0x%x", obj.Type, obj.Handle)
			}
		}
		attrs = append(attrs, slog.Any("objects", objects))
	}

	s.logger.LogAttrs(context.Background(), levelFor(severity), data.Message, attrs...)
	return false
}

func (s *SlogSink) LogDebugUtilsMessage(diag.DebugSeverity, diag.DebugType, *diag.CallbackData) bool {
	return false
}

func levelFor(severity diag.Severity) slog.Level {
	switch severity {
	case diag.SeverityError:
		return slog.LevelError
	case diag.SeverityWarning:
		return slog.LevelWarn
	case diag.SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
