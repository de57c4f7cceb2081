package diag

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ConsoleSink writes human-readable diagnostics to a writer. It matches
// every message type; callers pick the severity set. The default router
// uses one for stderr errors and, when verbosity is configured, one for
// stdout.
type ConsoleSink struct {
	id   uint64
	mask Severity

	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSink returns a console sink writing messages in the given
// severity set to out.
func NewConsoleSink(out io.Writer, mask Severity) *ConsoleSink {
	return &ConsoleSink{id: NextSinkID(), mask: mask, out: out}
}

func (c *ConsoleSink) ID() uint64             { return c.id }
func (c *ConsoleSink) Kind() SinkKind         { return KindGeneric }
func (c *ConsoleSink) SeverityMask() Severity { return c.mask }
func (c *ConsoleSink) TypeMask() Type         { return TypeAll }

// LogMessage formats and writes the message. It never requests
// termination.
func (c *ConsoleSink) LogMessage(severity Severity, types Type, data *CallbackData) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, FormatMessage(severity, types, data))
	return false
}

// FormatMessage renders a message the way the console sinks print it: a
// header line followed by indented object and label lines.
func FormatMessage(severity Severity, types Type, data *CallbackData) string {
	var b strings.Builder
	b.WriteString(severity.String())
	b.WriteString(" [")
	b.WriteString(types.String())
	if data.MessageID != "" {
		b.WriteString(" | ")
		b.WriteString(data.MessageID)
	}
	b.WriteString("] ")
	if data.CommandName != "" {
		b.WriteString(data.CommandName)
		b.WriteString(": ")
	}
	b.WriteString(data.Message)
	b.WriteByte('\n')

	for _, obj := range data.Objects {
		fmt.Fprintf(&b, "    %s 0x%x", obj.Type, obj.Handle)
		if obj.Name != "" {
			fmt.Fprintf(&b, " (%s)", obj.Name)
		}
		b.WriteByte('\n')
	}
	for _, label := range data.SessionLabels {
		fmt.Fprintf(&b, "    label: %s\n", label.Name)
	}
	return b.String()
}

// LogDebugUtilsMessage is unused for generic-kind sinks.
func (c *ConsoleSink) LogDebugUtilsMessage(DebugSeverity, DebugType, *CallbackData) bool {
	return false
}
