package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"beacon/internal/diag"
)

// Operation names accepted in a trace line.
const (
	OpMessage        = "message"
	OpDebug          = "debug"
	OpName           = "name"
	OpLabelBegin     = "label_begin"
	OpLabelEnd       = "label_end"
	OpLabelInsert    = "label_insert"
	OpSessionDestroy = "session_destroy"
)

// Object identifies one runtime object in a trace line.
type Object struct {
	Handle uint64 `json:"handle"`
	Type   string `json:"type"`
}

// Record is one operation in a trace file. Fields are populated according
// to Op; unused fields stay zero.
type Record struct {
	Op string `json:"op"`

	Severity  string   `json:"severity,omitempty"`
	Types     []string `json:"types,omitempty"`
	MessageID string   `json:"message_id,omitempty"`
	Command   string   `json:"command,omitempty"`
	Message   string   `json:"message,omitempty"`
	Objects   []Object `json:"objects,omitempty"`
	Session   uint64   `json:"session,omitempty"`

	Handle uint64 `json:"handle,omitempty"`
	Type   string `json:"type,omitempty"`
	Name   string `json:"name,omitempty"`

	Label string      `json:"label,omitempty"`
	Color *[4]float32 `json:"color,omitempty"`
}

// Summary reports what a replay dispatched.
type Summary struct {
	Ops                int
	Messages           int
	BySeverity         map[diag.Severity]int
	TerminateRequested bool
}

// Run replays the trace from src through the router, line by line. Blank
// lines and lines starting with # are skipped. A malformed line aborts
// the replay with a line-numbered error; everything dispatched before it
// stays dispatched.
func Run(router *diag.Router, src io.Reader) (*Summary, error) {
	summary := &Summary{BySeverity: make(map[diag.Severity]int)}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return summary, fmt.Errorf("line %d: decode: %w", line, err)
		}
		if err := apply(router, &rec, summary); err != nil {
			return summary, fmt.Errorf("line %d: %w", line, err)
		}
		summary.Ops++
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("read trace: %w", err)
	}
	return summary, nil
}

func apply(router *diag.Router, rec *Record, summary *Summary) error {
	switch rec.Op {
	case OpMessage:
		severity, err := parseSeverity(rec.Severity)
		if err != nil {
			return err
		}
		types, err := parseTypes(rec.Types)
		if err != nil {
			return err
		}
		objects, err := parseObjects(rec.Objects)
		if err != nil {
			return err
		}
		terminate := router.LogMessage(severity, types, rec.MessageID, rec.Command, rec.Message, objects)
		summary.Messages++
		summary.BySeverity[severity]++
		summary.TerminateRequested = summary.TerminateRequested || terminate

	case OpDebug:
		severity, err := parseSeverity(rec.Severity)
		if err != nil {
			return err
		}
		types, err := parseDebugTypes(rec.Types)
		if err != nil {
			return err
		}
		objects, err := parseObjects(rec.Objects)
		if err != nil {
			return err
		}
		data := &diag.CallbackData{
			MessageID:   rec.MessageID,
			CommandName: rec.Command,
			Message:     rec.Message,
			Objects:     objects,
			Session:     diag.Session(rec.Session),
		}
		terminate := router.LogDebugUtilsMessage(diag.SeverityToDebugUtils(severity), types, data)
		summary.Messages++
		summary.BySeverity[severity]++
		summary.TerminateRequested = summary.TerminateRequested || terminate

	case OpName:
		objectType, err := parseObjectType(rec.Type)
		if err != nil {
			return err
		}
		router.AddObjectName(rec.Handle, objectType, rec.Name)

	case OpLabelBegin:
		router.BeginLabelRegion(diag.Session(rec.Session), makeLabel(rec))

	case OpLabelEnd:
		router.EndLabelRegion(diag.Session(rec.Session))

	case OpLabelInsert:
		router.InsertLabel(diag.Session(rec.Session), makeLabel(rec))

	case OpSessionDestroy:
		router.DeleteSessionLabels(diag.Session(rec.Session))

	default:
		return fmt.Errorf("unknown op %q", rec.Op)
	}
	return nil
}

func makeLabel(rec *Record) diag.Label {
	label := diag.Label{Name: rec.Label}
	if rec.Color != nil {
		label.Color = &diag.RGBA{R: rec.Color[0], G: rec.Color[1], B: rec.Color[2], A: rec.Color[3]}
	}
	return label
}

func parseSeverity(value string) (diag.Severity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "verbose":
		return diag.SeverityVerbose, nil
	case "info":
		return diag.SeverityInfo, nil
	case "warning", "warn":
		return diag.SeverityWarning, nil
	case "error":
		return diag.SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", value)
	}
}

func parseTypes(values []string) (diag.Type, error) {
	if len(values) == 0 {
		return diag.TypeGeneral, nil
	}
	var out diag.Type
	for _, value := range values {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "general":
			out |= diag.TypeGeneral
		case "conformance":
			out |= diag.TypeConformance
		case "performance":
			out |= diag.TypePerformance
		default:
			return 0, fmt.Errorf("unknown message type %q", value)
		}
	}
	return out, nil
}

// parseDebugTypes accepts the extension vocabulary, where the
// conformance concept is called validation.
func parseDebugTypes(values []string) (diag.DebugType, error) {
	if len(values) == 0 {
		return diag.DebugTypeGeneral, nil
	}
	var out diag.DebugType
	for _, value := range values {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "general":
			out |= diag.DebugTypeGeneral
		case "validation":
			out |= diag.DebugTypeValidation
		case "performance":
			out |= diag.DebugTypePerformance
		default:
			return 0, fmt.Errorf("unknown debug message type %q", value)
		}
	}
	return out, nil
}

func parseObjectType(value string) (diag.ObjectType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "unknown":
		return diag.ObjectTypeUnknown, nil
	case "instance":
		return diag.ObjectTypeInstance, nil
	case "session":
		return diag.ObjectTypeSession, nil
	case "action":
		return diag.ObjectTypeAction, nil
	case "resource":
		return diag.ObjectTypeResource, nil
	default:
		return 0, fmt.Errorf("unknown object type %q", value)
	}
}

func parseObjects(objects []Object) ([]diag.ObjectInfo, error) {
	if len(objects) == 0 {
		return nil, nil
	}
	out := make([]diag.ObjectInfo, len(objects))
	for i, obj := range objects {
		objectType, err := parseObjectType(obj.Type)
		if err != nil {
			return nil, err
		}
		out[i] = diag.ObjectInfo{Handle: obj.Handle, Type: objectType}
	}
	return out, nil
}
