package diag

import "strings"

// Severity classifies how serious a diagnostic message is. Every message
// carries exactly one severity bit; sinks register with a union.
type Severity uint32

const (
	SeverityVerbose Severity = 1 << iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// SeverityAll covers every defined severity bit.
const SeverityAll = SeverityVerbose | SeverityInfo | SeverityWarning | SeverityError

func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "Verbose"
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Type classifies what a diagnostic message is about. Unlike Severity, a
// message may carry a union of type bits.
type Type uint32

const (
	TypeGeneral Type = 1 << iota
	TypeConformance
	TypePerformance
)

// TypeAll covers every defined type bit.
const TypeAll = TypeGeneral | TypeConformance | TypePerformance

func (t Type) String() string {
	parts := make([]string, 0, 3)
	if t&TypeGeneral != 0 {
		parts = append(parts, "General")
	}
	if t&TypeConformance != 0 {
		parts = append(parts, "Conformance")
	}
	if t&TypePerformance != 0 {
		parts = append(parts, "Performance")
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, " | ")
}

// Verbosity is a decoded debug verbosity setting. Each step includes the
// severities of the steps below it.
type Verbosity int

const (
	VerbosityUnset Verbosity = iota
	VerbosityError
	VerbosityWarn
	VerbosityInfo
	VerbosityAll
)

// ParseVerbosity decodes a verbosity string. Unrecognized values report
// ok=false; callers treat that as "no additional output" rather than an
// error.
func ParseVerbosity(value string) (Verbosity, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return VerbosityError, true
	case "warn":
		return VerbosityWarn, true
	case "info":
		return VerbosityInfo, true
	case "all", "verbose":
		return VerbosityAll, true
	default:
		return VerbosityUnset, false
	}
}

// Severities expands a verbosity into its cumulative severity set.
func (v Verbosity) Severities() Severity {
	switch v {
	case VerbosityError:
		return SeverityError
	case VerbosityWarn:
		return SeverityError | SeverityWarning
	case VerbosityInfo:
		return SeverityError | SeverityWarning | SeverityInfo
	case VerbosityAll:
		return SeverityAll
	default:
		return 0
	}
}
