package diag

// All knowledge of how the loader vocabulary lines up with the debug-utils
// vocabulary lives in this file. Severities map one to one. The loader's
// "conformance" type and the extension's "validation" type are the same
// concept under two names. Bits unknown to the target vocabulary are
// dropped in both directions so sinks built against an older vocabulary
// never see bits they cannot interpret.

// SeverityFromDebugUtils maps debug-utils severity bits onto loader bits.
func SeverityFromDebugUtils(severities DebugSeverity) Severity {
	var out Severity
	if severities&DebugSeverityVerbose != 0 {
		out |= SeverityVerbose
	}
	if severities&DebugSeverityInfo != 0 {
		out |= SeverityInfo
	}
	if severities&DebugSeverityWarning != 0 {
		out |= SeverityWarning
	}
	if severities&DebugSeverityError != 0 {
		out |= SeverityError
	}
	return out
}

// SeverityToDebugUtils maps loader severity bits onto debug-utils bits.
func SeverityToDebugUtils(severities Severity) DebugSeverity {
	var out DebugSeverity
	if severities&SeverityVerbose != 0 {
		out |= DebugSeverityVerbose
	}
	if severities&SeverityInfo != 0 {
		out |= DebugSeverityInfo
	}
	if severities&SeverityWarning != 0 {
		out |= DebugSeverityWarning
	}
	if severities&SeverityError != 0 {
		out |= DebugSeverityError
	}
	return out
}

// TypeFromDebugUtils maps debug-utils type bits onto loader bits.
func TypeFromDebugUtils(types DebugType) Type {
	var out Type
	if types&DebugTypeGeneral != 0 {
		out |= TypeGeneral
	}
	if types&DebugTypeValidation != 0 {
		out |= TypeConformance
	}
	if types&DebugTypePerformance != 0 {
		out |= TypePerformance
	}
	return out
}

// TypeToDebugUtils maps loader type bits onto debug-utils bits.
func TypeToDebugUtils(types Type) DebugType {
	var out DebugType
	if types&TypeGeneral != 0 {
		out |= DebugTypeGeneral
	}
	if types&TypeConformance != 0 {
		out |= DebugTypeValidation
	}
	if types&TypePerformance != 0 {
		out |= DebugTypePerformance
	}
	return out
}
