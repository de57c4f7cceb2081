package diag

import "testing"

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in   string
		want Verbosity
		ok   bool
	}{
		{"error", VerbosityError, true},
		{"warn", VerbosityWarn, true},
		{"info", VerbosityInfo, true},
		{"all", VerbosityAll, true},
		{"verbose", VerbosityAll, true},
		{" Warn ", VerbosityWarn, true},
		{"", VerbosityUnset, false},
		{"debug", VerbosityUnset, false},
	}

	for _, tc := range tests {
		got, ok := ParseVerbosity(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseVerbosity(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestVerbositySeveritiesCumulative(t *testing.T) {
	if got := VerbosityWarn.Severities(); got != SeverityError|SeverityWarning {
		t.Errorf("warn severities = %v", got)
	}
	if got := VerbosityInfo.Severities(); got != SeverityError|SeverityWarning|SeverityInfo {
		t.Errorf("info severities = %v", got)
	}
	if got := VerbosityAll.Severities(); got != SeverityAll {
		t.Errorf("all severities = %v", got)
	}
	if got := VerbosityUnset.Severities(); got != 0 {
		t.Errorf("unset severities = %v", got)
	}
}

func TestTypeString(t *testing.T) {
	if got := (TypeGeneral | TypePerformance).String(); got != "General | Performance" {
		t.Errorf("type string = %q", got)
	}
	if got := Type(0).String(); got != "Unknown" {
		t.Errorf("zero type string = %q", got)
	}
}
