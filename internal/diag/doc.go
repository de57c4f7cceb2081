// Package diag routes diagnostic messages from the runtime loader to
// registered sinks.
//
// It owns the process-wide sink registry, the translation between the
// loader's message vocabulary and the debug-utils extension vocabulary,
// and the annotation store that attaches object names and session label
// regions to outgoing messages. Sinks are matched per message on
// severity, type, and dispatch path; every matching sink sees every
// passing message, and a sink's terminate request is surfaced to the
// caller without being enforced here.
//
// The Default router installs a stderr error sink on first use and, when
// the BEACON_LOADER_DEBUG environment variable decodes to a known
// verbosity, a stdout sink covering the corresponding severity set.
package diag
