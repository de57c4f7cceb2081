// Package config loads and validates the beacon CLI configuration.
//
// Configuration lives in a TOML file; every field has a usable default so
// the tool runs without one. The loader core itself takes no file-based
// configuration — its only knob is the BEACON_LOADER_DEBUG environment
// variable, decoded in internal/diag.
package config
