// Package format names the output formats the encoder can produce.
//
// VDF is the native format and the only one the parser reads; JSON and
// YAML are one-way views for interop with other tooling.
package format
