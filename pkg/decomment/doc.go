// Package decomment defines the public contract of the comment stripping tool:
// the Walker and Logger interfaces, result types, sentinel errors, exit codes
// and the default extension and exclusion sets.
package decomment
