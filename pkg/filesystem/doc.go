// Package filesystem provides filesystem implementations for filer.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an in-memory one for tests.
package filesystem
