// Package types defines the small set of types shared across filer packages.
package types

import (
	"io/fs"
	"time"
)

// FS abstracts the filesystem operations filer needs. The real
// implementation lives in pkg/filesystem; tests use an in-memory one.
// Filer only ever reads: it emits commands without executing them.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Clock supplies the current time to the rebuild engine. Date escapes
// reflect the time of each rebuild call, not process start.
type Clock func() time.Time
