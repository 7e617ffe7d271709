package discovery

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceExt is the file extension of Hea source files.
const SourceExt = ".hl"

// SourceFile represents a Hea source file discovered during filesystem traversal
type SourceFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	ModTime      time.Time // Last modification time
}

// IsSourceFile reports whether filename carries the Hea source extension.
// The comparison is case-insensitive.
func IsSourceFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), SourceExt)
}

// IsSourcePath reports whether the file named by a full path is a Hea source file
func IsSourcePath(path string) bool {
	return IsSourceFile(filepath.Base(path))
}
