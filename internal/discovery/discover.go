package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover finds the Hea source files under rootPath. A directory is
// walked recursively (lexical order, hidden directories skipped); a
// path naming a single .hl file yields exactly that file. Relative
// paths in the result are relative to rootPath.
func Discover(rootPath string) ([]SourceFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	// A direct file path is accepted when it names a source file.
	if !info.IsDir() {
		if !IsSourcePath(absRoot) {
			return nil, fmt.Errorf("not a Hea source file (%s): %s", SourceExt, absRoot)
		}
		return []SourceFile{{
			Path:         absRoot,
			RelativePath: filepath.Base(absRoot),
			ModTime:      info.ModTime(),
		}}, nil
	}

	var files []SourceFile

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip entries we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			// Don't descend into hidden directories (.git, .healex, ...),
			// unless the walk was rooted there explicitly.
			if path != absRoot && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsSourcePath(path) {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, SourceFile{
			Path:         path,
			RelativePath: relPath,
			ModTime:      info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return files, nil
}
