package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".md")
	Extensions []string
	// SkipExtensions is a list of file extensions to leave out (e.g., ".png")
	SkipExtensions []string
	// ExcludeDirs is a list of directory names to skip (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// IncludeHidden descends into directories whose name starts with "."
	IncludeHidden bool
	// MaxEntries stops the walk after this many entries, files and
	// directories both counted (0 = unlimited)
	MaxEntries int
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the absolute paths of all matched regular files, sorted
	Files []string
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
	// Truncated is set when MaxEntries stopped the walk early
	Truncated bool
}

// ScanDirectory walks dir recursively and collects files matching opts.
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	extMap := extensionSet(opts.Extensions)
	skipMap := extensionSet(opts.SkipExtensions)

	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	entries := 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}

		if path == dir {
			return nil
		}

		if opts.MaxEntries > 0 {
			if entries >= opts.MaxEntries {
				result.Truncated = true
				return filepath.SkipAll
			}
			entries++
		}

		if d.IsDir() {
			name := d.Name()
			if excludeMap[name] || (!opts.IncludeHidden && strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if len(extMap) > 0 && !extMap[ext] {
			return nil
		}
		if skipMap[ext] {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		result.Files = append(result.Files, absPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// Sort files for consistent output
	sort.Strings(result.Files)

	return result, nil
}

// extensionSet normalizes extensions to lowercase with a leading dot.
func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = true
	}
	return set
}
