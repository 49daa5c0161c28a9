// Package fileutil provides the directory traversal used to locate documents.
//
// ScanDirectory walks a tree recursively and returns the absolute paths of
// matching regular files in sorted order, so repeated scans of an unchanged
// tree return the same list.
//
// # Filtering
//
//   - Extensions keeps only the listed extensions (case-insensitive, dot optional)
//   - SkipExtensions drops the listed extensions, e.g. images and PDFs
//   - ExcludeDirs skips directories by name, e.g. ".git" or "node_modules"
//   - Hidden directories are skipped unless IncludeHidden is set
//
// # Bounded walks
//
// MaxEntries caps the number of entries visited, counting directories as
// well as files. When the cap is hit the walk stops and ScanResult.Truncated
// is set.
//
// # Error tolerance
//
// Errors on individual entries (permission denied, vanished files) are
// collected in ScanResult.Errors and the walk continues. Only a missing or
// non-directory root is fatal.
//
//	result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
//	    Extensions:  []string{".md"},
//	    ExcludeDirs: []string{".git", "node_modules"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, file := range result.Files {
//	    fmt.Println(file)
//	}
package fileutil
