// Package locator finds the environment README in a directory tree by
// content fingerprint.
//
// Discovery is an ordered pipeline of strategies. Each strategy is tried only
// when every earlier one found nothing:
//
//  1. candidate files: fixed relative paths such as README.md
//  2. markdown scan: every .md file under the root
//  3. bounded scan: the first N entries of the tree, binaries skipped
//
// Both scans skip the directories named in ExcludeDirs (.git and node_modules
// by default). An excluded directory counts as one entry toward the bounded
// scan cap and nothing below it is counted. Set exclude_dirs to an empty list
// to scan every entry.
//
// Files that cannot be read are logged and skipped.
package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/docguard/internal/config"
	"github.com/harrison/docguard/internal/fileutil"
	"github.com/harrison/docguard/internal/logger"
	"github.com/harrison/docguard/internal/models"
)

// Strategy is one discovery step. Find returns a nil Document when the
// strategy found nothing.
type Strategy interface {
	Name() string
	Find(root string) (*models.Document, error)
}

// Locator runs strategies in order and returns the first document found.
type Locator struct {
	strategies []Strategy
	log        logger.Logger
}

// New builds the standard three-step locator from cfg.
func New(cfg config.LocatorConfig, log logger.Logger) *Locator {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	r := &reader{log: log}
	return NewWithStrategies(log,
		&candidateStrategy{cfg: cfg, reader: r},
		&markdownStrategy{cfg: cfg, reader: r},
		&boundedStrategy{cfg: cfg, reader: r},
	)
}

// NewWithStrategies builds a locator from an explicit strategy list.
func NewWithStrategies(log logger.Logger, strategies ...Strategy) *Locator {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Locator{strategies: strategies, log: log}
}

// Locate returns the document under root, or nil when no strategy matched.
// An error means root itself could not be searched.
func (l *Locator) Locate(root string) (*models.Document, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	for _, s := range l.strategies {
		doc, err := s.Find(root)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		if doc != nil {
			l.log.LogDebug(fmt.Sprintf("located %s via %s", doc.Path, s.Name()))
			return doc, nil
		}
		l.log.LogTrace(fmt.Sprintf("%s found no document", s.Name()))
	}
	return nil, nil
}

// reader loads files as text, logging and skipping failures.
type reader struct {
	log logger.Logger
}

func (r *reader) read(path string) (*models.Document, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		r.log.LogDebug(fmt.Sprintf("could not read %s: %v", path, err))
		return nil, false
	}
	return models.NewDocument(path, raw), true
}

func (r *reader) logScanErrors(errs []error) {
	for _, err := range errs {
		r.log.LogDebug(err.Error())
	}
}

func containsAll(text string, markers []string) bool {
	for _, m := range markers {
		if !strings.Contains(text, m) {
			return false
		}
	}
	return true
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// candidateStrategy checks fixed relative paths in order.
type candidateStrategy struct {
	cfg    config.LocatorConfig
	reader *reader
}

func (s *candidateStrategy) Name() string { return "candidate files" }

func (s *candidateStrategy) Find(root string) (*models.Document, error) {
	required := s.cfg.Markers
	if len(required) > 2 {
		required = required[:2]
	}

	for _, rel := range s.cfg.Candidates {
		path := filepath.Join(root, filepath.FromSlash(rel))
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		doc, ok := s.reader.read(path)
		if !ok {
			continue
		}
		if containsAll(doc.Text, required) || strings.Contains(doc.Text, s.cfg.PrimaryMarker) {
			return doc, nil
		}
	}
	return nil, nil
}

// markdownStrategy scans every markdown file for any marker.
type markdownStrategy struct {
	cfg    config.LocatorConfig
	reader *reader
}

func (s *markdownStrategy) Name() string { return "markdown scan" }

func (s *markdownStrategy) Find(root string) (*models.Document, error) {
	result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
		Extensions:    []string{".md"},
		ExcludeDirs:   s.cfg.ExcludeDirs,
		IncludeHidden: true,
	})
	if err != nil {
		return nil, err
	}
	s.reader.logScanErrors(result.Errors)

	for _, path := range result.Files {
		doc, ok := s.reader.read(path)
		if !ok {
			continue
		}
		if containsAny(doc.Text, s.cfg.Markers) {
			return doc, nil
		}
	}
	return nil, nil
}

// boundedStrategy reads the first MaxScanEntries entries of the tree.
type boundedStrategy struct {
	cfg    config.LocatorConfig
	reader *reader
}

func (s *boundedStrategy) Name() string { return "bounded scan" }

func (s *boundedStrategy) Find(root string) (*models.Document, error) {
	result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
		SkipExtensions: s.cfg.SkipExtensions,
		ExcludeDirs:    s.cfg.ExcludeDirs,
		IncludeHidden:  true,
		MaxEntries:     s.cfg.MaxScanEntries,
	})
	if err != nil {
		return nil, err
	}
	s.reader.logScanErrors(result.Errors)
	if result.Truncated {
		s.reader.log.LogDebug(fmt.Sprintf("bounded scan stopped after %d entries", s.cfg.MaxScanEntries))
	}

	want := []string{s.cfg.PrimaryMarker, s.cfg.SecondaryMarker}
	for _, path := range result.Files {
		doc, ok := s.reader.read(path)
		if !ok {
			continue
		}
		if containsAll(doc.Text, want) {
			return doc, nil
		}
	}
	return nil, nil
}
