// Package locator finds the prompt document by checking an ordered list of
// candidate paths on an afero filesystem.
package locator

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ErrDocumentNotFound is returned when none of the candidate paths exist.
var ErrDocumentNotFound = errors.New("prompt document not found")

// Locator resolves the first existing candidate path.
type Locator struct {
	fs         afero.Fs
	candidates []string
}

// New returns a Locator over fs. Empty candidates are ignored and repeated
// candidates are only checked once; order is otherwise preserved.
func New(fs afero.Fs, candidates ...string) *Locator {
	seen := make(map[string]bool, len(candidates))
	var paths []string
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		paths = append(paths, c)
	}
	return &Locator{fs: fs, candidates: paths}
}

// Candidates returns the paths Locate checks, in order.
func (l *Locator) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Locate returns the first candidate that exists as a regular file.
func (l *Locator) Locate() (string, error) {
	for _, path := range l.candidates {
		info, err := l.fs.Stat(path)
		if err != nil {
			log.Debugf("prompt document candidate %s: %v", path, err)
			continue
		}
		if info.IsDir() {
			log.Debugf("prompt document candidate %s is a directory", path)
			continue
		}
		return path, nil
	}
	if len(l.candidates) == 0 {
		return "", ErrDocumentNotFound
	}
	return "", fmt.Errorf("%w (searched: %s)", ErrDocumentNotFound, strings.Join(l.candidates, ", "))
}

// Load locates the document and returns its path and contents.
func (l *Locator) Load() (string, string, error) {
	path, err := l.Locate()
	if err != nil {
		return "", "", err
	}
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	log.Debugf("loaded prompt document %s (%d bytes)", path, len(data))
	return path, string(data), nil
}
