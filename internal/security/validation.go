// Package security guards the files brandpal reads and writes on behalf of the user.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxRequestBytes caps the size of a generation request document.
const MaxRequestBytes int64 = 1 << 20

// ErrRequestTooLarge is returned once a LimitedReader has exhausted its budget.
var ErrRequestTooLarge = errors.New("request exceeds size limit")

// LimitedReader wraps an io.Reader and fails once the source holds more than
// Limit bytes. Unlike io.LimitReader it reports an error instead of a silent
// EOF, so a truncated document is never mistaken for a complete one.
type LimitedReader struct {
	R         io.Reader
	Limit     int64
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Anything but a byte past the limit passes through.
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n == 0 {
			return 0, err
		}
		return 0, fmt.Errorf("%w (%d bytes)", ErrRequestTooLarge, l.Limit)
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Limit:     maxBytes,
		Remaining: maxBytes,
	}
}

// ValidateOutputPath checks that path can be used as a file destination:
// it must be non-empty, must not name an existing directory, and its parent
// directory must exist.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty output path")
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("output path contains a NUL byte")
	}

	clean := filepath.Clean(path)
	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", path)
	}

	parent := filepath.Dir(clean)
	info, err := os.Stat(parent)
	if err != nil {
		return fmt.Errorf("output directory %s: %w", parent, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output parent is not a directory: %s", parent)
	}
	return nil
}
