package security

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLimitedReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int64
		wantErr bool
	}{
		{name: "under limit", input: "abc", limit: 10},
		{name: "exactly at limit", input: "abcde", limit: 5},
		{name: "over limit", input: "abcdef", limit: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(NewLimitedReader(strings.NewReader(tt.input), tt.limit))
			if tt.wantErr {
				if !errors.Is(err, ErrRequestTooLarge) {
					t.Fatalf("err = %v, want ErrRequestTooLarge", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.input {
				t.Errorf("read %q, want %q", got, tt.input)
			}
		})
	}
}

// pausingReader yields its data, then one empty read, then EOF.
type pausingReader struct {
	data   []byte
	paused bool
}

func (p *pausingReader) Read(b []byte) (int, error) {
	if len(p.data) > 0 {
		n := copy(b, p.data)
		p.data = p.data[n:]
		return n, nil
	}
	if !p.paused {
		p.paused = true
		return 0, nil
	}
	return 0, io.EOF
}

func TestLimitedReaderAtLimit(t *testing.T) {
	r := NewLimitedReader(&pausingReader{data: []byte("abcde")}, 5)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("empty read at the limit reported as error: %v", err)
	}
	if string(got) != "abcde" {
		t.Errorf("read %q", got)
	}
}

func TestLimitedReaderReportsConfiguredLimit(t *testing.T) {
	_, err := io.ReadAll(NewLimitedReader(strings.NewReader("abcdef"), 5))
	if err == nil || !strings.Contains(err.Error(), "(5 bytes)") {
		t.Errorf("err = %v, want the configured limit of 5 bytes", err)
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "existing.json")
	if err := os.WriteFile(file, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "new file", path: filepath.Join(dir, "out.json")},
		{name: "existing file", path: file},
		{name: "empty", path: " ", wantErr: true},
		{name: "directory", path: dir, wantErr: true},
		{name: "missing parent", path: filepath.Join(dir, "nope", "out.json"), wantErr: true},
		{name: "parent is a file", path: filepath.Join(file, "out.json"), wantErr: true},
		{name: "nul byte", path: "out\x00.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
