// Package checkpoint records race progress as an append-only text file, one
// maze path per line. The last non-empty line is the maze to resume from.
package checkpoint

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// File is a checkpoint on disk. It is safe for concurrent use.
type File struct {
	path string
	mu   sync.Mutex
}

// Open returns a File for path. The file is created on the first Append.
func Open(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("checkpoint: empty path")
	}
	return &File{path: path}, nil
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// Append writes line followed by a newline.
func (f *File) Append(line string) error {
	if strings.ContainsAny(line, "\r\n") {
		return fmt.Errorf("checkpoint: line contains a newline: %q", line)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("checkpoint: open %s: %w", f.path, err)
	}
	if _, err := fh.WriteString(line + "\n"); err != nil {
		fh.Close()
		return fmt.Errorf("checkpoint: write %s: %w", f.path, err)
	}
	return fh.Close()
}

// All returns every non-empty line in order. A missing file has no lines.
func (f *File) All() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fh, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open %s: %w", f.path, err)
	}
	defer fh.Close()

	var lines []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("checkpoint: read %s: %w", f.path, err)
	}
	return lines, nil
}

// Last returns the final non-empty line, and false if there is none.
func (f *File) Last() (string, bool, error) {
	lines, err := f.All()
	if err != nil || len(lines) == 0 {
		return "", false, err
	}
	return lines[len(lines)-1], true, nil
}
