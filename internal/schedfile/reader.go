package schedfile

import (
	"bufio"
	"fmt"
	"os"
)

// Reader provides methods to read schedule manifests
type Reader interface {
	// ReadFile reads the named entries from a manifest file
	ReadFile(path string) ([]*Entry, error)

	// ParseFile reads all lines (including comments and blanks) from a file
	ParseFile(path string) ([]*Line, error)
}

// reader implements the Reader interface
type reader struct{}

// NewReader creates a new manifest reader
func NewReader() Reader {
	return &reader{}
}

// ReadFile reads the named entries from a manifest file
func (r *reader) ReadFile(path string) ([]*Entry, error) {
	lines, err := r.ParseFile(path)
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for _, line := range lines {
		if line.Type == LineTypeEntry && line.Entry != nil {
			entries = append(entries, line.Entry)
		}
	}

	return entries, nil
}

// ParseFile reads all lines from a manifest file
func (r *reader) ParseFile(path string) (lines []*Line, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing file: %w", closeErr)
		}
	}()

	scanner := bufio.NewScanner(file)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		lines = append(lines, ParseLine(scanner.Text(), lineNumber))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return lines, nil
}
