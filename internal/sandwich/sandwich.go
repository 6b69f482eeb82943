// Package sandwich reads text files with the open/use/close pattern kept in
// one place, so the callers only supply the middle part.
package sandwich

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
)

// ErrNoMatch is returned by FindLine when no line matches.
var ErrNoMatch = errors.New("no matching line")

// WithFile opens name, hands it to fn and always closes it. A close error is
// only reported when fn itself succeeded.
func WithFile(name string, fn func(f *os.File) error) (err error) {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	return fn(f)
}

// CountLines returns the number of lines in name. A last line without a
// trailing newline still counts.
func CountLines(name string) (int, error) {
	count := 0
	err := WithFile(name, func(f *os.File) error {
		r := bufio.NewReader(f)
		for {
			line, err := r.ReadString('\n')
			if line != "" {
				count++
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
	return count, err
}

// FindLine returns the first line of name matching re, with its newline
// when the file has one.
func FindLine(name string, re *regexp.Regexp) (string, error) {
	var found string
	err := WithFile(name, func(f *os.File) error {
		r := bufio.NewReader(f)
		for {
			line, err := r.ReadString('\n')
			if line != "" && re.MatchString(line) {
				found = line
				return nil
			}
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w for %q in %s", ErrNoMatch, re, name)
			}
			if err != nil {
				return err
			}
		}
	})
	return found, err
}
