package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"h2jsx/convert"
)

func TestExitCode(t *testing.T) {
	srcErr := &convert.SourceError{Path: "page.html", Err: fs.ErrNotExist}
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"source", srcErr, exitSourceError},
		{"wrapped source", fmt.Errorf("processing: %w", srcErr), exitSourceError},
		{"other", errors.New("no input source has been specified"), exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
