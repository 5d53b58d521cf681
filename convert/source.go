package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"h2jsx/archive"
)

// SourceError is returned when conversion source cannot be read.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("unable to read source '%s': %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// readSource loads either a regular file or a file stored in zip archive, in
// which case src looks like "site.zip/pages/index.html".
func readSource(ctx context.Context, src string) ([]byte, error) {
	fi, err := os.Stat(src)
	if err == nil {
		if fi.IsDir() {
			return nil, &SourceError{Path: src, Err: errors.New("source is a directory")}
		}
		data, err := os.ReadFile(src)
		if err != nil {
			return nil, &SourceError{Path: src, Err: err}
		}
		return data, nil
	}
	notFound := err

	for head := filepath.Dir(src); ; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if fi, err := os.Stat(head); err == nil {
			if !fi.Mode().IsRegular() {
				// existing directory, file is simply absent
				break
			}
			ok, err := archive.IsArchive(head)
			if err != nil {
				return nil, &SourceError{Path: src, Err: err}
			}
			if !ok {
				break
			}
			inner, err := filepath.Rel(head, src)
			if err != nil {
				return nil, &SourceError{Path: src, Err: err}
			}
			data, err := archive.ReadFile(head, filepath.ToSlash(inner))
			if err != nil {
				return nil, &SourceError{Path: src, Err: err}
			}
			return data, nil
		}
		parent := filepath.Dir(head)
		if parent == head {
			break
		}
		head = parent
	}
	return nil, &SourceError{Path: src, Err: notFound}
}
