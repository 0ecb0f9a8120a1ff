// Package fileutil reads configuration and ticket files with a size bound.
package fileutil

import (
	"io"
	"os"

	"github.com/gitstory/gitstory/internal/errors"
)

// DefaultMaxSize bounds reads done by ReadFileWithLimit (1MB).
const DefaultMaxSize int64 = 1 << 20

var (
	// ErrTooLarge marks files that exceed the read limit.
	ErrTooLarge = errors.New("file too large")

	// ErrIsDir marks paths that name a directory.
	ErrIsDir = errors.New("is a directory")
)

// ReadFileWithLimit reads path, refusing files over DefaultMaxSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	return ReadLimited(path, DefaultMaxSize)
}

// ReadLimited reads at most limit bytes from path. A missing file yields an
// error matching fs.ErrNotExist; a directory yields ErrIsDir; a file longer
// than limit yields ErrTooLarge.
func ReadLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.Mark(errors.Newf("%s is a directory", path), ErrIsDir)
	}
	// Fail fast on the recorded size; the read below still enforces the
	// limit for files that grow or report no size.
	if info.Size() > limit {
		return nil, tooLarge(path, limit)
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(path, limit)
	}
	return data, nil
}

func tooLarge(path string, limit int64) error {
	return errors.Mark(errors.Newf("%s exceeds the %d byte limit", path, limit), ErrTooLarge)
}
