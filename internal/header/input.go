package header

import (
	"fmt"
	"io"
	"os"
)

// StdinPath names standard input instead of a file.
const StdinPath = "-"

// FileAccessError is returned when the input cannot be opened or read.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ReadInput loads the whole of path into memory. The file is closed before
// ReadInput returns, whether or not the read succeeded. A path of "-" reads
// stdin instead, falling back to os.Stdin when stdin is nil; use "./-" for
// a file of that name.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		return readAll(stdin, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	return readAll(f, path)
}

func readAll(r io.Reader, path string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "read", Err: err}
	}
	return data, nil
}
