package writers

import (
	"io"
	"io/fs"
	"os"
)

// DelayFileWriter opens its file on first write, so an export that fails
// before producing output leaves an existing file untouched.
type DelayFileWriter struct {
	*LazyWriteCloser
	path string
}

// Creates a new DelayFileWriter. Arguments are similar to os.OpenFile().
func NewDelayFileWriter(path string, flags int, perms fs.FileMode) *DelayFileWriter {
	return &DelayFileWriter{
		LazyWriteCloser: NewLazyWriteCloser(func() (io.WriteCloser, error) {
			return os.OpenFile(path, flags, perms)
		}),
		path: path,
	}
}

// CreateDelayed is NewDelayFileWriter with the flags of os.Create.
func CreateDelayed(path string) *DelayFileWriter {
	return NewDelayFileWriter(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
}

func (f *DelayFileWriter) Path() string {
	return f.path
}
