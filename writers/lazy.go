package writers

import (
	"errors"
	"io"
)

var errClosed = errors.New("writer already closed")

// LazyWriteCloser defers opening its destination until the first Write. A
// failed open is remembered and returned by every later Write. Close is safe
// to call more than once.
type LazyWriteCloser struct {
	open    func() (io.WriteCloser, error)
	dst     io.WriteCloser
	openErr error
	closed  bool
}

func NewLazyWriteCloser(open func() (io.WriteCloser, error)) *LazyWriteCloser {
	return &LazyWriteCloser{open: open}
}

func (l *LazyWriteCloser) Write(p []byte) (int, error) {
	switch {
	case l.closed:
		return 0, errClosed
	case l.openErr != nil:
		return 0, l.openErr
	case l.dst == nil:
		dst, err := l.open()
		if err != nil {
			l.openErr = err
			return 0, err
		}
		l.dst = dst
	}
	return l.dst.Write(p)
}

// Opened reports whether the destination was opened, i.e. whether anything
// has been written.
func (l *LazyWriteCloser) Opened() bool {
	return l.dst != nil
}

func (l *LazyWriteCloser) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	if l.dst == nil {
		return nil
	}
	return l.dst.Close()
}
