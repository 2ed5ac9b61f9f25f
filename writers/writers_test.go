package writers

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDelayFileWriter_NoWriteNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.csv")
	w := CreateDelayed(path)
	require.NoError(t, w.Close())
	require.False(t, w.Opened())

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDelayFileWriter_KeepsExistingUntilWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	w := CreateDelayed(path)
	require.NoError(t, w.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "old", string(data))

	w = CreateDelayed(path)
	_, err = w.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
	require.Equal(t, path, w.Path())
}

func TestLazyWriteCloser_InitError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	w := NewLazyWriteCloser(func() (io.WriteCloser, error) {
		calls++
		return nil, boom
	})
	_, err := w.Write([]byte("x"))
	require.ErrorIs(t, err, boom)
	_, err = w.Write([]byte("y"))
	require.ErrorIs(t, err, boom, "a failed open is not retried")
	require.Equal(t, 1, calls)
	require.False(t, w.Opened())
	require.NoError(t, w.Close())
}

func TestDelayFileWriter_CloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.csv")
	w := CreateDelayed(path)
	_, err := w.Write([]byte("rank"))
	require.NoError(t, err)
	require.True(t, w.Opened())

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("more"))
	require.Error(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "rank", string(data))
}
