package letter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatic(t *testing.T) {
	assert.Equal(t, "hello", Static("hello").Text())
}

func TestLoadTrimsTrailingSpace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.txt")
	require.NoError(t, os.WriteFile(path, []byte("Dear you,\n\nhi\n\n"), 0o600))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Dear you,\n\nhi", text)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorContains(t, err, "read letter")
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letter.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := Watch(ctx, zap.NewNop(), path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, "first", w.Text())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))

	assert.Eventually(t, func() bool {
		return w.Text() == "second"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatchKeepsLastGoodLetter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letter.txt")
	require.NoError(t, os.WriteFile(path, []byte("kept"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := Watch(ctx, zap.NewNop(), path, 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Remove(path))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "kept", w.Text())
}
