package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkSaveWritesArtifact(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "diag")
	sink, err := NewSink(dir)
	require.NoError(t, err)

	path, err := sink.Save(context.Background(), "Account 1_login_rejected.png", []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Account_1_login_rejected.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(diagnosticsFileMode), info.Mode().Perm())
}

func TestSinkSaveOverwrites(t *testing.T) {
	t.Parallel()

	sink, err := NewSink(t.TempDir())
	require.NoError(t, err)

	_, err = sink.Save(context.Background(), "a.png", []byte("one"))
	require.NoError(t, err)
	path, err := sink.Save(context.Background(), "a.png", []byte("two"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "Account 1_error.png", want: "Account_1_error.png"},
		{in: "../../etc/passwd", want: "etc_passwd"},
		{in: "main/page.png", want: "main_page.png"},
		{in: "  ", want: ""},
		{in: "..", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeName(tc.in))
		})
	}
}

func TestSinkRejectsEmptyNamesAndCancelledContext(t *testing.T) {
	t.Parallel()

	sink, err := NewSink(t.TempDir())
	require.NoError(t, err)

	_, err = sink.Save(context.Background(), "..", []byte("x"))
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sink.Save(ctx, "a.png", []byte("x"))
	require.ErrorIs(t, err, context.Canceled)

	_, err = NewSink(" ")
	require.Error(t, err)
}
