package writers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDestination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		output   string
		wantDest Destination
		wantPath string
		wantErr  bool
	}{
		{name: "empty defaults to stdout", output: "", wantDest: DestinationStdout},
		{name: "stdout", output: "stdout", wantDest: DestinationStdout},
		{name: "stderr", output: "stderr", wantDest: DestinationStderr},
		{name: "absolute path", output: "/var/log/app.log", wantDest: DestinationFile, wantPath: "/var/log/app.log"},
		{name: "relative path", output: "app.log", wantDest: DestinationFile, wantPath: "app.log"},
		{name: "file scheme", output: "file:///tmp/app.log", wantDest: DestinationFile, wantPath: "/tmp/app.log"},
		{name: "empty file scheme", output: "file://", wantErr: true},
		{name: "other scheme", output: "syslog://localhost:514", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dest, path, err := ParseDestination(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedOutput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDest, dest)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestCreateWriter(t *testing.T) {
	t.Parallel()

	t.Run("standard streams", func(t *testing.T) {
		t.Parallel()

		w, err := CreateWriter("stdout")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, w)

		w, err = CreateWriter("stderr")
		require.NoError(t, err)
		assert.Equal(t, os.Stderr, w)
	})

	t.Run("file creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")
		w, err := CreateWriter("file://" + path)
		require.NoError(t, err)

		f, ok := w.(*os.File)
		require.True(t, ok)
		defer func() { assert.NoError(t, f.Close()) }()

		_, err = f.WriteString("hello\n")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(content))
	})

	t.Run("unwritable path", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		w, err := CreateWriter(filepath.Join(blocker, "app.log"))
		require.Error(t, err)
		assert.Nil(t, w)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		t.Parallel()

		w, err := CreateWriter("redis://localhost:6379")
		require.Error(t, err)
		assert.Nil(t, w)
	})
}
