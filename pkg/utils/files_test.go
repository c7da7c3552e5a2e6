package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var program = []byte{0x3E, 0x05, 0x06, 0x03, 0x80, 0x76}

// compress writes program through the writer returned by wrap.
func compress(t *testing.T, wrap func(io.Writer) (io.WriteCloser, error)) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := wrap(&buf)
	require.NoError(t, err)
	_, err = w.Write(program)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		ext  string
		wrap func(io.Writer) (io.WriteCloser, error)
	}{
		{".gz", func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }},
		{".xz", func(w io.Writer) (io.WriteCloser, error) { return xz.NewWriter(w) }},
		{".zst", func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) }},
		{".lz4", func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil }},
		{".br", func(w io.Writer) (io.WriteCloser, error) { return brotli.NewWriter(w), nil }},
		{".zip", func(w io.Writer) (io.WriteCloser, error) {
			zw := zip.NewWriter(w)
			f, err := zw.Create("program.bin")
			if err != nil {
				return nil, err
			}
			return zipEntry{f, zw}, nil
		}},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			name := filepath.Join(dir, "program"+tt.ext)
			require.NoError(t, os.WriteFile(name, compress(t, tt.wrap), 0o644))

			data, err := LoadFile(name)
			require.NoError(t, err)
			assert.Equal(t, program, data)
		})
	}

	t.Run("raw", func(t *testing.T) {
		name := filepath.Join(dir, "program.bin")
		require.NoError(t, os.WriteFile(name, program, 0o644))

		data, err := LoadFile(name)
		require.NoError(t, err)
		assert.Equal(t, program, data)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.gz"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("corrupt", func(t *testing.T) {
		name := filepath.Join(dir, "corrupt.gz")
		require.NoError(t, os.WriteFile(name, program, 0o644))

		_, err := LoadFile(name)
		assert.ErrorContains(t, err, "corrupt.gz")
	})
}

func TestDecompress_EmptyArchive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, zip.NewWriter(&buf).Close())

	_, err := Decompress(".zip", buf.Bytes())
	assert.ErrorIs(t, err, ErrEmptyArchive)
}

// zipEntry closes the archive when the single entry is done.
type zipEntry struct {
	io.Writer
	archive *zip.Writer
}

func (z zipEntry) Close() error {
	return z.archive.Close()
}
