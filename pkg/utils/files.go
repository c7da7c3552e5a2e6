// Package utils holds helpers shared by the command line tools.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when a zip or 7z archive holds no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// LoadFile loads the given file and performs decompression if necessary.
// The compression is asserted from the file extension; archives yield
// their first file. Any other extension is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	out, err := Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}
	return out, nil
}

// Decompress decodes data according to the given file extension
// (e.g. ".gz"). Unknown extensions return data unchanged.
func Decompress(ext string, data []byte) ([]byte, error) {
	var (
		decoder io.Reader
		err     error
	)

	r := bytes.NewReader(data)
	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".xz":
		decoder, err = xz.NewReader(r)
	case ".zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(r)
		if err == nil {
			defer d.Close()
			decoder = d
		}
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".br":
		decoder = brotli.NewReader(r)
	case ".zip":
		var zipReader *zip.Reader
		zipReader, err = zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		var rc io.ReadCloser
		rc, err = zipReader.File[0].Open()
		if err == nil {
			defer rc.Close()
			decoder = rc
		}
	case ".7z":
		var archive *sevenzip.Reader
		archive, err = sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(archive.File) == 0 {
			return nil, ErrEmptyArchive
		}

		var rc io.ReadCloser
		rc, err = archive.File[0].Open()
		if err == nil {
			defer rc.Close()
			decoder = rc
		}
	default:
		return data, nil
	}

	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}
