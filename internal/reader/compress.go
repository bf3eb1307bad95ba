package reader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies the compression applied to a catalog file
type Codec int

const (
	CodecNone Codec = iota
	CodecGzip
	CodecZstd
	CodecLZ4
)

var codecExtensions = map[string]Codec{
	".gz":  CodecGzip,
	".zst": CodecZstd,
	".lz4": CodecLZ4,
}

// splitCodec returns the codec implied by the last extension of path and
// the path with that extension removed.
func splitCodec(path string) (Codec, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := codecExtensions[ext]; ok {
		return c, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return CodecNone, path
}

// decompress wraps r with a decoder for codec. Closing the result releases
// the decoder but not r.
func decompress(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return zr, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: codec %d", ErrUnsupportedFormat, codec)
	}
}

// compress wraps w with an encoder for codec. The result must be closed to
// flush the stream; closing does not close w.
func compress(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone:
		return nopWriteCloser{w}, nil
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zw, nil
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: codec %d", ErrUnsupportedFormat, codec)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
