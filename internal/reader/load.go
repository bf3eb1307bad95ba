package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/songcat/internal/catalog"
)

// Format identifies the row layout of a catalog file
type Format int

const (
	FormatTSV Format = iota
	FormatParquet
)

// maxFiles bounds the number of files a glob pattern may expand to
const maxFiles = 1000

// DetectFormat works out the format and codec of a catalog from its path
func DetectFormat(path string) (Format, Codec, error) {
	codec, base := splitCodec(path)

	switch strings.ToLower(filepath.Ext(base)) {
	case ".tsv", ".txt":
		return FormatTSV, codec, nil
	case ".parquet":
		if codec != CodecNone {
			return 0, 0, fmt.Errorf("%w: compressed parquet file %s", ErrUnsupportedFormat, path)
		}
		return FormatParquet, CodecNone, nil
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadFile reads every song from a single catalog file
func ReadFile(path string) ([]catalog.Song, error) {
	format, codec, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	if format == FormatParquet {
		r, err := NewParquetReader(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		return r.ReadAll()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stream, err := decompress(file, codec)
	if err != nil {
		return nil, err
	}
	defer func() { _ = stream.Close() }()

	return ReadTSV(stream)
}

// Load reads a catalog from a file path or glob pattern.
//
// Identities are assigned 1-based across all files in match order. Returns
// an error if no files match or any file fails to read; no partial catalog
// is returned.
func Load(pattern string) (*catalog.Catalog, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		songs, err := ReadFile(pattern)
		if err != nil {
			return nil, err
		}
		return catalog.FromSongs(songs), nil
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var all []catalog.Song
	for _, path := range matches {
		songs, err := ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		all = append(all, songs...)
	}
	return catalog.FromSongs(all), nil
}

// WriteFile writes songs to path in the format and codec implied by its
// extension. It is the inverse of ReadFile.
func WriteFile(path string, songs []catalog.Song) (err error) {
	format, codec, err := DetectFormat(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if format == FormatParquet {
		return WriteParquet(file, songs)
	}

	stream, err := compress(file, codec)
	if err != nil {
		return err
	}
	if err := WriteTSV(stream, songs); err != nil {
		_ = stream.Close()
		return err
	}
	return stream.Close()
}
