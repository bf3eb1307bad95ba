package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/songcat/internal/catalog"
)

// ParquetReader reads songs from a parquet catalog.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens a parquet catalog for the specified file path.
//
// The file is opened and validated as a parquet file holding every song
// column. Returns an error if the file doesn't exist, is not a valid parquet
// file, or lacks a column.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	if err := checkColumns(pqFile.Schema()); err != nil {
		_ = file.Close()
		return nil, err
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// checkColumns verifies that every song column is present
func checkColumns(schema *parquet.Schema) error {
	present := make(map[string]bool)
	for _, field := range schema.Fields() {
		present[field.Name()] = true
	}
	for _, col := range tsvColumns {
		if !present[col] {
			return fmt.Errorf("%w: parquet file has no %q column", ErrMalformedRow, col)
		}
	}
	return nil
}

// ReadAll reads every song from the parquet file into memory
func (r *ParquetReader) ReadAll() ([]catalog.Song, error) {
	songs := make([]catalog.Song, 0, r.pqFile.NumRows())

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		var song catalog.Song
		err := reader.Read(&song)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", len(songs)+1, err)
		}
		songs = append(songs, song)
	}

	return songs, nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// WriteParquet writes songs as a parquet file with one column per property
func WriteParquet(w io.Writer, songs []catalog.Song) error {
	writer := parquet.NewGenericWriter[catalog.Song](w)
	if _, err := writer.Write(songs); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}
