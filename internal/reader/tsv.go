package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vegasq/songcat/internal/catalog"
)

// tsvColumns is the fixed column order of a tab-separated catalog
var tsvColumns = []string{
	"name", "artist", "duration", "album", "popularity", "danceability", "energy",
	"loudness", "speechiness", "acousticness", "instrumentalness", "liveness",
	"valence", "tempo",
}

const maxLineLength = 1024 * 1024

var (
	// ErrEmptySource is returned when a catalog has no header line
	ErrEmptySource = errors.New("catalog source is empty")

	// ErrMalformedRow is returned when a catalog row cannot be turned into a song
	ErrMalformedRow = errors.New("malformed catalog row")

	// ErrUnsupportedFormat is returned for unknown or unsupported file extensions
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// ReadTSV reads songs from tab-separated text.
//
// The first line is a header and is skipped. Empty lines are ignored. Any
// other line must hold exactly 14 columns; the first bad line aborts the read.
func ReadTSV(r io.Reader) ([]catalog.Song, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, ErrEmptySource
	}

	songs := make([]catalog.Song, 0)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		song, err := ParseTSVLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		songs = append(songs, song)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", lineNo+1, err)
	}

	return songs, nil
}

// ParseTSVLine parses one tab-separated catalog row
func ParseTSVLine(line string) (catalog.Song, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != len(tsvColumns) {
		return catalog.Song{}, fmt.Errorf("%w: expected %d columns, got %d", ErrMalformedRow, len(tsvColumns), len(cols))
	}

	var parseErr error
	num := func(i int) float64 {
		if parseErr != nil {
			return 0
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cols[i]), 64)
		if err != nil {
			parseErr = fmt.Errorf("%w: column %s: %q is not a number", ErrMalformedRow, tsvColumns[i], cols[i])
		}
		return v
	}

	song := catalog.Song{
		Name:             cols[0],
		Artist:           cols[1],
		Duration:         num(2),
		Album:            cols[3],
		Popularity:       num(4),
		Danceability:     num(5),
		Energy:           num(6),
		Loudness:         num(7),
		Speechiness:      num(8),
		Acousticness:     num(9),
		Instrumentalness: num(10),
		Liveness:         num(11),
		Valence:          num(12),
		Tempo:            num(13),
	}
	if parseErr != nil {
		return catalog.Song{}, parseErr
	}
	return song, nil
}

// WriteTSV writes songs as tab-separated text with a header row
func WriteTSV(w io.Writer, songs []catalog.Song) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(tsvColumns, "\t") + "\n"); err != nil {
		return err
	}
	for _, s := range songs {
		cols := []string{
			s.Name, s.Artist, formatFloat(s.Duration), s.Album,
			formatFloat(s.Popularity), formatFloat(s.Danceability), formatFloat(s.Energy),
			formatFloat(s.Loudness), formatFloat(s.Speechiness), formatFloat(s.Acousticness),
			formatFloat(s.Instrumentalness), formatFloat(s.Liveness), formatFloat(s.Valence),
			formatFloat(s.Tempo),
		}
		if _, err := bw.WriteString(strings.Join(cols, "\t") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
