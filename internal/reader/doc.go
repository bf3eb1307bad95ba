// Package reader loads song catalogs and query files from disk.
//
// Catalogs come in two formats: tab-separated text with a header row, and
// Apache Parquet. Tab-separated catalogs may be compressed; the codec is
// chosen from the file extension.
//
// # Basic Usage
//
// Loading a single catalog:
//
//	cat, err := reader.Load("songs.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cat.Len())
//
// # Multi-file Operations
//
// Loading several catalog files with a glob pattern:
//
//	cat, err := reader.Load("data/*.tsv.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Records are numbered across every matched file in match order, so the
// first record of the second file continues after the last of the first.
//
// # Supported Extensions
//
//   - .tsv, .txt: tab-separated text
//   - .tsv.gz, .tsv.zst, .tsv.lz4: compressed tab-separated text
//   - .parquet: Parquet with one column per song property
//
// # Query Files
//
//	text, err := reader.ReadQueryFile("queries.txt")
//	if err != nil {
//	    // advisory: proceed with no queries
//	}
//
// The package uses github.com/segmentio/parquet-go for parquet files,
// github.com/klauspost/compress for gzip and zstd, and
// github.com/pierrec/lz4/v4 for lz4.
package reader
