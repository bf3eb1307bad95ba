package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/vegasq/songcat/internal/catalog"
	"github.com/vegasq/songcat/internal/logging"
	"github.com/vegasq/songcat/internal/output"
	"github.com/vegasq/songcat/internal/query"
	"github.com/vegasq/songcat/internal/reader"
)

var (
	catalogFlag = flag.String("catalog", "songs.tsv", "Song catalog (.tsv, .tsv.gz, .tsv.zst, .tsv.lz4, .parquet or a glob)")
	queriesFlag = flag.String("queries", "queries.txt", "Query file (e.g. \"select songs where tempo > 120 and energy < 0.5\")")
	formatFlag  = flag.String("f", "table", "Output format: table, jsonl, csv")
	limitFlag   = flag.Int("limit", 5, "Rows printed per query (0 = unlimited)")
	statsFlag   = flag.String("stats", "tempo,energy", "Comma-separated numeric fields summarised for each query result")
	quietFlag   = flag.Bool("quiet", false, "Suppress query diagnostics")
	whereFlag   = flag.String("where", "", "Restrict the catalog to one name, artist or album before querying (e.g. \"artist=Neon Coast\")")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [<catalog> [<queries>]]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Runs song queries against a catalog and prints each result separately.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s songs.tsv queries.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv -limit 0 songs.parquet queries.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -stats tempo,loudness -catalog 'data/*.tsv.gz'\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -where 'album=Harbour' songs.tsv queries.txt\n", os.Args[0])
	}

	flag.Parse()

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	catalogPath, queriesPath := *catalogFlag, *queriesFlag
	if flag.NArg() >= 1 {
		catalogPath = flag.Arg(0)
	}
	if flag.NArg() >= 2 {
		queriesPath = flag.Arg(1)
	}

	statsFields, err := catalog.ParseNumericFields(strings.Split(*statsFlag, ","))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -stats: %v\n", err)
		fmt.Fprintf(os.Stderr, "Numeric fields: %s\n", fieldNames())
		os.Exit(1)
	}

	formatter, err := output.New(*formatFlag, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr)

	cat, err := reader.Load(catalogPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: catalog '%s' not found\n", catalogPath)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	_ = level.Info(logger).Log("msg", "loaded catalog", "path", catalogPath, "songs", cat.Len())

	if *whereFlag != "" {
		cat, err = filterCatalog(cat, *whereFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: -where: %v\n", err)
			os.Exit(1)
		}
		_ = level.Info(logger).Log("msg", "filtered catalog", "where", *whereFlag, "songs", cat.Len())
	}

	queries := loadQueries(queriesPath, logger, *quietFlag)

	if err := run(formatter, cat, queries, statsFields, *limitFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// loadQueries reads and parses the query file. Every failure here is
// advisory and results in an empty QuerySet.
func loadQueries(path string, logger log.Logger, quiet bool) query.QuerySet {
	text, err := reader.ReadQueryFile(path)
	if err != nil {
		_ = level.Warn(logger).Log("msg", "no queries will be executed", "err", err)
		return query.QuerySet{}
	}
	if strings.TrimSpace(text) == "" {
		_ = level.Warn(logger).Log("msg", "query file is empty, no queries will be executed", "path", path)
		return query.QuerySet{}
	}

	parserLogger := logger
	if quiet {
		parserLogger = log.NewNopLogger()
	}
	return query.NewParser(parserLogger).Parse(text)
}

// run prints the catalog summary followed by each query's matches and
// statistics, one query at a time.
func run(formatter output.Formatter, cat *catalog.Catalog, queries query.QuerySet, statsFields []catalog.NumericField, limit int) error {
	if err := formatter.Format(output.SummaryTable(cat, len(queries))); err != nil {
		return err
	}

	first := limit
	if first == 0 {
		first = cat.Len()
	}
	if err := formatter.Format(output.RecordTable(fmt.Sprintf("first %d songs", first), cat.First(first))); err != nil {
		return err
	}

	for _, res := range query.Run(queries, cat.Records()) {
		name := res.Query.String()

		shown := res.Records
		if limit > 0 && len(shown) > limit {
			shown = shown[:limit]
		}
		if err := formatter.Format(output.RecordTable(fmt.Sprintf("%s (%d matches)", name, len(res.Records)), shown)); err != nil {
			return err
		}

		if len(statsFields) == 0 {
			continue
		}
		stats, err := output.StatsTable(name+" statistics", statsFields, res.Records)
		if err != nil {
			return err
		}
		if err := formatter.Format(stats); err != nil {
			return err
		}
	}

	return nil
}

// filterCatalog keeps the songs whose descriptive field equals the value in a
// "field=value" expression, ignoring case. Identities are preserved.
func filterCatalog(cat *catalog.Catalog, expr string) (*catalog.Catalog, error) {
	name, value, ok := strings.Cut(expr, "=")
	if !ok {
		return nil, fmt.Errorf("expected field=value, got %q", expr)
	}
	field, ok := catalog.LookupDetailField(strings.TrimSpace(name))
	if !ok {
		return nil, fmt.Errorf("%w: %s (want name, artist or album)", catalog.ErrUnknownField, strings.TrimSpace(name))
	}
	return catalog.New(catalog.FilterByDetail(cat.Records(), field, strings.TrimSpace(value))), nil
}

func fieldNames() string {
	var names []string
	for _, f := range catalog.NumericFields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
