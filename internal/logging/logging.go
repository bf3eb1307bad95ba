// Package logging builds the logfmt logger shared by the CLI and the query
// parser, so diagnostics carry the same context whatever the entry point.
package logging

import (
	"io"

	"github.com/go-kit/log"
)

// New returns a goroutine-safe logfmt logger writing to w, stamping every
// line with a UTC timestamp under "ts".
func New(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}
