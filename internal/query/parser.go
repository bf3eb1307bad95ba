package query

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/vegasq/songcat/internal/catalog"
	"github.com/vegasq/songcat/internal/logging"
)

const (
	// blockSeparator starts every query block
	blockSeparator = "select songs where"

	// clauseSeparator joins the clauses of one block
	clauseSeparator = "and"
)

var blockSeparatorTokens = strings.Fields(blockSeparator)

// Diagnostic describes one clause the parser rejected
type Diagnostic struct {
	Block  int    // 1-based block index within the input
	Clause string // clause text as written, lower-cased
	Err    error
}

// Error implements error
func (d Diagnostic) Error() string {
	return fmt.Sprintf("block %d: %q: %v", d.Block, d.Clause, d.Err)
}

// Parser turns query text into a QuerySet.
//
// Rejected clauses are logged and recorded as diagnostics; they never stop
// later blocks from being parsed. A Parser is not safe for concurrent use.
type Parser struct {
	logger      log.Logger
	diagnostics []Diagnostic
}

// NewParser creates a parser that reports diagnostics to logger.
// A nil logger discards them.
func NewParser(logger log.Logger) *Parser {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Parser{logger: logger}
}

// Parse parses query text using a parser that logs to stderr with the same
// timestamped logfmt lines as the CLI.
func Parse(text string) QuerySet {
	return NewParser(logging.New(os.Stderr)).Parse(text)
}

// Diagnostics returns every diagnostic reported since the parser was created
func (p *Parser) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(p.diagnostics))
	copy(out, p.diagnostics)
	return out
}

// Parse tokenizes text and builds one Query per well-formed block.
//
// Parse never fails: malformed blocks are dropped (or truncated, for an
// invalid operator) and reported as diagnostics.
func (p *Parser) Parse(text string) QuerySet {
	if err := ValidateQuery(text); err != nil {
		p.report(Diagnostic{Err: err})
		return QuerySet{}
	}

	tokens := Tokenize(text)
	if err := ValidateTokens(tokens); err != nil {
		p.report(Diagnostic{Err: err})
		return QuerySet{}
	}

	return p.BuildQueries(tokens)
}

// BuildQueries builds queries from an already tokenized input
func (p *Parser) BuildQueries(tokens []string) QuerySet {
	queries := QuerySet{}
	for i, block := range splitBlocks(tokens) {
		if q, ok := p.parseBlock(i+1, block); ok {
			queries = append(queries, q)
		}
	}
	return queries
}

// parseBlock builds the query for one block. It reports false when no
// predicate survived.
func (p *Parser) parseBlock(index int, block []string) (Query, bool) {
	var predicates []Predicate

	for _, clause := range splitClauses(block) {
		pred, err := parseClause(clause)
		if err == nil {
			predicates = append(predicates, pred)
			continue
		}

		p.report(Diagnostic{Block: index, Clause: strings.Join(clause, " "), Err: err})

		// An invalid operator only truncates the block, keeping the
		// predicates parsed so far. Every other clause error discards the
		// whole block. The two policies differ on purpose and must stay so.
		if !errors.Is(err, ErrInvalidOperator) {
			predicates = nil
		}
		break
	}

	if len(predicates) == 0 {
		return Query{}, false
	}
	return Query{Predicates: predicates}, true
}

// parseClause validates one <field> <op> <value> clause.
// Checks run in order: shape, field, operator, value.
func parseClause(clause []string) (Predicate, error) {
	if len(clause) != 3 {
		return Predicate{}, fmt.Errorf("%w: expected 3 tokens, got %d", ErrMalformedClause, len(clause))
	}

	field, ok := catalog.LookupNumericField(clause[0])
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %s", ErrUnknownField, clause[0])
	}

	op, ok := ParseOperator(clause[1])
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %s", ErrInvalidOperator, clause[1])
	}

	value, err := ParseNumericLiteral(clause[2])
	if err != nil {
		return Predicate{}, err
	}

	return Predicate{Field: field, Operator: op, Value: value}, nil
}

// splitBlocks cuts the token stream at every "select songs where" phrase.
// Empty leading and trailing segments are dropped; empty segments between two
// separators are kept so they are reported as malformed.
func splitBlocks(tokens []string) [][]string {
	var blocks [][]string
	current := []string{}

	for i := 0; i < len(tokens); {
		if isBlockSeparator(tokens[i:]) {
			blocks = append(blocks, current)
			current = []string{}
			i += len(blockSeparatorTokens)
			continue
		}
		current = append(current, tokens[i])
		i++
	}
	blocks = append(blocks, current)

	if len(blocks) > 0 && len(blocks[0]) == 0 {
		blocks = blocks[1:]
	}
	for len(blocks) > 0 && len(blocks[len(blocks)-1]) == 0 {
		blocks = blocks[:len(blocks)-1]
	}
	return blocks
}

func isBlockSeparator(tokens []string) bool {
	if len(tokens) < len(blockSeparatorTokens) {
		return false
	}
	for i, t := range blockSeparatorTokens {
		if tokens[i] != t {
			return false
		}
	}
	return true
}

// splitClauses cuts a block at every standalone "and" token
func splitClauses(block []string) [][]string {
	clauses := [][]string{}
	current := []string{}
	for _, tok := range block {
		if tok == clauseSeparator {
			clauses = append(clauses, current)
			current = []string{}
			continue
		}
		current = append(current, tok)
	}
	return append(clauses, current)
}

func (p *Parser) report(d Diagnostic) {
	p.diagnostics = append(p.diagnostics, d)
	if d.Block == 0 {
		_ = level.Warn(p.logger).Log("msg", "query input rejected", "err", d.Err)
		return
	}
	_ = level.Warn(p.logger).Log("msg", "malformed query", "block", d.Block, "clause", d.Clause, "err", d.Err)
}
