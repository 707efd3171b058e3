// Package parser turns tinylang source into an AST. Matching is done by a
// participle grammar over the structs in grammar.go; lower.go then folds
// that concrete tree into ast nodes.
package parser

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"

	"tinylang/internal/ast"
	tlexer "tinylang/internal/lexer"
)

var grammar = participle.MustBuild[program](participle.Lexer(tlexer.MustNew()))

// Grammar returns the EBNF form of the grammar.
func Grammar() string {
	return grammar.String()
}

// Option configures a Parser.
type Option func(*Parser)

// MaxSourceBytes rejects sources longer than n bytes. Zero disables the check.
func MaxSourceBytes(n int) Option {
	return func(p *Parser) {
		p.maxSourceBytes = n
	}
}

// Parser holds parse options. The zero value is ready to use and a Parser
// may be shared between goroutines.
type Parser struct {
	maxSourceBytes int
}

func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses source with default options.
func Parse(source string) (*ast.Program, error) {
	return New().Parse("", source)
}

// Parse parses source. filename is only used in positions. The returned error
// implements Error.
func (p *Parser) Parse(filename, source string) (*ast.Program, error) {
	if p.maxSourceBytes > 0 && len(source) > p.maxSourceBytes {
		return nil, &SourceTooLargeError{Filename: filename, Size: len(source), Limit: p.maxSourceBytes}
	}

	tree, err := grammar.ParseString(filename, source)
	if err != nil {
		return nil, classify(filename, source, err)
	}
	return lower(tree)
}

// classify maps a participle failure onto our error kinds. A failure sitting on
// the first token after one or more complete statements means the program
// itself matched and the rest is trailing input.
func classify(filename, source string, err error) error {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return err
	}
	pos := positionOf(perr.Position())
	found, invalid := foundToken(err, source, pos.Offset)

	if !invalid && pos.Offset == nextStatementOffset(filename, source) {
		return &TrailingInputError{Found: found, Pos: pos}
	}
	return &UnexpectedTokenError{Expected: expectation(perr.Message()), Found: found, Pos: pos}
}

func foundToken(err error, source string, offset int) (found string, invalid bool) {
	var ute *participle.UnexpectedTokenError
	if errors.As(err, &ute) {
		if ute.Unexpected.EOF() {
			return EndOfInput, false
		}
		return ute.Unexpected.Value, ute.Unexpected.Type == tlexer.Invalid
	}
	if offset >= len(source) {
		return EndOfInput, false
	}
	return source[offset : offset+1], false
}

// ruleTerms renames the grammar structs participle mentions in its messages.
// Longer names come first so Terminator is not read as Term.
var ruleTerms = strings.NewReplacer(
	"Terminator", `";"`,
	"TermSuffix", `"+" | "-"`,
	"FactorSuffix", `"*" | "/"`,
	"Statement", "statement",
	"Assignment", "assignment",
	"Expression", "expression",
	"Term", "term",
	"Factor", "factor",
)

// expectation extracts the "(expected ...)" part of a participle message.
func expectation(msg string) string {
	_, rest, ok := strings.Cut(msg, "(expected ")
	if !ok {
		return ""
	}
	return ruleTerms.Replace(strings.TrimSuffix(rest, ")"))
}

// nextStatementOffset returns the offset of the first token after the longest
// run of complete statements, or -1 if there is no such run.
func nextStatementOffset(filename, source string) int {
	prefix, err := grammar.ParseString(filename, source, participle.AllowTrailing(true))
	if err != nil || len(prefix.Statements) == 0 {
		return -1
	}
	last := prefix.Statements[len(prefix.Statements)-1]
	offset := last.End.Pos.Offset + len(last.End.Semicolon)
	for offset < len(source) && tlexer.IsSpace(source[offset]) {
		offset++
	}
	return offset
}
