// Package lexer tokenizes tinylang source with a lexmachine DFA and exposes
// it to participle as a lexer.Definition.
package lexer

import (
	"io"
	"sort"
	"unicode/utf8"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types. EOF is participle's plexer.EOF.
const (
	Ident plexer.TokenType = iota + 1
	Int
	Punct
	Invalid
)

var symbols = map[string]plexer.TokenType{
	"EOF":     plexer.EOF,
	"Ident":   Ident,
	"Int":     Int,
	"Punct":   Punct,
	"Invalid": Invalid,
}

// Definition holds the compiled DFA. It is read-only after New and may be
// shared by concurrent parses.
type Definition struct {
	dfa *lexmachine.Lexer
}

var _ plexer.Definition = (*Definition)(nil)

// New compiles the token rules.
func New() (*Definition, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[ \t\r\n]+`), skip)
	l.Add([]byte(`[a-z_]+`), emit(Ident))
	l.Add([]byte(`[0-9]+`), emit(Int))
	l.Add([]byte(`[+]`), emit(Punct))
	l.Add([]byte(`-`), emit(Punct))
	l.Add([]byte(`[*]`), emit(Punct))
	l.Add([]byte(`/`), emit(Punct))
	l.Add([]byte(`=`), emit(Punct))
	l.Add([]byte(`[(]`), emit(Punct))
	l.Add([]byte(`[)]`), emit(Punct))
	l.Add([]byte(`;`), emit(Punct))

	if err := l.Compile(); err != nil {
		return nil, err
	}
	return &Definition{dfa: l}, nil
}

// MustNew is New that panics on error.
func MustNew() *Definition {
	d, err := New()
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Definition) Symbols() map[string]plexer.TokenType {
	return symbols
}

func (d *Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, data)
}

func (d *Definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

func (d *Definition) LexBytes(filename string, input []byte) (plexer.Lexer, error) {
	scanner, err := d.dfa.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &Lexer{
		filename:   filename,
		input:      input,
		scanner:    scanner,
		lineStarts: lineStarts(input),
	}, nil
}

// Lexer produces the tokens of one input.
type Lexer struct {
	filename   string
	input      []byte
	scanner    *lexmachine.Scanner
	lineStarts []int
}

// Next returns the next token. Unmatched characters come back one rune at a
// time as Invalid tokens so the parser can report them.
func (l *Lexer) Next() (plexer.Token, error) {
	tok, err, eof := l.scanner.Next()
	if eof {
		return plexer.Token{Type: plexer.EOF, Pos: l.position(len(l.input))}, nil
	}
	if ui, ok := err.(*machines.UnconsumedInput); ok {
		start := ui.StartTC
		_, size := utf8.DecodeRune(l.input[start:])
		l.scanner.TC = start + size
		return plexer.Token{
			Type:  Invalid,
			Value: string(l.input[start : start+size]),
			Pos:   l.position(start),
		}, nil
	}
	if err != nil {
		return plexer.Token{}, err
	}

	lx := tok.(lexeme)
	return plexer.Token{Type: lx.typ, Value: lx.value, Pos: l.position(lx.offset)}, nil
}

// position converts a byte offset into a 1-based line and rune column.
func (l *Lexer) position(offset int) plexer.Position {
	line := sort.Search(len(l.lineStarts), func(i int) bool { return l.lineStarts[i] > offset })
	start := l.lineStarts[line-1]
	return plexer.Position{
		Filename: l.filename,
		Offset:   offset,
		Line:     line,
		Column:   utf8.RuneCount(l.input[start:offset]) + 1,
	}
}

type lexeme struct {
	typ    plexer.TokenType
	value  string
	offset int
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func emit(typ plexer.TokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return lexeme{typ: typ, value: string(m.Bytes), offset: m.TC}, nil
	}
}

func lineStarts(input []byte) []int {
	starts := []int{0}
	for i, b := range input {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// IsSpace reports whether b is skipped between tokens.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
