package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Position locates a diagnostic in the source.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func positionOf(p lexer.Position) Position {
	return Position{Filename: p.Filename, Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// Error is implemented by every error Parse returns. Message is the error
// text without the position prefix.
type Error interface {
	error
	Position() Position
	Message() string
}

// EndOfInput is reported as Found when the input ran out.
const EndOfInput = "end of input"

// UnexpectedTokenError is returned at the first token no grammar alternative
// accepts.
type UnexpectedTokenError struct {
	Expected string
	Found    string
	Pos      Position
}

func (e *UnexpectedTokenError) Error() string { return e.Pos.String() + ": " + e.Message() }

func (e *UnexpectedTokenError) Message() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected %s", quoteFound(e.Found))
	}
	return fmt.Sprintf("unexpected %s, expected %s", quoteFound(e.Found), e.Expected)
}

func (e *UnexpectedTokenError) Position() Position { return e.Pos }

// TrailingInputError is returned when a complete program is followed by
// input that cannot start a statement.
type TrailingInputError struct {
	Found string
	Pos   Position
}

func (e *TrailingInputError) Error() string { return e.Pos.String() + ": " + e.Message() }

func (e *TrailingInputError) Message() string {
	return fmt.Sprintf("trailing input starting at %s", quoteFound(e.Found))
}

func (e *TrailingInputError) Position() Position { return e.Pos }

// LiteralOverflowError is returned for a number literal that does not fit in
// a signed 64-bit integer.
type LiteralOverflowError struct {
	Literal string
	Pos     Position
}

func (e *LiteralOverflowError) Error() string { return e.Pos.String() + ": " + e.Message() }

func (e *LiteralOverflowError) Message() string {
	return fmt.Sprintf("integer literal %s overflows int64", e.Literal)
}

func (e *LiteralOverflowError) Position() Position { return e.Pos }

// SourceTooLargeError is returned when the source exceeds the configured
// size limit.
type SourceTooLargeError struct {
	Filename string
	Size     int
	Limit    int
}

func (e *SourceTooLargeError) Error() string { return e.Position().String() + ": " + e.Message() }

func (e *SourceTooLargeError) Message() string {
	return fmt.Sprintf("source is %d bytes, limit is %d", e.Size, e.Limit)
}

func (e *SourceTooLargeError) Position() Position { return Position{Filename: e.Filename, Line: 1, Column: 1} }

func quoteFound(found string) string {
	if found == EndOfInput {
		return found
	}
	return fmt.Sprintf("%q", found)
}
