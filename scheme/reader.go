package scheme

import (
	"io"
	"strings"
)

// Reader is a recursive-descent parser producing a Value tree from a
// Tokenizer's token stream.
type Reader struct {
	tok *Tokenizer
}

// NewReader returns a Reader over rd.
func NewReader(rd io.RuneReader) (*Reader, error) {
	tok, err := NewTokenizer(rd)
	if err != nil {
		return nil, err
	}
	return &Reader{tok: tok}, nil
}

// ReadString parses exactly one top-level expression from s and
// requires end-of-stream thereafter.
func ReadString(s string) (*Value, error) {
	r, err := NewReader(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return r.Read()
}

// Read reads exactly one expression and requires the stream to be
// exhausted afterward; an empty input is a RuntimeError, a malformed
// or trailing expression is a SyntaxError.
func (r *Reader) Read() (*Value, error) {
	if r.tok.AtEnd() {
		return nil, runtimeErrorf("empty input: nothing to evaluate")
	}
	expr, err := r.readExpr()
	if err != nil {
		return nil, err
	}
	if !r.tok.AtEnd() {
		return nil, syntaxErrorf("unexpected trailing input after expression")
	}
	return expr, nil
}

// readExpr reads one expression under the current token.
func (r *Reader) readExpr() (*Value, error) {
	if r.tok.AtEnd() {
		return nil, syntaxErrorf("unexpected end of input")
	}
	tok := r.tok.Current()
	switch tok.Type {
	case TokOpen:
		if err := r.tok.Advance(); err != nil {
			return nil, err
		}
		return r.readList()
	case TokQuote:
		if err := r.tok.Advance(); err != nil {
			return nil, err
		}
		quoted, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		return Cons(Sym("quote"), Cons(quoted, Empty)), nil
	case TokSymbol:
		if err := r.tok.Advance(); err != nil {
			return nil, err
		}
		return Sym(tok.Text), nil
	case TokInteger:
		if err := r.tok.Advance(); err != nil {
			return nil, err
		}
		return Int(tok.Integer), nil
	case TokClose:
		return nil, syntaxErrorf("unexpected )")
	case TokDot:
		return nil, syntaxErrorf("unexpected . outside a list")
	default:
		return nil, syntaxErrorf("unexpected token")
	}
}

// readList reads list elements until a matching close-bracket,
// handling a dotted tail. The opening bracket has already been
// consumed.
func (r *Reader) readList() (*Value, error) {
	if r.tok.AtEnd() {
		return nil, syntaxErrorf("unterminated list")
	}
	if r.tok.Current().Type == TokClose {
		if err := r.tok.Advance(); err != nil {
			return nil, err
		}
		return Empty, nil
	}
	if r.tok.Current().Type == TokDot {
		return nil, syntaxErrorf("unexpected . at start of list")
	}
	head, err := r.readExpr()
	if err != nil {
		return nil, err
	}
	if r.tok.AtEnd() {
		return nil, syntaxErrorf("unterminated list")
	}
	if r.tok.Current().Type == TokDot {
		if err := r.tok.Advance(); err != nil {
			return nil, err
		}
		tail, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		if r.tok.AtEnd() || r.tok.Current().Type != TokClose {
			return nil, syntaxErrorf("expected ) after dotted tail")
		}
		if err := r.tok.Advance(); err != nil {
			return nil, err
		}
		return Cons(head, tail), nil
	}
	rest, err := r.readList()
	if err != nil {
		return nil, err
	}
	return Cons(head, rest), nil
}
