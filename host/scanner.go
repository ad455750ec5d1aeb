package host

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = -1

// scanner splits expression source into tokens. Whitespace and '#' line
// comments separate tokens and are dropped.
type scanner struct {
	src  string
	off  int
	line int
	col  int
}

func tokenize(src string) ([]token, error) {
	s := &scanner{src: src, line: 1, col: 1}
	var toks []token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (s *scanner) peek() rune {
	if s.off >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off:])
	return r
}

// peekSecond returns the rune after peek().
func (s *scanner) peekSecond() rune {
	if s.off >= len(s.src) {
		return eof
	}
	_, w := utf8.DecodeRuneInString(s.src[s.off:])
	if s.off+w >= len(s.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.off+w:])
	return r
}

func (s *scanner) advance() rune {
	if s.off >= len(s.src) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.src[s.off:])
	s.off += w
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

func (s *scanner) here() Position { return Position{Line: s.line, Column: s.col} }

func (s *scanner) next() (token, error) {
	s.skipBlank()
	pos := s.here()
	r := s.peek()
	switch {
	case r == eof:
		return token{kind: tokEOF, pos: pos}, nil
	case r == '"':
		text, err := s.scanString(pos)
		return token{kind: tokString, text: text, pos: pos}, err
	case r == ':' && isIdentStart(s.peekSecond()):
		s.advance()
		return token{kind: tokSymbol, text: s.scanWord(), pos: pos}, nil
	case isIdentStart(r):
		word := s.scanWord()
		kind, ok := keywords[word]
		if !ok {
			kind = tokIdent
		}
		return token{kind: kind, text: word, pos: pos}, nil
	case unicode.IsDigit(r):
		return s.scanNumber(pos), nil
	}
	if kind, ok := punctuation[r]; ok {
		s.advance()
		return token{kind: kind, text: string(r), pos: pos}, nil
	}
	return token{}, &parseError{pos: pos, msg: fmt.Sprintf("unexpected character %q", r)}
}

func (s *scanner) skipBlank() {
	for {
		switch r := s.peek(); {
		case r == '#':
			for r := s.peek(); r != eof && r != '\n'; r = s.peek() {
				s.advance()
			}
		case r != eof && unicode.IsSpace(r):
			s.advance()
		default:
			return
		}
	}
}

func (s *scanner) scanWord() string {
	start := s.off
	for isIdentPart(s.peek()) {
		s.advance()
	}
	return s.src[start:s.off]
}

// scanNumber reads digits with optional '_' separators and at most one
// fractional part. A '.' not followed by a digit is left for member access.
func (s *scanner) scanNumber(pos Position) token {
	var b strings.Builder
	kind := tokInt
	for {
		r := s.peek()
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(s.advance())
		case r == '_':
			s.advance()
		case r == '.' && kind == tokInt && unicode.IsDigit(s.peekSecond()):
			kind = tokFloat
			b.WriteRune(s.advance())
		default:
			return token{kind: kind, text: b.String(), pos: pos}
		}
	}
}

func (s *scanner) scanString(pos Position) (string, error) {
	s.advance()
	var b strings.Builder
	for {
		r := s.advance()
		switch r {
		case eof:
			return "", &parseError{pos: pos, msg: "unterminated string"}
		case '"':
			return b.String(), nil
		case '\\':
			switch esc := s.advance(); esc {
			case eof:
				return "", &parseError{pos: pos, msg: "unterminated string"}
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteRune(esc)
			}
		default:
			b.WriteRune(r)
		}
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
