package host

import (
	"fmt"
	"strconv"
)

type parseError struct {
	pos Position
	msg string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.pos, e.msg)
}

// parser is a recursive descent parser over a fully scanned token slice.
// The slice always ends with tokEOF.
type parser struct {
	toks []token
	at   int
}

// Parse parses a single expression.
func Parse(src string) (Expression, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	if first := p.peek(); first.kind == tokEOF {
		return nil, p.fail(first, "empty expression")
	}
	expr, err := p.postfix()
	if err != nil {
		return nil, err
	}
	if rest := p.peek(); rest.kind != tokEOF {
		return nil, p.fail(rest, "unexpected %s after expression", rest.describe())
	}
	return expr, nil
}

func (p *parser) peek() token { return p.toks[p.at] }

// lookahead returns the token n places past the current one, clamped to EOF.
func (p *parser) lookahead(n int) token {
	if i := p.at + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) take() token {
	tok := p.toks[p.at]
	if tok.kind != tokEOF {
		p.at++
	}
	return tok
}

func (p *parser) accept(kind tokenKind) bool {
	if p.peek().kind != kind {
		return false
	}
	p.at++
	return true
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return tok, p.fail(tok, "expected %s, got %s", kind, tok.describe())
	}
	p.at++
	return tok, nil
}

func (p *parser) fail(at token, format string, args ...any) error {
	return &parseError{pos: at.pos, msg: fmt.Sprintf(format, args...)}
}

// postfix parses an operand followed by any chain of .name, (args) and [key].
func (p *parser) postfix() (Expression, error) {
	expr, err := p.operand()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch tok.kind {
		case tokDot:
			p.take()
			name, err := p.expect(tokIdent)
			if err != nil {
				return nil, err
			}
			expr = &attrExpr{at: name.pos, owner: expr, name: name.text}
		case tokLParen:
			p.take()
			if expr, err = p.callArgs(expr); err != nil {
				return nil, err
			}
		case tokLBracket:
			p.take()
			key, err := p.postfix()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRBracket); err != nil {
				return nil, err
			}
			expr = &indexExpr{at: tok.pos, owner: expr, key: key}
		default:
			return expr, nil
		}
	}
}

func (p *parser) operand() (Expression, error) {
	tok := p.take()
	switch tok.kind {
	case tokIdent:
		return &nameExpr{at: tok.pos, name: tok.text}, nil
	case tokInt, tokFloat:
		return p.number(tok, "")
	case tokMinus:
		num := p.take()
		if num.kind != tokInt && num.kind != tokFloat {
			return nil, p.fail(num, "expected number after '-'")
		}
		return p.number(num, "-")
	case tokString:
		return &constExpr{at: tok.pos, value: NewString(tok.text)}, nil
	case tokSymbol:
		return &constExpr{at: tok.pos, value: NewSymbol(tok.text)}, nil
	case tokTrue, tokFalse:
		return &constExpr{at: tok.pos, value: NewBool(tok.kind == tokTrue)}, nil
	case tokNil:
		return &constExpr{at: tok.pos, value: NewNil()}, nil
	case tokLParen:
		inner, err := p.postfix()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case tokLBracket:
		return p.list(tok)
	}
	return nil, p.fail(tok, "unexpected %s", tok.describe())
}

func (p *parser) number(tok token, sign string) (Expression, error) {
	text := sign + tok.text
	if tok.kind == tokFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, p.fail(tok, "invalid float %s", text)
		}
		return &constExpr{at: tok.pos, value: NewFloat(f)}, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, p.fail(tok, "invalid integer %s", text)
	}
	return &constExpr{at: tok.pos, value: NewInt(n)}, nil
}

func (p *parser) list(open token) (Expression, error) {
	list := &listExpr{at: open.pos}
	if p.accept(tokRBracket) {
		return list, nil
	}
	for {
		item, err := p.postfix()
		if err != nil {
			return nil, err
		}
		list.items = append(list.items, item)
		if !p.accept(tokComma) {
			break
		}
	}
	if _, err := p.expect(tokRBracket); err != nil {
		return nil, err
	}
	return list, nil
}

// callArgs parses the argument list after '('. Keyword arguments are
// written name: value and may not be followed by positional ones.
func (p *parser) callArgs(fn Expression) (Expression, error) {
	call := &callExpr{at: fn.Pos(), fn: fn}
	if p.accept(tokRParen) {
		return call, nil
	}
	for {
		start := p.peek()
		if start.kind == tokIdent && p.lookahead(1).kind == tokColon {
			p.at += 2
			if next := p.peek(); next.kind == tokComma || next.kind == tokRParen {
				return nil, p.fail(next, "missing value for keyword argument %s", start.text)
			}
			if call.hasKeyword(start.text) {
				return nil, p.fail(start, "duplicate keyword argument %s", start.text)
			}
			val, err := p.postfix()
			if err != nil {
				return nil, err
			}
			call.kwNames = append(call.kwNames, start.text)
			call.kwVals = append(call.kwVals, val)
		} else {
			if len(call.kwNames) > 0 {
				return nil, p.fail(start, "positional argument follows keyword argument")
			}
			arg, err := p.postfix()
			if err != nil {
				return nil, err
			}
			call.args = append(call.args, arg)
		}
		if !p.accept(tokComma) {
			break
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return call, nil
}
