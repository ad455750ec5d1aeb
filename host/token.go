package host

import "strconv"

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokString
	tokSymbol
	tokTrue
	tokFalse
	tokNil
	tokMinus
	tokComma
	tokColon
	tokDot
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
)

var tokenKindNames = [...]string{
	tokEOF:      "end of input",
	tokIdent:    "identifier",
	tokInt:      "integer",
	tokFloat:    "float",
	tokString:   "string",
	tokSymbol:   "symbol",
	tokTrue:     "true",
	tokFalse:    "false",
	tokNil:      "nil",
	tokMinus:    "'-'",
	tokComma:    "','",
	tokColon:    "':'",
	tokDot:      "'.'",
	tokLParen:   "'('",
	tokRParen:   "')'",
	tokLBracket: "'['",
	tokRBracket: "']'",
}

func (k tokenKind) String() string { return tokenKindNames[k] }

var punctuation = map[rune]tokenKind{
	'-': tokMinus,
	',': tokComma,
	':': tokColon,
	'.': tokDot,
	'(': tokLParen,
	')': tokRParen,
	'[': tokLBracket,
	']': tokRBracket,
}

var keywords = map[string]tokenKind{
	"true":  tokTrue,
	"false": tokFalse,
	"nil":   tokNil,
}

type token struct {
	kind tokenKind
	text string
	pos  Position
}

func (t token) describe() string {
	switch t.kind {
	case tokIdent, tokInt, tokFloat:
		return strconv.Quote(t.text)
	case tokString:
		return "string " + strconv.Quote(t.text)
	case tokSymbol:
		return ":" + t.text
	default:
		return t.kind.String()
	}
}

// Position is a 1-based line and column in expression source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
