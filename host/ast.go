package host

// Expression is a parsed node of the call-expression language. Nodes
// evaluate themselves against an evalContext.
type Expression interface {
	Pos() Position
	eval(ctx *evalContext) (Value, error)
}

// constExpr is any literal whose value is known at parse time. Strings,
// numbers, symbols, booleans and nil are immutable so one Value serves
// every evaluation.
type constExpr struct {
	at    Position
	value Value
}

type nameExpr struct {
	at   Position
	name string
}

type listExpr struct {
	at    Position
	items []Expression
}

type attrExpr struct {
	at    Position
	owner Expression
	name  string
}

type indexExpr struct {
	at    Position
	owner Expression
	key   Expression
}

type callExpr struct {
	at      Position
	fn      Expression
	args    []Expression
	kwNames []string
	kwVals  []Expression
}

func (e *constExpr) Pos() Position { return e.at }
func (e *nameExpr) Pos() Position  { return e.at }
func (e *listExpr) Pos() Position  { return e.at }
func (e *attrExpr) Pos() Position  { return e.at }
func (e *indexExpr) Pos() Position { return e.at }
func (e *callExpr) Pos() Position  { return e.at }

func (c *callExpr) hasKeyword(name string) bool {
	for _, n := range c.kwNames {
		if n == name {
			return true
		}
	}
	return false
}
