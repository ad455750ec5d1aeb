package host

// Eval parses src as a single expression and evaluates it. Identifiers
// resolve against scope. Parse failures raise SyntaxError.
func Eval(rt *Runtime, scope map[string]Value, src string) (Value, error) {
	expr, err := Parse(src)
	if err != nil {
		return NewNil(), Wrap(SyntaxError, err, "%s", err.Error())
	}
	return EvalExpression(rt, scope, expr)
}

// EvalExpression evaluates a parsed expression.
func EvalExpression(rt *Runtime, scope map[string]Value, expr Expression) (Value, error) {
	return expr.eval(&evalContext{rt: rt, scope: scope})
}

type evalContext struct {
	rt    *Runtime
	scope map[string]Value
}

// all evaluates exprs left to right, stopping at the first raise.
func (ctx *evalContext) all(exprs []Expression) ([]Value, error) {
	out := make([]Value, len(exprs))
	for i, e := range exprs {
		v, err := e.eval(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *constExpr) eval(*evalContext) (Value, error) { return e.value, nil }

func (e *nameExpr) eval(ctx *evalContext) (Value, error) {
	if v, ok := ctx.scope[e.name]; ok {
		return v, nil
	}
	return NewNil(), Raise(NameError, "name '%s' is not defined", e.name)
}

func (e *listExpr) eval(ctx *evalContext) (Value, error) {
	items, err := ctx.all(e.items)
	if err != nil {
		return NewNil(), err
	}
	return NewList(items), nil
}

func (e *attrExpr) eval(ctx *evalContext) (Value, error) {
	owner, err := e.owner.eval(ctx)
	if err != nil {
		return NewNil(), err
	}
	return ctx.rt.GetAttr(owner, e.name)
}

func (e *indexExpr) eval(ctx *evalContext) (Value, error) {
	pair, err := ctx.all([]Expression{e.owner, e.key})
	if err != nil {
		return NewNil(), err
	}
	return index(pair[0], pair[1])
}

func (e *callExpr) eval(ctx *evalContext) (Value, error) {
	fn, err := e.fn.eval(ctx)
	if err != nil {
		return NewNil(), err
	}
	args, err := ctx.all(e.args)
	if err != nil {
		return NewNil(), err
	}
	var kwargs map[string]Value
	if len(e.kwNames) > 0 {
		vals, err := ctx.all(e.kwVals)
		if err != nil {
			return NewNil(), err
		}
		kwargs = make(map[string]Value, len(vals))
		for i, name := range e.kwNames {
			kwargs[name] = vals[i]
		}
	}
	return ctx.rt.Call(fn, args, kwargs)
}

// index supports tuple and list subscripts with negative indices counting
// from the end.
func index(seq, key Value) (Value, error) {
	var items []Value
	switch seq.Kind() {
	case KindTuple:
		items = seq.Tuple()
	case KindList:
		items = seq.List().Items
	default:
		return NewNil(), Raise(TypeError, "'%s' object is not subscriptable", seq.TypeName())
	}
	if key.Kind() != KindInt {
		return NewNil(), Raise(TypeError, "indices must be integers, not %s", key.TypeName())
	}
	n := int64(len(items))
	i := key.Int()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return NewNil(), Raise(IndexError, "index %d out of range", key.Int())
	}
	return items[i], nil
}
