package scheme

// Eval evaluates v against scope and returns the resulting value.
//
// Dispatch follows the value's tag: Integer, Boolean, Empty, and
// procedure values self-evaluate. A Symbol resolves to a Boolean
// literal, a keyword, a primitive, or a scope lookup, in that order —
// keywords and primitives are a property of evaluation, not of the
// reader, so they cannot be shadowed by define when the symbol appears
// in operator position. A Pair is a combination: its car is evaluated
// to find the operator, then dispatched as a special form, a strict
// builtin, or a user procedure.
func Eval(v *Value, scope *Scope) (*Value, error) {
	switch v.Kind() {
	case KindInteger, KindBoolean, KindEmpty, KindBuiltin, KindProcedure:
		return v, nil
	case KindSymbol:
		name, _ := v.AsSymbol()
		return resolveSymbol(name, scope)
	case KindPair:
		return evalCombination(v, scope)
	default:
		return nil, runtimeErrorf("cannot evaluate value of kind %s", v.Kind())
	}
}

// resolveSymbol implements the name-resolution order from §4.5: the
// literals #t/#f, then the keyword table, then the primitive table,
// then scope lookup.
func resolveSymbol(name string, scope *Scope) (*Value, error) {
	switch name {
	case "#t":
		return True, nil
	case "#f":
		return False, nil
	}
	if b, ok := specialForms[name]; ok {
		return BuiltinValue(b), nil
	}
	if b, ok := primitives[name]; ok {
		return BuiltinValue(b), nil
	}
	return scope.Lookup(name)
}

// evalCombination evaluates a pair as a function call.
func evalCombination(v *Value, scope *Scope) (*Value, error) {
	head, err := Eval(v.car, scope)
	if err != nil {
		return nil, err
	}
	switch head.Kind() {
	case KindBuiltin:
		if head.builtin.Special {
			return head.builtin.Form(scope, v.cdr)
		}
		args, err := evalArgs(v.cdr, scope)
		if err != nil {
			return nil, err
		}
		return head.builtin.Strict(args)
	case KindProcedure:
		args, err := evalArgs(v.cdr, scope)
		if err != nil {
			return nil, err
		}
		return applyProcedure(head.procedure, args)
	default:
		return nil, runtimeErrorf("cannot apply a value of kind %s", head.Kind())
	}
}

// evalArgs evaluates each element of a proper argument list left to
// right, failing with a RuntimeError if the list is improper.
func evalArgs(list *Value, scope *Scope) ([]*Value, error) {
	var args []*Value
	for {
		switch list.Kind() {
		case KindEmpty:
			return args, nil
		case KindPair:
			v, err := Eval(list.car, scope)
			if err != nil {
				return nil, err
			}
			args = append(args, v)
			list = list.cdr
		default:
			return nil, runtimeErrorf("improper argument list")
		}
	}
}

// applyProcedure invokes a user-defined closure on an already-evaluated
// argument vector, creating a fresh child scope over the procedure's
// captured scope.
func applyProcedure(proc *Procedure, args []*Value) (*Value, error) {
	if len(proc.Params) != len(args) {
		return nil, runtimeErrorf("procedure expects %d argument(s), got %d", len(proc.Params), len(args))
	}
	call := NewScope(proc.Env)
	for i, param := range proc.Params {
		call.Define(param, args[i])
	}
	var result *Value
	var err error
	for _, expr := range proc.Body {
		result, err = Eval(expr, call)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Apply applies a procedure or strict builtin Value to an
// already-evaluated argument vector. Exposed for callers outside the
// evaluator, such as tests exercising application directly.
func Apply(fn *Value, args []*Value) (*Value, error) {
	switch fn.Kind() {
	case KindProcedure:
		return applyProcedure(fn.procedure, args)
	case KindBuiltin:
		if fn.builtin.Special {
			return nil, runtimeErrorf("%s cannot be applied to evaluated arguments", fn.builtin.Name)
		}
		return fn.builtin.Strict(args)
	default:
		return nil, runtimeErrorf("cannot apply a value of kind %s", fn.Kind())
	}
}
