package scheme

// specialForms holds the fixed keyword table: symbols that evaluate to
// a special-form Builtin instead of resolving through scope lookup.
var specialForms map[string]*Builtin

// primitives holds the fixed eager-primitive table.
var primitives map[string]*Builtin

func init() {
	specialForms = map[string]*Builtin{
		"quote":    {Name: "quote", Special: true, Form: quoteForm},
		"if":       {Name: "if", Special: true, Form: ifForm},
		"define":   {Name: "define", Special: true, Form: defineForm},
		"set!":     {Name: "set!", Special: true, Form: setForm},
		"lambda":   {Name: "lambda", Special: true, Form: lambdaForm},
		"and":      {Name: "and", Special: true, Form: andForm},
		"or":       {Name: "or", Special: true, Form: orForm},
		"list":     {Name: "list", Special: true, Form: listForm},
		"list-ref": {Name: "list-ref", Special: true, Form: listRefForm},
		"list-tail": {
			Name: "list-tail", Special: true, Form: listTailForm,
		},
		"set-car!": {Name: "set-car!", Special: true, Form: setCarForm},
		"set-cdr!": {Name: "set-cdr!", Special: true, Form: setCdrForm},
	}
	primitives = map[string]*Builtin{
		"+":       {Name: "+", Strict: addPrim},
		"-":       {Name: "-", Strict: subPrim},
		"*":       {Name: "*", Strict: mulPrim},
		"/":       {Name: "/", Strict: divPrim},
		"min":     {Name: "min", Strict: minPrim},
		"max":     {Name: "max", Strict: maxPrim},
		"abs":     {Name: "abs", Strict: absPrim},
		"<":       {Name: "<", Strict: chainCompare(func(a, b int64) bool { return a < b })},
		">":       {Name: ">", Strict: chainCompare(func(a, b int64) bool { return a > b })},
		"<=":      {Name: "<=", Strict: chainCompare(func(a, b int64) bool { return a <= b })},
		">=":      {Name: ">=", Strict: chainCompare(func(a, b int64) bool { return a >= b })},
		"=":       {Name: "=", Strict: chainCompare(func(a, b int64) bool { return a == b })},
		"cons":    {Name: "cons", Strict: consPrim},
		"car":     {Name: "car", Strict: carPrim},
		"cdr":     {Name: "cdr", Strict: cdrPrim},
		"not":     {Name: "not", Strict: notPrim},
		"null?":   {Name: "null?", Strict: predicate(func(v *Value) bool { return v.IsEmpty() })},
		"pair?":   {Name: "pair?", Strict: predicate(func(v *Value) bool { return v.IsPair() })},
		"list?":   {Name: "list?", Strict: predicate(func(v *Value) bool { return v.IsProperList() })},
		"number?": {Name: "number?", Strict: predicate(func(v *Value) bool { return v.IsInteger() })},
		"boolean?": {
			Name: "boolean?", Strict: predicate(func(v *Value) bool { return v.IsBoolean() }),
		},
		"symbol?": {Name: "symbol?", Strict: predicate(func(v *Value) bool { return v.IsSymbol() })},
	}
}

// shape helpers operating on raw (unevaluated) operand lists.

// splitForm returns the first operand and the rest of the list,
// failing with a SyntaxError if args is not a pair. The rest is
// returned unchecked; callers validate its shape.
func splitForm(args *Value) (head, rest *Value, err error) {
	if !args.IsPair() {
		return nil, nil, syntaxErrorf("expected at least one operand")
	}
	return args.car, args.cdr, nil
}

// exactlyN validates that args is a proper list of exactly n elements
// and returns them.
func exactlyN(args *Value, n int) ([]*Value, error) {
	elems, err := ListToSlice(args)
	if err != nil {
		return nil, syntaxErrorf("malformed operand list")
	}
	if len(elems) != n {
		return nil, syntaxErrorf("expected %d operand(s), got %d", n, len(elems))
	}
	return elems, nil
}

func requireSymbolName(v *Value) (string, error) {
	name, ok := v.AsSymbol()
	if !ok {
		return "", syntaxErrorf("expected a symbol")
	}
	return name, nil
}

// --- special forms ---

func quoteForm(_ *Scope, args *Value) (*Value, error) {
	elems, err := exactlyN(args, 1)
	if err != nil {
		return nil, err
	}
	return elems[0], nil
}

func ifForm(scope *Scope, args *Value) (*Value, error) {
	elems, err := ListToSlice(args)
	if err != nil || len(elems) < 2 || len(elems) > 3 {
		return nil, syntaxErrorf("if requires (if cond then [else])")
	}
	cond, err := Eval(elems[0], scope)
	if err != nil {
		return nil, err
	}
	truth, ok := cond.AsBoolean()
	if !ok {
		return nil, syntaxErrorf("if condition must evaluate to a boolean, got %s", cond.Kind())
	}
	if truth {
		return Eval(elems[1], scope)
	}
	if len(elems) == 3 {
		return Eval(elems[2], scope)
	}
	return Empty, nil
}

func defineForm(scope *Scope, args *Value) (*Value, error) {
	head, rest, err := splitForm(args)
	if err != nil {
		return nil, err
	}
	if head.IsPair() {
		// (define (name p1 ... pn) body...) sugar for
		// (define name (lambda (p1 ... pn) body...)).
		name, err := requireSymbolName(head.car)
		if err != nil {
			return nil, err
		}
		lambdaArgs := Cons(head.cdr, rest)
		proc, err := lambdaForm(scope, lambdaArgs)
		if err != nil {
			return nil, err
		}
		scope.Define(name, proc)
		return Empty, nil
	}
	name, err := requireSymbolName(head)
	if err != nil {
		return nil, err
	}
	elems, err := exactlyN(rest, 1)
	if err != nil {
		return nil, err
	}
	val, err := Eval(elems[0], scope)
	if err != nil {
		return nil, err
	}
	scope.Define(name, val)
	return Empty, nil
}

func setForm(scope *Scope, args *Value) (*Value, error) {
	head, rest, err := splitForm(args)
	if err != nil {
		return nil, err
	}
	name, err := requireSymbolName(head)
	if err != nil {
		return nil, err
	}
	elems, err := exactlyN(rest, 1)
	if err != nil {
		return nil, err
	}
	val, err := Eval(elems[0], scope)
	if err != nil {
		return nil, err
	}
	if err := scope.Assign(name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func lambdaForm(scope *Scope, args *Value) (*Value, error) {
	head, rest, err := splitForm(args)
	if err != nil {
		return nil, err
	}
	params, err := ListToSlice(head)
	if err != nil {
		return nil, syntaxErrorf("lambda parameter list must be a proper list")
	}
	names := make([]string, len(params))
	for i, p := range params {
		name, err := requireSymbolName(p)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	body, err := ListToSlice(rest)
	if err != nil || len(body) == 0 {
		return nil, syntaxErrorf("lambda body must be a non-empty sequence of expressions")
	}
	return ProcedureValue(&Procedure{Params: names, Body: body, Env: scope}), nil
}

func andForm(scope *Scope, args *Value) (*Value, error) {
	elems, err := ListToSlice(args)
	if err != nil {
		return nil, syntaxErrorf("and operands must form a proper list")
	}
	if len(elems) == 0 {
		return True, nil
	}
	var result *Value
	for _, expr := range elems {
		result, err = Eval(expr, scope)
		if err != nil {
			return nil, err
		}
		if result.isBooleanFalse() {
			return result, nil
		}
	}
	return result, nil
}

func orForm(scope *Scope, args *Value) (*Value, error) {
	elems, err := ListToSlice(args)
	if err != nil {
		return nil, syntaxErrorf("or operands must form a proper list")
	}
	for _, expr := range elems {
		result, err := Eval(expr, scope)
		if err != nil {
			return nil, err
		}
		if !result.isBooleanFalse() {
			return result, nil
		}
	}
	return False, nil
}

func listForm(scope *Scope, args *Value) (*Value, error) {
	elems, err := ListToSlice(args)
	if err != nil {
		return nil, syntaxErrorf("list operands must form a proper list")
	}
	var out []*Value
	for _, expr := range elems {
		v, err := Eval(expr, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return SliceToList(out), nil
}

func listRefForm(scope *Scope, args *Value) (*Value, error) {
	return listIndex(scope, args, false)
}

func listTailForm(scope *Scope, args *Value) (*Value, error) {
	return listIndex(scope, args, true)
}

// listIndex implements both list-ref (tail=false, returns the element)
// and list-tail (tail=true, returns the remaining list).
func listIndex(scope *Scope, args *Value, tail bool) (*Value, error) {
	elems, err := exactlyN(args, 2)
	if err != nil {
		return nil, err
	}
	list, err := Eval(elems[0], scope)
	if err != nil {
		return nil, err
	}
	idxVal, err := Eval(elems[1], scope)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.AsInteger()
	if !ok {
		return nil, syntaxErrorf("list-ref/list-tail index must be an integer")
	}
	if idx < 0 {
		return nil, runtimeErrorf("list-ref/list-tail index out of range: %d", idx)
	}
	cur := list
	for idx > 0 {
		if !cur.IsPair() {
			return nil, runtimeErrorf("list-ref/list-tail index out of range")
		}
		cur = cur.cdr
		idx--
	}
	if tail {
		return cur, nil
	}
	if !cur.IsPair() {
		return nil, runtimeErrorf("list-ref index out of range")
	}
	return cur.car, nil
}

func setCarForm(scope *Scope, args *Value) (*Value, error) {
	return setPairField(scope, args, true)
}

func setCdrForm(scope *Scope, args *Value) (*Value, error) {
	return setPairField(scope, args, false)
}

// setPairField implements set-car!/set-cdr!. The first operand must be
// a symbol naming a variable bound to a pair; the pair's field is
// mutated in place so the change is visible through every alias, not
// just the named variable.
func setPairField(scope *Scope, args *Value, car bool) (*Value, error) {
	head, rest, err := splitForm(args)
	if err != nil {
		return nil, err
	}
	name, err := requireSymbolName(head)
	if err != nil {
		return nil, err
	}
	elems, err := exactlyN(rest, 1)
	if err != nil {
		return nil, err
	}
	newVal, err := Eval(elems[0], scope)
	if err != nil {
		return nil, err
	}
	bound, err := scope.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !bound.IsPair() {
		return nil, runtimeErrorf("%s is not bound to a pair", name)
	}
	bound.car, bound.cdr = mutatedFields(bound, newVal, car)
	return Empty, nil
}

// mutatedFields returns the (car, cdr) pair for bound with one field
// replaced by newVal. It does not modify bound itself; setPairField
// assigns the result back to bound's fields, mutating the pair in place
// so every alias observes the change.
func mutatedFields(bound, newVal *Value, car bool) (*Value, *Value) {
	if car {
		return newVal, bound.cdr
	}
	return bound.car, newVal
}

// --- strict primitives ---

func requireInts(args []*Value) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.AsInteger()
		if !ok {
			return nil, runtimeErrorf("expected an integer, got %s", a.Kind())
		}
		out[i] = n
	}
	return out, nil
}

func addPrim(args []*Value) (*Value, error) {
	ns, err := requireInts(args)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, n := range ns {
		sum += n
	}
	return Int(sum), nil
}

func subPrim(args []*Value) (*Value, error) {
	ns, err := requireInts(args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, runtimeErrorf("-: expected at least 1 argument")
	}
	result := ns[0]
	for _, n := range ns[1:] {
		result -= n
	}
	return Int(result), nil
}

func mulPrim(args []*Value) (*Value, error) {
	ns, err := requireInts(args)
	if err != nil {
		return nil, err
	}
	result := int64(1)
	for _, n := range ns {
		result *= n
	}
	return Int(result), nil
}

func divPrim(args []*Value) (*Value, error) {
	ns, err := requireInts(args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, runtimeErrorf("/: expected at least 1 argument")
	}
	result := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return nil, runtimeErrorf("/: division by zero")
		}
		result /= n
	}
	return Int(result), nil
}

func minPrim(args []*Value) (*Value, error) {
	ns, err := requireInts(args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, runtimeErrorf("min: expected at least 1 argument")
	}
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return Int(m), nil
}

func maxPrim(args []*Value) (*Value, error) {
	ns, err := requireInts(args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, runtimeErrorf("max: expected at least 1 argument")
	}
	m := ns[0]
	for _, n := range ns[1:] {
		if n > m {
			m = n
		}
	}
	return Int(m), nil
}

func absPrim(args []*Value) (*Value, error) {
	ns, err := requireInts(args)
	if err != nil {
		return nil, err
	}
	if len(ns) != 1 {
		return nil, runtimeErrorf("abs: expected exactly 1 argument")
	}
	n := ns[0]
	if n < 0 {
		n = -n
	}
	return Int(n), nil
}

// chainCompare builds a strict primitive implementing the chained
// relation rel: true iff every adjacent pair of arguments satisfies
// rel. Zero or one argument is vacuously true.
func chainCompare(rel func(a, b int64) bool) func([]*Value) (*Value, error) {
	return func(args []*Value) (*Value, error) {
		ns, err := requireInts(args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ns); i++ {
			if !rel(ns[i-1], ns[i]) {
				return False, nil
			}
		}
		return True, nil
	}
}

func consPrim(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, runtimeErrorf("cons: expected exactly 2 arguments, got %d", len(args))
	}
	return Cons(args[0], args[1]), nil
}

func carPrim(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("car: expected exactly 1 argument, got %d", len(args))
	}
	return args[0].Car()
}

func cdrPrim(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("cdr: expected exactly 1 argument, got %d", len(args))
	}
	return args[0].Cdr()
}

// notPrim implements this dialect's `not`: boolean true iff the
// argument is the boolean false value, else boolean false — so a
// non-boolean argument, like #t, yields boolean false, the same result
// as standard Scheme's (if x #f #t).
func notPrim(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, runtimeErrorf("not: expected exactly 1 argument, got %d", len(args))
	}
	b, ok := args[0].AsBoolean()
	if !ok {
		return False, nil
	}
	return Bool(!b), nil
}

// predicate builds a strict primitive wrapping a 1-argument boolean test.
func predicate(test func(v *Value) bool) func([]*Value) (*Value, error) {
	return func(args []*Value) (*Value, error) {
		if len(args) != 1 {
			return nil, runtimeErrorf("predicate: expected exactly 1 argument, got %d", len(args))
		}
		return Bool(test(args[0])), nil
	}
}
