package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmeticLaws(t *testing.T) {
	root := NewScope(nil)
	require.Equal(t, "0", Print(evalString(t, root, "(+ )")))
	require.Equal(t, "1", Print(evalString(t, root, "(* )")))
	require.Equal(t, Print(evalString(t, root, "(+ 2 3 4)")), Print(evalString(t, root, "(+ 4 2 3)")))
	require.Equal(t, Print(evalString(t, root, "(+ (+ 2 3) 4)")), Print(evalString(t, root, "(+ 2 (+ 3 4))")))
}

func TestSubtractIsStandardNotSourceDefect(t *testing.T) {
	root := NewScope(nil)
	require.Equal(t, "7", Print(evalString(t, root, "(- 10 3)")))
	require.Equal(t, "4", Print(evalString(t, root, "(- 10 1 2 3)")))
}

func TestDivideIsStandard(t *testing.T) {
	root := NewScope(nil)
	require.Equal(t, "4", Print(evalString(t, root, "(/ 12 3)")))
}

func TestDivideByZero(t *testing.T) {
	root := NewScope(nil)
	v, err := ReadString("(/ 1 0)")
	require.NoError(t, err)
	_, err = Eval(v, root)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
}

func TestMinMaxAbs(t *testing.T) {
	root := NewScope(nil)
	require.Equal(t, "1", Print(evalString(t, root, "(min 3 1 2)")))
	require.Equal(t, "3", Print(evalString(t, root, "(max 3 1 2)")))
	require.Equal(t, "5", Print(evalString(t, root, "(abs -5)")))
}

func TestCarCdrArityAndType(t *testing.T) {
	root := NewScope(nil)

	v, err := ReadString("(car)")
	require.NoError(t, err)
	_, err = Eval(v, root)
	require.Error(t, err)

	v, err = ReadString("(car 1)")
	require.NoError(t, err)
	_, err = Eval(v, root)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
}

func TestNotTreatsNonBooleanAsFalse(t *testing.T) {
	root := NewScope(nil)
	require.Equal(t, "#f", Print(evalString(t, root, "(not 1)")))
	require.Equal(t, "#f", Print(evalString(t, root, "(not #t)")))
	require.Equal(t, "#t", Print(evalString(t, root, "(not #f)")))
}

func TestTypePredicates(t *testing.T) {
	root := NewScope(nil)
	require.Equal(t, "#t", Print(evalString(t, root, "(null? '())")))
	require.Equal(t, "#f", Print(evalString(t, root, "(null? '(1))")))
	require.Equal(t, "#t", Print(evalString(t, root, "(pair? '(1 . 2))")))
	require.Equal(t, "#t", Print(evalString(t, root, "(number? 3)")))
	require.Equal(t, "#t", Print(evalString(t, root, "(boolean? #t)")))
	require.Equal(t, "#t", Print(evalString(t, root, "(symbol? 'x)")))
}

func TestListRefAndListTail(t *testing.T) {
	root := NewScope(nil)
	evalString(t, root, "(define xs (list 10 20 30 40))")
	require.Equal(t, "30", Print(evalString(t, root, "(list-ref xs 2)")))
	require.Equal(t, "(30 40)", Print(evalString(t, root, "(list-tail xs 2)")))
}

func TestListRefOutOfRangeIsRuntimeError(t *testing.T) {
	root := NewScope(nil)
	evalString(t, root, "(define xs (list 1 2))")
	v, err := ReadString("(list-ref xs 5)")
	require.NoError(t, err)
	_, err = Eval(v, root)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
}

func TestSetBangUnboundIsNameError(t *testing.T) {
	root := NewScope(nil)
	v, err := ReadString("(set! nope 1)")
	require.NoError(t, err)
	_, err = Eval(v, root)
	var nameErr *NameError
	require.ErrorAs(t, err, &nameErr)
}

func TestSetCarOnNonPairIsRuntimeError(t *testing.T) {
	root := NewScope(nil)
	evalString(t, root, "(define x 5)")
	v, err := ReadString("(set-car! x 1)")
	require.NoError(t, err)
	_, err = Eval(v, root)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
}
