package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var printTests = []struct {
	v    *Value
	want string
}{
	{Int(42), "42"},
	{Int(-3), "-3"},
	{True, "#t"},
	{False, "#f"},
	{Sym("foo"), "foo"},
	{Empty, "()"},
	{Cons(Int(1), Int(2)), "(1 . 2)"},
	{SliceToList([]*Value{Int(1), Int(2), Int(3)}), "(1 2 3)"},
	{Cons(Int(1), Cons(Int(2), Int(3))), "(1 2 . 3)"},
}

func TestPrint(t *testing.T) {
	for _, test := range printTests {
		require.Equal(t, test.want, Print(test.v))
	}
}

func TestPrintBuiltinAndProcedureAreOpaque(t *testing.T) {
	root := NewScope(nil)
	builtin := evalString(t, root, "+")
	require.Contains(t, Print(builtin), "#<builtin")

	proc := evalString(t, root, "(lambda (x) x)")
	require.Equal(t, "#<procedure>", Print(proc))
}
