package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueConstructorsAndPredicates(t *testing.T) {
	require.True(t, Int(3).IsInteger())
	require.True(t, True.IsBoolean())
	require.True(t, False.IsBoolean())
	require.True(t, Sym("x").IsSymbol())
	require.True(t, Empty.IsEmpty())
	require.True(t, Cons(Int(1), Int(2)).IsPair())
}

func TestBoolReturnsCanonicalSingletons(t *testing.T) {
	require.True(t, Bool(true) == True)
	require.True(t, Bool(false) == False)
}

func TestCarCdrOnNonPair(t *testing.T) {
	_, err := Int(1).Car()
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)

	_, err = Int(1).Cdr()
	require.Error(t, err)
	require.ErrorAs(t, err, &rtErr)
}

func TestIsProperList(t *testing.T) {
	require.True(t, Empty.IsProperList())
	require.True(t, SliceToList([]*Value{Int(1), Int(2)}).IsProperList())
	require.False(t, Cons(Int(1), Int(2)).IsProperList())
}

func TestListToSliceAndBack(t *testing.T) {
	elems := []*Value{Int(1), Int(2), Int(3)}
	list := SliceToList(elems)
	require.Equal(t, 3, list.Length())
	back, err := ListToSlice(list)
	require.NoError(t, err)
	require.Equal(t, elems, back)
}

func TestListToSliceRejectsImproperList(t *testing.T) {
	_, err := ListToSlice(Cons(Int(1), Int(2)))
	require.Error(t, err)
}
