package scheme

import (
	"strconv"
	"strings"
)

// Print renders v as source-equivalent text: integers in decimal,
// booleans as #t/#f, symbols by name, the empty list as (), and pairs
// with dot-notation for improper tails.
func Print(v *Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v *Value) {
	switch v.Kind() {
	case KindInteger:
		n, _ := v.AsInteger()
		b.WriteString(strconv.FormatInt(n, 10))
	case KindBoolean:
		bo, _ := v.AsBoolean()
		if bo {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindSymbol:
		name, _ := v.AsSymbol()
		b.WriteString(name)
	case KindEmpty:
		b.WriteString("()")
	case KindPair:
		writePair(b, v)
	case KindBuiltin:
		b.WriteString("#<builtin " + v.builtin.Name + ">")
	case KindProcedure:
		b.WriteString("#<procedure>")
	}
}

func writePair(b *strings.Builder, v *Value) {
	b.WriteByte('(')
	writeValue(b, v.car)
	cur := v.cdr
	for {
		switch cur.Kind() {
		case KindPair:
			b.WriteByte(' ')
			writeValue(b, cur.car)
			cur = cur.cdr
		case KindEmpty:
			b.WriteByte(')')
			return
		default:
			b.WriteString(" . ")
			writeValue(b, cur)
			b.WriteByte(')')
			return
		}
	}
}
