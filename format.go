package algocomplex

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns z formatted as "(re, im)", with each component in the
// shortest representation that round-trips through float64.
func (z Complex) String() string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(strconv.FormatFloat(z.re, 'g', -1, 64))
	b.WriteString(", ")
	b.WriteString(strconv.FormatFloat(z.im, 'g', -1, 64))
	b.WriteByte(')')

	return b.String()
}

// Format implements fmt.Formatter. The verb, width, precision, and flags
// apply to each component independently; the "(re, im)" pair shape is
// fixed. %v and %s produce the same output as String.
func (z Complex) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(f, z.String())
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X':
		directive := componentDirective(f, verb)
		fmt.Fprintf(f, "("+directive+", "+directive+")", z.re, z.im)
	default:
		fmt.Fprintf(f, "%%!%c(algocomplex.Complex=%s)", verb, z.String())
	}
}

// componentDirective rebuilds the per-component fmt directive from the
// formatting state.
func componentDirective(f fmt.State, verb rune) string {
	var b strings.Builder

	b.WriteByte('%')

	for _, flag := range []int{'+', '-', '#', ' ', '0'} {
		if f.Flag(flag) {
			b.WriteByte(byte(flag))
		}
	}

	if w, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}

	if p, ok := f.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}

	b.WriteRune(verb)

	return b.String()
}
