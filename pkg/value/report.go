package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Report produces a human readable loose-vs-strict equality report. It
// is diagnostic text, not a predicate, and it never fails.
func Report(left, right Value) string {
	loose := LooseEqual(left, right)
	strict := StrictEqual(left, right)

	buf := &strings.Builder{}
	fmt.Fprintf(buf, "left : %s (%s)\n", describe(left), left.Kind())
	fmt.Fprintf(buf, "right: %s (%s)\n", describe(right), right.Kind())
	fmt.Fprintf(buf, "==  : %t\n", loose)
	fmt.Fprintf(buf, "=== : %t\n", strict)
	if loose && !strict {
		buf.WriteString("warning: values are equal only after type coercion\n")
	}
	return buf.String()
}

// describe quotes text so that the string "1" and the number 1 stay
// distinguishable in the report.
func describe(v Value) string {
	if v.Kind() == StringKind {
		return strconv.Quote(Display(v))
	}
	return Display(v)
}
