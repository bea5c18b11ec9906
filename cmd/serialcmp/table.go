package main

import (
	"fmt"
	"strings"

	"github.com/eigerco/serialnumber/pkg/serial"
)

// comparisonTable renders every comparison between s1 and s2 in both operand
// orders, followed by their modular distance.
func comparisonTable[T serial.Width](s1, s2 serial.Number[T]) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "s1 = %v, s2 = %v (%d bits)\n\n", s1, s2, serial.Bits[T]())

	fmt.Fprintf(&sb, "s1 == s2 --> %t\n", s1.Equal(s2))
	fmt.Fprintf(&sb, "s1 != s2 --> %t\n", s1.NotEqual(s2))
	sb.WriteString("\n")
	writeOrdering(&sb, "s1", "s2", s1, s2)
	sb.WriteString("\n")
	writeOrdering(&sb, "s2", "s1", s2, s1)
	sb.WriteString("\n")

	d := serial.New(s1.Distance(s2))
	fmt.Fprintf(&sb, "distance --> %v\n", d)
	if _, ok := s1.Compare(s2); !ok {
		fmt.Fprintf(&sb, "s1 and s2 are exactly %v apart, their order is undefined\n", d)
	}
	return sb.String()
}

func writeOrdering[T serial.Width](sb *strings.Builder, an, bn string, a, b serial.Number[T]) {
	fmt.Fprintf(sb, "%s <  %s --> %t\n", an, bn, a.Less(b))
	fmt.Fprintf(sb, "%s <= %s --> %t\n", an, bn, a.LessOrEqual(b))
	fmt.Fprintf(sb, "%s >  %s --> %t\n", an, bn, a.Greater(b))
	fmt.Fprintf(sb, "%s >= %s --> %t\n", an, bn, a.GreaterOrEqual(b))
}
