// Package samples holds small domain functions and the bundled suite that exercises them.
package samples

import "strings"

func Add(a, b int) int { return a + b }

func Sub(a, b int) int { return a - b }

func Mul(a, b int) int { return a * b }

// Div panics when b is zero, like integer division does
func Div(a, b int) int { return a / b }

// StrFind returns the byte index of the first occurrence of needle in haystack, or -1.
func StrFind(haystack, needle string) int {
	return strings.Index(haystack, needle)
}
