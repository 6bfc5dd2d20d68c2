/*
File    : golox/object/format.go
Package : object
*/
package object

import (
	"strconv"
	"strings"
)

// formatFloat renders a non-integral number with the shortest decimal
// string that round-trips through strconv.ParseFloat, normalizing away
// exponent notation the way the lexer's own dual-format rule does for
// AST dumps (spec.md §4.1, reused at print time by §4.4's note that
// both layers agree on the non-integral case).
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		if alt := strconv.FormatFloat(v, 'f', -1, 64); alt != "" {
			if parsed, err := strconv.ParseFloat(alt, 64); err == nil && parsed == v {
				return alt
			}
		}
	}
	return s
}
