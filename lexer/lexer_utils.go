/*
File   : golox/lexer/lexer_utils.go
Package: lexer
*/
package lexer

import (
	"strconv"
	"strings"
)

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c can start or continue an identifier:
// ASCII letters and underscore.
func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAlphaNumeric reports whether c can continue an identifier.
func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// parseFloat decodes a NUMBER lexeme already validated by the scanner
// (digits, optional single '.' followed by digits); the error return
// is ignored because the scanner never hands it malformed input.
func parseFloat(lexeme string) float64 {
	v, _ := strconv.ParseFloat(lexeme, 64)
	return v
}

// FormatNumber renders a decoded NUMBER literal the way spec.md §4.1's
// "Representation rule for printing" requires: integral values print
// as "<n>.0"; everything else uses the shortest string that
// round-trips through strconv.ParseFloat. The ast package reuses this
// for its own literal dump so both layers agree on one rule.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// strconv's 'g' verb can emit exponent notation ("1e+10"); Lox's
	// own float dump never does for source-scale numbers, so normalize
	// back to plain decimal when the exponent form round-trips losslessly
	// through 'f' as well.
	if strings.ContainsAny(s, "eE") {
		if alt := strconv.FormatFloat(v, 'f', -1, 64); alt != "" {
			if parsed, err := strconv.ParseFloat(alt, 64); err == nil && parsed == v {
				return alt
			}
		}
	}
	return s
}
