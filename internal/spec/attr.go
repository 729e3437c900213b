// Package spec scans source text for [SpecOption] and [SpecCapability]
// attributes. It is deliberately not a parser for the host language: it
// pattern-matches the attribute syntax and tolerates surrounding noise,
// skipping anything it cannot make sense of.
package spec

import (
	"regexp"
	"strings"
)

// occurrence is one located attribute: the span of the whole
// [Attr( ... )] token and the raw argument text between the parentheses.
type occurrence struct {
	start int // index of the opening '['
	end   int // index just past the closing ']'
	body  string
}

// argPattern matches a named string argument like Category = "Revaluation",
// tolerating escaped quotes inside the value. Unquoted or expression-valued
// arguments simply never match.
var argPattern = regexp.MustCompile(`(\w+)\s*=\s*"((?:[^"\\]|\\.)*)"`)

// parseArgs extracts key = "value" pairs from an attribute body. The last
// occurrence of a duplicated key wins.
func parseArgs(body string) map[string]string {
	args := map[string]string{}
	for _, m := range argPattern.FindAllStringSubmatch(body, -1) {
		args[m[1]] = m[2]
	}
	return args
}

// findOccurrences locates every [attr( ... )] token in code, in source
// order. The argument list may span lines; its body extends to the first ')'
// followed, after optional whitespace, by ']'.
func findOccurrences(code, attr string) []occurrence {
	marker := "[" + attr
	var occs []occurrence

	for i := 0; i < len(code); {
		j := strings.Index(code[i:], marker)
		if j < 0 {
			break
		}
		start := i + j
		i = start + len(marker)

		// The attribute name must be followed directly by the argument
		// list; [SpecOptionFoo(...)] is a different attribute.
		p := skipSpace(code, start+len(marker))
		if p >= len(code) || code[p] != '(' {
			continue
		}

		bodyStart := p + 1
		for q := bodyStart; q < len(code); q++ {
			if code[q] != ')' {
				continue
			}
			r := skipSpace(code, q+1)
			if r < len(code) && code[r] == ']' {
				occs = append(occs, occurrence{start: start, end: r + 1, body: code[bodyStart:q]})
				i = r + 1
				break
			}
		}
	}

	return occs
}

// skipSpace returns the first index at or after pos that is not whitespace.
func skipSpace(code string, pos int) int {
	for pos < len(code) && isSpace(code[pos]) {
		pos++
	}
	return pos
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
