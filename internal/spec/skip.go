package spec

import "strings"

// skipNoise advances past the interleaved noise that may sit between a spec
// attribute and the declaration it annotates: XML doc comments (///),
// single-line comments (//), #region/#endregion markers, and unrelated
// attributes, in any order and count. An attribute whose name starts with
// exceptAttr is not skipped; it ends the search, so a second spec attribute
// never gets absorbed as noise.
//
// Written as an explicit skip loop rather than one composite pattern. Each
// token ends at its newline; the newline itself is consumed by the leading
// whitespace skip of the next round.
func skipNoise(code string, pos int, exceptAttr string) int {
	for {
		next := skipSpace(code, pos)
		rest := code[next:]

		switch {
		case strings.HasPrefix(rest, "//"):
			// Covers /// doc comments too.
			pos = endOfLine(code, next)

		case strings.HasPrefix(rest, "#region"), strings.HasPrefix(rest, "#endregion"):
			pos = endOfLine(code, next)

		case strings.HasPrefix(rest, "[") && !strings.HasPrefix(rest[1:], exceptAttr):
			cb := strings.IndexByte(rest, ']')
			if cb < 0 {
				return next // unterminated attribute, stop here
			}
			pos = next + cb + 1

		default:
			return next
		}
	}
}

// endOfLine returns the index of the next newline at or after pos, or
// len(code) when the line runs to EOF.
func endOfLine(code string, pos int) int {
	if nl := strings.IndexByte(code[pos:], '\n'); nl >= 0 {
		return pos + nl
	}
	return len(code)
}
