package spec

import "regexp"

// publicClassPattern looks for the literal "public class" token sequence.
var publicClassPattern = regexp.MustCompile(`public\s+class\s+(\w+)`)

// publicMethodPattern matches any public method declaration, block-bodied or
// expression-bodied. Declarations named after their class can match too;
// the coverage report excludes those by name.
var publicMethodPattern = regexp.MustCompile(`public\s+(?:static\s+|virtual\s+|override\s+|async\s+)*[\w<>,\s]+?\s+(\w+)\s*\([^)]*\)\s*(?:\{|=>)`)

// PublicClassName finds the first plain public class declaration in code.
// Deliberately lighter than the option search: it does not skip interleaved
// attributes, because it matches a literal token sequence rather than
// locating a declaration that follows a specific attribute.
func PublicClassName(code string) (string, bool) {
	m := publicClassPattern.FindStringSubmatch(code)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// PublicMethods returns the names of all public method declarations in
// code, in source order.
func PublicMethods(code string) []string {
	var names []string
	for _, m := range publicMethodPattern.FindAllStringSubmatch(code, -1) {
		names = append(names, m[1])
	}
	return names
}
