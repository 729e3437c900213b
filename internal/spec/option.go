package spec

import "regexp"

// OptionAttr holds the arguments of one class-level [SpecOption] attribute.
type OptionAttr struct {
	Category    string
	Name        string
	Description string

	// WhyItMatters is nil when the attribute did not supply it; output
	// omits the field entirely in that case.
	WhyItMatters *string

	// CodeClass is the name of the class the attribute annotates, or ""
	// when no class declaration could be located.
	CodeClass string
}

// classDeclPattern matches a class declaration at the start of the searched
// text, with any combination of the usual modifiers in any order.
var classDeclPattern = regexp.MustCompile(`^public\s+(?:sealed\s+|abstract\s+|static\s+|partial\s+)*class\s+(\w+)`)

// ParseOption extracts the first [SpecOption] attribute from code. Only one
// class attribute per module is meaningful; when several are present the
// first supplies the fields. Returns nil when no attribute is present or
// when the required Category and Name arguments are missing — incidental
// attributes with the same surface shape are ignored that way.
func ParseOption(code string) *OptionAttr {
	occs := findOccurrences(code, "SpecOption")
	if len(occs) == 0 {
		return nil
	}

	args := parseArgs(occs[0].body)
	if args["Category"] == "" || args["Name"] == "" {
		return nil
	}

	opt := &OptionAttr{
		Category:    args["Category"],
		Name:        args["Name"],
		Description: args["Description"],
	}
	if why, ok := args["WhyItMatters"]; ok {
		opt.WhyItMatters = &why
	}

	// The annotated class does not have to follow the first occurrence;
	// the first occurrence that is followed by a class declaration wins.
	for _, occ := range occs {
		pos := skipNoise(code, occ.end, "SpecOption")
		if m := classDeclPattern.FindStringSubmatch(code[pos:]); m != nil {
			opt.CodeClass = m[1]
			break
		}
	}

	return opt
}
