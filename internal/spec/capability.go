package spec

import (
	"regexp"
	"strings"
)

// CapabilityAttr holds the arguments of one method-level [SpecCapability]
// attribute plus the signature fields extracted from the method it
// annotates. The three signature fields are either all present or all nil.
type CapabilityAttr struct {
	Category     string
	Name         string
	Description  string
	WhyItMatters *string

	MethodName *string
	ReturnType *string
	Parameters *string
}

// methodSigPattern matches a method signature at the start of the searched
// text. The return type may carry generic angle-bracket syntax with embedded
// commas (e.g. Task<Dictionary<string, decimal>>); the parameter list must
// not contain nested parentheses. Whether the body is a block or an
// expression arrow does not matter here.
var methodSigPattern = regexp.MustCompile(`^public\s+(?:static\s+|virtual\s+|override\s+|async\s+)*([\w<>,\s]+?)\s+(\w+)\s*\(([^)]*)\)`)

// ParseCapabilities extracts every [SpecCapability] attribute from code, in
// source order. Occurrences missing the required Category or Name arguments
// are dropped silently. For each kept occurrence the immediately-following
// method signature is resolved from that occurrence's position; when none is
// found the signature fields stay nil and the record is still usable.
func ParseCapabilities(code string) []CapabilityAttr {
	var attrs []CapabilityAttr

	for _, occ := range findOccurrences(code, "SpecCapability") {
		args := parseArgs(occ.body)
		if args["Category"] == "" || args["Name"] == "" {
			continue
		}

		attr := CapabilityAttr{
			Category:    args["Category"],
			Name:        args["Name"],
			Description: args["Description"],
		}
		if why, ok := args["WhyItMatters"]; ok {
			attr.WhyItMatters = &why
		}

		pos := skipNoise(code, occ.end, "SpecCapability")
		if m := methodSigPattern.FindStringSubmatch(code[pos:]); m != nil {
			ret := strings.TrimSpace(m[1])
			name := m[2]
			params := strings.TrimSpace(m[3])
			attr.ReturnType = &ret
			attr.MethodName = &name
			attr.Parameters = &params
		}

		attrs = append(attrs, attr)
	}

	return attrs
}
