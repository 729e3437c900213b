package render

import (
	"fmt"
	"strings"

	"github.com/peter8zero/specbuilder/internal/source"
	"github.com/peter8zero/specbuilder/internal/spec"
)

// Coverage reports documented-vs-total public methods for every module
// whose code carries a well-formed class attribute. Declarations named
// after the owning class are excluded from the denominator (constructor
// exclusion), and a trailing line aggregates the totals.
func Coverage(modules []source.Module) string {
	var lines []string
	totalDocumented := 0
	totalPublic := 0
	classCount := 0

	for _, mod := range modules {
		if mod.Code == "" {
			continue
		}

		opt := spec.ParseOption(mod.Code)
		if opt == nil {
			continue
		}

		className := opt.CodeClass
		if className == "" {
			className = mod.Name
		}

		total := 0
		for _, name := range spec.PublicMethods(mod.Code) {
			if name != className {
				total++
			}
		}
		documented := len(spec.ParseCapabilities(mod.Code))

		totalDocumented += documented
		totalPublic += total
		classCount++

		lines = append(lines, fmt.Sprintf("  %s: %d/%d methods documented (%s)",
			className, documented, total, percent(documented, total)))
	}

	if classCount == 0 {
		return "Coverage Report:\n  No classes with [SpecOption] found.\n"
	}

	lines = append(lines, "  ---")
	lines = append(lines, fmt.Sprintf("  Overall: %d/%d methods documented (%s)",
		totalDocumented, totalPublic, percent(totalDocumented, totalPublic)))

	return "Coverage Report:\n" + strings.Join(lines, "\n") + "\n"
}

// percent formats part/whole as a whole-number percentage, or "n/a" when
// there is nothing to divide by.
func percent(part, whole int) string {
	if whole == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(part)/float64(whole)*100)
}
