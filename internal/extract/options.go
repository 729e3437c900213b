package extract

import (
	"fmt"
	"io"

	"github.com/peter8zero/specbuilder/internal/source"
	"github.com/peter8zero/specbuilder/internal/spec"
)

// Options runs the class-attribute parser over every module and groups the
// resulting option records by category. Modules without code or without a
// well-formed attribute contribute nothing.
//
// trace receives per-module SKIP/FOUND lines; pass io.Discard to silence.
func Options(modules []source.Module, trace io.Writer) Table[Option] {
	table := Table[Option]{}

	for _, mod := range modules {
		if mod.Code == "" {
			fmt.Fprintf(trace, "  SKIP %s: no code\n", mod.Name)
			continue
		}

		attr := spec.ParseOption(mod.Code)
		if attr == nil {
			fmt.Fprintf(trace, "  SKIP %s: no [SpecOption] attribute\n", mod.Name)
			continue
		}

		class := attr.CodeClass
		if class == "" {
			class = mod.Name
		}

		opt := Option{
			ID:           spec.SnakeID(class),
			Name:         attr.Name,
			Description:  attr.Description,
			WhyItMatters: attr.WhyItMatters,
			CodeClass:    class,
			Scheme:       mod.Scheme,
			LastModified: dateOnly(mod.LastModified),
		}

		category := canonicalCategory(attr.Category)
		table[category] = append(table[category], opt)
		fmt.Fprintf(trace, "  FOUND %s -> %s/%s\n", mod.Name, category, opt.ID)
	}

	return table
}
