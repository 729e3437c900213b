package extract

import (
	"fmt"
	"io"

	"github.com/peter8zero/specbuilder/internal/source"
	"github.com/peter8zero/specbuilder/internal/spec"
)

// Capabilities runs the method-attribute parser over every module and
// groups the resulting capability records by category. Each attribute is
// one record; a single module can contribute to several categories.
//
// The module's owner class and possible parent option are resolved once per
// module, not per method: one module is assumed to declare at most one
// class.
func Capabilities(modules []source.Module, trace io.Writer) Table[Capability] {
	table := Table[Capability]{}

	for _, mod := range modules {
		if mod.Code == "" {
			fmt.Fprintf(trace, "  SKIP %s: no code\n", mod.Name)
			continue
		}

		attrs := spec.ParseCapabilities(mod.Code)
		if len(attrs) == 0 {
			fmt.Fprintf(trace, "  SKIP %s: no [SpecCapability] attribute\n", mod.Name)
			continue
		}

		class, ok := spec.PublicClassName(mod.Code)
		if !ok {
			class = mod.Name
		}

		var parent *ParentRef
		if opt := spec.ParseOption(mod.Code); opt != nil {
			parentClass := opt.CodeClass
			if parentClass == "" {
				parentClass = mod.Name
			}
			parent = &ParentRef{ID: spec.SnakeID(parentClass), Name: opt.Name}
		}

		date := dateOnly(mod.LastModified)

		for _, attr := range attrs {
			idSource := attr.Name
			if attr.MethodName != nil {
				idSource = *attr.MethodName
			}

			record := Capability{
				ID:           spec.SnakeID(idSource),
				Name:         attr.Name,
				Description:  attr.Description,
				WhyItMatters: attr.WhyItMatters,
				MethodName:   attr.MethodName,
				ReturnType:   attr.ReturnType,
				Parameters:   attr.Parameters,
				ParentOption: parent,
				CodeClass:    class,
				Scheme:       mod.Scheme,
				LastModified: date,
			}

			category := canonicalCategory(attr.Category)
			table[category] = append(table[category], record)
			fmt.Fprintf(trace, "  FOUND capability %s -> %s/%s\n", mod.Name, category, record.ID)
		}
	}

	return table
}
