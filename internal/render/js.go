// Package render serializes category tables to the generated JS data files
// and produces the human-oriented preview and coverage reports.
package render

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/peter8zero/specbuilder/internal/extract"
)

// String values are emitted verbatim inside quotes: whatever escaping the
// source attribute carried is preserved, and nothing is re-escaped. An
// unescaped quote inside a description therefore produces invalid JS. Known
// limitation, kept deliberately.

// Options renders the options table as a single JS constant assignment,
// safe to load as a data file by a consumer. Categories are sorted; records
// keep discovery order. An empty table still renders a valid assignment.
func Options(table extract.Table[extract.Option]) string {
	var b strings.Builder
	b.WriteString("const CODE_OPTIONS = {\n")

	cats := sortedCategories(table)
	for i, cat := range cats {
		opts := table[cat]
		fmt.Fprintf(&b, "    %s: [\n", cat)

		for j, opt := range opts {
			b.WriteString("        {\n")
			writeField(&b, "id", opt.ID)
			writeField(&b, "name", opt.Name)
			writeField(&b, "description", opt.Description)
			if opt.WhyItMatters != nil {
				writeField(&b, "whyItMatters", *opt.WhyItMatters)
			}
			writeField(&b, "codeClass", opt.CodeClass)
			writeField(&b, "scheme", opt.Scheme)
			writeLastField(&b, "lastModified", opt.LastModified)
			closeRecord(&b, j == len(opts)-1)
		}

		closeCategory(&b, i == len(cats)-1)
	}

	b.WriteString("};\n")
	return b.String()
}

// Capabilities renders the capabilities table under its own constant name,
// with the same shape and ordering rules as Options.
func Capabilities(table extract.Table[extract.Capability]) string {
	var b strings.Builder
	b.WriteString("const CODE_CAPABILITIES = {\n")

	cats := sortedCategories(table)
	for i, cat := range cats {
		caps := table[cat]
		fmt.Fprintf(&b, "    %s: [\n", cat)

		for j, c := range caps {
			b.WriteString("        {\n")
			writeField(&b, "id", c.ID)
			writeField(&b, "name", c.Name)
			writeField(&b, "description", c.Description)
			if c.WhyItMatters != nil {
				writeField(&b, "whyItMatters", *c.WhyItMatters)
			}
			if c.MethodName != nil {
				writeField(&b, "methodName", *c.MethodName)
			}
			if c.ReturnType != nil {
				writeField(&b, "returnType", *c.ReturnType)
			}
			if c.Parameters != nil {
				writeField(&b, "parameters", *c.Parameters)
			}
			if c.ParentOption != nil {
				fmt.Fprintf(&b, "            parentOption: { id: \"%s\", name: \"%s\" },\n",
					c.ParentOption.ID, c.ParentOption.Name)
			}
			writeField(&b, "codeClass", c.CodeClass)
			writeField(&b, "scheme", c.Scheme)
			writeLastField(&b, "lastModified", c.LastModified)
			closeRecord(&b, j == len(caps)-1)
		}

		closeCategory(&b, i == len(cats)-1)
	}

	b.WriteString("};\n")
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "            %s: \"%s\",\n", key, value)
}

// writeLastField omits the trailing comma.
func writeLastField(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "            %s: \"%s\"\n", key, value)
}

func closeRecord(b *strings.Builder, last bool) {
	if last {
		b.WriteString("        }\n")
	} else {
		b.WriteString("        },\n")
	}
}

func closeCategory(b *strings.Builder, last bool) {
	if last {
		b.WriteString("    ]\n")
	} else {
		b.WriteString("    ],\n")
	}
}

func sortedCategories[T any](table extract.Table[T]) []string {
	return slices.Sorted(maps.Keys(table))
}
