// Package extract aggregates parsed spec attributes into category tables.
// Tables are explicit values threaded through the pipeline rather than
// ambient state, so each stage stays independently testable.
package extract

import "strings"

// Option represents one annotated class: a selectable named implementation
// of a domain strategy.
type Option struct {
	// ID is the snake_case id derived from the resolved class name, or
	// from the module name when no class declaration was found.
	ID string `json:"id"`

	// Name is the display name supplied by the attribute.
	Name string `json:"name"`

	// Description defaults to "" when the attribute omitted it.
	Description string `json:"description"`

	// WhyItMatters is omitted from output entirely when nil.
	WhyItMatters *string `json:"whyItMatters,omitempty"`

	// CodeClass is the annotated class's name.
	CodeClass string `json:"codeClass"`

	// Scheme is the module's provenance tag.
	Scheme string `json:"scheme"`

	// LastModified is date-only, truncated at the T separator.
	LastModified string `json:"lastModified"`
}

// ParentRef links a capability back to the option declared on the same
// class. A lookup relation only, never an ownership link.
type ParentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Capability represents one annotated method: an individually documented
// operation, optionally linked to an enclosing option.
type Capability struct {
	// ID is the snake_case id of the method name, falling back to the
	// display name when no signature was located.
	ID string `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	WhyItMatters *string `json:"whyItMatters,omitempty"`

	// The three signature fields are either all present or all absent.
	MethodName *string `json:"methodName,omitempty"`
	ReturnType *string `json:"returnType,omitempty"`
	Parameters *string `json:"parameters,omitempty"`

	// ParentOption is present only when the capability's module also
	// carries a class attribute with both required fields.
	ParentOption *ParentRef `json:"parentOption,omitempty"`

	CodeClass    string `json:"codeClass"`
	Scheme       string `json:"scheme"`
	LastModified string `json:"lastModified"`
}

// Table groups records by lowercased category. Record order within a
// category follows module-discovery order; categories themselves are sorted
// only at render time.
type Table[T any] map[string][]T

// Total counts the records across all categories.
func (t Table[T]) Total() int {
	n := 0
	for _, records := range t {
		n += len(records)
	}
	return n
}

// canonicalCategory lowercases a category and applies the single
// pluralisation rule: "builder" becomes "builders". No other category is
// renamed.
func canonicalCategory(category string) string {
	category = strings.ToLower(category)
	if category == "builder" {
		return "builders"
	}
	return category
}

// dateOnly truncates an ISO-like timestamp to its date portion. Date-only
// and empty values pass through unchanged.
func dateOnly(ts string) string {
	if before, _, found := strings.Cut(ts, "T"); found {
		return before
	}
	return ts
}
