package source

// Module is one source unit scanned for spec attributes. Modules are built
// once by a loader and never mutated afterwards.
type Module struct {
	// Name is the module identifier. Directory mode derives it from the
	// filename without its extension.
	Name string `json:"moduleName"`

	// Scheme is the first path component under the scan root, or ""
	// for files sitting in the root itself. Carried through to output
	// for traceability.
	Scheme string `json:"scheme"`

	// Code is the raw source text.
	Code string `json:"code"`

	// LastModified is the file mtime formatted YYYY-MM-DDTHH:MM:SS.
	// Exchange input may carry any string here, including "".
	LastModified string `json:"lastModified"`
}
