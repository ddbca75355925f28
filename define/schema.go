package define

// Schema references a named Go type carried by a JSON request or response
// body. The generator emits the reference; the type itself is supplied by
// the consumer of the generated client.
type Schema struct {
	// TypeName is the type referenced in generated code (e.g.,
	// "ChatCompletionRequest").
	TypeName string
	// ImportPath is the package providing TypeName. Empty means the type
	// lives alongside the generated client.
	ImportPath string
}

// NewSchema references a type defined alongside the generated client.
func NewSchema(typeName string) Schema {
	return Schema{TypeName: typeName}
}

// SchemaAt references a type from another package by import path.
func SchemaAt(typeName, importPath string) Schema {
	return Schema{TypeName: typeName, ImportPath: importPath}
}
