package define

// Request describes an endpoint's request body. It is a closed set:
// JSONRequest, FormDataRequest, URLEncodedRequest, TextRequest, and
// BinaryRequest are the only implementations. A nil Request means the
// endpoint carries no body.
type Request interface {
	isRequest()
}

// JSONRequest is a JSON body described by a schema. The generated request
// struct gains a Body field of the schema's type, serialized with
// encoding/json.
type JSONRequest struct {
	Schema Schema
}

// FormDataRequest is a multipart/form-data body built from named fields.
// Required fields become struct fields; optional ones become pointers.
type FormDataRequest struct {
	Fields []FormField
}

// URLEncodedRequest is an application/x-www-form-urlencoded body. Only text
// fields are permitted; file and JSON fields are rejected by validation.
type URLEncodedRequest struct {
	Fields []FormField
}

// TextRequest is a raw text body sent with the given content type
// (e.g., "text/plain").
type TextRequest struct {
	ContentType string
}

// BinaryRequest is a raw byte body sent with the given content type
// (e.g., "application/octet-stream"). The generated struct carries a
// []byte Body field.
type BinaryRequest struct {
	ContentType string
}

func (JSONRequest) isRequest()       {}
func (FormDataRequest) isRequest()   {}
func (URLEncodedRequest) isRequest() {}
func (TextRequest) isRequest()       {}
func (BinaryRequest) isRequest()     {}

// FieldKind describes what a form field carries. It is a closed set:
// TextField, FileField, FilesField, and JSONField are the only
// implementations.
type FieldKind interface {
	isFieldKind()
}

// TextField is a plain string form value.
type TextField struct{}

// FileField is a single file upload.
type FileField struct {
	// Accept lists acceptable file extensions or MIME types (informational;
	// carried into generated doc comments).
	Accept []string
}

// FilesField is a multiple file upload. Min and Max bound the file count;
// zero means unbounded on that side.
type FilesField struct {
	Accept []string
	Min    int
	Max    int
}

// JSONField is a form value whose string content is the JSON serialization
// of the schema's type.
type JSONField struct {
	Schema Schema
}

func (TextField) isFieldKind()  {}
func (FileField) isFieldKind()  {}
func (FilesField) isFieldKind() {}
func (JSONField) isFieldKind()  {}

// FormField is a single field of a form-data or url-encoded request body.
// Fields are required by default; use Optional to relax that.
type FormField struct {
	Name        string
	Kind        FieldKind
	Required    bool
	Description string
}

// NewTextField returns a required text field.
func NewTextField(name string) FormField {
	return FormField{Name: name, Kind: TextField{}, Required: true}
}

// NewFileField returns a required single-file field. Any accept patterns
// are carried into the generated documentation.
func NewFileField(name string, accept ...string) FormField {
	return FormField{Name: name, Kind: FileField{Accept: accept}, Required: true}
}

// NewFilesField returns a required multi-file field with no count bounds.
func NewFilesField(name string, accept ...string) FormField {
	return FormField{Name: name, Kind: FilesField{Accept: accept}, Required: true}
}

// NewFilesFieldBounded returns a required multi-file field accepting between
// min and max files. Zero leaves the corresponding bound open.
func NewFilesFieldBounded(name string, accept []string, min, max int) FormField {
	return FormField{Name: name, Kind: FilesField{Accept: accept, Min: min, Max: max}, Required: true}
}

// NewJSONField returns a required field carrying a JSON-serialized value of
// the schema's type.
func NewJSONField(name string, schema Schema) FormField {
	return FormField{Name: name, Kind: JSONField{Schema: schema}, Required: true}
}

// Optional returns a copy of the field marked optional. Optional fields
// become pointer-typed in generated request structs and are omitted from the
// body when nil.
func (f FormField) Optional() FormField {
	f.Required = false
	return f
}

// WithDescription returns a copy of the field with a doc comment attached to
// its generated struct field.
func (f FormField) WithDescription(desc string) FormField {
	f.Description = desc
	return f
}
