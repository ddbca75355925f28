// Request struct synthesis. Each endpoint yields one wrapper struct whose
// leading fields are its path parameters in first-appearance order, followed
// by fields derived from the request body shape, plus a constructor and an
// unexported parts method that freezes the endpoint's method, resolved path,
// payload, and headers.

package generator

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/yankeeinlondon/schematic/define"
)

// requestField is one generated struct field.
type requestField struct {
	goName   string
	goType   string
	optional bool
	doc      string
	// formName is the wire name for form fields; empty for path params and
	// body fields.
	formName string
	kind     define.FieldKind
}

// endpointPlan is the per-endpoint analysis every synthesizer shares.
type endpointPlan struct {
	ep         *define.Endpoint
	wrapper    string
	pathParams []string
	bodyFields []requestField
	headers    []define.Header
}

// planEndpoint analyzes one endpoint. Path extraction errors surface here
// as DefinitionErrors carrying the endpoint id.
func planEndpoint(api *define.RestAPI, ep *define.Endpoint, suffix string) (*endpointPlan, error) {
	params, err := ExtractPathParams(ep.Path)
	if err != nil {
		var defErr *DefinitionError
		if errors.As(err, &defErr) {
			defErr.API = api.Name
			defErr.Endpoint = ep.ID
		}
		return nil, err
	}

	plan := &endpointPlan{
		ep:         ep,
		wrapper:    ep.ID + suffix,
		pathParams: params,
		headers:    define.MergeHeaders(api.Headers, ep.Headers),
	}

	switch req := ep.Request.(type) {
	case nil:
	case define.JSONRequest:
		plan.bodyFields = append(plan.bodyFields, requestField{
			goName: "Body",
			goType: qualifiedSchemaType(req.Schema),
			doc:    "Body is the JSON request body.",
		})
	case define.TextRequest:
		plan.bodyFields = append(plan.bodyFields, requestField{
			goName: "Body",
			goType: "string",
			doc:    "Body is the raw text request body.",
		})
	case define.BinaryRequest:
		plan.bodyFields = append(plan.bodyFields, requestField{
			goName: "Body",
			goType: "[]byte",
			doc:    "Body is the raw binary request body.",
		})
	case define.FormDataRequest:
		plan.bodyFields = formFields(req.Fields)
	case define.URLEncodedRequest:
		plan.bodyFields = formFields(req.Fields)
	}

	return plan, nil
}

func formFields(fields []define.FormField) []requestField {
	out := make([]requestField, 0, len(fields))
	for _, f := range fields {
		rf := requestField{
			goName:   exportedName(f.Name),
			optional: !f.Required,
			doc:      f.Description,
			formName: f.Name,
			kind:     f.Kind,
		}
		switch kind := f.Kind.(type) {
		case define.TextField:
			rf.goType = "string"
		case define.FileField:
			rf.goType = "FileUpload"
		case define.FilesField:
			rf.goType = "[]FileUpload"
		case define.JSONField:
			rf.goType = qualifiedSchemaType(kind.Schema)
		}
		out = append(out, rf)
	}
	return out
}

// fieldType renders the declared type, wrapping optional scalar fields in a
// pointer. Optional multi-file fields stay slices; a nil slice already
// means absent.
func (f requestField) fieldType() string {
	if f.optional && !strings.HasPrefix(f.goType, "[]") {
		return "*" + f.goType
	}
	return f.goType
}

// renderRequestStruct emits the wrapper struct, its constructor, and its
// parts method for one endpoint.
func renderRequestStruct(plan *endpointPlan, file *sourceFile) {
	var buf bytes.Buffer
	ep := plan.ep

	fmt.Fprintf(&buf, "// %s is the request for the %s endpoint.\n", plan.wrapper, ep.ID)
	if ep.Description != "" {
		fmt.Fprintf(&buf, "//\n// %s\n", ep.Description)
	}
	fmt.Fprintf(&buf, "type %s struct {\n", plan.wrapper)
	for _, p := range plan.pathParams {
		fmt.Fprintf(&buf, "\t// %s is the {%s} path parameter.\n", exportedName(p), p)
		fmt.Fprintf(&buf, "\t%s string\n", exportedName(p))
	}
	for _, f := range plan.bodyFields {
		if f.doc != "" {
			fmt.Fprintf(&buf, "\t// %s\n", f.doc)
		}
		if f.optional {
			fmt.Fprintf(&buf, "\t// Optional; left out of the request when nil.\n")
		}
		fmt.Fprintf(&buf, "\t%s %s\n", f.goName, f.fieldType())
	}
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	renderConstructor(plan, file)
	renderPartsMethod(plan, file)
}

// renderConstructor emits New<Wrapper> taking the path parameters followed
// by the required body fields. Optional fields are assigned on the struct
// after construction.
func renderConstructor(plan *endpointPlan, file *sourceFile) {
	var buf bytes.Buffer

	var args []string
	var assigns []string
	for _, p := range plan.pathParams {
		args = append(args, fmt.Sprintf("%s string", argName(p)))
		assigns = append(assigns, fmt.Sprintf("%s: %s", exportedName(p), argName(p)))
	}
	for _, f := range plan.bodyFields {
		if f.optional {
			continue
		}
		arg := escapeReservedWord(lowerFirst(f.goName))
		args = append(args, fmt.Sprintf("%s %s", arg, f.goType))
		assigns = append(assigns, fmt.Sprintf("%s: %s", f.goName, arg))
	}

	fmt.Fprintf(&buf, "// New%s returns a %s with every required value set.\n", plan.wrapper, plan.wrapper)
	fmt.Fprintf(&buf, "func New%s(%s) %s {\n", plan.wrapper, strings.Join(args, ", "), plan.wrapper)
	if len(assigns) == 0 {
		fmt.Fprintf(&buf, "\treturn %s{}\n", plan.wrapper)
	} else {
		fmt.Fprintf(&buf, "\treturn %s{\n", plan.wrapper)
		for _, a := range assigns {
			fmt.Fprintf(&buf, "\t\t%s,\n", a)
		}
		buf.WriteString("\t}\n")
	}
	buf.WriteString("}\n")
	file.addFragment(buf.String())
}

// renderPartsMethod emits the parts method resolving the endpoint's path
// template and building its payload.
func renderPartsMethod(plan *endpointPlan, file *sourceFile) {
	var buf bytes.Buffer
	ep := plan.ep

	fmt.Fprintf(&buf, "func (r %s) parts() (RequestParts, error) {\n", plan.wrapper)
	renderPayload(plan, &buf, file)
	fmt.Fprintf(&buf, "\treturn RequestParts{\n")
	fmt.Fprintf(&buf, "\t\tMethod: %q,\n", string(ep.Method))
	fmt.Fprintf(&buf, "\t\tPath: %s,\n", pathExpression(ep.Path, plan.pathParams))
	fmt.Fprintf(&buf, "\t\tPayload: payload,\n")
	if len(plan.headers) > 0 {
		fmt.Fprintf(&buf, "\t\tHeaders: [][2]string{\n")
		for _, h := range plan.headers {
			fmt.Fprintf(&buf, "\t\t\t{%q, %q},\n", h.Name, h.Value)
		}
		fmt.Fprintf(&buf, "\t\t},\n")
	}
	buf.WriteString("\t}, nil\n")
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	if len(plan.pathParams) > 0 {
		file.addImport("fmt")
	}
}

// renderPayload writes statements assigning the payload variable for the
// endpoint's request shape.
func renderPayload(plan *endpointPlan, buf *bytes.Buffer, file *sourceFile) {
	switch req := plan.ep.Request.(type) {
	case nil:
		fmt.Fprintf(buf, "\tpayload := NoPayload()\n")
	case define.JSONRequest:
		fmt.Fprintf(buf, "\tpayload, err := JSONPayload(r.Body)\n")
		fmt.Fprintf(buf, "\tif err != nil {\n\t\treturn RequestParts{}, err\n\t}\n")
	case define.TextRequest:
		fmt.Fprintf(buf, "\tpayload := RawPayload([]byte(r.Body), %q)\n", contentTypeOr(req.ContentType, "text/plain"))
	case define.BinaryRequest:
		fmt.Fprintf(buf, "\tpayload := RawPayload(r.Body, %q)\n", contentTypeOr(req.ContentType, "application/octet-stream"))
	case define.URLEncodedRequest:
		file.addImport("net/url")
		fmt.Fprintf(buf, "\tform := url.Values{}\n")
		for _, f := range plan.bodyFields {
			if f.optional {
				fmt.Fprintf(buf, "\tif r.%s != nil {\n\t\tform.Set(%q, *r.%s)\n\t}\n", f.goName, f.formName, f.goName)
			} else {
				fmt.Fprintf(buf, "\tform.Set(%q, r.%s)\n", f.formName, f.goName)
			}
		}
		fmt.Fprintf(buf, "\tpayload := FormPayload(form)\n")
	case define.FormDataRequest:
		renderMultipartPayload(plan, buf)
	}
}

func renderMultipartPayload(plan *endpointPlan, buf *bytes.Buffer) {
	fmt.Fprintf(buf, "\tvar parts []FormPart\n")
	needsErr := false
	for _, f := range plan.bodyFields {
		switch f.kind.(type) {
		case define.JSONField:
			needsErr = true
		}
	}
	if needsErr {
		fmt.Fprintf(buf, "\tvar err error\n\tvar part FormPart\n")
	}

	for _, f := range plan.bodyFields {
		switch f.kind.(type) {
		case define.TextField:
			if f.optional {
				fmt.Fprintf(buf, "\tif r.%s != nil {\n\t\tparts = append(parts, TextPart(%q, *r.%s))\n\t}\n",
					f.goName, f.formName, f.goName)
			} else {
				fmt.Fprintf(buf, "\tparts = append(parts, TextPart(%q, r.%s))\n", f.formName, f.goName)
			}
		case define.FileField:
			if f.optional {
				fmt.Fprintf(buf, "\tif r.%s != nil {\n\t\tparts = append(parts, FilePart(%q, *r.%s))\n\t}\n",
					f.goName, f.formName, f.goName)
			} else {
				fmt.Fprintf(buf, "\tparts = append(parts, FilePart(%q, r.%s))\n", f.formName, f.goName)
			}
		case define.FilesField:
			fmt.Fprintf(buf, "\tif len(r.%s) > 0 {\n\t\tparts = append(parts, FilesPart(%q, r.%s))\n\t}\n",
				f.goName, f.formName, f.goName)
		case define.JSONField:
			deref := "r." + f.goName
			indent := "\t"
			if f.optional {
				fmt.Fprintf(buf, "\tif r.%s != nil {\n", f.goName)
				indent = "\t\t"
			}
			fmt.Fprintf(buf, "%spart, err = JSONPart(%q, %s)\n", indent, f.formName, deref)
			fmt.Fprintf(buf, "%sif err != nil {\n%s\treturn RequestParts{}, err\n%s}\n", indent, indent, indent)
			fmt.Fprintf(buf, "%sparts = append(parts, part)\n", indent)
			if f.optional {
				fmt.Fprintf(buf, "\t}\n")
			}
		}
	}
	fmt.Fprintf(buf, "\tpayload := MultipartPayload(parts...)\n")
}

// pathExpression renders the resolved path for a template. Templates without
// parameters become a plain string literal; parameterized templates become a
// fmt.Sprintf call with indexed verbs so duplicate placeholders reuse one
// argument.
func pathExpression(template string, params []string) string {
	if len(params) == 0 {
		return fmt.Sprintf("%q", template)
	}

	index := map[string]int{}
	for i, p := range params {
		index[p] = i + 1
	}

	format := strings.ReplaceAll(template, "%", "%%")
	for _, p := range params {
		format = strings.ReplaceAll(format, "{"+p+"}", fmt.Sprintf("%%[%d]s", index[p]))
	}

	args := make([]string, 0, len(params))
	for _, p := range params {
		args = append(args, "r."+exportedName(p))
	}
	return fmt.Sprintf("fmt.Sprintf(%q, %s)", format, strings.Join(args, ", "))
}

// schemaImports records the import every externally defined request schema
// type needs. Response schemas never appear in generated source (callers
// supply the decode target), so only request-side schemas matter here.
func schemaImports(api *define.RestAPI, file *sourceFile) {
	record := func(s define.Schema) {
		if s.ImportPath != "" {
			file.addImport(s.ImportPath)
		}
	}
	for _, ep := range api.Endpoints {
		switch req := ep.Request.(type) {
		case define.JSONRequest:
			record(req.Schema)
		case define.FormDataRequest:
			for _, f := range req.Fields {
				if jf, ok := f.Kind.(define.JSONField); ok {
					record(jf.Schema)
				}
			}
		}
	}
}

func contentTypeOr(ct, fallback string) string {
	if ct != "" {
		return ct
	}
	return fallback
}

// qualifiedSchemaType renders a schema reference, qualifying externally
// defined types with their package base name.
func qualifiedSchemaType(s define.Schema) string {
	if s.ImportPath != "" {
		return path.Base(s.ImportPath) + "." + s.TypeName
	}
	return s.TypeName
}
