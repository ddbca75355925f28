// Runtime support shared by all generated API clients. This file is emitted
// verbatim into every generated package (with the package clause rewritten),
// so it must only depend on the standard library.

package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"strings"
)

// APIError is returned for any non-2xx HTTP response, regardless of the
// endpoint's declared response kind.
type APIError struct {
	// Status is the HTTP status code.
	Status int
	// Body is the raw response body, useful for upstream error details.
	Body string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Body)
}

// MissingCredentialError is returned when no probed environment variable
// holds a credential. EnvVars always lists every variable that was probed,
// not only the first, since that list is the user's remediation signal.
type MissingCredentialError struct {
	EnvVars []string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential: none of the environment variables [%s] are set",
		strings.Join(e.EnvVars, ", "))
}

// UnsupportedMethodError is returned when a request carries an HTTP method
// the client does not recognize. Request methods are fixed at generation
// time, so seeing this error indicates a generator defect.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported HTTP method %q", e.Method)
}

// PayloadKind discriminates the request body representations.
type PayloadKind int

const (
	// PayloadNone means the request carries no body.
	PayloadNone PayloadKind = iota
	// PayloadJSON means the body is a JSON document.
	PayloadJSON
	// PayloadRaw means the body is raw bytes with an explicit content type.
	PayloadRaw
	// PayloadMultipart means the body is a multipart/form-data part list.
	PayloadMultipart
)

// Payload is the tagged union of request body representations. Exactly the
// fields matching Kind are populated.
type Payload struct {
	Kind        PayloadKind
	JSON        []byte
	Raw         []byte
	ContentType string
	Parts       []FormPart
}

// NoPayload returns the empty-body payload.
func NoPayload() Payload {
	return Payload{Kind: PayloadNone}
}

// JSONPayload serializes v into a JSON payload.
func JSONPayload(v any) (Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Payload{}, fmt.Errorf("serialize request body: %w", err)
	}
	return Payload{Kind: PayloadJSON, JSON: data}, nil
}

// RawPayload returns a raw byte payload with the given content type.
func RawPayload(data []byte, contentType string) Payload {
	return Payload{Kind: PayloadRaw, Raw: data, ContentType: contentType}
}

// FormPayload url-encodes values into a raw payload.
func FormPayload(values url.Values) Payload {
	return RawPayload([]byte(values.Encode()), "application/x-www-form-urlencoded")
}

// MultipartPayload returns a multipart/form-data payload from parts.
func MultipartPayload(parts ...FormPart) Payload {
	return Payload{Kind: PayloadMultipart, Parts: parts}
}

// FormPart is one field of a multipart request body. Files is set for file
// parts; Value holds the content of text and JSON parts.
type FormPart struct {
	Name  string
	Value string
	Files []FileUpload
}

// TextPart returns a plain text form part.
func TextPart(name, value string) FormPart {
	return FormPart{Name: name, Value: value}
}

// JSONPart returns a form part whose value is the JSON serialization of v.
func JSONPart(name string, v any) (FormPart, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return FormPart{}, fmt.Errorf("serialize form field %q: %w", name, err)
	}
	return FormPart{Name: name, Value: string(data)}, nil
}

// FilePart returns a single-file form part.
func FilePart(name string, file FileUpload) FormPart {
	return FormPart{Name: name, Files: []FileUpload{file}}
}

// FilesPart returns a multi-file form part. Every file is sent under the
// same field name.
func FilesPart(name string, files []FileUpload) FormPart {
	return FormPart{Name: name, Files: files}
}

// FileUpload is an in-memory file attached to a multipart request.
type FileUpload struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Body renders the payload as a reader plus the Content-Type header value.
// PayloadNone yields a nil reader and empty content type.
func (p Payload) Body() (io.Reader, string, error) {
	switch p.Kind {
	case PayloadNone:
		return nil, "", nil
	case PayloadJSON:
		return bytes.NewReader(p.JSON), "application/json", nil
	case PayloadRaw:
		return bytes.NewReader(p.Raw), p.ContentType, nil
	case PayloadMultipart:
		return encodeMultipart(p.Parts)
	}
	return nil, "", fmt.Errorf("unknown payload kind %d", p.Kind)
}

func encodeMultipart(parts []FormPart) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, part := range parts {
		if len(part.Files) == 0 {
			if err := w.WriteField(part.Name, part.Value); err != nil {
				return nil, "", fmt.Errorf("write form field %q: %w", part.Name, err)
			}
			continue
		}
		for _, file := range part.Files {
			header := textproto.MIMEHeader{}
			header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
				part.Name, file.Filename))
			if file.ContentType != "" {
				header.Set("Content-Type", file.ContentType)
			}
			fw, err := w.CreatePart(header)
			if err != nil {
				return nil, "", fmt.Errorf("write file field %q: %w", part.Name, err)
			}
			if _, err := fw.Write(file.Content); err != nil {
				return nil, "", fmt.Errorf("write file field %q: %w", part.Name, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// resolveEnvCredential probes envVars in order and returns the first value
// that is set. When none are, the error lists the full probed list.
func resolveEnvCredential(envVars []string) (string, error) {
	for _, name := range envVars {
		if value := os.Getenv(name); value != "" {
			return value, nil
		}
	}
	return "", &MissingCredentialError{EnvVars: envVars}
}

// resolveBasicCredentials requires both variables individually; there is no
// fallback chain. The error lists both configured names even when only one
// is missing.
func resolveBasicCredentials(usernameVar, passwordVar string) (string, string, error) {
	username := os.Getenv(usernameVar)
	password := os.Getenv(passwordVar)
	if username == "" || password == "" {
		return "", "", &MissingCredentialError{EnvVars: []string{usernameVar, passwordVar}}
	}
	return username, password, nil
}
