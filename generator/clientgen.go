// Client synthesis: the per-API client struct, its constructors, the
// auth-aware dispatch helper, and the terminal request methods.
//
// Which terminals exist is decided here, at generation time, from the
// declared response kinds: Request for JSON, RequestBytes for binary,
// RequestText for text, RequestEmpty for empty. Endpoints never choose a
// terminal at runtime; a binary endpoint's generated code contains no JSON
// decode at all. Each non-JSON endpoint additionally gets a convenience
// method with a concrete return type.

package generator

import (
	"bytes"
	"fmt"

	"github.com/yankeeinlondon/schematic"
	"github.com/yankeeinlondon/schematic/define"
)

// renderClient emits the client struct, constructors, Variant, the dispatch
// helper, and every terminal the API's response kinds require.
func renderClient(api *define.RestAPI, plans []*endpointPlan, file *sourceFile) {
	renderClientStruct(api, file)
	renderDispatch(api, file)
	renderTerminals(api, file)
	renderConvenienceMethods(api, plans, file)
}

func renderClientStruct(api *define.RestAPI, file *sourceFile) {
	name := api.Name
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// %sBaseURL is the default base URL for the %s API.\n", name, name)
	fmt.Fprintf(&buf, "const %sBaseURL = %q\n", name, api.BaseURL)
	file.addFragment(buf.String())

	buf.Reset()
	if api.Description != "" {
		fmt.Fprintf(&buf, "// %s is a client for the %s.\n", name, api.Description)
	} else {
		fmt.Fprintf(&buf, "// %s is an API client.\n", name)
	}
	if api.DocsURL != "" {
		fmt.Fprintf(&buf, "//\n// API documentation: %s\n", api.DocsURL)
	}
	fmt.Fprintf(&buf, "type %s struct {\n", name)
	buf.WriteString("\thttpClient *http.Client\n")
	buf.WriteString("\tbaseURL    string\n")
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	buf.Reset()
	fmt.Fprintf(&buf, "// New%s returns a client using the default base URL.\n", name)
	fmt.Fprintf(&buf, "func New%s() *%s {\n", name, name)
	fmt.Fprintf(&buf, "\treturn &%s{httpClient: http.DefaultClient, baseURL: %sBaseURL}\n", name, name)
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	buf.Reset()
	fmt.Fprintf(&buf, "// New%sWithBaseURL returns a client targeting a custom base URL, for\n", name)
	fmt.Fprintf(&buf, "// example a regional or self-hosted deployment.\n")
	fmt.Fprintf(&buf, "func New%sWithBaseURL(baseURL string) *%s {\n", name, name)
	fmt.Fprintf(&buf, "\treturn &%s{httpClient: http.DefaultClient, baseURL: baseURL}\n", name)
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	buf.Reset()
	fmt.Fprintf(&buf, "// New%sWithHTTPClient returns a client using a custom transport.\n", name)
	fmt.Fprintf(&buf, "func New%sWithHTTPClient(httpClient *http.Client) *%s {\n", name, name)
	fmt.Fprintf(&buf, "\treturn &%s{httpClient: httpClient, baseURL: %sBaseURL}\n", name, name)
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	buf.Reset()
	fmt.Fprintf(&buf, "// Variant returns a clone of the client targeting a different base URL\n")
	fmt.Fprintf(&buf, "// while keeping the transport. Use it for staging or regional deployments.\n")
	fmt.Fprintf(&buf, "func (c *%s) Variant(baseURL string) *%s {\n", name, name)
	fmt.Fprintf(&buf, "\treturn &%s{httpClient: c.httpClient, baseURL: baseURL}\n", name)
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	file.addImport("net/http")
}

// renderDispatch emits the do helper that every terminal funnels through:
// resolve parts, validate the method, build the body, resolve credentials,
// apply headers, execute, and map non-2xx responses to APIError.
func renderDispatch(api *define.RestAPI, file *sourceFile) {
	name := api.Name
	dispatch := lowerFirst(name) + "RequestParts"
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "func (c *%s) do(ctx context.Context, req %s) (*http.Response, error) {\n", name, unionName(api))
	fmt.Fprintf(&buf, "\tparts, err := %s(req)\n", dispatch)
	buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")

	buf.WriteString("\tswitch parts.Method {\n")
	buf.WriteString("\tcase \"GET\", \"POST\", \"PUT\", \"PATCH\", \"DELETE\", \"HEAD\", \"OPTIONS\":\n")
	buf.WriteString("\tdefault:\n\t\treturn nil, &UnsupportedMethodError{Method: parts.Method}\n")
	buf.WriteString("\t}\n")

	buf.WriteString("\tbody, contentType, err := parts.Payload.Body()\n")
	buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	buf.WriteString("\thttpReq, err := http.NewRequestWithContext(ctx, parts.Method, c.baseURL+parts.Path, body)\n")
	buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	buf.WriteString("\tif contentType != \"\" {\n\t\thttpReq.Header.Set(\"Content-Type\", contentType)\n\t}\n")
	fmt.Fprintf(&buf, "\thttpReq.Header.Set(\"User-Agent\", %q)\n", schematic.UserAgent())

	renderAuthSetup(api, &buf)

	buf.WriteString("\tfor _, h := range parts.Headers {\n\t\thttpReq.Header.Set(h[0], h[1])\n\t}\n")

	buf.WriteString("\tresp, err := c.httpClient.Do(httpReq)\n")
	buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
	buf.WriteString("\tif resp.StatusCode < 200 || resp.StatusCode >= 300 {\n")
	buf.WriteString("\t\tdefer resp.Body.Close()\n")
	buf.WriteString("\t\terrBody, _ := io.ReadAll(resp.Body)\n")
	buf.WriteString("\t\treturn nil, &APIError{Status: resp.StatusCode, Body: string(errBody)}\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\treturn resp, nil\n")
	buf.WriteString("}\n")
	file.addFragment(buf.String())

	file.addImport("context")
	file.addImport("io")
	file.addImport("net/http")
}

// renderAuthSetup bakes the API's auth strategy into the dispatch body.
// Only environment variable names appear in the output; values are resolved
// per call at client runtime.
func renderAuthSetup(api *define.RestAPI, buf *bytes.Buffer) {
	switch auth := api.Auth.(type) {
	case nil, define.AuthNone:
		// No authentication.
	case define.BearerToken:
		fmt.Fprintf(buf, "\ttoken, err := resolveEnvCredential(%s)\n", stringSliceLiteral(api.EnvAuth))
		buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		fmt.Fprintf(buf, "\thttpReq.Header.Set(%q, \"Bearer \"+token)\n", define.AuthHeader(auth))
	case define.APIKey:
		fmt.Fprintf(buf, "\tkey, err := resolveEnvCredential(%s)\n", stringSliceLiteral(api.EnvAuth))
		buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		fmt.Fprintf(buf, "\thttpReq.Header.Set(%q, key)\n", define.AuthHeader(auth))
	case define.Basic:
		fmt.Fprintf(buf, "\tusername, password, err := resolveBasicCredentials(%q, %q)\n",
			api.EnvUsername, api.EnvPassword)
		buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		buf.WriteString("\thttpReq.SetBasicAuth(username, password)\n")
	}
}

// renderTerminals emits only the terminal methods the API's declared
// response kinds require.
func renderTerminals(api *define.RestAPI, file *sourceFile) {
	name := api.Name
	union := unionName(api)
	hasJSON, hasBinary, hasText, hasEmpty := responseKinds(api)
	var buf bytes.Buffer

	if hasJSON {
		fmt.Fprintf(&buf, "// Request executes req and decodes the JSON response into out.\n")
		fmt.Fprintf(&buf, "func (c *%s) Request(ctx context.Context, req %s, out any) error {\n", name, union)
		buf.WriteString("\tresp, err := c.do(ctx, req)\n")
		buf.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
		buf.WriteString("\tdefer resp.Body.Close()\n")
		buf.WriteString("\tif err := json.NewDecoder(resp.Body).Decode(out); err != nil {\n")
		buf.WriteString("\t\treturn fmt.Errorf(\"decode response: %w\", err)\n\t}\n")
		buf.WriteString("\treturn nil\n}\n")
		file.addFragment(buf.String())
		file.addImport("encoding/json")
		file.addImport("fmt")
	}

	if hasBinary {
		buf.Reset()
		fmt.Fprintf(&buf, "// RequestBytes executes req and returns the raw response body. Use it\n")
		fmt.Fprintf(&buf, "// for endpoints returning audio, images, or other binary data.\n")
		fmt.Fprintf(&buf, "func (c *%s) RequestBytes(ctx context.Context, req %s) ([]byte, error) {\n", name, union)
		buf.WriteString("\tresp, err := c.do(ctx, req)\n")
		buf.WriteString("\tif err != nil {\n\t\treturn nil, err\n\t}\n")
		buf.WriteString("\tdefer resp.Body.Close()\n")
		buf.WriteString("\treturn io.ReadAll(resp.Body)\n}\n")
		file.addFragment(buf.String())
		file.addImport("io")
	}

	if hasText {
		buf.Reset()
		fmt.Fprintf(&buf, "// RequestText executes req and returns the response body as a string.\n")
		fmt.Fprintf(&buf, "func (c *%s) RequestText(ctx context.Context, req %s) (string, error) {\n", name, union)
		buf.WriteString("\tresp, err := c.do(ctx, req)\n")
		buf.WriteString("\tif err != nil {\n\t\treturn \"\", err\n\t}\n")
		buf.WriteString("\tdefer resp.Body.Close()\n")
		buf.WriteString("\ttext, err := io.ReadAll(resp.Body)\n")
		buf.WriteString("\tif err != nil {\n\t\treturn \"\", err\n\t}\n")
		buf.WriteString("\treturn string(text), nil\n}\n")
		file.addFragment(buf.String())
		file.addImport("io")
	}

	if hasEmpty {
		buf.Reset()
		fmt.Fprintf(&buf, "// RequestEmpty executes req and discards the response body.\n")
		fmt.Fprintf(&buf, "func (c *%s) RequestEmpty(ctx context.Context, req %s) error {\n", name, union)
		buf.WriteString("\tresp, err := c.do(ctx, req)\n")
		buf.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
		buf.WriteString("\tdefer resp.Body.Close()\n")
		buf.WriteString("\t_, err = io.Copy(io.Discard, resp.Body)\n")
		buf.WriteString("\treturn err\n}\n")
		file.addFragment(buf.String())
		file.addImport("io")
	}
}

// renderConvenienceMethods emits one named method per non-JSON endpoint so
// call sites get a concrete return type without choosing a terminal.
func renderConvenienceMethods(api *define.RestAPI, plans []*endpointPlan, file *sourceFile) {
	name := api.Name
	for _, plan := range plans {
		ep := plan.ep
		var terminal, ret string
		switch responseOf(ep).(type) {
		case define.BinaryResponse:
			terminal, ret = "RequestBytes", "([]byte, error)"
		case define.TextResponse:
			terminal, ret = "RequestText", "(string, error)"
		case define.EmptyResponse:
			terminal, ret = "RequestEmpty", "error"
		default:
			continue
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "// %s executes the %s endpoint.\n", ep.ID, ep.ID)
		if ep.Description != "" {
			fmt.Fprintf(&buf, "//\n// %s\n", ep.Description)
		}
		fmt.Fprintf(&buf, "func (c *%s) %s(ctx context.Context, req %s) %s {\n", name, ep.ID, plan.wrapper, ret)
		fmt.Fprintf(&buf, "\treturn c.%s(ctx, req)\n", terminal)
		buf.WriteString("}\n")
		file.addFragment(buf.String())
	}
	file.addImport("context")
}

// responseKinds reports which response kinds appear across the endpoints.
func responseKinds(api *define.RestAPI) (hasJSON, hasBinary, hasText, hasEmpty bool) {
	for i := range api.Endpoints {
		switch responseOf(&api.Endpoints[i]).(type) {
		case define.JSONResponse:
			hasJSON = true
		case define.BinaryResponse:
			hasBinary = true
		case define.TextResponse:
			hasText = true
		case define.EmptyResponse:
			hasEmpty = true
		}
	}
	return
}

// responseOf treats a nil response as EmptyResponse.
func responseOf(ep *define.Endpoint) define.Response {
	if ep.Response == nil {
		return define.EmptyResponse{}
	}
	return ep.Response
}

func stringSliceLiteral(values []string) string {
	var buf bytes.Buffer
	buf.WriteString("[]string{")
	for i, v := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%q", v)
	}
	buf.WriteString("}")
	return buf.String()
}
