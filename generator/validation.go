// Pre-generation validation. Every check runs over the full batch and all
// diagnostics are collected before generation is refused, so a caller can
// fix every issue in one pass.

package generator

import (
	"fmt"
	"regexp"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/internal/issues"
	"github.com/yankeeinlondon/schematic/internal/severity"
)

// requestSuffixPattern constrains custom wrapper suffixes to alphanumeric
// characters so every wrapper name stays a valid identifier.
var requestSuffixPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Validate runs every pre-generation check over a batch of API definitions
// and returns the collected diagnostics. Generation must not proceed unless
// the report is Ok.
func Validate(apis ...*define.RestAPI) *Report {
	report := &Report{}
	for _, api := range apis {
		validateAPI(api, report)
	}
	validateModuleSharing(apis, report)

	// APIs sharing a module path land in one generated file, so their
	// top-level identifiers must not overlap. APIs on distinct paths are
	// checked again per run; see Run.
	byPath := map[string][]*define.RestAPI{}
	var order []string
	for _, api := range apis {
		path := ModulePathFor(api)
		if len(byPath[path]) == 0 {
			order = append(order, path)
		}
		byPath[path] = append(byPath[path], api)
	}
	for _, path := range order {
		validateGeneratedNames(byPath[path], report)
	}

	return report
}

func validateAPI(api *define.RestAPI, report *Report) {
	suffix := requestSuffixFor(api)

	if api.RequestSuffix != "" && !requestSuffixPattern.MatchString(api.RequestSuffix) {
		report.add(issues.Issue{
			Code:     issues.CodeInvalidRequestSuffix,
			Path:     api.Name,
			Message:  fmt.Sprintf("request suffix %q must contain only letters and numbers", api.RequestSuffix),
			Severity: severity.SeverityError,
			Value:    api.RequestSuffix,
		})
	}

	seenEndpoints := map[string]bool{}
	for i := range api.Endpoints {
		ep := &api.Endpoints[i]
		path := api.Name + "." + ep.ID

		if seenEndpoints[ep.ID] {
			report.add(issues.Issue{
				Code:     issues.CodeDuplicateEndpoint,
				Path:     path,
				Message:  fmt.Sprintf("duplicate endpoint id %q", ep.ID),
				Severity: severity.SeverityError,
				Value:    ep.ID,
			})
		}
		seenEndpoints[ep.ID] = true

		if !ep.Method.Valid() {
			report.add(issues.Issue{
				Code:     issues.CodeMalformedPath,
				Path:     path,
				Message:  fmt.Sprintf("unsupported HTTP method %q", string(ep.Method)),
				Severity: severity.SeverityError,
				Value:    string(ep.Method),
			})
		}

		if _, err := ExtractPathParams(ep.Path); err != nil {
			report.add(issues.Issue{
				Code:     issues.CodeMalformedPath,
				Path:     path,
				Message:  err.Error(),
				Severity: severity.SeverityError,
				Value:    ep.Path,
			})
		}

		wrapperName := ep.ID + suffix
		validateNamingCollision(ep, wrapperName, path, report)
		validateRequestFields(ep, path, report)
	}

	validateCredentialConfig(api, report)
	validateModulePathReserved(api, report)
}

// reservedModulePaths are module paths whose output file name is already
// claimed by a generated file (doc.go, shared.go) or the manifest.
var reservedModulePaths = map[string]bool{
	"doc":    true,
	"shared": true,
	"go":     true,
}

func validateModulePathReserved(api *define.RestAPI, report *Report) {
	path := ModulePathFor(api)
	if !reservedModulePaths[path] {
		return
	}
	report.add(issues.Issue{
		Code: issues.CodeReservedModulePath,
		Path: api.Name,
		Message: fmt.Sprintf(
			"module path %q clashes with the generated file %s.go; set ModulePath explicitly",
			path, path),
		Severity: severity.SeverityError,
		Value:    path,
	})
}

// validateGeneratedNames flags top-level identifiers emitted more than once
// into one generated package: the client struct and request union per API,
// and one wrapper struct per endpoint. Colliding claims from one endpoint
// are skipped, duplicate endpoint ids are already reported.
func validateGeneratedNames(apis []*define.RestAPI, report *Report) {
	claims := map[string]string{}
	claim := func(name, path string) {
		prev, taken := claims[name]
		if !taken {
			claims[name] = path
			return
		}
		if prev == path {
			return
		}
		report.add(issues.Issue{
			Code: issues.CodeDuplicateGeneratedName,
			Path: path,
			Message: fmt.Sprintf(
				"generated name %q is already claimed by %s; the definitions cannot share one package",
				name, prev),
			Severity: severity.SeverityError,
			Value:    name,
		})
	}

	for _, api := range apis {
		claim(api.Name, api.Name)
		claim(unionName(api), api.Name)
		suffix := requestSuffixFor(api)
		for i := range api.Endpoints {
			ep := &api.Endpoints[i]
			claim(ep.ID+suffix, api.Name+"."+ep.ID)
		}
	}
}

// validateNamingCollision flags any endpoint whose JSON request or response
// schema is named exactly like the wrapper struct the generator would emit
// for it. Both directions collide in one package, so both are checked.
func validateNamingCollision(ep *define.Endpoint, wrapperName, path string, report *Report) {
	collide := func(schema define.Schema, role string) {
		if schema.TypeName != wrapperName {
			return
		}
		report.add(issues.Issue{
			Code: issues.CodeNamingCollision,
			Path: path,
			Message: fmt.Sprintf(
				"%s type %q collides with the generated request struct name; rename it (for example %q)",
				role, schema.TypeName, ep.ID+"Body"),
			Severity: severity.SeverityError,
			Value:    schema.TypeName,
		})
	}

	if req, ok := ep.Request.(define.JSONRequest); ok {
		collide(req.Schema, "body")
	}
	if resp, ok := ep.Response.(define.JSONResponse); ok {
		collide(resp.Schema, "response")
	}
}

func validateRequestFields(ep *define.Endpoint, path string, report *Report) {
	var fields []define.FormField
	urlEncoded := false

	switch req := ep.Request.(type) {
	case define.FormDataRequest:
		fields = req.Fields
	case define.URLEncodedRequest:
		fields = req.Fields
		urlEncoded = true
	default:
		return
	}

	seen := map[string]bool{}
	for _, f := range fields {
		fieldPath := path + "." + f.Name

		if seen[f.Name] {
			report.add(issues.Issue{
				Code:     issues.CodeDuplicateFormField,
				Path:     fieldPath,
				Message:  fmt.Sprintf("duplicate form field %q", f.Name),
				Severity: severity.SeverityError,
				Value:    f.Name,
			})
		}
		seen[f.Name] = true

		if urlEncoded {
			if _, ok := f.Kind.(define.TextField); !ok {
				report.add(issues.Issue{
					Code:     issues.CodeInvalidFormField,
					Path:     fieldPath,
					Message:  fmt.Sprintf("url-encoded field %q must be a text field, got %T", f.Name, f.Kind),
					Severity: severity.SeverityError,
					Value:    f.Name,
				})
			}
		}

		if multi, ok := f.Kind.(define.FilesField); ok {
			if multi.Min > 0 && multi.Max > 0 && multi.Min > multi.Max {
				report.add(issues.Issue{
					Code:     issues.CodeInvalidFormField,
					Path:     fieldPath,
					Message:  fmt.Sprintf("files field %q has min %d greater than max %d", f.Name, multi.Min, multi.Max),
					Severity: severity.SeverityError,
					Value:    f.Name,
				})
			}
		}
	}
}

// validateCredentialConfig warns when an auth strategy has no environment
// variables to probe. Generation still proceeds; every request made by the
// generated client will fail with a missing-credential error.
func validateCredentialConfig(api *define.RestAPI, report *Report) {
	switch api.Auth.(type) {
	case define.BearerToken, define.APIKey:
		if len(api.EnvAuth) == 0 {
			report.add(issues.Issue{
				Code:     issues.CodeMissingCredentialConfig,
				Path:     api.Name,
				Message:  "auth strategy probes environment variables but EnvAuth is empty",
				Severity: severity.SeverityWarning,
			})
		}
	case define.Basic:
		if api.EnvUsername == "" || api.EnvPassword == "" {
			report.add(issues.Issue{
				Code:     issues.CodeMissingCredentialConfig,
				Path:     api.Name,
				Message:  "basic auth requires both EnvUsername and EnvPassword to be set",
				Severity: severity.SeverityWarning,
			})
		}
	}
}

// validateModuleSharing builds a module-path multimap over the batch and
// flags any path claimed by more than one API unless every claimant set the
// path explicitly. Inferred sharing is refused because it silently merges
// unrelated APIs.
func validateModuleSharing(apis []*define.RestAPI, report *Report) {
	byPath := map[string][]*define.RestAPI{}
	var order []string
	for _, api := range apis {
		path := ModulePathFor(api)
		if len(byPath[path]) == 0 {
			order = append(order, path)
		}
		byPath[path] = append(byPath[path], api)
	}

	for _, path := range order {
		group := byPath[path]
		if len(group) < 2 {
			continue
		}
		allExplicit := true
		for _, api := range group {
			if api.ModulePath == "" {
				allExplicit = false
				break
			}
		}
		if allExplicit {
			continue
		}
		for _, api := range group {
			report.add(issues.Issue{
				Code: issues.CodeModulePathCollision,
				Path: api.Name,
				Message: fmt.Sprintf(
					"module path %q is shared by %d APIs; all of them must set ModulePath explicitly",
					path, len(group)),
				Severity: severity.SeverityError,
				Value:    path,
			})
		}
	}
}
