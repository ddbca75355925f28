package generator

import (
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yankeeinlondon/schematic/define"
)

// config holds the resolved generation settings.
type config struct {
	apis           []*define.RestAPI
	outputDir      string
	pkgName        string
	manifestModule string
	dryRun         bool
}

// Option configures a generation run.
type Option func(*config)

// WithAPIs adds API definitions to the run. May be given multiple times.
func WithAPIs(apis ...*define.RestAPI) Option {
	return func(c *config) {
		c.apis = append(c.apis, apis...)
	}
}

// WithOutputDir sets the directory generated files are written into. It is
// required unless the run is a dry run.
func WithOutputDir(dir string) Option {
	return func(c *config) {
		c.outputDir = dir
	}
}

// WithPackageName overrides the generated package name. Defaults to
// "schema".
func WithPackageName(name string) Option {
	return func(c *config) {
		c.pkgName = name
	}
}

// WithManifestModule overrides the module path declared in the generated
// go.mod. Defaults to the package name.
func WithManifestModule(modulePath string) Option {
	return func(c *config) {
		c.manifestModule = modulePath
	}
}

// WithDryRun runs the full pipeline, including the reparse oracle, without
// writing anything.
func WithDryRun(dryRun bool) Option {
	return func(c *config) {
		c.dryRun = dryRun
	}
}

// GeneratedFile is one emitted file.
type GeneratedFile struct {
	// Name is the file name within the output directory.
	Name string
	// Content is the final formatted source.
	Content []byte
}

// Result holds the outcome of a generation run.
type Result struct {
	// Files are all generated files: shared.go, doc.go, one file per API
	// module, and the go.mod manifest.
	Files []GeneratedFile
	// PackageName is the generated package name.
	PackageName string
	// Report carries validation diagnostics, including non-blocking
	// warnings from a successful run.
	Report *Report
	// Written is true when the files were persisted (not a dry run).
	Written bool
	// GenerateTime is the wall time spent synthesizing and formatting.
	GenerateTime time.Duration
}

// GetFile returns the generated file with the given name, or nil.
func (r *Result) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Run executes the full pipeline: validate, synthesize, assemble, reparse,
// format, and (unless dry-run) write atomically. Validation failures return
// a ValidationError carrying the full report; nothing is written in that
// case and the output directory is left untouched.
func Run(opts ...Option) (*Result, error) {
	cfg := &config{pkgName: "schema"}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.apis) == 0 {
		return nil, &ConfigError{Detail: "at least one API definition is required"}
	}
	if !cfg.dryRun && cfg.outputDir == "" {
		return nil, &ConfigError{Detail: "an output directory is required unless running with WithDryRun"}
	}
	if cfg.manifestModule == "" {
		cfg.manifestModule = cfg.pkgName
	}

	start := time.Now()

	report := Validate(cfg.apis...)
	if report.Ok() {
		// Every API in a run shares one package even across module files,
		// so name uniqueness must hold over the whole batch, not just
		// within each module group.
		validateGeneratedNames(cfg.apis, report)
	}
	if !report.Ok() {
		return nil, &ValidationError{Report: report}
	}

	// APIs that share an explicit module path land in one file; groups are
	// ordered by path so output is stable regardless of input order.
	groups := groupByModule(cfg.apis)

	sharedSrc, err := renderSharedFile(cfg.pkgName)
	if err != nil {
		return nil, err
	}
	docSrc, err := renderPackageDoc(cfg.pkgName, groups)
	if err != nil {
		return nil, err
	}

	// Each module file is an independent tree transformation, so a batch
	// run synthesizes them concurrently.
	rendered := make([][]byte, len(groups))
	var eg errgroup.Group
	for i, group := range groups {
		eg.Go(func() error {
			src, renderErr := assembleModuleFile(group, cfg.pkgName)
			if renderErr != nil {
				return renderErr
			}
			rendered[i] = src
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(groups)+3)
	files = append(files, GeneratedFile{Name: sharedFileName, Content: sharedSrc})
	files = append(files, GeneratedFile{Name: "doc.go", Content: docSrc})
	for i, group := range groups {
		files = append(files, GeneratedFile{Name: group.path + ".go", Content: rendered[i]})
	}
	files = append(files, GeneratedFile{Name: manifestFileName, Content: renderManifest(cfg.manifestModule)})

	result := &Result{
		Files:        files,
		PackageName:  cfg.pkgName,
		Report:       report,
		GenerateTime: time.Since(start),
	}

	if !cfg.dryRun {
		if err := result.WriteFiles(cfg.outputDir); err != nil {
			return nil, err
		}
		result.Written = true
	}
	return result, nil
}

// moduleGroup is the set of APIs emitted into one generated file. Sharing
// requires explicit ModulePath agreement, which validation enforces.
type moduleGroup struct {
	path string
	apis []*define.RestAPI
}

// groupByModule buckets APIs by resolved module path and orders the groups
// by path. Within a group, definition order is preserved.
func groupByModule(apis []*define.RestAPI) []moduleGroup {
	byPath := map[string]int{}
	var groups []moduleGroup
	for _, api := range apis {
		path := ModulePathFor(api)
		if i, ok := byPath[path]; ok {
			groups[i].apis = append(groups[i].apis, api)
			continue
		}
		byPath[path] = len(groups)
		groups = append(groups, moduleGroup{path: path, apis: []*define.RestAPI{api}})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].path < groups[j].path })
	return groups
}

// assembleModuleFile runs every synthesizer for each API in the group and
// passes the assembled document through the reparse oracle and formatter.
func assembleModuleFile(group moduleGroup, pkgName string) ([]byte, error) {
	fileName := group.path + ".go"
	file := newSourceFile(fileName, pkgName)

	for _, api := range group.apis {
		suffix := requestSuffixFor(api)
		schemaImports(api, file)

		plans := make([]*endpointPlan, 0, len(api.Endpoints))
		for i := range api.Endpoints {
			plan, err := planEndpoint(api, &api.Endpoints[i], suffix)
			if err != nil {
				return nil, err
			}
			plans = append(plans, plan)
		}

		for _, plan := range plans {
			renderRequestStruct(plan, file)
		}
		renderRequestUnion(api, plans, file)
		renderClient(api, plans, file)
	}

	return formatSource(fileName, file.render())
}

// renderPackageDoc emits the generated package's doc.go.
func renderPackageDoc(pkgName string, groups []moduleGroup) ([]byte, error) {
	file := newSourceFile("doc.go", pkgName)
	file.docf("Package %s contains generated REST API clients.", pkgName)
	file.docf("")
	file.docf("Available clients:")
	for _, group := range groups {
		for _, api := range group.apis {
			file.docf("  - %s (%s)", api.Name, api.BaseURL)
		}
	}
	return formatSource("doc.go", file.render())
}
