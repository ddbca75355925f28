package generator

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// generatedHeader marks every emitted file using the convention tooling
// recognizes.
const generatedHeader = "// Code generated by schematic. DO NOT EDIT.\n"

// sourceFile is the structured document the assembler builds before the
// reparse oracle runs. Fragments are concatenated in the exact order they
// were added; the assembler itself never reorders them.
type sourceFile struct {
	name      string
	doc       []string
	pkg       string
	imports   map[string]bool
	fragments []string
}

func newSourceFile(name, pkg string) *sourceFile {
	return &sourceFile{name: name, pkg: pkg, imports: map[string]bool{}}
}

// docf appends a line to the package doc comment.
func (f *sourceFile) docf(format string, args ...any) {
	f.doc = append(f.doc, fmt.Sprintf(format, args...))
}

func (f *sourceFile) addImport(path string) {
	if path != "" {
		f.imports[path] = true
	}
}

func (f *sourceFile) addFragment(src string) {
	if strings.TrimSpace(src) != "" {
		f.fragments = append(f.fragments, src)
	}
}

// render concatenates header, package doc, package clause, import block,
// and fragments, in that fixed order. The result is a candidate document;
// it must still pass the reparse oracle before it may be written.
func (f *sourceFile) render() []byte {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	buf.WriteString("\n")

	for _, line := range f.doc {
		if line == "" {
			buf.WriteString("//\n")
			continue
		}
		fmt.Fprintf(&buf, "// %s\n", line)
	}
	fmt.Fprintf(&buf, "package %s\n\n", f.pkg)

	if len(f.imports) > 0 {
		paths := make([]string, 0, len(f.imports))
		for path := range f.imports {
			paths = append(paths, path)
		}
		sort.Strings(paths)

		buf.WriteString("import (\n")
		for _, path := range paths {
			fmt.Fprintf(&buf, "\t%q\n", path)
		}
		buf.WriteString(")\n\n")
	}

	for i, frag := range f.fragments {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.TrimRight(frag, "\n"))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}
