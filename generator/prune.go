// AST-based removal of stale top-level declarations from previously
// generated source. Textual or regex removal breaks on nested braces and
// doc comments, so pruning parses the file and drops whole declarations.

package generator

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
)

// PruneDecls removes the named top-level declarations from src and returns
// the reformatted source. For each name it removes the matching type,
// value, or function declaration along with its doc comment, and every
// method whose receiver is a removed type. Names with no match are ignored.
func PruneDecls(src []byte, names ...string) ([]byte, error) {
	drop := map[string]bool{}
	for _, n := range names {
		drop[n] = true
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "pruned.go", src, parser.ParseComments)
	if err != nil {
		return nil, &CodeGenError{File: "pruned.go", Err: err}
	}

	kept := file.Decls[:0]
	for _, decl := range file.Decls {
		if pruneDecl(decl, drop) {
			continue
		}
		kept = append(kept, decl)
	}
	file.Decls = kept

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, &CodeGenError{File: "pruned.go", Err: err}
	}
	return buf.Bytes(), nil
}

// pruneDecl reports whether decl should be dropped. Mixed GenDecls keep
// their surviving specs.
func pruneDecl(decl ast.Decl, drop map[string]bool) bool {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Recv != nil {
			return drop[receiverTypeName(d.Recv)]
		}
		return drop[d.Name.Name]
	case *ast.GenDecl:
		kept := d.Specs[:0]
		for _, spec := range d.Specs {
			if !pruneSpec(spec, drop) {
				kept = append(kept, spec)
			}
		}
		d.Specs = kept
		return len(d.Specs) == 0
	}
	return false
}

func pruneSpec(spec ast.Spec, drop map[string]bool) bool {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		return drop[s.Name.Name]
	case *ast.ValueSpec:
		for _, name := range s.Names {
			if drop[name.Name] {
				return true
			}
		}
	}
	return false
}

func receiverTypeName(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}
