// internal/snippet/snippet.go
package snippet

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"

	"arch-rule-checker/internal/checker"

	"golang.org/x/tools/go/ast/astutil"
)

// Method returns the formatted source of method declared on useCase in src.
// For a method declared inside an interface the whole type declaration is
// returned.
func Method(path string, src []byte, useCase, method string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return "", err
	}
	node := findMethod(file, useCase, method)
	if node == nil {
		return "", fmt.Errorf("method '%s.%s' not found in file '%s'", useCase, method, path)
	}
	return render(fset, node)
}

// At returns the formatted declaration enclosing line in src.
func At(path string, src []byte, line int) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return "", err
	}
	tf := fset.File(file.Pos())
	if line < 1 || line > tf.LineCount() {
		return "", fmt.Errorf("line %d out of range in file '%s'", line, path)
	}
	pos := tf.LineStart(line)
	nodes, _ := astutil.PathEnclosingInterval(file, pos, pos)
	for _, n := range nodes {
		switch n := n.(type) {
		case *ast.FuncDecl:
			return render(fset, n)
		case *ast.GenDecl:
			if n.Tok == token.TYPE {
				return render(fset, n)
			}
		}
	}
	return "", fmt.Errorf("no declaration at line %d in file '%s'", line, path)
}

func findMethod(file *ast.File, useCase, method string) ast.Node {
	var found ast.Node
	ast.Inspect(file, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		switch n := n.(type) {
		case *ast.FuncDecl:
			if n.Name.Name == method && checker.ReceiverTypeName(n.Recv) == useCase {
				found = n
				return false
			}
		case *ast.TypeSpec:
			if n.Name.Name != useCase {
				return true
			}
			iface, ok := n.Type.(*ast.InterfaceType)
			if !ok {
				return true
			}
			for _, field := range iface.Methods.List {
				for _, name := range field.Names {
					if name.Name == method {
						found = enclosingDecl(file, n)
						return false
					}
				}
			}
		}
		return true
	})
	return found
}

// enclosingDecl widens a type spec to its "type" declaration so the snippet
// formats as valid source.
func enclosingDecl(file *ast.File, spec *ast.TypeSpec) ast.Node {
	path, _ := astutil.PathEnclosingInterval(file, spec.Pos(), spec.End())
	for _, n := range path {
		if gd, ok := n.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
			return gd
		}
	}
	return spec
}

func render(fset *token.FileSet, node ast.Node) (string, error) {
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}
