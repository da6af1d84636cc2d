// internal/checker/walker.go
package checker

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
)

// walkFilter selects the nodes the walker reacts to. Every other node is still
// traversed so declarations nested in function bodies are seen.
var walkFilter = []ast.Node{
	(*ast.TypeSpec)(nil),
	(*ast.FuncDecl)(nil),
	(*ast.Field)(nil),
}

// Walk traverses file depth-first and returns a Candidate for every method
// that is declared inside a named type and has a return clause.
//
// The enclosing type is tracked on an explicit stack: a type spec pushes its
// name on entry and pops it on exit, a method declaration pushes its receiver
// type for the duration of its body. Functions declared outside of any type
// are never candidates.
func Walk(fset *token.FileSet, file *ast.File) []Candidate {
	var (
		scope      []string
		candidates []Candidate
	)

	emit := func(name *ast.Ident, fn *ast.FuncType) {
		if len(scope) == 0 || name == nil || fn == nil {
			return
		}
		sig := ResultSignature(fn.Results)
		if sig == "" {
			return
		}
		candidates = append(candidates, Candidate{
			UseCase:   scope[len(scope)-1],
			Method:    name.Name,
			Signature: sig,
			Pos:       name.Pos(),
			Position:  fset.Position(name.Pos()),
		})
	}

	in := inspector.New([]*ast.File{file})
	in.WithStack(walkFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		switch n := n.(type) {
		case *ast.TypeSpec:
			if push {
				scope = append(scope, n.Name.Name)
			} else {
				scope = scope[:len(scope)-1]
			}
		case *ast.FuncDecl:
			recv := ReceiverTypeName(n.Recv)
			if recv == "" {
				return true
			}
			if !push {
				scope = scope[:len(scope)-1]
				return true
			}
			scope = append(scope, recv)
			emit(n.Name, n.Type)
		case *ast.Field:
			if !push || !isInterfaceMethod(stack) {
				return true
			}
			fn, _ := n.Type.(*ast.FuncType)
			for _, name := range n.Names {
				emit(name, fn)
			}
		}
		return true
	})

	return candidates
}

// ResultSignature renders a result list as source text with the result names
// dropped: "T" for a single result, "(A, B)" for several, "" for none.
func ResultSignature(results *ast.FieldList) string {
	if results == nil || len(results.List) == 0 {
		return ""
	}
	var parts []string
	for _, field := range results.List {
		text := types.ExprString(field.Type)
		count := len(field.Names)
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			parts = append(parts, text)
		}
	}
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ReceiverTypeName returns the base type name of a method receiver, or "" for
// plain functions.
func ReceiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	for {
		switch e := expr.(type) {
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.Ident:
			return e.Name
		default:
			return ""
		}
	}
}

// isInterfaceMethod reports whether the field on top of stack is a method of
// an interface that is itself declared by a type spec.
func isInterfaceMethod(stack []ast.Node) bool {
	if len(stack) < 4 {
		return false
	}
	if _, ok := stack[len(stack)-2].(*ast.FieldList); !ok {
		return false
	}
	if _, ok := stack[len(stack)-3].(*ast.InterfaceType); !ok {
		return false
	}
	_, ok := stack[len(stack)-4].(*ast.TypeSpec)
	return ok
}
