// internal/checker/rule.go
package checker

import (
	"go/ast"
	"go/parser"
	"regexp"
	"strings"
	"unicode"
)

// DefaultExemptionMarkers mark a return type as an explicit data-transfer type.
var DefaultExemptionMarkers = []string{"Response", "DTO"}

// refPattern finds identifiers, optionally package-qualified, when a signature
// does not parse as Go.
var refPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)?`)

// typeRef is one type-identifier token of a signature. A qualified reference
// such as domain.User has one word list per part.
type typeRef struct {
	text  string
	parts [][]string
}

// Rule decides whether a return signature exposes a configured model type.
type Rule struct {
	models  []string
	words   [][]string
	markers [][]string
}

// NewRule builds a Rule for the given model type names and exemption markers.
// Names are matched on camel-case word boundaries, ignoring case.
func NewRule(modelTypes, exemptionMarkers []string) *Rule {
	r := &Rule{}
	for _, name := range modelTypes {
		w := splitWords(name)
		if len(w) == 0 {
			continue
		}
		r.models = append(r.models, name)
		r.words = append(r.words, w)
	}
	for _, marker := range exemptionMarkers {
		if w := splitWords(marker); len(w) > 0 {
			r.markers = append(r.markers, w)
		}
	}
	return r
}

// Evaluate returns the type reference through which signature exposes a model
// type. The outer signature is checked first, then every type argument it
// wraps, depth first. A sub-signature that mentions an exemption marker is
// skipped on its own; its arguments are still checked.
func (r *Rule) Evaluate(signature string) (string, bool) {
	signature = strings.TrimSpace(signature)
	if signature == "" || len(r.words) == 0 {
		return "", false
	}
	for _, refs := range subSignatures(signature) {
		exposed, ok := r.match(refs)
		if !ok || r.exempt(refs) {
			continue
		}
		return exposed, true
	}
	return "", false
}

// match finds the first reference denoting a model type, trying model types in
// configured order.
func (r *Rule) match(refs []typeRef) (string, bool) {
	for _, model := range r.words {
		for _, ref := range refs {
			if ref.has(model) {
				return ref.text, true
			}
		}
	}
	return "", false
}

func (r *Rule) exempt(refs []typeRef) bool {
	for _, marker := range r.markers {
		for _, ref := range refs {
			if ref.has(marker) {
				return true
			}
		}
	}
	return false
}

func (t typeRef) has(words []string) bool {
	for _, part := range t.parts {
		if containsWords(part, words) {
			return true
		}
	}
	return false
}

// subSignatures lists the references of the outer signature followed by those
// of each unwrapped type argument, in pre-order.
func subSignatures(signature string) [][]typeRef {
	expr, err := parser.ParseExpr("func() " + signature)
	fn, ok := expr.(*ast.FuncType)
	if err != nil || !ok || fn.Results == nil || len(fn.Results.List) == 0 {
		return [][]typeRef{tokenRefs(signature)}
	}

	var results []ast.Expr
	for _, field := range fn.Results.List {
		results = append(results, field.Type)
	}

	var out [][]typeRef
	if len(results) > 1 {
		var all []typeRef
		for _, e := range results {
			all = append(all, collectRefs(e)...)
		}
		out = append(out, all)
		for _, e := range results {
			out = unwrap(e, out)
		}
		return out
	}
	return unwrap(results[0], out)
}

func unwrap(expr ast.Expr, out [][]typeRef) [][]typeRef {
	out = append(out, collectRefs(expr))
	for _, arg := range typeArguments(expr) {
		out = unwrap(arg, out)
	}
	return out
}

// typeArguments returns the types directly wrapped by a container type.
func typeArguments(expr ast.Expr) []ast.Expr {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return []ast.Expr{e.X}
	case *ast.ParenExpr:
		return []ast.Expr{e.X}
	case *ast.ArrayType:
		return []ast.Expr{e.Elt}
	case *ast.Ellipsis:
		if e.Elt != nil {
			return []ast.Expr{e.Elt}
		}
	case *ast.MapType:
		return []ast.Expr{e.Key, e.Value}
	case *ast.ChanType:
		return []ast.Expr{e.Value}
	case *ast.IndexExpr:
		return []ast.Expr{e.Index}
	case *ast.IndexListExpr:
		return e.Indices
	case *ast.FuncType:
		if e.Results == nil {
			return nil
		}
		var args []ast.Expr
		for _, field := range e.Results.List {
			args = append(args, field.Type)
		}
		return args
	}
	return nil
}

// collectRefs gathers the type-identifier tokens of expr. Field names inside
// func, struct and interface literals are not type references and are skipped.
func collectRefs(expr ast.Expr) []typeRef {
	var refs []typeRef
	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Field:
			ast.Inspect(n.Type, visit)
			return false
		case *ast.SelectorExpr:
			if pkg, ok := n.X.(*ast.Ident); ok {
				refs = append(refs, typeRef{
					text:  pkg.Name + "." + n.Sel.Name,
					parts: [][]string{splitWords(pkg.Name), splitWords(n.Sel.Name)},
				})
				return false
			}
		case *ast.Ident:
			refs = append(refs, typeRef{text: n.Name, parts: [][]string{splitWords(n.Name)}})
		}
		return true
	}
	ast.Inspect(expr, visit)
	return refs
}

func tokenRefs(text string) []typeRef {
	var refs []typeRef
	for _, tok := range refPattern.FindAllString(text, -1) {
		ref := typeRef{text: tok}
		for _, part := range strings.Split(tok, ".") {
			ref.parts = append(ref.parts, splitWords(part))
		}
		refs = append(refs, ref)
	}
	return refs
}

// splitWords splits an identifier into camel-case words: "UserDTO" becomes
// [User DTO], "DTOUser" becomes [DTO User], "value_object" becomes [value object].
func splitWords(ident string) []string {
	runes := []rune(ident)
	var words []string
	start := 0
	flush := func(end int) {
		if end > start {
			words = append(words, string(runes[start:end]))
		}
	}
	for i, r := range runes {
		if r == '_' {
			flush(i)
			start = i + 1
			continue
		}
		if i == start {
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

// containsWords reports whether needle occurs as a contiguous run in hay.
func containsWords(hay, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(hay) {
		return false
	}
outer:
	for i := 0; i+len(needle) <= len(hay); i++ {
		for j, w := range needle {
			if !strings.EqualFold(hay[i+j], w) {
				continue outer
			}
		}
		return true
	}
	return false
}
