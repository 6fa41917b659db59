package javasrc

import (
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pmeredith/dbscout/internal/model"
)

// scope resolves call receivers inside one method body: local variables and
// parameters shadow fields. Resolution is name-based and flow-insensitive; a
// receiver that cannot be typed yields a zero reference and the call is
// skipped by the classifier.
type scope struct {
	vars map[string]model.TypeRef
}

func newScope(owner *model.Type, m *model.Method) *scope {
	sc := &scope{vars: map[string]model.TypeRef{}}
	for _, f := range owner.Fields {
		sc.vars[f.Name] = f.Type
	}
	for _, p := range m.Params {
		sc.vars[p.Name] = p.Type
	}
	return sc
}

// collectCalls walks a method body in document order, recording local
// variable types as they appear and capturing every method invocation with a
// best-effort declaring type and the raw text of its first argument.
func (w *walker) collectCalls(node *sitter.Node, sc *scope, out *[]model.Call) {
	switch node.Type() {
	case "local_variable_declaration":
		ref := w.typeRef(node.ChildByFieldName("type"))
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "variable_declarator" {
				if name := w.text(child.ChildByFieldName("name")); name != "" {
					sc.vars[name] = ref
				}
			}
		}
	case "method_invocation":
		call := model.Call{
			DeclaringType: w.receiverType(node.ChildByFieldName("object"), sc),
			Method:        w.text(node.ChildByFieldName("name")),
		}
		if args := node.ChildByFieldName("arguments"); args != nil && args.NamedChildCount() > 0 {
			call.FirstArgText = w.text(args.NamedChild(0))
		}
		*out = append(*out, call)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		w.collectCalls(node.NamedChild(i), sc, out)
	}
}

// receiverType types the receiver expression of an invocation. Identifiers
// resolve against the scope; an unknown capitalized identifier is taken as a
// static call on that type. this-qualified field accesses unwrap to the
// field. Anything else (call chains, casts, array elements) stays untyped.
func (w *walker) receiverType(obj *sitter.Node, sc *scope) model.TypeRef {
	if obj == nil {
		return model.TypeRef{}
	}
	switch obj.Type() {
	case "identifier":
		name := w.text(obj)
		if ref, ok := sc.vars[name]; ok {
			return ref
		}
		if startsUpper(name) {
			return model.TypeRef{Name: name}
		}
	case "field_access":
		if w.text(obj.ChildByFieldName("object")) == "this" {
			if ref, ok := sc.vars[w.text(obj.ChildByFieldName("field"))]; ok {
				return ref
			}
		}
	case "scoped_identifier":
		// A fully dotted receiver is either a qualified type or a
		// qualified constant; keep the text as the best available name.
		return model.TypeRef{Name: w.text(obj)}
	}
	return model.TypeRef{}
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}
