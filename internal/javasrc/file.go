package javasrc

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pmeredith/dbscout/internal/model"
)

// File holds the declarations of one parsed source file together with the
// import context needed to resolve its type references. Types carry raw
// (unresolved) names until Resolve rewrites them.
type File struct {
	Path            string
	Package         string
	Imports         map[string]string // simple name -> fully qualified
	WildcardImports []string
	Types           []*model.Type
}

// ParseFile parses one Java source file into its declared types. The parser
// must have been created by NewParser; a parse failure is the only error
// condition, malformed constructs inside the file are skipped.
func ParseFile(parser *sitter.Parser, source []byte, path string) (*File, error) {
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	defer tree.Close()

	f := &File{Path: path, Imports: map[string]string{}}
	w := &walker{file: f, source: source}

	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			w.packageDecl(child)
		case "import_declaration":
			w.importDecl(child)
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			w.typeDecl(child, "")
		}
	}
	return f, nil
}

type walker struct {
	file   *File
	source []byte
}

func (w *walker) text(node *sitter.Node) string {
	return NodeText(node, w.source)
}

func (w *walker) packageDecl(node *sitter.Node) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			w.file.Package = w.text(child)
			return
		}
	}
}

func (w *walker) importDecl(node *sitter.Node) {
	var path string
	wildcard := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			path = w.text(child)
		case "asterisk":
			wildcard = true
		}
	}
	if path == "" {
		return
	}
	if wildcard {
		w.file.WildcardImports = append(w.file.WildcardImports, path)
		return
	}
	simple := path
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		simple = path[i+1:]
	}
	w.file.Imports[simple] = path
}

// typeDecl walks one type declaration, including nested types, and appends
// the result to the file's type list. enclosing is the qualified name of the
// surrounding type, empty at top level.
func (w *walker) typeDecl(node *sitter.Node, enclosing string) {
	name := w.text(node.ChildByFieldName("name"))
	if name == "" {
		return
	}

	qualified := name
	switch {
	case enclosing != "":
		qualified = enclosing + "." + name
	case w.file.Package != "":
		qualified = w.file.Package + "." + name
	}

	t := &model.Type{
		Name:       qualified,
		SimpleName: name,
		Kind:       typeKind(node.Type()),
	}
	t.Modifiers, t.Annos = w.modifiers(node)

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "superclass", "super_interfaces", "extends_interfaces":
			t.SuperTypes = append(t.SuperTypes, w.typeRefList(child)...)
		}
	}

	w.file.Types = append(w.file.Types, t)

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}

	// Fields first so call receivers can be resolved against them no
	// matter where in the class body they are declared.
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "field_declaration" {
			t.Fields = append(t.Fields, w.fieldDecl(child)...)
		}
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "method_declaration":
			t.Methods = append(t.Methods, w.methodDecl(child, t))
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			w.typeDecl(child, qualified)
		}
	}
}

func typeKind(nodeType string) model.TypeKind {
	switch nodeType {
	case "interface_declaration":
		return model.InterfaceKind
	case "enum_declaration":
		return model.EnumKind
	case "record_declaration":
		return model.RecordKind
	default:
		return model.ClassKind
	}
}

// fieldDecl returns one model.Field per declarator; Java allows several
// fields in a single declaration sharing type, modifiers, and annotations.
func (w *walker) fieldDecl(node *sitter.Node) []*model.Field {
	mods, annos := w.modifiers(node)
	ref := w.typeRef(node.ChildByFieldName("type"))

	var out []*model.Field
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		name := w.text(child.ChildByFieldName("name"))
		if name == "" {
			continue
		}
		out = append(out, &model.Field{
			Name:      name,
			Type:      ref,
			Modifiers: mods,
			Annos:     annos,
		})
	}
	return out
}

func (w *walker) methodDecl(node *sitter.Node, owner *model.Type) *model.Method {
	m := &model.Method{
		Name:       w.text(node.ChildByFieldName("name")),
		ReturnType: w.typeRef(node.ChildByFieldName("type")),
	}
	m.Modifiers, m.Annos = w.modifiers(node)

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			p := params.NamedChild(i)
			switch p.Type() {
			case "formal_parameter", "spread_parameter":
				m.Params = append(m.Params, model.Param{
					Name: w.text(p.ChildByFieldName("name")),
					Type: w.typeRef(p.ChildByFieldName("type")),
				})
			}
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		sc := newScope(owner, m)
		w.collectCalls(body, sc, &m.Calls)
	}
	return m
}

// modifiers splits a declaration's modifiers node into keyword modifiers and
// annotations.
func (w *walker) modifiers(node *sitter.Node) ([]string, []model.Annotation) {
	var mods []string
	var annos []model.Annotation
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			mod := child.Child(j)
			switch mod.Type() {
			case "marker_annotation", "annotation":
				annos = append(annos, w.annotation(mod))
			default:
				mods = append(mods, w.text(mod))
			}
		}
	}
	return mods, annos
}

// annotation captures the annotation name and the raw text of each attribute
// value. A single-element annotation is stored under the key "value".
func (w *walker) annotation(node *sitter.Node) model.Annotation {
	a := model.Annotation{Name: w.text(node.ChildByFieldName("name"))}
	args := node.ChildByFieldName("arguments")
	if args == nil {
		return a
	}
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		if arg.Type() == "element_value_pair" {
			key := w.text(arg.ChildByFieldName("key"))
			a.SetAttr(key, w.text(arg.ChildByFieldName("value")))
			continue
		}
		a.SetAttr("value", w.text(arg))
	}
	return a
}

// typeRef converts a type node into an unresolved reference. Arrays keep a
// [] suffix on the element name; generics carry their argument list.
func (w *walker) typeRef(node *sitter.Node) model.TypeRef {
	if node == nil {
		return model.TypeRef{}
	}
	switch node.Type() {
	case "generic_type":
		var ref model.TypeRef
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			switch child.Type() {
			case "type_identifier", "scoped_type_identifier":
				ref.Name = w.text(child)
			case "type_arguments":
				for j := 0; j < int(child.NamedChildCount()); j++ {
					arg := child.NamedChild(j)
					if arg.Type() == "wildcard" {
						continue
					}
					ref.TypeArgs = append(ref.TypeArgs, w.typeRef(arg))
				}
			}
		}
		return ref
	case "array_type":
		elem := w.typeRef(node.ChildByFieldName("element"))
		elem.Name += "[]"
		return elem
	default:
		return model.TypeRef{Name: CollapseWhitespace(w.text(node))}
	}
}

// typeRefList extracts all type references under a superclass/interface-list
// node.
func (w *walker) typeRefList(node *sitter.Node) []model.TypeRef {
	var out []model.TypeRef
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "type_list":
			out = append(out, w.typeRefList(child)...)
		case "type_identifier", "scoped_type_identifier", "generic_type":
			out = append(out, w.typeRef(child))
		}
	}
	return out
}
