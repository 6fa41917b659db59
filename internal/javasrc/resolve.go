package javasrc

import (
	"strings"

	"github.com/pmeredith/dbscout/internal/model"
)

// javaLang lists the java.lang names that are in scope without an import.
// Anything else unresolved keeps its simple name.
var javaLang = map[string]struct{}{
	"Object": {}, "String": {}, "Boolean": {}, "Byte": {}, "Character": {},
	"Short": {}, "Integer": {}, "Long": {}, "Float": {}, "Double": {},
	"Number": {}, "Iterable": {}, "Comparable": {}, "Exception": {},
	"RuntimeException": {}, "Throwable": {}, "Class": {}, "Enum": {},
}

// Resolve merges parsed files into one model, rewriting every type and
// annotation reference to the best available name: a declared type in the
// model, an explicit import, a wildcard-import hit, the same package, or
// java.lang. Unresolvable references keep the name they were written with.
// File order determines model enumeration order.
func Resolve(files []*File) *model.Model {
	known := map[string]struct{}{}
	bySimple := map[string][]string{}
	for _, f := range files {
		for _, t := range f.Types {
			known[t.Name] = struct{}{}
			bySimple[t.SimpleName] = append(bySimple[t.SimpleName], t.Name)
		}
	}

	m := &model.Model{}
	for _, f := range files {
		r := &resolver{file: f, known: known, bySimple: bySimple}
		for _, t := range f.Types {
			r.resolveType(t)
			m.Types = append(m.Types, t)
		}
	}
	return m
}

type resolver struct {
	file     *File
	known    map[string]struct{}
	bySimple map[string][]string
}

func (r *resolver) resolveType(t *model.Type) {
	resolveAnnos(r, t.Annos)
	for i := range t.SuperTypes {
		r.resolveRef(&t.SuperTypes[i])
	}
	for _, f := range t.Fields {
		r.resolveRef(&f.Type)
		resolveAnnos(r, f.Annos)
	}
	for _, meth := range t.Methods {
		r.resolveRef(&meth.ReturnType)
		resolveAnnos(r, meth.Annos)
		for i := range meth.Params {
			r.resolveRef(&meth.Params[i].Type)
		}
		for i := range meth.Calls {
			r.resolveRef(&meth.Calls[i].DeclaringType)
		}
	}
}

func resolveAnnos(r *resolver, annos []model.Annotation) {
	for i := range annos {
		annos[i].Name = r.resolveName(annos[i].Name)
	}
}

func (r *resolver) resolveRef(ref *model.TypeRef) {
	ref.Name = r.resolveName(ref.Name)
	for i := range ref.TypeArgs {
		r.resolveRef(&ref.TypeArgs[i])
	}
}

func (r *resolver) resolveName(name string) string {
	if name == "" {
		return name
	}
	dims := ""
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		dims += "[]"
	}
	return r.resolveSimple(name) + dims
}

func (r *resolver) resolveSimple(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	if fq, ok := r.file.Imports[name]; ok {
		return fq
	}
	if r.file.Package != "" {
		if _, ok := r.known[r.file.Package+"."+name]; ok {
			return r.file.Package + "." + name
		}
	}
	for _, wi := range r.file.WildcardImports {
		if _, ok := r.known[wi+"."+name]; ok {
			return wi + "." + name
		}
	}
	if candidates := r.bySimple[name]; len(candidates) == 1 {
		return candidates[0]
	}
	if _, ok := javaLang[name]; ok {
		return "java.lang." + name
	}
	return name
}
