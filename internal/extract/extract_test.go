package extract

import (
	"github.com/pmeredith/dbscout/internal/model"
)

// Test fixture helpers shared by the extractor tests.

func anno(name string, kv ...string) model.Annotation {
	a := model.Annotation{Name: name}
	for i := 0; i+1 < len(kv); i += 2 {
		a.SetAttr(kv[i], kv[i+1])
	}
	return a
}

func ref(name string, args ...model.TypeRef) model.TypeRef {
	return model.TypeRef{Name: name, TypeArgs: args}
}

func field(name string, t model.TypeRef, annos ...model.Annotation) *model.Field {
	return &model.Field{Name: name, Type: t, Annos: annos}
}

func method(name string, returnType model.TypeRef, annos ...model.Annotation) *model.Method {
	return &model.Method{Name: name, ReturnType: returnType, Annos: annos}
}

func class(name string, annos ...model.Annotation) *model.Type {
	simple := name
	if i := lastDot(name); i >= 0 {
		simple = name[i+1:]
	}
	return &model.Type{Name: name, SimpleName: simple, Kind: model.ClassKind, Annos: annos}
}

func lastDot(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}
