package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmeredith/dbscout/internal/model"
)

func TestEntitiesBasic(t *testing.T) {
	invoice := class("com.example.Invoice",
		anno("javax.persistence.Entity"),
		anno("javax.persistence.Table", "name", `"invoice"`))
	invoice.Fields = []*model.Field{
		field("id", ref("java.lang.Long"), anno("javax.persistence.Id")),
		field("amount", ref("java.math.BigDecimal"),
			anno("javax.persistence.Column", "nullable", "false")),
	}

	recs := Entities(&model.Model{Types: []*model.Type{invoice}}, DefaultConfig())
	require.Len(t, recs, 1)

	e := recs[0]
	assert.Equal(t, "com.example.Invoice", e.Name)
	assert.Equal(t, "Entity", e.Kind)
	require.NotNil(t, e.Table)
	assert.Equal(t, "invoice", *e.Table)
	require.NotNil(t, e.IDField)
	assert.Equal(t, "id", *e.IDField)

	require.Len(t, e.Fields, 2)
	assert.Equal(t, "id", e.Fields[0].Name)

	amount := e.Fields[1]
	assert.Equal(t, "amount", amount.Name)
	assert.Equal(t, "java.math.BigDecimal", amount.JavaType)
	require.NotNil(t, amount.Nullable)
	assert.False(t, *amount.Nullable)
	assert.Nil(t, amount.Column)
	assert.Nil(t, amount.Length)
	assert.Nil(t, amount.Unique)
}

func TestEntitiesKindPriority(t *testing.T) {
	tests := []struct {
		name  string
		annos []model.Annotation
		want  string
	}{
		{"entity", []model.Annotation{anno("javax.persistence.Entity")}, "Entity"},
		{"embeddable", []model.Annotation{anno("javax.persistence.Embeddable")}, "Embeddable"},
		{"mapped superclass", []model.Annotation{anno("javax.persistence.MappedSuperclass")}, "MappedSuperclass"},
		{
			"entity wins over embeddable",
			[]model.Annotation{anno("javax.persistence.Embeddable"), anno("javax.persistence.Entity")},
			"Entity",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := class("com.example.T", tt.annos...)
			recs := Entities(&model.Model{Types: []*model.Type{c}}, DefaultConfig())
			require.Len(t, recs, 1)
			assert.Equal(t, tt.want, recs[0].Kind)
		})
	}
}

func TestEntitiesSkipsUnannotatedTypes(t *testing.T) {
	plain := class("com.example.Helper")
	recs := Entities(&model.Model{Types: []*model.Type{plain}}, DefaultConfig())
	assert.Empty(t, recs)
}

func TestEntitiesNoiseSuppression(t *testing.T) {
	e := class("com.example.Order", anno("javax.persistence.Entity"))
	serialVersion := field("serialVersionUID", ref("long"))
	logField := field("log", ref("org.slf4j.Logger"))
	constant := field("MAX_RETRIES", ref("int"))
	transientAnno := field("cached", ref("java.lang.String"), anno("javax.persistence.Transient"))
	staticField := field("shared", ref("java.lang.String"))
	staticField.Modifiers = []string{"static"}
	transientMod := field("temp", ref("java.lang.String"))
	transientMod.Modifiers = []string{"transient"}
	kept := field("total", ref("java.math.BigDecimal"))

	e.Fields = []*model.Field{serialVersion, logField, constant, transientAnno, staticField, transientMod, kept}

	recs := Entities(&model.Model{Types: []*model.Type{e}}, DefaultConfig())
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Fields, 1)
	assert.Equal(t, "total", recs[0].Fields[0].Name)
}

func TestEntitiesRelationMembersExcluded(t *testing.T) {
	e := class("com.example.Order", anno("javax.persistence.Entity"))
	e.Fields = []*model.Field{
		field("id", ref("java.lang.Long"), anno("javax.persistence.Id")),
		field("customer", ref("com.example.Customer"), anno("javax.persistence.ManyToOne")),
	}

	recs := Entities(&model.Model{Types: []*model.Type{e}}, DefaultConfig())
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Fields, 1)
	assert.Equal(t, "id", recs[0].Fields[0].Name)
}

func TestEntitiesPropertyAccess(t *testing.T) {
	e := class("com.example.Account", anno("javax.persistence.Entity"))
	e.Fields = []*model.Field{
		field("id", ref("java.lang.Long")),
		field("active", ref("boolean")),
	}
	e.Methods = []*model.Method{
		method("getId", ref("java.lang.Long"), anno("javax.persistence.Id")),
		method("isActive", ref("boolean"),
			anno("javax.persistence.Column", "name", `"is_active"`)),
		method("getClient", ref("com.example.Client"), anno("javax.persistence.ManyToOne")),
		method("doWork", ref("void")),
	}

	recs := Entities(&model.Model{Types: []*model.Type{e}}, DefaultConfig())
	require.Len(t, recs, 1)
	e0 := recs[0]

	require.NotNil(t, e0.IDField)
	assert.Equal(t, "id", *e0.IDField)

	require.Len(t, e0.Fields, 2)
	assert.Equal(t, "id", e0.Fields[0].Name)
	assert.Equal(t, "active", e0.Fields[1].Name)
	require.NotNil(t, e0.Fields[1].Column)
	assert.Equal(t, "is_active", *e0.Fields[1].Column)
}

// Field-level mapping annotations keep the type in field mode even when an
// unrelated annotation decorates a getter.
func TestEntitiesFieldModeDespiteAnnotatedGetter(t *testing.T) {
	e := class("com.example.Account", anno("javax.persistence.Entity"))
	e.Fields = []*model.Field{
		field("id", ref("java.lang.Long"), anno("javax.persistence.Id")),
	}
	e.Methods = []*model.Method{
		method("getId", ref("java.lang.Long"), anno("com.fasterxml.jackson.annotation.JsonIgnore")),
	}

	recs := Entities(&model.Model{Types: []*model.Type{e}}, DefaultConfig())
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Fields, 1)
	assert.Equal(t, "id", recs[0].Fields[0].Name)
}

func TestEntitiesExcludeIDFieldFromFields(t *testing.T) {
	e := class("com.example.Invoice", anno("javax.persistence.Entity"))
	e.Fields = []*model.Field{
		field("id", ref("java.lang.Long"), anno("javax.persistence.Id")),
		field("amount", ref("java.math.BigDecimal")),
	}

	cfg := DefaultConfig()
	cfg.IncludeIDField = false
	recs := Entities(&model.Model{Types: []*model.Type{e}}, cfg)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].IDField)
	assert.Equal(t, "id", *recs[0].IDField)
	require.Len(t, recs[0].Fields, 1)
	assert.Equal(t, "amount", recs[0].Fields[0].Name)
}

func TestEntitiesExcludeTypeSuffix(t *testing.T) {
	dto := class("com.example.InvoiceDTO", anno("javax.persistence.Entity"))
	real := class("com.example.Invoice", anno("javax.persistence.Entity"))

	cfg := DefaultConfig()
	cfg.ExcludeTypeSuffixes = []string{"DTO"}
	recs := Entities(&model.Model{Types: []*model.Type{dto, real}}, cfg)
	require.Len(t, recs, 1)
	assert.Equal(t, "com.example.Invoice", recs[0].Name)
}

// Suffix fallback covers models parsed without resolvable imports.
func TestEntitiesSimpleNameAnnotations(t *testing.T) {
	e := class("com.example.Invoice", anno("Entity"), anno("Table", "name", `"invoice"`))
	recs := Entities(&model.Model{Types: []*model.Type{e}}, DefaultConfig())
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].Table)
	assert.Equal(t, "invoice", *recs[0].Table)
}
