package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmeredith/dbscout/internal/model"
)

func TestPropertyName(t *testing.T) {
	tests := []struct {
		accessor string
		want     string
	}{
		{"getAmount", "amount"},
		{"getURL", "uRL"},
		{"isActive", "active"},
		{"getX", "x"},
		{"get", "get"},
		{"is", "is"},
		{"total", "total"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, propertyName(tt.accessor), "propertyName(%q)", tt.accessor)
	}
}

func TestIsAccessor(t *testing.T) {
	tests := []struct {
		name string
		m    *model.Method
		want bool
	}{
		{"getter", method("getAmount", ref("java.math.BigDecimal")), true},
		{"boolean is-getter", method("isActive", ref("boolean")), true},
		{"boxed boolean is-getter", method("isActive", ref("java.lang.Boolean")), true},
		{"is-getter with non-boolean return", method("isActive", ref("java.lang.String")), false},
		{"void getter", method("getThing", ref("void")), false},
		{"bare get", method("get", ref("java.lang.String")), false},
		{"bare is", method("is", ref("boolean")), false},
		{"unprefixed", method("amount", ref("java.math.BigDecimal")), false},
		{
			"getter with parameter",
			&model.Method{
				Name:       "getAmount",
				ReturnType: ref("java.math.BigDecimal"),
				Params:     []model.Param{{Name: "scale", Type: ref("int")}},
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAccessor(tt.m))
		})
	}
}

func TestAccessMode(t *testing.T) {
	cfg := DefaultConfig()

	fieldMode := class("com.example.A", anno("javax.persistence.Entity"))
	fieldMode.Fields = []*model.Field{
		field("id", ref("java.lang.Long"), anno("javax.persistence.Id")),
	}
	assert.Equal(t, FieldAccess, cfg.accessMode(fieldMode))

	propMode := class("com.example.B", anno("javax.persistence.Entity"))
	propMode.Methods = []*model.Method{
		method("getId", ref("java.lang.Long"), anno("javax.persistence.Id")),
	}
	assert.Equal(t, PropertyAccess, cfg.accessMode(propMode))

	// A mapping annotation on a non-accessor method does not flip the mode.
	mixed := class("com.example.C", anno("javax.persistence.Entity"))
	mixed.Methods = []*model.Method{
		method("computeId", ref("java.lang.Long"), anno("javax.persistence.Id")),
	}
	assert.Equal(t, FieldAccess, cfg.accessMode(mixed))
}
