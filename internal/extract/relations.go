package extract

import (
	"log/slog"
	"strings"

	"github.com/pmeredith/dbscout/internal/annovalue"
	"github.com/pmeredith/dbscout/internal/model"
)

// Relations builds one RelationRecord per relation-annotated member of each
// Entity-kind type, in enumeration order.
func Relations(m *model.Model, cfg Config) []RelationRecord {
	var out []RelationRecord

	for _, t := range m.Types {
		if t.Kind != model.ClassKind || cfg.excludedType(t) {
			continue
		}
		kind, ok := cfg.entityKind(t)
		if !ok || kind != MarkerEntity {
			continue
		}

		mode := cfg.accessMode(t)
		for _, mem := range members(t, mode) {
			relKind, ok := cfg.relationKind(mem.El)
			if !ok {
				continue
			}

			rec := RelationRecord{
				Source: t.Name,
				Kind:   relKind,
				Target: cfg.resolveTarget(mem, relKind),
			}

			rec.MappedBy = cfg.stringAttr(mem.El, relKind, "mappedBy")
			rec.OwningSide = rec.MappedBy == nil || strings.TrimSpace(*rec.MappedBy) == ""

			rec.Cascade = cfg.enumArrayAttr(mem.El, relKind, "cascade")
			rec.Fetch = cfg.enumAttr(mem.El, relKind, "fetch")
			rec.Optional = cfg.boolAttr(mem.El, relKind, "optional")
			rec.OrphanRemoval = cfg.boolAttr(mem.El, relKind, "orphanRemoval")

			rec.JoinColumn = cfg.joinColumn(mem.El)
			rec.JoinTable = cfg.joinTable(mem.El)

			out = append(out, rec)
		}
	}

	slog.Info("JPA relationships detected", "count", len(out))
	return out
}

// resolveTarget picks the relation's target entity, first success wins: an
// explicit targetEntity class literal, the first generic type argument of the
// member's declared type, or the declared type itself.
func (c *Config) resolveTarget(mem member, relKind string) string {
	if te := c.classAttr(mem.El, relKind, "targetEntity"); te != nil {
		return *te
	}
	if len(mem.Type.TypeArgs) > 0 {
		return mem.Type.TypeArgs[0].Name
	}
	return mem.Type.Name
}

func (c *Config) joinColumn(el model.Annotatable) *JoinColumnRecord {
	if !c.hasMarker(el, MarkerJoinColumn) {
		return nil
	}
	return &JoinColumnRecord{
		Name:                 c.stringAttr(el, MarkerJoinColumn, "name"),
		ReferencedColumnName: c.stringAttr(el, MarkerJoinColumn, "referencedColumnName"),
	}
}

func (c *Config) joinTable(el model.Annotatable) *JoinTableRecord {
	if !c.hasMarker(el, MarkerJoinTable) {
		return nil
	}
	rec := &JoinTableRecord{
		Name: c.stringAttr(el, MarkerJoinTable, "name"),
	}
	if raw, ok := c.rawAttr(el, MarkerJoinTable, "joinColumns"); ok {
		rec.JoinColumns = joinColumnsFrom(annovalue.Decode(raw))
	}
	if raw, ok := c.rawAttr(el, MarkerJoinTable, "inverseJoinColumns"); ok {
		rec.InverseJoinColumns = joinColumnsFrom(annovalue.Decode(raw))
	}
	return rec
}

// joinColumnsFrom converts a decoded join-column attribute into records. The
// attribute is either an array of nested annotations or a single inline one,
// which counts as a one-element list.
func joinColumnsFrom(v annovalue.Value) []JoinColumnRecord {
	elems := v.Elems
	if v.Kind != annovalue.KindArray {
		elems = []annovalue.Value{v}
	}
	out := []JoinColumnRecord{}
	for _, e := range elems {
		if e.Kind != annovalue.KindAnnotation || !strings.Contains(e.Str, "JoinColumn") {
			continue
		}
		var rec JoinColumnRecord
		if name, ok := e.Attr("name"); ok {
			rec.Name = &name
		}
		if ref, ok := e.Attr("referencedColumnName"); ok {
			rec.ReferencedColumnName = &ref
		}
		out = append(out, rec)
	}
	if v.Kind != annovalue.KindArray && len(out) == 0 {
		return nil
	}
	return out
}
