package extract

import (
	"log/slog"

	"github.com/pmeredith/dbscout/internal/model"
)

// entityKind returns the persistence kind of a type, first match wins:
// Entity > Embeddable > MappedSuperclass. Unannotated types are skipped.
func (c *Config) entityKind(t *model.Type) (string, bool) {
	for _, marker := range []string{MarkerEntity, MarkerEmbeddable, MarkerMappedSuperclass} {
		if c.hasMarker(t, marker) {
			return marker, true
		}
	}
	return "", false
}

// Entities builds one EntityRecord per persistence-mapped class in the model,
// in enumeration order.
func Entities(m *model.Model, cfg Config) []EntityRecord {
	var out []EntityRecord

	for _, t := range m.Types {
		if t.Kind != model.ClassKind || cfg.excludedType(t) {
			continue
		}
		kind, ok := cfg.entityKind(t)
		if !ok {
			continue
		}

		rec := EntityRecord{
			Name:  t.Name,
			Kind:  kind,
			Table: cfg.stringAttr(t, MarkerTable, "name"),
		}

		mode := cfg.accessMode(t)
		mems := members(t, mode)

		// Primary key: first member annotated Id or EmbeddedId.
		for _, mem := range mems {
			if cfg.hasMarker(mem.El, MarkerID) || cfg.hasMarker(mem.El, MarkerEmbeddedID) {
				name := mem.Name
				rec.IDField = &name
				break
			}
		}

		rec.Fields = []FieldRecord{}
		for _, mem := range mems {
			if cfg.noisy(mem) {
				continue
			}
			// Relation members are reported as relationships, not fields.
			if _, isRel := cfg.relationKind(mem.El); isRel {
				continue
			}
			if !cfg.IncludeIDField && rec.IDField != nil && mem.Name == *rec.IDField {
				continue
			}
			rec.Fields = append(rec.Fields, FieldRecord{
				Name:     mem.Name,
				JavaType: mem.Type.Name,
				Column:   cfg.stringAttr(mem.El, MarkerColumn, "name"),
				Nullable: cfg.boolAttr(mem.El, MarkerColumn, "nullable"),
				Length:   cfg.intAttr(mem.El, MarkerColumn, "length"),
				Unique:   cfg.boolAttr(mem.El, MarkerColumn, "unique"),
			})
		}

		out = append(out, rec)
	}

	slog.Info("JPA entities detected", "count", len(out))
	return out
}
