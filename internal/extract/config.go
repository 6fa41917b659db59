package extract

import (
	"strings"

	"github.com/pmeredith/dbscout/internal/model"
)

// Marker names used by the classification heuristics. Each marker maps to a
// table of recognized fully qualified annotation names in Config.Markers.
const (
	MarkerEntity           = "Entity"
	MarkerEmbeddable       = "Embeddable"
	MarkerMappedSuperclass = "MappedSuperclass"
	MarkerTable            = "Table"
	MarkerColumn           = "Column"
	MarkerID               = "Id"
	MarkerEmbeddedID       = "EmbeddedId"
	MarkerTransient        = "Transient"
	MarkerOneToOne         = "OneToOne"
	MarkerOneToMany        = "OneToMany"
	MarkerManyToOne        = "ManyToOne"
	MarkerManyToMany       = "ManyToMany"
	MarkerJoinColumn       = "JoinColumn"
	MarkerJoinTable        = "JoinTable"
	MarkerRepository       = "Repository"
	MarkerTransactional    = "Transactional"
)

// relationMarkers in priority order; the first matching marker decides the
// relation kind.
var relationMarkers = []string{MarkerOneToOne, MarkerOneToMany, MarkerManyToOne, MarkerManyToMany}

// mappingMarkers are the annotations that make a zero-parameter accessor
// count toward property access mode.
var mappingMarkers = []string{
	MarkerID, MarkerEmbeddedID, MarkerColumn,
	MarkerOneToOne, MarkerOneToMany, MarkerManyToOne, MarkerManyToMany,
}

// APIPrefix maps a namespace prefix of a call's declaring type to an
// interaction kind. Order matters: the first matching prefix wins.
type APIPrefix struct {
	Prefix string
	Kind   string
}

// Config carries the classification policy tables. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// IncludeIDField controls whether the identifier member also appears
	// among an entity's scalar fields, or is reported only via idField.
	IncludeIDField bool
	// ExcludeTypeSuffixes skips types whose simple name ends with one of
	// the listed suffixes (e.g. "DTO"). Empty by default.
	ExcludeTypeSuffixes []string
	// Markers maps each marker name to the fully qualified annotation
	// names recognized for it. Names not in the table still match by
	// suffix; see matchesMarker.
	Markers map[string][]string
	// APIPrefixes is the ordered call-site classification table.
	APIPrefixes []APIPrefix
	// RepositorySuffix marks repository types and repository call targets.
	RepositorySuffix string
	// LoggerTypeSuffixes excludes members whose declared type looks like a
	// logger.
	LoggerTypeSuffixes []string
}

// DefaultConfig returns the policy tables matching the JPA/Spring conventions
// the extractor was built around.
func DefaultConfig() Config {
	jpa := func(simple string) []string {
		return []string{"javax.persistence." + simple, "jakarta.persistence." + simple}
	}
	return Config{
		IncludeIDField: true,
		Markers: map[string][]string{
			MarkerEntity:           jpa("Entity"),
			MarkerEmbeddable:       jpa("Embeddable"),
			MarkerMappedSuperclass: jpa("MappedSuperclass"),
			MarkerTable:            jpa("Table"),
			MarkerColumn:           jpa("Column"),
			MarkerID:               jpa("Id"),
			MarkerEmbeddedID:       jpa("EmbeddedId"),
			MarkerTransient:        jpa("Transient"),
			MarkerOneToOne:         jpa("OneToOne"),
			MarkerOneToMany:        jpa("OneToMany"),
			MarkerManyToOne:        jpa("ManyToOne"),
			MarkerManyToMany:       jpa("ManyToMany"),
			MarkerJoinColumn:       jpa("JoinColumn"),
			MarkerJoinTable:        jpa("JoinTable"),
			MarkerRepository:       {"org.springframework.stereotype.Repository"},
			MarkerTransactional: {
				"org.springframework.transaction.annotation.Transactional",
				"javax.transaction.Transactional",
				"jakarta.transaction.Transactional",
			},
		},
		APIPrefixes: []APIPrefix{
			{Prefix: "javax.persistence.", Kind: "JPA"},
			{Prefix: "jakarta.persistence.", Kind: "JPA"},
			{Prefix: "org.hibernate.", Kind: "Hibernate"},
			{Prefix: "org.springframework.jdbc.core.", Kind: "SpringJDBC"},
			{Prefix: "java.sql.", Kind: "JDBC"},
		},
		RepositorySuffix:   "Repository",
		LoggerTypeSuffixes: []string{"Logger", "Log"},
	}
}

// matchesMarker reports whether an annotation name matches a marker: an exact
// hit in the configured FQN table, or a name whose last segment equals the
// marker. The suffix fallback covers models built without full classpath
// resolution, where annotation names stay simple.
func (c *Config) matchesMarker(annoName, marker string) bool {
	for _, fqn := range c.Markers[marker] {
		if annoName == fqn {
			return true
		}
	}
	return annoName == marker || strings.HasSuffix(annoName, "."+marker)
}

// hasMarker reports whether any annotation on the element matches the marker.
func (c *Config) hasMarker(el model.Annotatable, marker string) bool {
	_, ok := c.findMarker(el, marker)
	return ok
}

// findMarker returns the first annotation on the element matching the marker.
func (c *Config) findMarker(el model.Annotatable, marker string) (model.Annotation, bool) {
	for _, a := range el.Annotations() {
		if c.matchesMarker(a.Name, marker) {
			return a, true
		}
	}
	return model.Annotation{}, false
}

// excludedType reports whether the type's simple name carries one of the
// configured exclusion suffixes.
func (c *Config) excludedType(t *model.Type) bool {
	for _, suffix := range c.ExcludeTypeSuffixes {
		if suffix != "" && strings.HasSuffix(t.SimpleName, suffix) {
			return true
		}
	}
	return false
}
