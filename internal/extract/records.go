// Package extract classifies program elements of a structural model into
// persistence-entity, relationship, and data-access records. All heuristics
// degrade rather than fail: unresolved references fall back to the best
// available name, unparseable attributes are left absent, and nothing in this
// package returns an error for malformed annotation data.
package extract

// EntityRecord describes one persistence-mapped type.
type EntityRecord struct {
	Name    string
	Kind    string // Entity | Embeddable | MappedSuperclass
	Table   *string
	IDField *string
	Fields  []FieldRecord
}

// FieldRecord describes one scalar mapped member. Column metadata pointers
// distinguish an absent attribute from explicit false/zero.
type FieldRecord struct {
	Name     string
	JavaType string
	Column   *string
	Nullable *bool
	Length   *int
	Unique   *bool
}

// RelationRecord describes one relation-annotated member of an entity.
type RelationRecord struct {
	Source        string
	Kind          string // OneToOne | OneToMany | ManyToOne | ManyToMany
	Target        string
	OwningSide    bool
	MappedBy      *string
	Cascade       []string // nil when the attribute is absent
	Fetch         *string
	Optional      *bool
	OrphanRemoval *bool
	JoinColumn    *JoinColumnRecord
	JoinTable     *JoinTableRecord
}

// JoinColumnRecord holds decoded join-column attributes.
type JoinColumnRecord struct {
	Name                 *string
	ReferencedColumnName *string
}

// JoinTableRecord holds decoded join-table attributes. A nil column slice
// means the attribute was absent; an empty one means it decoded to an empty
// array.
type JoinTableRecord struct {
	Name               *string
	JoinColumns        []JoinColumnRecord
	InverseJoinColumns []JoinColumnRecord
}

// RepositoryRecord describes a repository type, listed even when it has no
// members called anywhere.
type RepositoryRecord struct {
	Name    string
	Kind    string // interface | class
	Extends []string
}

// InteractionRecord describes one classified data-access call site.
type InteractionRecord struct {
	Site          string // Type#method
	Kind          string // JPA | Hibernate | SpringJDBC | JDBC | RepoCall
	API           string
	Method        string
	DeclaringType string
	SQLLiteral    *string
	Notes         *string
}

// Report bundles the db-interaction outputs. TransactionalSites is sorted
// lexicographically.
type Report struct {
	Repositories       []RepositoryRecord
	TransactionalSites []string
	Interactions       []InteractionRecord
}
