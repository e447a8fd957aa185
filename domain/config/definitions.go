package config

// ManagerID is the fixed registry identifier under which the single cache
// manager definition is registered.
const ManagerID = "cacheManager"

// AddressSource identifies how a cache definition obtains its server addresses
type AddressSource string

const (
	// SourceStatic uses the literal address supplied in the configuration
	SourceStatic AddressSource = "static"
	// SourceCluster resolves an ElastiCache cluster id to node addresses
	SourceCluster AddressSource = "cluster"
)

// ManagerEntry is an ordered member of a cache manager definition: either a
// CacheDefinition to be constructed, or a CacheReference to an externally
// supplied cache.
type ManagerEntry interface {
	// EntryName is the name under which the entry is addressable
	EntryName() string
}

// CacheDefinition describes one cache to be constructed at startup. It is the
// plain-struct rendition of a container bean definition: parsing produces it,
// explicit construction code consumes it.
type CacheDefinition struct {
	// ID is a generated identifier, unique per definition
	ID string `validate:"required"`

	Name       CacheName     `validate:"required"`
	Source     AddressSource `validate:"required,oneof=static cluster"`
	Address    Endpoint      `validate:"required_if=Source static,omitempty,hostname_port"`
	Cluster    ClusterID     `validate:"required_if=Source cluster"`
	Expiration Expiration    `validate:"min=0"`
	AllowClear bool

	Client ClientConfiguration
}

// EntryName implements ManagerEntry
func (d CacheDefinition) EntryName() string {
	return d.Name.String()
}

// CacheReference is a lookup-by-name placeholder resolved against the
// registry at construction time, not a new definition.
type CacheReference struct {
	Ref string `validate:"required"`
}

// EntryName implements ManagerEntry
func (r CacheReference) EntryName() string {
	return r.Ref
}

// ClientConfiguration carries the client-level flags a definition is
// constructed with.
type ClientConfiguration struct {
	// ConsistentHashing selects the key-distribution strategy across nodes.
	// Defaults to true for every parsed definition.
	ConsistentHashing bool
}

// DefaultClientConfiguration returns the configuration applied to every
// parsed cache definition.
func DefaultClientConfiguration() ClientConfiguration {
	return ClientConfiguration{ConsistentHashing: true}
}

// ManagerDefinition is the ordered collection of cache entries owned by
// exactly one cache manager per registry scope.
type ManagerDefinition struct {
	Entries []ManagerEntry
}

// NewManagerDefinition creates a manager definition over the given entries
func NewManagerDefinition(entries []ManagerEntry) *ManagerDefinition {
	return &ManagerDefinition{Entries: entries}
}

// EntryNames returns the entry names in declaration order
func (m *ManagerDefinition) EntryNames() []string {
	names := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		names = append(names, e.EntryName())
	}
	return names
}

// Definitions returns only the cache definitions, in declaration order
func (m *ManagerDefinition) Definitions() []CacheDefinition {
	defs := make([]CacheDefinition, 0, len(m.Entries))
	for _, e := range m.Entries {
		if d, ok := e.(CacheDefinition); ok {
			defs = append(defs, d)
		}
	}
	return defs
}

// References returns only the cache references, in declaration order
func (m *ManagerDefinition) References() []CacheReference {
	refs := make([]CacheReference, 0, len(m.Entries))
	for _, e := range m.Entries {
		if r, ok := e.(CacheReference); ok {
			refs = append(refs, r)
		}
	}
	return refs
}
