// Types used in methods for managing indexes.
//
// An index is a sum type over eight variants that share one wire
// representation: the string-valued "type" field discriminates the
// variant, all variants share the id, the ordered field list and the
// isNewlyCreated flag.

package arango

import (
	"encoding/json"
	"fmt"
)

// IndexID identifies an index by collection name and index key, rendered
// as "collection/key".
type IndexID struct {
	collectionName string
	indexKey       string
}

// NewIndexID constructs an index id from collection name and index key.
func NewIndexID(collectionName, indexKey string) IndexID {
	return IndexID{collectionName: collectionName, indexKey: indexKey}
}

// ParseIndexID parses an index id of the form "collection/key".
func ParseIndexID(value string) (IndexID, error) {
	handle, err := ParseHandle("index id", value)
	if err != nil {
		return IndexID{}, err
	}
	return IndexID{collectionName: handle.Context(), indexKey: handle.Key()}, nil
}

// CollectionName returns the name of the collection the index belongs to.
func (id IndexID) CollectionName() string { return id.collectionName }

// IndexKey returns the key of the index within its collection.
func (id IndexID) IndexKey() string { return id.indexKey }

// String renders the index id as "collection/key".
func (id IndexID) String() string {
	return id.collectionName + "/" + id.indexKey
}

// IndexKey is the key of an index, local to a collection that is specified
// elsewhere.
type IndexKey string

// ParseIndexKey validates that the given value contains no '/' character
// and returns it as an IndexKey.
func ParseIndexKey(value string) (IndexKey, error) {
	key, err := ParseHandleKey("index", value)
	if err != nil {
		return "", err
	}
	return IndexKey(key.String()), nil
}

// String returns the key string.
func (k IndexKey) String() string { return string(k) }

// IndexIDOption is an index identified either by its qualified id or by
// its key local to a collection that is specified elsewhere.
type IndexIDOption struct {
	id  *IndexID
	key *IndexKey
}

// QualifiedIndexID wraps an index id into an IndexIDOption.
func QualifiedIndexID(id IndexID) IndexIDOption {
	return IndexIDOption{id: &id}
}

// LocalIndexKey wraps an index key into an IndexIDOption.
func LocalIndexKey(key IndexKey) IndexIDOption {
	return IndexIDOption{key: &key}
}

// ParseIndexIDOption parses either a qualified "collection/key" id or a
// bare index key.
func ParseIndexIDOption(value string) (IndexIDOption, error) {
	option, err := ParseHandleOption("index id", value)
	if err != nil {
		return IndexIDOption{}, err
	}
	if handle, ok := option.Qualified(); ok {
		id := IndexID{collectionName: handle.Context(), indexKey: handle.Key()}
		return IndexIDOption{id: &id}, nil
	}
	local, _ := option.Local()
	key := IndexKey(local.String())
	return IndexIDOption{key: &key}, nil
}

// ID returns the qualified index id, or false when only a key is held.
func (o IndexIDOption) ID() (IndexID, bool) {
	if o.id == nil {
		return IndexID{}, false
	}
	return *o.id, true
}

// Key returns the local index key, or false when a qualified id is held.
func (o IndexIDOption) Key() (IndexKey, bool) {
	if o.key == nil {
		return "", false
	}
	return *o.key, true
}

// String renders the index id in its qualified or local form.
func (o IndexIDOption) String() string {
	if o.id != nil {
		return o.id.String()
	}
	if o.key != nil {
		return o.key.String()
	}
	return ""
}

// MarshalJSON serializes the index id in its qualified or local form.
func (o IndexIDOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON parses either form of the index id.
func (o *IndexIDOption) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseIndexIDOption(value)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// IndexKind is the wire discriminator of the index variants.
type IndexKind string

// The index kinds defined by the REST API. The wire "type" strings and
// this set are in one-to-one correspondence; an unknown "type" is a hard
// parse error.
const (
	IndexPrimary    IndexKind = "primary"
	IndexHash       IndexKind = "hash"
	IndexSkipList   IndexKind = "skiplist"
	IndexPersistent IndexKind = "persistent"
	IndexGeo1       IndexKind = "geo1"
	IndexGeo2       IndexKind = "geo2"
	IndexFulltext   IndexKind = "fulltext"
	IndexEdge       IndexKind = "edge"
)

// Index describes an index of a collection. The Kind field discriminates
// which of the variant attributes are meaningful:
//
//   - primary: Fields, SelectivityEstimate, Unique
//   - hash, skiplist, persistent: Fields, Unique, Sparse, Deduplicate,
//     SelectivityEstimate
//   - geo1: one location field, GeoJSON, Constraint, IgnoreNull, Sparse
//   - geo2: latitude and longitude fields, Constraint, IgnoreNull, Sparse
//   - fulltext: one field, MinLength
//   - edge: the "_from" and "_to" fields
//
// IsNewlyCreated defaults to false when the server omits it.
type Index struct {
	ID                  IndexIDOption
	Kind                IndexKind
	Fields              []string
	IsNewlyCreated      bool
	Unique              bool
	Sparse              bool
	Deduplicate         bool
	SelectivityEstimate float64
	GeoJSON             bool
	Constraint          bool
	IgnoreNull          bool
	MinLength           uint32
}

type indexWire struct {
	ID                  IndexIDOption `json:"id"`
	Kind                IndexKind     `json:"type"`
	Fields              []string      `json:"fields"`
	IsNewlyCreated      *bool         `json:"isNewlyCreated,omitempty"`
	Unique              *bool         `json:"unique,omitempty"`
	Sparse              *bool         `json:"sparse,omitempty"`
	Deduplicate         *bool         `json:"deduplicate,omitempty"`
	SelectivityEstimate *float64      `json:"selectivityEstimate,omitempty"`
	GeoJSON             *bool         `json:"geoJson,omitempty"`
	Constraint          *bool         `json:"constraint,omitempty"`
	IgnoreNull          *bool         `json:"ignoreNull,omitempty"`
	MinLength           *uint32       `json:"minLength,omitempty"`
}

// UnmarshalJSON parses an index wire object, discriminating the variant on
// the "type" field. An unknown "type" fails the parse.
func (i *Index) UnmarshalJSON(data []byte) error {
	var wire indexWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch wire.Kind {
	case IndexPrimary, IndexHash, IndexSkipList, IndexPersistent, IndexGeo1, IndexGeo2, IndexFulltext, IndexEdge:
	default:
		return fmt.Errorf("unknown index type: %q", wire.Kind)
	}
	*i = Index{
		ID:     wire.ID,
		Kind:   wire.Kind,
		Fields: wire.Fields,
	}
	if wire.IsNewlyCreated != nil {
		i.IsNewlyCreated = *wire.IsNewlyCreated
	}
	if wire.Unique != nil {
		i.Unique = *wire.Unique
	}
	if wire.Sparse != nil {
		i.Sparse = *wire.Sparse
	}
	if wire.Deduplicate != nil {
		i.Deduplicate = *wire.Deduplicate
	}
	if wire.SelectivityEstimate != nil {
		i.SelectivityEstimate = *wire.SelectivityEstimate
	}
	if wire.GeoJSON != nil {
		i.GeoJSON = *wire.GeoJSON
	}
	if wire.Constraint != nil {
		i.Constraint = *wire.Constraint
	}
	if wire.IgnoreNull != nil {
		i.IgnoreNull = *wire.IgnoreNull
	}
	if wire.MinLength != nil {
		i.MinLength = *wire.MinLength
	}
	return nil
}

// MarshalJSON re-emits the wire shape of the variant.
func (i Index) MarshalJSON() ([]byte, error) {
	wire := indexWire{
		ID:     i.ID,
		Kind:   i.Kind,
		Fields: i.Fields,
	}
	wire.IsNewlyCreated = &i.IsNewlyCreated
	switch i.Kind {
	case IndexPrimary:
		wire.Unique = &i.Unique
		wire.SelectivityEstimate = &i.SelectivityEstimate
	case IndexHash, IndexSkipList, IndexPersistent:
		wire.Unique = &i.Unique
		wire.Sparse = &i.Sparse
		wire.Deduplicate = &i.Deduplicate
		wire.SelectivityEstimate = &i.SelectivityEstimate
	case IndexGeo1:
		wire.GeoJSON = &i.GeoJSON
		wire.Constraint = &i.Constraint
		wire.IgnoreNull = &i.IgnoreNull
		wire.Sparse = &i.Sparse
	case IndexGeo2:
		wire.Constraint = &i.Constraint
		wire.IgnoreNull = &i.IgnoreNull
		wire.Sparse = &i.Sparse
	case IndexFulltext:
		wire.MinLength = &i.MinLength
	case IndexEdge:
	default:
		return nil, fmt.Errorf("unknown index type: %q", i.Kind)
	}
	return json.Marshal(wire)
}

// NewIndex describes an index that is going to be created on a collection.
type NewIndex struct {
	Kind        IndexKind `json:"type"`
	Fields      []string  `json:"fields"`
	Unique      *bool     `json:"unique,omitempty"`
	Sparse      *bool     `json:"sparse,omitempty"`
	Deduplicate *bool     `json:"deduplicate,omitempty"`
	GeoJSON     *bool     `json:"geoJson,omitempty"`
	MinLength   *uint32   `json:"minLength,omitempty"`
}

// HashIndexOn describes a new hash index over the given fields.
func HashIndexOn(fields []string, unique, sparse, deduplicate bool) NewIndex {
	return NewIndex{Kind: IndexHash, Fields: fields, Unique: &unique, Sparse: &sparse, Deduplicate: &deduplicate}
}

// SkipListIndexOn describes a new skip-list index over the given fields.
func SkipListIndexOn(fields []string, unique, sparse, deduplicate bool) NewIndex {
	return NewIndex{Kind: IndexSkipList, Fields: fields, Unique: &unique, Sparse: &sparse, Deduplicate: &deduplicate}
}

// PersistentIndexOn describes a new persistent index over the given
// fields.
func PersistentIndexOn(fields []string, unique, sparse bool) NewIndex {
	return NewIndex{Kind: IndexPersistent, Fields: fields, Unique: &unique, Sparse: &sparse}
}

// GeoLocationIndexOn describes a new geo index over one location field.
func GeoLocationIndexOn(locationField string, geoJSON bool) NewIndex {
	return NewIndex{Kind: IndexGeo1, Fields: []string{locationField}, GeoJSON: &geoJSON}
}

// GeoLatLngIndexOn describes a new geo index over separate latitude and
// longitude fields.
func GeoLatLngIndexOn(latitudeField, longitudeField string) NewIndex {
	return NewIndex{Kind: IndexGeo2, Fields: []string{latitudeField, longitudeField}}
}

// FulltextIndexOn describes a new fulltext index over one field.
func FulltextIndexOn(field string, minLength uint32) NewIndex {
	return NewIndex{Kind: IndexFulltext, Fields: []string{field}, MinLength: &minLength}
}
