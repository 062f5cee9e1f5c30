// Types used in methods for managing collections.

package arango

import "encoding/json"

// CollectionType distinguishes document collections from edge collections.
// It serializes as the integer the REST API uses.
type CollectionType int

const (
	// CollectionDocuments is a regular document collection.
	CollectionDocuments CollectionType = 2
	// CollectionEdges is an edge collection.
	CollectionEdges CollectionType = 3
)

// CollectionStatus is the lifecycle status of a collection as observed
// from the server. The client never transitions a collection status, it
// only reads it.
type CollectionStatus int

const (
	// StatusNewBorn marks a collection that is being created.
	StatusNewBorn CollectionStatus = 1
	// StatusUnloaded marks a collection that is not loaded into memory.
	StatusUnloaded CollectionStatus = 2
	// StatusLoaded marks a collection that is loaded into memory.
	StatusLoaded CollectionStatus = 3
	// StatusBeingUnloaded marks a collection that is in the process of
	// being unloaded.
	StatusBeingUnloaded CollectionStatus = 4
	// StatusDeleted marks a collection that has been deleted.
	StatusDeleted CollectionStatus = 5
	// StatusBeingLoaded marks a collection that is in the process of being
	// loaded.
	StatusBeingLoaded CollectionStatus = 6
	// StatusCorrupted marks a collection whose status is unknown. Any
	// status value the client does not know about maps here, so newer
	// server versions stay readable.
	StatusCorrupted CollectionStatus = -1
)

// UnmarshalJSON maps unknown status values to StatusCorrupted instead of
// failing the parse.
func (s *CollectionStatus) UnmarshalJSON(data []byte) error {
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	switch CollectionStatus(value) {
	case StatusNewBorn, StatusUnloaded, StatusLoaded, StatusBeingUnloaded, StatusDeleted, StatusBeingLoaded:
		*s = CollectionStatus(value)
	default:
		*s = StatusCorrupted
	}
	return nil
}

// Collection describes a collection as reported by the server.
type Collection struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     CollectionType   `json:"type"`
	Status   CollectionStatus `json:"status"`
	IsSystem bool             `json:"isSystem"`
}

// KeyGeneratorType selects how the server generates document keys for a
// collection.
type KeyGeneratorType string

const (
	// KeyGeneratorTraditional generates ascending numeric keys.
	KeyGeneratorTraditional KeyGeneratorType = "traditional"
	// KeyGeneratorAutoIncrement generates auto-increment keys with
	// configurable increment and offset.
	KeyGeneratorAutoIncrement KeyGeneratorType = "autoincrement"
)

// NewKeyOptions configures key generation for a collection that is going
// to be created.
type NewKeyOptions struct {
	AllowUserKeys *bool            `json:"allowUserKeys,omitempty"`
	Kind          KeyGeneratorType `json:"type,omitempty"`
	Increment     uint64           `json:"increment,omitempty"`
	Offset        uint64           `json:"offset,omitempty"`
}

// NewCollection holds the properties of a collection that is going to be
// created.
type NewCollection struct {
	Name              string          `json:"name"`
	Kind              CollectionType  `json:"type,omitempty"`
	IsSystem          bool            `json:"isSystem,omitempty"`
	KeyOptions        *NewKeyOptions  `json:"keyOptions,omitempty"`
	WaitForSync       *bool           `json:"waitForSync,omitempty"`
	NumberOfShards    uint16          `json:"numberOfShards,omitempty"`
	ShardKeys         []string        `json:"shardKeys,omitempty"`
	ReplicationFactor uint16          `json:"replicationFactor,omitempty"`
}

// CollectionWithName describes a new collection with the given name and
// the default collection type defined by the server.
func CollectionWithName(name string) NewCollection {
	return NewCollection{Name: name}
}

// DocumentsCollectionWithName describes a new document collection with the
// given name.
func DocumentsCollectionWithName(name string) NewCollection {
	return NewCollection{Name: name, Kind: CollectionDocuments}
}

// EdgesCollectionWithName describes a new edge collection with the given
// name.
func EdgesCollectionWithName(name string) NewCollection {
	return NewCollection{Name: name, Kind: CollectionEdges}
}

// KeyOptions reports the key generation configuration of an existing
// collection.
type KeyOptions struct {
	AllowUserKeys bool             `json:"allowUserKeys"`
	Kind          KeyGeneratorType `json:"type"`
	LastValue     uint64           `json:"lastValue"`
}

// CollectionProperties describes the full property set of a collection as
// reported by the server.
type CollectionProperties struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Kind              CollectionType   `json:"type"`
	Status            CollectionStatus `json:"status"`
	IsSystem          bool             `json:"isSystem"`
	KeyOptions        KeyOptions       `json:"keyOptions"`
	WaitForSync       bool             `json:"waitForSync"`
	NumberOfShards    uint16           `json:"numberOfShards,omitempty"`
	ShardKeys         []string         `json:"shardKeys,omitempty"`
	ReplicationFactor uint64           `json:"replicationFactor,omitempty"`
}

// CollectionPropertiesUpdate holds the changeable properties of a
// collection.
type CollectionPropertiesUpdate struct {
	WaitForSync *bool   `json:"waitForSync,omitempty"`
	JournalSize *uint64 `json:"journalSize,omitempty"`
}

// CollectionRevision reports the revision of a whole collection.
type CollectionRevision struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     CollectionType   `json:"type"`
	Status   CollectionStatus `json:"status"`
	IsSystem bool             `json:"isSystem"`
	Revision string           `json:"revision"`
}

// RenameTo holds the new name for rename methods.
type RenameTo struct {
	Name string `json:"name"`
}
