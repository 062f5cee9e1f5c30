// Types used in methods for managing graphs, vertices and edges.

package arango

import (
	"encoding/json"
	"fmt"
)

// EdgeDefinition relates one edge collection to the vertex collections its
// edges start from and point to.
type EdgeDefinition struct {
	Collection string   `json:"collection"`
	From       []string `json:"from"`
	To         []string `json:"to"`
}

// Graph describes a named graph as reported by the server.
//
// The server addresses graphs both as documents (with "_key") and by
// "name"; deserialization tolerates either one being absent and falls back
// to the other. Both missing is an error.
type Graph struct {
	id                  DocumentID
	key                 DocumentKey
	revision            Revision
	name                string
	edgeDefinitions     []EdgeDefinition
	orphanCollections   []string
	smart               bool
	smartGraphAttribute string
	numberOfShards      uint16
	replicationFactor   uint64
}

// ID returns the document id of this graph.
func (g Graph) ID() DocumentID { return g.id }

// Key returns the document key of this graph.
func (g Graph) Key() DocumentKey { return g.key }

// Revision returns the revision of this graph.
func (g Graph) Revision() Revision { return g.revision }

// Name returns the name of this graph.
func (g Graph) Name() string { return g.name }

// EdgeDefinitions returns the edge definitions of this graph in server
// order.
func (g Graph) EdgeDefinitions() []EdgeDefinition { return g.edgeDefinitions }

// OrphanCollections returns the vertex collections that are not used in
// any edge definition.
func (g Graph) OrphanCollections() []string { return g.orphanCollections }

// IsSmart reports whether this is a smart graph (enterprise servers).
func (g Graph) IsSmart() bool { return g.smart }

// SmartGraphAttribute returns the sharding attribute of a smart graph.
func (g Graph) SmartGraphAttribute() string { return g.smartGraphAttribute }

// NumberOfShards returns the shard count of this graph (cluster servers).
func (g Graph) NumberOfShards() uint16 { return g.numberOfShards }

// ReplicationFactor returns the replication factor of this graph (cluster
// servers).
func (g Graph) ReplicationFactor() uint64 { return g.replicationFactor }

type graphWire struct {
	ID                  *DocumentID      `json:"_id"`
	Key                 *string          `json:"_key"`
	Revision            *string          `json:"_rev"`
	Name                *string          `json:"name"`
	EdgeDefinitions     []EdgeDefinition `json:"edgeDefinitions"`
	OrphanCollections   []string         `json:"orphanCollections"`
	Smart               bool             `json:"isSmart"`
	SmartGraphAttribute string           `json:"smartGraphAttribute"`
	NumberOfShards      uint16           `json:"numberOfShards"`
	ReplicationFactor   uint64           `json:"replicationFactor"`
}

// UnmarshalJSON parses a graph wire object. "_id", "_rev",
// "edgeDefinitions" and "orphanCollections" are required; "_key" and
// "name" fall back to each other when one is absent.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var wire graphWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch {
	case wire.ID == nil:
		return fmt.Errorf("missing field %q", FieldEntityID)
	case wire.Revision == nil:
		return fmt.Errorf("missing field %q", FieldEntityRevision)
	case wire.Key == nil && wire.Name == nil:
		return fmt.Errorf("missing field %q or %q", FieldName, FieldEntityKey)
	case wire.EdgeDefinitions == nil:
		return fmt.Errorf("missing field %q", FieldEdgeDefinitions)
	case wire.OrphanCollections == nil:
		return fmt.Errorf("missing field %q", FieldOrphans)
	}
	key, name := wire.Key, wire.Name
	if key == nil {
		key = name
	}
	if name == nil {
		name = key
	}
	documentKey, err := ParseDocumentKey(*key)
	if err != nil {
		return err
	}
	*g = Graph{
		id:                  *wire.ID,
		key:                 documentKey,
		revision:            Revision(*wire.Revision),
		name:                *name,
		edgeDefinitions:     wire.EdgeDefinitions,
		orphanCollections:   wire.OrphanCollections,
		smart:               wire.Smart,
		smartGraphAttribute: wire.SmartGraphAttribute,
		numberOfShards:      wire.NumberOfShards,
		replicationFactor:   wire.ReplicationFactor,
	}
	return nil
}

// GraphOptions are the cluster and enterprise options of a graph that is
// going to be created.
type GraphOptions struct {
	SmartGraphAttribute *string `json:"smartGraphAttribute,omitempty"`
	NumberOfShards      *uint16 `json:"numberOfShards,omitempty"`
	ReplicationFactor   *uint64 `json:"replicationFactor,omitempty"`
}

// NewGraph holds the properties of a graph that is going to be created.
type NewGraph struct {
	Name              string           `json:"name"`
	EdgeDefinitions   []EdgeDefinition `json:"edgeDefinitions,omitempty"`
	OrphanCollections []string         `json:"orphanCollections,omitempty"`
	Smart             bool             `json:"isSmart,omitempty"`
	Options           *GraphOptions    `json:"options,omitempty"`
}

// GraphWithName describes a new graph with the given name and no edge
// definitions yet.
func GraphWithName(name string) NewGraph {
	return NewGraph{Name: name}
}

// WithEdgeDefinitions adds the given edge definitions to the new graph.
func (g NewGraph) WithEdgeDefinitions(edges ...EdgeDefinition) NewGraph {
	g.EdgeDefinitions = append(g.EdgeDefinitions, edges...)
	return g
}

// WithOrphanCollections adds the given orphan vertex collections to the
// new graph.
func (g NewGraph) WithOrphanCollections(collections ...string) NewGraph {
	g.OrphanCollections = append(g.OrphanCollections, collections...)
	return g
}

// VertexCollection names a vertex collection within a graph.
type VertexCollection struct {
	Collection string `json:"collection"`
}

// EdgeCollection names an edge collection within a graph.
type EdgeCollection struct {
	Collection string `json:"collection"`
}

// Edge is an edge document: the identity header, the from and to vertices
// and the user-defined content of type T.
//
// On the wire an edge is a flat JSON object mixing the reserved fields
// "_id", "_key", "_rev", "_from" and "_to" with the arbitrary fields of
// the content.
type Edge[T any] struct {
	id       DocumentID
	key      DocumentKey
	revision Revision
	from     DocumentID
	to       DocumentID
	content  T
}

// NewEdgeValue describes an edge that is going to be inserted: the from
// and to vertices, the content and an optional explicit key.
type NewEdgeValue[T any] struct {
	key     *DocumentKey
	from    DocumentID
	to      DocumentID
	content T
}

// EdgeFromTo constructs a new edge between the given vertices with the
// given content.
func EdgeFromTo[T any](from, to DocumentID, content T) NewEdgeValue[T] {
	return NewEdgeValue[T]{from: from, to: to, content: content}
}

// WithKey sets an explicit key for the new edge.
func (n NewEdgeValue[T]) WithKey(key DocumentKey) NewEdgeValue[T] {
	n.key = &key
	return n
}

// From returns the vertex this edge starts from.
func (n NewEdgeValue[T]) From() DocumentID { return n.from }

// To returns the vertex this edge points to.
func (n NewEdgeValue[T]) To() DocumentID { return n.to }

// Content returns the content of this new edge.
func (n NewEdgeValue[T]) Content() T { return n.content }

// MarshalJSON serializes the content with "_from" and "_to" (and "_key"
// when an explicit key is set) injected. Content that does not serialize
// into a JSON object is rejected.
func (n NewEdgeValue[T]) MarshalJSON() ([]byte, error) {
	fields, err := contentAsObject(n.content)
	if err != nil {
		return nil, err
	}
	fields[FieldEntityFrom] = mustRaw(n.from.String())
	fields[FieldEntityTo] = mustRaw(n.to.String())
	if n.key != nil {
		fields[FieldEntityKey] = mustRaw(n.key.String())
	}
	return json.Marshal(fields)
}

// ID returns the qualified id of this edge.
func (e Edge[T]) ID() DocumentID { return e.id }

// Key returns the key of this edge.
func (e Edge[T]) Key() DocumentKey { return e.key }

// Revision returns the revision of this edge.
func (e Edge[T]) Revision() Revision { return e.revision }

// From returns the vertex this edge starts from.
func (e Edge[T]) From() DocumentID { return e.from }

// To returns the vertex this edge points to.
func (e Edge[T]) To() DocumentID { return e.to }

// Content returns the user-defined content of this edge.
func (e Edge[T]) Content() T { return e.content }

// MarshalJSON serializes the edge as a flat object containing the reserved
// fields and the fields of the content.
func (e Edge[T]) MarshalJSON() ([]byte, error) {
	fields, err := contentAsObject(e.content)
	if err != nil {
		return nil, err
	}
	fields[FieldEntityID] = mustRaw(e.id.String())
	fields[FieldEntityKey] = mustRaw(e.key.String())
	fields[FieldEntityRevision] = mustRaw(e.revision.String())
	fields[FieldEntityFrom] = mustRaw(e.from.String())
	fields[FieldEntityTo] = mustRaw(e.to.String())
	return json.Marshal(fields)
}

// UnmarshalJSON parses an edge wire object. The reserved fields "_id",
// "_key", "_rev", "_from" and "_to" are required; all remaining fields
// materialize the content, except when the server sent a "new" or "old"
// sub-object, which then replaces the in-line fields as the content
// source.
func (e *Edge[T]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var id, key, revision, from, to, content json.RawMessage
	rest := make(map[string]json.RawMessage, len(fields))
	for name, value := range fields {
		switch name {
		case FieldEntityID:
			id = value
		case FieldEntityKey:
			key = value
		case FieldEntityRevision:
			revision = value
		case FieldEntityFrom:
			from = value
		case FieldEntityTo:
			to = value
		case FieldEntityNew, FieldEntityOld:
			content = value
		case FieldEntityOldRev:
			// consumed, never passed through to the content
		default:
			rest[name] = value
		}
	}

	switch {
	case id == nil:
		return fmt.Errorf("missing field %q", FieldEntityID)
	case key == nil:
		return fmt.Errorf("missing field %q", FieldEntityKey)
	case revision == nil:
		return fmt.Errorf("missing field %q", FieldEntityRevision)
	case from == nil:
		return fmt.Errorf("missing field %q", FieldEntityFrom)
	case to == nil:
		return fmt.Errorf("missing field %q", FieldEntityTo)
	}

	if err := json.Unmarshal(id, &e.id); err != nil {
		return err
	}
	if err := json.Unmarshal(key, &e.key); err != nil {
		return err
	}
	var rev string
	if err := json.Unmarshal(revision, &rev); err != nil {
		return err
	}
	e.revision = Revision(rev)
	if err := json.Unmarshal(from, &e.from); err != nil {
		return err
	}
	if err := json.Unmarshal(to, &e.to); err != nil {
		return err
	}

	if content == nil {
		remainder, err := json.Marshal(rest)
		if err != nil {
			return err
		}
		content = remainder
	}
	return json.Unmarshal(content, &e.content)
}
