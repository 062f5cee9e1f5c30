// The graph session: graph-level operations, vertex collections and edge
// definitions.

package session

import (
	"context"

	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
)

// GraphSession drives the operations on one named graph. It holds either
// just the graph name or the loaded graph entity; Fetch loads the entity
// into the session.
type GraphSession struct {
	connector    *connector.Connector
	databaseName string
	name         string
	entity       *arango.Graph
}

// NewGraphSession creates a session for operations on the named graph in
// the named database.
func NewGraphSession(conn *connector.Connector, databaseName, name string) *GraphSession {
	return &GraphSession{connector: conn, databaseName: databaseName, name: name}
}

// DatabaseName returns the name of the database the graph lives in.
func (s *GraphSession) DatabaseName() string { return s.databaseName }

// Name returns the name of the graph this session operates on.
func (s *GraphSession) Name() string { return s.name }

// Entity returns the loaded graph entity, or false when only the name is
// known.
func (s *GraphSession) Entity() (arango.Graph, bool) {
	if s.entity == nil {
		return arango.Graph{}, false
	}
	return *s.entity, true
}

func (s *GraphSession) conn() *connector.Connection {
	return s.connector.Connection(s.databaseName)
}

func (s *GraphSession) withEntity(graph arango.Graph) *GraphSession {
	return &GraphSession{
		connector:    s.connector,
		databaseName: s.databaseName,
		name:         graph.Name(),
		entity:       &graph,
	}
}

// Fetch loads the graph entity from the server into a new session.
func (s *GraphSession) Fetch(ctx context.Context) (*GraphSession, error) {
	graph, err := connector.Execute[arango.Graph](ctx, s.conn(), arango.NewGetGraph(s.name))
	if err != nil {
		return nil, err
	}
	return s.withEntity(graph), nil
}

// Drop drops the graph this session operates on. The session must not be
// used afterwards.
func (s *GraphSession) Drop(ctx context.Context) (bool, error) {
	return connector.Execute[bool](ctx, s.conn(), arango.NewDropGraph(s.name))
}

// AddVertexCollection adds the named vertex collection to the graph and
// returns a session holding the updated graph.
func (s *GraphSession) AddVertexCollection(ctx context.Context, collectionName string) (*GraphSession, error) {
	graph, err := connector.Execute[arango.Graph](
		ctx, s.conn(), arango.NewAddVertexCollection(s.name, collectionName))
	if err != nil {
		return nil, err
	}
	return s.withEntity(graph), nil
}

// RemoveVertexCollection removes the named vertex collection from the
// graph and returns a session holding the updated graph.
func (s *GraphSession) RemoveVertexCollection(ctx context.Context, collectionName string) (*GraphSession, error) {
	graph, err := connector.Execute[arango.Graph](
		ctx, s.conn(), arango.NewRemoveVertexCollection(s.name, collectionName))
	if err != nil {
		return nil, err
	}
	return s.withEntity(graph), nil
}

// ListVertexCollections lists the vertex collections of the graph.
func (s *GraphSession) ListVertexCollections(ctx context.Context) ([]string, error) {
	return connector.Execute[[]string](ctx, s.conn(), arango.NewListVertexCollections(s.name))
}

// UseVertexCollection returns a session for operations on the named
// vertex collection of this graph.
func (s *GraphSession) UseVertexCollection(collectionName string) *VertexCollectionSession {
	return &VertexCollectionSession{
		connector:    s.connector,
		databaseName: s.databaseName,
		graphName:    s.name,
		name:         collectionName,
	}
}

// AddEdgeDefinition adds an edge definition to the graph and returns a
// session holding the updated graph.
func (s *GraphSession) AddEdgeDefinition(ctx context.Context, collectionName string, from, to []string) (*GraphSession, error) {
	edge := arango.EdgeDefinition{Collection: collectionName, From: from, To: to}
	graph, err := connector.Execute[arango.Graph](
		ctx, s.conn(), arango.NewAddEdgeDefinition(s.name, edge))
	if err != nil {
		return nil, err
	}
	return s.withEntity(graph), nil
}

// RemoveEdgeDefinition removes the edge definition of the named edge
// collection from the graph and returns a session holding the updated
// graph.
func (s *GraphSession) RemoveEdgeDefinition(ctx context.Context, collectionName string) (*GraphSession, error) {
	graph, err := connector.Execute[arango.Graph](
		ctx, s.conn(), arango.NewRemoveEdgeDefinition(s.name, collectionName))
	if err != nil {
		return nil, err
	}
	return s.withEntity(graph), nil
}

// ListEdgeCollections lists the edge collections of the graph.
func (s *GraphSession) ListEdgeCollections(ctx context.Context) ([]string, error) {
	return connector.Execute[[]string](ctx, s.conn(), arango.NewListEdgeCollections(s.name))
}

// UseEdgeCollection returns a session for operations on the named edge
// collection of this graph.
func (s *GraphSession) UseEdgeCollection(collectionName string) *EdgeCollectionSession {
	return &EdgeCollectionSession{
		connector:    s.connector,
		databaseName: s.databaseName,
		graphName:    s.name,
		name:         collectionName,
	}
}
