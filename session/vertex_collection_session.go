// The vertex collection session: CRUD on the vertices of one vertex
// collection of a graph.

package session

import (
	"context"

	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
)

// VertexCollectionSession drives the operations on one vertex collection
// of a graph.
type VertexCollectionSession struct {
	connector    *connector.Connector
	databaseName string
	graphName    string
	name         string
}

// DatabaseName returns the name of the database the graph lives in.
func (s *VertexCollectionSession) DatabaseName() string { return s.databaseName }

// GraphName returns the name of the graph the vertex collection belongs
// to.
func (s *VertexCollectionSession) GraphName() string { return s.graphName }

// Name returns the name of the vertex collection this session operates
// on.
func (s *VertexCollectionSession) Name() string { return s.name }

func (s *VertexCollectionSession) conn() *connector.Connection {
	return s.connector.Connection(s.databaseName)
}

// Drop removes the vertex collection from the graph and returns the
// updated graph. The session must not be used afterwards.
func (s *VertexCollectionSession) Drop(ctx context.Context) (arango.Graph, error) {
	return connector.Execute[arango.Graph](
		ctx, s.conn(), arango.NewRemoveVertexCollection(s.graphName, s.name))
}

// InsertVertex inserts a new vertex into the collection and returns the
// header of the stored vertex.
func InsertVertex[T any](ctx context.Context, s *VertexCollectionSession, vertex arango.NewDocumentValue[T]) (arango.DocumentHeader, error) {
	return connector.Execute[arango.DocumentHeader](
		ctx, s.conn(), arango.NewInsertVertex(s.graphName, s.name, vertex))
}

// InsertVertexSynced inserts a new vertex and waits until the collection
// is synchronized to disk.
func InsertVertexSynced[T any](ctx context.Context, s *VertexCollectionSession, vertex arango.NewDocumentValue[T]) (arango.DocumentHeader, error) {
	return connector.Execute[arango.DocumentHeader](
		ctx, s.conn(), arango.NewInsertVertex(s.graphName, s.name, vertex).WithWaitForSync(true))
}

// GetVertex reads the vertex with the given key from the collection.
func GetVertex[T any](ctx context.Context, s *VertexCollectionSession, key arango.DocumentKey) (arango.Document[T], error) {
	return connector.Execute[arango.Document[T]](
		ctx, s.conn(), arango.NewGetVertex(s.graphName, s.name, key))
}

// GetVertexIfMatch reads the vertex with the given key, failing unless
// the stored revision matches.
func GetVertexIfMatch[T any](ctx context.Context, s *VertexCollectionSession, key arango.DocumentKey, ifMatch arango.Revision) (arango.Document[T], error) {
	method := arango.NewGetVertex(s.graphName, s.name, key).WithIfMatch(ifMatch)
	return connector.Execute[arango.Document[T]](ctx, s.conn(), method)
}

// GetVertexIfNonMatch reads the vertex with the given key only when the
// stored revision differs from the given one.
func GetVertexIfNonMatch[T any](ctx context.Context, s *VertexCollectionSession, key arango.DocumentKey, ifNonMatch arango.Revision) (arango.Document[T], error) {
	method := arango.NewGetVertex(s.graphName, s.name, key).WithIfNonMatch(ifNonMatch)
	return connector.Execute[arango.Document[T]](ctx, s.conn(), method)
}

// ReplaceVertex replaces the content of the vertex with the given key and
// returns its updated header.
func ReplaceVertex[T any](ctx context.Context, s *VertexCollectionSession, key arango.DocumentKey, content T) (arango.UpdatedDocumentHeader, error) {
	return connector.Execute[arango.UpdatedDocumentHeader](
		ctx, s.conn(), arango.NewReplaceVertex(s.graphName, s.name, key, content))
}

// ReplaceVertexIfMatch replaces the content of a vertex, failing unless
// the stored revision matches.
func ReplaceVertexIfMatch[T any](ctx context.Context, s *VertexCollectionSession, key arango.DocumentKey, content T, ifMatch arango.Revision) (arango.UpdatedDocumentHeader, error) {
	method := arango.NewReplaceVertex(s.graphName, s.name, key, content).WithIfMatch(ifMatch)
	return connector.Execute[arango.UpdatedDocumentHeader](ctx, s.conn(), method)
}

// ModifyVertex partially updates the content of the vertex with the given
// key and returns its updated header.
func ModifyVertex[Upd any](ctx context.Context, s *VertexCollectionSession, key arango.DocumentKey, update Upd) (arango.UpdatedDocumentHeader, error) {
	return connector.Execute[arango.UpdatedDocumentHeader](
		ctx, s.conn(), arango.NewModifyVertex(s.graphName, s.name, key, update))
}

// ModifyVertexIfMatch partially updates the content of a vertex, failing
// unless the stored revision matches.
func ModifyVertexIfMatch[Upd any](ctx context.Context, s *VertexCollectionSession, key arango.DocumentKey, update Upd, ifMatch arango.Revision) (arango.UpdatedDocumentHeader, error) {
	method := arango.NewModifyVertex(s.graphName, s.name, key, update).WithIfMatch(ifMatch)
	return connector.Execute[arango.UpdatedDocumentHeader](ctx, s.conn(), method)
}

// RemoveVertex removes the vertex with the given key from the collection.
func (s *VertexCollectionSession) RemoveVertex(ctx context.Context, key arango.DocumentKey) (bool, error) {
	return connector.Execute[bool](
		ctx, s.conn(), arango.NewRemoveVertex(s.graphName, s.name, key))
}

// RemoveVertexIfMatch removes the vertex with the given key, failing
// unless the stored revision matches.
func (s *VertexCollectionSession) RemoveVertexIfMatch(ctx context.Context, key arango.DocumentKey, ifMatch arango.Revision) (bool, error) {
	method := arango.NewRemoveVertex(s.graphName, s.name, key).WithIfMatch(ifMatch)
	return connector.Execute[bool](ctx, s.conn(), method)
}
