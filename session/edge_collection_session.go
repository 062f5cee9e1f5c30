// The edge collection session: CRUD on the edges of one edge collection
// of a graph.

package session

import (
	"context"

	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
)

// EdgeCollectionSession drives the operations on one edge collection of a
// graph.
type EdgeCollectionSession struct {
	connector    *connector.Connector
	databaseName string
	graphName    string
	name         string
}

// DatabaseName returns the name of the database the graph lives in.
func (s *EdgeCollectionSession) DatabaseName() string { return s.databaseName }

// GraphName returns the name of the graph the edge collection belongs to.
func (s *EdgeCollectionSession) GraphName() string { return s.graphName }

// Name returns the name of the edge collection this session operates on.
func (s *EdgeCollectionSession) Name() string { return s.name }

func (s *EdgeCollectionSession) conn() *connector.Connection {
	return s.connector.Connection(s.databaseName)
}

// Drop removes the edge definition of this collection from the graph and
// returns the updated graph. The session must not be used afterwards.
func (s *EdgeCollectionSession) Drop(ctx context.Context) (arango.Graph, error) {
	return connector.Execute[arango.Graph](
		ctx, s.conn(), arango.NewRemoveEdgeDefinition(s.graphName, s.name))
}

// InsertEdge inserts a new edge into the collection and returns the
// header of the stored edge.
func InsertEdge[T any](ctx context.Context, s *EdgeCollectionSession, edge arango.NewEdgeValue[T]) (arango.DocumentHeader, error) {
	return connector.Execute[arango.DocumentHeader](
		ctx, s.conn(), arango.NewInsertEdge(s.graphName, s.name, edge))
}

// InsertEdgeSynced inserts a new edge and waits until the collection is
// synchronized to disk.
func InsertEdgeSynced[T any](ctx context.Context, s *EdgeCollectionSession, edge arango.NewEdgeValue[T]) (arango.DocumentHeader, error) {
	return connector.Execute[arango.DocumentHeader](
		ctx, s.conn(), arango.NewInsertEdge(s.graphName, s.name, edge).WithWaitForSync(true))
}

// GetEdge reads the edge with the given key from the collection.
func GetEdge[T any](ctx context.Context, s *EdgeCollectionSession, key arango.DocumentKey) (arango.Edge[T], error) {
	return connector.Execute[arango.Edge[T]](
		ctx, s.conn(), arango.NewGetEdge(s.graphName, s.name, key))
}

// GetEdgeIfMatch reads the edge with the given key, failing unless the
// stored revision matches.
func GetEdgeIfMatch[T any](ctx context.Context, s *EdgeCollectionSession, key arango.DocumentKey, ifMatch arango.Revision) (arango.Edge[T], error) {
	method := arango.NewGetEdge(s.graphName, s.name, key).WithIfMatch(ifMatch)
	return connector.Execute[arango.Edge[T]](ctx, s.conn(), method)
}

// GetEdgeIfNonMatch reads the edge with the given key only when the
// stored revision differs from the given one.
func GetEdgeIfNonMatch[T any](ctx context.Context, s *EdgeCollectionSession, key arango.DocumentKey, ifNonMatch arango.Revision) (arango.Edge[T], error) {
	method := arango.NewGetEdge(s.graphName, s.name, key).WithIfNonMatch(ifNonMatch)
	return connector.Execute[arango.Edge[T]](ctx, s.conn(), method)
}

// ReplaceEdge replaces the edge with the given key by the given edge
// value and returns its updated header.
func ReplaceEdge[T any](ctx context.Context, s *EdgeCollectionSession, key arango.DocumentKey, edge arango.NewEdgeValue[T]) (arango.UpdatedDocumentHeader, error) {
	return connector.Execute[arango.UpdatedDocumentHeader](
		ctx, s.conn(), arango.NewReplaceEdge(s.graphName, s.name, key, edge))
}

// ReplaceEdgeIfMatch replaces an edge, failing unless the stored revision
// matches.
func ReplaceEdgeIfMatch[T any](ctx context.Context, s *EdgeCollectionSession, key arango.DocumentKey, edge arango.NewEdgeValue[T], ifMatch arango.Revision) (arango.UpdatedDocumentHeader, error) {
	method := arango.NewReplaceEdge(s.graphName, s.name, key, edge).WithIfMatch(ifMatch)
	return connector.Execute[arango.UpdatedDocumentHeader](ctx, s.conn(), method)
}

// ModifyEdge partially updates the content of the edge with the given key
// and returns its updated header.
func ModifyEdge[Upd any](ctx context.Context, s *EdgeCollectionSession, key arango.DocumentKey, update Upd) (arango.UpdatedDocumentHeader, error) {
	return connector.Execute[arango.UpdatedDocumentHeader](
		ctx, s.conn(), arango.NewModifyEdge(s.graphName, s.name, key, update))
}

// ModifyEdgeIfMatch partially updates the content of an edge, failing
// unless the stored revision matches.
func ModifyEdgeIfMatch[Upd any](ctx context.Context, s *EdgeCollectionSession, key arango.DocumentKey, update Upd, ifMatch arango.Revision) (arango.UpdatedDocumentHeader, error) {
	method := arango.NewModifyEdge(s.graphName, s.name, key, update).WithIfMatch(ifMatch)
	return connector.Execute[arango.UpdatedDocumentHeader](ctx, s.conn(), method)
}

// RemoveEdge removes the edge with the given key from the collection.
func (s *EdgeCollectionSession) RemoveEdge(ctx context.Context, key arango.DocumentKey) (bool, error) {
	return connector.Execute[bool](
		ctx, s.conn(), arango.NewRemoveEdge(s.graphName, s.name, key))
}

// RemoveEdgeIfMatch removes the edge with the given key, failing unless
// the stored revision matches.
func (s *EdgeCollectionSession) RemoveEdgeIfMatch(ctx context.Context, key arango.DocumentKey, ifMatch arango.Revision) (bool, error) {
	method := arango.NewRemoveEdge(s.graphName, s.name, key).WithIfMatch(ifMatch)
	return connector.Execute[bool](ctx, s.conn(), method)
}
