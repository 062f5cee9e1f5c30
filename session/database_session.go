// The database session: collections, graphs, queries and cursors within
// one database.

package session

import (
	"context"

	"arango.evalgo.org/api"
	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
)

// DatabaseSession drives the operations on one database: collection and
// graph management, AQL query submission, explain and parse.
type DatabaseSession struct {
	connector *connector.Connector
	name      string
}

// NewDatabaseSession creates a session for operations on the database
// with the given name.
func NewDatabaseSession(conn *connector.Connector, name string) *DatabaseSession {
	return &DatabaseSession{connector: conn, name: name}
}

// Name returns the name of the database this session operates on.
func (s *DatabaseSession) Name() string { return s.name }

// Connector returns the connector used by this session.
func (s *DatabaseSession) Connector() *connector.Connector { return s.connector }

func (s *DatabaseSession) conn() *connector.Connection {
	return s.connector.Connection(s.name)
}

// Drop drops the database this session operates on, with all its data.
// The session must not be used afterwards.
func (s *DatabaseSession) Drop(ctx context.Context) (bool, error) {
	return connector.Execute[bool](ctx, s.connector.SystemConnection(), arango.NewDropDatabase(s.name))
}

// Query executes the given AQL query with default cursor parameters and
// returns a cursor session over its results.
func Query[T any](ctx context.Context, s *DatabaseSession, query *api.Query) (*CursorSession[T], error) {
	return QueryOpt[T](ctx, s, arango.NewCursorForQuery(query))
}

// QueryOpt executes an AQL query with explicit cursor parameters and
// returns a cursor session over its results.
func QueryOpt[T any](ctx context.Context, s *DatabaseSession, newCursor arango.NewCursor) (*CursorSession[T], error) {
	cursor, err := connector.Execute[arango.Cursor[T]](ctx, s.conn(), arango.NewCreateCursor(newCursor))
	if err != nil {
		return nil, err
	}
	return &CursorSession[T]{connector: s.connector, databaseName: s.name, cursor: cursor}, nil
}

// ExplainQuery explains how the given query would be executed.
func (s *DatabaseSession) ExplainQuery(ctx context.Context, query *api.Query) (arango.ExplainedQuery, error) {
	return connector.Execute[arango.ExplainedQuery](ctx, s.conn(), arango.NewExplainQuery(query))
}

// ExplainQueryOpt explains a query with explicit cursor parameters, e.g.
// to request all plans.
func (s *DatabaseSession) ExplainQueryOpt(ctx context.Context, newCursor arango.NewCursor) (arango.ExplainedQuery, error) {
	return connector.Execute[arango.ExplainedQuery](ctx, s.conn(), arango.NewExplainQueryWithOptions(newCursor))
}

// ParseQuery validates the given AQL query string without executing it.
func (s *DatabaseSession) ParseQuery(ctx context.Context, query string) (arango.ParsedQuery, error) {
	return connector.Execute[arango.ParsedQuery](ctx, s.conn(), arango.NewParseQuery(query))
}

// GetDocument reads the document with the given id from this database.
func GetDocument[T any](ctx context.Context, s *DatabaseSession, id arango.DocumentID) (arango.Document[T], error) {
	return connector.Execute[arango.Document[T]](ctx, s.conn(), arango.NewGetDocument(id))
}

// UseCollectionWithName returns a session for operations on the
// collection with the given name. The collection is not checked for
// existence.
func (s *DatabaseSession) UseCollectionWithName(name string) *CollectionSession {
	return &CollectionSession{connector: s.connector, databaseName: s.name, name: name}
}

// UseCollection returns a session for operations on the given loaded
// collection.
func (s *DatabaseSession) UseCollection(collection arango.Collection) *CollectionSession {
	return &CollectionSession{
		connector:    s.connector,
		databaseName: s.name,
		name:         collection.Name,
		entity:       &collection,
	}
}

// CreateCollection creates a collection with the given name and the
// default collection type and returns a session for operations on it.
func (s *DatabaseSession) CreateCollection(ctx context.Context, name string) (*CollectionSession, error) {
	collection, err := connector.Execute[arango.Collection](
		ctx, s.conn(), arango.NewCreateCollectionWithName(name))
	if err != nil {
		return nil, err
	}
	return s.UseCollection(collection), nil
}

// CreateCollectionWithDetails creates a collection from the given
// specification and returns a session for operations on it.
func (s *DatabaseSession) CreateCollectionWithDetails(ctx context.Context, collection arango.NewCollection) (*CollectionSession, error) {
	created, err := connector.Execute[arango.Collection](
		ctx, s.conn(), arango.NewCreateCollection(collection))
	if err != nil {
		return nil, err
	}
	return s.UseCollection(created), nil
}

// DropCollection drops the collection with the given name and returns the
// identifier of the dropped collection.
func (s *DatabaseSession) DropCollection(ctx context.Context, name string) (string, error) {
	return connector.Execute[string](ctx, s.conn(), arango.NewDropCollection(name))
}

// ListCollections lists all collections of this database except the
// system collections.
func (s *DatabaseSession) ListCollections(ctx context.Context) ([]arango.Collection, error) {
	return connector.Execute[[]arango.Collection](ctx, s.conn(), arango.NewListCollections())
}

// ListCollectionsIncludingSystem lists all collections of this database
// including the system collections.
func (s *DatabaseSession) ListCollectionsIncludingSystem(ctx context.Context) ([]arango.Collection, error) {
	return connector.Execute[[]arango.Collection](ctx, s.conn(), arango.NewListCollectionsIncludingSystem())
}

// UseGraphWithName returns a session for operations on the graph with the
// given name. The graph is not checked for existence.
func (s *DatabaseSession) UseGraphWithName(name string) *GraphSession {
	return &GraphSession{connector: s.connector, databaseName: s.name, name: name}
}

// UseGraph returns a session for operations on the given loaded graph.
func (s *DatabaseSession) UseGraph(graph arango.Graph) *GraphSession {
	return &GraphSession{
		connector:    s.connector,
		databaseName: s.name,
		name:         graph.Name(),
		entity:       &graph,
	}
}

// CreateGraph creates a graph from the given specification and returns a
// session for operations on it.
func (s *DatabaseSession) CreateGraph(ctx context.Context, graph arango.NewGraph) (*GraphSession, error) {
	created, err := connector.Execute[arango.Graph](ctx, s.conn(), arango.NewCreateGraph(graph))
	if err != nil {
		return nil, err
	}
	return s.UseGraph(created), nil
}

// DropGraph drops the graph with the given name.
func (s *DatabaseSession) DropGraph(ctx context.Context, name string) (bool, error) {
	return connector.Execute[bool](ctx, s.conn(), arango.NewDropGraph(name))
}

// ListGraphs lists all graphs of this database.
func (s *DatabaseSession) ListGraphs(ctx context.Context) ([]arango.Graph, error) {
	return connector.Execute[[]arango.Graph](ctx, s.conn(), arango.NewListGraphs())
}
