package session

import (
	"context"
	"fmt"
	"testing"

	"arango.evalgo.org/api"
	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
	"arango.evalgo.org/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func connectorFor(t *testing.T, server *mock.Server) *connector.Connector {
	t.Helper()
	ds, err := connector.ParseDataSource(server.URL())
	require.NoError(t, err)
	return connector.NewConnector(ds)
}

func TestGetServerVersion(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	session := NewArangoSession(connectorFor(t, server))
	version, err := session.GetServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "arango", version.Server)
	assert.Equal(t, "3.3.7", version.Version)
	assert.Empty(t, version.Details)

	details, err := session.GetServerVersionDetails(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, details.Details)
}

func TestAuthenticateThenExecuteWithToken(t *testing.T) {
	server := mock.NewServerWithTokenAuth("root", "s3cr3t")
	defer server.Close()

	ds, err := connector.ParseDataSource(server.URL())
	require.NoError(t, err)
	ds = ds.WithAuthentication(api.JWTAuthentication("root", "s3cr3t"))
	conn := connector.NewConnector(ds)
	session := NewArangoSession(conn)

	// Without a token the call fails fast, before any request is sent.
	before := server.RequestCount()
	_, err = session.GetServerVersion(context.Background())
	var notAuthenticated *api.NotAuthenticatedError
	require.ErrorAs(t, err, &notAuthenticated)
	assert.Equal(t, before, server.RequestCount())

	require.NoError(t, session.Authenticate(context.Background(), "root", "s3cr3t"))

	version, err := session.GetServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "arango", version.Server)
}

func TestAuthenticateWithWrongCredentials(t *testing.T) {
	server := mock.NewServerWithTokenAuth("root", "s3cr3t")
	defer server.Close()

	session := NewArangoSession(connectorFor(t, server))
	err := session.Authenticate(context.Background(), "root", "wrong")

	var methodError *api.MethodError
	require.ErrorAs(t, err, &methodError)
	assert.Equal(t, 401, methodError.StatusCode)
}

func TestCollectionLifecycle(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("shop")
	ctx := context.Background()

	collection, err := database.CreateCollection(ctx, "customers")
	require.NoError(t, err)
	assert.Equal(t, "customers", collection.Name())
	assert.Equal(t, "shop", collection.DatabaseName())
	entity, loaded := collection.Entity()
	require.True(t, loaded)
	assert.Equal(t, arango.CollectionDocuments, entity.Kind)

	collections, err := database.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "customers", collections[0].Name)

	fetched, err := database.UseCollectionWithName("customers").Fetch(ctx)
	require.NoError(t, err)
	_, loaded = fetched.Entity()
	assert.True(t, loaded)

	id, err := collection.Drop(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	collections, err = database.ListCollections(ctx)
	require.NoError(t, err)
	assert.Empty(t, collections)
}

func TestDocumentWorkflow(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("shop")
	ctx := context.Background()

	collection, err := database.CreateCollection(ctx, "customers")
	require.NoError(t, err)

	header, err := InsertDocument(ctx, collection,
		arango.FromContent(customer{Name: "Hugo", Age: 42}).WithKey("hugo"))
	require.NoError(t, err)
	assert.Equal(t, "customers/hugo", header.ID.String())
	assert.Equal(t, arango.DocumentKey("hugo"), header.Key)
	assert.NotEmpty(t, header.Revision)

	document, err := GetDocumentWithKey[customer](ctx, collection, "hugo")
	require.NoError(t, err)
	assert.Equal(t, header.ID, document.ID())
	assert.Equal(t, customer{Name: "Hugo", Age: 42}, document.Content())

	generated, err := InsertDocument(ctx, collection,
		arango.FromContent(customer{Name: "Emma", Age: 7}))
	require.NoError(t, err)
	assert.NotEmpty(t, generated.Key)

	deleted, err := collection.DeleteDocument(ctx, "hugo")
	require.NoError(t, err)
	assert.Equal(t, header.Key, deleted.Key)

	_, err = GetDocumentWithKey[customer](ctx, collection, "hugo")
	var methodError *api.MethodError
	require.ErrorAs(t, err, &methodError)
	assert.Equal(t, api.CodeArangoDocumentNotFound, methodError.Code)
}

func TestInsertDocumentReturnNew(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("shop")
	ctx := context.Background()

	collection, err := database.CreateCollection(ctx, "customers")
	require.NoError(t, err)

	document, err := InsertDocumentReturnNew(ctx, collection,
		arango.FromContent(customer{Name: "Hugo", Age: 42}).WithKey("hugo"))
	require.NoError(t, err)
	assert.Equal(t, arango.DocumentKey("hugo"), document.Key())
	assert.Equal(t, customer{Name: "Hugo", Age: 42}, document.Content())
}

func TestIndexWorkflow(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("shop")
	ctx := context.Background()

	collection, err := database.CreateCollection(ctx, "customers")
	require.NoError(t, err)

	index, err := collection.EnsureHashIndex(ctx, []string{"name"}, false, true, true)
	require.NoError(t, err)
	assert.Equal(t, arango.IndexHash, index.Kind)
	assert.True(t, index.IsNewlyCreated)
	assert.Equal(t, []string{"name"}, index.Fields)

	id, qualified := index.ID.ID()
	require.True(t, qualified)
	assert.Equal(t, "customers", id.CollectionName())

	fetched, err := collection.GetIndex(ctx, arango.IndexKey(id.IndexKey()))
	require.NoError(t, err)
	assert.Equal(t, arango.IndexHash, fetched.Kind)

	list, err := collection.GetIndexList(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	deleted, err := collection.DeleteIndex(ctx, arango.IndexKey(id.IndexKey()))
	require.NoError(t, err)
	deletedID, qualified := deleted.ID()
	require.True(t, qualified)
	assert.Equal(t, id, deletedID)
}

func TestCursorPaging(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	// 21 customers, of which 17 pass the age filter applied by the query.
	var filtered []any
	for i := 0; i < 17; i++ {
		filtered = append(filtered, customer{Name: fmt.Sprintf("customer-%02d", i), Age: 21 + i})
	}
	require.NoError(t, server.SetQueryResult(filtered))

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("shop")
	ctx := context.Background()

	newCursor := arango.NewCursorForQuery(
		api.NewQuery("FOR c IN customers FILTER c.age > @age RETURN c").
			WithParameter("age", 20)).
		WithBatchSize(5).
		WithCount(true)

	cursor, err := QueryOpt[customer](ctx, database, newCursor)
	require.NoError(t, err)

	// First batch of five, with a cursor id as more results wait on the
	// server.
	assert.Len(t, cursor.Batch(), 5)
	assert.NotEmpty(t, cursor.ID())
	count, hasCount := cursor.Count()
	require.True(t, hasCount)
	assert.Equal(t, uint64(17), count)

	var results []customer
	for {
		result, more, err := cursor.Next(ctx)
		require.NoError(t, err)
		if !more {
			break
		}
		results = append(results, result)
	}

	assert.Len(t, results, 17)
	assert.Equal(t, "customer-00", results[0].Name)
	assert.Equal(t, "customer-16", results[16].Name)
	assert.False(t, cursor.HasMore())
}

func TestCursorDelete(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	items := make([]any, 12)
	for i := range items {
		items[i] = customer{Name: fmt.Sprintf("c%d", i)}
	}
	require.NoError(t, server.SetQueryResult(items))

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("shop")
	ctx := context.Background()

	cursor, err := QueryOpt[customer](ctx, database,
		arango.NewCursor{Query: "FOR c IN customers RETURN c"}.WithBatchSize(5))
	require.NoError(t, err)
	require.NotEmpty(t, cursor.ID())

	// Consume one batch only, then delete the server-side cursor.
	assert.Len(t, cursor.Batch(), 5)
	require.NoError(t, cursor.Delete(ctx))

	// The first batch is still readable locally, but fetching the next
	// batch fails because the cursor is gone on the server.
	for i := 0; i < 5; i++ {
		_, more, err := cursor.Next(ctx)
		require.NoError(t, err)
		assert.True(t, more)
	}
	_, more, err := cursor.Next(ctx)
	require.Error(t, err)
	assert.False(t, more)
}

func TestUserWorkflow(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	session := NewArangoSession(connectorFor(t, server))
	ctx := context.Background()

	user, err := session.CreateUser(ctx, "herbert", "s3cr3t")
	require.NoError(t, err)
	assert.Equal(t, "herbert", user.Name)
	assert.True(t, user.Active)

	fetched, err := session.GetUser(ctx, "herbert")
	require.NoError(t, err)
	assert.Equal(t, "herbert", fetched.Name)

	_, err = session.GetUser(ctx, "nobody")
	var methodError *api.MethodError
	require.ErrorAs(t, err, &methodError)
	assert.Equal(t, 404, methodError.StatusCode)
}

func TestDatabaseAdministration(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	session := NewArangoSession(connectorFor(t, server))
	ctx := context.Background()

	database, err := CreateDatabase(ctx, session, "shop",
		arango.UserWithName[Extra]("herbert", "s3cr3t"))
	require.NoError(t, err)
	assert.Equal(t, "shop", database.Name())

	names, err := session.ListDatabases(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "_system")

	dropped, err := session.DropDatabase(ctx, "shop")
	require.NoError(t, err)
	assert.True(t, dropped)
}
