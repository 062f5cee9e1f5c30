package session

import (
	"context"
	"testing"

	"arango.evalgo.org/api"
	"arango.evalgo.org/arango"
	"arango.evalgo.org/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type friendship struct {
	Since string `json:"since"`
}

func TestGraphLifecycle(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("social-db")
	ctx := context.Background()

	graph, err := database.CreateGraph(ctx, arango.GraphWithName("social").
		WithEdgeDefinitions(arango.EdgeDefinition{
			Collection: "friend_of",
			From:       []string{"people"},
			To:         []string{"people"},
		}))
	require.NoError(t, err)
	assert.Equal(t, "social", graph.Name())

	entity, loaded := graph.Entity()
	require.True(t, loaded)
	assert.Equal(t, arango.DocumentKey("social"), entity.Key())
	require.Len(t, entity.EdgeDefinitions(), 1)

	graphs, err := database.ListGraphs(ctx)
	require.NoError(t, err)
	assert.Len(t, graphs, 1)

	fetched, err := database.UseGraphWithName("social").Fetch(ctx)
	require.NoError(t, err)
	_, loaded = fetched.Entity()
	assert.True(t, loaded)

	dropped, err := graph.Drop(ctx)
	require.NoError(t, err)
	assert.True(t, dropped)
}

func TestGraphVertexCollections(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("social-db")
	ctx := context.Background()

	graph, err := database.CreateGraph(ctx, arango.GraphWithName("social"))
	require.NoError(t, err)

	graph, err = graph.AddVertexCollection(ctx, "places")
	require.NoError(t, err)
	entity, _ := graph.Entity()
	assert.Equal(t, []string{"places"}, entity.OrphanCollections())

	collections, err := graph.ListVertexCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"places"}, collections)

	graph, err = graph.RemoveVertexCollection(ctx, "places")
	require.NoError(t, err)
	entity, _ = graph.Entity()
	assert.Empty(t, entity.OrphanCollections())
}

func TestGraphEdgeDefinitions(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("social-db")
	ctx := context.Background()

	graph, err := database.CreateGraph(ctx, arango.GraphWithName("social"))
	require.NoError(t, err)

	graph, err = graph.AddEdgeDefinition(ctx, "friend_of", []string{"people"}, []string{"people"})
	require.NoError(t, err)

	collections, err := graph.ListEdgeCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"friend_of"}, collections)

	graph, err = graph.RemoveEdgeDefinition(ctx, "friend_of")
	require.NoError(t, err)
	entity, _ := graph.Entity()
	assert.Empty(t, entity.EdgeDefinitions())
}

func TestVertexAndEdgeWorkflow(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	database := NewArangoSession(connectorFor(t, server)).UseDatabaseWithName("social-db")
	ctx := context.Background()

	graph, err := database.CreateGraph(ctx, arango.GraphWithName("social").
		WithEdgeDefinitions(arango.EdgeDefinition{
			Collection: "friend_of",
			From:       []string{"people"},
			To:         []string{"people"},
		}))
	require.NoError(t, err)

	people := graph.UseVertexCollection("people")
	assert.Equal(t, "social", people.GraphName())

	hugo, err := InsertVertex(ctx, people,
		arango.FromContent(customer{Name: "Hugo", Age: 42}).WithKey("hugo"))
	require.NoError(t, err)
	assert.Equal(t, "people/hugo", hugo.ID.String())

	emma, err := InsertVertex(ctx, people,
		arango.FromContent(customer{Name: "Emma", Age: 40}).WithKey("emma"))
	require.NoError(t, err)

	vertex, err := GetVertex[customer](ctx, people, "hugo")
	require.NoError(t, err)
	assert.Equal(t, customer{Name: "Hugo", Age: 42}, vertex.Content())

	friends := graph.UseEdgeCollection("friend_of")
	edgeHeader, err := InsertEdge(ctx, friends,
		arango.EdgeFromTo(hugo.ID, emma.ID, friendship{Since: "2017"}))
	require.NoError(t, err)
	assert.NotEmpty(t, edgeHeader.Key)

	edge, err := GetEdge[friendship](ctx, friends, edgeHeader.Key)
	require.NoError(t, err)
	assert.Equal(t, hugo.ID, edge.From())
	assert.Equal(t, emma.ID, edge.To())
	assert.Equal(t, friendship{Since: "2017"}, edge.Content())

	removed, err := friends.RemoveEdge(ctx, edgeHeader.Key)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = people.RemoveVertex(ctx, "hugo")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = GetVertex[customer](ctx, people, "hugo")
	var methodError *api.MethodError
	require.ErrorAs(t, err, &methodError)
	assert.Equal(t, api.CodeArangoDocumentNotFound, methodError.Code)
}
