package arango

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphPayload = `{
	"_id": "_graphs/social",
	"_key": "social",
	"_rev": "aXz14c",
	"edgeDefinitions": [
		{"collection": "friend_of", "from": ["people"], "to": ["people"]}
	],
	"orphanCollections": ["places"]
}`

func TestGraphDeserialize(t *testing.T) {
	var graph Graph
	require.NoError(t, json.Unmarshal([]byte(graphPayload), &graph))

	assert.Equal(t, "social", graph.Name())
	assert.Equal(t, DocumentKey("social"), graph.Key())
	assert.Equal(t, Revision("aXz14c"), graph.Revision())
	assert.Equal(t, "_graphs", graph.ID().CollectionName())
	require.Len(t, graph.EdgeDefinitions(), 1)
	assert.Equal(t, "friend_of", graph.EdgeDefinitions()[0].Collection)
	assert.Equal(t, []string{"people"}, graph.EdgeDefinitions()[0].From)
	assert.Equal(t, []string{"places"}, graph.OrphanCollections())
}

func TestGraphDeserializeNameFallsBackToKey(t *testing.T) {
	payload := `{
		"_id": "_graphs/social",
		"_key": "social",
		"_rev": "r1",
		"edgeDefinitions": [],
		"orphanCollections": []
	}`

	var graph Graph
	require.NoError(t, json.Unmarshal([]byte(payload), &graph))
	assert.Equal(t, "social", graph.Name())
}

func TestGraphDeserializeKeyFallsBackToName(t *testing.T) {
	payload := `{
		"_id": "_graphs/social",
		"name": "social",
		"_rev": "r1",
		"edgeDefinitions": [],
		"orphanCollections": []
	}`

	var graph Graph
	require.NoError(t, json.Unmarshal([]byte(payload), &graph))
	assert.Equal(t, DocumentKey("social"), graph.Key())
	assert.Equal(t, "social", graph.Name())
}

func TestGraphDeserializeWithoutKeyAndNameFails(t *testing.T) {
	payload := `{
		"_id": "_graphs/social",
		"_rev": "r1",
		"edgeDefinitions": [],
		"orphanCollections": []
	}`

	var graph Graph
	err := json.Unmarshal([]byte(payload), &graph)
	require.Error(t, err)
}

func TestNewGraphSerialization(t *testing.T) {
	graph := GraphWithName("social").
		WithEdgeDefinitions(EdgeDefinition{
			Collection: "friend_of",
			From:       []string{"people"},
			To:         []string{"people"},
		}).
		WithOrphanCollections("places")

	encoded, err := json.Marshal(graph)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "social",
		"edgeDefinitions": [
			{"collection": "friend_of", "from": ["people"], "to": ["people"]}
		],
		"orphanCollections": ["places"]
	}`, string(encoded))
}

type relation struct {
	Since string `json:"since"`
}

func TestEdgeDeserialize(t *testing.T) {
	payload := `{
		"_id": "friend_of/281",
		"_key": "281",
		"_rev": "aBc82z",
		"_from": "people/hugo",
		"_to": "people/emma",
		"since": "2017"
	}`

	var edge Edge[relation]
	require.NoError(t, json.Unmarshal([]byte(payload), &edge))

	assert.Equal(t, "friend_of/281", edge.ID().String())
	assert.Equal(t, DocumentKey("281"), edge.Key())
	assert.Equal(t, Revision("aBc82z"), edge.Revision())
	assert.Equal(t, "people/hugo", edge.From().String())
	assert.Equal(t, "people/emma", edge.To().String())
	assert.Equal(t, relation{Since: "2017"}, edge.Content())
}

func TestEdgeDeserializeMissingFromFails(t *testing.T) {
	payload := `{
		"_id": "friend_of/281",
		"_key": "281",
		"_rev": "aBc82z",
		"_to": "people/emma"
	}`

	var edge Edge[relation]
	err := json.Unmarshal([]byte(payload), &edge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "_from")
}

func TestNewEdgeValueSerialization(t *testing.T) {
	edge := EdgeFromTo(
		NewDocumentID("people", "hugo"),
		NewDocumentID("people", "emma"),
		relation{Since: "2017"},
	).WithKey("281")

	encoded, err := json.Marshal(edge)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_key": "281",
		"_from": "people/hugo",
		"_to": "people/emma",
		"since": "2017"
	}`, string(encoded))
}

func TestNewEdgeValueWithoutKeyOmitsKey(t *testing.T) {
	edge := EdgeFromTo(
		NewDocumentID("people", "hugo"),
		NewDocumentID("people", "emma"),
		relation{Since: "2017"},
	)

	encoded, err := json.Marshal(edge)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	_, present := fields["_key"]
	assert.False(t, present)
}

func TestNewEdgeValueRejectsNonObjectContent(t *testing.T) {
	edge := EdgeFromTo(
		NewDocumentID("people", "hugo"),
		NewDocumentID("people", "emma"),
		[]string{"not", "an", "object"},
	)

	_, err := json.Marshal(edge)
	require.Error(t, err)
}
