package arango

import (
	"encoding/json"
	"testing"

	"arango.evalgo.org/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorDeserializeFirstBatch(t *testing.T) {
	payload := `{
		"id": "26011191",
		"result": [1, 2, 3, 4, 5],
		"hasMore": true,
		"count": 17,
		"cached": false
	}`

	var cursor Cursor[int]
	require.NoError(t, json.Unmarshal([]byte(payload), &cursor))

	assert.Equal(t, "26011191", cursor.ID)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cursor.Result)
	assert.True(t, cursor.HasMore)
	require.NotNil(t, cursor.Count)
	assert.Equal(t, uint64(17), *cursor.Count)
	assert.False(t, cursor.Cached)
}

func TestCursorWithMoreResultsCarriesID(t *testing.T) {
	payload := `{"id": "26011191", "result": [], "hasMore": true, "cached": false}`

	var cursor Cursor[int]
	require.NoError(t, json.Unmarshal([]byte(payload), &cursor))
	assert.True(t, cursor.HasMore)
	assert.NotEmpty(t, cursor.ID)
}

func TestCursorLastBatchHasNoID(t *testing.T) {
	payload := `{"result": [16, 17], "hasMore": false, "cached": false}`

	var cursor Cursor[int]
	require.NoError(t, json.Unmarshal([]byte(payload), &cursor))
	assert.False(t, cursor.HasMore)
	assert.Empty(t, cursor.ID)
}

func TestNewCursorForQueryCarriesBindVars(t *testing.T) {
	query := api.NewQuery("FOR c IN customers FILTER c.age > @age RETURN c").
		WithParameter("age", 42)

	cursor := NewCursorForQuery(query)
	assert.Equal(t, "FOR c IN customers FILTER c.age > @age RETURN c", cursor.Query)
	assert.Equal(t, map[string]any{"age": 42}, cursor.BindVars)
}

func TestNewCursorSerializationOmitsUnsetOptions(t *testing.T) {
	cursor := NewCursor{Query: "FOR c IN customers RETURN c"}

	encoded, err := json.Marshal(cursor)
	require.NoError(t, err)
	assert.Equal(t, `{"query":"FOR c IN customers RETURN c"}`, string(encoded))
}

func TestNewCursorWithOptions(t *testing.T) {
	cursor := NewCursor{Query: "FOR c IN customers RETURN c"}.
		WithCount(true).
		WithBatchSize(5).
		WithTTL(120)

	encoded, err := json.Marshal(cursor)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": "FOR c IN customers RETURN c",
		"count": true,
		"batchSize": 5,
		"ttl": 120
	}`, string(encoded))
}

func TestExplainedQueryDeserialize(t *testing.T) {
	payload := `{
		"plan": {
			"nodes": [{"type": "SingletonNode", "id": 1}],
			"rules": ["remove-unnecessary-calculations"],
			"collections": [{"name": "customers", "type": "read"}],
			"variables": [{"id": 0, "name": "c"}],
			"estimatedCost": 21.5,
			"estimatedNrItems": 17
		},
		"warnings": [],
		"cacheable": true
	}`

	var explained ExplainedQuery
	require.NoError(t, json.Unmarshal([]byte(payload), &explained))

	require.NotNil(t, explained.Plan)
	assert.Equal(t, 21.5, explained.Plan.EstimatedCost)
	assert.Equal(t, uint64(17), explained.Plan.EstimatedNrItems)
	require.Len(t, explained.Plan.Collections, 1)
	assert.Equal(t, "customers", explained.Plan.Collections[0].Name)
	require.NotNil(t, explained.Cacheable)
	assert.True(t, *explained.Cacheable)
}
