package arango

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexIDFromString(t *testing.T) {
	id, err := ParseIndexID("mine/12341")
	require.NoError(t, err)
	assert.Equal(t, "mine", id.CollectionName())
	assert.Equal(t, "12341", id.IndexKey())
	assert.Equal(t, "mine/12341", id.String())
}

func TestParseIndexIDWithoutCollectionName(t *testing.T) {
	_, err := ParseIndexID("12341")
	require.Error(t, err)
	assert.Equal(t, `index id does not have a context: "12341"`, err.Error())
}

func TestParseIndexIDWithEmptyCollectionName(t *testing.T) {
	_, err := ParseIndexID("/12341")
	require.Error(t, err)
	assert.Equal(t, `Invalid index id: "/12341"`, err.Error())
}

func TestParseIndexKeyWithSlash(t *testing.T) {
	_, err := ParseIndexKey("mine/12341")
	require.Error(t, err)
	assert.Equal(t,
		`A index key must not contain any '/' character, but got: "mine/12341"`,
		err.Error())
}

func TestParseIndexIDOption(t *testing.T) {
	option, err := ParseIndexIDOption("mine/12341")
	require.NoError(t, err)
	id, qualified := option.ID()
	require.True(t, qualified)
	assert.Equal(t, NewIndexID("mine", "12341"), id)

	option, err = ParseIndexIDOption("12341")
	require.NoError(t, err)
	key, local := option.Key()
	require.True(t, local)
	assert.Equal(t, IndexKey("12341"), key)
}

func TestDeserializePrimaryIndex(t *testing.T) {
	payload := `{
		"fields" : [ "_key" ],
		"id" : "products/0",
		"selectivityEstimate" : 1,
		"sparse" : false,
		"type" : "primary",
		"unique" : true
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexPrimary, index.Kind)
	id, qualified := index.ID.ID()
	require.True(t, qualified)
	assert.Equal(t, "products", id.CollectionName())
	assert.Equal(t, "0", id.IndexKey())
	assert.Equal(t, []string{"_key"}, index.Fields)
	assert.False(t, index.IsNewlyCreated)
	assert.Equal(t, float64(1), index.SelectivityEstimate)
	assert.True(t, index.Unique)
}

func TestDeserializeHashIndex(t *testing.T) {
	payload := `{
		"deduplicate" : true,
		"fields" : [ "a" ],
		"id" : "products/11582",
		"isNewlyCreated" : true,
		"selectivityEstimate" : 1,
		"sparse" : true,
		"type" : "hash",
		"unique" : false,
		"error" : false,
		"code" : 201
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexHash, index.Kind)
	id, qualified := index.ID.ID()
	require.True(t, qualified)
	assert.Equal(t, "products", id.CollectionName())
	assert.Equal(t, "11582", id.IndexKey())
	assert.Equal(t, []string{"a"}, index.Fields)
	assert.True(t, index.IsNewlyCreated)
	assert.True(t, index.Deduplicate)
	assert.Equal(t, float64(1), index.SelectivityEstimate)
	assert.True(t, index.Sparse)
	assert.False(t, index.Unique)
}

func TestDeserializeSkipListIndex(t *testing.T) {
	payload := `{
		"deduplicate" : true,
		"fields" : [ "a", "b" ],
		"id" : "products/11556",
		"isNewlyCreated" : false,
		"sparse" : false,
		"type" : "skiplist",
		"unique" : false
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexSkipList, index.Kind)
	assert.Equal(t, []string{"a", "b"}, index.Fields)
	assert.False(t, index.IsNewlyCreated)
	assert.True(t, index.Deduplicate)
	assert.False(t, index.Sparse)
	assert.False(t, index.Unique)
}

func TestDeserializePersistentIndex(t *testing.T) {
	payload := `{
		"deduplicate" : false,
		"fields" : [ "a", "b" ],
		"id" : "products/11595",
		"isNewlyCreated" : true,
		"sparse" : true,
		"type" : "persistent",
		"unique" : true
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexPersistent, index.Kind)
	assert.True(t, index.IsNewlyCreated)
	assert.False(t, index.Deduplicate)
	assert.True(t, index.Sparse)
	assert.True(t, index.Unique)
}

func TestDeserializeGeo1Index(t *testing.T) {
	payload := `{
		"constraint" : false,
		"fields" : [ "b" ],
		"geoJson" : true,
		"id" : "products/11504",
		"ignoreNull" : true,
		"isNewlyCreated" : true,
		"sparse" : true,
		"type" : "geo1",
		"unique" : false
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexGeo1, index.Kind)
	assert.Equal(t, []string{"b"}, index.Fields)
	assert.True(t, index.IsNewlyCreated)
	assert.True(t, index.GeoJSON)
	assert.False(t, index.Constraint)
	assert.True(t, index.Sparse)
}

func TestDeserializeGeo2Index(t *testing.T) {
	payload := `{
		"constraint" : true,
		"fields" : [ "e", "f" ],
		"id" : "products/11491",
		"ignoreNull" : true,
		"isNewlyCreated" : true,
		"sparse" : true,
		"type" : "geo2",
		"unique" : false
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexGeo2, index.Kind)
	assert.Equal(t, []string{"e", "f"}, index.Fields)
	assert.True(t, index.Constraint)
	assert.True(t, index.Sparse)
}

func TestDeserializeFulltextIndex(t *testing.T) {
	payload := `{
		"fields" : [ "description" ],
		"id" : "products/11476",
		"minLength": 2,
		"sparse" : false,
		"type" : "fulltext",
		"unique" : false
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexFulltext, index.Kind)
	assert.Equal(t, []string{"description"}, index.Fields)
	assert.False(t, index.IsNewlyCreated)
	assert.Equal(t, uint32(2), index.MinLength)
}

func TestDeserializeEdgeIndex(t *testing.T) {
	payload := `{
		"fields" : [ "_from", "_to" ],
		"id" : "products/2834226",
		"sparse" : false,
		"type" : "edge",
		"unique" : false
	}`

	var index Index
	require.NoError(t, json.Unmarshal([]byte(payload), &index))

	assert.Equal(t, IndexEdge, index.Kind)
	assert.Equal(t, []string{"_from", "_to"}, index.Fields)
	assert.False(t, index.IsNewlyCreated)
}

func TestDeserializeUnknownIndexTypeFails(t *testing.T) {
	payload := `{"fields":["a"],"id":"products/1","type":"zkd"}`

	var index Index
	err := json.Unmarshal([]byte(payload), &index)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zkd")
}

func TestIndexKindRoundTrip(t *testing.T) {
	kinds := []IndexKind{
		IndexPrimary, IndexHash, IndexSkipList, IndexPersistent,
		IndexGeo1, IndexGeo2, IndexFulltext, IndexEdge,
	}

	for _, kind := range kinds {
		index := Index{
			ID:     QualifiedIndexID(NewIndexID("products", "7")),
			Kind:   kind,
			Fields: []string{"a"},
		}

		encoded, err := json.Marshal(index)
		require.NoError(t, err)

		var decoded Index
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, kind, decoded.Kind)
	}
}
