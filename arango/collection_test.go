package arango

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionDeserialize(t *testing.T) {
	payload := `{
		"id": "9327",
		"name": "products",
		"type": 2,
		"status": 3,
		"isSystem": false
	}`

	var collection Collection
	require.NoError(t, json.Unmarshal([]byte(payload), &collection))
	assert.Equal(t, "9327", collection.ID)
	assert.Equal(t, "products", collection.Name)
	assert.Equal(t, CollectionDocuments, collection.Kind)
	assert.Equal(t, StatusLoaded, collection.Status)
	assert.False(t, collection.IsSystem)
}

func TestCollectionTypeSerializesAsInteger(t *testing.T) {
	encoded, err := json.Marshal(EdgesCollectionWithName("friend_of"))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	assert.Equal(t, `3`, string(fields["type"]))
}

func TestCollectionStatusKnownValues(t *testing.T) {
	tests := []struct {
		value    string
		expected CollectionStatus
	}{
		{value: "1", expected: StatusNewBorn},
		{value: "2", expected: StatusUnloaded},
		{value: "3", expected: StatusLoaded},
		{value: "4", expected: StatusBeingUnloaded},
		{value: "5", expected: StatusDeleted},
		{value: "6", expected: StatusBeingLoaded},
	}

	for _, tt := range tests {
		var status CollectionStatus
		require.NoError(t, json.Unmarshal([]byte(tt.value), &status))
		assert.Equal(t, tt.expected, status)
	}
}

func TestCollectionStatusUnknownValueIsCorrupted(t *testing.T) {
	for _, value := range []string{"0", "7", "42", "250"} {
		var status CollectionStatus
		require.NoError(t, json.Unmarshal([]byte(value), &status))
		assert.Equal(t, StatusCorrupted, status, "status %s", value)
	}
}

func TestNewCollectionOmitsUnsetOptions(t *testing.T) {
	encoded, err := json.Marshal(CollectionWithName("products"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"products"}`, string(encoded))
}

func TestNewCollectionWithKeyOptions(t *testing.T) {
	allowUserKeys := true
	collection := DocumentsCollectionWithName("orders")
	collection.KeyOptions = &NewKeyOptions{
		AllowUserKeys: &allowUserKeys,
		Kind:          KeyGeneratorAutoIncrement,
		Increment:     5,
		Offset:        100,
	}

	encoded, err := json.Marshal(collection)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	assert.JSONEq(t,
		`{"allowUserKeys":true,"type":"autoincrement","increment":5,"offset":100}`,
		string(fields["keyOptions"]))
}
