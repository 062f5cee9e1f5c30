package arango

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customer struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func TestParseDocumentID(t *testing.T) {
	id, err := ParseDocumentID("customers/29384")
	require.NoError(t, err)
	assert.Equal(t, "customers", id.CollectionName())
	assert.Equal(t, "29384", id.DocumentKey())
	assert.Equal(t, "customers/29384", id.String())
}

func TestParseDocumentIDWithoutCollection(t *testing.T) {
	_, err := ParseDocumentID("29384")
	require.Error(t, err)
	assert.Equal(t, `document id does not have a context: "29384"`, err.Error())
}

func TestParseDocumentKeyWithSlash(t *testing.T) {
	_, err := ParseDocumentKey("mine/12341")
	require.Error(t, err)
	assert.Equal(t,
		`A document key must not contain any '/' character, but got: "mine/12341"`,
		err.Error())
}

func TestDocumentSerializesReservedFieldsAndContent(t *testing.T) {
	document := NewDocument(
		NewDocumentID("c", "29384"),
		DocumentKey("29384"),
		Revision("aOIey283aew"),
		customer{A: "Hugo", B: 42},
	)

	encoded, err := json.Marshal(document)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	assert.Len(t, fields, 5)
	assert.Equal(t, `"c/29384"`, string(fields["_id"]))
	assert.Equal(t, `"29384"`, string(fields["_key"]))
	assert.Equal(t, `"aOIey283aew"`, string(fields["_rev"]))
	assert.Equal(t, `"Hugo"`, string(fields["a"]))
	assert.Equal(t, `42`, string(fields["b"]))
}

func TestDocumentRoundTrip(t *testing.T) {
	document := NewDocument(
		NewDocumentID("c", "29384"),
		DocumentKey("29384"),
		Revision("aOIey283aew"),
		customer{A: "Hugo", B: 42},
	)

	encoded, err := json.Marshal(document)
	require.NoError(t, err)

	var decoded Document[customer]
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, document.ID(), decoded.ID())
	assert.Equal(t, document.Key(), decoded.Key())
	assert.Equal(t, document.Revision(), decoded.Revision())
	assert.Equal(t, document.Content(), decoded.Content())
}

func TestDocumentDeserializeMissingReservedFieldFails(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		missing string
	}{
		{
			name:    "missing id",
			payload: `{"_key":"1","_rev":"r1","a":"x"}`,
			missing: "_id",
		},
		{
			name:    "missing key",
			payload: `{"_id":"c/1","_rev":"r1","a":"x"}`,
			missing: "_key",
		},
		{
			name:    "missing revision",
			payload: `{"_id":"c/1","_key":"1","a":"x"}`,
			missing: "_rev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var document Document[customer]
			err := json.Unmarshal([]byte(tt.payload), &document)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestDocumentDeserializePrefersNewContent(t *testing.T) {
	payload := `{
		"_id":"c/1","_key":"1","_rev":"r2",
		"stale":"in-line field",
		"new":{"a":"fresh","b":7}
	}`

	var document Document[customer]
	require.NoError(t, json.Unmarshal([]byte(payload), &document))
	assert.Equal(t, customer{A: "fresh", B: 7}, document.Content())
}

func TestDocumentDeserializeIntoMapDoesNotLeakReservedFields(t *testing.T) {
	payload := `{"_id":"c/1","_key":"1","_rev":"r1","_oldRev":"r0","a":"x"}`

	var document Document[map[string]any]
	require.NoError(t, json.Unmarshal([]byte(payload), &document))
	assert.Equal(t, map[string]any{"a": "x"}, document.Content())
}

func TestNewDocumentValueWithKeySerializesKey(t *testing.T) {
	document := FromContent(customer{A: "Hugo", B: 42}).WithKey("29384")

	encoded, err := json.Marshal(document)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	assert.Len(t, fields, 3)
	assert.Equal(t, `"29384"`, string(fields["_key"]))
	assert.Equal(t, `"Hugo"`, string(fields["a"]))
	assert.Equal(t, `42`, string(fields["b"]))
}

func TestNewDocumentValueWithoutKeyOmitsKey(t *testing.T) {
	document := FromContent(customer{A: "Hugo", B: 42})

	encoded, err := json.Marshal(document)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	_, present := fields["_key"]
	assert.False(t, present)
}

func TestNewDocumentValueWithKeyRejectsNonObjectContent(t *testing.T) {
	document := FromContent("just a string").WithKey("1")

	_, err := json.Marshal(document)
	require.Error(t, err)
}

func TestDocumentUpdateSerializesKeyAndRevision(t *testing.T) {
	update := NewDocumentUpdate(DocumentKey("1"), map[string]any{"age": 43}).
		WithRevision("r7")

	encoded, err := json.Marshal(update)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))
	assert.Equal(t, `"1"`, string(fields["_key"]))
	assert.Equal(t, `"r7"`, string(fields["_rev"]))
	assert.Equal(t, `43`, string(fields["age"]))
}

func TestUpdatedDocumentDeserialize(t *testing.T) {
	payload := `{
		"_id":"c/1","_key":"1","_rev":"r2","_oldRev":"r1",
		"old":{"a":"before","b":1},
		"new":{"a":"after","b":2}
	}`

	var updated UpdatedDocument[customer, customer]
	require.NoError(t, json.Unmarshal([]byte(payload), &updated))

	assert.Equal(t, Revision("r2"), updated.Revision())
	assert.Equal(t, Revision("r1"), updated.OldRevision())

	oldContent, hasOld := updated.OldContent()
	require.True(t, hasOld)
	assert.Equal(t, customer{A: "before", B: 1}, oldContent)

	newContent, hasNew := updated.NewContent()
	require.True(t, hasNew)
	assert.Equal(t, customer{A: "after", B: 2}, newContent)
}

func TestUpdatedDocumentDeserializeWithoutContents(t *testing.T) {
	payload := `{"_id":"c/1","_key":"1","_rev":"r2","_oldRev":"r1"}`

	var updated UpdatedDocument[customer, customer]
	require.NoError(t, json.Unmarshal([]byte(payload), &updated))

	_, hasOld := updated.OldContent()
	assert.False(t, hasOld)
	_, hasNew := updated.NewContent()
	assert.False(t, hasNew)
}

func TestUpdatedDocumentDeserializeMissingOldRevFails(t *testing.T) {
	payload := `{"_id":"c/1","_key":"1","_rev":"r2"}`

	var updated UpdatedDocument[customer, customer]
	err := json.Unmarshal([]byte(payload), &updated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "_oldRev")
}
