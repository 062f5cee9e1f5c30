package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultEntry struct {
	ID   string `json:"_id"`
	Key  string `json:"_key"`
	Rev  string `json:"_rev"`
	Name string `json:"name,omitempty"`
}

func TestResultListParsesSuccessEntries(t *testing.T) {
	payload := `[
		{"_id":"customers/29384","_key":"29384","_rev":"aOIey283aew"},
		{"_id":"customers/29385","_key":"29385","_rev":"aOIey283aex"}
	]`

	var results ResultList[resultEntry]
	require.NoError(t, json.Unmarshal([]byte(payload), &results))

	require.Len(t, results, 2)
	first, err := results[0].Get()
	require.NoError(t, err)
	assert.Equal(t, "customers/29384", first.ID)
	assert.Equal(t, "29384", first.Key)
	assert.Len(t, results.Values(), 2)
	assert.Empty(t, results.Errors())
}

func TestResultListParsesMixedEntries(t *testing.T) {
	payload := `[
		{"_id":"customers/29384","_key":"29384","_rev":"aOIey283aew"},
		{"error":true,"errorNum":1210,"errorMessage":"unique constraint violated"}
	]`

	var results ResultList[resultEntry]
	require.NoError(t, json.Unmarshal([]byte(payload), &results))

	require.Len(t, results, 2)
	assert.True(t, results[0].IsSuccess())
	assert.False(t, results[1].IsSuccess())

	_, err := results[1].Get()
	require.Error(t, err)
	arangoErr, ok := err.(*ArangoError)
	require.True(t, ok)
	assert.Equal(t, CodeArangoUniqueConstraintViolated, arangoErr.Code)
	assert.Equal(t, "unique constraint violated", arangoErr.Message)
}

func TestResultEnvelopeFieldsAreStripped(t *testing.T) {
	payload := `{"error":false,"code":200,"name":"herbert",
		"_id":"c/1","_key":"1","_rev":"r1"}`

	var result Result[resultEntry]
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	entry, err := result.Get()
	require.NoError(t, err)
	assert.Equal(t, "herbert", entry.Name)
}

func TestResultWithErrorNumButNoMessageIsMalformed(t *testing.T) {
	payload := `{"error":true,"errorNum":1210}`

	var result Result[resultEntry]
	err := json.Unmarshal([]byte(payload), &result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "errorMessage")
}

func TestResultUnknownErrorNumMapsToUnknownError(t *testing.T) {
	payload := `[{"errorNum":64123,"errorMessage":"strange failure"}]`

	var results ResultList[resultEntry]
	require.NoError(t, json.Unmarshal([]byte(payload), &results))

	errs := results.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, CodeUnknownError, errs[0].Code)
}
