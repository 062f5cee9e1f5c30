package arango

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHandleOptionQualified(t *testing.T) {
	option, err := ParseHandleOption("document id", "mine/12341")
	require.NoError(t, err)

	handle, qualified := option.Qualified()
	require.True(t, qualified)
	assert.Equal(t, "mine", handle.Context())
	assert.Equal(t, "12341", handle.Key())
}

func TestParseHandleOptionLocal(t *testing.T) {
	option, err := ParseHandleOption("document id", "12341")
	require.NoError(t, err)

	key, local := option.Local()
	require.True(t, local)
	assert.Equal(t, "12341", key.String())
}

func TestParseHandleOptionWithEmptyContext(t *testing.T) {
	_, err := ParseHandleOption("document id", "/12341")
	require.Error(t, err)
	assert.Equal(t, `Invalid document id: "/12341"`, err.Error())
}

func TestParseHandleOptionWithEmptyKey(t *testing.T) {
	_, err := ParseHandleOption("document id", "mine/")
	require.Error(t, err)
	assert.Equal(t, `Invalid document id: "mine/"`, err.Error())
}

func TestParseHandleWithoutContext(t *testing.T) {
	_, err := ParseHandle("index id", "12341")
	require.Error(t, err)
	assert.Equal(t, `index id does not have a context: "12341"`, err.Error())
}

func TestHandleRoundTrip(t *testing.T) {
	tests := []struct {
		context string
		key     string
	}{
		{context: "mine", key: "12341"},
		{context: "_system", key: "x"},
		{context: "c-1", key: "key.with.dots"},
	}

	for _, tt := range tests {
		handle := NewHandle(tt.context, tt.key)
		rendered := handle.String()
		assert.Equal(t, tt.context+"/"+tt.key, rendered)

		parsed, err := ParseHandle("handle", rendered)
		require.NoError(t, err)
		assert.Equal(t, handle, parsed)
	}
}

func TestParseHandleKeyRoundTrip(t *testing.T) {
	key, err := ParseHandleKey("document", "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "abc-123", key.String())
}

func TestParseHandleKeyWithSlash(t *testing.T) {
	tests := []string{"mine/12341", "/12341", "12341/"}

	for _, value := range tests {
		_, err := ParseHandleKey("index", value)
		require.Error(t, err)
		assert.Equal(t,
			`A index key must not contain any '/' character, but got: "`+value+`"`,
			err.Error())
	}
}

func TestHandleJSONRoundTrip(t *testing.T) {
	handle := NewHandle("products", "11582")

	encoded, err := json.Marshal(handle)
	require.NoError(t, err)
	assert.Equal(t, `"products/11582"`, string(encoded))

	var decoded Handle
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, handle, decoded)
}

func TestHandleOptionJSON(t *testing.T) {
	var option HandleOption
	require.NoError(t, json.Unmarshal([]byte(`"mine/12341"`), &option))
	_, qualified := option.Qualified()
	assert.True(t, qualified)

	require.NoError(t, json.Unmarshal([]byte(`"12341"`), &option))
	_, local := option.Local()
	assert.True(t, local)
}
