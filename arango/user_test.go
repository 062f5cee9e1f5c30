package arango

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionJSONRoundTrip(t *testing.T) {
	tests := []struct {
		permission Permission
		wire       string
	}{
		{permission: PermissionReadWrite, wire: `"rw"`},
		{permission: PermissionReadOnly, wire: `"ro"`},
		{permission: PermissionNone, wire: `"none"`},
	}

	for _, tt := range tests {
		encoded, err := json.Marshal(tt.permission)
		require.NoError(t, err)
		assert.Equal(t, tt.wire, string(encoded))

		var decoded Permission
		require.NoError(t, json.Unmarshal([]byte(tt.wire), &decoded))
		assert.Equal(t, tt.permission, decoded)
	}
}

func TestPermissionUnknownWireValueFails(t *testing.T) {
	var permission Permission
	err := json.Unmarshal([]byte(`"admin"`), &permission)
	require.Error(t, err)
}

func TestUserDeserializeWithMapExtra(t *testing.T) {
	payload := `{"user":"herbert","active":true,"extra":{"team":"data"}}`

	var user User[map[string]string]
	require.NoError(t, json.Unmarshal([]byte(payload), &user))
	assert.Equal(t, "herbert", user.Name)
	assert.True(t, user.Active)
	assert.Equal(t, map[string]string{"team": "data"}, user.Extra)
}

func TestNewUserValueSerialization(t *testing.T) {
	user := UserWithName[map[string]string]("herbert", "s3cr3t")

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":"herbert","passwd":"s3cr3t"}`, string(encoded))
}

func TestNewUserValueWithDefaultRootPassword(t *testing.T) {
	user := UserWithDefaultRootPassword[map[string]string]("admin")

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"user":"admin","passwd":"ARANGODB_DEFAULT_ROOT_PASSWORD"}`,
		string(encoded))
}
