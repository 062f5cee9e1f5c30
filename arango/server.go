// Types and method calls for the server meta operations of the REST API.

package arango

import "arango.evalgo.org/api"

// ServerVersion describes the server name and version. Details are only
// present when requested.
type ServerVersion struct {
	Server  string            `json:"server"`
	Version string            `json:"version"`
	License string            `json:"license,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// TargetVersion is the database version this server requires.
type TargetVersion struct {
	Version string `json:"version"`
}

// GetServerVersion reads the server name and version. The result is
// ServerVersion.
type GetServerVersion struct {
	details bool
}

// NewGetServerVersion constructs the method call for reading the server
// version.
func NewGetServerVersion() *GetServerVersion {
	return &GetServerVersion{}
}

// NewGetServerVersionDetails constructs the method call for reading the
// server version with all detail information.
func NewGetServerVersionDetails() *GetServerVersion {
	return &GetServerVersion{details: true}
}

// ReturnType declares the result envelope of this method call.
func (m *GetServerVersion) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{}
}

// Operation returns the kind of operation of this method call.
func (m *GetServerVersion) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetServerVersion) Path() string { return PathAPIVersion }

// Parameters returns the query parameters of this method call.
func (m *GetServerVersion) Parameters() api.Parameters {
	var params api.Parameters
	if m.details {
		params.Add(ParamDetails, true)
	}
	return params
}

// Header returns the header parameters of this method call.
func (m *GetServerVersion) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetServerVersion) Content() any { return nil }

// GetTargetVersion reads the database version this server requires. The
// result is TargetVersion.
type GetTargetVersion struct{}

// NewGetTargetVersion constructs the method call for reading the target
// version.
func NewGetTargetVersion() *GetTargetVersion {
	return &GetTargetVersion{}
}

// ReturnType declares the result envelope of this method call.
func (m *GetTargetVersion) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetTargetVersion) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetTargetVersion) Path() string {
	return PathAdmin + PathDatabase + PathTargetVersion
}

// Parameters returns the query parameters of this method call.
func (m *GetTargetVersion) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetTargetVersion) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetTargetVersion) Content() any { return nil }

// AuthenticationResponse carries the token issued by the server on
// authentication.
type AuthenticationResponse struct {
	JWT api.JWT `json:"jwt"`
}

type authenticationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate obtains a JSON web token for the given credentials via the
// open authentication endpoint. The call is executed without a database
// prefix and without authorization headers. The result is
// AuthenticationResponse.
type Authenticate struct {
	request authenticationRequest
}

// NewAuthenticate constructs the method call for obtaining a token for
// the given username and password.
func NewAuthenticate(username, password string) *Authenticate {
	return &Authenticate{request: authenticationRequest{Username: username, Password: password}}
}

// ReturnType declares the result envelope of this method call.
func (m *Authenticate) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{}
}

// Operation returns the kind of operation of this method call.
func (m *Authenticate) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *Authenticate) Path() string { return PathOpenAuth }

// Parameters returns the query parameters of this method call.
func (m *Authenticate) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *Authenticate) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *Authenticate) Content() any { return m.request }
