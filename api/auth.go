// Authentication methods supported by the ArangoDB REST API.

package api

// AuthMethod selects how a connection authenticates against the server.
type AuthMethod int

const (
	// AuthBasic sends the credentials as HTTP Basic authorization.
	AuthBasic AuthMethod = iota
	// AuthJWT sends a JSON web token as Bearer authorization. The token
	// must be obtained first, e.g. via the Authenticate method, and set on
	// the connector.
	AuthJWT
	// AuthNone sends no authorization at all.
	AuthNone
)

// JWT is a JSON web token issued by the server on authentication.
type JWT = string

// Credentials is a username/password pair.
type Credentials struct {
	username string
	password string
}

// NewCredentials constructs the credentials for the given username and
// password.
func NewCredentials(username, password string) Credentials {
	return Credentials{username: username, password: password}
}

// Username returns the username of these credentials.
func (c Credentials) Username() string {
	return c.username
}

// Password returns the password of these credentials.
func (c Credentials) Password() string {
	return c.password
}

// Authentication holds the authentication method of a datasource together
// with the credentials used for basic authentication or for obtaining a
// token.
type Authentication struct {
	method      AuthMethod
	credentials Credentials
}

// BasicAuthentication selects basic authentication with the given
// credentials.
func BasicAuthentication(username, password string) Authentication {
	return Authentication{method: AuthBasic, credentials: NewCredentials(username, password)}
}

// JWTAuthentication selects token authentication. The credentials are used
// by the Authenticate method to obtain a token from the server.
func JWTAuthentication(username, password string) Authentication {
	return Authentication{method: AuthJWT, credentials: NewCredentials(username, password)}
}

// NoAuthentication selects unauthenticated access, e.g. for servers that
// run with authentication disabled.
func NoAuthentication() Authentication {
	return Authentication{method: AuthNone}
}

// Method returns the selected authentication method.
func (a Authentication) Method() AuthMethod {
	return a.method
}

// Credentials returns the credentials of this authentication.
func (a Authentication) Credentials() Credentials {
	return a.credentials
}
