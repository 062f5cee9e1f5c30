// The connector and connection runtime: shared HTTP client, token slot
// and connection derivation.

package connector

import (
	"crypto/tls"
	"net"
	"net/http"
	"sync/atomic"

	"arango.evalgo.org/api"
	"arango.evalgo.org/arango"
	"arango.evalgo.org/common"
)

// Connector owns the long-lived state shared by all connections to one
// server: the user agent, the datasource, the HTTP client configured with
// a TLS-capable transport and the per-call connect timeout, and the
// authentication token slot.
//
// The token slot is the only mutable shared state. It is replaced as a
// whole on every change, so connections derived earlier observe token
// updates atomically and never see a torn value.
type Connector struct {
	userAgent  api.UserAgent
	datasource DataSource
	token      *atomic.Pointer[string]
	client     *http.Client
}

// NewConnector creates a connector for the given datasource using the
// driver's own user agent.
func NewConnector(datasource DataSource) *Connector {
	return NewConnectorWithUserAgent(api.DefaultUserAgent{}, datasource)
}

// NewConnectorWithUserAgent creates a connector for the given datasource
// that identifies as the given user agent on every request.
func NewConnectorWithUserAgent(userAgent api.UserAgent, datasource DataSource) *Connector {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: datasource.Timeout(),
		}).DialContext,
		TLSClientConfig:   &tls.Config{MinVersion: tls.VersionTLS12},
		ForceAttemptHTTP2: false,
	}
	common.Logger.WithField("datasource", datasource.String()).
		Debug("creating new JSON/HTTP connector")
	return &Connector{
		userAgent:  userAgent,
		datasource: datasource,
		token:      &atomic.Pointer[string]{},
		client:     &http.Client{Transport: transport},
	}
}

// Connection returns a connection bound to the database with the given
// name. Connections are cheap to derive; they share the connector's HTTP
// client, datasource and token slot.
func (c *Connector) Connection(databaseName string) *Connection {
	return &Connection{
		userAgent:  c.userAgent,
		datasource: c.datasource,
		database:   databaseName,
		token:      c.token,
		client:     c.client,
	}
}

// SystemConnection returns a connection bound to the system database.
func (c *Connector) SystemConnection() *Connection {
	return c.Connection(arango.SystemDatabase)
}

// UseAuthToken sets the authentication token used by all connections of
// this connector when the datasource selects token authentication.
func (c *Connector) UseAuthToken(token api.JWT) {
	c.token.Store(&token)
}

// InvalidateAuthToken removes the authentication token. Subsequent method
// calls over token-authenticated connections fail fast until a new token
// is set.
func (c *Connector) InvalidateAuthToken() {
	c.token.Store(nil)
}

// Connection is a connector bound to a specific database. Method calls
// executed over the connection address that database; with an empty
// database name the database of the datasource applies, and when that is
// empty too the server is addressed without a database prefix.
type Connection struct {
	userAgent  api.UserAgent
	datasource DataSource
	database   string
	token      *atomic.Pointer[string]
	client     *http.Client
}

// UserAgent returns the user agent used for the User-Agent header.
func (c *Connection) UserAgent() api.UserAgent { return c.userAgent }

// DataSource returns the datasource of this connection.
func (c *Connection) DataSource() DataSource { return c.datasource }

// Database returns the name of the database addressed by method calls on
// this connection. When the connection itself has no database, the
// database of the datasource applies.
func (c *Connection) Database() string {
	if c.database != "" {
		return c.database
	}
	return c.datasource.DatabaseName()
}

// Token returns the current authentication token, or an empty string when
// none is set.
func (c *Connection) Token() api.JWT {
	if token := c.token.Load(); token != nil {
		return *token
	}
	return ""
}
