package connector

import (
	"context"
	"testing"

	"arango.evalgo.org/api"
	"arango.evalgo.org/arango"
	"arango.evalgo.org/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prepared is a minimal method call for exercising the request pipeline.
type prepared struct {
	operation  api.Operation
	path       string
	params     [][2]string
	content    any
	returnType api.RPCReturnType
}

func (p *prepared) Operation() api.Operation { return p.operation }

func (p *prepared) Path() string { return p.path }

func (p *prepared) Parameters() api.Parameters {
	var params api.Parameters
	for _, pair := range p.params {
		params.Add(pair[0], pair[1])
	}
	return params
}

func (p *prepared) Header() api.Parameters { return api.Parameters{} }

func (p *prepared) Content() any { return p.content }

func (p *prepared) ReturnType() api.RPCReturnType { return p.returnType }

func TestBuildRequestURIForHTTP(t *testing.T) {
	ds, err := ParseDataSource("http://localhost:8529")
	require.NoError(t, err)

	uri := buildRequestURI(ds, "", &prepared{operation: api.OperationRead, path: "/_api/user"})
	assert.Equal(t, "http://localhost:8529/_api/user", uri)
}

func TestBuildRequestURIForSpecificDatabase(t *testing.T) {
	ds, err := ParseDataSource("https://localhost:8529")
	require.NoError(t, err)

	uri := buildRequestURI(ds, "url_test",
		&prepared{operation: api.OperationRead, path: "/_api/collection"})
	assert.Equal(t, "https://localhost:8529/_db/url_test/_api/collection", uri)
}

func TestBuildRequestURIForSpecificDatabaseWithOneParam(t *testing.T) {
	ds, err := ParseDataSource("https://localhost:8529")
	require.NoError(t, err)

	uri := buildRequestURI(ds, "the big data", &prepared{
		operation: api.OperationRead,
		path:      "/_api/document",
		params:    [][2]string{{"id", "25"}},
	})
	assert.Equal(t,
		"https://localhost:8529/_db/the%20big%20data/_api/document?id=25", uri)
}

func TestBuildRequestURIForSpecificDatabaseWithTwoParams(t *testing.T) {
	ds, err := ParseDataSource("https://h:8529")
	require.NoError(t, err)

	uri := buildRequestURI(ds, "the büg data", &prepared{
		operation: api.OperationRead,
		path:      "/_api/document",
		params:    [][2]string{{"id", "25"}, {"name", "JuneReport"}},
	})
	assert.Equal(t,
		"https://h:8529/_db/the%20b%C3%BCg%20data/_api/document?id=25&name=JuneReport",
		uri)
}

func TestBuildRequestURIForSpecificDatabaseWithThreeParams(t *testing.T) {
	ds, err := ParseDataSource("https://localhost:8529")
	require.NoError(t, err)

	uri := buildRequestURI(ds, "the big data", &prepared{
		operation: api.OperationRead,
		path:      "/_api/document",
		params:    [][2]string{{"id", "25"}, {"name", "JuneReport"}, {"max", "42"}},
	})
	assert.Equal(t,
		"https://localhost:8529/_db/the%20big%20data/_api/document?id=25&name=JuneReport&max=42",
		uri)
}

type testUserAgent struct{}

func (testUserAgent) Name() string { return "rincon" }

func (testUserAgent) Version() api.Version {
	return api.Version{Major: "2", Minor: "5", Patch: "9"}
}

func (testUserAgent) Homepage() string { return "https://github.com/innoave/rincon" }

func TestHeaderUserAgentFormat(t *testing.T) {
	assert.Equal(t,
		"Mozilla/5.0 (compatible; rincon/2.5; +https://github.com/innoave/rincon)",
		headerUserAgentFor(testUserAgent{}))
}

func TestHTTPMethodForOperation(t *testing.T) {
	tests := []struct {
		operation api.Operation
		method    string
	}{
		{operation: api.OperationCreate, method: "POST"},
		{operation: api.OperationRead, method: "GET"},
		{operation: api.OperationModify, method: "PATCH"},
		{operation: api.OperationReplace, method: "PUT"},
		{operation: api.OperationDelete, method: "DELETE"},
		{operation: api.OperationReadHeader, method: "HEAD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.method, httpMethodForOperation(tt.operation))
	}
}

func TestExecuteWithTokenAuthButNoTokenProducesNoTraffic(t *testing.T) {
	server := mock.NewServerWithTokenAuth("root", "s3cr3t")
	defer server.Close()

	ds, err := ParseDataSource(server.URL())
	require.NoError(t, err)
	ds = ds.WithAuthentication(api.JWTAuthentication("root", "s3cr3t"))
	conn := NewConnector(ds).SystemConnection()

	_, err = Execute[arango.ServerVersion](context.Background(), conn, arango.NewGetServerVersion())

	var notAuthenticated *api.NotAuthenticatedError
	require.ErrorAs(t, err, &notAuthenticated)
	assert.Equal(t, 0, server.RequestCount())
}

func TestExecuteWithBasicAuth(t *testing.T) {
	server := mock.NewServerWithBasicAuth("root", "s3cr3t")
	defer server.Close()

	ds, err := ParseDataSource(server.URL())
	require.NoError(t, err)
	ds = ds.WithBasicAuthentication("root", "s3cr3t")
	conn := NewConnector(ds).SystemConnection()

	version, err := Execute[arango.ServerVersion](
		context.Background(), conn, arango.NewGetServerVersion())
	require.NoError(t, err)
	assert.Equal(t, "arango", version.Server)
	assert.Equal(t, "3.3.7", version.Version)
}

func TestExecuteWithWrongBasicAuthIsMethodError(t *testing.T) {
	server := mock.NewServerWithBasicAuth("root", "s3cr3t")
	defer server.Close()

	ds, err := ParseDataSource(server.URL())
	require.NoError(t, err)
	ds = ds.WithBasicAuthentication("root", "wrong")
	conn := NewConnector(ds).SystemConnection()

	_, err = Execute[arango.ServerVersion](
		context.Background(), conn, arango.NewGetServerVersion())

	var methodError *api.MethodError
	require.ErrorAs(t, err, &methodError)
	assert.Equal(t, 401, methodError.StatusCode)
	assert.Equal(t, api.CodeForbidden, methodError.Code)
}

func TestExecuteParsesServerErrorEnvelope(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()
	server.CreateCollection("products")

	ds, err := ParseDataSource(server.URL())
	require.NoError(t, err)
	conn := NewConnector(ds).SystemConnection()

	_, err = Execute[arango.Index](context.Background(), conn,
		arango.NewGetIndex(arango.NewIndexID("products", "11582")))

	var methodError *api.MethodError
	require.ErrorAs(t, err, &methodError)
	assert.Equal(t, 404, methodError.StatusCode)
	assert.Equal(t, api.CodeArangoIndexNotFound, methodError.Code)
	assert.Equal(t, "index not found", methodError.Message)
}

func TestExecuteExtractsResultField(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()
	server.CreateCollection("products")

	ds, err := ParseDataSource(server.URL())
	require.NoError(t, err)
	conn := NewConnector(ds).SystemConnection()

	collections, err := Execute[[]arango.Collection](
		context.Background(), conn, arango.NewListCollections())
	require.NoError(t, err)
	require.Len(t, collections, 1)
	assert.Equal(t, "products", collections[0].Name)
}

func TestExecuteSerializationFailureIsSerializationError(t *testing.T) {
	server := mock.NewServer()
	defer server.Close()

	ds, err := ParseDataSource(server.URL())
	require.NoError(t, err)
	conn := NewConnector(ds).SystemConnection()

	method := &prepared{
		operation: api.OperationCreate,
		path:      "/_api/document/c",
		content:   func() {},
	}
	_, err = Execute[arango.DocumentHeader](context.Background(), conn, method)

	var serializationError *api.SerializationError
	require.ErrorAs(t, err, &serializationError)
	assert.Equal(t, 0, server.RequestCount())
}

func TestExecuteTransportFailureIsCommunicationError(t *testing.T) {
	ds, err := ParseDataSource("http://127.0.0.1:1")
	require.NoError(t, err)
	conn := NewConnector(ds).SystemConnection()

	_, err = Execute[arango.ServerVersion](
		context.Background(), conn, arango.NewGetServerVersion())

	var communicationError *api.CommunicationError
	require.ErrorAs(t, err, &communicationError)
}

func TestTokenSlotIsSharedWithDerivedConnections(t *testing.T) {
	ds := NewDataSource().WithAuthentication(api.JWTAuthentication("root", ""))
	shared := NewConnector(ds)
	conn := shared.SystemConnection()

	assert.Empty(t, conn.Token())

	shared.UseAuthToken("token-1")
	assert.Equal(t, "token-1", conn.Token())

	shared.InvalidateAuthToken()
	assert.Empty(t, conn.Token())
}

func TestPercentEncode(t *testing.T) {
	assert.Equal(t, "the%20b%C3%BCg%20data", percentEncode("the büg data"))
	assert.Equal(t, "/_api/document", percentEncode("/_api/document"))
	assert.Equal(t, "a%3Fb", percentEncode("a?b"))
	assert.Equal(t, "a=b&c", percentEncode("a=b&c"))
}
