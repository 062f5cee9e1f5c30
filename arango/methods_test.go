package arango

import (
	"testing"

	"arango.evalgo.org/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertDocumentPrepare(t *testing.T) {
	method := NewInsertDocument("customers", FromContent(customer{A: "Hugo", B: 42}))

	assert.Equal(t, api.OperationCreate, method.Operation())
	assert.Equal(t, "/_api/document/customers", method.Path())

	params := method.Parameters().List()
	require.Len(t, params, 1)
	assert.Equal(t, "returnNew", params[0].Name)
	assert.Equal(t, false, params[0].Value)
	assert.True(t, method.Header().IsEmpty())
	assert.NotNil(t, method.Content())
}

func TestInsertDocumentReturnNewPrepare(t *testing.T) {
	method := NewInsertDocumentReturnNew("customers", FromContent(customer{})).
		WithWaitForSync(true)

	params := method.Parameters().List()
	require.Len(t, params, 2)
	assert.Equal(t, "returnNew", params[0].Name)
	assert.Equal(t, true, params[0].Value)
	assert.Equal(t, "waitForSync", params[1].Name)
	assert.Equal(t, true, params[1].Value)
}

func TestGetDocumentPrepare(t *testing.T) {
	method := NewGetDocument(NewDocumentID("customers", "29384")).
		WithIfMatch("aOIey283aew")

	assert.Equal(t, api.OperationRead, method.Operation())
	assert.Equal(t, "/_api/document/customers/29384", method.Path())
	assert.True(t, method.Parameters().IsEmpty())

	header := method.Header().List()
	require.Len(t, header, 1)
	assert.Equal(t, "If-Match", header[0].Name)
	assert.Equal(t, "aOIey283aew", header[0].Value)
	assert.Nil(t, method.Content())
}

func TestGetDocumentHeaderPrepare(t *testing.T) {
	method := NewGetDocumentHeader(NewDocumentID("customers", "29384")).
		WithIfNonMatch("aOIey283aew")

	assert.Equal(t, api.OperationReadHeader, method.Operation())

	header := method.Header().List()
	require.Len(t, header, 1)
	assert.Equal(t, "If-None-Match", header[0].Name)
}

func TestListCollectionsPrepare(t *testing.T) {
	method := NewListCollections()

	assert.Equal(t, api.OperationRead, method.Operation())
	assert.Equal(t, "/_api/collection", method.Path())
	assert.Equal(t, api.RPCReturnType{Result: "result", Code: "code"}, method.ReturnType())

	params := method.Parameters().List()
	require.Len(t, params, 1)
	assert.Equal(t, "excludeSystem", params[0].Name)

	assert.True(t, NewListCollectionsIncludingSystem().Parameters().IsEmpty())
}

func TestDropCollectionPrepare(t *testing.T) {
	method := NewDropCollection("products")

	assert.Equal(t, api.OperationDelete, method.Operation())
	assert.Equal(t, "/_api/collection/products", method.Path())
	assert.Equal(t, api.RPCReturnType{Result: "id", Code: "code"}, method.ReturnType())
}

func TestCreateIndexPrepare(t *testing.T) {
	method := NewCreateIndex("products", HashIndexOn([]string{"a"}, false, true, true))

	assert.Equal(t, api.OperationCreate, method.Operation())
	assert.Equal(t, "/_api/index", method.Path())

	params := method.Parameters().List()
	require.Len(t, params, 1)
	assert.Equal(t, "collection", params[0].Name)
	assert.Equal(t, "products", params[0].Value)
}

func TestDeleteIndexPrepare(t *testing.T) {
	method := NewDeleteIndex(NewIndexID("products", "11582"))

	assert.Equal(t, api.OperationDelete, method.Operation())
	assert.Equal(t, "/_api/index/products/11582", method.Path())
}

func TestCursorMethodsPrepare(t *testing.T) {
	create := NewCreateCursorForQuery(api.NewQuery("FOR c IN customers RETURN c"))
	assert.Equal(t, api.OperationCreate, create.Operation())
	assert.Equal(t, "/_api/cursor", create.Path())

	next := NewReadNextBatchFromCursor("26011191")
	assert.Equal(t, api.OperationReplace, next.Operation())
	assert.Equal(t, "/_api/cursor/26011191", next.Path())

	remove := NewDeleteCursor("26011191")
	assert.Equal(t, api.OperationDelete, remove.Operation())
	assert.Equal(t, "/_api/cursor/26011191", remove.Path())
}

func TestGharialVertexPaths(t *testing.T) {
	insert := NewInsertVertex("social", "people", FromContent(customer{}))
	assert.Equal(t, "/_api/gharial/social/vertex/people", insert.Path())
	assert.Equal(t, api.RPCReturnType{Result: "vertex", Code: "code"}, insert.ReturnType())

	get := NewGetVertex("social", "people", "hugo")
	assert.Equal(t, "/_api/gharial/social/vertex/people/hugo", get.Path())

	remove := NewRemoveVertex("social", "people", "hugo")
	assert.Equal(t, api.RPCReturnType{Result: "removed", Code: "code"}, remove.ReturnType())
}

func TestGharialEdgePaths(t *testing.T) {
	edge := EdgeFromTo(NewDocumentID("people", "a"), NewDocumentID("people", "b"), customer{})

	insert := NewInsertEdge("social", "friend_of", edge)
	assert.Equal(t, "/_api/gharial/social/edge/friend_of", insert.Path())
	assert.Equal(t, api.RPCReturnType{Result: "edge", Code: "code"}, insert.ReturnType())

	get := NewGetEdge("social", "friend_of", "281")
	assert.Equal(t, "/_api/gharial/social/edge/friend_of/281", get.Path())
}

func TestAccessLevelPaths(t *testing.T) {
	set := NewSetDatabaseAccessLevel("herbert", "shop", PermissionReadWrite)
	assert.Equal(t, "/_api/user/herbert/database/shop", set.Path())
	assert.Equal(t, api.OperationReplace, set.Operation())

	defaultSet := NewSetDefaultDatabaseAccessLevel("herbert", PermissionReadOnly)
	assert.Equal(t, "/_api/user/herbert/database/*", defaultSet.Path())

	collectionSet := NewSetCollectionAccessLevel("herbert", "shop", "orders", PermissionNone)
	assert.Equal(t, "/_api/user/herbert/database/shop/orders", collectionSet.Path())
}

func TestServerMethodsPrepare(t *testing.T) {
	version := NewGetServerVersion()
	assert.Equal(t, "/_api/version", version.Path())
	assert.True(t, version.Parameters().IsEmpty())

	details := NewGetServerVersionDetails()
	params := details.Parameters().List()
	require.Len(t, params, 1)
	assert.Equal(t, "details", params[0].Name)

	target := NewGetTargetVersion()
	assert.Equal(t, "/_admin/database/target-version", target.Path())

	auth := NewAuthenticate("root", "s3cr3t")
	assert.Equal(t, "/_open/auth", auth.Path())
	assert.Equal(t, api.OperationCreate, auth.Operation())
	assert.NotNil(t, auth.Content())
}
