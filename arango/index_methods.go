// Method calls for the index operations of the REST API. Index create and
// list address the collection via the "collection" query parameter, delete
// and get address the index via its "collection/key" id in the path.

package arango

import "arango.evalgo.org/api"

// CreateIndex creates an index on a collection. The result is the created
// Index with IsNewlyCreated set, or the existing equivalent index.
type CreateIndex struct {
	collectionName string
	index          NewIndex
}

// NewCreateIndex constructs the method call for creating the given index
// on the named collection.
func NewCreateIndex(collectionName string, index NewIndex) *CreateIndex {
	return &CreateIndex{collectionName: collectionName, index: index}
}

// ReturnType declares the result envelope of this method call.
func (m *CreateIndex) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *CreateIndex) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *CreateIndex) Path() string { return PathAPIIndex }

// Parameters returns the query parameters of this method call.
func (m *CreateIndex) Parameters() api.Parameters {
	var params api.Parameters
	params.Add(ParamCollection, m.collectionName)
	return params
}

// Header returns the header parameters of this method call.
func (m *CreateIndex) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *CreateIndex) Content() any { return m.index }

// GetIndexList retrieves all indexes of a collection. The result is a
// slice of Index.
type GetIndexList struct {
	collectionName string
}

// NewGetIndexList constructs the method call for listing the indexes of
// the named collection.
func NewGetIndexList(collectionName string) *GetIndexList {
	return &GetIndexList{collectionName: collectionName}
}

// ReturnType declares the result envelope of this method call.
func (m *GetIndexList) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: "indexes", Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetIndexList) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetIndexList) Path() string { return PathAPIIndex }

// Parameters returns the query parameters of this method call.
func (m *GetIndexList) Parameters() api.Parameters {
	var params api.Parameters
	params.Add(ParamCollection, m.collectionName)
	return params
}

// Header returns the header parameters of this method call.
func (m *GetIndexList) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetIndexList) Content() any { return nil }

// GetIndex reads a single index by its id. The result is the Index.
type GetIndex struct {
	id IndexID
}

// NewGetIndex constructs the method call for reading the index with the
// given id.
func NewGetIndex(id IndexID) *GetIndex {
	return &GetIndex{id: id}
}

// ReturnType declares the result envelope of this method call.
func (m *GetIndex) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetIndex) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetIndex) Path() string { return PathAPIIndex + "/" + m.id.String() }

// Parameters returns the query parameters of this method call.
func (m *GetIndex) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetIndex) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetIndex) Content() any { return nil }

// DeleteIndex deletes an index by its id. The result is the id of the
// deleted index.
type DeleteIndex struct {
	id IndexID
}

// NewDeleteIndex constructs the method call for deleting the index with
// the given id.
func NewDeleteIndex(id IndexID) *DeleteIndex {
	return &DeleteIndex{id: id}
}

// ReturnType declares the result envelope of this method call.
func (m *DeleteIndex) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldID, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *DeleteIndex) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *DeleteIndex) Path() string { return PathAPIIndex + "/" + m.id.String() }

// Parameters returns the query parameters of this method call.
func (m *DeleteIndex) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *DeleteIndex) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *DeleteIndex) Content() any { return nil }
