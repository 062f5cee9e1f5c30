// Method calls for the collection operations of the REST API.

package arango

import "arango.evalgo.org/api"

// CreateCollection creates a new collection. The result is the Collection
// as reported by the server.
type CreateCollection struct {
	collection NewCollection
}

// NewCreateCollection constructs the method call for creating a collection
// with the given properties.
func NewCreateCollection(collection NewCollection) *CreateCollection {
	return &CreateCollection{collection: collection}
}

// NewCreateCollectionWithName constructs the method call for creating a
// collection with the given name and the default collection type defined
// by the server.
func NewCreateCollectionWithName(name string) *CreateCollection {
	return &CreateCollection{collection: CollectionWithName(name)}
}

// Collection returns the properties of the collection to create.
func (m *CreateCollection) Collection() NewCollection { return m.collection }

// ReturnType declares the result envelope of this method call.
func (m *CreateCollection) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *CreateCollection) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *CreateCollection) Path() string { return PathAPICollection }

// Parameters returns the query parameters of this method call.
func (m *CreateCollection) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *CreateCollection) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *CreateCollection) Content() any { return m.collection }

// ListCollections retrieves the list of existing collections. The result
// is a slice of Collection.
type ListCollections struct {
	excludeSystem bool
}

// NewListCollections constructs the method call for listing all
// collections except the system collections.
func NewListCollections() *ListCollections {
	return &ListCollections{excludeSystem: true}
}

// NewListCollectionsIncludingSystem constructs the method call for listing
// all collections including the system collections.
func NewListCollectionsIncludingSystem() *ListCollections {
	return &ListCollections{excludeSystem: false}
}

// ReturnType declares the result envelope of this method call.
func (m *ListCollections) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListCollections) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListCollections) Path() string { return PathAPICollection }

// Parameters returns the query parameters of this method call.
func (m *ListCollections) Parameters() api.Parameters {
	var params api.Parameters
	if m.excludeSystem {
		params.Add(ParamExcludeSystem, true)
	}
	return params
}

// Header returns the header parameters of this method call.
func (m *ListCollections) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListCollections) Content() any { return nil }

// GetCollection reads the basic attributes of a collection. The result is
// the Collection as reported by the server.
type GetCollection struct {
	name string
}

// NewGetCollection constructs the method call for reading the collection
// with the given name.
func NewGetCollection(name string) *GetCollection {
	return &GetCollection{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *GetCollection) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetCollection) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetCollection) Path() string { return PathAPICollection + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *GetCollection) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetCollection) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetCollection) Content() any { return nil }

// DropCollection drops a collection. The result is the identifier of the
// dropped collection.
type DropCollection struct {
	name   string
	system bool
}

// NewDropCollection constructs the method call for dropping the user
// collection with the given name.
func NewDropCollection(name string) *DropCollection {
	return &DropCollection{name: name}
}

// NewDropSystemCollection constructs the method call for dropping the
// system collection with the given name.
func NewDropSystemCollection(name string) *DropCollection {
	return &DropCollection{name: name, system: true}
}

// ReturnType declares the result envelope of this method call.
func (m *DropCollection) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldID, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *DropCollection) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *DropCollection) Path() string { return PathAPICollection + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *DropCollection) Parameters() api.Parameters {
	var params api.Parameters
	if m.system {
		params.Add("isSystem", true)
	}
	return params
}

// Header returns the header parameters of this method call.
func (m *DropCollection) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *DropCollection) Content() any { return nil }

// GetCollectionProperties reads the full property set of a collection. The
// result is CollectionProperties.
type GetCollectionProperties struct {
	name string
}

// NewGetCollectionProperties constructs the method call for reading the
// properties of the collection with the given name.
func NewGetCollectionProperties(name string) *GetCollectionProperties {
	return &GetCollectionProperties{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *GetCollectionProperties) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetCollectionProperties) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetCollectionProperties) Path() string {
	return PathAPICollection + "/" + m.name + PathProperties
}

// Parameters returns the query parameters of this method call.
func (m *GetCollectionProperties) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetCollectionProperties) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetCollectionProperties) Content() any { return nil }

// ChangeCollectionProperties changes the changeable properties of a
// collection. The result is the updated CollectionProperties.
type ChangeCollectionProperties struct {
	name    string
	updates CollectionPropertiesUpdate
}

// NewChangeCollectionProperties constructs the method call for changing
// the properties of the collection with the given name.
func NewChangeCollectionProperties(name string, updates CollectionPropertiesUpdate) *ChangeCollectionProperties {
	return &ChangeCollectionProperties{name: name, updates: updates}
}

// ReturnType declares the result envelope of this method call.
func (m *ChangeCollectionProperties) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ChangeCollectionProperties) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *ChangeCollectionProperties) Path() string {
	return PathAPICollection + "/" + m.name + PathProperties
}

// Parameters returns the query parameters of this method call.
func (m *ChangeCollectionProperties) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ChangeCollectionProperties) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ChangeCollectionProperties) Content() any { return m.updates }

// RenameCollection renames a collection. The result is the renamed
// Collection.
type RenameCollection struct {
	name  string
	newTo RenameTo
}

// NewRenameCollection constructs the method call for renaming the
// collection with the given name.
func NewRenameCollection(name, newName string) *RenameCollection {
	return &RenameCollection{name: name, newTo: RenameTo{Name: newName}}
}

// ReturnType declares the result envelope of this method call.
func (m *RenameCollection) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *RenameCollection) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *RenameCollection) Path() string {
	return PathAPICollection + "/" + m.name + PathRename
}

// Parameters returns the query parameters of this method call.
func (m *RenameCollection) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *RenameCollection) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *RenameCollection) Content() any { return m.newTo }

// GetCollectionRevision reads the revision of a whole collection. The
// result is CollectionRevision.
type GetCollectionRevision struct {
	name string
}

// NewGetCollectionRevision constructs the method call for reading the
// revision of the collection with the given name.
func NewGetCollectionRevision(name string) *GetCollectionRevision {
	return &GetCollectionRevision{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *GetCollectionRevision) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetCollectionRevision) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetCollectionRevision) Path() string {
	return PathAPICollection + "/" + m.name + PathRevision
}

// Parameters returns the query parameters of this method call.
func (m *GetCollectionRevision) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetCollectionRevision) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetCollectionRevision) Content() any { return nil }
