// Method calls for the user and permission operations of the REST API.
// User administration always targets the system database.

package arango

import "arango.evalgo.org/api"

// CreateUser creates a new user. The result is the created User[E].
type CreateUser[E any] struct {
	user NewUserValue[E]
}

// NewCreateUser constructs the method call for creating the given user.
func NewCreateUser[E any](user NewUserValue[E]) *CreateUser[E] {
	return &CreateUser[E]{user: user}
}

// ReturnType declares the result envelope of this method call.
func (m *CreateUser[E]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *CreateUser[E]) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *CreateUser[E]) Path() string { return PathAPIUser }

// Parameters returns the query parameters of this method call.
func (m *CreateUser[E]) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *CreateUser[E]) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *CreateUser[E]) Content() any { return m.user }

// GetUser reads a user. The result is User[E].
type GetUser struct {
	name string
}

// NewGetUser constructs the method call for reading the user with the
// given name.
func NewGetUser(name string) *GetUser {
	return &GetUser{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *GetUser) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetUser) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetUser) Path() string { return PathAPIUser + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *GetUser) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetUser) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetUser) Content() any { return nil }

// ListAvailableUsers retrieves all users the current user can see. The
// result is a slice of User[E].
type ListAvailableUsers struct{}

// NewListAvailableUsers constructs the method call for listing users.
func NewListAvailableUsers() *ListAvailableUsers {
	return &ListAvailableUsers{}
}

// ReturnType declares the result envelope of this method call.
func (m *ListAvailableUsers) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListAvailableUsers) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListAvailableUsers) Path() string { return PathAPIUser }

// Parameters returns the query parameters of this method call.
func (m *ListAvailableUsers) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ListAvailableUsers) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListAvailableUsers) Content() any { return nil }

// ModifyUser partially updates a user. The result is the updated User[E].
type ModifyUser[E any] struct {
	name    string
	updates UserUpdate[E]
}

// NewModifyUser constructs the method call for partially updating the user
// with the given name.
func NewModifyUser[E any](name string, updates UserUpdate[E]) *ModifyUser[E] {
	return &ModifyUser[E]{name: name, updates: updates}
}

// ReturnType declares the result envelope of this method call.
func (m *ModifyUser[E]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ModifyUser[E]) Operation() api.Operation { return api.OperationModify }

// Path returns the resource path of this method call.
func (m *ModifyUser[E]) Path() string { return PathAPIUser + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *ModifyUser[E]) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ModifyUser[E]) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ModifyUser[E]) Content() any { return m.updates }

// ReplaceUser replaces the properties of a user. The result is the updated
// User[E].
type ReplaceUser[E any] struct {
	name    string
	updates UserUpdate[E]
}

// NewReplaceUser constructs the method call for replacing the properties
// of the user with the given name.
func NewReplaceUser[E any](name string, updates UserUpdate[E]) *ReplaceUser[E] {
	return &ReplaceUser[E]{name: name, updates: updates}
}

// ReturnType declares the result envelope of this method call.
func (m *ReplaceUser[E]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ReplaceUser[E]) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *ReplaceUser[E]) Path() string { return PathAPIUser + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *ReplaceUser[E]) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ReplaceUser[E]) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ReplaceUser[E]) Content() any { return m.updates }

// DeleteUser removes a user permanently.
type DeleteUser struct {
	name string
}

// NewDeleteUser constructs the method call for removing the user with the
// given name.
func NewDeleteUser(name string) *DeleteUser {
	return &DeleteUser{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *DeleteUser) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *DeleteUser) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *DeleteUser) Path() string { return PathAPIUser + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *DeleteUser) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *DeleteUser) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *DeleteUser) Content() any { return nil }

// ListDatabasesForUser retrieves the databases a user can access together
// with the access level per database. The result is a map from database
// name to Permission.
type ListDatabasesForUser struct {
	name string
}

// NewListDatabasesForUser constructs the method call for listing the
// databases accessible to the user with the given name.
func NewListDatabasesForUser(name string) *ListDatabasesForUser {
	return &ListDatabasesForUser{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *ListDatabasesForUser) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListDatabasesForUser) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListDatabasesForUser) Path() string {
	return PathAPIUser + "/" + m.name + PathDatabase
}

// Parameters returns the query parameters of this method call.
func (m *ListDatabasesForUser) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ListDatabasesForUser) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListDatabasesForUser) Content() any { return nil }

// The wildcard database/collection segment used by the default access
// level methods.
const accessLevelWildcard = "*"

// GetDatabaseAccessLevel reads the access level a user has on a database.
// The result is the Permission.
type GetDatabaseAccessLevel struct {
	username string
	database string
}

// NewGetDatabaseAccessLevel constructs the method call for reading the
// access level of the given user on the given database.
func NewGetDatabaseAccessLevel(username, database string) *GetDatabaseAccessLevel {
	return &GetDatabaseAccessLevel{username: username, database: database}
}

// ReturnType declares the result envelope of this method call.
func (m *GetDatabaseAccessLevel) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetDatabaseAccessLevel) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetDatabaseAccessLevel) Path() string {
	return PathAPIUser + "/" + m.username + PathDatabase + "/" + m.database
}

// Parameters returns the query parameters of this method call.
func (m *GetDatabaseAccessLevel) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetDatabaseAccessLevel) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetDatabaseAccessLevel) Content() any { return nil }

// SetDatabaseAccessLevel grants or changes the access level a user has on
// a database. Use the wildcard database "*" to set the default access
// level for all databases.
type SetDatabaseAccessLevel struct {
	username string
	database string
	grant    NewAccessLevel
}

// NewSetDatabaseAccessLevel constructs the method call for granting the
// given permission to the given user on the given database.
func NewSetDatabaseAccessLevel(username, database string, grant Permission) *SetDatabaseAccessLevel {
	return &SetDatabaseAccessLevel{username: username, database: database, grant: NewAccessLevel{Grant: grant}}
}

// NewSetDefaultDatabaseAccessLevel constructs the method call for setting
// the default database access level of the given user.
func NewSetDefaultDatabaseAccessLevel(username string, grant Permission) *SetDatabaseAccessLevel {
	return NewSetDatabaseAccessLevel(username, accessLevelWildcard, grant)
}

// ReturnType declares the result envelope of this method call.
func (m *SetDatabaseAccessLevel) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *SetDatabaseAccessLevel) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *SetDatabaseAccessLevel) Path() string {
	return PathAPIUser + "/" + m.username + PathDatabase + "/" + m.database
}

// Parameters returns the query parameters of this method call.
func (m *SetDatabaseAccessLevel) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *SetDatabaseAccessLevel) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *SetDatabaseAccessLevel) Content() any { return m.grant }

// ResetDatabaseAccessLevel resets the access level of a user on a database
// back to the default.
type ResetDatabaseAccessLevel struct {
	username string
	database string
}

// NewResetDatabaseAccessLevel constructs the method call for resetting the
// access level of the given user on the given database.
func NewResetDatabaseAccessLevel(username, database string) *ResetDatabaseAccessLevel {
	return &ResetDatabaseAccessLevel{username: username, database: database}
}

// ReturnType declares the result envelope of this method call.
func (m *ResetDatabaseAccessLevel) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ResetDatabaseAccessLevel) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *ResetDatabaseAccessLevel) Path() string {
	return PathAPIUser + "/" + m.username + PathDatabase + "/" + m.database
}

// Parameters returns the query parameters of this method call.
func (m *ResetDatabaseAccessLevel) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ResetDatabaseAccessLevel) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ResetDatabaseAccessLevel) Content() any { return nil }

// GetCollectionAccessLevel reads the access level a user has on a
// collection. The result is the Permission.
type GetCollectionAccessLevel struct {
	username   string
	database   string
	collection string
}

// NewGetCollectionAccessLevel constructs the method call for reading the
// access level of the given user on the given collection.
func NewGetCollectionAccessLevel(username, database, collection string) *GetCollectionAccessLevel {
	return &GetCollectionAccessLevel{username: username, database: database, collection: collection}
}

// ReturnType declares the result envelope of this method call.
func (m *GetCollectionAccessLevel) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetCollectionAccessLevel) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetCollectionAccessLevel) Path() string {
	return PathAPIUser + "/" + m.username + PathDatabase + "/" + m.database + "/" + m.collection
}

// Parameters returns the query parameters of this method call.
func (m *GetCollectionAccessLevel) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetCollectionAccessLevel) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetCollectionAccessLevel) Content() any { return nil }

// SetCollectionAccessLevel grants or changes the access level a user has
// on a collection. Use the wildcard collection "*" to set the default
// access level for all collections of the database.
type SetCollectionAccessLevel struct {
	username   string
	database   string
	collection string
	grant      NewAccessLevel
}

// NewSetCollectionAccessLevel constructs the method call for granting the
// given permission to the given user on the given collection.
func NewSetCollectionAccessLevel(username, database, collection string, grant Permission) *SetCollectionAccessLevel {
	return &SetCollectionAccessLevel{
		username:   username,
		database:   database,
		collection: collection,
		grant:      NewAccessLevel{Grant: grant},
	}
}

// NewSetDefaultCollectionAccessLevel constructs the method call for
// setting the default collection access level of the given user on the
// given database.
func NewSetDefaultCollectionAccessLevel(username, database string, grant Permission) *SetCollectionAccessLevel {
	return NewSetCollectionAccessLevel(username, database, accessLevelWildcard, grant)
}

// ReturnType declares the result envelope of this method call.
func (m *SetCollectionAccessLevel) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *SetCollectionAccessLevel) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *SetCollectionAccessLevel) Path() string {
	return PathAPIUser + "/" + m.username + PathDatabase + "/" + m.database + "/" + m.collection
}

// Parameters returns the query parameters of this method call.
func (m *SetCollectionAccessLevel) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *SetCollectionAccessLevel) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *SetCollectionAccessLevel) Content() any { return m.grant }

// ResetCollectionAccessLevel resets the access level of a user on a
// collection back to the default.
type ResetCollectionAccessLevel struct {
	username   string
	database   string
	collection string
}

// NewResetCollectionAccessLevel constructs the method call for resetting
// the access level of the given user on the given collection.
func NewResetCollectionAccessLevel(username, database, collection string) *ResetCollectionAccessLevel {
	return &ResetCollectionAccessLevel{username: username, database: database, collection: collection}
}

// ReturnType declares the result envelope of this method call.
func (m *ResetCollectionAccessLevel) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ResetCollectionAccessLevel) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *ResetCollectionAccessLevel) Path() string {
	return PathAPIUser + "/" + m.username + PathDatabase + "/" + m.database + "/" + m.collection
}

// Parameters returns the query parameters of this method call.
func (m *ResetCollectionAccessLevel) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ResetCollectionAccessLevel) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ResetCollectionAccessLevel) Content() any { return nil }
