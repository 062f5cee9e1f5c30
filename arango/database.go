// Types and method calls for the database operations of the REST API.
// Database administration always targets the system database.

package arango

import "arango.evalgo.org/api"

// Database describes a database as reported by the server.
type Database struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	IsSystem bool   `json:"isSystem"`
}

// NewDatabase holds the properties of a database that is going to be
// created: its name and the initial users that get access to it.
type NewDatabase[E any] struct {
	Name  string            `json:"name"`
	Users []NewUserValue[E] `json:"users,omitempty"`
}

// DatabaseWithName describes a new database with the given name and
// access for the given initial users.
func DatabaseWithName[E any](name string, users ...NewUserValue[E]) NewDatabase[E] {
	return NewDatabase[E]{Name: name, Users: users}
}

// CreateDatabase creates a new database. The result reports whether the
// database was created.
type CreateDatabase[E any] struct {
	database NewDatabase[E]
}

// NewCreateDatabase constructs the method call for creating a database
// with the given properties.
func NewCreateDatabase[E any](database NewDatabase[E]) *CreateDatabase[E] {
	return &CreateDatabase[E]{database: database}
}

// Database returns the properties of the database to create.
func (m *CreateDatabase[E]) Database() NewDatabase[E] { return m.database }

// ReturnType declares the result envelope of this method call.
func (m *CreateDatabase[E]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *CreateDatabase[E]) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *CreateDatabase[E]) Path() string { return PathAPIDatabase }

// Parameters returns the query parameters of this method call.
func (m *CreateDatabase[E]) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *CreateDatabase[E]) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *CreateDatabase[E]) Content() any { return m.database }

// DropDatabase drops a database with all its data. The result reports
// whether the database was dropped.
type DropDatabase struct {
	name string
}

// NewDropDatabase constructs the method call for dropping the database
// with the given name.
func NewDropDatabase(name string) *DropDatabase {
	return &DropDatabase{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *DropDatabase) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *DropDatabase) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *DropDatabase) Path() string { return PathAPIDatabase + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *DropDatabase) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *DropDatabase) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *DropDatabase) Content() any { return nil }

// ListDatabases retrieves the names of all existing databases. The result
// is a slice of names. This method requires access to the system database.
type ListDatabases struct{}

// NewListDatabases constructs the method call for listing all databases.
func NewListDatabases() *ListDatabases {
	return &ListDatabases{}
}

// ReturnType declares the result envelope of this method call.
func (m *ListDatabases) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListDatabases) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListDatabases) Path() string { return PathAPIDatabase }

// Parameters returns the query parameters of this method call.
func (m *ListDatabases) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ListDatabases) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListDatabases) Content() any { return nil }

// ListAccessibleDatabases retrieves the names of the databases the current
// user can access. The result is a slice of names.
type ListAccessibleDatabases struct{}

// NewListAccessibleDatabases constructs the method call for listing the
// databases accessible to the current user.
func NewListAccessibleDatabases() *ListAccessibleDatabases {
	return &ListAccessibleDatabases{}
}

// ReturnType declares the result envelope of this method call.
func (m *ListAccessibleDatabases) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListAccessibleDatabases) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListAccessibleDatabases) Path() string { return PathAPIDatabase + PathUser }

// Parameters returns the query parameters of this method call.
func (m *ListAccessibleDatabases) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ListAccessibleDatabases) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListAccessibleDatabases) Content() any { return nil }

// GetCurrentDatabase reads the properties of the database the connection
// is bound to. The result is the Database.
type GetCurrentDatabase struct{}

// NewGetCurrentDatabase constructs the method call for reading the current
// database.
func NewGetCurrentDatabase() *GetCurrentDatabase {
	return &GetCurrentDatabase{}
}

// ReturnType declares the result envelope of this method call.
func (m *GetCurrentDatabase) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldResult, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetCurrentDatabase) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetCurrentDatabase) Path() string { return PathAPIDatabase + PathCurrent }

// Parameters returns the query parameters of this method call.
func (m *GetCurrentDatabase) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetCurrentDatabase) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetCurrentDatabase) Content() any { return nil }
