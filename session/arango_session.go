// Package session provides stateful, ergonomic wrappers around a
// connector that expose the ArangoDB operations as plain method calls per
// entity: server administration, databases, collections, graphs, vertex
// and edge collections and query cursors.
//
// A session holds a shared connector handle plus the name (or the loaded
// entity) it operates on. Session values are cheap and not shared across
// goroutines; the connector they hold is. Operations that depend on a
// caller-defined content type are provided as package-level generic
// functions taking the session as their first argument, since Go methods
// cannot introduce type parameters of their own.
package session

import (
	"context"
	"encoding/json"

	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
)

// Extra is the default type for the arbitrary extra data attached to
// users when no structured type is needed.
type Extra = json.RawMessage

// ArangoSession drives the administrative operations of a server: server
// info, databases, users and permissions. It always targets the system
// database.
type ArangoSession struct {
	connector *connector.Connector
}

// NewArangoSession creates a session for administrative operations over
// the given connector.
func NewArangoSession(conn *connector.Connector) *ArangoSession {
	return &ArangoSession{connector: conn}
}

// Connector returns the connector used by this session.
func (s *ArangoSession) Connector() *connector.Connector {
	return s.connector
}

func (s *ArangoSession) conn() *connector.Connection {
	return s.connector.SystemConnection()
}

// GetServerVersion reads the version of the connected server.
func (s *ArangoSession) GetServerVersion(ctx context.Context) (arango.ServerVersion, error) {
	return connector.Execute[arango.ServerVersion](ctx, s.conn(), arango.NewGetServerVersion())
}

// GetServerVersionDetails reads the version of the connected server with
// all detail information.
func (s *ArangoSession) GetServerVersionDetails(ctx context.Context) (arango.ServerVersion, error) {
	return connector.Execute[arango.ServerVersion](ctx, s.conn(), arango.NewGetServerVersionDetails())
}

// GetTargetVersion reads the database version the server requires.
func (s *ArangoSession) GetTargetVersion(ctx context.Context) (arango.TargetVersion, error) {
	return connector.Execute[arango.TargetVersion](ctx, s.conn(), arango.NewGetTargetVersion())
}

// Authenticate obtains a token for the given credentials from the open
// authentication endpoint and installs it on the connector, so that
// subsequent calls over token-authenticated connections succeed.
func (s *ArangoSession) Authenticate(ctx context.Context, username, password string) error {
	response, err := connector.Execute[arango.AuthenticationResponse](
		ctx, s.conn(), arango.NewAuthenticate(username, password))
	if err != nil {
		return err
	}
	s.connector.UseAuthToken(response.JWT)
	return nil
}

// UseSystemDatabase returns a session for operations on the system
// database.
func (s *ArangoSession) UseSystemDatabase() *DatabaseSession {
	return &DatabaseSession{connector: s.connector, name: arango.SystemDatabase}
}

// UseDatabaseWithName returns a session for operations on the database
// with the given name. The database is not checked for existence.
func (s *ArangoSession) UseDatabaseWithName(name string) *DatabaseSession {
	return &DatabaseSession{connector: s.connector, name: name}
}

// CreateDatabase creates a database with access for the given initial
// users and returns a session for operations on it.
func CreateDatabase[E any](ctx context.Context, s *ArangoSession, name string, users ...arango.NewUserValue[E]) (*DatabaseSession, error) {
	if _, err := connector.Execute[bool](
		ctx, s.conn(), arango.NewCreateDatabase(arango.DatabaseWithName(name, users...))); err != nil {
		return nil, err
	}
	return s.UseDatabaseWithName(name), nil
}

// DropDatabase drops the database with the given name and all its data.
func (s *ArangoSession) DropDatabase(ctx context.Context, name string) (bool, error) {
	return connector.Execute[bool](ctx, s.conn(), arango.NewDropDatabase(name))
}

// ListDatabases lists the names of all databases. Requires access to the
// system database.
func (s *ArangoSession) ListDatabases(ctx context.Context) ([]string, error) {
	return connector.Execute[[]string](ctx, s.conn(), arango.NewListDatabases())
}

// ListAccessibleDatabases lists the names of the databases the current
// user can access.
func (s *ArangoSession) ListAccessibleDatabases(ctx context.Context) ([]string, error) {
	return connector.Execute[[]string](ctx, s.conn(), arango.NewListAccessibleDatabases())
}

// CreateUser creates an active user with the given name and password and
// no extra data.
func (s *ArangoSession) CreateUser(ctx context.Context, username, password string) (arango.User[Extra], error) {
	return CreateUserWithDetails(ctx, s, arango.UserWithName[Extra](username, password))
}

// CreateUserWithDetails creates a user from the given specification.
func CreateUserWithDetails[E any](ctx context.Context, s *ArangoSession, user arango.NewUserValue[E]) (arango.User[E], error) {
	return connector.Execute[arango.User[E]](ctx, s.conn(), arango.NewCreateUser(user))
}

// GetUser reads the user with the given name.
func (s *ArangoSession) GetUser(ctx context.Context, username string) (arango.User[Extra], error) {
	return GetUser[Extra](ctx, s, username)
}

// GetUser reads the user with the given name, with typed extra data.
func GetUser[E any](ctx context.Context, s *ArangoSession, username string) (arango.User[E], error) {
	return connector.Execute[arango.User[E]](ctx, s.conn(), arango.NewGetUser(username))
}

// ListUsers lists all users visible to the current user.
func (s *ArangoSession) ListUsers(ctx context.Context) ([]arango.User[Extra], error) {
	return connector.Execute[[]arango.User[Extra]](ctx, s.conn(), arango.NewListAvailableUsers())
}

// ModifyUser partially updates the user with the given name.
func ModifyUser[E any](ctx context.Context, s *ArangoSession, username string, updates arango.UserUpdate[E]) (arango.User[E], error) {
	return connector.Execute[arango.User[E]](ctx, s.conn(), arango.NewModifyUser(username, updates))
}

// ReplaceUser replaces the properties of the user with the given name.
func ReplaceUser[E any](ctx context.Context, s *ArangoSession, username string, updates arango.UserUpdate[E]) (arango.User[E], error) {
	return connector.Execute[arango.User[E]](ctx, s.conn(), arango.NewReplaceUser(username, updates))
}

// DeleteUser removes the user with the given name permanently.
func (s *ArangoSession) DeleteUser(ctx context.Context, username string) error {
	_, err := connector.Execute[json.RawMessage](ctx, s.conn(), arango.NewDeleteUser(username))
	return err
}

// ListDatabasesForUser lists the databases the given user can access
// together with the access level per database.
func (s *ArangoSession) ListDatabasesForUser(ctx context.Context, username string) (map[string]arango.Permission, error) {
	return connector.Execute[map[string]arango.Permission](
		ctx, s.conn(), arango.NewListDatabasesForUser(username))
}

// GetDatabaseAccessLevel reads the access level of the given user on the
// given database.
func (s *ArangoSession) GetDatabaseAccessLevel(ctx context.Context, username, database string) (arango.Permission, error) {
	return connector.Execute[arango.Permission](
		ctx, s.conn(), arango.NewGetDatabaseAccessLevel(username, database))
}

// GrantDatabaseAccess grants the given permission to the given user on
// the given database.
func (s *ArangoSession) GrantDatabaseAccess(ctx context.Context, username, database string, permission arango.Permission) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewSetDatabaseAccessLevel(username, database, permission))
	return err
}

// GrantDefaultDatabaseAccess sets the default database access level of
// the given user.
func (s *ArangoSession) GrantDefaultDatabaseAccess(ctx context.Context, username string, permission arango.Permission) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewSetDefaultDatabaseAccessLevel(username, permission))
	return err
}

// RevokeDatabaseAccess revokes all access of the given user to the given
// database.
func (s *ArangoSession) RevokeDatabaseAccess(ctx context.Context, username, database string) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewSetDatabaseAccessLevel(username, database, arango.PermissionNone))
	return err
}

// ResetDatabaseAccess resets the access level of the given user on the
// given database back to the default.
func (s *ArangoSession) ResetDatabaseAccess(ctx context.Context, username, database string) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewResetDatabaseAccessLevel(username, database))
	return err
}

// GetCollectionAccessLevel reads the access level of the given user on
// the given collection.
func (s *ArangoSession) GetCollectionAccessLevel(ctx context.Context, username, database, collection string) (arango.Permission, error) {
	return connector.Execute[arango.Permission](
		ctx, s.conn(), arango.NewGetCollectionAccessLevel(username, database, collection))
}

// GrantCollectionAccess grants the given permission to the given user on
// the given collection.
func (s *ArangoSession) GrantCollectionAccess(ctx context.Context, username, database, collection string, permission arango.Permission) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewSetCollectionAccessLevel(username, database, collection, permission))
	return err
}

// GrantDefaultCollectionAccess sets the default collection access level
// of the given user on the given database.
func (s *ArangoSession) GrantDefaultCollectionAccess(ctx context.Context, username, database string, permission arango.Permission) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewSetDefaultCollectionAccessLevel(username, database, permission))
	return err
}

// RevokeCollectionAccess revokes all access of the given user to the
// given collection.
func (s *ArangoSession) RevokeCollectionAccess(ctx context.Context, username, database, collection string) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewSetCollectionAccessLevel(username, database, collection, arango.PermissionNone))
	return err
}

// ResetCollectionAccess resets the access level of the given user on the
// given collection back to the default.
func (s *ArangoSession) ResetCollectionAccess(ctx context.Context, username, database, collection string) error {
	_, err := connector.Execute[json.RawMessage](
		ctx, s.conn(), arango.NewResetCollectionAccessLevel(username, database, collection))
	return err
}
