// Types used in methods for managing users and permissions.

package arango

import (
	"encoding/json"
	"fmt"
)

// DefaultRootPassword is the sentinel password value that makes the server
// substitute the password stored in its ARANGODB_DEFAULT_ROOT_PASSWORD
// environment variable.
const DefaultRootPassword = "ARANGODB_DEFAULT_ROOT_PASSWORD"

// User describes a user of the database system. The type parameter E is
// the type of the arbitrary extra data attached to the user; use
// api.Empty, a map or json.RawMessage when no structured extra data is
// needed.
type User[E any] struct {
	Name   string `json:"user"`
	Active bool   `json:"active"`
	Extra  E      `json:"extra"`
}

// NewUserValue specifies the properties of a user that is going to be
// created.
type NewUserValue[E any] struct {
	Name     string  `json:"user"`
	Password *string `json:"passwd,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Extra    *E      `json:"extra,omitempty"`
}

// UserWithName specifies a new active user with the given name and
// password.
func UserWithName[E any](name, password string) NewUserValue[E] {
	return NewUserValue[E]{Name: name, Password: &password}
}

// UserWithDefaultRootPassword specifies a new active user whose password
// is the default root password configured on the server.
func UserWithDefaultRootPassword[E any](name string) NewUserValue[E] {
	password := DefaultRootPassword
	return NewUserValue[E]{Name: name, Password: &password}
}

// WithExtra attaches extra data to the new user.
func (u NewUserValue[E]) WithExtra(extra E) NewUserValue[E] {
	u.Extra = &extra
	return u
}

// WithActive sets whether the new user is active.
func (u NewUserValue[E]) WithActive(active bool) NewUserValue[E] {
	u.Active = &active
	return u
}

// UserUpdate holds the changeable properties of a user.
type UserUpdate[E any] struct {
	Password *string `json:"passwd,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Extra    *E      `json:"extra,omitempty"`
}

// Permission is the access level a user has on a database or collection.
type Permission int

const (
	// PermissionReadWrite grants full access.
	PermissionReadWrite Permission = iota
	// PermissionReadOnly grants read access only.
	PermissionReadOnly
	// PermissionNone grants no access.
	PermissionNone
)

const (
	permissionReadWrite = "rw"
	permissionReadOnly  = "ro"
	permissionNone      = "none"
)

// String returns the wire representation of the permission.
func (p Permission) String() string {
	switch p {
	case PermissionReadWrite:
		return permissionReadWrite
	case PermissionReadOnly:
		return permissionReadOnly
	case PermissionNone:
		return permissionNone
	default:
		return fmt.Sprintf("Permission(%d)", int(p))
	}
}

// MarshalJSON serializes the permission as its wire string.
func (p Permission) MarshalJSON() ([]byte, error) {
	switch p {
	case PermissionReadWrite, PermissionReadOnly, PermissionNone:
		return json.Marshal(p.String())
	default:
		return nil, fmt.Errorf("invalid permission: %d", int(p))
	}
}

// UnmarshalJSON parses the permission from its wire string.
func (p *Permission) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	switch value {
	case permissionReadWrite:
		*p = PermissionReadWrite
	case permissionReadOnly:
		*p = PermissionReadOnly
	case permissionNone:
		*p = PermissionNone
	default:
		return fmt.Errorf("unknown permission: %q", value)
	}
	return nil
}

// NewAccessLevel is the body of the grant access level methods.
type NewAccessLevel struct {
	Grant Permission `json:"grant"`
}
