// Package arango models the entities of the ArangoDB REST API — databases,
// collections, documents, edges, indexes, graphs, cursors and users — and
// provides one method-call value per REST operation on them.
//
// Entity identity follows the handle scheme of the ArangoDB REST API: a
// qualified handle is rendered as "context/key" (e.g. a document id as
// "collection/key"), a local handle is the bare key whose context is
// supplied elsewhere. Wire envelopes interleave the reserved fields "_id",
// "_key", "_rev", "_from", "_to", "_oldRev", "new" and "old" with arbitrary
// user payload; the types in this package lift the reserved fields out and
// materialize the remainder into the caller's content type.
//
// This file defines the protocol constants and the generic handle types.
// The average application will not need to use anything from this file
// directly.
package arango

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Field names reserved by the ArangoDB wire protocol.
const (
	FieldCode            = "code"
	FieldCollections     = "collections"
	FieldEdge            = "edge"
	FieldEdgeDefinitions = "edgeDefinitions"
	FieldEntityFrom      = "_from"
	FieldEntityID        = "_id"
	FieldEntityKey       = "_key"
	FieldEntityRevision  = "_rev"
	FieldEntityNew       = "new"
	FieldEntityOld       = "old"
	FieldEntityOldRev    = "_oldRev"
	FieldEntityTo        = "_to"
	FieldError           = "error"
	FieldErrorMessage    = "errorMessage"
	FieldErrorNumber     = "errorNum"
	FieldGraph           = "graph"
	FieldGraphs          = "graphs"
	FieldID              = "id"
	FieldIsSmart         = "isSmart"
	FieldName            = "name"
	FieldNumberOfShards  = "numberOfShards"
	FieldOrphans         = "orphanCollections"
	FieldRemoved         = "removed"
	FieldReplication     = "replicationFactor"
	FieldResult          = "result"
	FieldSmartGraphAttr  = "smartGraphAttribute"
	FieldVertex          = "vertex"
)

// Header names used for revision-checked operations.
const (
	HeaderIfMatch    = "If-Match"
	HeaderIfNonMatch = "If-None-Match"
)

// Query parameter names used by the REST API.
const (
	ParamCollection      = "collection"
	ParamDetails         = "details"
	ParamExcludeSystem   = "excludeSystem"
	ParamIgnoreRevisions = "ignoreRevs"
	ParamKeepNull        = "keepNull"
	ParamMergeObjects    = "mergeObjects"
	ParamOnlyGet         = "onlyget"
	ParamReturnNew       = "returnNew"
	ParamReturnOld       = "returnOld"
	ParamSilent          = "silent"
	ParamWaitForSync     = "waitForSync"
)

// Resource path fragments of the REST API.
const (
	PathAdmin         = "/_admin"
	PathAPICollection = "/_api/collection"
	PathAPICursor     = "/_api/cursor"
	PathAPIDatabase   = "/_api/database"
	PathAPIDocument   = "/_api/document"
	PathAPIExplain    = "/_api/explain"
	PathAPIGharial    = "/_api/gharial"
	PathAPIIndex      = "/_api/index"
	PathAPIQuery      = "/_api/query"
	PathAPIUser       = "/_api/user"
	PathAPIVersion    = "/_api/version"
	PathOpenAuth      = "/_open/auth"

	PathCurrent       = "/current"
	PathDatabase      = "/database"
	PathDB            = "/_db/"
	PathEdge          = "/edge"
	PathProperties    = "/properties"
	PathRename        = "/rename"
	PathRevision      = "/revision"
	PathTargetVersion = "/target-version"
	PathUser          = "/user"
	PathVertex        = "/vertex"
)

// SystemDatabase is the name of the system database of an ArangoDB server.
const SystemDatabase = "_system"

var handleRegexp = regexp.MustCompile(`^((?P<ctx>[^/]+)/)?(?P<key>[^/]+)$`)

// Handle is a qualified handle with defined context and key, rendered as
// "context/key". It is used by the REST API for identifying entities like
// documents and indexes.
type Handle struct {
	context string
	key     string
}

// NewHandle constructs a handle from the given context and key. Neither
// part may contain a '/' character.
func NewHandle(context, key string) Handle {
	return Handle{context: context, key: key}
}

// ParseHandle parses a qualified handle of the form "context/key". The
// handleName names the concrete handle kind in error messages, e.g.
// "document id".
func ParseHandle(handleName, value string) (Handle, error) {
	caps := handleRegexp.FindStringSubmatch(value)
	if caps == nil {
		return Handle{}, fmt.Errorf("Invalid %s: %q", handleName, value)
	}
	context, key := caps[2], caps[3]
	if context == "" {
		return Handle{}, fmt.Errorf("%s does not have a context: %q", handleName, value)
	}
	if key == "" {
		return Handle{}, fmt.Errorf("%s does not have a key: %q", handleName, value)
	}
	return Handle{context: context, key: key}, nil
}

// Context returns the context part of this handle.
func (h Handle) Context() string { return h.context }

// Key returns the key part of this handle.
func (h Handle) Key() string { return h.key }

// String renders this handle as "context/key".
func (h Handle) String() string {
	return h.context + "/" + h.key
}

// MarshalJSON serializes the handle as its "context/key" string.
func (h Handle) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON parses the handle from its "context/key" string.
func (h *Handle) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseHandle("handle", value)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HandleKey is a local handle specifying the key only. The context must be
// specified by other means, like another parameter of a method call.
type HandleKey struct {
	key string
}

// ParseHandleKey validates that the given value contains no '/' character
// and returns it as a HandleKey.
func ParseHandleKey(handleName, value string) (HandleKey, error) {
	for _, r := range value {
		if r == '/' {
			return HandleKey{}, fmt.Errorf("A %s key must not contain any '/' character, but got: %q", handleName, value)
		}
	}
	return HandleKey{key: value}, nil
}

// String returns the key string.
func (k HandleKey) String() string { return k.key }

// MarshalJSON serializes the key as a plain string.
func (k HandleKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.key)
}

// UnmarshalJSON parses the key from a plain string.
func (k *HandleKey) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseHandleKey("handle", value)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// HandleOption is a handle that is either qualified with its context or
// local to a context that is specified elsewhere.
type HandleOption struct {
	qualified *Handle
	local     *HandleKey
}

// QualifiedHandle wraps a qualified handle into a HandleOption.
func QualifiedHandle(h Handle) HandleOption {
	return HandleOption{qualified: &h}
}

// LocalHandle wraps a local handle key into a HandleOption.
func LocalHandle(k HandleKey) HandleOption {
	return HandleOption{local: &k}
}

// ParseHandleOption parses either a qualified handle "context/key" or a
// bare key. The handleName names the concrete handle kind in error
// messages.
func ParseHandleOption(handleName, value string) (HandleOption, error) {
	caps := handleRegexp.FindStringSubmatch(value)
	if caps == nil {
		return HandleOption{}, fmt.Errorf("Invalid %s: %q", handleName, value)
	}
	context, key := caps[2], caps[3]
	if key == "" {
		return HandleOption{}, fmt.Errorf("%s does not have a key: %q", handleName, value)
	}
	if context == "" {
		return LocalHandle(HandleKey{key: key}), nil
	}
	return QualifiedHandle(Handle{context: context, key: key}), nil
}

// Qualified returns the qualified handle, or false when this option holds
// a local key only.
func (o HandleOption) Qualified() (Handle, bool) {
	if o.qualified == nil {
		return Handle{}, false
	}
	return *o.qualified, true
}

// Local returns the local handle key, or false when this option holds a
// qualified handle.
func (o HandleOption) Local() (HandleKey, bool) {
	if o.local == nil {
		return HandleKey{}, false
	}
	return *o.local, true
}

// String renders the handle in its qualified or local form.
func (o HandleOption) String() string {
	if o.qualified != nil {
		return o.qualified.String()
	}
	if o.local != nil {
		return o.local.String()
	}
	return ""
}

// MarshalJSON serializes the handle in its qualified or local form.
func (o HandleOption) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON parses either form of the handle.
func (o *HandleOption) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseHandleOption("handle", value)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
