// Types used in methods for managing documents.

package arango

import (
	"encoding/json"
	"fmt"
)

// DocumentID identifies a document by collection name and document key,
// rendered as "collection/key".
type DocumentID struct {
	collectionName string
	documentKey    string
}

// NewDocumentID constructs a document id from collection name and document
// key. Neither part may contain a '/' character.
func NewDocumentID(collectionName, documentKey string) DocumentID {
	if _, err := ParseHandleKey("collection name", collectionName); err != nil {
		panic(err)
	}
	if _, err := ParseHandleKey("document", documentKey); err != nil {
		panic(err)
	}
	return DocumentID{collectionName: collectionName, documentKey: documentKey}
}

// ParseDocumentID parses a document id of the form "collection/key".
func ParseDocumentID(value string) (DocumentID, error) {
	handle, err := ParseHandle("document id", value)
	if err != nil {
		return DocumentID{}, err
	}
	return DocumentID{collectionName: handle.Context(), documentKey: handle.Key()}, nil
}

// CollectionName returns the name of the collection this document lives in.
func (id DocumentID) CollectionName() string { return id.collectionName }

// DocumentKey returns the key of the document within its collection.
func (id DocumentID) DocumentKey() string { return id.documentKey }

// String renders the document id as "collection/key".
func (id DocumentID) String() string {
	return id.collectionName + "/" + id.documentKey
}

// MarshalJSON serializes the document id as its "collection/key" string.
func (id DocumentID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON parses the document id from its "collection/key" string.
func (id *DocumentID) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseDocumentID(value)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// DocumentKey is the key of a document, unique within its collection.
type DocumentKey string

// ParseDocumentKey validates that the given value contains no '/'
// character and returns it as a DocumentKey.
func ParseDocumentKey(value string) (DocumentKey, error) {
	key, err := ParseHandleKey("document", value)
	if err != nil {
		return "", err
	}
	return DocumentKey(key.String()), nil
}

// String returns the key string.
func (k DocumentKey) String() string { return string(k) }

// UnmarshalJSON parses and validates the key from a plain string.
func (k *DocumentKey) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseDocumentKey(value)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DocumentIDOption is a document identified either by its qualified id or
// by its key local to a collection that is specified elsewhere.
type DocumentIDOption struct {
	id  *DocumentID
	key *DocumentKey
}

// QualifiedDocumentID wraps a document id into a DocumentIDOption.
func QualifiedDocumentID(id DocumentID) DocumentIDOption {
	return DocumentIDOption{id: &id}
}

// LocalDocumentKey wraps a document key into a DocumentIDOption.
func LocalDocumentKey(key DocumentKey) DocumentIDOption {
	return DocumentIDOption{key: &key}
}

// ParseDocumentIDOption parses either a qualified "collection/key" id or a
// bare document key.
func ParseDocumentIDOption(value string) (DocumentIDOption, error) {
	option, err := ParseHandleOption("document id", value)
	if err != nil {
		return DocumentIDOption{}, err
	}
	if handle, ok := option.Qualified(); ok {
		id := DocumentID{collectionName: handle.Context(), documentKey: handle.Key()}
		return DocumentIDOption{id: &id}, nil
	}
	local, _ := option.Local()
	key := DocumentKey(local.String())
	return DocumentIDOption{key: &key}, nil
}

// ID returns the qualified document id, or false when only a key is held.
func (o DocumentIDOption) ID() (DocumentID, bool) {
	if o.id == nil {
		return DocumentID{}, false
	}
	return *o.id, true
}

// Key returns the local document key, or false when a qualified id is held.
func (o DocumentIDOption) Key() (DocumentKey, bool) {
	if o.key == nil {
		return "", false
	}
	return *o.key, true
}

// String renders the document id in its qualified or local form.
func (o DocumentIDOption) String() string {
	if o.id != nil {
		return o.id.String()
	}
	if o.key != nil {
		return o.key.String()
	}
	return ""
}

// Revision is the opaque revision token assigned by the server to each
// stored document. Revisions compare for byte equality and drive the
// optimistic concurrency checks via the If-Match and If-None-Match
// headers.
type Revision string

// String returns the revision token.
func (r Revision) String() string { return string(r) }

// DocumentHeader holds the identity attributes of a stored document: its
// id, key and revision.
type DocumentHeader struct {
	ID       DocumentID  `json:"_id"`
	Key      DocumentKey `json:"_key"`
	Revision Revision    `json:"_rev"`
}

// UpdatedDocumentHeader is the header returned by modify and replace
// operations. It additionally carries the revision the document had before
// the operation.
type UpdatedDocumentHeader struct {
	ID          DocumentID  `json:"_id"`
	Key         DocumentKey `json:"_key"`
	Revision    Revision    `json:"_rev"`
	OldRevision Revision    `json:"_oldRev"`
}

// Document is a document as stored in a collection: the identity header
// plus the user-defined content of type T.
//
// On the wire a document is a flat JSON object mixing the reserved fields
// "_id", "_key" and "_rev" with the arbitrary fields of the content. The
// JSON methods of this type lift the reserved fields out; they are never
// passed through to T.
type Document[T any] struct {
	id       DocumentID
	key      DocumentKey
	revision Revision
	content  T
}

// NewDocument constructs a document from its identity attributes and
// content. Documents are normally produced by deserialization; this
// constructor mainly serves tests and fixtures.
func NewDocument[T any](id DocumentID, key DocumentKey, revision Revision, content T) Document[T] {
	return Document[T]{id: id, key: key, revision: revision, content: content}
}

// ID returns the qualified id of this document.
func (d Document[T]) ID() DocumentID { return d.id }

// Key returns the key of this document.
func (d Document[T]) Key() DocumentKey { return d.key }

// Revision returns the revision of this document.
func (d Document[T]) Revision() Revision { return d.revision }

// Content returns the user-defined content of this document.
func (d Document[T]) Content() T { return d.content }

// Header returns the identity header of this document.
func (d Document[T]) Header() DocumentHeader {
	return DocumentHeader{ID: d.id, Key: d.key, Revision: d.revision}
}

// MarshalJSON serializes the document as a flat object containing "_id",
// "_key", "_rev" and the fields of the content. The content must
// serialize into a JSON object.
func (d Document[T]) MarshalJSON() ([]byte, error) {
	fields, err := contentAsObject(d.content)
	if err != nil {
		return nil, err
	}
	fields[FieldEntityID] = mustRaw(d.id.String())
	fields[FieldEntityKey] = mustRaw(d.key.String())
	fields[FieldEntityRevision] = mustRaw(d.revision.String())
	return json.Marshal(fields)
}

// UnmarshalJSON parses a document wire object. The reserved fields "_id",
// "_key" and "_rev" are required; all remaining fields materialize the
// content, except when the server sent a "new" or "old" sub-object, which
// then replaces the in-line fields as the content source.
func (d *Document[T]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var id, key, revision, content json.RawMessage
	rest := make(map[string]json.RawMessage, len(fields))
	for name, value := range fields {
		switch name {
		case FieldEntityID:
			id = value
		case FieldEntityKey:
			key = value
		case FieldEntityRevision:
			revision = value
		case FieldEntityNew, FieldEntityOld:
			content = value
		case FieldEntityOldRev:
			// consumed, never passed through to the content
		default:
			rest[name] = value
		}
	}

	switch {
	case id == nil:
		return fmt.Errorf("missing field %q", FieldEntityID)
	case key == nil:
		return fmt.Errorf("missing field %q", FieldEntityKey)
	case revision == nil:
		return fmt.Errorf("missing field %q", FieldEntityRevision)
	}

	if err := json.Unmarshal(id, &d.id); err != nil {
		return err
	}
	if err := json.Unmarshal(key, &d.key); err != nil {
		return err
	}
	var rev string
	if err := json.Unmarshal(revision, &rev); err != nil {
		return err
	}
	d.revision = Revision(rev)

	if content == nil {
		remainder, err := json.Marshal(rest)
		if err != nil {
			return err
		}
		content = remainder
	}
	return json.Unmarshal(content, &d.content)
}

// NewDocumentValue describes a document that is going to be inserted into
// a collection: the content plus an optional explicit key. When no key is
// given the server generates one.
type NewDocumentValue[T any] struct {
	key     *DocumentKey
	content T
}

// FromContent constructs a new document from the given content, leaving
// key generation to the server.
func FromContent[T any](content T) NewDocumentValue[T] {
	return NewDocumentValue[T]{content: content}
}

// WithKey sets an explicit key for the new document.
func (n NewDocumentValue[T]) WithKey(key DocumentKey) NewDocumentValue[T] {
	n.key = &key
	return n
}

// Key returns the explicit key of this new document, or false when the
// server shall generate one.
func (n NewDocumentValue[T]) Key() (DocumentKey, bool) {
	if n.key == nil {
		return "", false
	}
	return *n.key, true
}

// Content returns the content of this new document.
func (n NewDocumentValue[T]) Content() T { return n.content }

// MarshalJSON serializes the content and, when an explicit key is set,
// injects it as the "_key" field. Content that does not serialize into a
// JSON object is rejected when a key has to be injected.
func (n NewDocumentValue[T]) MarshalJSON() ([]byte, error) {
	if n.key == nil {
		return json.Marshal(n.content)
	}
	fields, err := contentAsObject(n.content)
	if err != nil {
		return nil, err
	}
	fields[FieldEntityKey] = mustRaw(n.key.String())
	return json.Marshal(fields)
}

// DocumentUpdate describes a partial update of a stored document: the key
// of the document, an optional revision for the concurrency check and the
// fields to change.
type DocumentUpdate[T any] struct {
	key      DocumentKey
	revision *Revision
	content  T
}

// NewDocumentUpdate constructs an update of the document with the given
// key.
func NewDocumentUpdate[T any](key DocumentKey, content T) DocumentUpdate[T] {
	return DocumentUpdate[T]{key: key, content: content}
}

// WithRevision sets the expected revision of the document to update.
func (u DocumentUpdate[T]) WithRevision(revision Revision) DocumentUpdate[T] {
	u.revision = &revision
	return u
}

// Key returns the key of the document to update.
func (u DocumentUpdate[T]) Key() DocumentKey { return u.key }

// Content returns the fields to change.
func (u DocumentUpdate[T]) Content() T { return u.content }

// MarshalJSON serializes the changed fields with the "_key" field (and the
// "_rev" field when a revision is set) injected.
func (u DocumentUpdate[T]) MarshalJSON() ([]byte, error) {
	fields, err := contentAsObject(u.content)
	if err != nil {
		return nil, err
	}
	fields[FieldEntityKey] = mustRaw(u.key.String())
	if u.revision != nil {
		fields[FieldEntityRevision] = mustRaw(u.revision.String())
	}
	return json.Marshal(fields)
}

// UpdatedDocument is the result of a modify or replace operation. Old and
// new content are present only when the operation requested them.
type UpdatedDocument[Old, New any] struct {
	id          DocumentID
	key         DocumentKey
	revision    Revision
	oldRevision Revision
	oldContent  *Old
	newContent  *New
}

// ID returns the qualified id of the updated document.
func (d UpdatedDocument[Old, New]) ID() DocumentID { return d.id }

// Key returns the key of the updated document.
func (d UpdatedDocument[Old, New]) Key() DocumentKey { return d.key }

// Revision returns the revision after the update.
func (d UpdatedDocument[Old, New]) Revision() Revision { return d.revision }

// OldRevision returns the revision before the update.
func (d UpdatedDocument[Old, New]) OldRevision() Revision { return d.oldRevision }

// OldContent returns the content before the update, when the operation
// requested it.
func (d UpdatedDocument[Old, New]) OldContent() (Old, bool) {
	if d.oldContent == nil {
		var zero Old
		return zero, false
	}
	return *d.oldContent, true
}

// NewContent returns the content after the update, when the operation
// requested it.
func (d UpdatedDocument[Old, New]) NewContent() (New, bool) {
	if d.newContent == nil {
		var zero New
		return zero, false
	}
	return *d.newContent, true
}

// UnmarshalJSON parses the update result envelope. The fields "_id",
// "_key", "_rev" and "_oldRev" are required; the optional "old" and "new"
// sub-objects carry the content before and after the update.
func (d *UpdatedDocument[Old, New]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var id, key, revision, oldRevision, oldContent, newContent json.RawMessage
	for name, value := range fields {
		switch name {
		case FieldEntityID:
			id = value
		case FieldEntityKey:
			key = value
		case FieldEntityRevision:
			revision = value
		case FieldEntityOldRev:
			oldRevision = value
		case FieldEntityOld:
			oldContent = value
		case FieldEntityNew:
			newContent = value
		}
	}

	switch {
	case id == nil:
		return fmt.Errorf("missing field %q", FieldEntityID)
	case key == nil:
		return fmt.Errorf("missing field %q", FieldEntityKey)
	case revision == nil:
		return fmt.Errorf("missing field %q", FieldEntityRevision)
	case oldRevision == nil:
		return fmt.Errorf("missing field %q", FieldEntityOldRev)
	}

	if err := json.Unmarshal(id, &d.id); err != nil {
		return err
	}
	if err := json.Unmarshal(key, &d.key); err != nil {
		return err
	}
	var rev, oldRev string
	if err := json.Unmarshal(revision, &rev); err != nil {
		return err
	}
	if err := json.Unmarshal(oldRevision, &oldRev); err != nil {
		return err
	}
	d.revision = Revision(rev)
	d.oldRevision = Revision(oldRev)

	if oldContent != nil {
		d.oldContent = new(Old)
		if err := json.Unmarshal(oldContent, d.oldContent); err != nil {
			return err
		}
	}
	if newContent != nil {
		d.newContent = new(New)
		if err := json.Unmarshal(newContent, d.newContent); err != nil {
			return err
		}
	}
	return nil
}

// contentAsObject serializes the given content and requires the result to
// be a JSON object, returned as its raw fields.
func contentAsObject(content any) (map[string]json.RawMessage, error) {
	encoded, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, fmt.Errorf("invalid document content, only types that serialize into valid JSON objects are supported, but got: %s", encoded)
	}
	return fields, nil
}

func mustRaw(value string) json.RawMessage {
	encoded, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return encoded
}
