// The collection session: CRUD on documents and indexes within one
// collection.

package session

import (
	"context"

	"arango.evalgo.org/api"
	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
)

// CollectionSession drives the operations on one collection. It holds
// either just the collection name or the loaded collection entity; Fetch
// loads the entity into the session.
type CollectionSession struct {
	connector    *connector.Connector
	databaseName string
	name         string
	entity       *arango.Collection
}

// NewCollectionSession creates a session for operations on the named
// collection in the named database.
func NewCollectionSession(conn *connector.Connector, databaseName, name string) *CollectionSession {
	return &CollectionSession{connector: conn, databaseName: databaseName, name: name}
}

// DatabaseName returns the name of the database the collection lives in.
func (s *CollectionSession) DatabaseName() string { return s.databaseName }

// Name returns the name of the collection this session operates on.
func (s *CollectionSession) Name() string { return s.name }

// Entity returns the loaded collection entity, or false when only the
// name is known.
func (s *CollectionSession) Entity() (arango.Collection, bool) {
	if s.entity == nil {
		return arango.Collection{}, false
	}
	return *s.entity, true
}

func (s *CollectionSession) conn() *connector.Connection {
	return s.connector.Connection(s.databaseName)
}

// Fetch loads the collection entity from the server into a new session.
func (s *CollectionSession) Fetch(ctx context.Context) (*CollectionSession, error) {
	collection, err := connector.Execute[arango.Collection](
		ctx, s.conn(), arango.NewGetCollection(s.name))
	if err != nil {
		return nil, err
	}
	return &CollectionSession{
		connector:    s.connector,
		databaseName: s.databaseName,
		name:         collection.Name,
		entity:       &collection,
	}, nil
}

// Drop drops the collection this session operates on and returns the
// identifier of the dropped collection. The session must not be used
// afterwards.
func (s *CollectionSession) Drop(ctx context.Context) (string, error) {
	return connector.Execute[string](ctx, s.conn(), arango.NewDropCollection(s.name))
}

// Rename renames the collection this session operates on and returns a
// session for the renamed collection.
func (s *CollectionSession) Rename(ctx context.Context, newName string) (*CollectionSession, error) {
	collection, err := connector.Execute[arango.Collection](
		ctx, s.conn(), arango.NewRenameCollection(s.name, newName))
	if err != nil {
		return nil, err
	}
	return &CollectionSession{
		connector:    s.connector,
		databaseName: s.databaseName,
		name:         collection.Name,
		entity:       &collection,
	}, nil
}

// GetRevision reads the revision of the collection.
func (s *CollectionSession) GetRevision(ctx context.Context) (arango.CollectionRevision, error) {
	return connector.Execute[arango.CollectionRevision](
		ctx, s.conn(), arango.NewGetCollectionRevision(s.name))
}

// GetProperties reads the full property set of the collection.
func (s *CollectionSession) GetProperties(ctx context.Context) (arango.CollectionProperties, error) {
	return connector.Execute[arango.CollectionProperties](
		ctx, s.conn(), arango.NewGetCollectionProperties(s.name))
}

// ChangeProperties changes the changeable properties of the collection.
func (s *CollectionSession) ChangeProperties(ctx context.Context, updates arango.CollectionPropertiesUpdate) (arango.CollectionProperties, error) {
	return connector.Execute[arango.CollectionProperties](
		ctx, s.conn(), arango.NewChangeCollectionProperties(s.name, updates))
}

// InsertDocument inserts a new document into the collection and returns
// the header of the stored document.
func InsertDocument[T any](ctx context.Context, s *CollectionSession, document arango.NewDocumentValue[T]) (arango.DocumentHeader, error) {
	return connector.Execute[arango.DocumentHeader](
		ctx, s.conn(), arango.NewInsertDocument(s.name, document))
}

// InsertDocumentSynced inserts a new document and waits until the
// collection is synchronized to disk.
func InsertDocumentSynced[T any](ctx context.Context, s *CollectionSession, document arango.NewDocumentValue[T]) (arango.DocumentHeader, error) {
	return connector.Execute[arango.DocumentHeader](
		ctx, s.conn(), arango.NewInsertDocument(s.name, document).WithWaitForSync(true))
}

// InsertDocumentReturnNew inserts a new document and returns the complete
// stored document.
func InsertDocumentReturnNew[T any](ctx context.Context, s *CollectionSession, document arango.NewDocumentValue[T]) (arango.Document[T], error) {
	return connector.Execute[arango.Document[T]](
		ctx, s.conn(), arango.NewInsertDocumentReturnNew(s.name, document))
}

// InsertDocuments inserts multiple new documents with one call and
// returns a per-document list of headers or errors.
func InsertDocuments[T any](ctx context.Context, s *CollectionSession, documents []arango.NewDocumentValue[T]) (api.ResultList[arango.DocumentHeader], error) {
	return connector.Execute[api.ResultList[arango.DocumentHeader]](
		ctx, s.conn(), arango.NewInsertDocuments(s.name, documents))
}

// InsertDocumentsReturnNew inserts multiple new documents and returns a
// per-document list of the complete stored documents or errors.
func InsertDocumentsReturnNew[T any](ctx context.Context, s *CollectionSession, documents []arango.NewDocumentValue[T]) (api.ResultList[arango.Document[T]], error) {
	return connector.Execute[api.ResultList[arango.Document[T]]](
		ctx, s.conn(), arango.NewInsertDocumentsReturnNew(s.name, documents))
}

// GetDocumentWithKey reads the document with the given key from the
// collection.
func GetDocumentWithKey[T any](ctx context.Context, s *CollectionSession, key arango.DocumentKey) (arango.Document[T], error) {
	return connector.Execute[arango.Document[T]](
		ctx, s.conn(), arango.NewGetDocument(arango.NewDocumentID(s.name, key.String())))
}

// GetDocumentIfMatch reads the document with the given key, failing
// unless the stored revision matches.
func GetDocumentIfMatch[T any](ctx context.Context, s *CollectionSession, key arango.DocumentKey, ifMatch arango.Revision) (arango.Document[T], error) {
	method := arango.NewGetDocument(arango.NewDocumentID(s.name, key.String())).WithIfMatch(ifMatch)
	return connector.Execute[arango.Document[T]](ctx, s.conn(), method)
}

// GetDocumentIfNonMatch reads the document with the given key only when
// the stored revision differs from the given one.
func GetDocumentIfNonMatch[T any](ctx context.Context, s *CollectionSession, key arango.DocumentKey, ifNonMatch arango.Revision) (arango.Document[T], error) {
	method := arango.NewGetDocument(arango.NewDocumentID(s.name, key.String())).WithIfNonMatch(ifNonMatch)
	return connector.Execute[arango.Document[T]](ctx, s.conn(), method)
}

// GetDocumentsWithKeys reads multiple documents with one call and returns
// a per-document list of documents or errors.
func GetDocumentsWithKeys[T any](ctx context.Context, s *CollectionSession, keys []arango.DocumentKey) (api.ResultList[arango.Document[T]], error) {
	return connector.Execute[api.ResultList[arango.Document[T]]](
		ctx, s.conn(), arango.NewGetDocuments(s.name, keys))
}

// ReplaceDocument replaces the content of the document named by the
// replacement's key.
func ReplaceDocument[Old, New any](ctx context.Context, s *CollectionSession, replacement arango.DocumentUpdate[New]) (arango.UpdatedDocument[Old, New], error) {
	id := arango.NewDocumentID(s.name, replacement.Key().String())
	return connector.Execute[arango.UpdatedDocument[Old, New]](
		ctx, s.conn(), arango.NewReplaceDocument(id, replacement))
}

// ReplaceDocumentIfMatch replaces the content of a document, failing
// unless the stored revision matches.
func ReplaceDocumentIfMatch[Old, New any](ctx context.Context, s *CollectionSession, replacement arango.DocumentUpdate[New], ifMatch arango.Revision) (arango.UpdatedDocument[Old, New], error) {
	id := arango.NewDocumentID(s.name, replacement.Key().String())
	method := arango.NewReplaceDocument(id, replacement).WithIfMatch(ifMatch)
	return connector.Execute[arango.UpdatedDocument[Old, New]](ctx, s.conn(), method)
}

// ModifyDocument partially updates the document named by the update's
// key.
func ModifyDocument[Old, New, Upd any](ctx context.Context, s *CollectionSession, update arango.DocumentUpdate[Upd]) (arango.UpdatedDocument[Old, New], error) {
	id := arango.NewDocumentID(s.name, update.Key().String())
	return connector.Execute[arango.UpdatedDocument[Old, New]](
		ctx, s.conn(), arango.NewModifyDocument(id, update))
}

// ModifyDocumentIfMatch partially updates a document, failing unless the
// stored revision matches.
func ModifyDocumentIfMatch[Old, New, Upd any](ctx context.Context, s *CollectionSession, update arango.DocumentUpdate[Upd], ifMatch arango.Revision) (arango.UpdatedDocument[Old, New], error) {
	id := arango.NewDocumentID(s.name, update.Key().String())
	method := arango.NewModifyDocument(id, update).WithIfMatch(ifMatch)
	return connector.Execute[arango.UpdatedDocument[Old, New]](ctx, s.conn(), method)
}

// DeleteDocument removes the document with the given key and returns its
// header.
func (s *CollectionSession) DeleteDocument(ctx context.Context, key arango.DocumentKey) (arango.DocumentHeader, error) {
	return connector.Execute[arango.DocumentHeader](
		ctx, s.conn(), arango.NewDeleteDocument(arango.NewDocumentID(s.name, key.String())))
}

// DeleteDocumentIfMatch removes the document with the given key, failing
// unless the stored revision matches.
func (s *CollectionSession) DeleteDocumentIfMatch(ctx context.Context, key arango.DocumentKey, ifMatch arango.Revision) (arango.DocumentHeader, error) {
	method := arango.NewDeleteDocument(arango.NewDocumentID(s.name, key.String())).WithIfMatch(ifMatch)
	return connector.Execute[arango.DocumentHeader](ctx, s.conn(), method)
}

// DeleteDocumentReturnOld removes the document with the given key and
// returns its last stored content.
func DeleteDocumentReturnOld[Old any](ctx context.Context, s *CollectionSession, key arango.DocumentKey) (arango.Document[Old], error) {
	method := arango.NewDeleteDocumentReturnOld(arango.NewDocumentID(s.name, key.String()))
	return connector.Execute[arango.Document[Old]](ctx, s.conn(), method)
}

// EnsureHashIndex creates a hash index over the given fields unless an
// equivalent index exists.
func (s *CollectionSession) EnsureHashIndex(ctx context.Context, fields []string, unique, sparse, deduplicate bool) (arango.Index, error) {
	return connector.Execute[arango.Index](
		ctx, s.conn(), arango.NewCreateIndex(s.name, arango.HashIndexOn(fields, unique, sparse, deduplicate)))
}

// EnsureSkipListIndex creates a skip-list index over the given fields
// unless an equivalent index exists.
func (s *CollectionSession) EnsureSkipListIndex(ctx context.Context, fields []string, unique, sparse, deduplicate bool) (arango.Index, error) {
	return connector.Execute[arango.Index](
		ctx, s.conn(), arango.NewCreateIndex(s.name, arango.SkipListIndexOn(fields, unique, sparse, deduplicate)))
}

// EnsurePersistentIndex creates a persistent index over the given fields
// unless an equivalent index exists.
func (s *CollectionSession) EnsurePersistentIndex(ctx context.Context, fields []string, unique, sparse bool) (arango.Index, error) {
	return connector.Execute[arango.Index](
		ctx, s.conn(), arango.NewCreateIndex(s.name, arango.PersistentIndexOn(fields, unique, sparse)))
}

// EnsureGeoLocationIndex creates a geo index over one location field
// unless an equivalent index exists.
func (s *CollectionSession) EnsureGeoLocationIndex(ctx context.Context, locationField string, geoJSON bool) (arango.Index, error) {
	return connector.Execute[arango.Index](
		ctx, s.conn(), arango.NewCreateIndex(s.name, arango.GeoLocationIndexOn(locationField, geoJSON)))
}

// EnsureGeoLatLngIndex creates a geo index over separate latitude and
// longitude fields unless an equivalent index exists.
func (s *CollectionSession) EnsureGeoLatLngIndex(ctx context.Context, latitudeField, longitudeField string) (arango.Index, error) {
	return connector.Execute[arango.Index](
		ctx, s.conn(), arango.NewCreateIndex(s.name, arango.GeoLatLngIndexOn(latitudeField, longitudeField)))
}

// EnsureFulltextIndex creates a fulltext index over one field unless an
// equivalent index exists.
func (s *CollectionSession) EnsureFulltextIndex(ctx context.Context, field string, minLength uint32) (arango.Index, error) {
	return connector.Execute[arango.Index](
		ctx, s.conn(), arango.NewCreateIndex(s.name, arango.FulltextIndexOn(field, minLength)))
}

// GetIndex reads the index with the given key of this collection.
func (s *CollectionSession) GetIndex(ctx context.Context, key arango.IndexKey) (arango.Index, error) {
	return connector.Execute[arango.Index](
		ctx, s.conn(), arango.NewGetIndex(arango.NewIndexID(s.name, key.String())))
}

// GetIndexList lists all indexes of this collection.
func (s *CollectionSession) GetIndexList(ctx context.Context) ([]arango.Index, error) {
	return connector.Execute[[]arango.Index](ctx, s.conn(), arango.NewGetIndexList(s.name))
}

// DeleteIndex deletes the index with the given key of this collection and
// returns the id of the deleted index.
func (s *CollectionSession) DeleteIndex(ctx context.Context, key arango.IndexKey) (arango.IndexIDOption, error) {
	return connector.Execute[arango.IndexIDOption](
		ctx, s.conn(), arango.NewDeleteIndex(arango.NewIndexID(s.name, key.String())))
}
