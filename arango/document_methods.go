// Method calls for the document operations of the REST API.

package arango

import "arango.evalgo.org/api"

// InsertDocument creates a single document in a collection. The result is
// the header of the stored document.
type InsertDocument[T any] struct {
	collectionName string
	document       NewDocumentValue[T]
	returnNew      bool
	waitForSync    *bool
}

// NewInsertDocument constructs the method call for inserting the given new
// document into the named collection.
func NewInsertDocument[T any](collectionName string, document NewDocumentValue[T]) *InsertDocument[T] {
	return &InsertDocument[T]{collectionName: collectionName, document: document}
}

// NewInsertDocumentReturnNew constructs the method call for inserting the
// given new document and returning the complete stored document. Execute
// it with Document[T] as the result type.
func NewInsertDocumentReturnNew[T any](collectionName string, document NewDocumentValue[T]) *InsertDocument[T] {
	return &InsertDocument[T]{collectionName: collectionName, document: document, returnNew: true}
}

// WithWaitForSync forces the server to synchronize the collection to disk
// before it answers.
func (m *InsertDocument[T]) WithWaitForSync(waitForSync bool) *InsertDocument[T] {
	m.waitForSync = &waitForSync
	return m
}

// CollectionName returns the name of the collection to insert into.
func (m *InsertDocument[T]) CollectionName() string { return m.collectionName }

// Document returns the new document to insert.
func (m *InsertDocument[T]) Document() NewDocumentValue[T] { return m.document }

// ReturnType declares the result envelope of this method call.
func (m *InsertDocument[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *InsertDocument[T]) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *InsertDocument[T]) Path() string {
	return PathAPIDocument + "/" + m.collectionName
}

// Parameters returns the query parameters of this method call.
func (m *InsertDocument[T]) Parameters() api.Parameters {
	var params api.Parameters
	params.Add(ParamReturnNew, m.returnNew)
	if m.waitForSync != nil {
		params.Add(ParamWaitForSync, *m.waitForSync)
	}
	return params
}

// Header returns the header parameters of this method call.
func (m *InsertDocument[T]) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *InsertDocument[T]) Content() any { return m.document }

// InsertDocuments creates multiple documents in a collection with one
// call. The result is a per-document list of headers or errors; a failure
// for one document does not fail the whole operation.
type InsertDocuments[T any] struct {
	collectionName string
	documents      []NewDocumentValue[T]
	returnNew      bool
	waitForSync    *bool
}

// NewInsertDocuments constructs the method call for inserting the given
// new documents into the named collection.
func NewInsertDocuments[T any](collectionName string, documents []NewDocumentValue[T]) *InsertDocuments[T] {
	return &InsertDocuments[T]{collectionName: collectionName, documents: documents}
}

// NewInsertDocumentsReturnNew constructs the method call for inserting the
// given new documents and returning the complete stored documents.
func NewInsertDocumentsReturnNew[T any](collectionName string, documents []NewDocumentValue[T]) *InsertDocuments[T] {
	return &InsertDocuments[T]{collectionName: collectionName, documents: documents, returnNew: true}
}

// WithWaitForSync forces the server to synchronize the collection to disk
// before it answers.
func (m *InsertDocuments[T]) WithWaitForSync(waitForSync bool) *InsertDocuments[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *InsertDocuments[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *InsertDocuments[T]) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *InsertDocuments[T]) Path() string {
	return PathAPIDocument + "/" + m.collectionName
}

// Parameters returns the query parameters of this method call.
func (m *InsertDocuments[T]) Parameters() api.Parameters {
	var params api.Parameters
	params.Add(ParamReturnNew, m.returnNew)
	if m.waitForSync != nil {
		params.Add(ParamWaitForSync, *m.waitForSync)
	}
	return params
}

// Header returns the header parameters of this method call.
func (m *InsertDocuments[T]) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *InsertDocuments[T]) Content() any { return m.documents }

// GetDocument reads a single document. Execute it with Document[T] as the
// result type.
type GetDocument struct {
	id         DocumentID
	ifMatch    Revision
	ifNonMatch Revision
}

// NewGetDocument constructs the method call for reading the document with
// the given id.
func NewGetDocument(id DocumentID) *GetDocument {
	return &GetDocument{id: id}
}

// WithIfMatch makes the read fail unless the stored revision matches.
func (m *GetDocument) WithIfMatch(revision Revision) *GetDocument {
	m.ifMatch = revision
	return m
}

// WithIfNonMatch makes the read answer 304 when the stored revision still
// matches.
func (m *GetDocument) WithIfNonMatch(revision Revision) *GetDocument {
	m.ifNonMatch = revision
	return m
}

// ID returns the id of the document to read.
func (m *GetDocument) ID() DocumentID { return m.id }

// ReturnType declares the result envelope of this method call.
func (m *GetDocument) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetDocument) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetDocument) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

// Parameters returns the query parameters of this method call.
func (m *GetDocument) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the revision check headers of this method call.
func (m *GetDocument) Header() api.Parameters {
	return revisionHeader(m.ifMatch, m.ifNonMatch)
}

// Content returns the body of this method call.
func (m *GetDocument) Content() any { return nil }

// GetDocumentHeader reads the header data of a document without its
// content, via a HEAD request.
type GetDocumentHeader struct {
	id         DocumentID
	ifMatch    Revision
	ifNonMatch Revision
}

// NewGetDocumentHeader constructs the method call for reading the header
// of the document with the given id.
func NewGetDocumentHeader(id DocumentID) *GetDocumentHeader {
	return &GetDocumentHeader{id: id}
}

// WithIfMatch makes the read fail unless the stored revision matches.
func (m *GetDocumentHeader) WithIfMatch(revision Revision) *GetDocumentHeader {
	m.ifMatch = revision
	return m
}

// WithIfNonMatch makes the read answer 304 when the stored revision still
// matches.
func (m *GetDocumentHeader) WithIfNonMatch(revision Revision) *GetDocumentHeader {
	m.ifNonMatch = revision
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *GetDocumentHeader) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetDocumentHeader) Operation() api.Operation { return api.OperationReadHeader }

// Path returns the resource path of this method call.
func (m *GetDocumentHeader) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

// Parameters returns the query parameters of this method call.
func (m *GetDocumentHeader) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the revision check headers of this method call.
func (m *GetDocumentHeader) Header() api.Parameters {
	return revisionHeader(m.ifMatch, m.ifNonMatch)
}

// Content returns the body of this method call.
func (m *GetDocumentHeader) Content() any { return nil }

// ReplaceDocument replaces the complete content of a document. Execute it
// with UpdatedDocument[Old, New] as the result type.
type ReplaceDocument[T any] struct {
	id          DocumentID
	replacement DocumentUpdate[T]
	ifMatch     Revision
	returnOld   bool
	returnNew   bool
	ignoreRevs  *bool
	waitForSync *bool
}

// NewReplaceDocument constructs the method call for replacing the document
// with the given id by the given replacement.
func NewReplaceDocument[T any](id DocumentID, replacement DocumentUpdate[T]) *ReplaceDocument[T] {
	return &ReplaceDocument[T]{id: id, replacement: replacement}
}

// WithIfMatch makes the replace fail unless the stored revision matches.
func (m *ReplaceDocument[T]) WithIfMatch(revision Revision) *ReplaceDocument[T] {
	m.ifMatch = revision
	return m
}

// WithReturnOld requests the content before the replace in the result.
func (m *ReplaceDocument[T]) WithReturnOld(returnOld bool) *ReplaceDocument[T] {
	m.returnOld = returnOld
	return m
}

// WithReturnNew requests the content after the replace in the result.
func (m *ReplaceDocument[T]) WithReturnNew(returnNew bool) *ReplaceDocument[T] {
	m.returnNew = returnNew
	return m
}

// WithIgnoreRevisions controls whether a "_rev" field in the replacement
// content takes part in the concurrency check.
func (m *ReplaceDocument[T]) WithIgnoreRevisions(ignore bool) *ReplaceDocument[T] {
	m.ignoreRevs = &ignore
	return m
}

// WithWaitForSync forces the server to synchronize the collection to disk
// before it answers.
func (m *ReplaceDocument[T]) WithWaitForSync(waitForSync bool) *ReplaceDocument[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *ReplaceDocument[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ReplaceDocument[T]) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *ReplaceDocument[T]) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

// Parameters returns the query parameters of this method call.
func (m *ReplaceDocument[T]) Parameters() api.Parameters {
	var params api.Parameters
	if m.returnOld {
		params.Add(ParamReturnOld, true)
	}
	if m.returnNew {
		params.Add(ParamReturnNew, true)
	}
	if m.ignoreRevs != nil {
		params.Add(ParamIgnoreRevisions, *m.ignoreRevs)
	}
	if m.waitForSync != nil {
		params.Add(ParamWaitForSync, *m.waitForSync)
	}
	return params
}

// Header returns the revision check headers of this method call.
func (m *ReplaceDocument[T]) Header() api.Parameters {
	return revisionHeader(m.ifMatch, "")
}

// Content returns the body of this method call.
func (m *ReplaceDocument[T]) Content() any { return m.replacement }

// ModifyDocument partially updates a document: fields present in the
// update are changed, all others stay untouched. Execute it with
// UpdatedDocument[Old, New] as the result type.
type ModifyDocument[T any] struct {
	id           DocumentID
	update       DocumentUpdate[T]
	ifMatch      Revision
	returnOld    bool
	returnNew    bool
	keepNull     *bool
	mergeObjects *bool
	ignoreRevs   *bool
	waitForSync  *bool
}

// NewModifyDocument constructs the method call for partially updating the
// document with the given id.
func NewModifyDocument[T any](id DocumentID, update DocumentUpdate[T]) *ModifyDocument[T] {
	return &ModifyDocument[T]{id: id, update: update}
}

// WithIfMatch makes the update fail unless the stored revision matches.
func (m *ModifyDocument[T]) WithIfMatch(revision Revision) *ModifyDocument[T] {
	m.ifMatch = revision
	return m
}

// WithReturnOld requests the content before the update in the result.
func (m *ModifyDocument[T]) WithReturnOld(returnOld bool) *ModifyDocument[T] {
	m.returnOld = returnOld
	return m
}

// WithReturnNew requests the content after the update in the result.
func (m *ModifyDocument[T]) WithReturnNew(returnNew bool) *ModifyDocument[T] {
	m.returnNew = returnNew
	return m
}

// WithKeepNull controls whether null values in the update delete the
// corresponding fields instead of storing null.
func (m *ModifyDocument[T]) WithKeepNull(keepNull bool) *ModifyDocument[T] {
	m.keepNull = &keepNull
	return m
}

// WithMergeObjects controls whether object values in the update merge into
// existing objects instead of replacing them.
func (m *ModifyDocument[T]) WithMergeObjects(mergeObjects bool) *ModifyDocument[T] {
	m.mergeObjects = &mergeObjects
	return m
}

// WithIgnoreRevisions controls whether a "_rev" field in the update
// content takes part in the concurrency check.
func (m *ModifyDocument[T]) WithIgnoreRevisions(ignore bool) *ModifyDocument[T] {
	m.ignoreRevs = &ignore
	return m
}

// WithWaitForSync forces the server to synchronize the collection to disk
// before it answers.
func (m *ModifyDocument[T]) WithWaitForSync(waitForSync bool) *ModifyDocument[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *ModifyDocument[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ModifyDocument[T]) Operation() api.Operation { return api.OperationModify }

// Path returns the resource path of this method call.
func (m *ModifyDocument[T]) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

// Parameters returns the query parameters of this method call.
func (m *ModifyDocument[T]) Parameters() api.Parameters {
	var params api.Parameters
	if m.returnOld {
		params.Add(ParamReturnOld, true)
	}
	if m.returnNew {
		params.Add(ParamReturnNew, true)
	}
	if m.keepNull != nil {
		params.Add(ParamKeepNull, *m.keepNull)
	}
	if m.mergeObjects != nil {
		params.Add(ParamMergeObjects, *m.mergeObjects)
	}
	if m.ignoreRevs != nil {
		params.Add(ParamIgnoreRevisions, *m.ignoreRevs)
	}
	if m.waitForSync != nil {
		params.Add(ParamWaitForSync, *m.waitForSync)
	}
	return params
}

// Header returns the revision check headers of this method call.
func (m *ModifyDocument[T]) Header() api.Parameters {
	return revisionHeader(m.ifMatch, "")
}

// Content returns the body of this method call.
func (m *ModifyDocument[T]) Content() any { return m.update }

// DeleteDocument removes a document from its collection. The result is the
// header of the removed document, or Document[Old] when the old content is
// requested.
type DeleteDocument struct {
	id          DocumentID
	ifMatch     Revision
	returnOld   bool
	waitForSync *bool
}

// NewDeleteDocument constructs the method call for removing the document
// with the given id.
func NewDeleteDocument(id DocumentID) *DeleteDocument {
	return &DeleteDocument{id: id}
}

// NewDeleteDocumentReturnOld constructs the method call for removing the
// document with the given id and returning its last stored content.
func NewDeleteDocumentReturnOld(id DocumentID) *DeleteDocument {
	return &DeleteDocument{id: id, returnOld: true}
}

// WithIfMatch makes the delete fail unless the stored revision matches.
func (m *DeleteDocument) WithIfMatch(revision Revision) *DeleteDocument {
	m.ifMatch = revision
	return m
}

// WithWaitForSync forces the server to synchronize the collection to disk
// before it answers.
func (m *DeleteDocument) WithWaitForSync(waitForSync bool) *DeleteDocument {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *DeleteDocument) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *DeleteDocument) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *DeleteDocument) Path() string {
	return PathAPIDocument + "/" + m.id.String()
}

// Parameters returns the query parameters of this method call.
func (m *DeleteDocument) Parameters() api.Parameters {
	var params api.Parameters
	if m.returnOld {
		params.Add(ParamReturnOld, true)
	}
	if m.waitForSync != nil {
		params.Add(ParamWaitForSync, *m.waitForSync)
	}
	return params
}

// Header returns the revision check headers of this method call.
func (m *DeleteDocument) Header() api.Parameters {
	return revisionHeader(m.ifMatch, "")
}

// Content returns the body of this method call.
func (m *DeleteDocument) Content() any { return nil }

// GetDocuments reads multiple documents from one collection with one call.
// The result is a per-document list of documents or errors. The REST API
// implements this as a PUT with the onlyget parameter set.
type GetDocuments struct {
	collectionName string
	keys           []DocumentKey
}

// NewGetDocuments constructs the method call for reading the documents
// with the given keys from the named collection.
func NewGetDocuments(collectionName string, keys []DocumentKey) *GetDocuments {
	return &GetDocuments{collectionName: collectionName, keys: keys}
}

// ReturnType declares the result envelope of this method call.
func (m *GetDocuments) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetDocuments) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *GetDocuments) Path() string {
	return PathAPIDocument + "/" + m.collectionName
}

// Parameters returns the query parameters of this method call.
func (m *GetDocuments) Parameters() api.Parameters {
	var params api.Parameters
	params.Add(ParamOnlyGet, true)
	return params
}

// Header returns the header parameters of this method call.
func (m *GetDocuments) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetDocuments) Content() any { return m.keys }

func revisionHeader(ifMatch, ifNonMatch Revision) api.Parameters {
	var header api.Parameters
	if ifMatch != "" {
		header.Add(HeaderIfMatch, ifMatch.String())
	}
	if ifNonMatch != "" {
		header.Add(HeaderIfNonMatch, ifNonMatch.String())
	}
	return header
}
