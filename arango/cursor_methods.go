// Method calls for the cursor and AQL operations of the REST API.

package arango

import "arango.evalgo.org/api"

// CreateCursor executes an AQL query and creates a cursor over its result
// set. Execute it with Cursor[T] as the result type.
type CreateCursor struct {
	cursor NewCursor
}

// NewCreateCursor constructs the method call for creating a cursor with
// the given parameters.
func NewCreateCursor(cursor NewCursor) *CreateCursor {
	return &CreateCursor{cursor: cursor}
}

// NewCreateCursorForQuery constructs the method call for executing the
// given query with default cursor parameters.
func NewCreateCursorForQuery(query *api.Query) *CreateCursor {
	return &CreateCursor{cursor: NewCursorForQuery(query)}
}

// Cursor returns the parameters of the cursor to create.
func (m *CreateCursor) Cursor() NewCursor { return m.cursor }

// ReturnType declares the result envelope of this method call.
func (m *CreateCursor) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *CreateCursor) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *CreateCursor) Path() string { return PathAPICursor }

// Parameters returns the query parameters of this method call.
func (m *CreateCursor) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *CreateCursor) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *CreateCursor) Content() any { return m.cursor }

// ReadNextBatchFromCursor fetches the next batch from an existing cursor.
// Execute it with Cursor[T] as the result type.
type ReadNextBatchFromCursor struct {
	cursorID string
}

// NewReadNextBatchFromCursor constructs the method call for fetching the
// next batch from the cursor with the given id.
func NewReadNextBatchFromCursor(cursorID string) *ReadNextBatchFromCursor {
	return &ReadNextBatchFromCursor{cursorID: cursorID}
}

// ReturnType declares the result envelope of this method call.
func (m *ReadNextBatchFromCursor) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ReadNextBatchFromCursor) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *ReadNextBatchFromCursor) Path() string {
	return PathAPICursor + "/" + m.cursorID
}

// Parameters returns the query parameters of this method call.
func (m *ReadNextBatchFromCursor) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ReadNextBatchFromCursor) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ReadNextBatchFromCursor) Content() any { return nil }

// DeleteCursor removes a partially consumed cursor from the server before
// its timeout.
type DeleteCursor struct {
	cursorID string
}

// NewDeleteCursor constructs the method call for deleting the cursor with
// the given id.
func NewDeleteCursor(cursorID string) *DeleteCursor {
	return &DeleteCursor{cursorID: cursorID}
}

// ReturnType declares the result envelope of this method call.
func (m *DeleteCursor) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldID, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *DeleteCursor) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *DeleteCursor) Path() string {
	return PathAPICursor + "/" + m.cursorID
}

// Parameters returns the query parameters of this method call.
func (m *DeleteCursor) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *DeleteCursor) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *DeleteCursor) Content() any { return nil }

type queryContent struct {
	Query string `json:"query"`
}

// ParseQuery validates an AQL query without executing it. The result is
// ParsedQuery.
type ParseQuery struct {
	query string
}

// NewParseQuery constructs the method call for parsing the given AQL
// query string.
func NewParseQuery(query string) *ParseQuery {
	return &ParseQuery{query: query}
}

// ReturnType declares the result envelope of this method call.
func (m *ParseQuery) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ParseQuery) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *ParseQuery) Path() string { return PathAPIQuery }

// Parameters returns the query parameters of this method call.
func (m *ParseQuery) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ParseQuery) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ParseQuery) Content() any { return queryContent{Query: m.query} }

// ExplainQuery explains how an AQL query would be executed, without
// executing it. The result is ExplainedQuery.
type ExplainQuery struct {
	cursor NewCursor
}

// NewExplainQuery constructs the method call for explaining the given
// query.
func NewExplainQuery(query *api.Query) *ExplainQuery {
	return &ExplainQuery{cursor: NewCursorForQuery(query)}
}

// NewExplainQueryWithOptions constructs the method call for explaining a
// query with explicit cursor parameters, e.g. to request all plans.
func NewExplainQueryWithOptions(cursor NewCursor) *ExplainQuery {
	return &ExplainQuery{cursor: cursor}
}

// ReturnType declares the result envelope of this method call.
func (m *ExplainQuery) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ExplainQuery) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *ExplainQuery) Path() string { return PathAPIExplain }

// Parameters returns the query parameters of this method call.
func (m *ExplainQuery) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ExplainQuery) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ExplainQuery) Content() any { return m.cursor }
