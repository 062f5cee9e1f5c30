// Method calls for the graph operations of the REST API (the "gharial"
// interface). Gharial responses wrap their payload in operation-specific
// envelope fields like "graph", "graphs", "vertex", "edge", "collections"
// and "removed".

package arango

import "arango.evalgo.org/api"

// CreateGraph creates a named graph. The result is the created Graph.
type CreateGraph struct {
	graph NewGraph
}

// NewCreateGraph constructs the method call for creating a graph with the
// given properties.
func NewCreateGraph(graph NewGraph) *CreateGraph {
	return &CreateGraph{graph: graph}
}

// ReturnType declares the result envelope of this method call.
func (m *CreateGraph) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldGraph, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *CreateGraph) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *CreateGraph) Path() string { return PathAPIGharial }

// Parameters returns the query parameters of this method call.
func (m *CreateGraph) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *CreateGraph) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *CreateGraph) Content() any { return m.graph }

// GetGraph reads a named graph. The result is the Graph.
type GetGraph struct {
	name string
}

// NewGetGraph constructs the method call for reading the graph with the
// given name.
func NewGetGraph(name string) *GetGraph {
	return &GetGraph{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *GetGraph) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldGraph, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetGraph) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetGraph) Path() string { return PathAPIGharial + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *GetGraph) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetGraph) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *GetGraph) Content() any { return nil }

// ListGraphs retrieves all named graphs of the database. The result is a
// slice of Graph.
type ListGraphs struct{}

// NewListGraphs constructs the method call for listing all graphs.
func NewListGraphs() *ListGraphs {
	return &ListGraphs{}
}

// ReturnType declares the result envelope of this method call.
func (m *ListGraphs) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldGraphs, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListGraphs) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListGraphs) Path() string { return PathAPIGharial }

// Parameters returns the query parameters of this method call.
func (m *ListGraphs) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ListGraphs) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListGraphs) Content() any { return nil }

// DropGraph drops a named graph. The result reports whether the graph was
// removed.
type DropGraph struct {
	name string
}

// NewDropGraph constructs the method call for dropping the graph with the
// given name.
func NewDropGraph(name string) *DropGraph {
	return &DropGraph{name: name}
}

// ReturnType declares the result envelope of this method call.
func (m *DropGraph) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldRemoved, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *DropGraph) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *DropGraph) Path() string { return PathAPIGharial + "/" + m.name }

// Parameters returns the query parameters of this method call.
func (m *DropGraph) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *DropGraph) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *DropGraph) Content() any { return nil }

// AddVertexCollection adds a vertex collection to a graph. The result is
// the updated Graph.
type AddVertexCollection struct {
	graphName  string
	collection VertexCollection
}

// NewAddVertexCollection constructs the method call for adding the named
// vertex collection to the named graph.
func NewAddVertexCollection(graphName, collectionName string) *AddVertexCollection {
	return &AddVertexCollection{graphName: graphName, collection: VertexCollection{Collection: collectionName}}
}

// ReturnType declares the result envelope of this method call.
func (m *AddVertexCollection) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldGraph, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *AddVertexCollection) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *AddVertexCollection) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex
}

// Parameters returns the query parameters of this method call.
func (m *AddVertexCollection) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *AddVertexCollection) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *AddVertexCollection) Content() any { return m.collection }

// RemoveVertexCollection removes a vertex collection from a graph. The
// result is the updated Graph.
type RemoveVertexCollection struct {
	graphName      string
	collectionName string
}

// NewRemoveVertexCollection constructs the method call for removing the
// named vertex collection from the named graph.
func NewRemoveVertexCollection(graphName, collectionName string) *RemoveVertexCollection {
	return &RemoveVertexCollection{graphName: graphName, collectionName: collectionName}
}

// ReturnType declares the result envelope of this method call.
func (m *RemoveVertexCollection) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldGraph, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *RemoveVertexCollection) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *RemoveVertexCollection) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex + "/" + m.collectionName
}

// Parameters returns the query parameters of this method call.
func (m *RemoveVertexCollection) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *RemoveVertexCollection) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *RemoveVertexCollection) Content() any { return nil }

// ListVertexCollections retrieves the vertex collections of a graph. The
// result is a slice of collection names.
type ListVertexCollections struct {
	graphName string
}

// NewListVertexCollections constructs the method call for listing the
// vertex collections of the named graph.
func NewListVertexCollections(graphName string) *ListVertexCollections {
	return &ListVertexCollections{graphName: graphName}
}

// ReturnType declares the result envelope of this method call.
func (m *ListVertexCollections) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldCollections, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListVertexCollections) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListVertexCollections) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex
}

// Parameters returns the query parameters of this method call.
func (m *ListVertexCollections) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ListVertexCollections) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListVertexCollections) Content() any { return nil }

// AddEdgeDefinition adds an edge definition to a graph. The result is the
// updated Graph.
type AddEdgeDefinition struct {
	graphName string
	edge      EdgeDefinition
}

// NewAddEdgeDefinition constructs the method call for adding the given
// edge definition to the named graph.
func NewAddEdgeDefinition(graphName string, edge EdgeDefinition) *AddEdgeDefinition {
	return &AddEdgeDefinition{graphName: graphName, edge: edge}
}

// ReturnType declares the result envelope of this method call.
func (m *AddEdgeDefinition) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldGraph, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *AddEdgeDefinition) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *AddEdgeDefinition) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge
}

// Parameters returns the query parameters of this method call.
func (m *AddEdgeDefinition) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *AddEdgeDefinition) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *AddEdgeDefinition) Content() any { return m.edge }

// RemoveEdgeDefinition removes an edge definition from a graph. The result
// is the updated Graph.
type RemoveEdgeDefinition struct {
	graphName      string
	collectionName string
}

// NewRemoveEdgeDefinition constructs the method call for removing the edge
// definition of the named edge collection from the named graph.
func NewRemoveEdgeDefinition(graphName, collectionName string) *RemoveEdgeDefinition {
	return &RemoveEdgeDefinition{graphName: graphName, collectionName: collectionName}
}

// ReturnType declares the result envelope of this method call.
func (m *RemoveEdgeDefinition) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldGraph, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *RemoveEdgeDefinition) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *RemoveEdgeDefinition) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge + "/" + m.collectionName
}

// Parameters returns the query parameters of this method call.
func (m *RemoveEdgeDefinition) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *RemoveEdgeDefinition) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *RemoveEdgeDefinition) Content() any { return nil }

// ListEdgeCollections retrieves the edge collections of a graph. The
// result is a slice of collection names.
type ListEdgeCollections struct {
	graphName string
}

// NewListEdgeCollections constructs the method call for listing the edge
// collections of the named graph.
func NewListEdgeCollections(graphName string) *ListEdgeCollections {
	return &ListEdgeCollections{graphName: graphName}
}

// ReturnType declares the result envelope of this method call.
func (m *ListEdgeCollections) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldCollections, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ListEdgeCollections) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *ListEdgeCollections) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge
}

// Parameters returns the query parameters of this method call.
func (m *ListEdgeCollections) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *ListEdgeCollections) Header() api.Parameters { return api.Parameters{} }

// Content returns the body of this method call.
func (m *ListEdgeCollections) Content() any { return nil }

// gharialEntityMethod carries the attributes shared by all vertex and edge
// CRUD calls of the gharial interface.
type gharialEntityMethod struct {
	graphName      string
	collectionName string
	key            DocumentKey
	ifMatch        Revision
	ifNonMatch     Revision
	waitForSync    *bool
}

func (m *gharialEntityMethod) parameters() api.Parameters {
	var params api.Parameters
	if m.waitForSync != nil {
		params.Add(ParamWaitForSync, *m.waitForSync)
	}
	return params
}

func (m *gharialEntityMethod) header() api.Parameters {
	return revisionHeader(m.ifMatch, m.ifNonMatch)
}

// InsertVertex creates a vertex in a vertex collection of a graph. The
// result is the DocumentHeader of the stored vertex, wrapped in the
// "vertex" envelope field.
type InsertVertex[T any] struct {
	gharialEntityMethod
	vertex NewDocumentValue[T]
}

// NewInsertVertex constructs the method call for inserting the given
// vertex into the named vertex collection of the named graph.
func NewInsertVertex[T any](graphName, collectionName string, vertex NewDocumentValue[T]) *InsertVertex[T] {
	return &InsertVertex[T]{
		gharialEntityMethod: gharialEntityMethod{graphName: graphName, collectionName: collectionName},
		vertex:              vertex,
	}
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *InsertVertex[T]) WithWaitForSync(waitForSync bool) *InsertVertex[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *InsertVertex[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldVertex, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *InsertVertex[T]) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *InsertVertex[T]) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex + "/" + m.collectionName
}

// Parameters returns the query parameters of this method call.
func (m *InsertVertex[T]) Parameters() api.Parameters { return m.parameters() }

// Header returns the header parameters of this method call.
func (m *InsertVertex[T]) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *InsertVertex[T]) Content() any { return m.vertex }

// GetVertex reads a vertex from a vertex collection of a graph. Execute it
// with Document[T] as the result type.
type GetVertex struct {
	gharialEntityMethod
}

// NewGetVertex constructs the method call for reading the vertex with the
// given key from the named vertex collection of the named graph.
func NewGetVertex(graphName, collectionName string, key DocumentKey) *GetVertex {
	return &GetVertex{gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key}}
}

// WithIfMatch makes the read fail unless the stored revision matches.
func (m *GetVertex) WithIfMatch(revision Revision) *GetVertex {
	m.ifMatch = revision
	return m
}

// WithIfNonMatch makes the read answer 304 when the stored revision still
// matches.
func (m *GetVertex) WithIfNonMatch(revision Revision) *GetVertex {
	m.ifNonMatch = revision
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *GetVertex) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldVertex, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetVertex) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetVertex) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *GetVertex) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetVertex) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *GetVertex) Content() any { return nil }

// ReplaceVertex replaces the content of a vertex. The result is the
// UpdatedDocumentHeader of the vertex, wrapped in the "vertex" envelope
// field.
type ReplaceVertex[T any] struct {
	gharialEntityMethod
	content T
}

// NewReplaceVertex constructs the method call for replacing the vertex
// with the given key by the given content.
func NewReplaceVertex[T any](graphName, collectionName string, key DocumentKey, content T) *ReplaceVertex[T] {
	return &ReplaceVertex[T]{
		gharialEntityMethod: gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key},
		content:             content,
	}
}

// WithIfMatch makes the replace fail unless the stored revision matches.
func (m *ReplaceVertex[T]) WithIfMatch(revision Revision) *ReplaceVertex[T] {
	m.ifMatch = revision
	return m
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *ReplaceVertex[T]) WithWaitForSync(waitForSync bool) *ReplaceVertex[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *ReplaceVertex[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldVertex, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ReplaceVertex[T]) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *ReplaceVertex[T]) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *ReplaceVertex[T]) Parameters() api.Parameters { return m.parameters() }

// Header returns the header parameters of this method call.
func (m *ReplaceVertex[T]) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *ReplaceVertex[T]) Content() any { return m.content }

// ModifyVertex partially updates the content of a vertex. The result is
// the UpdatedDocumentHeader of the vertex, wrapped in the "vertex"
// envelope field.
type ModifyVertex[T any] struct {
	gharialEntityMethod
	update   T
	keepNull *bool
}

// NewModifyVertex constructs the method call for partially updating the
// vertex with the given key.
func NewModifyVertex[T any](graphName, collectionName string, key DocumentKey, update T) *ModifyVertex[T] {
	return &ModifyVertex[T]{
		gharialEntityMethod: gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key},
		update:              update,
	}
}

// WithIfMatch makes the update fail unless the stored revision matches.
func (m *ModifyVertex[T]) WithIfMatch(revision Revision) *ModifyVertex[T] {
	m.ifMatch = revision
	return m
}

// WithKeepNull controls whether null values in the update delete the
// corresponding fields instead of storing null.
func (m *ModifyVertex[T]) WithKeepNull(keepNull bool) *ModifyVertex[T] {
	m.keepNull = &keepNull
	return m
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *ModifyVertex[T]) WithWaitForSync(waitForSync bool) *ModifyVertex[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *ModifyVertex[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldVertex, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ModifyVertex[T]) Operation() api.Operation { return api.OperationModify }

// Path returns the resource path of this method call.
func (m *ModifyVertex[T]) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *ModifyVertex[T]) Parameters() api.Parameters {
	params := m.parameters()
	if m.keepNull != nil {
		params.Add(ParamKeepNull, *m.keepNull)
	}
	return params
}

// Header returns the header parameters of this method call.
func (m *ModifyVertex[T]) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *ModifyVertex[T]) Content() any { return m.update }

// RemoveVertex removes a vertex from a vertex collection of a graph. The
// result reports whether the vertex was removed.
type RemoveVertex struct {
	gharialEntityMethod
}

// NewRemoveVertex constructs the method call for removing the vertex with
// the given key from the named vertex collection of the named graph.
func NewRemoveVertex(graphName, collectionName string, key DocumentKey) *RemoveVertex {
	return &RemoveVertex{gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key}}
}

// WithIfMatch makes the remove fail unless the stored revision matches.
func (m *RemoveVertex) WithIfMatch(revision Revision) *RemoveVertex {
	m.ifMatch = revision
	return m
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *RemoveVertex) WithWaitForSync(waitForSync bool) *RemoveVertex {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *RemoveVertex) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldRemoved, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *RemoveVertex) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *RemoveVertex) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathVertex + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *RemoveVertex) Parameters() api.Parameters { return m.parameters() }

// Header returns the header parameters of this method call.
func (m *RemoveVertex) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *RemoveVertex) Content() any { return nil }

// InsertEdge creates an edge in an edge collection of a graph. The result
// is the DocumentHeader of the stored edge, wrapped in the "edge" envelope
// field.
type InsertEdge[T any] struct {
	gharialEntityMethod
	edge NewEdgeValue[T]
}

// NewInsertEdge constructs the method call for inserting the given edge
// into the named edge collection of the named graph.
func NewInsertEdge[T any](graphName, collectionName string, edge NewEdgeValue[T]) *InsertEdge[T] {
	return &InsertEdge[T]{
		gharialEntityMethod: gharialEntityMethod{graphName: graphName, collectionName: collectionName},
		edge:                edge,
	}
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *InsertEdge[T]) WithWaitForSync(waitForSync bool) *InsertEdge[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *InsertEdge[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldEdge, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *InsertEdge[T]) Operation() api.Operation { return api.OperationCreate }

// Path returns the resource path of this method call.
func (m *InsertEdge[T]) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge + "/" + m.collectionName
}

// Parameters returns the query parameters of this method call.
func (m *InsertEdge[T]) Parameters() api.Parameters { return m.parameters() }

// Header returns the header parameters of this method call.
func (m *InsertEdge[T]) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *InsertEdge[T]) Content() any { return m.edge }

// GetEdge reads an edge from an edge collection of a graph. Execute it
// with Edge[T] as the result type.
type GetEdge struct {
	gharialEntityMethod
}

// NewGetEdge constructs the method call for reading the edge with the
// given key from the named edge collection of the named graph.
func NewGetEdge(graphName, collectionName string, key DocumentKey) *GetEdge {
	return &GetEdge{gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key}}
}

// WithIfMatch makes the read fail unless the stored revision matches.
func (m *GetEdge) WithIfMatch(revision Revision) *GetEdge {
	m.ifMatch = revision
	return m
}

// WithIfNonMatch makes the read answer 304 when the stored revision still
// matches.
func (m *GetEdge) WithIfNonMatch(revision Revision) *GetEdge {
	m.ifNonMatch = revision
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *GetEdge) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldEdge, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *GetEdge) Operation() api.Operation { return api.OperationRead }

// Path returns the resource path of this method call.
func (m *GetEdge) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *GetEdge) Parameters() api.Parameters { return api.Parameters{} }

// Header returns the header parameters of this method call.
func (m *GetEdge) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *GetEdge) Content() any { return nil }

// ReplaceEdge replaces the content of an edge. The result is the
// UpdatedDocumentHeader of the edge, wrapped in the "edge" envelope field.
type ReplaceEdge[T any] struct {
	gharialEntityMethod
	edge NewEdgeValue[T]
}

// NewReplaceEdge constructs the method call for replacing the edge with
// the given key by the given edge value.
func NewReplaceEdge[T any](graphName, collectionName string, key DocumentKey, edge NewEdgeValue[T]) *ReplaceEdge[T] {
	return &ReplaceEdge[T]{
		gharialEntityMethod: gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key},
		edge:                edge,
	}
}

// WithIfMatch makes the replace fail unless the stored revision matches.
func (m *ReplaceEdge[T]) WithIfMatch(revision Revision) *ReplaceEdge[T] {
	m.ifMatch = revision
	return m
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *ReplaceEdge[T]) WithWaitForSync(waitForSync bool) *ReplaceEdge[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *ReplaceEdge[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldEdge, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ReplaceEdge[T]) Operation() api.Operation { return api.OperationReplace }

// Path returns the resource path of this method call.
func (m *ReplaceEdge[T]) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *ReplaceEdge[T]) Parameters() api.Parameters { return m.parameters() }

// Header returns the header parameters of this method call.
func (m *ReplaceEdge[T]) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *ReplaceEdge[T]) Content() any { return m.edge }

// ModifyEdge partially updates the content of an edge. The result is the
// UpdatedDocumentHeader of the edge, wrapped in the "edge" envelope field.
type ModifyEdge[T any] struct {
	gharialEntityMethod
	update   T
	keepNull *bool
}

// NewModifyEdge constructs the method call for partially updating the edge
// with the given key.
func NewModifyEdge[T any](graphName, collectionName string, key DocumentKey, update T) *ModifyEdge[T] {
	return &ModifyEdge[T]{
		gharialEntityMethod: gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key},
		update:              update,
	}
}

// WithIfMatch makes the update fail unless the stored revision matches.
func (m *ModifyEdge[T]) WithIfMatch(revision Revision) *ModifyEdge[T] {
	m.ifMatch = revision
	return m
}

// WithKeepNull controls whether null values in the update delete the
// corresponding fields instead of storing null.
func (m *ModifyEdge[T]) WithKeepNull(keepNull bool) *ModifyEdge[T] {
	m.keepNull = &keepNull
	return m
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *ModifyEdge[T]) WithWaitForSync(waitForSync bool) *ModifyEdge[T] {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *ModifyEdge[T]) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldEdge, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *ModifyEdge[T]) Operation() api.Operation { return api.OperationModify }

// Path returns the resource path of this method call.
func (m *ModifyEdge[T]) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *ModifyEdge[T]) Parameters() api.Parameters {
	params := m.parameters()
	if m.keepNull != nil {
		params.Add(ParamKeepNull, *m.keepNull)
	}
	return params
}

// Header returns the header parameters of this method call.
func (m *ModifyEdge[T]) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *ModifyEdge[T]) Content() any { return m.update }

// RemoveEdge removes an edge from an edge collection of a graph. The
// result reports whether the edge was removed.
type RemoveEdge struct {
	gharialEntityMethod
}

// NewRemoveEdge constructs the method call for removing the edge with the
// given key from the named edge collection of the named graph.
func NewRemoveEdge(graphName, collectionName string, key DocumentKey) *RemoveEdge {
	return &RemoveEdge{gharialEntityMethod{graphName: graphName, collectionName: collectionName, key: key}}
}

// WithIfMatch makes the remove fail unless the stored revision matches.
func (m *RemoveEdge) WithIfMatch(revision Revision) *RemoveEdge {
	m.ifMatch = revision
	return m
}

// WithWaitForSync forces the server to synchronize to disk before it
// answers.
func (m *RemoveEdge) WithWaitForSync(waitForSync bool) *RemoveEdge {
	m.waitForSync = &waitForSync
	return m
}

// ReturnType declares the result envelope of this method call.
func (m *RemoveEdge) ReturnType() api.RPCReturnType {
	return api.RPCReturnType{Result: FieldRemoved, Code: FieldCode}
}

// Operation returns the kind of operation of this method call.
func (m *RemoveEdge) Operation() api.Operation { return api.OperationDelete }

// Path returns the resource path of this method call.
func (m *RemoveEdge) Path() string {
	return PathAPIGharial + "/" + m.graphName + PathEdge + "/" + m.collectionName + "/" + m.key.String()
}

// Parameters returns the query parameters of this method call.
func (m *RemoveEdge) Parameters() api.Parameters { return m.parameters() }

// Header returns the header parameters of this method call.
func (m *RemoveEdge) Header() api.Parameters { return m.header() }

// Content returns the body of this method call.
func (m *RemoveEdge) Content() any { return nil }
