// Graph ("gharial") handlers of the fake server.

package mock

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type graphState struct {
	name            string
	revision        string
	edgeDefinitions []edgeDefinition
	orphans         []string
}

type edgeDefinition struct {
	Collection string   `json:"collection"`
	From       []string `json:"from"`
	To         []string `json:"to"`
}

func (s *Server) graphRoutes(g *echo.Group) {
	g.POST("/_api/gharial", s.handleCreateGraph)
	g.GET("/_api/gharial", s.handleListGraphs)
	g.GET("/_api/gharial/:graph", s.handleGetGraph)
	g.DELETE("/_api/gharial/:graph", s.handleDropGraph)

	g.POST("/_api/gharial/:graph/vertex", s.handleAddVertexCollection)
	g.GET("/_api/gharial/:graph/vertex", s.handleListVertexCollections)
	g.DELETE("/_api/gharial/:graph/vertex/:collection", s.handleRemoveVertexCollection)
	g.POST("/_api/gharial/:graph/vertex/:collection", s.handleInsertVertex)
	g.GET("/_api/gharial/:graph/vertex/:collection/:key", s.handleGetVertex)
	g.DELETE("/_api/gharial/:graph/vertex/:collection/:key", s.handleRemoveVertex)

	g.POST("/_api/gharial/:graph/edge", s.handleAddEdgeDefinition)
	g.GET("/_api/gharial/:graph/edge", s.handleListEdgeCollections)
	g.DELETE("/_api/gharial/:graph/edge/:collection", s.handleRemoveEdgeDefinition)
	g.POST("/_api/gharial/:graph/edge/:collection", s.handleInsertEdge)
	g.GET("/_api/gharial/:graph/edge/:collection/:key", s.handleGetEdge)
	g.DELETE("/_api/gharial/:graph/edge/:collection/:key", s.handleRemoveEdge)
}

func (s *Server) graphJSON(graph *graphState) map[string]any {
	edges := graph.edgeDefinitions
	if edges == nil {
		edges = []edgeDefinition{}
	}
	orphans := graph.orphans
	if orphans == nil {
		orphans = []string{}
	}
	return map[string]any{
		"_id":               "_graphs/" + graph.name,
		"_key":              graph.name,
		"_rev":              graph.revision,
		"name":              graph.name,
		"edgeDefinitions":   edges,
		"orphanCollections": orphans,
		"isSmart":           false,
	}
}

func graphEnvelope(c echo.Context, status int, graph map[string]any) error {
	return c.JSON(status, map[string]any{
		"graph": graph, "error": false, "code": status,
	})
}

func (s *Server) handleCreateGraph(c echo.Context) error {
	var request struct {
		Name            string           `json:"name"`
		EdgeDefinitions []edgeDefinition `json:"edgeDefinitions"`
		Orphans         []string         `json:"orphanCollections"`
	}
	if err := c.Bind(&request); err != nil || request.Name == "" {
		return errorEnvelope(c, http.StatusBadRequest, 1923, "invalid graph")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.graphs[request.Name]; exists {
		return errorEnvelope(c, http.StatusConflict, 1925, "graph already exists")
	}
	graph := &graphState{
		name:            request.Name,
		revision:        uuid.NewString()[:8],
		edgeDefinitions: request.EdgeDefinitions,
		orphans:         request.Orphans,
	}
	s.graphs[request.Name] = graph
	for _, edge := range graph.edgeDefinitions {
		col := s.ensureCollection(edge.Collection)
		col.kind = 3
	}
	return graphEnvelope(c, http.StatusCreated, s.graphJSON(graph))
}

func (s *Server) handleListGraphs(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	graphs := make([]map[string]any, 0, len(s.graphs))
	for _, graph := range s.graphs {
		graphs = append(graphs, s.graphJSON(graph))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"graphs": graphs, "error": false, "code": 200,
	})
}

func (s *Server) lockedGraph(c echo.Context) (*graphState, error) {
	graph, exists := s.graphs[c.Param("graph")]
	if !exists {
		return nil, errorEnvelope(c, http.StatusNotFound, 1924, "graph not found")
	}
	return graph, nil
}

func (s *Server) handleGetGraph(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	graph, err := s.lockedGraph(c)
	if err != nil {
		return err
	}
	return graphEnvelope(c, http.StatusOK, s.graphJSON(graph))
}

func (s *Server) handleDropGraph(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.graphs[c.Param("graph")]; !exists {
		return errorEnvelope(c, http.StatusNotFound, 1924, "graph not found")
	}
	delete(s.graphs, c.Param("graph"))
	return c.JSON(http.StatusCreated, map[string]any{
		"removed": true, "error": false, "code": 201,
	})
}

func (s *Server) handleAddVertexCollection(c echo.Context) error {
	var request struct {
		Collection string `json:"collection"`
	}
	if err := c.Bind(&request); err != nil || request.Collection == "" {
		return errorEnvelope(c, http.StatusBadRequest, 1923, "invalid collection")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	graph, err := s.lockedGraph(c)
	if err != nil {
		return err
	}
	graph.orphans = append(graph.orphans, request.Collection)
	s.ensureCollection(request.Collection)
	return graphEnvelope(c, http.StatusCreated, s.graphJSON(graph))
}

func (s *Server) handleListVertexCollections(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	graph, err := s.lockedGraph(c)
	if err != nil {
		return err
	}
	collections := append([]string{}, graph.orphans...)
	for _, edge := range graph.edgeDefinitions {
		collections = append(collections, edge.From...)
		collections = append(collections, edge.To...)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"collections": dedupe(collections), "error": false, "code": 200,
	})
}

func (s *Server) handleRemoveVertexCollection(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	graph, err := s.lockedGraph(c)
	if err != nil {
		return err
	}
	name := c.Param("collection")
	orphans := graph.orphans[:0]
	for _, orphan := range graph.orphans {
		if orphan != name {
			orphans = append(orphans, orphan)
		}
	}
	graph.orphans = orphans
	return graphEnvelope(c, http.StatusOK, s.graphJSON(graph))
}

func (s *Server) handleAddEdgeDefinition(c echo.Context) error {
	var request edgeDefinition
	if err := c.Bind(&request); err != nil || request.Collection == "" {
		return errorEnvelope(c, http.StatusBadRequest, 1923, "invalid edge definition")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	graph, err := s.lockedGraph(c)
	if err != nil {
		return err
	}
	graph.edgeDefinitions = append(graph.edgeDefinitions, request)
	col := s.ensureCollection(request.Collection)
	col.kind = 3
	return graphEnvelope(c, http.StatusCreated, s.graphJSON(graph))
}

func (s *Server) handleListEdgeCollections(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	graph, err := s.lockedGraph(c)
	if err != nil {
		return err
	}
	collections := make([]string, 0, len(graph.edgeDefinitions))
	for _, edge := range graph.edgeDefinitions {
		collections = append(collections, edge.Collection)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"collections": dedupe(collections), "error": false, "code": 200,
	})
}

func (s *Server) handleRemoveEdgeDefinition(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	graph, err := s.lockedGraph(c)
	if err != nil {
		return err
	}
	name := c.Param("collection")
	edges := graph.edgeDefinitions[:0]
	for _, edge := range graph.edgeDefinitions {
		if edge.Collection != name {
			edges = append(edges, edge)
		}
	}
	graph.edgeDefinitions = edges
	return graphEnvelope(c, http.StatusOK, s.graphJSON(graph))
}

func (s *Server) handleInsertVertex(c echo.Context) error {
	return s.insertGraphEntity(c, "vertex", false)
}

func (s *Server) handleInsertEdge(c echo.Context) error {
	return s.insertGraphEntity(c, "edge", true)
}

func (s *Server) insertGraphEntity(c echo.Context, envelope string, requireFromTo bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lockedGraph(c); err != nil {
		return err
	}
	col := s.ensureCollection(c.Param("collection"))
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return errorEnvelope(c, http.StatusBadRequest, 600, "invalid JSON")
	}
	if requireFromTo && (fields["_from"] == nil || fields["_to"] == nil) {
		return errorEnvelope(c, http.StatusBadRequest, 1233, "edge attribute missing or invalid")
	}
	key := rawString(fields["_key"])
	if key == "" {
		col.nextKey++
		key = strconv.Itoa(col.nextKey)
	}
	revision := uuid.NewString()[:11]
	fields["_key"] = mustMarshal(key)
	fields["_id"] = mustMarshal(col.name + "/" + key)
	fields["_rev"] = mustMarshal(revision)
	col.documents[key] = mustMarshal(fields)
	return c.JSON(http.StatusCreated, map[string]any{
		envelope: map[string]any{
			"_id": col.name + "/" + key, "_key": key, "_rev": revision,
		},
		"error": false, "code": 201,
	})
}

func (s *Server) handleGetVertex(c echo.Context) error {
	return s.getGraphEntity(c, "vertex")
}

func (s *Server) handleGetEdge(c echo.Context) error {
	return s.getGraphEntity(c, "edge")
}

func (s *Server) getGraphEntity(c echo.Context, envelope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lockedGraph(c); err != nil {
		return err
	}
	col, exists := s.collections[c.Param("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	document, exists := col.documents[c.Param("key")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1202, "document not found")
	}
	return c.JSON(http.StatusOK, map[string]any{
		envelope: json.RawMessage(document), "error": false, "code": 200,
	})
}

func (s *Server) handleRemoveVertex(c echo.Context) error {
	return s.removeGraphEntity(c)
}

func (s *Server) handleRemoveEdge(c echo.Context) error {
	return s.removeGraphEntity(c)
}

func (s *Server) removeGraphEntity(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lockedGraph(c); err != nil {
		return err
	}
	col, exists := s.collections[c.Param("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	key := c.Param("key")
	if _, exists := col.documents[key]; !exists {
		return errorEnvelope(c, http.StatusNotFound, 1202, "document not found")
	}
	delete(col.documents, key)
	return c.JSON(http.StatusOK, map[string]any{
		"removed": true, "error": false, "code": 200,
	})
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, duplicate := seen[value]; duplicate {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
