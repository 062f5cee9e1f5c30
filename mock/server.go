// Package mock provides an in-process fake ArangoDB server for tests. It
// speaks enough of the JSON-over-HTTP REST API to exercise the driver end
// to end: authentication, collections, documents, indexes and query
// cursors, with the same response envelopes the real server uses.
//
// The fake holds all state in memory and is not safe for concurrent
// mutation from multiple tests; create one server per test.
package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Credentials accepted by the fake server.
type Credentials struct {
	Username string
	Password string
}

// Server is the fake ArangoDB server.
type Server struct {
	echo     *echo.Echo
	server   *httptest.Server
	signKey  []byte
	requests requestCounter

	mu          sync.Mutex
	credentials *Credentials
	requireAuth bool
	collections map[string]*collection
	graphs      map[string]*graphState
	cursors     map[string]*cursor
	queryResult []json.RawMessage
	batchSize   int
	users       map[string]json.RawMessage
}

// requestCounter counts handled requests, so tests can assert that a call
// produced no network traffic at all.
type requestCounter struct {
	mu sync.Mutex
	n  int
}

func (c *requestCounter) add() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *requestCounter) value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

type collection struct {
	id        string
	name      string
	kind      int
	documents map[string]json.RawMessage
	indexes   map[string]json.RawMessage
	nextKey   int
	nextIndex int
}

type cursor struct {
	items     []json.RawMessage
	offset    int
	batchSize int
}

// NewServer starts a fake server without authentication.
func NewServer() *Server {
	return newServer(nil, false)
}

// NewServerWithBasicAuth starts a fake server that checks HTTP basic
// credentials on every request.
func NewServerWithBasicAuth(username, password string) *Server {
	return newServer(&Credentials{Username: username, Password: password}, false)
}

// NewServerWithTokenAuth starts a fake server that issues tokens on the
// open authentication endpoint and requires a Bearer token on every other
// request.
func NewServerWithTokenAuth(username, password string) *Server {
	return newServer(&Credentials{Username: username, Password: password}, true)
}

func newServer(credentials *Credentials, requireToken bool) *Server {
	s := &Server{
		echo:        echo.New(),
		signKey:     []byte(uuid.NewString()),
		credentials: credentials,
		requireAuth: requireToken,
		collections: make(map[string]*collection),
		graphs:      make(map[string]*graphState),
		cursors:     make(map[string]*cursor),
		users:       make(map[string]json.RawMessage),
		batchSize:   1000,
	}
	s.echo.HideBanner = true
	s.routes()
	s.server = httptest.NewServer(s.echo)
	return s
}

// URL returns the base URL of the fake server.
func (s *Server) URL() string { return s.server.URL }

// Close shuts the fake server down.
func (s *Server) Close() { s.server.Close() }

// RequestCount returns the number of requests the server has handled.
func (s *Server) RequestCount() int { return s.requests.value() }

// SetQueryResult configures the items the next created cursor iterates
// over. Each item is serialized to JSON once at configuration time.
func (s *Server) SetQueryResult(items []any) error {
	encoded := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return err
		}
		encoded = append(encoded, raw)
	}
	s.mu.Lock()
	s.queryResult = encoded
	s.mu.Unlock()
	return nil
}

// CreateCollection pre-creates a collection on the fake server.
func (s *Server) CreateCollection(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCollection(name)
}

func (s *Server) ensureCollection(name string) *collection {
	if col, exists := s.collections[name]; exists {
		return col
	}
	col := &collection{
		id:        uuid.NewString(),
		name:      name,
		kind:      2,
		documents: make(map[string]json.RawMessage),
		indexes:   make(map[string]json.RawMessage),
		nextKey:   9327,
		nextIndex: 0,
	}
	s.collections[name] = col
	return col
}

func collectionJSON(col *collection) map[string]any {
	return map[string]any{
		"id":       col.id,
		"name":     col.name,
		"type":     col.kind,
		"status":   3,
		"isSystem": strings.HasPrefix(col.name, "_"),
	}
}

func (s *Server) routes() {
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s.requests.add()
			return next(c)
		}
	})
	s.echo.Use(s.authMiddleware)

	s.echo.POST("/_open/auth", s.handleOpenAuth)

	// Every API route is registered once with and once without the
	// database prefix; the fake does not segregate data per database.
	for _, prefix := range []string{"", "/_db/:database"} {
		g := s.echo.Group(prefix)
		g.GET("/_api/version", s.handleVersion)
		g.GET("/_admin/database/target-version", s.handleTargetVersion)

		g.POST("/_api/collection", s.handleCreateCollection)
		g.GET("/_api/collection", s.handleListCollections)
		g.GET("/_api/collection/:name", s.handleGetCollection)
		g.DELETE("/_api/collection/:name", s.handleDropCollection)

		g.POST("/_api/document/:collection", s.handleInsertDocument)
		g.GET("/_api/document/:collection/:key", s.handleGetDocument)
		g.DELETE("/_api/document/:collection/:key", s.handleDeleteDocument)

		g.POST("/_api/index", s.handleCreateIndex)
		g.GET("/_api/index", s.handleListIndexes)
		g.GET("/_api/index/:collection/:key", s.handleGetIndex)
		g.DELETE("/_api/index/:collection/:key", s.handleDeleteIndex)

		g.POST("/_api/cursor", s.handleCreateCursor)
		g.PUT("/_api/cursor/:id", s.handleReadCursor)
		g.DELETE("/_api/cursor/:id", s.handleDeleteCursor)

		g.POST("/_api/database", s.handleOK)
		g.GET("/_api/database", s.handleListDatabases)
		g.DELETE("/_api/database/:name", s.handleDropDatabase)

		g.POST("/_api/user", s.handleCreateUser)
		g.GET("/_api/user/:name", s.handleGetUser)

		s.graphRoutes(g)
	}
}

func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/_open/auth" || s.credentials == nil {
			return next(c)
		}
		if s.requireAuth {
			header := c.Request().Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return errorEnvelope(c, http.StatusUnauthorized, 11, "not authorized to execute this request")
			}
			parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
				return s.signKey, nil
			})
			if err != nil || !parsed.Valid {
				return errorEnvelope(c, http.StatusUnauthorized, 11, "invalid token")
			}
			return next(c)
		}
		username, password, ok := c.Request().BasicAuth()
		if !ok || username != s.credentials.Username || password != s.credentials.Password {
			return errorEnvelope(c, http.StatusUnauthorized, 11, "not authorized to execute this request")
		}
		return next(c)
	}
}

func (s *Server) handleOpenAuth(c echo.Context) error {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&request); err != nil {
		return errorEnvelope(c, http.StatusBadRequest, 600, "invalid JSON")
	}
	if s.credentials != nil &&
		(request.Username != s.credentials.Username || request.Password != s.credentials.Password) {
		return errorEnvelope(c, http.StatusUnauthorized, 401, "Wrong credentials")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"preferred_username": request.Username,
		"iss":                "arangodb",
		"exp":                time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(s.signKey)
	if err != nil {
		return errorEnvelope(c, http.StatusInternalServerError, 4, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"jwt": signed})
}

func (s *Server) handleVersion(c echo.Context) error {
	response := map[string]any{"server": "arango", "version": "3.3.7", "license": "community"}
	if c.QueryParam("details") == "true" {
		response["details"] = map[string]string{"mode": "server"}
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) handleTargetVersion(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"version": "30307", "error": false, "code": 200,
	})
}

func (s *Server) handleCreateCollection(c echo.Context) error {
	var request struct {
		Name string `json:"name"`
		Kind int    `json:"type"`
	}
	if err := c.Bind(&request); err != nil || request.Name == "" {
		return errorEnvelope(c, http.StatusBadRequest, 1208, "name must be non-empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.collections[request.Name]; exists {
		return errorEnvelope(c, http.StatusConflict, 1207, "duplicate name")
	}
	col := s.ensureCollection(request.Name)
	if request.Kind == 3 {
		col.kind = 3
	}
	return c.JSON(http.StatusOK, collectionJSON(col))
}

func (s *Server) handleListCollections(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]map[string]any, 0, len(s.collections))
	for _, col := range s.collections {
		result = append(result, collectionJSON(col))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"result": result, "error": false, "code": 200,
	})
}

func (s *Server) handleGetCollection(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.Param("name")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	return c.JSON(http.StatusOK, collectionJSON(col))
}

func (s *Server) handleDropCollection(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.Param("name")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	delete(s.collections, col.name)
	return c.JSON(http.StatusOK, map[string]any{"id": col.id, "error": false, "code": 200})
}

func (s *Server) handleInsertDocument(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.Param("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return errorEnvelope(c, http.StatusBadRequest, 600, "invalid JSON")
	}
	key := rawString(fields["_key"])
	if key == "" {
		col.nextKey++
		key = strconv.Itoa(col.nextKey)
	}
	if _, duplicate := col.documents[key]; duplicate {
		return errorEnvelope(c, http.StatusConflict, 1210, "unique constraint violated")
	}
	revision := uuid.NewString()[:11]
	fields["_key"] = mustMarshal(key)
	fields["_id"] = mustMarshal(col.name + "/" + key)
	fields["_rev"] = mustMarshal(revision)
	stored := mustMarshal(fields)
	col.documents[key] = stored

	header := map[string]any{
		"_id": col.name + "/" + key, "_key": key, "_rev": revision,
	}
	if c.QueryParam("returnNew") == "true" {
		var newDoc json.RawMessage = stored
		header["new"] = newDoc
	}
	return c.JSON(http.StatusCreated, header)
}

func (s *Server) handleGetDocument(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.Param("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	document, exists := col.documents[c.Param("key")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1202, "document not found")
	}
	return c.JSONBlob(http.StatusOK, document)
}

func (s *Server) handleDeleteDocument(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.Param("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	key := c.Param("key")
	document, exists := col.documents[key]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1202, "document not found")
	}
	delete(col.documents, key)
	var fields map[string]json.RawMessage
	_ = json.Unmarshal(document, &fields)
	header := map[string]any{
		"_id":  col.name + "/" + key,
		"_key": key,
		"_rev": rawString(fields["_rev"]),
	}
	if c.QueryParam("returnOld") == "true" {
		var oldDoc json.RawMessage = document
		header["old"] = oldDoc
	}
	return c.JSON(http.StatusOK, header)
}

func (s *Server) handleCreateIndex(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.QueryParam("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	var request map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&request); err != nil {
		return errorEnvelope(c, http.StatusBadRequest, 600, "invalid JSON")
	}
	col.nextIndex++
	key := strconv.Itoa(11400 + col.nextIndex)
	request["id"] = mustMarshal(col.name + "/" + key)
	request["isNewlyCreated"] = mustMarshal(true)
	request["error"] = json.RawMessage("false")
	request["code"] = json.RawMessage("201")
	stored := mustMarshal(request)
	col.indexes[key] = stored
	return c.JSONBlob(http.StatusCreated, stored)
}

func (s *Server) handleListIndexes(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.QueryParam("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	indexes := make([]json.RawMessage, 0, len(col.indexes))
	for _, index := range col.indexes {
		indexes = append(indexes, index)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"indexes": indexes, "error": false, "code": 200,
	})
}

func (s *Server) handleGetIndex(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.Param("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	index, exists := col.indexes[c.Param("key")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1212, "index not found")
	}
	return c.JSONBlob(http.StatusOK, index)
}

func (s *Server) handleDeleteIndex(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, exists := s.collections[c.Param("collection")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1203, "collection or view not found")
	}
	key := c.Param("key")
	if _, exists := col.indexes[key]; !exists {
		return errorEnvelope(c, http.StatusNotFound, 1212, "index not found")
	}
	delete(col.indexes, key)
	return c.JSON(http.StatusOK, map[string]any{
		"id": col.name + "/" + key, "error": false, "code": 200,
	})
}

func (s *Server) handleCreateCursor(c echo.Context) error {
	var request struct {
		Query     string `json:"query"`
		BatchSize *int   `json:"batchSize"`
		Count     *bool  `json:"count"`
	}
	if err := c.Bind(&request); err != nil || request.Query == "" {
		return errorEnvelope(c, http.StatusBadRequest, 1501, "query is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	batchSize := s.batchSize
	if request.BatchSize != nil {
		batchSize = *request.BatchSize
	}
	cur := &cursor{items: s.queryResult, batchSize: batchSize}
	response := s.cursorBatch(cur)
	if request.Count != nil && *request.Count {
		response["count"] = len(cur.items)
	}
	if hasMore := response["hasMore"].(bool); hasMore {
		id := uuid.NewString()[:8]
		s.cursors[id] = cur
		response["id"] = id
	}
	return c.JSON(http.StatusCreated, response)
}

func (s *Server) handleReadCursor(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	cur, exists := s.cursors[id]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1600, "cursor not found")
	}
	response := s.cursorBatch(cur)
	if hasMore := response["hasMore"].(bool); hasMore {
		response["id"] = id
	} else {
		delete(s.cursors, id)
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) handleDeleteCursor(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, exists := s.cursors[id]; !exists {
		return errorEnvelope(c, http.StatusNotFound, 1600, "cursor not found")
	}
	delete(s.cursors, id)
	return c.JSON(http.StatusAccepted, map[string]any{"id": id, "error": false, "code": 202})
}

func (s *Server) cursorBatch(cur *cursor) map[string]any {
	end := cur.offset + cur.batchSize
	if end > len(cur.items) {
		end = len(cur.items)
	}
	batch := cur.items[cur.offset:end]
	cur.offset = end
	return map[string]any{
		"result":  batch,
		"hasMore": cur.offset < len(cur.items),
		"cached":  false,
		"error":   false,
		"code":    201,
	}
}

func (s *Server) handleListDatabases(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"result": []string{"_system"}, "error": false, "code": 200,
	})
}

func (s *Server) handleDropDatabase(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"result": true, "error": false, "code": 200,
	})
}

func (s *Server) handleOK(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{
		"result": true, "error": false, "code": 201,
	})
}

func (s *Server) handleCreateUser(c echo.Context) error {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&fields); err != nil {
		return errorEnvelope(c, http.StatusBadRequest, 600, "invalid JSON")
	}
	name := rawString(fields["user"])
	if name == "" {
		return errorEnvelope(c, http.StatusBadRequest, 1700, "invalid user name")
	}
	user := map[string]any{"user": name, "active": true}
	if extra, present := fields["extra"]; present {
		user["extra"] = extra
	} else {
		user["extra"] = map[string]any{}
	}
	stored := mustMarshal(user)
	s.mu.Lock()
	s.users[name] = stored
	s.mu.Unlock()
	return c.JSONBlob(http.StatusCreated, stored)
}

func (s *Server) handleGetUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, exists := s.users[c.Param("name")]
	if !exists {
		return errorEnvelope(c, http.StatusNotFound, 1703, "user not found")
	}
	return c.JSONBlob(http.StatusOK, user)
}

func errorEnvelope(c echo.Context, status, errorNum int, message string) error {
	return c.JSON(status, map[string]any{
		"error":        true,
		"code":         status,
		"errorNum":     errorNum,
		"errorMessage": message,
	})
}

func rawString(raw json.RawMessage) string {
	var value string
	if raw == nil {
		return ""
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

func mustMarshal(value any) json.RawMessage {
	encoded, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return encoded
}

