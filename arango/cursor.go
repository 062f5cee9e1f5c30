// Types used in methods for executing AQL queries.

package arango

import (
	"encoding/json"

	"arango.evalgo.org/api"
)

// Cursor is a temporary server-side iterator over a query's result set.
//
// If the result set contains more documents than fit into a single batch
// (as set via the batch size attribute), the server returns the first
// batch and creates a temporary cursor, identified by ID. HasMore tells
// the client that additional results can be fetched from the server; a
// cursor with HasMore set always carries a non-empty ID.
//
// The server destroys the cursor automatically when the client has read
// all batches and garbage-collects abandoned cursors after a
// server-controlled timeout.
type Cursor[T any] struct {
	// ID of the cursor created on the server; empty when all results fit
	// into the first batch.
	ID string `json:"id,omitempty"`

	// Result is the batch of result documents, possibly empty.
	Result []T `json:"result"`

	// HasMore reports whether more results are available on the server.
	HasMore bool `json:"hasMore"`

	// Count is the total number of result documents, only present if the
	// query was executed with the count attribute set.
	Count *uint64 `json:"count,omitempty"`

	// Cached reports whether the result was served from the query cache.
	Cached bool `json:"cached"`

	// Extra holds statistics and warnings about the query execution.
	Extra *CursorExtra `json:"extra,omitempty"`
}

// CursorExtra holds extra information about a query execution.
type CursorExtra struct {
	Stats    CursorStatistics  `json:"stats"`
	Warnings []json.RawMessage `json:"warnings"`
}

// CursorStatistics holds statistics about a query execution.
type CursorStatistics struct {
	ExecutionTime  float64 `json:"executionTime"`
	Filtered       uint64  `json:"filtered"`
	FullCount      *uint64 `json:"fullCount,omitempty"`
	HTTPRequests   uint64  `json:"httpRequests"`
	ScannedFull    uint64  `json:"scannedFull"`
	ScannedIndex   uint64  `json:"scannedIndex"`
	WritesExecuted uint64  `json:"writesExecuted"`
	WritesIgnored  uint64  `json:"writesIgnored"`
}

// NewCursor defines the parameters of a cursor that is going to be created
// for an AQL query.
type NewCursor struct {
	// Query is the AQL query string to execute.
	Query string `json:"query"`

	// BindVars are the values bound to the parameters of the query.
	BindVars map[string]any `json:"bindVars,omitempty"`

	// Count requests the total number of result documents in the cursor.
	Count *bool `json:"count,omitempty"`

	// BatchSize is the maximum number of result documents transferred in
	// one round-trip. Zero is disallowed by the server; when unset a
	// server-controlled default applies.
	BatchSize *uint32 `json:"batchSize,omitempty"`

	// Cache determines whether the AQL query cache is consulted.
	Cache *bool `json:"cache,omitempty"`

	// MemoryLimit is the maximum number of bytes the query may use.
	MemoryLimit *uint64 `json:"memoryLimit,omitempty"`

	// TTL is the cursor lifetime in seconds before the server removes an
	// abandoned cursor.
	TTL *uint32 `json:"ttl,omitempty"`

	// Options are additional query options.
	Options *CursorOptions `json:"options,omitempty"`
}

// NewCursorForQuery constructs the cursor parameters for the given query,
// carrying over its bind parameters.
func NewCursorForQuery(query *api.Query) NewCursor {
	cursor := NewCursor{Query: query.String()}
	if params := query.Parameters().List(); len(params) > 0 {
		cursor.BindVars = make(map[string]any, len(params))
		for _, param := range params {
			cursor.BindVars[param.Name] = param.Value
		}
	}
	return cursor
}

// WithCount requests the total number of result documents.
func (c NewCursor) WithCount(count bool) NewCursor {
	c.Count = &count
	return c
}

// WithBatchSize sets the maximum number of result documents per batch.
func (c NewCursor) WithBatchSize(batchSize uint32) NewCursor {
	c.BatchSize = &batchSize
	return c
}

// WithCache determines whether the AQL query cache is consulted.
func (c NewCursor) WithCache(cache bool) NewCursor {
	c.Cache = &cache
	return c
}

// WithMemoryLimit caps the memory the query may use, in bytes.
func (c NewCursor) WithMemoryLimit(limit uint64) NewCursor {
	c.MemoryLimit = &limit
	return c
}

// WithTTL sets the cursor lifetime in seconds.
func (c NewCursor) WithTTL(ttl uint32) NewCursor {
	c.TTL = &ttl
	return c
}

// CursorOptions are the optional per-query options of a new cursor.
type CursorOptions struct {
	FailOnWarning           *bool      `json:"failOnWarning,omitempty"`
	Profile                 *bool      `json:"profile,omitempty"`
	MaxWarningCount         *uint32    `json:"maxWarningCount,omitempty"`
	FullCount               *bool      `json:"fullCount,omitempty"`
	MaxPlans                *uint32    `json:"maxPlans,omitempty"`
	Optimizer               *Optimizer `json:"optimizer,omitempty"`
	IntermediateCommitCount *uint32    `json:"intermediateCommitCount,omitempty"`
	IntermediateCommitSize  *uint32    `json:"intermediateCommitSize,omitempty"`
	MaxTransactionSize      *uint32    `json:"maxTransactionSize,omitempty"`
	SatelliteSyncWait       *bool      `json:"satelliteSyncWait,omitempty"`
}

// Optimizer holds the rules for the AQL query optimizer.
type Optimizer struct {
	Rules []string `json:"rules,omitempty"`
}

// ParsedQuery is the result of parsing an AQL query without executing it.
type ParsedQuery struct {
	Collections []string          `json:"collections"`
	BindVars    []string          `json:"bindVars"`
	AST         []json.RawMessage `json:"ast"`
}

// ExplainedQuery is the result of explaining an AQL query: the execution
// plan (or plans when all plans are requested), warnings and whether the
// result could be served from the query cache.
type ExplainedQuery struct {
	Plan      *ExecutionPlan    `json:"plan,omitempty"`
	Plans     []ExecutionPlan   `json:"plans,omitempty"`
	Warnings  []json.RawMessage `json:"warnings"`
	Stats     *ExecutionStats   `json:"stats,omitempty"`
	Cacheable *bool             `json:"cacheable,omitempty"`
}

// ExecutionPlan is one execution plan of an explained query.
type ExecutionPlan struct {
	Nodes            []json.RawMessage     `json:"nodes"`
	Rules            []string              `json:"rules"`
	Collections      []ExecutionCollection `json:"collections"`
	Variables        []ExecutionVariable   `json:"variables"`
	EstimatedCost    float64               `json:"estimatedCost"`
	EstimatedNrItems uint64                `json:"estimatedNrItems"`
}

// ExecutionCollection names a collection used by an execution plan.
type ExecutionCollection struct {
	Name string `json:"name"`
	Kind string `json:"type"`
}

// ExecutionVariable names a variable used by an execution plan.
type ExecutionVariable struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ExecutionStats holds statistics about the explain run.
type ExecutionStats struct {
	RulesExecuted uint64 `json:"rulesExecuted"`
	RulesSkipped  uint64 `json:"rulesSkipped"`
	PlansCreated  uint64 `json:"plansCreated"`
}
