// The cursor session: iteration over the batches of a query cursor.

package session

import (
	"context"

	"arango.evalgo.org/arango"
	"arango.evalgo.org/connector"
)

// CursorSession iterates over the result set of an AQL query, fetching
// batch after batch from the server.
//
// A partially consumed cursor session that is simply dropped does not
// delete the server-side cursor; the server garbage-collects it after its
// TTL. Call Delete to remove it eagerly.
type CursorSession[T any] struct {
	connector    *connector.Connector
	databaseName string
	cursor       arango.Cursor[T]
	offset       int
}

func (s *CursorSession[T]) conn() *connector.Connection {
	return s.connector.Connection(s.databaseName)
}

// ID returns the id of the server-side cursor, or an empty string when
// all results fit into the first batch.
func (s *CursorSession[T]) ID() string { return s.cursor.ID }

// Count returns the total number of result documents, only present when
// the query was executed with the count attribute set.
func (s *CursorSession[T]) Count() (uint64, bool) {
	if s.cursor.Count == nil {
		return 0, false
	}
	return *s.cursor.Count, true
}

// IsCached reports whether the result was served from the query cache.
func (s *CursorSession[T]) IsCached() bool { return s.cursor.Cached }

// Stats returns the statistics about the query execution, when present.
func (s *CursorSession[T]) Stats() (arango.CursorStatistics, bool) {
	if s.cursor.Extra == nil {
		return arango.CursorStatistics{}, false
	}
	return s.cursor.Extra.Stats, true
}

// Batch returns the current batch of result documents.
func (s *CursorSession[T]) Batch() []T { return s.cursor.Result }

// HasMore reports whether another call to Next can produce a result,
// either from the current batch or from the server.
func (s *CursorSession[T]) HasMore() bool {
	return s.offset < len(s.cursor.Result) || s.cursor.HasMore
}

// Next returns the next result document. When the current batch is
// drained and the server holds more results, the next batch is fetched
// first. The second return value is false when the result set is
// exhausted.
func (s *CursorSession[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if s.offset >= len(s.cursor.Result) {
		if !s.cursor.HasMore {
			return zero, false, nil
		}
		cursor, err := connector.Execute[arango.Cursor[T]](
			ctx, s.conn(), arango.NewReadNextBatchFromCursor(s.cursor.ID))
		if err != nil {
			return zero, false, err
		}
		s.cursor = cursor
		s.offset = 0
		if len(s.cursor.Result) == 0 {
			return zero, false, nil
		}
	}
	result := s.cursor.Result[s.offset]
	s.offset++
	return result, true, nil
}

// Delete removes the server-side cursor before its timeout. It is only
// meaningful for a partially consumed cursor that still has an id.
func (s *CursorSession[T]) Delete(ctx context.Context) error {
	if s.cursor.ID == "" {
		return nil
	}
	_, err := connector.Execute[string](ctx, s.conn(), arango.NewDeleteCursor(s.cursor.ID))
	return err
}
