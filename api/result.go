// Result containers for operations that are executed for multiple entities
// at once, where error information can be reported for single entities
// only, not the whole operation.

package api

import (
	"encoding/json"
	"fmt"
)

// Result holds either the successful result for one single entity of a
// multi-entity operation or the error that occurred for that entity.
type Result[T any] struct {
	value T
	err   *ArangoError
}

// Success constructs a successful Result holding the given value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failed constructs a Result holding the given per-entity error.
func Failed[T any](err *ArangoError) Result[T] {
	return Result[T]{err: err}
}

// Get returns the value of this result, or the per-entity error if the
// operation failed for this entity.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// IsSuccess reports whether the operation succeeded for this entity.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// UnmarshalJSON parses one entry of a server result list. An object that
// carries both "errorNum" and "errorMessage" is an error entry; an object
// with "errorNum" but no "errorMessage" is malformed; any other object is
// a success entry whose remaining fields (after stripping the envelope
// fields "code" and "error") materialize the value.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var errorNum json.RawMessage
	var errorMessage json.RawMessage
	rest := make(map[string]json.RawMessage, len(fields))
	for name, value := range fields {
		switch name {
		case fieldCode, fieldError:
			// envelope noise
		case fieldErrorNum:
			errorNum = value
		case fieldErrorMessage:
			errorMessage = value
		default:
			rest[name] = value
		}
	}

	switch {
	case errorNum != nil && errorMessage != nil:
		var num uint16
		if err := json.Unmarshal(errorNum, &num); err != nil {
			return err
		}
		var message string
		if err := json.Unmarshal(errorMessage, &message); err != nil {
			return err
		}
		r.err = NewArangoError(ErrorCodeFromUint16(num), message)
		return nil
	case errorNum != nil:
		return fmt.Errorf("missing field %q", fieldErrorMessage)
	default:
		remainder, err := json.Marshal(rest)
		if err != nil {
			return err
		}
		return json.Unmarshal(remainder, &r.value)
	}
}

// ResultList is the return type of methods that operate on a list of
// entities where the result can contain error information for single
// entities only.
type ResultList[T any] []Result[T]

// Get returns the result at the given index, or nil, nil when the index is
// out of range.
func (l ResultList[T]) Get(index int) (*T, error) {
	if index < 0 || index >= len(l) {
		return nil, nil
	}
	value, err := l[index].Get()
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// Values returns the values of all successful results, dropping the failed
// entries.
func (l ResultList[T]) Values() []T {
	values := make([]T, 0, len(l))
	for _, r := range l {
		if r.IsSuccess() {
			values = append(values, r.value)
		}
	}
	return values
}

// Errors returns the per-entity errors of all failed results.
func (l ResultList[T]) Errors() []*ArangoError {
	var errs []*ArangoError
	for _, r := range l {
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return errs
}

// Wire names of the error envelope fields, see the protocol constants in
// the arango package for the full set.
const (
	fieldCode         = "code"
	fieldError        = "error"
	fieldErrorNum     = "errorNum"
	fieldErrorMessage = "errorMessage"
)
