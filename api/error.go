// The error taxonomy of the driver. Every failure surfaced by a method
// call execution is one of the five types defined here; nothing is retried
// or logged above debug level by the driver itself.

package api

import "fmt"

// CommunicationError reports a transport, TLS or timeout failure. The
// driver does not retry on communication errors; retry policy belongs to
// the caller.
type CommunicationError struct {
	Cause string
}

func (e *CommunicationError) Error() string {
	return "communication failed: " + e.Cause
}

// SerializationError reports that a request body could not be encoded to
// JSON. This indicates a bug on the caller side, e.g. a document content
// type that does not serialize into a JSON object.
type SerializationError struct {
	Cause string
}

func (e *SerializationError) Error() string {
	return "serialization failed: " + e.Cause
}

// DeserializationError reports that a successful response could not be
// parsed into the declared result type, which usually indicates a server
// version mismatch.
type DeserializationError struct {
	Cause string
}

func (e *DeserializationError) Error() string {
	return "deserialization failed: " + e.Cause
}

// NotAuthenticatedError reports that the datasource selects token
// authentication but no token has been set on the connector. The request
// is never sent in this case.
type NotAuthenticatedError struct {
	Cause string
}

func (e *NotAuthenticatedError) Error() string {
	return "not authenticated: " + e.Cause
}

// MethodError reports that the server answered a method call with an
// error, either as a non-2xx status or as a body marked as error.
type MethodError struct {
	StatusCode int
	Code       ErrorCode
	Message    string
}

// NewMethodError constructs a MethodError with the given HTTP status,
// error code and server message.
func NewMethodError(statusCode int, code ErrorCode, message string) *MethodError {
	return &MethodError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Code.AsUint16(), e.Message)
}

// ArangoError is the error information for one single entity in the result
// of an operation that has been executed for multiple entities. It carries
// the errorNum and errorMessage values reported by the server.
type ArangoError struct {
	Code    ErrorCode
	Message string
}

// NewArangoError constructs an ArangoError with the given code and message.
func NewArangoError(code ErrorCode, message string) *ArangoError {
	return &ArangoError{Code: code, Message: message}
}

func (e *ArangoError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Code.AsUint16(), e.Message)
}
