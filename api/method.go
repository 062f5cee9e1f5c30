// This file defines the method-call framework. Every REST operation of the
// ArangoDB server is represented as a value type (a "method call") that
// carries all data needed to invoke the operation: the logical operation
// kind, the resource path, query parameters, header parameters and an
// optional body.
//
// Representing method calls as data has the advantage that concrete calls
// can be queued, distributed, repeated or processed in batches, and that
// new operations are added by defining a new struct, nothing more. The
// transport side (see the connector package) only ever talks to the
// Prepare and Method contracts defined here.

package api

import (
	"fmt"
	"strings"
)

// Operation is the logical kind of a REST operation, abstract over the
// HTTP verbs like POST, GET, PUT, PATCH.
type Operation int

// The operations used by the ArangoDB REST API.
const (
	// OperationCreate creates a new entity.
	OperationCreate Operation = iota
	// OperationRead gets an entity or resource.
	OperationRead
	// OperationModify modifies an existing entity.
	OperationModify
	// OperationReplace replaces an existing entity.
	OperationReplace
	// OperationDelete deletes an entity.
	OperationDelete
	// OperationReadHeader gets the header data or short info about an entity.
	OperationReadHeader
)

// String returns the name of the operation for log output.
func (op Operation) String() string {
	switch op {
	case OperationCreate:
		return "Create"
	case OperationRead:
		return "Read"
	case OperationModify:
		return "Modify"
	case OperationReplace:
		return "Replace"
	case OperationDelete:
		return "Delete"
	case OperationReadHeader:
		return "ReadHeader"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Prepare describes the wire request of a method call. A connector converts
// the Prepare data into a concrete request specific to its transport
// protocol, e.g. a HTTP request with the content serialized as JSON into
// the request body.
type Prepare interface {
	// Operation returns the kind of operation this method call is executing.
	Operation() Operation

	// Path returns the resource path of the REST operation, without the
	// database prefix.
	Path() string

	// Parameters returns the query parameters of this method call.
	Parameters() Parameters

	// Header returns additional header parameters of this method call,
	// e.g. If-Match for revision-checked operations.
	Header() Parameters

	// Content returns the body of this method call, or nil if the
	// operation has no body. The returned value must serialize to JSON.
	Content() any
}

// Method is a complete method call: the wire description plus the
// specification of the RPC-like return type.
//
// The result type of each method call is bound at the execution site (see
// connector.Execute); the RPCReturnType tells the executor how to extract
// the payload from the server's non-uniform response envelopes.
type Method interface {
	Prepare

	// ReturnType returns the specification of the RPC-like return type.
	ReturnType() RPCReturnType
}

// RPCReturnType specifies the fields of the RPC-like return type of a
// method call.
//
// The ArangoDB REST API does not stick to one envelope style: some
// operations return the payload as the whole body, others wrap it in a
// "result" or "id" field next to "code" and "error" fields. This
// specification lets the executor extract the payload uniformly without
// special-casing single operations.
type RPCReturnType struct {
	// Result names the envelope field holding the payload, or is empty
	// when the payload is the whole response body.
	Result string

	// Code names the field that carries the HTTP-like status code in the
	// envelope, or is empty when the result never contains such a field.
	Code string
}

// Parameter is one name/value pair of a parameter set.
type Parameter struct {
	Name  string
	Value any
}

// Parameters is an ordered set of name/value pairs. Order is preserved and
// duplicate names are allowed, because parameter order influences URL
// formation and some operations accept repeated parameters.
type Parameters struct {
	list []Parameter
}

// NewParameters creates a parameter set from the given name/value pairs.
func NewParameters(pairs ...Parameter) Parameters {
	return Parameters{list: pairs}
}

// Add appends a name/value pair to this parameter set.
func (p *Parameters) Add(name string, value any) {
	p.list = append(p.list, Parameter{Name: name, Value: value})
}

// IsEmpty reports whether this parameter set contains no parameters.
func (p Parameters) IsEmpty() bool {
	return len(p.list) == 0
}

// List returns the parameters in insertion order.
func (p Parameters) List() []Parameter {
	return p.list
}

// String formats the parameter set for log output.
func (p Parameters) String() string {
	var sb strings.Builder
	sb.WriteString("Parameters[")
	for i, param := range p.list {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.Name)
		sb.WriteByte('=')
		sb.WriteString(FormatValue(param.Value))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatValue renders a parameter value into its canonical textual
// representation as used in URLs. Supported are strings, booleans, the
// numeric types and slices thereof; slices format as "[a,b,c]".
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []string:
		return formatValueList(v)
	case []bool:
		return formatValueList(v)
	case []int:
		return formatValueList(v)
	case []int64:
		return formatValueList(v)
	case []uint:
		return formatValueList(v)
	case []uint64:
		return formatValueList(v)
	case []float64:
		return formatValueList(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatValueList[T any](values []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(FormatValue(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Empty represents an 'empty' payload of a method call where no type
// information is available.
type Empty struct{}
