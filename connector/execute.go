// Method call execution: request construction, dispatch and result
// parsing.

package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"arango.evalgo.org/api"
	"arango.evalgo.org/arango"
	"arango.evalgo.org/common"
)

// Execute runs the given method call over the given connection and parses
// the response into the result type T declared by the method.
//
// Execution follows the fixed sequence: map the operation to the HTTP
// verb, build the request URI and headers, serialize the body, dispatch,
// read the full response body and either extract the typed result (on
// success) or the server error envelope (on failure). Cancellation of the
// context cancels the underlying HTTP exchange best-effort; server-side
// effects that already happened remain.
func Execute[T any](ctx context.Context, conn *Connection, method api.Method) (T, error) {
	var result T

	request, err := prepareRequest(ctx, conn, method)
	if err != nil {
		return result, err
	}

	common.Logger.WithFields(map[string]any{
		"method": request.Method,
		"uri":    request.URL.String(),
	}).Debug("sending request")

	response, err := conn.client.Do(request)
	if err != nil {
		return result, &api.CommunicationError{Cause: err.Error()}
	}
	defer func() { _ = response.Body.Close() }()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return result, &api.CommunicationError{Cause: err.Error()}
	}

	return parseReturnType[T](method.ReturnType(), response.StatusCode, payload)
}

// prepareRequest builds the HTTP request for a method call without
// dispatching it.
func prepareRequest(ctx context.Context, conn *Connection, method api.Method) (*http.Request, error) {
	httpMethod := httpMethodForOperation(method.Operation())

	// The open authentication endpoint is the one call that runs without
	// a database prefix and without authorization headers; it is how the
	// first token is obtained.
	openAuth := method.Path() == arango.PathOpenAuth
	databaseName := conn.Database()
	if openAuth {
		databaseName = ""
	}
	uri := buildRequestURI(conn.datasource, databaseName, method)

	// The auth gate comes before body serialization: with token auth
	// selected and no token present, no request is constructed at all.
	if !openAuth && conn.datasource.Authentication().Method() == api.AuthJWT && conn.Token() == "" {
		return nil, &api.NotAuthenticatedError{
			Cause: "the client must be authenticated first, when using JWT authentication",
		}
	}

	var body io.Reader
	var contentLength int64
	var content []byte
	if methodContent := method.Content(); methodContent != nil {
		encoded, err := json.Marshal(methodContent)
		if err != nil {
			return nil, &api.SerializationError{Cause: err.Error()}
		}
		content = encoded
		contentLength = int64(len(encoded))
		body = bytes.NewReader(encoded)
		common.Logger.WithField("body", string(encoded)).Trace("request body")
	}

	request, err := http.NewRequestWithContext(ctx, httpMethod, uri, body)
	if err != nil {
		return nil, &api.CommunicationError{Cause: err.Error()}
	}

	request.Header.Set("User-Agent", headerUserAgentFor(conn.userAgent))
	authentication := conn.datasource.Authentication()
	if openAuth {
		authentication = api.NoAuthentication()
	}
	switch authentication.Method() {
	case api.AuthBasic:
		credentials := authentication.Credentials()
		request.SetBasicAuth(credentials.Username(), credentials.Password())
	case api.AuthJWT:
		request.Header.Set("Authorization", "Bearer "+conn.Token())
	case api.AuthNone:
	}
	for _, header := range method.Header().List() {
		request.Header.Set(header.Name, api.FormatValue(header.Value))
	}

	if content != nil {
		request.Header.Set("Content-Type", "application/json")
		request.Header.Set("Content-Length", strconv.FormatInt(contentLength, 10))
		request.ContentLength = contentLength
	}
	return request, nil
}

// parseReturnType extracts the typed result from the response payload
// according to the method's return type specification.
func parseReturnType[T any](returnType api.RPCReturnType, statusCode int, payload []byte) (T, error) {
	var result T
	common.Logger.WithField("status", statusCode).Debug("received response")

	if statusCode >= 200 && statusCode < 300 {
		if len(payload) == 0 {
			return result, nil
		}
		source := payload
		if returnType.Result != "" {
			var envelope map[string]json.RawMessage
			if err := json.Unmarshal(payload, &envelope); err == nil {
				if value, present := envelope[returnType.Result]; present {
					source = value
				}
			}
		}
		if err := json.Unmarshal(source, &result); err != nil {
			common.Logger.WithField("body", string(payload)).Debug("response body")
			return result, &api.DeserializationError{Cause: err.Error()}
		}
		common.Logger.WithField("body", string(payload)).Trace("response body")
		return result, nil
	}

	common.Logger.WithField("body", string(payload)).Debug("response body")
	return result, parseMethodError(statusCode, payload)
}

func parseMethodError(statusCode int, payload []byte) error {
	var envelope struct {
		ErrorNum     *uint16 `json:"errorNum"`
		ErrorMessage *string `json:"errorMessage"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil &&
		envelope.ErrorNum != nil && envelope.ErrorMessage != nil {
		return api.NewMethodError(
			statusCode,
			api.ErrorCodeFromUint16(*envelope.ErrorNum),
			*envelope.ErrorMessage,
		)
	}
	errorCode := api.ErrorCodeFromUint16(uint16(statusCode))
	message := string(payload)
	if len(payload) == 0 {
		message = errorCode.Description()
	}
	return api.NewMethodError(statusCode, errorCode, message)
}

func headerUserAgentFor(agent api.UserAgent) string {
	version := agent.Version()
	return "Mozilla/5.0 (compatible; " + agent.Name() + "/" + version.Major + "." + version.Minor +
		"; +" + agent.Homepage() + ")"
}

func httpMethodForOperation(operation api.Operation) string {
	switch operation {
	case api.OperationCreate:
		return http.MethodPost
	case api.OperationRead:
		return http.MethodGet
	case api.OperationModify:
		return http.MethodPatch
	case api.OperationReplace:
		return http.MethodPut
	case api.OperationDelete:
		return http.MethodDelete
	case api.OperationReadHeader:
		return http.MethodHead
	default:
		return http.MethodGet
	}
}

// buildRequestURI assembles the request URI: scheme, host and port from
// the datasource, the database prefix when a database is selected, the
// percent-encoded resource path and the query parameters in their
// declared order.
func buildRequestURI(datasource DataSource, databaseName string, prepare api.Prepare) string {
	var uri strings.Builder
	uri.WriteString(datasource.Protocol())
	uri.WriteString("://")
	uri.WriteString(datasource.Host())
	uri.WriteByte(':')
	uri.WriteString(strconv.Itoa(int(datasource.Port())))
	if databaseName != "" {
		uri.WriteString(arango.PathDB)
		uri.WriteString(percentEncode(databaseName))
	}
	uri.WriteString(percentEncode(prepare.Path()))
	parameters := prepare.Parameters().List()
	if len(parameters) > 0 {
		uri.WriteByte('?')
		for i, param := range parameters {
			if i > 0 {
				uri.WriteByte('&')
			}
			uri.WriteString(percentEncode(param.Name))
			uri.WriteByte('=')
			uri.WriteString(percentEncode(api.FormatValue(param.Value)))
		}
	}
	return uri.String()
}

const upperhex = "0123456789ABCDEF"

// percentEncode escapes the characters that are not safe inside a URL
// path or query component: control characters, non-ASCII bytes, space,
// '"', '#', '<', '>', '?', '`', '{' and '}'. All other characters,
// notably '/', '&' and '=', pass through unchanged so that resource paths
// and parameter separators keep their shape.
func percentEncode(value string) string {
	var sb strings.Builder
	for i := 0; i < len(value); i++ {
		c := value[i]
		if mustEscape(c) {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&0x0F])
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func mustEscape(c byte) bool {
	if c < 0x20 || c > 0x7E {
		return true
	}
	switch c {
	case ' ', '"', '#', '<', '>', '?', '`', '{', '}':
		return true
	}
	return false
}
