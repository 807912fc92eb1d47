// Package http implements the REST transport of the movie server.
//
// It wires the chi router, the movie handlers and the middleware chain:
// panic recovery, request tracing, access logging, CORS and response
// compression. Handlers decode requests, delegate to the service layer and
// translate service and storage errors into HTTP status codes.
package http
