// Package server runs the movie API over HTTP.
//
// It owns the http.Server lifecycle: startup, signal handling and graceful
// shutdown once SIGINT, SIGTERM or SIGQUIT arrives.
package server
