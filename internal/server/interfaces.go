package server

// Server defines the lifecycle of the movie API server.
//
// RunServer blocks until a stop signal arrives and the listener has been
// closed. Shutdown stops serving and waits for in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
