package server

// Server is the lifecycle of the transport servers.
type Server interface {
	// RunServer serves requests until a termination signal arrives.
	RunServer()

	// Shutdown gracefully stops serving.
	Shutdown()
}
