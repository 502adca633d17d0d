package server

// Server runs the go-posts transports together with the background workers.
// RunServer blocks until SIGINT or SIGTERM arrives or a transport fails.
// Shutdown drains in-flight HTTP requests and stops the gRPC server
// gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
