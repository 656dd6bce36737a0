// Package server composes the game gRPC server.
//
// It opens the game store, registers BowlingService with the request id and
// logging interceptors, and reports health once the service is registered.
package server
