// Package grpc contains the game service's gRPC surface.
//
//   - bowling/: the BowlingService implementation (score, generate, fetch)
//   - metadata/: request id and locale headers
//   - interceptors/: unary call logging
package grpc
