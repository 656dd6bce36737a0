// Package api contains the game service's transport surfaces.
//
// Subpackages:
//   - grpc/bowling: BowlingService (score, generate, fetch stored games)
//   - grpc/metadata: request id and locale headers, request id interceptor
//   - grpc/interceptors: unary call logging
package api
