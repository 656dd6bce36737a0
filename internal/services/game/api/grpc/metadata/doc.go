// Package metadata defines the request headers the game service reads and
// writes, and the interceptor that guarantees every call carries a request id.
//
// # Headers
//
//   - RequestIDHeader: correlates a call across client and server logs.
//   - LocaleHeader: selects the language used for error messages.
package metadata
