// Package bowlingv1 declares the bowling.v1.BowlingService gRPC contract.
//
// Messages are protobuf well-known types so the service needs no generated
// message code:
//
//   - ScoreGame: google.protobuf.StringValue (notation) → google.protobuf.Struct
//   - GenerateGame: google.protobuf.Int64Value (seed, 0 = server chosen) → google.protobuf.Struct
//   - GetGame: google.protobuf.StringValue (game id) → google.protobuf.Struct
//   - ListGames: google.protobuf.Int32Value (limit, 0 = server default) → google.protobuf.Struct{games}
//
// Struct fields are documented on the field name constants.
package bowlingv1
