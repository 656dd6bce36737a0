// Package timeouts defines the timeouts shared by the tenpin binaries.
package timeouts

import "time"

// GRPCDial caps connecting to the game server and waiting for it to report
// SERVING.
const GRPCDial = 5 * time.Second

// GRPCRequest caps a single BowlingService call from the CLI.
const GRPCRequest = 10 * time.Second

// Shutdown caps flushing telemetry when a binary exits.
const Shutdown = 5 * time.Second
