// Package client contains client-side building blocks for ComboVault.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the ComboVault backend: Register/GetSalt/Login, Ping, the combo
//     record lifecycle (create/verify/close/get), and presigned replay
//     URL helpers.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects an access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotOwner, ErrNotFound,
// ErrAlreadyExists. Validation failures keep the server's message so the user
// can see which bound was violated.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client
