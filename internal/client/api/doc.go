// Package api contains the HTTP client for the ideatrack backend.
//
// # Overview
//
// The package provides:
//  1. A Client that wraps every outbound request: it attaches the current
//     bearer token (via a TokenSource), tags requests with an X-Request-Id,
//     and speaks JSON in both directions.
//  2. Two response recovery policies. A rate-limited request (HTTP 429) is
//     suspended for the server-suggested Retry-After delay and re-issued
//     exactly once; a second 429 is surfaced to the caller. An unauthorized
//     response (HTTP 401) triggers the registered authentication-invalidated
//     handler and is never retried.
//  3. Endpoint bindings for the OTP auth flow, idea CRUD, notifications and
//     the leaderboard.
//
// # Error Handling
//
// Recoverable conditions are exposed as sentinel errors in internal/common
// (common.ErrUnauthorized, common.ErrRateLimited) matched with errors.Is.
// All other non-2xx responses become *api.Error carrying the status code and
// the server-provided message verbatim.
//
// Concurrency & Contexts
//
// The Client is safe for concurrent use. All operations accept a
// context.Context and honor cancellation while a retry delay is pending.
package api
