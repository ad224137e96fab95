// Package cli provides the interactive ideatrack command-line client.
//
// It wires configuration, local session storage, the HTTP API client, and an
// interactive REPL. Typical flow: restore a persisted session (or log in with
// an employee number and one-time passcode), then browse and submit ideas.
//
// Key features:
//   - Login / Logout (two-step OTP flow)
//   - Submit ideas, list and filter them, inspect a single idea
//   - Reviewer/admin status changes
//   - Leaderboard, notifications, profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
