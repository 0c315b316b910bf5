// Package cli provides the interactive ComboVault command-line client.
//
// It wires configuration, API services, and an interactive REPL. Typical
// flow: prompt for credentials, start a background connectivity watcher,
// and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - Create, verify and close combo records
//   - Show a record by address
//   - Upload a replay alongside a verification, download one by key
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
