// Package cli provides the interactive Pankitchen command-line client.
//
// It wires configuration, local credential storage, the API services, and an
// interactive REPL over the bread-recipe feed. On start the session
// bootstrapper reads the stored access token and routes the user either
// straight into the feed or into the login flow.
//
// Key features:
//   - Register / Login / Logout
//   - List, show, search the feed; list own posts
//   - Create, update and delete posts (with optional image upload)
//   - whoami / status / refresh for session housekeeping
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
