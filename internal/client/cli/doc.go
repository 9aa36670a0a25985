// Package cli provides the interactive SkillMesh command-line client.
//
// It wires configuration, the local session cache, the backend gateway, and
// an interactive REPL whose commands are gated by the onboarding flow:
// sign-up leads to email verification, then profile completion, category
// selection, a first skill offer, and finally the main area. A background
// watcher tracks backend reachability.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, Root, and StartOnlineStatusWatcher for details.
package cli
