// Package cli provides the interactive PocketBank command-line client.
//
// The App wires the account, deposit and session services to a REPL. Field
// input gets live feedback: each value is validated as soon as it is entered
// and re-prompted until it passes.
//
// Commands:
//   - register / login (signed out)
//   - dashboard, refresh, deposit, history, logout (signed in)
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
