// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the session store, the
// credential-exchange client, the logger and the UI loop, and exposes them
// via the Wire struct for commands to use.
package app
