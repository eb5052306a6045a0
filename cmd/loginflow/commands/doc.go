// Package commands defines the loginflow CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login   Sign in interactively, including a step-up code when asked
//   - whoami  Print the stored session
//   - logout  Forget the stored session
//
// # Implementation
//
// The root command loads configuration from the environment (and an optional
// .env file), applies flag overrides and builds the dependency graph
// (session store, credential-exchange client, UI loop) before any subcommand
// runs. The login command acts as the host of the login controller: it
// forwards every entered field value to the controller on the UI loop and
// follows the routes and messages the controller emits.
package commands
