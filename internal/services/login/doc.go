// Package login drives the login and step-up screens.
//
// The Controller composes raw field edits into credential pairs, derives the
// submit-enabled signal, samples the latest pair on each submit intent and
// runs one credential exchange per sample. Outcomes are routed by Classify:
//
//   - step-up required/failed  navigate to the step-up screen with a ticket
//   - invalid credentials      show MessageInvalidLogin
//   - network unreachable      show MessageUnableToConnect
//   - other server codes       show MessageUnableToLogin
//   - anything else            escalate to the FaultReporter
//
// All Controller methods run on the UI loop. Exchanges run on their own
// goroutine and post their completion back to the loop; completions that
// arrive while no view is attached are dropped.
package login
