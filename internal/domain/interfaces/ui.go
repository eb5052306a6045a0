package interfaces

import domaintypes "loginflow/internal/domain/types"

// View is the login screen as seen by the controller. Calls always arrive
// on the UI loop.
type View interface {
	SetSubmitEnabled(enabled bool)
	ShowMessage(msg domaintypes.Message)
}

// Navigator performs screen transitions. Calls always arrive on the UI loop.
type Navigator interface {
	Navigate(route domaintypes.Route)
}

// FaultReporter receives errors that must not be recovered locally.
type FaultReporter interface {
	Report(err error)
}
