package login

import "go.uber.org/zap"

// PanicReporter logs the fault and panics. Reported from the UI loop, the
// panic takes the process down the same way an uncaught exception would.
type PanicReporter struct {
	Logger *zap.Logger
}

// Report implements domain.FaultReporter.
func (r PanicReporter) Report(err error) {
	if r.Logger != nil {
		r.Logger.Error("unrecoverable failure", zap.Error(err))
	}
	panic(err)
}

// FaultReporterFunc adapts a function to domain.FaultReporter.
type FaultReporterFunc func(err error)

// Report implements domain.FaultReporter.
func (f FaultReporterFunc) Report(err error) { f(err) }
