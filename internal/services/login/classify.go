package login

import (
	"errors"
	"fmt"

	"loginflow/internal/domain"
)

// Outcome is the class a failed credential exchange falls into.
type Outcome int

const (
	// OutcomeFatal is a transport-level or unmodelled failure. It is never
	// recovered locally.
	OutcomeFatal Outcome = iota
	// OutcomeStepUp means the server wants (another) second factor.
	OutcomeStepUp
	// OutcomeInvalidCredentials means the pair matched no account.
	OutcomeInvalidCredentials
	// OutcomeNetworkUnreachable means the server could not be reached.
	OutcomeNetworkUnreachable
	// OutcomeServerRejected is any other server-reported code.
	OutcomeServerRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStepUp:
		return "step_up"
	case OutcomeInvalidCredentials:
		return "invalid_credentials"
	case OutcomeNetworkUnreachable:
		return "network_unreachable"
	case OutcomeServerRejected:
		return "server_rejected"
	default:
		return "fatal"
	}
}

// Classify maps a failed exchange to its Outcome. Server errors with an
// unknown code degrade to OutcomeServerRejected; transport errors other than
// KindNetwork, and errors of any other shape, are OutcomeFatal.
func Classify(err error) Outcome {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case domain.CodeTFARequired, domain.CodeTFAFailed:
			return OutcomeStepUp
		case domain.CodeInvalidXAuthLogin:
			return OutcomeInvalidCredentials
		default:
			return OutcomeServerRejected
		}
	}

	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) && transportErr.Kind == domain.KindNetwork {
		return OutcomeNetworkUnreachable
	}
	return OutcomeFatal
}

// UnhandledError is what the Controller reports for OutcomeFatal failures.
type UnhandledError struct {
	Err error
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("unhandled login failure: %v", e.Err)
}

func (e *UnhandledError) Unwrap() error { return e.Err }
