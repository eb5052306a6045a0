package interfaces

import domaintypes "loginflow/internal/domain/types"

// LoginController drives the login and step-up screens. Every method must be
// called on the UI loop.
type LoginController interface {
	Attach(view View)
	Detach()
	IdentifierChanged(text string)
	SecretChanged(text string)
	Submit()
	VerifyStepUp(token domaintypes.StepUpToken, code string)
	CancelStepUp(token domaintypes.StepUpToken)
	Destroy()
}
