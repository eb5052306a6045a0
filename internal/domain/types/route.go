package types

// Screen names a navigation destination.
type Screen int

const (
	// ScreenLogin is the credential form.
	ScreenLogin Screen = iota
	// ScreenHome is the authenticated landing screen.
	ScreenHome
	// ScreenStepUp asks for a second verification factor.
	ScreenStepUp
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenHome:
		return "home"
	case ScreenStepUp:
		return "step-up"
	default:
		return "unknown"
	}
}

// StepUpTicket is the context handed to the step-up screen.
//
// It deliberately carries no secret; the pending pair stays with the
// controller and is looked up by Token.
type StepUpTicket struct {
	Identifier string
	Token      StepUpToken
}

// Route is a navigation request.
type Route struct {
	Screen Screen
	// ClearHistory drops every previous screen so back navigation cannot
	// return to them.
	ClearHistory bool
	// StepUp is set for ScreenStepUp routes.
	StepUp *StepUpTicket
}
