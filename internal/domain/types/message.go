package types

// Message identifies a user-visible notice.
type Message int

const (
	// MessageInvalidLogin is shown when the pair matches no account.
	MessageInvalidLogin Message = iota + 1
	// MessageUnableToConnect is shown when the server could not be reached.
	MessageUnableToConnect
	// MessageUnableToLogin is the generic server-side failure notice.
	MessageUnableToLogin
	// MessageCodeInvalid is shown when a step-up code is rejected.
	MessageCodeInvalid
	// MessageStepUpExpired is shown when a step-up ticket is unknown or stale.
	MessageStepUpExpired
)

// Text returns the English copy for m.
func (m Message) Text() string {
	switch m {
	case MessageInvalidLogin:
		return "Login does not match any of our records."
	case MessageUnableToConnect:
		return "Unable to connect."
	case MessageUnableToLogin:
		return "Unable to login."
	case MessageCodeInvalid:
		return "The code provided does not match."
	case MessageStepUpExpired:
		return "Verification expired, please log in again."
	default:
		return ""
	}
}

func (m Message) String() string { return m.Text() }
