package types

// StepUpToken is the opaque handle for a pending step-up verification.
type StepUpToken string

// String returns the string form of the token.
func (t StepUpToken) String() string { return string(t) }
