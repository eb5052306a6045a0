package types

// CredentialPair is the latest (identifier, secret) pair observed on the form.
//
// Values are immutable; a fresh pair is built for every field change.
type CredentialPair struct {
	Identifier string
	Secret     string
}

// String hides the secret so pairs can be logged safely.
func (p CredentialPair) String() string {
	return "CredentialPair{" + p.Identifier + ", ***}"
}

// User is the account returned by a successful credential exchange.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// AccessTokenEnvelope is the success payload of a credential exchange.
type AccessTokenEnvelope struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
