package interfaces

import (
	"context"

	domaintypes "loginflow/internal/domain/types"
)

// AuthClient performs the remote credential exchange.
//
// Failures are *domaintypes.APIError when the server answered with an error
// envelope, *domaintypes.TransportError when the request failed in transit,
// or any other error for conditions the client does not model.
type AuthClient interface {
	ExchangeCredentials(
		ctx context.Context,
		pair domaintypes.CredentialPair,
	) (domaintypes.AccessTokenEnvelope, error)
	ExchangeWithCode(
		ctx context.Context,
		pair domaintypes.CredentialPair,
		code string,
	) (domaintypes.AccessTokenEnvelope, error)
}
