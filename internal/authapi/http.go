package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"loginflow/internal/domain"
	"loginflow/internal/platform/logging"
	"loginflow/internal/platform/retry"
)

const (
	accessTokenPath = "/xauth/access_token"
	maxBodyBytes    = 1 << 20
	userAgent       = "loginflow"
)

type HTTP struct {
	Base     string
	ClientID string
	HTTP     *http.Client
	Retry    retry.Policy
}

func NewHTTP(base, clientID string) *HTTP {
	return &HTTP{
		Base:     strings.TrimRight(base, "/"),
		ClientID: clientID,
		HTTP:     http.DefaultClient,
		Retry:    retry.Policy{MaxAttempts: 1},
	}
}

var _ domain.AuthClient = (*HTTP)(nil)

type exchangeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code,omitempty"`
}

func (c *HTTP) ExchangeCredentials(ctx context.Context, pair domain.CredentialPair) (domain.AccessTokenEnvelope, error) {
	return c.exchange(ctx, exchangeRequest{Email: pair.Identifier, Password: pair.Secret})
}

func (c *HTTP) ExchangeWithCode(ctx context.Context, pair domain.CredentialPair, code string) (domain.AccessTokenEnvelope, error) {
	return c.exchange(ctx, exchangeRequest{Email: pair.Identifier, Password: pair.Secret, Code: code})
}

func (c *HTTP) exchange(ctx context.Context, in exchangeRequest) (domain.AccessTokenEnvelope, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return domain.AccessTokenEnvelope{}, err
	}

	log := logging.FromContext(ctx)
	policy := c.Retry
	policy.OnRetry = func(attempt int, err error, backoff time.Duration) {
		log.Info("credential exchange unreachable, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))
		if c.Retry.OnRetry != nil {
			c.Retry.OnRetry(attempt, err, backoff)
		}
	}

	out, err := retry.Do(ctx, policy, classifyRetry, func(ctx context.Context) (domain.AccessTokenEnvelope, error) {
		return c.post(ctx, body)
	})
	var perm *retry.PermanentError
	if errors.As(err, &perm) {
		return out, perm.Err
	}
	return out, err
}

// classifyRetry retries only when the server was not reached.
func classifyRetry(err error) retry.Action {
	var te *domain.TransportError
	if errors.As(err, &te) && te.Kind == domain.KindNetwork {
		return retry.Retry
	}
	return retry.Stop
}

func (c *HTTP) endpoint() string {
	u := c.Base + accessTokenPath
	if c.ClientID != "" {
		u += "?client_id=" + url.QueryEscape(c.ClientID)
	}
	return u
}

func (c *HTTP) post(ctx context.Context, body []byte) (domain.AccessTokenEnvelope, error) {
	var out domain.AccessTokenEnvelope

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return out, &domain.TransportError{Kind: domain.KindUnexpected, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return out, &domain.TransportError{Kind: domain.KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return out, &domain.TransportError{Kind: domain.KindNetwork, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode/100 != 2 {
		return out, decodeFailure(resp, raw)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &domain.TransportError{Kind: domain.KindConversion, Status: resp.StatusCode, Err: err}
	}
	if out.AccessToken == "" {
		return out, &domain.TransportError{
			Kind:   domain.KindConversion,
			Status: resp.StatusCode,
			Err:    errors.New("response carries no access token"),
		}
	}
	return out, nil
}

// decodeFailure turns a non-2xx response into an APIError when the body is
// an error envelope, and into an HTTP transport error otherwise.
func decodeFailure(resp *http.Response, raw []byte) error {
	var apiErr domain.APIError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Code != "" {
		if apiErr.HTTPCode == 0 {
			apiErr.HTTPCode = resp.StatusCode
		}
		return &apiErr
	}
	return &domain.TransportError{
		Kind:   domain.KindHTTP,
		Status: resp.StatusCode,
		Err:    fmt.Errorf("credential exchange %s: %s", accessTokenPath, resp.Status),
	}
}
