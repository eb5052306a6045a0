package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginflow/internal/authapi"
	"loginflow/internal/domain"
)

var testKey = []byte("test-key")

func startStub(t *testing.T, clock clockwork.Clock) string {
	t.Helper()
	srv := newServer(serverConfig{
		SigningKey: testKey,
		TokenTTL:   time.Hour,
		Accounts:   demoAccounts(),
		Clock:      clock,
	})
	ts := httptest.NewServer(srv.e)
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestAccessToken_IssuesVerifiableJWT(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	client := authapi.NewHTTP(startStub(t, clockwork.NewFakeClockAt(now)), "test")

	env, err := client.ExchangeCredentials(context.Background(), domain.CredentialPair{
		Identifier: "Alice@Example.com",
		Secret:     "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", env.User.Name)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(env.AccessToken, claims, func(*jwt.Token) (any, error) { return testKey, nil },
		jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(time.Hour)))
}

func TestAccessToken_Failures(t *testing.T) {
	client := authapi.NewHTTP(startStub(t, nil), "test")
	bob := domain.CredentialPair{Identifier: "bob@example.com", Secret: "password"}

	cases := []struct {
		name   string
		pair   domain.CredentialPair
		code   string
		want   string
		status int
	}{
		{"unknown account", domain.CredentialPair{Identifier: "eve@example.com", Secret: "password"}, "", domain.CodeInvalidXAuthLogin, http.StatusUnauthorized},
		{"wrong password", domain.CredentialPair{Identifier: "alice@example.com", Secret: "nope"}, "", domain.CodeInvalidXAuthLogin, http.StatusUnauthorized},
		{"step-up required", bob, "", domain.CodeTFARequired, http.StatusForbidden},
		{"step-up failed", bob, "000000", domain.CodeTFAFailed, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.ExchangeWithCode(context.Background(), tc.pair, tc.code)
			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.want, apiErr.Code)
			assert.Equal(t, tc.status, apiErr.HTTPCode)
		})
	}
}

func TestAccessToken_StepUpSucceeds(t *testing.T) {
	client := authapi.NewHTTP(startStub(t, nil), "test")

	env, err := client.ExchangeWithCode(context.Background(),
		domain.CredentialPair{Identifier: "bob@example.com", Secret: "password"}, "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(2), env.User.ID)
	assert.NotEmpty(t, env.AccessToken)
}

func TestAccessToken_MissingClientID(t *testing.T) {
	client := authapi.NewHTTP(startStub(t, nil), "")

	_, err := client.ExchangeCredentials(context.Background(),
		domain.CredentialPair{Identifier: "alice@example.com", Secret: "password"})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, codeMissingClientID, apiErr.Code)
}

func TestLiveness(t *testing.T) {
	resp, err := http.Get(startStub(t, nil) + "/health/live")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
