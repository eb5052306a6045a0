package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"loginflow/internal/domain"
)

const codeMissingClientID = "missing_client_id"

type account struct {
	User       domain.User
	Password   string
	StepUpCode string
}

type serverConfig struct {
	SigningKey []byte
	TokenTTL   time.Duration
	Accounts   []account
	Clock      clockwork.Clock
	Logger     *zap.Logger
}

type server struct {
	e        *echo.Echo
	accounts map[string]account
	key      []byte
	ttl      time.Duration
	clock    clockwork.Clock
	log      *zap.Logger
}

func newServer(cfg serverConfig) *server {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	s := &server{
		e:        echo.New(),
		accounts: make(map[string]account, len(cfg.Accounts)),
		key:      cfg.SigningKey,
		ttl:      cfg.TokenTTL,
		clock:    cfg.Clock,
		log:      cfg.Logger,
	}
	for _, a := range cfg.Accounts {
		s.accounts[strings.ToLower(a.User.Email)] = a
	}

	s.e.HideBanner = true
	s.e.HidePort = true
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURIPath: true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info("request",
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	s.e.GET("/health/live", s.handleLiveness)
	s.e.POST("/xauth/access_token", s.handleAccessToken)
	return s
}

type accessTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

func (s *server) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleAccessToken(c echo.Context) error {
	if c.QueryParam("client_id") == "" {
		return apiError(c, http.StatusBadRequest, codeMissingClientID, "client_id is required")
	}

	var req accessTokenRequest
	if err := c.Bind(&req); err != nil {
		return apiError(c, http.StatusBadRequest, "invalid_request", "Malformed request body.")
	}

	acct, ok := s.accounts[strings.ToLower(strings.TrimSpace(req.Email))]
	if !ok || acct.Password != req.Password {
		return apiError(c, http.StatusUnauthorized, domain.CodeInvalidXAuthLogin, "Login does not match any of our records.")
	}
	if acct.StepUpCode != "" {
		if req.Code == "" {
			return apiError(c, http.StatusForbidden, domain.CodeTFARequired, "Two-factor authentication required.")
		}
		if req.Code != acct.StepUpCode {
			return apiError(c, http.StatusForbidden, domain.CodeTFAFailed, "The code provided does not match.")
		}
	}

	token, err := s.issueToken(acct.User)
	if err != nil {
		s.log.Error("sign access token", zap.Error(err))
		return apiError(c, http.StatusInternalServerError, "internal_error", "Something went wrong.")
	}
	return c.JSON(http.StatusOK, domain.AccessTokenEnvelope{AccessToken: token, User: acct.User})
}

func (s *server) issueToken(u domain.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(u.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

func apiError(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, domain.APIError{Code: code, HTTPCode: status, Messages: []string{msg}})
}
