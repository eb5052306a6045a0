package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Session backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// profilePattern keeps profile names usable in file names and Redis keys.
var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string `env:"LOGINFLOW_HOME"` // config directory, e.g. $HOME/.loginflow
	APIURL   string `env:"LOGINFLOW_API_URL" default:"http://127.0.0.1:8080"`
	ClientID string `env:"LOGINFLOW_CLIENT_ID" default:"loginflow-cli"`

	HTTPTimeout   time.Duration `env:"LOGINFLOW_HTTP_TIMEOUT" default:"15s"`
	RetryAttempts int           `env:"LOGINFLOW_RETRY_ATTEMPTS" default:"3"`
	RetryBackoff  time.Duration `env:"LOGINFLOW_RETRY_BACKOFF" default:"250ms"`

	SessionBackend string `env:"LOGINFLOW_SESSION_BACKEND" default:"file"`
	RedisURL       string `env:"LOGINFLOW_REDIS_URL"`
	RedisPrefix    string `env:"LOGINFLOW_REDIS_PREFIX" default:"loginflow"`
	Profile        string `env:"LOGINFLOW_PROFILE" default:"default"`
	Passphrase     string `env:"LOGINFLOW_PASSPHRASE"`

	SingleFlight bool          `env:"LOGINFLOW_SINGLE_FLIGHT" default:"false"`
	StepUpTTL    time.Duration `env:"LOGINFLOW_STEP_UP_TTL" default:"10m"`

	LogLevel  string `env:"LOGINFLOW_LOG_LEVEL" default:"warn"`
	LogFormat string `env:"LOGINFLOW_LOG_FORMAT" default:"console"`
}

// LoadConfig reads an optional .env file, then the environment. The result
// is not validated so that command-line flags can still override it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return cfg, nil
}

// Validate fills derived defaults and reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.Home = filepath.Join(dir, ".loginflow")
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("LOGINFLOW_API_URL must be an http(s) URL, got %q", c.APIURL)
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("LOGINFLOW_HTTP_TIMEOUT must be positive")
	}
	if c.RetryAttempts < 1 {
		return errors.New("LOGINFLOW_RETRY_ATTEMPTS must be at least 1")
	}
	if c.RetryBackoff < 0 {
		return errors.New("LOGINFLOW_RETRY_BACKOFF must not be negative")
	}
	if c.StepUpTTL <= 0 {
		return errors.New("LOGINFLOW_STEP_UP_TTL must be positive")
	}

	if c.Profile == "" {
		c.Profile = "default"
	}
	if !profilePattern.MatchString(c.Profile) {
		return fmt.Errorf("LOGINFLOW_PROFILE may only contain letters, digits, '.', '_' and '-', got %q", c.Profile)
	}

	switch c.SessionBackend {
	case BackendFile:
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("LOGINFLOW_REDIS_URL is required for the redis session backend")
		}
	default:
		return fmt.Errorf("LOGINFLOW_SESSION_BACKEND must be %q or %q, got %q", BackendFile, BackendRedis, c.SessionBackend)
	}
	return nil
}
