package commands

import (
	"github.com/spf13/cobra"

	"loginflow/internal/app"
)

var (
	wire *app.Wire

	home           string
	passphrase     string
	apiURL         string
	profile        string
	sessionBackend string
	redisURL       string
	logLevel       string
	singleFlight   bool
)

func Execute() error {
	root := &cobra.Command{
		Use:          "loginflow",
		Short:        "Sign in to the service from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			wire, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "config dir (default ~/.loginflow)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored session")
	pf.StringVar(&apiURL, "api", "", "credential-exchange base URL (e.g. http://127.0.0.1:8080)")
	pf.StringVar(&profile, "profile", "", "session profile name")
	pf.StringVar(&sessionBackend, "session-backend", "", "where to keep the session: file or redis")
	pf.StringVar(&redisURL, "redis-url", "", "redis URL for the redis session backend")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&singleFlight, "single-flight", false, "ignore submits while a login attempt is running")

	root.AddCommand(loginCmd(), whoamiCmd(), logoutCmd())
	return root.Execute()
}

// applyFlags overrides environment settings with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *app.Config) {
	flags := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("home", &cfg.Home, home)
	set("passphrase", &cfg.Passphrase, passphrase)
	set("api", &cfg.APIURL, apiURL)
	set("profile", &cfg.Profile, profile)
	set("session-backend", &cfg.SessionBackend, sessionBackend)
	set("redis-url", &cfg.RedisURL, redisURL)
	set("log-level", &cfg.LogLevel, logLevel)
	if flags.Changed("single-flight") {
		cfg.SingleFlight = singleFlight
	}
}
