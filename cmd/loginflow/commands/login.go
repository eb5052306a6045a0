package commands

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"loginflow/internal/domain"
	"loginflow/internal/services/login"
)

var email string

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if wire.Config.Passphrase == "" {
				return fmt.Errorf("passphrase required (-p or LOGINFLOW_PASSPHRASE)")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := runLogin(ctx, wire.Loop, wire.NewLoginController, cmd.InOrStdin(), cmd.OutOrStdout(), email); err != nil {
				return err
			}
			sess, ok, err := wire.CurrentSession(ctx)
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", sess.User.Name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "prefill the email address")
	return cmd
}

// loop is the part of uiloop.Loop the login host drives.
type loop interface {
	login.Scheduler
	Do(ctx context.Context, fn func()) error
}

// runLogin drives a login controller from a terminal until the controller
// navigates home. Every entered value is forwarded as a field change.
func runLogin(
	ctx context.Context,
	ui loop,
	newController func(domain.Navigator) (*login.Controller, error),
	in io.Reader,
	out io.Writer,
	prefill string,
) error {
	term := newTerminal(in, out)
	c, err := newController(term)
	if err != nil {
		return err
	}
	if err := ui.Do(ctx, func() { c.Attach(term) }); err != nil {
		return err
	}
	defer func() {
		_ = ui.Do(context.Background(), func() {
			c.Detach()
			c.Destroy()
		})
	}()

	identifier := prefill
	for {
		if err := fillForm(ctx, ui, c, term, &identifier); err != nil {
			return err
		}
		if err := ui.Do(ctx, c.Submit); err != nil {
			return err
		}

		home, err := awaitOutcome(ctx, ui, c, term)
		if err != nil {
			return err
		}
		if home {
			return nil
		}
	}
}

// fillForm prompts until the controller reports the form as submittable.
func fillForm(ctx context.Context, ui loop, c *login.Controller, term *terminal, identifier *string) error {
	for {
		if *identifier == "" {
			v, err := term.prompt("Email: ")
			if err != nil {
				return err
			}
			*identifier = v
		} else {
			term.println("Email:", *identifier)
		}
		id := *identifier
		if err := ui.Do(ctx, func() { c.IdentifierChanged(id) }); err != nil {
			return err
		}

		secret, err := term.promptRaw("Password: ")
		if err != nil {
			return err
		}
		if err := ui.Do(ctx, func() { c.SecretChanged(secret) }); err != nil {
			return err
		}

		if term.enabled.Load() {
			return nil
		}
		term.println("Enter a valid email address and a password.")
		*identifier = ""
	}
}

// awaitOutcome follows controller events after a submit. It reports true
// once the controller navigated home, false when the form should be shown
// again.
func awaitOutcome(ctx context.Context, ui loop, c *login.Controller, term *terminal) (bool, error) {
	var ticket *domain.StepUpTicket
	for {
		var ev hostEvent
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case ev = <-term.events:
		}

		if ev.route == nil {
			term.println(ev.message.Text())
			switch {
			case ticket != nil && (ev.message == domain.MessageCodeInvalid || ev.message == domain.MessageUnableToConnect):
				if err := verifyStepUp(ctx, ui, c, term, ticket); err != nil {
					return false, err
				}
			case ev.message == domain.MessageStepUpExpired:
				// A route back to the form follows.
			default:
				return false, nil
			}
			continue
		}

		switch ev.route.Screen {
		case domain.ScreenHome:
			return true, nil
		case domain.ScreenLogin:
			return false, nil
		case domain.ScreenStepUp:
			ticket = ev.route.StepUp
			term.println("A verification code is required for " + ticket.Identifier + ".")
			if err := verifyStepUp(ctx, ui, c, term, ticket); err != nil {
				return false, err
			}
		}
	}
}

// verifyStepUp reads a code and hands it to the controller. The ticket is
// cancelled when input ends.
func verifyStepUp(ctx context.Context, ui loop, c *login.Controller, term *terminal, ticket *domain.StepUpTicket) error {
	code, err := term.promptRaw("Code: ")
	if err != nil {
		_ = ui.Do(context.Background(), func() { c.CancelStepUp(ticket.Token) })
		return err
	}
	return ui.Do(ctx, func() { c.VerifyStepUp(ticket.Token, code) })
}
