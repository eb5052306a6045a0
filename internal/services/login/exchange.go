package login

import (
	"fmt"

	"go.uber.org/zap"

	"loginflow/internal/domain"
)

type exchangeFunc func() (domain.AccessTokenEnvelope, error)

type completion func(env domain.AccessTokenEnvelope, err error)

// start runs exchange off the loop and posts done back onto it.
func (c *Controller) start(kind string, identifier string, exchange exchangeFunc, done completion) bool {
	if c.cfg.SingleFlight && c.inFlight > 0 {
		c.log.Debug("exchange dropped, another is in flight", zap.String("kind", kind))
		return false
	}

	c.attempts++
	attempt := c.attempts
	c.inFlight++
	log := c.log.With(zap.Uint64("attempt", attempt), zap.String("kind", kind))
	log.Debug("exchange started", zap.String("identifier", identifier))

	go func() {
		env, err := exchange()
		if postErr := c.loop.Post(func() {
			c.inFlight--
			done(env, err)
		}); postErr != nil {
			log.Debug("exchange result dropped", zap.Error(postErr))
		}
	}()
	return true
}

func (c *Controller) submit(pair domain.CredentialPair) {
	c.start("credentials", pair.Identifier, func() (domain.AccessTokenEnvelope, error) {
		return c.client.ExchangeCredentials(c.ctx, pair)
	}, func(env domain.AccessTokenEnvelope, err error) {
		if err != nil {
			c.loginFailed(pair, err)
			return
		}
		c.loginSucceeded(env)
	})
}

// VerifyStepUp completes a login that needed a second factor. token comes
// from the StepUpTicket of the step-up route.
func (c *Controller) VerifyStepUp(token domain.StepUpToken, code string) {
	if c.destroyed {
		return
	}
	pair, ok := c.tickets.lookup(token)
	if !ok {
		if c.attached {
			c.view.ShowMessage(domain.MessageStepUpExpired)
			c.nav.Navigate(domain.Route{Screen: domain.ScreenLogin, ClearHistory: true})
		}
		return
	}

	c.start("step_up", pair.Identifier, func() (domain.AccessTokenEnvelope, error) {
		return c.client.ExchangeWithCode(c.ctx, pair, code)
	}, func(env domain.AccessTokenEnvelope, err error) {
		if err != nil {
			c.stepUpFailed(token, err)
			return
		}
		c.tickets.discard(token)
		c.loginSucceeded(env)
	})
}

// CancelStepUp forgets the pending pair behind token.
func (c *Controller) CancelStepUp(token domain.StepUpToken) {
	c.tickets.discard(token)
}

// loginSucceeded persists the session off the loop and navigates home once
// the write is done.
func (c *Controller) loginSucceeded(env domain.AccessTokenEnvelope) {
	if !c.attached {
		c.log.Debug("login succeeded after detach, result dropped")
		return
	}

	c.inFlight++
	go func() {
		err := c.store.SetSession(c.ctx, env.User, env.AccessToken)
		if postErr := c.loop.Post(func() {
			c.inFlight--
			c.sessionSaved(env, err)
		}); postErr != nil {
			c.log.Debug("session write result dropped", zap.Error(postErr))
		}
	}()
}

func (c *Controller) sessionSaved(env domain.AccessTokenEnvelope, err error) {
	if c.destroyed {
		c.log.Debug("session write finished after destroy", zap.Error(err))
		return
	}
	if err != nil {
		c.faults.Report(fmt.Errorf("persist session: %w", err))
		return
	}
	c.log.Info("login succeeded", zap.Int64("user_id", env.User.ID))
	if !c.attached {
		c.log.Debug("session saved after detach, navigation dropped")
		return
	}
	c.nav.Navigate(domain.Route{Screen: domain.ScreenHome, ClearHistory: true})
}

func (c *Controller) loginFailed(pair domain.CredentialPair, err error) {
	if !c.attached {
		return
	}
	outcome := Classify(err)
	c.log.Info("login failed", zap.Stringer("outcome", outcome), zap.Error(err))

	switch outcome {
	case OutcomeStepUp:
		ticket := c.tickets.issue(pair)
		c.nav.Navigate(domain.Route{Screen: domain.ScreenStepUp, StepUp: &ticket})
	default:
		c.report(outcome, err)
	}
}

// stepUpFailed keeps the ticket only when another code may still succeed.
func (c *Controller) stepUpFailed(token domain.StepUpToken, err error) {
	outcome := Classify(err)
	if outcome != OutcomeStepUp && outcome != OutcomeNetworkUnreachable {
		c.tickets.discard(token)
	}
	if !c.attached {
		return
	}
	c.log.Info("step-up failed", zap.Stringer("outcome", outcome), zap.Error(err))

	switch outcome {
	case OutcomeStepUp:
		c.view.ShowMessage(domain.MessageCodeInvalid)
	default:
		c.report(outcome, err)
	}
}

// report handles every outcome shared by the login and step-up screens.
func (c *Controller) report(outcome Outcome, err error) {
	switch outcome {
	case OutcomeInvalidCredentials:
		c.view.ShowMessage(domain.MessageInvalidLogin)
	case OutcomeNetworkUnreachable:
		c.view.ShowMessage(domain.MessageUnableToConnect)
	case OutcomeServerRejected:
		c.view.ShowMessage(domain.MessageUnableToLogin)
	default:
		c.faults.Report(&UnhandledError{Err: err})
	}
}
