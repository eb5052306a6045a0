package login

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"loginflow/internal/domain"
	"loginflow/internal/platform/logging"
	"loginflow/internal/stream"
	"loginflow/internal/validate"
)

// DefaultStepUpTTL bounds how long a step-up ticket stays redeemable.
const DefaultStepUpTTL = 10 * time.Minute

// Scheduler runs functions on the UI loop.
type Scheduler interface {
	Post(fn func()) error
}

// Config tunes controller behaviour.
type Config struct {
	// SingleFlight drops submit intents while an exchange is in flight.
	// The default issues one exchange per intent.
	SingleFlight bool
	// StepUpTTL defaults to DefaultStepUpTTL.
	StepUpTTL time.Duration
}

// Deps are the collaborators of a Controller. Client, Sessions, Navigator
// and Loop are required.
type Deps struct {
	Loop      Scheduler
	Client    domain.AuthClient
	Sessions  domain.SessionWriter
	Navigator domain.Navigator
	// Faults defaults to a PanicReporter.
	Faults domain.FaultReporter
	Clock  clockwork.Clock
	Logger *zap.Logger
}

var errMissingDeps = errors.New("login: loop, client, sessions and navigator are required")

// Controller is the presenter behind the login form. It is not safe for
// concurrent use: every method must be called on the UI loop.
type Controller struct {
	cfg    Config
	loop   Scheduler
	client domain.AuthClient
	store  domain.SessionWriter
	nav    domain.Navigator
	faults domain.FaultReporter
	log    *zap.Logger
	ctx    context.Context

	identifiers *stream.Subject[string]
	secrets     *stream.Subject[string]
	submits     *stream.Subject[struct{}]
	subs        stream.Bag

	view      domain.View
	attached  bool
	destroyed bool
	lastValid *bool

	inFlight int
	attempts uint64
	tickets  *ticketTable
}

var _ domain.LoginController = (*Controller)(nil)

// New wires the reactive graph and returns a detached Controller.
func New(cfg Config, deps Deps) (*Controller, error) {
	if deps.Loop == nil || deps.Client == nil || deps.Sessions == nil || deps.Navigator == nil {
		return nil, errMissingDeps
	}
	if cfg.StepUpTTL <= 0 {
		cfg.StepUpTTL = DefaultStepUpTTL
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Faults == nil {
		deps.Faults = PanicReporter{Logger: deps.Logger}
	}

	c := &Controller{
		cfg:         cfg,
		loop:        deps.Loop,
		client:      deps.Client,
		store:       deps.Sessions,
		nav:         deps.Navigator,
		faults:      deps.Faults,
		log:         deps.Logger.Named("login"),
		identifiers: stream.NewSubject[string](),
		secrets:     stream.NewSubject[string](),
		submits:     stream.NewSubject[struct{}](),
		tickets:     newTicketTable(deps.Clock, cfg.StepUpTTL),
	}
	c.ctx = logging.WithLogger(context.Background(), c.log)

	pairs := stream.CombineLatest[string, string, domain.CredentialPair](
		c.identifiers,
		c.secrets,
		func(identifier, secret string) domain.CredentialPair {
			return domain.CredentialPair{Identifier: identifier, Secret: secret}
		},
	)
	validity := stream.Map(pairs, validate.IsValidPair)
	submissions := stream.WithLatestFrom[struct{}, domain.CredentialPair, domain.CredentialPair](
		c.submits,
		pairs,
		func(_ struct{}, pair domain.CredentialPair) domain.CredentialPair { return pair },
	)

	c.subs.Add(submissions.Subscribe(c.submit))
	c.subs.Add(validity.Subscribe(c.setSubmitEnabled))
	return c, nil
}

// Attach binds view. The last known validity verdict, if any, is pushed to
// it right away.
func (c *Controller) Attach(view domain.View) {
	if c.destroyed || view == nil {
		return
	}
	c.view = view
	c.attached = true
	if c.lastValid != nil {
		view.SetSubmitEnabled(*c.lastValid)
	}
}

// Detach unbinds the current view. In-flight exchanges keep running but
// their outcomes are dropped unless a view is attached again first.
func (c *Controller) Detach() {
	c.view = nil
	c.attached = false
}

// IdentifierChanged feeds an edit of the identifier field.
func (c *Controller) IdentifierChanged(text string) {
	c.identifiers.Emit(text)
}

// SecretChanged feeds an edit of the secret field.
func (c *Controller) SecretChanged(text string) {
	c.secrets.Emit(text)
}

// Submit records a submit intent. It is dropped when no pair exists yet.
func (c *Controller) Submit() {
	c.submits.Emit(struct{}{})
}

// Destroy tears the controller down for good: subscriptions are disposed,
// pending step-up secrets are wiped and no sink is called afterwards.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.Detach()
	c.subs.Dispose()
	c.tickets.clear()
}

// InFlight returns the number of exchanges that have not completed yet.
func (c *Controller) InFlight() int { return c.inFlight }

func (c *Controller) setSubmitEnabled(valid bool) {
	c.lastValid = &valid
	if c.attached {
		c.view.SetSubmitEnabled(valid)
	}
}
