package login_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"loginflow/internal/domain"
	"loginflow/internal/services/login"
	"loginflow/internal/uiloop"
)

const waitFor = 2 * time.Second

type exchangeReply struct {
	env domain.AccessTokenEnvelope
	err error
}

type exchangeCall struct {
	pair  domain.CredentialPair
	code  string
	reply chan exchangeReply
}

// fakeClient hands every call to the test, which answers it explicitly.
type fakeClient struct {
	calls chan exchangeCall
}

func newFakeClient() *fakeClient {
	return &fakeClient{calls: make(chan exchangeCall, 16)}
}

func (f *fakeClient) ExchangeCredentials(ctx context.Context, pair domain.CredentialPair) (domain.AccessTokenEnvelope, error) {
	return f.exchange(pair, "")
}

func (f *fakeClient) ExchangeWithCode(ctx context.Context, pair domain.CredentialPair, code string) (domain.AccessTokenEnvelope, error) {
	return f.exchange(pair, code)
}

func (f *fakeClient) exchange(pair domain.CredentialPair, code string) (domain.AccessTokenEnvelope, error) {
	call := exchangeCall{pair: pair, code: code, reply: make(chan exchangeReply, 1)}
	f.calls <- call
	r := <-call.reply
	return r.env, r.err
}

// record is what the sinks have seen so far.
type record struct {
	log      []string
	enabled  []bool
	messages []domain.Message
	routes   []domain.Route
	sessions []domain.AccessTokenEnvelope
	faults   []error
}

// events records every sink call in arrival order.
type events struct {
	mu sync.Mutex
	record

	sessionErr error
	// sessionStarted and sessionGate, when set, let a test hold a session
	// write in progress.
	sessionStarted chan struct{}
	sessionGate    chan struct{}
}

func (e *events) add(entry string) {
	e.log = append(e.log, entry)
}

func (e *events) SetSubmitEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.add("enabled")
	e.enabled = append(e.enabled, enabled)
}

func (e *events) ShowMessage(msg domain.Message) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.add("message")
	e.messages = append(e.messages, msg)
}

func (e *events) Navigate(route domain.Route) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.add("navigate:" + route.Screen.String())
	e.routes = append(e.routes, route)
}

func (e *events) SetSession(_ context.Context, user domain.User, token string) error {
	if e.sessionStarted != nil {
		e.sessionStarted <- struct{}{}
	}
	if e.sessionGate != nil {
		<-e.sessionGate
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.add("session")
	if e.sessionErr != nil {
		return e.sessionErr
	}
	e.sessions = append(e.sessions, domain.AccessTokenEnvelope{User: user, AccessToken: token})
	return nil
}

func (e *events) Report(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.add("fault")
	e.faults = append(e.faults, err)
}

type harness struct {
	t      *testing.T
	loop   *uiloop.Loop
	client *fakeClient
	clock  *clockwork.FakeClock
	ev     *events
	ctrl   *login.Controller
}

func newHarness(t *testing.T, cfg login.Config) *harness {
	t.Helper()

	h := &harness{
		t:      t,
		loop:   uiloop.New(),
		client: newFakeClient(),
		clock:  clockwork.NewFakeClock(),
		ev:     &events{},
	}
	ctrl, err := login.New(cfg, login.Deps{
		Loop:      h.loop,
		Client:    h.client,
		Sessions:  h.ev,
		Navigator: h.ev,
		Faults:    h.ev,
		Clock:     h.clock,
		Logger:    zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	h.ctrl = ctrl

	t.Cleanup(func() {
		h.do(ctrl.Destroy)
		h.loop.Close()
	})
	return h
}

// do runs fn on the UI loop and waits for it.
func (h *harness) do(fn func()) {
	h.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitFor)
	defer cancel()
	require.NoError(h.t, h.loop.Do(ctx, fn))
}

func (h *harness) attach() {
	h.do(func() { h.ctrl.Attach(h.ev) })
}

func (h *harness) fill(identifier, secret string) {
	h.do(func() {
		h.ctrl.IdentifierChanged(identifier)
		h.ctrl.SecretChanged(secret)
	})
}

func (h *harness) submit() {
	h.do(h.ctrl.Submit)
}

func (h *harness) nextCall() exchangeCall {
	h.t.Helper()
	select {
	case call := <-h.client.calls:
		return call
	case <-time.After(waitFor):
		h.t.Fatal("no exchange call issued")
		return exchangeCall{}
	}
}

func (h *harness) noCall() {
	h.t.Helper()
	select {
	case call := <-h.client.calls:
		h.t.Fatalf("unexpected exchange call for %v", call.pair)
	case <-time.After(20 * time.Millisecond):
	}
}

func (h *harness) inFlight() int {
	var n int
	h.do(func() { n = h.ctrl.InFlight() })
	return n
}

// settle waits until every exchange has been handled on the loop.
func (h *harness) settle() {
	h.t.Helper()
	require.Eventually(h.t, func() bool {
		n := -1
		_ = h.loop.Do(context.Background(), func() { n = h.ctrl.InFlight() })
		return n == 0
	}, waitFor, time.Millisecond)
}

func (h *harness) snapshot() record {
	h.ev.mu.Lock()
	defer h.ev.mu.Unlock()
	return record{
		log:      append([]string(nil), h.ev.log...),
		enabled:  append([]bool(nil), h.ev.enabled...),
		messages: append([]domain.Message(nil), h.ev.messages...),
		routes:   append([]domain.Route(nil), h.ev.routes...),
		sessions: append([]domain.AccessTokenEnvelope(nil), h.ev.sessions...),
		faults:   append([]error(nil), h.ev.faults...),
	}
}

func succeed(call exchangeCall, env domain.AccessTokenEnvelope) {
	call.reply <- exchangeReply{env: env}
}

func fail(call exchangeCall, err error) {
	call.reply <- exchangeReply{err: err}
}

func apiErr(code string) error {
	return &domain.APIError{Code: code, HTTPCode: 401}
}

func transportErr(kind domain.TransportKind) error {
	return &domain.TransportError{Kind: kind, Err: errors.New("boom")}
}

var userU = domain.User{ID: 7, Name: "U"}
