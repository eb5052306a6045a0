package login

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"loginflow/internal/crypto"
	"loginflow/internal/domain"
)

type pendingStepUp struct {
	identifier string
	secret     []byte
	expiresAt  time.Time
}

func (p *pendingStepUp) wipe() {
	crypto.Wipe(p.secret)
	p.secret = nil
}

// ticketTable keeps the credential pairs waiting for a second factor. It is
// only touched from the UI loop.
type ticketTable struct {
	clock   clockwork.Clock
	ttl     time.Duration
	pending map[domain.StepUpToken]*pendingStepUp
}

func newTicketTable(clock clockwork.Clock, ttl time.Duration) *ticketTable {
	return &ticketTable{
		clock:   clock,
		ttl:     ttl,
		pending: make(map[domain.StepUpToken]*pendingStepUp),
	}
}

// issue stores pair and returns the ticket that refers to it.
func (t *ticketTable) issue(pair domain.CredentialPair) domain.StepUpTicket {
	t.sweep()

	token := domain.StepUpToken(uuid.NewString())
	t.pending[token] = &pendingStepUp{
		identifier: pair.Identifier,
		secret:     []byte(pair.Secret),
		expiresAt:  t.clock.Now().Add(t.ttl),
	}
	return domain.StepUpTicket{Identifier: pair.Identifier, Token: token}
}

// lookup returns the pair behind token if it exists and has not expired.
func (t *ticketTable) lookup(token domain.StepUpToken) (domain.CredentialPair, bool) {
	p, ok := t.pending[token]
	if !ok {
		return domain.CredentialPair{}, false
	}
	if !t.clock.Now().Before(p.expiresAt) {
		t.discard(token)
		return domain.CredentialPair{}, false
	}
	return domain.CredentialPair{Identifier: p.identifier, Secret: string(p.secret)}, true
}

// discard forgets token and wipes its secret.
func (t *ticketTable) discard(token domain.StepUpToken) {
	if p, ok := t.pending[token]; ok {
		p.wipe()
		delete(t.pending, token)
	}
}

func (t *ticketTable) sweep() {
	now := t.clock.Now()
	for token, p := range t.pending {
		if !now.Before(p.expiresAt) {
			p.wipe()
			delete(t.pending, token)
		}
	}
}

func (t *ticketTable) clear() {
	for token := range t.pending {
		t.discard(token)
	}
}
