package services

import (
	"context"
	"sync"

	"github.com/ddanshin/cipherdir/internal/client/models"
)

// ResultView is the visible decrypted record set, guarded so that an older,
// slower refresh can never overwrite the result of a newer one.
//
// A refresh takes a ticket with Begin before issuing its request and offers
// its result with Commit. Commits are last-writer-wins by ticket order, not
// by completion order. Begin also cancels the contexts of all in-flight
// refreshes with older tickets, so superseded work is abandoned rather than
// run to completion.
type ResultView struct {
	mu      sync.Mutex
	seq     uint64
	applied uint64
	cancels map[uint64]context.CancelFunc
	users   []models.PlaintextUser
	errs    []models.FieldError
}

func NewResultView() *ResultView {
	return &ResultView{cancels: make(map[uint64]context.CancelFunc)}
}

// Begin allocates the next refresh ticket and derives the context the
// refresh must run under. Older in-flight refreshes are cancelled. The
// caller must release the ticket with End when the refresh finishes.
func (v *ResultView) Begin(ctx context.Context) (uint64, context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for t, cancel := range v.cancels {
		cancel()
		delete(v.cancels, t)
	}

	v.seq++
	rctx, cancel := context.WithCancel(ctx)
	v.cancels[v.seq] = cancel
	return v.seq, rctx
}

// End releases the resources of the ticket's derived context.
func (v *ResultView) End(ticket uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if cancel, ok := v.cancels[ticket]; ok {
		cancel()
		delete(v.cancels, ticket)
	}
}

// Commit stores the result for the given ticket unless a newer ticket has
// already committed. It reports whether the result became visible.
func (v *ResultView) Commit(ticket uint64, users []models.PlaintextUser, errs []models.FieldError) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if ticket <= v.applied {
		return false
	}
	v.applied = ticket
	v.users = users
	v.errs = errs
	return true
}

// Snapshot returns the currently visible records and their field-error
// report. The returned slices must not be mutated.
func (v *ResultView) Snapshot() ([]models.PlaintextUser, []models.FieldError) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.users, v.errs
}
