package workflow

import (
	"context"
	"errors"

	"ledgerly/internal/budget"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/ledger"
	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
	"ledgerly/internal/session"
)

// View loading outcomes that are not data and not failures either.
var (
	// ErrViewPending means the session check has not resolved yet; render
	// nothing and try again once it has.
	ErrViewPending = errors.New("workflow: session check pending")

	// ErrRedirected means the caller was sent back to the entry view and
	// should not render.
	ErrRedirected = errors.New("workflow: redirected to login")
)

// LedgerView is the transactions view after filtering and paging.
type LedgerView struct {
	Page pagination.PageResponse[models.Transaction]
}

// BudgetsView is the per-category budget dashboard.
type BudgetsView struct {
	Reports []budget.Report
}

// Loader fetches protected view data behind the session gate. A pending
// session check blocks rendering entirely; an unauthenticated session
// redirects to the entry view before any store call is made.
type Loader struct {
	store    loaderStore
	sessions session.Checker
	nav      Navigator
	notify   Notifier
}

// loaderStore is the subset of store.Store the view loaders need.
type loaderStore interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListBudgetSummaries(ctx context.Context) ([]models.BudgetSummary, error)
}

// NewLoader creates a Loader over the given collaborators.
func NewLoader(st loaderStore, sessions session.Checker, nav Navigator, notify Notifier) *Loader {
	return &Loader{store: st, sessions: sessions, nav: nav, notify: notify}
}

// gate resolves the session tri-state. Only an affirmative authenticated
// result lets protected content through.
func (l *Loader) gate(ctx context.Context) error {
	switch l.sessions.Check(ctx) {
	case session.StatusAuthenticated:
		return nil
	case session.StatusPending:
		return ErrViewPending
	default:
		l.nav.To(RouteLogin)
		return ErrRedirected
	}
}

// LoadLedgerView fetches the transaction snapshot and applies the search
// and page the caller is on. An expired session discovered during the fetch
// redirects the same way the gate does.
func (l *Loader) LoadLedgerView(ctx context.Context, search string, page int) (*LedgerView, error) {
	if err := l.gate(ctx); err != nil {
		return nil, err
	}

	snapshot, err := l.store.ListTransactions(ctx)
	if err != nil {
		return nil, l.loadFailed(err, "Failed to fetch transactions")
	}

	return &LedgerView{Page: ledger.FilterPage(snapshot, search, page)}, nil
}

// LoadBudgetsView fetches per-category budget summaries and derives the
// display metrics for each.
func (l *Loader) LoadBudgetsView(ctx context.Context) (*BudgetsView, error) {
	if err := l.gate(ctx); err != nil {
		return nil, err
	}

	summaries, err := l.store.ListBudgetSummaries(ctx)
	if err != nil {
		return nil, l.loadFailed(err, "Failed to fetch budgets")
	}

	reports := make([]budget.Report, 0, len(summaries))
	for _, s := range summaries {
		reports = append(reports, budget.Summarize(s))
	}
	return &BudgetsView{Reports: reports}, nil
}

func (l *Loader) loadFailed(err error, generic string) error {
	if apperrors.IsUnauthorized(err) {
		l.notify.SessionExpired()
		l.nav.To(RouteLogin)
		return ErrRedirected
	}
	l.notify.Error(generic)
	return err
}
