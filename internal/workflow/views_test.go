package workflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/session"
)

type staticChecker session.Status

func (s staticChecker) Check(context.Context) session.Status {
	return session.Status(s)
}

type fakeLoaderStore struct {
	transactions []models.Transaction
	summaries    []models.BudgetSummary
	err          error
	calls        int
}

func (f *fakeLoaderStore) ListTransactions(context.Context) ([]models.Transaction, error) {
	f.calls++
	return f.transactions, f.err
}

func (f *fakeLoaderStore) ListBudgetSummaries(context.Context) ([]models.BudgetSummary, error) {
	f.calls++
	return f.summaries, f.err
}

func newTestLoader(st *fakeLoaderStore, status session.Status) (*Loader, *fakeNotifier, *fakeNavigator) {
	notify := &fakeNotifier{}
	nav := &fakeNavigator{}
	return NewLoader(st, staticChecker(status), nav, notify), notify, nav
}

func TestLoaderSessionGate(t *testing.T) {
	t.Run("pending session blocks rendering", func(t *testing.T) {
		st := &fakeLoaderStore{}
		l, _, nav := newTestLoader(st, session.StatusPending)

		if _, err := l.LoadLedgerView(context.Background(), "", 1); !errors.Is(err, ErrViewPending) {
			t.Fatalf("expected ErrViewPending, got %v", err)
		}
		if st.calls != 0 {
			t.Error("store must not be called while the session is pending")
		}
		if len(nav.routes) != 0 {
			t.Errorf("no navigation while pending, got %v", nav.routes)
		}
	})

	t.Run("unauthenticated session redirects before any fetch", func(t *testing.T) {
		st := &fakeLoaderStore{}
		l, _, nav := newTestLoader(st, session.StatusUnauthenticated)

		if _, err := l.LoadBudgetsView(context.Background()); !errors.Is(err, ErrRedirected) {
			t.Fatalf("expected ErrRedirected, got %v", err)
		}
		if st.calls != 0 {
			t.Error("store must not be called when unauthenticated")
		}
		if len(nav.routes) != 1 || nav.routes[0] != RouteLogin {
			t.Errorf("expected redirect to login, got %v", nav.routes)
		}
	})
}

func TestLoadLedgerView(t *testing.T) {
	snapshot := make([]models.Transaction, 0, 25)
	for i := 0; i < 25; i++ {
		snapshot = append(snapshot, models.Transaction{
			Title:    fmt.Sprintf("Entry %02d", i+1),
			Category: "food",
		})
	}

	t.Run("pages the snapshot", func(t *testing.T) {
		st := &fakeLoaderStore{transactions: snapshot}
		l, _, _ := newTestLoader(st, session.StatusAuthenticated)

		view, err := l.LoadLedgerView(context.Background(), "", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Page.TotalPages != 3 || len(view.Page.Data) != 5 {
			t.Errorf("unexpected page: pages=%d items=%d", view.Page.TotalPages, len(view.Page.Data))
		}
	})

	t.Run("applies the search before paging", func(t *testing.T) {
		st := &fakeLoaderStore{transactions: snapshot}
		l, _, _ := newTestLoader(st, session.StatusAuthenticated)

		view, err := l.LoadLedgerView(context.Background(), "entry 0", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Page.TotalItems != 9 {
			t.Errorf("expected 9 matches, got %d", view.Page.TotalItems)
		}
	})

	t.Run("expired session during fetch redirects", func(t *testing.T) {
		st := &fakeLoaderStore{err: apperrors.ErrUnauthorized}
		l, notify, nav := newTestLoader(st, session.StatusAuthenticated)

		if _, err := l.LoadLedgerView(context.Background(), "", 1); !errors.Is(err, ErrRedirected) {
			t.Fatalf("expected ErrRedirected, got %v", err)
		}
		if notify.expired != 1 {
			t.Errorf("expected one session-expired notification, got %d", notify.expired)
		}
		if len(nav.routes) != 1 || nav.routes[0] != RouteLogin {
			t.Errorf("expected redirect to login, got %v", nav.routes)
		}
	})

	t.Run("fetch failure notifies and returns the error", func(t *testing.T) {
		st := &fakeLoaderStore{err: apperrors.ErrStoreUnavailable}
		l, notify, _ := newTestLoader(st, session.StatusAuthenticated)

		if _, err := l.LoadLedgerView(context.Background(), "", 1); err == nil {
			t.Fatal("expected error")
		}
		if len(notify.errors) != 1 || notify.errors[0] != "Failed to fetch transactions" {
			t.Errorf("unexpected notifications: %v", notify.errors)
		}
	})
}

func TestLoadBudgetsView(t *testing.T) {
	st := &fakeLoaderStore{summaries: []models.BudgetSummary{
		{Category: "Rent", TotalBudget: 1000, Spent: 250},
		{Category: "Travel", TotalBudget: 500, Spent: 800},
	}}
	l, _, _ := newTestLoader(st, session.StatusAuthenticated)

	view, err := l.LoadBudgetsView(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(view.Reports))
	}
	if view.Reports[0].Remaining != 750 || view.Reports[0].Status != "On Track" {
		t.Errorf("unexpected first report: %+v", view.Reports[0])
	}
	if view.Reports[1].Remaining != -300 || view.Reports[1].Status != "Over Budget" {
		t.Errorf("unexpected second report: %+v", view.Reports[1])
	}
}
