// Package workflow drives create/update/delete interactions with the remote
// store. Each view owns one Workflow; an operation moves it through
// idle -> submitting -> success or error, and every remote failure is
// absorbed here. Nothing propagates to the rendering layer, and nothing is
// retried automatically.
package workflow

import (
	"context"
	"strings"
	"time"

	"ledgerly/internal/budget"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/money"
	"ledgerly/internal/store"
)

// State is the lifecycle of a single mutation.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

// Routes the workflow navigates to.
const (
	RouteLogin        = "/"
	RouteDashboard    = "/dashboard"
	RouteTransactions = "/transactions"
)

// Navigation delays after a successful create, before the follow-up view.
const (
	budgetNavDelay      = 2 * time.Second
	transactionNavDelay = 1500 * time.Millisecond
)

// Notifier receives user-facing outcome notifications.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	SessionExpired()
}

// Navigator switches the active view.
type Navigator interface {
	To(route string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Workflow orchestrates mutations for one view against the remote store.
// It holds no entity state of its own; list data always comes back as a
// fresh snapshot from the store.
type Workflow struct {
	store   store.Store
	notify  Notifier
	nav     Navigator
	confirm Confirmer
	sched   *Scheduler

	state State

	// Navigation delays, overridable in tests.
	BudgetNavDelay      time.Duration
	TransactionNavDelay time.Duration
}

// New creates a Workflow over the given collaborators.
func New(st store.Store, notify Notifier, nav Navigator, confirm Confirmer) *Workflow {
	return &Workflow{
		store:               st,
		notify:              notify,
		nav:                 nav,
		confirm:             confirm,
		sched:               NewScheduler(),
		state:               StateIdle,
		BudgetNavDelay:      budgetNavDelay,
		TransactionNavDelay: transactionNavDelay,
	}
}

// State returns the current operation state.
func (w *Workflow) State() State { return w.state }

// Scheduler exposes the delayed-callback scheduler, mainly so tests can
// wait for pending navigations.
func (w *Workflow) Scheduler() *Scheduler { return w.sched }

// SubmitBudget validates the allocation form locally and, if clean, submits
// it. Field errors are returned without any store call; a successful
// submission notifies and schedules navigation to the dashboard after a
// fixed delay. Cancelling ctx before the delay elapses cancels the
// navigation.
func (w *Workflow) SubmitBudget(ctx context.Context, in budget.AllocationInput) (budget.Fields, error) {
	if fields := budget.ValidateAllocation(in); len(fields) > 0 {
		return fields, nil
	}

	w.state = StateSubmitting
	_, err := w.store.CreateBudget(ctx, store.BudgetInputFromForm(in))
	if ctx.Err() != nil {
		// View is gone; leave its state alone.
		return nil, ctx.Err()
	}
	if err != nil {
		w.fail(err, "Failed to submit budget")
		return nil, err
	}

	w.state = StateSuccess
	w.notify.Success("Budget submitted successfully!")
	w.sched.After(ctx, w.BudgetNavDelay, func() { w.nav.To(RouteDashboard) })
	return nil, nil
}

// TransactionForm is the raw add/edit transaction form.
type TransactionForm struct {
	Title    string
	Amount   string
	Type     string
	Category string
	Date     string
	Notes    string
}

// validateTransactionForm applies the submission checks for a transaction,
// all fields independently.
func validateTransactionForm(f TransactionForm) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = "Title is required"
	}
	if !money.IsAmount(f.Amount) {
		fields["amount"] = "Please enter a valid amount"
	}
	if f.Category == "" {
		fields["category"] = "Category is required"
	}
	if f.Date == "" {
		fields["date"] = "Date is required"
	}

	return fields
}

func transactionInput(f TransactionForm) store.TransactionInput {
	return store.TransactionInput{
		Title:    strings.TrimSpace(f.Title),
		Amount:   money.Coerce(f.Amount),
		Type:     f.Type,
		Category: f.Category,
		Date:     f.Date,
		Notes:    f.Notes,
	}
}

// SubmitTransaction validates the form locally and creates the transaction.
// Success notifies and schedules navigation to the ledger view after a
// fixed delay.
func (w *Workflow) SubmitTransaction(ctx context.Context, f TransactionForm) (map[string]string, error) {
	if fields := validateTransactionForm(f); len(fields) > 0 {
		return fields, nil
	}

	w.state = StateSubmitting
	_, err := w.store.CreateTransaction(ctx, transactionInput(f))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		w.fail(err, "Failed to add transaction")
		return nil, err
	}

	w.state = StateSuccess
	w.notify.Success("Transaction added successfully!")
	w.sched.After(ctx, w.TransactionNavDelay, func() { w.nav.To(RouteTransactions) })
	return nil, nil
}

// LoadTransaction is the edit-load sub-workflow: entering the edit view
// starts in the submitting (loading) state, and the form only becomes
// interactive once the record has loaded.
func (w *Workflow) LoadTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	w.state = StateSubmitting
	tx, err := w.store.GetTransaction(ctx, id)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		w.fail(err, "Failed to fetch transaction details")
		return nil, err
	}
	w.state = StateSuccess
	return tx, nil
}

// UpdateTransaction fully replaces the transaction and returns to the
// ledger view immediately on success.
func (w *Workflow) UpdateTransaction(ctx context.Context, id string, f TransactionForm) error {
	w.state = StateSubmitting
	_, err := w.store.UpdateTransaction(ctx, id, transactionInput(f))
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		w.fail(err, "Failed to update transaction")
		return err
	}

	w.state = StateSuccess
	w.notify.Success("Transaction updated successfully")
	w.nav.To(RouteTransactions)
	return nil
}

// DeleteTransaction asks for confirmation, deletes, and re-fetches the
// ledger so the view reflects the store rather than a locally patched
// snapshot. Declining the confirmation leaves the workflow idle with no
// store call issued. The returned snapshot is the refreshed list.
func (w *Workflow) DeleteTransaction(ctx context.Context, id string) ([]models.Transaction, error) {
	if !w.confirm.Confirm("Are you sure you want to delete this transaction?") {
		return nil, nil
	}

	w.state = StateSubmitting
	if err := w.store.DeleteTransaction(ctx, id); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		w.fail(err, "Failed to delete transaction")
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	w.notify.Success("Transaction deleted successfully")

	snapshot, err := w.store.ListTransactions(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		w.fail(err, "Failed to fetch transactions")
		return nil, err
	}

	w.state = StateSuccess
	return snapshot, nil
}

// fail records the error state and routes the failure: an expired session
// notifies and forces navigation back to the entry view; anything else
// surfaces the generic message and keeps the user where they are, input
// preserved.
func (w *Workflow) fail(err error, generic string) {
	w.state = StateError
	if apperrors.IsUnauthorized(err) {
		w.notify.SessionExpired()
		w.nav.To(RouteLogin)
		return
	}
	w.notify.Error(generic)
}
