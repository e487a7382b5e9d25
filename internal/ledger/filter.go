// Package ledger implements the transaction list view: a case-insensitive
// search over an immutable snapshot of transactions, sliced into fixed-size
// pages. Both steps are pure functions of the snapshot; the snapshot itself
// is never modified, so re-running a computation is always safe.
package ledger

import (
	"strings"

	"ledgerly/internal/models"
	"ledgerly/internal/pagination"
)

// PageSize is the fixed number of transactions per ledger page.
const PageSize = 10

// Filter keeps the transactions whose title or category contains search as
// a substring, compared case-insensitively. An empty search keeps
// everything. Relative order is preserved and the input is left untouched.
func Filter(snapshot []models.Transaction, search string) []models.Transaction {
	if search == "" {
		return snapshot
	}
	needle := strings.ToLower(search)

	out := make([]models.Transaction, 0, len(snapshot))
	for _, tx := range snapshot {
		if strings.Contains(strings.ToLower(tx.Title), needle) ||
			strings.Contains(strings.ToLower(tx.Category), needle) {
			out = append(out, tx)
		}
	}
	return out
}

// FilterPage filters the snapshot by search and returns the requested page.
// Total pages are recomputed from the filtered count on every call. A page
// below 1 is treated as page 1; a page past the end returns an empty page,
// never an out-of-range slice.
func FilterPage(snapshot []models.Transaction, search string, page int) pagination.PageResponse[models.Transaction] {
	filtered := Filter(snapshot, search)

	req := pagination.PageRequest{Page: page, PageSize: PageSize}
	if req.Page < 1 {
		req.Page = 1
	}
	items := pagination.Slice(filtered, req)

	return pagination.NewPageResponse(items, req.Page, PageSize, len(filtered))
}

// ClampPage pins a navigation target into [1, totalPages] for the filtered
// set the caller is looking at. Prev/next controls route through this so a
// shrinking result set can never strand the view on a page that no longer
// exists.
func ClampPage(page, totalItems int) int {
	req := pagination.PageRequest{Page: page, PageSize: PageSize}.Clamp(totalItems)
	return req.Page
}
