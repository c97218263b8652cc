package sales

import (
	"strings"
	"time"
)

// HistoryQuery holds the invoice history filter criteria. Zero value
// matches everything.
type HistoryQuery struct {
	Search string
	// Date, when set, restricts results to invoices of that calendar day
	// (compared in Date's location).
	Date *time.Time
}

// Matches reports whether an invoice satisfies the query. The search text
// is matched case-insensitively against the invoice number and customer
// name, and by raw containment against the phone and national ID digits.
func (q HistoryQuery) Matches(inv *Invoice) bool {
	if search := strings.TrimSpace(q.Search); search != "" {
		lower := strings.ToLower(search)
		hit := strings.Contains(strings.ToLower(inv.InvoiceNumber), lower) ||
			strings.Contains(strings.ToLower(inv.CustomerName), lower) ||
			strings.Contains(inv.CustomerPhone, search) ||
			strings.Contains(inv.CustomerNationalID, search)
		if !hit {
			return false
		}
	}

	if q.Date != nil {
		y1, m1, d1 := inv.InvoiceDate.In(q.Date.Location()).Date()
		y2, m2, d2 := q.Date.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}

	return true
}

// FilterInvoices returns the invoices matching the query, preserving input
// order. The input slice is never modified.
func FilterInvoices(invoices []Invoice, q HistoryQuery) []Invoice {
	result := make([]Invoice, 0, len(invoices))
	for i := range invoices {
		if q.Matches(&invoices[i]) {
			result = append(result, invoices[i])
		}
	}
	return result
}
