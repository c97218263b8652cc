package sales

import (
	"fmt"
	"time"
)

// InvoiceNumberPrefix is the prefix of every invoice number
const InvoiceNumberPrefix = "HD"

// GenerateInvoiceNumber derives an invoice number from the creation time:
// the HD prefix followed by the last six digits of the Unix millisecond
// timestamp. Collisions are possible and are resolved by the caller
// against the invoice store.
func GenerateInvoiceNumber(t time.Time) string {
	return fmt.Sprintf("%s%06d", InvoiceNumberPrefix, t.UnixMilli()%1000000)
}
