package printing

// ReceiptResponse carries a rendered plain-text receipt
type ReceiptResponse struct {
	InvoiceNumber string `json:"invoice_number"`
	Text          string `json:"text"`
}
