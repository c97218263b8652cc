package printing

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/phonestore/backend/internal/domain/sales"
	"github.com/phonestore/backend/internal/domain/settings"
	"github.com/phonestore/backend/internal/domain/shared/valueobject"
)

// receiptWidth is the character width of the printed slip
const receiptWidth = 48

// ReceiptService renders finalized invoices as plain-text receipts
type ReceiptService struct {
	invoiceRepo  sales.InvoiceRepository
	settingsRepo settings.Repository
}

// NewReceiptService creates a new ReceiptService
func NewReceiptService(invoiceRepo sales.InvoiceRepository, settingsRepo settings.Repository) *ReceiptService {
	return &ReceiptService{
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
	}
}

// Render renders the receipt for an invoice by ID
func (s *ReceiptService) Render(ctx context.Context, id uuid.UUID) (*ReceiptResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, invoice)
}

// RenderByNumber renders the receipt for an invoice by its number
func (s *ReceiptService) RenderByNumber(ctx context.Context, number string) (*ReceiptResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, invoice)
}

func (s *ReceiptService) render(ctx context.Context, invoice *sales.Invoice) (*ReceiptResponse, error) {
	store, err := s.settingsRepo.GetStoreProfile(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	divider := strings.Repeat("=", receiptWidth)
	thinDivider := strings.Repeat("-", receiptWidth)

	writeCentered(&b, store.Name)
	writeCentered(&b, "Địa chỉ: "+store.Address)
	writeCentered(&b, "Hotline: "+store.Hotline)
	b.WriteString(divider + "\n")
	writeCentered(&b, "HÓA ĐƠN BÁN HÀNG")
	b.WriteString(divider + "\n")

	writeKeyValue(&b, "Mã hóa đơn:", invoice.InvoiceNumber)
	writeKeyValue(&b, "Ngày:", invoice.InvoiceDate.Format("02/01/2006"))
	writeKeyValue(&b, "Giờ:", invoice.InvoiceDate.Format("15:04"))
	writeKeyValue(&b, "Nhân viên:", invoice.StaffName)
	b.WriteString(thinDivider + "\n")

	b.WriteString("Thông tin khách hàng\n")
	writeKeyValue(&b, "Họ tên:", invoice.CustomerName)
	writeKeyValue(&b, "CCCD:", invoice.CustomerNationalID)
	writeKeyValue(&b, "Điện thoại:", invoice.CustomerPhone)
	writeKeyValue(&b, "Địa chỉ:", invoice.CustomerAddress)
	b.WriteString(thinDivider + "\n")

	b.WriteString("STT  Tên hàng / SL / Tình trạng\n")
	b.WriteString("     Đơn giá x SL = Thành tiền\n")
	b.WriteString(thinDivider + "\n")
	for i, item := range invoice.Items {
		fmt.Fprintf(&b, "%-4d %s\n", i+1, item.ProductName)
		fmt.Fprintf(&b, "     SL: %d | %s\n", item.Quantity, item.Condition)
		fmt.Fprintf(&b, "     %s x %d = %s\n", vnd(item.UnitPrice), item.Quantity, vnd(item.LineTotal))
	}
	b.WriteString(thinDivider + "\n")

	writeKeyValue(&b, "Tạm tính:", vnd(invoice.Subtotal))
	writeKeyValue(&b, discountLabel(invoice), vnd(invoice.DiscountAmount))
	writeKeyValue(&b, "TỔNG TIỀN:", vnd(invoice.Total))
	b.WriteString(divider + "\n")

	b.WriteString("\n")
	b.WriteString("  Người mua hàng            Người bán hàng\n")
	b.WriteString("  (Ký, ghi rõ họ tên)       (Ký, ghi rõ họ tên)\n")
	b.WriteString("\n")

	writeCentered(&b, "Cảm ơn quý khách! Hẹn gặp lại!")
	writeCentered(&b, "Hotline hỗ trợ: "+store.Hotline)

	return &ReceiptResponse{
		InvoiceNumber: invoice.InvoiceNumber,
		Text:          b.String(),
	}, nil
}

// discountLabel mirrors the on-screen wording: the percent value for
// percent discounts, "VNĐ" for fixed amounts
func discountLabel(invoice *sales.Invoice) string {
	if invoice.DiscountType == sales.DiscountTypePercent {
		return fmt.Sprintf("Giảm giá (%s%%):", invoice.DiscountValue.String())
	}
	return "Giảm giá (VNĐ):"
}

func vnd(amount decimal.Decimal) string {
	return valueobject.NewMoneyVND(amount).Format()
}

func writeCentered(b *strings.Builder, text string) {
	width := utf8.RuneCountInString(text)
	if width >= receiptWidth {
		b.WriteString(text + "\n")
		return
	}
	b.WriteString(strings.Repeat(" ", (receiptWidth-width)/2) + text + "\n")
}

func writeKeyValue(b *strings.Builder, key, value string) {
	pad := receiptWidth - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(key + strings.Repeat(" ", pad) + value + "\n")
}
