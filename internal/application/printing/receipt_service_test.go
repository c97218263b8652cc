package printing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phonestore/backend/internal/domain/catalog"
	"github.com/phonestore/backend/internal/domain/sales"
	"github.com/phonestore/backend/internal/domain/settings"
	"github.com/phonestore/backend/internal/domain/shared"
	"github.com/phonestore/backend/internal/domain/shared/valueobject"
)

// MockInvoiceRepository is a mock implementation of sales.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*sales.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *sales.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// MockSettingsRepository is a mock implementation of settings.Repository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetStoreProfile(ctx context.Context) (*settings.StoreProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.StoreProfile), args.Error(1)
}

func (m *MockSettingsRepository) SaveStoreProfile(ctx context.Context, profile *settings.StoreProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetStaffProfile(ctx context.Context) (*settings.StaffProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.StaffProfile), args.Error(1)
}

func (m *MockSettingsRepository) SaveStaffProfile(ctx context.Context, profile *settings.StaffProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func testInvoice(t *testing.T) *sales.Invoice {
	t.Helper()

	phone, err := catalog.NewProduct("IP15PM-256", "iPhone 15 Pro Max 256GB", "iPhone", valueobject.NewMoneyVNDFromInt(29990000))
	require.NoError(t, err)
	caseProduct, err := catalog.NewProduct("ACC-CASE-01", "Ốp lưng Silicon", "Phụ kiện", valueobject.NewMoneyVNDFromInt(150000))
	require.NoError(t, err)

	cart := sales.NewCart()
	cart.AddProduct(phone)
	cart.AddProduct(caseProduct)
	cart.SetQuantity(caseProduct.ID, 2)

	date := time.Date(2025, 12, 28, 10, 30, 0, 0, time.Local)
	invoice, err := sales.NewInvoice(
		"HD001",
		date,
		sales.CustomerForm{
			Name:       "Nguyễn Văn An",
			NationalID: "001234567890",
			Phone:      "0901234567",
			Address:    "123 Lê Lợi, Q.1, TP.HCM",
		},
		cart,
		sales.DiscountTypeAmount,
		sales.ParseDiscountValue("290000"),
		"Nguyễn Văn A",
	)
	require.NoError(t, err)
	return invoice
}

func testStoreProfile(t *testing.T) *settings.StoreProfile {
	t.Helper()
	store, err := settings.NewStoreProfile("PHONESTORE", "123 Nguyễn Huệ, Q.1, TP.HCM", "1900 xxxx", "contact@phonestore.com")
	require.NoError(t, err)
	return store
}

func TestReceiptServiceRender(t *testing.T) {
	ctx := context.Background()

	t.Run("renders the full slip", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		service := NewReceiptService(invoiceRepo, settingsRepo)
		invoice := testInvoice(t)

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		settingsRepo.On("GetStoreProfile", ctx).Return(testStoreProfile(t), nil)

		resp, err := service.Render(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, "HD001", resp.InvoiceNumber)

		for _, want := range []string{
			"PHONESTORE",
			"Địa chỉ: 123 Nguyễn Huệ, Q.1, TP.HCM",
			"Hotline: 1900 xxxx",
			"HÓA ĐƠN BÁN HÀNG",
			"Mã hóa đơn:",
			"HD001",
			"Ngày:",
			"28/12/2025",
			"Giờ:",
			"10:30",
			"Nhân viên:",
			"Nguyễn Văn A",
			"Thông tin khách hàng",
			"Nguyễn Văn An",
			"001234567890",
			"0901234567",
			"123 Lê Lợi, Q.1, TP.HCM",
			"iPhone 15 Pro Max 256GB",
			"Ốp lưng Silicon",
			"Mới 100%",
			"29.990.000đ",
			"150.000đ x 2 = 300.000đ",
			"Tạm tính:",
			"30.290.000đ",
			"Giảm giá (VNĐ):",
			"290.000đ",
			"TỔNG TIỀN:",
			"30.000.000đ",
			"Người mua hàng",
			"Người bán hàng",
			"Cảm ơn quý khách! Hẹn gặp lại!",
			"Hotline hỗ trợ: 1900 xxxx",
		} {
			assert.Contains(t, resp.Text, want)
		}
	})

	t.Run("percent discount shows the rate", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		service := NewReceiptService(invoiceRepo, settingsRepo)

		product, err := catalog.NewProduct("SS-S24U-256", "Samsung Galaxy S24 Ultra 256GB", "Samsung", valueobject.NewMoneyVNDFromInt(27990000))
		require.NoError(t, err)
		cart := sales.NewCart()
		cart.AddProduct(product)
		invoice, err := sales.NewInvoice(
			"HD002",
			time.Date(2025, 12, 28, 11, 15, 0, 0, time.Local),
			sales.CustomerForm{
				Name:       "Trần Thị Bình",
				NationalID: "001234567891",
				Phone:      "0912345678",
				Address:    "45 Hai Bà Trưng, Q.3, TP.HCM",
			},
			cart,
			sales.DiscountTypePercent,
			sales.ParseDiscountValue("5"),
			"Trần Văn B",
		)
		require.NoError(t, err)

		invoiceRepo.On("FindByNumber", ctx, "HD002").Return(invoice, nil)
		settingsRepo.On("GetStoreProfile", ctx).Return(testStoreProfile(t), nil)

		resp, err := service.RenderByNumber(ctx, "HD002")
		require.NoError(t, err)
		assert.Contains(t, resp.Text, "Giảm giá (5%):")
		assert.Contains(t, resp.Text, "1.399.500đ")
		assert.Contains(t, resp.Text, "26.590.500đ")
	})

	t.Run("missing invoice propagates", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		settingsRepo := new(MockSettingsRepository)
		service := NewReceiptService(invoiceRepo, settingsRepo)
		id := uuid.New()

		invoiceRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Render(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		settingsRepo.AssertNotCalled(t, "GetStoreProfile", ctx)
	})
}
