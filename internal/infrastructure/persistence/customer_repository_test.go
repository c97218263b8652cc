package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonestore/backend/internal/domain/partner"
	"github.com/phonestore/backend/internal/domain/shared"
)

func seedTestCustomer(t *testing.T, repo *GormCustomerRepository, name, nationalID, phone, address string) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(name, nationalID, phone, address)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), customer))
	return customer
}

func TestGormCustomerRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)
	repo := NewGormCustomerRepository(db.DB)

	an := seedTestCustomer(t, repo, "Nguyễn Văn An", "001234567890", "0901234567", "123 Lê Lợi, Q.1, TP.HCM")
	binh := seedTestCustomer(t, repo, "Trần Thị Bình", "001234567891", "0912345678", "456 Nguyễn Huệ, Q.1, TP.HCM")

	t.Run("FindByID", func(t *testing.T) {
		found, err := repo.FindByID(ctx, an.ID)
		require.NoError(t, err)
		assert.Equal(t, "Nguyễn Văn An", found.Name)
	})

	t.Run("FindByPhone exact match", func(t *testing.T) {
		found, err := repo.FindByPhone(ctx, "0901234567")
		require.NoError(t, err)
		assert.Equal(t, an.ID, found.ID)
	})

	t.Run("FindByPhone no match", func(t *testing.T) {
		_, err := repo.FindByPhone(ctx, "0999999999")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindByPhone rejects empty input", func(t *testing.T) {
		_, err := repo.FindByPhone(ctx, "")
		assert.Error(t, err)
	})

	t.Run("FindByPhone oldest record wins on duplicates", func(t *testing.T) {
		dup := seedTestCustomer(t, repo, "Nguyễn Văn An (mới)", "001234567899", "0901234567", "99 Pasteur, Q.1, TP.HCM")
		defer func() {
			require.NoError(t, repo.Delete(ctx, dup.ID))
		}()

		found, err := repo.FindByPhone(ctx, "0901234567")
		require.NoError(t, err)
		assert.Equal(t, an.ID, found.ID)
	})

	t.Run("FindByNationalID exact match", func(t *testing.T) {
		found, err := repo.FindByNationalID(ctx, "001234567891")
		require.NoError(t, err)
		assert.Equal(t, binh.ID, found.ID)
	})

	t.Run("FindAll with search narrows by name, phone and national ID", func(t *testing.T) {
		customers, err := repo.FindAll(ctx, shared.Filter{Search: "0912345678"})
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, binh.ID, customers[0].ID)

		customers, err = repo.FindAll(ctx, shared.Filter{Search: "00123456789"})
		require.NoError(t, err)
		assert.Len(t, customers, 2)
	})

	t.Run("FindAll without search returns everyone oldest first", func(t *testing.T) {
		customers, err := repo.FindAll(ctx, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, an.ID, customers[0].ID)
	})

	t.Run("Count", func(t *testing.T) {
		count, err := repo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Delete missing customer", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}
