package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonestore/backend/internal/domain/shared"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with valid inputs", func(t *testing.T) {
		c, err := NewCustomer("Nguyễn Văn An", "001234567890", "0901234567", "123 Lê Lợi, Q.1, TP.HCM")
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, "Nguyễn Văn An", c.Name)
		assert.Equal(t, "001234567890", c.NationalID)
		assert.Equal(t, "0901234567", c.Phone)
		assert.Equal(t, "123 Lê Lợi, Q.1, TP.HCM", c.Address)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, 1, c.GetVersion())
	})

	t.Run("allows empty optional fields", func(t *testing.T) {
		c, err := NewCustomer("Trần Thị Bình", "", "", "")
		require.NoError(t, err)
		assert.Empty(t, c.Phone)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCustomer("", "001234567890", "0901234567", "")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("fails with non-digit national ID", func(t *testing.T) {
		_, err := NewCustomer("Nguyễn Văn An", "0012345678AB", "0901234567", "")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NATIONAL_ID", domainErr.Code)
	})

	t.Run("fails with invalid phone characters", func(t *testing.T) {
		_, err := NewCustomer("Nguyễn Văn An", "", "phone#1", "")
		assert.Error(t, err)
	})
}

func TestCustomerUpdate(t *testing.T) {
	c, err := NewCustomer("Nguyễn Văn An", "001234567890", "0901234567", "123 Lê Lợi, Q.1, TP.HCM")
	require.NoError(t, err)

	t.Run("replaces all fields", func(t *testing.T) {
		version := c.GetVersion()
		require.NoError(t, c.Update("Nguyễn Văn An", "001234567890", "0909999999", "456 Hai Bà Trưng, Q.3, TP.HCM"))
		assert.Equal(t, "0909999999", c.Phone)
		assert.Equal(t, "456 Hai Bà Trưng, Q.3, TP.HCM", c.Address)
		assert.Equal(t, version+1, c.GetVersion())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		assert.Error(t, c.Update("", "001234567890", "0901234567", ""))
	})
}
