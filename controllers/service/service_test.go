package serviceControllers

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Service{}, &models.ServiceBooking{}))
	return db
}

func TestBookServiceSnapshotsCost(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Name: "Demo", Email: "demo@example.com"}
	require.NoError(t, db.Create(&user).Error)
	service := models.Service{ServiceName: "PC Assembly", BasePrice: decimal.NewFromInt(50)}
	require.NoError(t, db.Create(&service).Error)

	booking, err := BookService(db, BookServiceRequest{
		UserID:        user.ID,
		ServiceID:     service.ID,
		ScheduledDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(booking.TotalCost))
	assert.Equal(t, "pending", booking.Status)
	require.NotNil(t, booking.ScheduledDate)

	// raising the base price must not touch the existing booking
	require.NoError(t, db.Model(&models.Service{}).Where("id = ?", service.ID).
		Update("base_price", decimal.NewFromInt(80)).Error)

	var got models.ServiceBooking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.True(t, decimal.NewFromInt(50).Equal(got.TotalCost), "total_cost = %s", got.TotalCost)
}

func TestBookServiceValidation(t *testing.T) {
	db := openTestDB(t)
	user := models.User{Name: "Demo", Email: "demo@example.com"}
	require.NoError(t, db.Create(&user).Error)
	service := models.Service{ServiceName: "Repairs", BasePrice: decimal.NewFromInt(30)}
	require.NoError(t, db.Create(&service).Error)

	_, err := BookService(db, BookServiceRequest{UserID: 999, ServiceID: service.ID})
	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))

	_, err = BookService(db, BookServiceRequest{UserID: user.ID, ServiceID: 999})
	assert.Equal(t, apierr.KindNotFound, apierr.KindOf(err))

	_, err = BookService(db, BookServiceRequest{
		UserID: user.ID, ServiceID: service.ID, ScheduledDate: "next tuesday",
	})
	assert.Equal(t, apierr.KindInvalidInput, apierr.KindOf(err))
}
