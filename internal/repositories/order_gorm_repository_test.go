package repositories_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/musqaan/flipcart-clone/internal/models"
	"github.com/musqaan/flipcart-clone/internal/repositories"
)

func setupOrderDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Order{}))
	return db
}

func pendingRow(userID, productID uint, qty int, total int64, date time.Time) models.Order {
	return models.Order{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   qty,
		TotalPrice: decimal.NewFromInt(total),
		OrderDate:  date,
		Status:     models.StatusPending,
		Address:    "12 Elm St",
	}
}

func TestGORMOrderRepository_CreateBatch(t *testing.T) {
	db := setupOrderDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	rows := []models.Order{
		pendingRow(7, 3, 2, 200, today),
		pendingRow(7, 5, 1, 50, today),
	}

	assert.NoError(t, repo.CreateBatch(rows))
	// Generated IDs are filled in on the caller's slice.
	assert.NotZero(t, rows[0].ID)
	assert.NotZero(t, rows[1].ID)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 2, count)

	assert.Error(t, repo.CreateBatch(nil))
}

func TestGORMOrderRepository_CreateBatch_AllOrNothing(t *testing.T) {
	db := setupOrderDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	seed := []models.Order{pendingRow(7, 3, 1, 100, today)}
	assert.NoError(t, repo.CreateBatch(seed))

	// The second row collides with the seeded primary key, so the whole batch
	// must fail and leave no trace of the first row.
	bad := []models.Order{
		pendingRow(8, 4, 1, 10, today),
		pendingRow(8, 5, 1, 20, today),
	}
	bad[0].ID = seed[0].ID + 100
	bad[1].ID = seed[0].ID

	assert.Error(t, repo.CreateBatch(bad))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGORMOrderRepository_GetByUser(t *testing.T) {
	db := setupOrderDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	assert.NoError(t, repo.CreateBatch([]models.Order{
		pendingRow(7, 3, 1, 100, yesterday),
		pendingRow(9, 4, 1, 10, today), // different owner
	}))
	assert.NoError(t, repo.CreateBatch([]models.Order{
		pendingRow(7, 5, 2, 40, today),
	}))

	orders, err := repo.GetByUser(7)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	// Only rows owned by user 7, most recent order date first.
	for _, o := range orders {
		assert.Equal(t, uint(7), o.UserID)
	}
	assert.False(t, orders[0].OrderDate.Before(orders[1].OrderDate))
	assert.Equal(t, uint(5), orders[0].ProductID)

	// Unknown owner: empty result, no error.
	orders, err = repo.GetByUser(12345)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGORMOrderRepository_Find(t *testing.T) {
	db := setupOrderDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	rows := []models.Order{
		pendingRow(7, 3, 1, 100, today),
		pendingRow(8, 4, 1, 10, today),
	}
	assert.NoError(t, repo.CreateBatch(rows))
	assert.NoError(t, repo.UpdateStatus(rows[1].ID, models.StatusShipped))

	// Status filter.
	orders, err := repo.Find(repositories.OrderFilter{Status: models.StatusShipped})
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, rows[1].ID, orders[0].ID)

	// No matches is an empty slice, not nil and not an error.
	orders, err = repo.Find(repositories.OrderFilter{Status: models.StatusCancelled})
	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	// Recency cutoff: age the first row out of the window.
	stale := time.Now().Add(-2 * time.Hour)
	assert.NoError(t, db.Model(&models.Order{}).Where("id = ?", rows[0].ID).
		UpdateColumn("updated_at", stale).Error)

	orders, err = repo.Find(repositories.OrderFilter{UpdatedAfter: time.Now().Add(-time.Hour)})
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, rows[1].ID, orders[0].ID)
}

func TestGORMOrderRepository_UpdateStatus(t *testing.T) {
	db := setupOrderDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	rows := []models.Order{pendingRow(7, 3, 2, 200, today)}
	assert.NoError(t, repo.CreateBatch(rows))

	// Unknown order leaves the table unchanged.
	err := repo.UpdateStatus(999, models.StatusShipped)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

	var unchanged models.Order
	assert.NoError(t, db.First(&unchanged, rows[0].ID).Error)
	assert.Equal(t, models.StatusPending, unchanged.Status)

	// Successful transition.
	assert.NoError(t, repo.UpdateStatus(rows[0].ID, models.StatusShipped))

	var updated models.Order
	assert.NoError(t, db.First(&updated, rows[0].ID).Error)
	assert.Equal(t, models.StatusShipped, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(unchanged.UpdatedAt))

	// Idempotent re-apply: same status again succeeds and changes nothing else.
	assert.NoError(t, repo.UpdateStatus(rows[0].ID, models.StatusShipped))

	var again models.Order
	assert.NoError(t, db.First(&again, rows[0].ID).Error)
	assert.Equal(t, models.StatusShipped, again.Status)
	assert.Equal(t, updated.Quantity, again.Quantity)
	assert.True(t, updated.TotalPrice.Equal(again.TotalPrice))

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGORMOrderRepository_CountAndRevenue(t *testing.T) {
	db := setupOrderDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 0, count)

	revenue, err := repo.TotalRevenue()
	assert.NoError(t, err)
	assert.True(t, revenue.IsZero())

	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, repo.CreateBatch([]models.Order{
		pendingRow(7, 3, 2, 200, today),
		pendingRow(8, 5, 1, 50, today),
	}))

	count, err = repo.Count()
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)

	revenue, err = repo.TotalRevenue()
	assert.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(250)), "got %s", revenue)
}
