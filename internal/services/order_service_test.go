package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/musqaan/flipcart-clone/internal/models"
	"github.com/musqaan/flipcart-clone/internal/repositories"
	"github.com/musqaan/flipcart-clone/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateBatch(orders []models.Order) error {
	args := m.Called(orders)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByUser(userID uint) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Find(filter repositories.OrderFilter) ([]models.Order, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) TotalRevenue() (decimal.Decimal, error) {
	args := m.Called()
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	var written []models.Order
	mockRepo.On("CreateBatch", mock.AnythingOfType("[]models.Order")).
		Run(func(args mock.Arguments) {
			written = args.Get(0).([]models.Order)
			for i := range written {
				written[i].ID = uint(41 + i) // simulate generated IDs
			}
		}).
		Return(nil).Once()

	result, err := service.PlaceOrder(validSubmission())
	assert.NoError(t, err)
	assert.NotNil(t, result)
	mockRepo.AssertExpectations(t)

	// N cart lines produce exactly N rows.
	assert.Len(t, written, 2)
	assert.Equal(t, 2, result.Lines)
	// The first inserted row is the submission-level reference.
	assert.Equal(t, uint(41), result.OrderID)

	today := time.Now().UTC()
	for _, row := range written {
		assert.Equal(t, uint(7), row.UserID)
		assert.Equal(t, models.StatusPending, row.Status)
		assert.Equal(t, "12 Elm St", row.Address)
		assert.Equal(t, written[0].OrderDate, row.OrderDate)
		assert.Equal(t, today.Year(), row.OrderDate.Year())
		assert.Equal(t, today.YearDay(), row.OrderDate.YearDay())
		// Date only, no time of day.
		assert.Equal(t, 0, row.OrderDate.Hour())
	}

	// line_total = unit price x quantity, exactly.
	assert.Equal(t, uint(3), written[0].ProductID)
	assert.Equal(t, 2, written[0].Quantity)
	assert.True(t, written[0].TotalPrice.Equal(decimal.NewFromInt(200)), "got %s", written[0].TotalPrice)
	assert.Equal(t, uint(5), written[1].ProductID)
	assert.Equal(t, 1, written[1].Quantity)
	assert.True(t, written[1].TotalPrice.Equal(decimal.NewFromInt(50)), "got %s", written[1].TotalPrice)
}

func TestOrderService_PlaceOrder_RejectsBeforePersistence(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	sub := validSubmission()
	sub.CartItems = append(sub.CartItems, services.CartItem{ID: -1, Quantity: 2, Price: 10})

	result, err := service.PlaceOrder(sub)
	assert.Error(t, err)
	assert.Nil(t, result)

	var verr *services.InvalidSubmissionError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, []services.CartItem{{ID: -1, Quantity: 2, Price: 10}}, verr.InvalidItems)

	// Zero rows written: the repository was never touched.
	assert.Empty(t, mockRepo.Calls)
}

func TestOrderService_PlaceOrder_PersistenceError(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("CreateBatch", mock.AnythingOfType("[]models.Order")).
		Return(errors.New("connection lost")).Once()

	result, err := service.PlaceOrder(validSubmission())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to place order")
	mockRepo.AssertExpectations(t)
}

func TestOrderService_FindOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	var captured repositories.OrderFilter
	mockRepo.On("Find", mock.AnythingOfType("repositories.OrderFilter")).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(repositories.OrderFilter)
		}).
		Return([]models.Order{}, nil).Twice()

	orders, err := service.FindOrders(models.StatusShipped, false)
	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, models.StatusShipped, captured.Status)
	assert.True(t, captured.UpdatedAfter.IsZero())

	_, err = service.FindOrders("", true)
	assert.NoError(t, err)
	assert.Equal(t, "", captured.Status)
	// Recency flag restricts to the last hour.
	assert.WithinDuration(t, time.Now().Add(-time.Hour), captured.UpdatedAfter, 2*time.Second)

	mockRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	// Unknown status never reaches the repository.
	err := service.UpdateOrderStatus(1, "Teleported")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
	assert.Empty(t, mockRepo.Calls)

	// Missing order surfaces the repository sentinel.
	mockRepo.On("UpdateStatus", uint(999), models.StatusShipped).
		Return(repositories.ErrOrderNotFound).Once()
	err = service.UpdateOrderStatus(999, models.StatusShipped)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

	// Any known status may overwrite any other, including itself.
	mockRepo.On("UpdateStatus", uint(1), models.StatusPending).Return(nil).Once()
	assert.NoError(t, service.UpdateOrderStatus(1, models.StatusPending))

	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrdersByUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	expected := []models.Order{{ID: 2, UserID: 7}, {ID: 1, UserID: 7}}
	mockRepo.On("GetByUser", uint(7)).Return(expected, nil).Once()

	orders, err := service.GetOrdersByUser(7)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockRepo.AssertExpectations(t)
}
