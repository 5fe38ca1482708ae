package services

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/musqaan/flipcart-clone/internal/models"
	"github.com/musqaan/flipcart-clone/internal/repositories"
	"github.com/musqaan/flipcart-clone/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// PlacementResult identifies a persisted checkout submission. OrderID is the
// ID of the first inserted row and serves as the submission-level reference.
type PlacementResult struct {
	OrderID uint
	Lines   int
}

// PlaceOrder validates a submission and persists one order row per cart line
// in a single atomic insert. All rows share the owner, the calendar date of
// placement and the initial Pending status; each row's total is the submitted
// unit price times the quantity.
func (s *OrderService) PlaceOrder(sub OrderSubmission) (*PlacementResult, error) {
	if verr := ValidateOrderSubmission(sub); verr != nil {
		return nil, verr
	}

	now := time.Now().UTC()
	orderDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	rows := make([]models.Order, 0, len(sub.CartItems))
	batchTotal := decimal.Zero
	for _, item := range sub.CartItems {
		lineTotal := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		rows = append(rows, models.Order{
			UserID:     uint(sub.UserID),
			ProductID:  uint(item.ID),
			Quantity:   item.Quantity,
			TotalPrice: lineTotal,
			OrderDate:  orderDate,
			Status:     models.StatusPending,
			Address:    sub.Address,
		})
		batchTotal = batchTotal.Add(lineTotal)
	}

	if err := s.orderRepo.CreateBatch(rows); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	result := &PlacementResult{
		OrderID: rows[0].ID,
		Lines:   len(rows),
	}

	// Event publication is best-effort: the order is already committed.
	if s.mqClient != nil {
		if err := s.mqClient.PublishOrderPlaced(result.OrderID, uint(sub.UserID), result.Lines, batchTotal.StringFixed(2)); err != nil {
			log.Printf("Warning: failed to publish order placed event for order %d: %v", result.OrderID, err)
		}
	}

	return result, nil
}

// GetOrdersByUser retrieves all order rows owned by one user, most recent
// order date first.
func (s *OrderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// FindOrders retrieves order rows, optionally restricted to one status and,
// when recentlyUpdated is set, to rows touched within the last hour.
func (s *OrderService) FindOrders(status string, recentlyUpdated bool) ([]models.Order, error) {
	filter := repositories.OrderFilter{Status: status}
	if recentlyUpdated {
		filter.UpdatedAfter = time.Now().Add(-time.Hour)
	}
	return s.orderRepo.Find(filter)
}

// UpdateOrderStatus applies a status change to an existing order row. Any of
// the known statuses may replace any other; there is no transition graph.
func (s *OrderService) UpdateOrderStatus(id uint, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishOrderStatusChanged(&models.Order{ID: id, Status: status}); err != nil {
			log.Printf("Warning: failed to publish status change event for order %d: %v", id, err)
		}
	}

	return nil
}
