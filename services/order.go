package services

import (
	"errors"
	"log"
	"math"

	"github.com/mazin-goub/Hameed/models"
	"github.com/mazin-goub/Hameed/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderTransitions is the explicit transition table. Accepted, rejected
// and completed have no exit transitions; backward moves are not an admin
// override, they are errors.
var orderTransitions = map[string][]string{
	models.OrderStatusPending:  {models.OrderStatusAccepted, models.OrderStatusRejected},
	models.OrderStatusAccepted: {models.OrderStatusCompleted},
}

func ValidStatusTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusAccepted,
		models.OrderStatusRejected, models.OrderStatusCompleted:
		return true
	}
	return false
}

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type CreateOrderInput struct {
	CustomerName  string                `json:"customerName"`
	CustomerPhone string                `json:"customerPhone"`
	OrderType     string                `json:"orderType"`
	Items         []models.OrderLine    `json:"items"`
	EventDate     string                `json:"eventDate"`
	EventLocation string                `json:"eventLocation"`
	GuestCount    int                   `json:"guestCount"`
	CateringItems []models.CateringLine `json:"cateringItems"`
	TotalAmount   float64               `json:"totalAmount"`
	Notes         string                `json:"notes"`
}

// Create inserts a new order for the acting user. Status is always forced
// to pending and the owner/email come from the session, never from the
// payload.
func (s *OrderService) Create(actor models.Actor, input CreateOrderInput) (uint, error) {
	if actor.UserID == 0 {
		return 0, ErrForbidden
	}
	if input.CustomerName == "" || input.CustomerPhone == "" {
		return 0, ErrValidation
	}
	if input.TotalAmount < 0 {
		return 0, ErrValidation
	}

	switch input.OrderType {
	case models.OrderTypeDelivery:
		if len(input.Items) == 0 {
			return 0, ErrValidation
		}
		for _, line := range input.Items {
			if line.Quantity < 1 || line.Name == "" {
				return 0, ErrValidation
			}
		}
	case models.OrderTypeCatering:
		if input.EventDate == "" || input.EventLocation == "" || input.GuestCount < 1 {
			return 0, ErrValidation
		}
		for _, line := range input.CateringItems {
			if line.Quantity < 1 {
				return 0, ErrValidation
			}
		}
	default:
		return 0, ErrValidation
	}

	order := models.Order{
		UserID:        actor.UserID,
		CustomerName:  input.CustomerName,
		CustomerEmail: actor.Email,
		CustomerPhone: input.CustomerPhone,
		OrderType:     input.OrderType,
		Items:         datatypes.NewJSONSlice(input.Items),
		EventDate:     input.EventDate,
		EventLocation: input.EventLocation,
		GuestCount:    input.GuestCount,
		CateringItems: datatypes.NewJSONSlice(input.CateringItems),
		TotalAmount:   input.TotalAmount,
		Status:        models.OrderStatusPending,
		Notes:         input.Notes,
	}

	if err := s.DB.Create(&order).Error; err != nil {
		return 0, err
	}

	s.checkTotal(order)
	go utils.NotifyOrderCreated(order)

	return order.ID, nil
}

// ListMine returns the acting user's own orders, newest first.
func (s *OrderService) ListMine(actor models.Actor) ([]models.Order, error) {
	if actor.UserID == 0 {
		return nil, ErrForbidden
	}
	var orders []models.Order
	err := s.DB.Where("user_id = ?", actor.UserID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListAll returns every order, newest first. Admin only.
func (s *OrderService) ListAll(actor models.Actor) ([]models.Order, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	var orders []models.Order
	err := s.DB.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

// CountOpen returns the number of orders that still need admin attention.
func (s *OrderService) CountOpen(actor models.Actor) (int64, error) {
	if !actor.IsAdmin() {
		return 0, ErrForbidden
	}
	var count int64
	err := s.DB.Model(&models.Order{}).
		Where("status IN ?", []string{models.OrderStatusPending, models.OrderStatusAccepted}).
		Count(&count).Error
	return count, err
}

// SetStatus transitions an order through the lifecycle table. The update
// is a compare-and-set on the current status, so two admins racing on the
// same order resolve to exactly one winner.
func (s *OrderService) SetStatus(actor models.Actor, id uint, newStatus string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if !ValidOrderStatus(newStatus) {
		return ErrValidation
	}

	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !ValidStatusTransition(order.Status, newStatus) {
		return ErrInvalidTransition
	}

	result := s.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, order.Status).
		Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race: someone else moved the order first.
		return ErrInvalidTransition
	}
	return nil
}

// checkTotal recomputes the submitted total from the catalog and logs a
// mismatch. The client total is still what gets stored: the snapshot is
// the contract, the recomputation only makes bad totals visible.
func (s *OrderService) checkTotal(order models.Order) {
	var expected float64

	switch order.OrderType {
	case models.OrderTypeDelivery:
		for _, line := range order.Items {
			var item models.MenuItem
			if err := s.DB.Where("name = ?", line.Name).First(&item).Error; err != nil {
				return // unknown item, nothing to compare against
			}
			deltas := make([]float64, 0, len(line.Customizations))
			for _, chosen := range line.Customizations {
				for _, c := range item.Customizations {
					if c.Name == chosen {
						deltas = append(deltas, c.Price)
						break
					}
				}
			}
			expected += LineTotal(item.BasePrice, deltas, line.Quantity)
		}
	case models.OrderTypeCatering:
		expected = CateringTotal(order.GuestCount, CateringPricePerGuest(), order.CateringItems)
	default:
		return
	}

	if math.Abs(expected-order.TotalAmount) > 0.01 {
		log.Printf("Order %d total mismatch: submitted %.2f, recomputed %.2f",
			order.ID, order.TotalAmount, expected)
	}
}
