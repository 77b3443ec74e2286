package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypeCatering = "catering"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusRejected  = "rejected"
	OrderStatusCompleted = "completed"
)

// OrderLine is a denormalized snapshot of a menu item at order time, so
// historical orders keep their meaning if the catalog changes later.
type OrderLine struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Quantity       int      `json:"quantity"`
	Customizations []string `json:"customizations"`
	Price          float64  `json:"price"`
}

type CateringLine struct {
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	PerServing float64 `json:"perServing"`
}

type Order struct {
	gorm.Model
	UserID        uint                              `json:"userId"`
	CustomerName  string                            `json:"customerName"`
	CustomerEmail string                            `json:"customerEmail"`
	CustomerPhone string                            `json:"customerPhone"`
	OrderType     string                            `json:"orderType"`
	Items         datatypes.JSONSlice[OrderLine]    `json:"items"`
	EventDate     string                            `json:"eventDate,omitempty"`
	EventLocation string                            `json:"eventLocation,omitempty"`
	GuestCount    int                               `json:"guestCount,omitempty"`
	CateringItems datatypes.JSONSlice[CateringLine] `json:"cateringItems"`
	TotalAmount   float64                           `json:"totalAmount"`
	Status        string                            `json:"status"`
	Notes         string                            `json:"notes,omitempty"`
}
