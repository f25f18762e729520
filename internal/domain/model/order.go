package model

import "time"

// DeliveryMethod describes how the customer receives the finished print.
type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodMeetup   DeliveryMethod = "meetup"
)

// Valid reports whether the value is one of the known delivery methods.
func (m DeliveryMethod) Valid() bool {
	switch m {
	case DeliveryMethodDelivery, DeliveryMethodMeetup:
		return true
	}
	return false
}

// OrderStatus describes order processing lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Valid reports whether the value is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress, OrderStatusCompleted:
		return true
	}
	return false
}

// Order is the persisted record of a customer's print request. The JSON field
// names are the wire contract consumed by the order form.
type Order struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	StreetAddress  *string        `json:"streetAddress"`
	City           *string        `json:"city"`
	State          *string        `json:"state"`
	Zip            *string        `json:"zip"`
	ModelFileName  *string        `json:"modelFileName"`
	WeightGrams    float64        `json:"weight"`
	PrintTime      string         `json:"printTime"`
	BaseCost       float64        `json:"baseCost"`
	SupportRemoval bool           `json:"supportRemoval"`
	SupportCost    float64        `json:"supportCost"`
	TotalCost      float64        `json:"totalCost"`
	Status         OrderStatus    `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// OrderDraft is an order payload prior to identifier assignment and persistence.
type OrderDraft struct {
	Name           string
	Phone          string
	DeliveryMethod DeliveryMethod
	StreetAddress  *string
	City           *string
	State          *string
	Zip            *string
	ModelFileName  *string
	WeightGrams    float64
	PrintTime      string
	BaseCost       float64
	SupportRemoval bool
	SupportCost    float64
	TotalCost      float64
}

// OrderPatch is a partial update merged over an existing order. Nil fields are
// left untouched by the store.
type OrderPatch struct {
	Name           *string
	Phone          *string
	DeliveryMethod *DeliveryMethod
	StreetAddress  *string
	City           *string
	State          *string
	Zip            *string
	SupportRemoval *bool
	SupportCost    *float64
	TotalCost      *float64
	Status         *OrderStatus
}

// Empty reports whether the patch carries no changes.
func (p OrderPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.DeliveryMethod == nil &&
		p.StreetAddress == nil && p.City == nil && p.State == nil && p.Zip == nil &&
		p.SupportRemoval == nil && p.SupportCost == nil && p.TotalCost == nil && p.Status == nil
}
