package entities

import (
	"errors"
	"time"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

// OrderStatus only moves forward: PENDING -> PROCESSING -> COMPLETED.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
)

type Order struct {
	ID            string
	OrderCode     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentStatus PaymentStatus
	Status        OrderStatus
	SubtotalCents int64
	TotalCents    int64
	CreatedAt     time.Time

	Items []OrderItem
}

// Product is the read-only snapshot the resolver works against.
type Product struct {
	ID           string
	Name         string
	Slug         string
	CategorySlug string
}

type OrderItem struct {
	ID             string
	OrderID        string
	ProductID      string
	Quantity       int
	RecipientPhone string
	UnitPriceCents int64
	LineTotalCents int64

	Provider      Provider
	HubnetSkip    bool
	HubnetStatus  FulfillmentStatus
	HubnetNetwork string
	// HubnetVolumeMB is the resolved bundle size in megabytes, 0 if unresolved.
	HubnetVolumeMB int
	// HubnetReference is the idempotency key shared with the reseller. Unique
	// across all items, generated once and reused on every retry.
	HubnetReference     string
	HubnetTransactionID string
	HubnetPaymentID     string
	HubnetAttempts      int
	HubnetLastError     string
	HubnetLastAttemptAt *time.Time
	HubnetDeliveredAt   *time.Time
	UpdatedAt           time.Time

	Product Product
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrItemNotFound     = errors.New("order item not found")
	ErrNothingToClaim   = errors.New("no claimable item")
	ErrMissingReference = errors.New("webhook payload is missing a reference")
)
