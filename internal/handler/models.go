package handler

import (
	"time"

	"github.com/ghbundles/fulfillment-service/internal/entities"
)

// PaymentConfirmation is the event the payment subsystem publishes when an
// order's payment settles. It is the only trigger for queueing fulfillment.
type PaymentConfirmation struct {
	OrderID       string `json:"order_id" validate:"required"`
	OrderCode     string `json:"order_code,omitempty"`
	PaymentStatus string `json:"payment_status" validate:"required,oneof=PAID UNPAID"`
	PaidAt        int64  `json:"paid_at,omitempty"`
}

// Item is the admin-facing view of one order item's fulfillment state.
type Item struct {
	ID             string `json:"id"`
	OrderID        string `json:"order_id"`
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	RecipientPhone string `json:"recipient_phone,omitempty"`

	Provider      string     `json:"fulfillment_provider,omitempty"`
	Skip          bool       `json:"hubnet_skip"`
	Status        string     `json:"hubnet_status,omitempty"`
	Network       string     `json:"hubnet_network,omitempty"`
	VolumeMB      int        `json:"hubnet_volume_mb,omitempty"`
	Reference     string     `json:"hubnet_reference,omitempty"`
	TransactionID string     `json:"hubnet_transaction_id,omitempty"`
	PaymentID     string     `json:"hubnet_payment_id,omitempty"`
	Attempts      int        `json:"hubnet_attempts"`
	LastError     string     `json:"hubnet_last_error,omitempty"`
	LastAttemptAt *time.Time `json:"hubnet_last_attempt_at,omitempty"`
	DeliveredAt   *time.Time `json:"hubnet_delivered_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`

	ProductName     string `json:"product_name,omitempty"`
	ProductCategory string `json:"product_category,omitempty"`
}

func ItemEntityToJSON(i entities.OrderItem) Item {
	return Item{
		ID:             i.ID,
		OrderID:        i.OrderID,
		ProductID:      i.ProductID,
		Quantity:       i.Quantity,
		RecipientPhone: i.RecipientPhone,

		Provider:      string(i.Provider),
		Skip:          i.HubnetSkip,
		Status:        string(i.HubnetStatus),
		Network:       i.HubnetNetwork,
		VolumeMB:      i.HubnetVolumeMB,
		Reference:     i.HubnetReference,
		TransactionID: i.HubnetTransactionID,
		PaymentID:     i.HubnetPaymentID,
		Attempts:      i.HubnetAttempts,
		LastError:     i.HubnetLastError,
		LastAttemptAt: i.HubnetLastAttemptAt,
		DeliveredAt:   i.HubnetDeliveredAt,
		UpdatedAt:     i.UpdatedAt,

		ProductName:     i.Product.Name,
		ProductCategory: i.Product.CategorySlug,
	}
}

// WebhookResponse is always a success to the caller; unknown references are
// acknowledged, never errored.
type WebhookResponse struct {
	OK      bool   `json:"ok"`
	Ignored bool   `json:"ignored,omitempty"`
	ItemID  string `json:"item_id,omitempty"`
}

type QueueResponse struct {
	Queued bool `json:"queued"`
}
