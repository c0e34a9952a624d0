package repo

import (
	"database/sql"
	"time"

	"github.com/ghbundles/fulfillment-service/internal/entities"
)

type Order struct {
	ID            string    `db:"id"`
	OrderCode     string    `db:"order_code"`
	CustomerName  string    `db:"customer_name"`
	CustomerEmail string    `db:"customer_email"`
	CustomerPhone string    `db:"customer_phone"`
	PaymentStatus string    `db:"payment_status"`
	Status        string    `db:"status"`
	SubtotalCents int64     `db:"subtotal_cents"`
	TotalCents    int64     `db:"total_cents"`
	CreatedAt     time.Time `db:"created_at"`
}

type OrderItem struct {
	ID             string         `db:"id"`
	OrderID        string         `db:"order_id"`
	ProductID      string         `db:"product_id"`
	Quantity       int            `db:"quantity"`
	RecipientPhone sql.NullString `db:"recipient_phone"`
	UnitPriceCents int64          `db:"unit_price_cents"`
	LineTotalCents int64          `db:"line_total_cents"`

	FulfillmentProvider sql.NullString `db:"fulfillment_provider"`
	HubnetSkip          bool           `db:"hubnet_skip"`
	HubnetStatus        sql.NullString `db:"hubnet_status"`
	HubnetNetwork       sql.NullString `db:"hubnet_network"`
	HubnetVolumeMB      sql.NullInt32  `db:"hubnet_volume_mb"`
	HubnetReference     sql.NullString `db:"hubnet_reference"`
	HubnetTransactionID sql.NullString `db:"hubnet_transaction_id"`
	HubnetPaymentID     sql.NullString `db:"hubnet_payment_id"`
	HubnetAttempts      int            `db:"hubnet_attempts"`
	HubnetLastError     sql.NullString `db:"hubnet_last_error"`
	HubnetLastAttemptAt sql.NullTime   `db:"hubnet_last_attempt_at"`
	HubnetDeliveredAt   sql.NullTime   `db:"hubnet_delivered_at"`
	UpdatedAt           time.Time      `db:"updated_at"`

	// Product snapshot, joined for resolution.
	ProductName     sql.NullString `db:"product_name"`
	ProductSlug     sql.NullString `db:"product_slug"`
	ProductCategory sql.NullString `db:"product_category"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:            o.ID,
		OrderCode:     o.OrderCode,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		Status:        entities.OrderStatus(o.Status),
		SubtotalCents: o.SubtotalCents,
		TotalCents:    o.TotalCents,
		CreatedAt:     o.CreatedAt,
	}
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:             i.ID,
		OrderID:        i.OrderID,
		ProductID:      i.ProductID,
		Quantity:       i.Quantity,
		RecipientPhone: i.RecipientPhone.String,
		UnitPriceCents: i.UnitPriceCents,
		LineTotalCents: i.LineTotalCents,

		Provider:            entities.Provider(i.FulfillmentProvider.String),
		HubnetSkip:          i.HubnetSkip,
		HubnetStatus:        entities.FulfillmentStatus(i.HubnetStatus.String),
		HubnetNetwork:       i.HubnetNetwork.String,
		HubnetVolumeMB:      int(i.HubnetVolumeMB.Int32),
		HubnetReference:     i.HubnetReference.String,
		HubnetTransactionID: i.HubnetTransactionID.String,
		HubnetPaymentID:     i.HubnetPaymentID.String,
		HubnetAttempts:      i.HubnetAttempts,
		HubnetLastError:     i.HubnetLastError.String,
		HubnetLastAttemptAt: nullTimePtr(i.HubnetLastAttemptAt),
		HubnetDeliveredAt:   nullTimePtr(i.HubnetDeliveredAt),
		UpdatedAt:           i.UpdatedAt,

		Product: entities.Product{
			ID:           i.ProductID,
			Name:         i.ProductName.String,
			Slug:         i.ProductSlug.String,
			CategorySlug: i.ProductCategory.String,
		},
	}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullInt32(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}
