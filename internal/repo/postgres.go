package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghbundles/fulfillment-service/internal/entities"
	"github.com/ghbundles/fulfillment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const itemColumns = `oi.id, oi.order_id, oi.product_id, oi.quantity, oi.recipient_phone,
	oi.unit_price_cents, oi.line_total_cents, oi.fulfillment_provider, oi.hubnet_skip,
	oi.hubnet_status, oi.hubnet_network, oi.hubnet_volume_mb, oi.hubnet_reference,
	oi.hubnet_transaction_id, oi.hubnet_payment_id, oi.hubnet_attempts, oi.hubnet_last_error,
	oi.hubnet_last_attempt_at, oi.hubnet_delivered_at, oi.updated_at,
	p.name AS product_name, p.slug AS product_slug, p.category_slug AS product_category`

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"id", "order_code", "customer_name", "customer_email", "customer_phone",
		"payment_status", "status", "subtotal_cents", "total_cents", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.ListItems(ctx, orderID, 0)
	if err != nil {
		return entities.Order{}, err
	}

	result := OrderToEntity(order)
	result.Items = items
	return result, nil
}

// LockOrder takes the order's row lock for the rest of the surrounding
// transaction. Queueing holds it so two payment confirmations for the same
// order cannot race each other through the per-item reset.
func (r *postgresRepo) LockOrder(ctx context.Context, orderID string) error {
	rows, err := r.queryContext(ctx, `SELECT id FROM orders WHERE id = $1 FOR UPDATE`, orderID)
	if err != nil {
		return fmt.Errorf("failed to lock order: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return entities.ErrOrderNotFound
	}
	return rows.Err()
}

func (r *postgresRepo) ListItems(ctx context.Context, orderID string, limit int) ([]entities.OrderItem, error) {
	b := r.qb.Select().
		Column(sq.Expr(itemColumns)).
		From("order_items oi").
		LeftJoin("products p ON p.id = oi.product_id").
		OrderBy("oi.updated_at DESC")
	if orderID != "" {
		b = b.Where(sq.Eq{"oi.order_id": orderID})
	}
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	query, args := b.MustSql()

	var rows []OrderItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ItemToEntity(row))
	}
	return items, nil
}

func (r *postgresRepo) GetItemWithOrder(ctx context.Context, itemID string) (entities.OrderItem, entities.Order, error) {
	query, args := r.qb.Select().
		Column(sq.Expr(itemColumns)).
		From("order_items oi").
		LeftJoin("products p ON p.id = oi.product_id").
		Where(sq.Eq{"oi.id": itemID}).
		MustSql()

	var row OrderItem
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderItem{}, entities.Order{}, entities.ErrItemNotFound
	}
	if err != nil {
		return entities.OrderItem{}, entities.Order{}, fmt.Errorf("failed to get item: %w", err)
	}

	query, args = r.qb.Select(
		"id", "order_code", "customer_name", "customer_email", "customer_phone",
		"payment_status", "status", "subtotal_cents", "total_cents", "created_at").
		From("orders").
		Where(sq.Eq{"id": row.OrderID}).
		MustSql()

	var order Order
	if err := r.getContext(ctx, &order, query, args...); err != nil {
		return entities.OrderItem{}, entities.Order{}, fmt.Errorf("failed to get item order: %w", err)
	}

	return ItemToEntity(row), OrderToEntity(order), nil
}

func (r *postgresRepo) FindItemByReference(ctx context.Context, reference string) (entities.OrderItem, error) {
	query, args := r.qb.Select().
		Column(sq.Expr(itemColumns)).
		From("order_items oi").
		LeftJoin("products p ON p.id = oi.product_id").
		Where(sq.Eq{"oi.hubnet_reference": reference}).
		MustSql()

	var row OrderItem
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderItem{}, entities.ErrItemNotFound
	}
	if err != nil {
		return entities.OrderItem{}, fmt.Errorf("failed to find item by reference: %w", err)
	}
	return ItemToEntity(row), nil
}

// claimQuery flips the single oldest eligible item to SENDING in one
// statement. SKIP LOCKED keeps concurrent dispatchers (and replicas of this
// process) from ever claiming the same row twice.
const claimQuery = `
UPDATE order_items SET
	hubnet_status = 'SENDING',
	hubnet_attempts = hubnet_attempts + 1,
	hubnet_last_attempt_at = now(),
	hubnet_last_error = NULL,
	updated_at = now()
WHERE id = (
	SELECT c.id FROM order_items c
	JOIN orders o ON o.id = c.order_id
	WHERE o.payment_status = 'PAID'
	  AND c.hubnet_skip = FALSE
	  AND c.hubnet_attempts < $1
	  AND (c.hubnet_status IS NULL OR c.hubnet_status IN ('PENDING', 'FAILED'))
	  AND (c.hubnet_last_attempt_at IS NULL OR c.hubnet_last_attempt_at <= $2)
	  AND %s
	ORDER BY c.updated_at ASC
	LIMIT 1
	FOR UPDATE OF c SKIP LOCKED
)
RETURNING id`

// ClaimNextItem atomically claims one eligible item for the given provider
// and returns its id. Returns ErrNothingToClaim when no item is eligible or
// another worker won the race.
func claimProviderPredicate(p entities.Provider) string {
	if p == entities.ProviderHubnet {
		// Legacy rows predate the provider column.
		return "(c.fulfillment_provider IS NULL OR c.fulfillment_provider = 'hubnet')"
	}
	return "c.fulfillment_provider = 'datahubnet'"
}

func (r *postgresRepo) ClaimNextItem(ctx context.Context, p entities.Provider, cutoff time.Time) (string, error) {
	query := fmt.Sprintf(claimQuery, claimProviderPredicate(p))

	var id string
	err := r.getContext(ctx, &id, query, entities.MaxAttempts, cutoff)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrNothingToClaim
	}
	if err != nil {
		return "", fmt.Errorf("failed to claim item: %w", err)
	}
	return id, nil
}

const nextSubmittedQuery = `
SELECT ` + itemColumns + `
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
LEFT JOIN products p ON p.id = oi.product_id
WHERE o.payment_status = 'PAID'
  AND oi.hubnet_skip = FALSE
  AND oi.fulfillment_provider = $1
  AND oi.hubnet_status = 'SUBMITTED'
  AND (oi.hubnet_last_attempt_at IS NULL OR oi.hubnet_last_attempt_at <= $2)
ORDER BY oi.updated_at ASC
LIMIT 1`

// NextSubmittedItem returns the oldest SUBMITTED item due for a status poll,
// or ErrItemNotFound when nothing is waiting.
func (r *postgresRepo) NextSubmittedItem(ctx context.Context, p entities.Provider, cutoff time.Time) (entities.OrderItem, error) {
	var row OrderItem
	err := r.getContext(ctx, &row, nextSubmittedQuery, string(p), cutoff)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderItem{}, entities.ErrItemNotFound
	}
	if err != nil {
		return entities.OrderItem{}, fmt.Errorf("failed to select submitted item: %w", err)
	}
	return ItemToEntity(row), nil
}

type QueueItemParams struct {
	Provider  entities.Provider
	Network   string
	VolumeMB  int
	Reference string
}

// QueueItemPending resets the item to PENDING with a fresh attempt budget.
// The reference is the caller's reuse-or-generate result and never changes
// after the first queueing.
func (r *postgresRepo) QueueItemPending(ctx context.Context, itemID string, p QueueItemParams) error {
	query, args := r.qb.Update("order_items").
		SetMap(map[string]any{
			"fulfillment_provider":   string(p.Provider),
			"hubnet_skip":            false,
			"hubnet_status":          string(entities.StatusPending),
			"hubnet_network":         p.Network,
			"hubnet_volume_mb":       nullInt32(p.VolumeMB),
			"hubnet_reference":       p.Reference,
			"hubnet_attempts":        0,
			"hubnet_last_attempt_at": nil,
			"hubnet_last_error":      nil,
			"hubnet_transaction_id":  nil,
			"hubnet_payment_id":      nil,
			"updated_at":             sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to queue item: %w", err)
	}
	return nil
}

// MarkItemSkipped parks the item outside the delivery pipeline entirely. All
// fulfillment fields are cleared so a later re-queue starts from scratch.
func (r *postgresRepo) MarkItemSkipped(ctx context.Context, itemID string, p entities.Provider) error {
	query, args := r.qb.Update("order_items").
		SetMap(map[string]any{
			"fulfillment_provider":   string(p),
			"hubnet_skip":            true,
			"hubnet_status":          nil,
			"hubnet_network":         nil,
			"hubnet_volume_mb":       nil,
			"hubnet_reference":       nil,
			"hubnet_transaction_id":  nil,
			"hubnet_payment_id":      nil,
			"hubnet_attempts":        0,
			"hubnet_last_error":      nil,
			"hubnet_last_attempt_at": nil,
			"hubnet_delivered_at":    nil,
			"updated_at":             sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark item skipped: %w", err)
	}
	return nil
}

type FailItemParams struct {
	Reason string

	// Optional field assignments recorded alongside the failure.
	Provider  entities.Provider
	Network   string
	Reference string

	// CountAttempt burns one attempt and stamps the backoff timer. Queue-time
	// failures count; reconciliation failures do not.
	CountAttempt bool
	// Exhaust forces the attempt counter to the ceiling so the item is never
	// retried. Used for provider errors known to be permanent.
	Exhaust bool
}

func (r *postgresRepo) MarkItemFailed(ctx context.Context, itemID string, p FailItemParams) error {
	set := map[string]any{
		"hubnet_skip":       false,
		"hubnet_status":     string(entities.StatusFailed),
		"hubnet_last_error": p.Reason,
		"updated_at":        sq.Expr("now()"),
	}
	if p.Provider != "" {
		set["fulfillment_provider"] = string(p.Provider)
	}
	if p.Network != "" {
		set["hubnet_network"] = p.Network
	}
	if p.Reference != "" {
		set["hubnet_reference"] = p.Reference
	}
	if p.CountAttempt {
		set["hubnet_attempts"] = sq.Expr("hubnet_attempts + 1")
		set["hubnet_last_attempt_at"] = sq.Expr("now()")
	}
	if p.Exhaust {
		set["hubnet_attempts"] = entities.MaxAttempts
	}

	query, args := r.qb.Update("order_items").
		SetMap(set).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark item failed: %w", err)
	}
	return nil
}

// SetItemResolution persists the resolved network, volume, and reference
// before the provider call, so a crash mid-submission still leaves the
// idempotency reference behind.
func (r *postgresRepo) SetItemResolution(ctx context.Context, itemID, network string, volumeMB int, reference string) error {
	query, args := r.qb.Update("order_items").
		SetMap(map[string]any{
			"hubnet_network":   network,
			"hubnet_volume_mb": nullInt32(volumeMB),
			"hubnet_reference": reference,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set item resolution: %w", err)
	}
	return nil
}

func (r *postgresRepo) MarkItemSubmitted(ctx context.Context, itemID, transactionID, paymentID string) error {
	set := map[string]any{
		"hubnet_status": string(entities.StatusSubmitted),
		"updated_at":    sq.Expr("now()"),
	}
	if transactionID != "" {
		set["hubnet_transaction_id"] = transactionID
	}
	if paymentID != "" {
		set["hubnet_payment_id"] = paymentID
	}

	query, args := r.qb.Update("order_items").
		SetMap(set).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark item submitted: %w", err)
	}
	return nil
}

func (r *postgresRepo) MarkItemDelivered(ctx context.Context, itemID, transactionID, paymentID string) error {
	set := map[string]any{
		"hubnet_status":       string(entities.StatusDelivered),
		"hubnet_delivered_at": sq.Expr("now()"),
		"hubnet_last_error":   nil,
		"updated_at":          sq.Expr("now()"),
	}
	if transactionID != "" {
		set["hubnet_transaction_id"] = transactionID
	}
	if paymentID != "" {
		set["hubnet_payment_id"] = paymentID
	}

	query, args := r.qb.Update("order_items").
		SetMap(set).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark item delivered: %w", err)
	}
	return nil
}

// TouchItemAttempt stamps the backoff timer without touching anything else.
// Polling advances it on every check so an ambiguous status cannot hot-loop.
func (r *postgresRepo) TouchItemAttempt(ctx context.Context, itemID string) error {
	query, args := r.qb.Update("order_items").
		Set("hubnet_last_attempt_at", sq.Expr("now()")).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to touch item attempt: %w", err)
	}
	return nil
}

func (r *postgresRepo) SetItemError(ctx context.Context, itemID, reason string) error {
	query, args := r.qb.Update("order_items").
		Set("hubnet_last_error", reason).
		Where(sq.Eq{"id": itemID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set item error: %w", err)
	}
	return nil
}

func (r *postgresRepo) CountUndelivered(ctx context.Context, orderID string) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("order_items").
		Where(sq.Eq{"order_id": orderID, "hubnet_skip": false}).
		Where(sq.Or{
			sq.Eq{"hubnet_status": nil},
			sq.NotEq{"hubnet_status": string(entities.StatusDelivered)},
		}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count undelivered items: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) CountDeliverable(ctx context.Context, orderID string) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("order_items").
		Where(sq.Eq{"order_id": orderID, "hubnet_skip": false}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count deliverable items: %w", err)
	}
	return count, nil
}

// MarkOrderProcessing advances PENDING to PROCESSING. Conditional so the
// order status only ever moves forward.
func (r *postgresRepo) MarkOrderProcessing(ctx context.Context, orderID string) error {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderProcessing)).
		Where(sq.Eq{"id": orderID, "status": string(entities.OrderPending)}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark order processing: %w", err)
	}
	return nil
}

// MarkOrderCompleted is idempotent; concurrent deliveries racing to complete
// the same order both land on the same result.
func (r *postgresRepo) MarkOrderCompleted(ctx context.Context, orderID string) error {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.OrderCompleted)).
		Where(sq.Eq{"id": orderID}).
		Where(sq.NotEq{"status": string(entities.OrderCompleted)}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark order completed: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

func (r *postgresRepo) queryContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.QueryxContext(ctx, query, args...)
	}
	return r.db.QueryxContext(ctx, query, args...)
}
