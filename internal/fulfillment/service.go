package fulfillment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/ghbundles/fulfillment-service/internal/config"
	"github.com/ghbundles/fulfillment-service/internal/entities"
	"github.com/ghbundles/fulfillment-service/internal/provider"
	"github.com/ghbundles/fulfillment-service/internal/provider/datahubnet"
	"github.com/ghbundles/fulfillment-service/internal/provider/hubnet"
	"github.com/ghbundles/fulfillment-service/internal/repo"
	"github.com/ghbundles/fulfillment-service/pkg/trm"
)

type Repo interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	LockOrder(ctx context.Context, orderID string) error
	ListItems(ctx context.Context, orderID string, limit int) ([]entities.OrderItem, error)
	GetItemWithOrder(ctx context.Context, itemID string) (entities.OrderItem, entities.Order, error)
	FindItemByReference(ctx context.Context, reference string) (entities.OrderItem, error)

	ClaimNextItem(ctx context.Context, p entities.Provider, cutoff time.Time) (string, error)
	NextSubmittedItem(ctx context.Context, p entities.Provider, cutoff time.Time) (entities.OrderItem, error)

	QueueItemPending(ctx context.Context, itemID string, p repo.QueueItemParams) error
	MarkItemSkipped(ctx context.Context, itemID string, p entities.Provider) error
	MarkItemFailed(ctx context.Context, itemID string, p repo.FailItemParams) error
	SetItemResolution(ctx context.Context, itemID, network string, volumeMB int, reference string) error
	MarkItemSubmitted(ctx context.Context, itemID, transactionID, paymentID string) error
	MarkItemDelivered(ctx context.Context, itemID, transactionID, paymentID string) error
	TouchItemAttempt(ctx context.Context, itemID string) error
	SetItemError(ctx context.Context, itemID, reason string) error

	CountUndelivered(ctx context.Context, orderID string) (int, error)
	CountDeliverable(ctx context.Context, orderID string) (int, error)
	MarkOrderProcessing(ctx context.Context, orderID string) error
	MarkOrderCompleted(ctx context.Context, orderID string) error
}

type HubnetAPI interface {
	NewTransaction(ctx context.Context, req hubnet.TransactionRequest) (hubnet.TransactionResult, error)
	Balance(ctx context.Context) (json.RawMessage, error)
}

type DatahubnetAPI interface {
	PlaceOrder(ctx context.Context, req datahubnet.OrderRequest) (datahubnet.OrderResult, error)
	CheckStatus(ctx context.Context, idOrReference string) (string, error)
	Balance(ctx context.Context) (json.RawMessage, error)
}

// Free-text status classification shared by the poll path and the webhook
// path. Anything matching neither pattern means "still pending".
var (
	deliveredPattern = regexp.MustCompile(`(?i)deliver|success|completed`)
	failedPattern    = regexp.MustCompile(`(?i)fail|error|cancel`)

	// permanentPattern marks provider rejections that no retry can fix; the
	// attempt budget is exhausted immediately on a match.
	permanentPattern = regexp.MustCompile(`(?i)not eligible|contact the administrator`)
)

type Config struct {
	Hubnet      config.Hubnet
	Datahubnet  config.Datahubnet
	Fulfillment config.Fulfillment
}

type Service struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      Repo

	hubnet     HubnetAPI
	datahubnet DatahubnetAPI

	cfg    Config
	policy Policy
	now    func() time.Time
}

func NewService(logger *slog.Logger, txManager trm.Manager, repo Repo, hn HubnetAPI, dh DatahubnetAPI, cfg Config) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "fulfillment")),
		txManager:  txManager,
		repo:       repo,
		hubnet:     hn,
		datahubnet: dh,
		cfg:        cfg,
		policy:     NewPolicy(cfg.Fulfillment.ProviderMap, cfg.Hubnet.NetworkMap),
		now:        time.Now,
	}
}

// QueueOrder resets every not-yet-delivered item of a paid order to PENDING
// (or FAILED/skip when undeliverable) so the dispatcher picks them up. Safe
// to call again: items already past FAILED keep their state and reference.
// Returns false when the order is not paid or no provider is configured.
func (s *Service) QueueOrder(ctx context.Context, orderID string) (bool, error) {
	hubnetOK := s.cfg.Hubnet.Configured()
	datahubnetOK := s.cfg.Datahubnet.Configured()
	if !hubnetOK && !datahubnetOK {
		s.logger.WarnContext(ctx, "no fulfillment provider configured, order not queued", slog.String("order_id", orderID))
		return false, nil
	}

	queued := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// The row lock serializes duplicate payment confirmations racing on
		// the same order.
		if err := s.repo.LockOrder(ctx, orderID); err != nil {
			return err
		}

		order, err := s.repo.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.PaymentStatus != entities.PaymentPaid {
			return nil
		}
		queued = true

		deliverable := 0
		for _, item := range order.Items {
			// In-flight and delivered items are left alone; everything the
			// dispatcher could still claim is (re)queued with fresh counters.
			if !item.HubnetStatus.Claimable() {
				continue
			}

			ok, err := s.queueItem(ctx, order, item, hubnetOK, datahubnetOK)
			if err != nil {
				return err
			}
			if ok {
				deliverable++
			}
		}

		if deliverable > 0 {
			if err := s.repo.MarkOrderProcessing(ctx, order.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to queue order: %w", err)
	}

	if queued {
		ordersQueued.Inc()
		s.logger.InfoContext(ctx, "order queued for fulfillment", slog.String("order_id", orderID))
	}
	return queued, nil
}

// queueItem decides one item's fate at queue time: PENDING with a reference,
// FAILED with a permanent reason, or skipped. Reports whether the item became
// deliverable.
func (s *Service) queueItem(ctx context.Context, order entities.Order, item entities.OrderItem, hubnetOK, datahubnetOK bool) (bool, error) {
	p := s.policy.ProviderFor(item.Product.CategorySlug)

	if p == entities.ProviderDatahubnet {
		if !datahubnetOK {
			return false, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
				Reason:       "DataHubnet is not configured",
				Provider:     entities.ProviderDatahubnet,
				Network:      s.cfg.Datahubnet.Network,
				CountAttempt: true,
			})
		}

		volumeMB, _ := ParseVolumeMB(item.Product.Name, item.Product.Slug)
		capacity, ok := ResolveCapacity(item.Product, volumeMB, s.cfg.Datahubnet.CapacityMap)
		if !ok || capacity <= 0 {
			return false, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
				Reason:       "Unable to determine bundle size (capacity)",
				Provider:     entities.ProviderDatahubnet,
				Network:      s.cfg.Datahubnet.Network,
				CountAttempt: true,
			})
		}

		return true, s.repo.QueueItemPending(ctx, item.ID, repo.QueueItemParams{
			Provider:  entities.ProviderDatahubnet,
			Network:   s.cfg.Datahubnet.Network,
			VolumeMB:  volumeMB,
			Reference: reuseReference(item, entities.ProviderDatahubnet, order.ID),
		})
	}

	if !hubnetOK {
		return false, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
			Reason:       "Hubnet is not configured",
			Provider:     entities.ProviderHubnet,
			CountAttempt: true,
		})
	}

	network, ok := s.policy.HubnetNetworkFor(item.Product.CategorySlug)
	if !ok {
		// Not an error: this category is simply not ours to deliver.
		return false, s.repo.MarkItemSkipped(ctx, item.ID, entities.ProviderHubnet)
	}

	volumeMB, ok := ParseVolumeMB(item.Product.Name, item.Product.Slug)
	if !ok {
		return false, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
			Reason:       "Unable to determine bundle size (volume)",
			Provider:     entities.ProviderHubnet,
			Network:      network,
			CountAttempt: true,
		})
	}

	return true, s.repo.QueueItemPending(ctx, item.ID, repo.QueueItemParams{
		Provider:  entities.ProviderHubnet,
		Network:   network,
		VolumeMB:  volumeMB,
		Reference: reuseReference(item, entities.ProviderHubnet, order.ID),
	})
}

func reuseReference(item entities.OrderItem, p entities.Provider, orderID string) string {
	if item.HubnetReference != "" {
		return item.HubnetReference
	}
	return BuildReference(p, orderID, item.ID)
}

// DispatchDatahubnet claims and submits at most one DataHubnet item. Reports
// whether any work was found.
func (s *Service) DispatchDatahubnet(ctx context.Context) (bool, error) {
	if !s.cfg.Datahubnet.Configured() {
		return false, nil
	}

	itemID, err := s.repo.ClaimNextItem(ctx, entities.ProviderDatahubnet, s.backoffCutoff())
	if errors.Is(err, entities.ErrNothingToClaim) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	itemsClaimed.WithLabelValues(string(entities.ProviderDatahubnet)).Inc()

	item, order, err := s.repo.GetItemWithOrder(ctx, itemID)
	if err != nil {
		return true, err
	}

	network := s.cfg.Datahubnet.Network
	phone := recipientPhone(item, order)
	volumeMB := item.HubnetVolumeMB
	if volumeMB == 0 {
		volumeMB, _ = ParseVolumeMB(item.Product.Name, item.Product.Slug)
	}
	capacity, capacityOK := ResolveCapacity(item.Product, volumeMB, s.cfg.Datahubnet.CapacityMap)
	reference := reuseReference(item, entities.ProviderDatahubnet, order.ID)

	if phone == "" || !capacityOK || capacity <= 0 {
		reason := "Unable to determine bundle size (capacity)"
		if phone == "" {
			reason = "Missing recipient phone"
		}
		// The claim already burned the attempt; the same missing data will
		// recur, so the cap is the circuit breaker here.
		return true, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
			Reason:    reason,
			Network:   network,
			Reference: reference,
		})
	}

	if err := s.repo.SetItemResolution(ctx, item.ID, network, volumeMB, reference); err != nil {
		return true, err
	}

	res, err := s.datahubnet.PlaceOrder(ctx, datahubnet.OrderRequest{
		Phone:     phone,
		Network:   network,
		Capacity:  capacity,
		Reference: reference,
		Express:   true,
	})
	if err != nil {
		return true, s.failSubmission(ctx, item, err, "DataHubnet request failed")
	}

	itemsSubmitted.WithLabelValues(string(entities.ProviderDatahubnet)).Inc()
	s.logger.InfoContext(ctx, "item submitted to datahubnet",
		slog.String("item_id", item.ID),
		slog.String("reference", reference),
		slog.Int("capacity", capacity),
	)
	return true, s.repo.MarkItemSubmitted(ctx, item.ID, res.OrderID, "")
}

// PollDatahubnet checks delivery status for at most one submitted DataHubnet
// item. The backoff timer advances no matter what comes back, so an
// ambiguous answer cannot cause hot-polling.
func (s *Service) PollDatahubnet(ctx context.Context) (bool, error) {
	if !s.cfg.Datahubnet.Configured() {
		return false, nil
	}

	item, err := s.repo.NextSubmittedItem(ctx, entities.ProviderDatahubnet, s.backoffCutoff())
	if errors.Is(err, entities.ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := s.repo.TouchItemAttempt(ctx, item.ID); err != nil {
		return true, err
	}

	checkID := item.HubnetTransactionID
	if checkID == "" {
		checkID = item.HubnetReference
	}

	status, err := s.datahubnet.CheckStatus(ctx, checkID)
	if err != nil {
		// A failed status check is not a delivery failure; record it and let
		// the next poll try again.
		return true, s.repo.SetItemError(ctx, item.ID, errMessage(err, "DataHubnet status check failed"))
	}

	switch {
	case deliveredPattern.MatchString(status):
		return true, s.markDelivered(ctx, item, "", "", "poll")
	case failedPattern.MatchString(status):
		reason := status
		if reason == "" {
			reason = "DataHubnet failed"
		}
		itemsFailed.WithLabelValues(string(entities.ProviderDatahubnet)).Inc()
		return true, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{Reason: reason})
	default:
		// Still in flight.
		return true, nil
	}
}

// DispatchHubnet claims and submits at most one hubnet item.
func (s *Service) DispatchHubnet(ctx context.Context) (bool, error) {
	if !s.cfg.Hubnet.Configured() {
		return false, nil
	}

	itemID, err := s.repo.ClaimNextItem(ctx, entities.ProviderHubnet, s.backoffCutoff())
	if errors.Is(err, entities.ErrNothingToClaim) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	itemsClaimed.WithLabelValues(string(entities.ProviderHubnet)).Inc()

	item, order, err := s.repo.GetItemWithOrder(ctx, itemID)
	if err != nil {
		return true, err
	}

	network := item.HubnetNetwork
	if network == "" {
		network, _ = s.policy.HubnetNetworkFor(item.Product.CategorySlug)
	}
	if network == "" {
		return true, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
			Reason: "No hubnet network mapping for category: " + orUnknown(item.Product.CategorySlug),
		})
	}

	volumeMB := item.HubnetVolumeMB
	if volumeMB == 0 {
		volumeMB, _ = ParseVolumeMB(item.Product.Name, item.Product.Slug)
	}
	reference := reuseReference(item, entities.ProviderHubnet, order.ID)

	if volumeMB == 0 {
		return true, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
			Reason:    "Unable to determine bundle size (volume)",
			Network:   network,
			Reference: reference,
		})
	}

	phone := recipientPhone(item, order)
	if phone == "" {
		return true, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
			Reason:    "Missing recipient phone",
			Network:   network,
			Reference: reference,
		})
	}

	if err := s.repo.SetItemResolution(ctx, item.ID, network, volumeMB, reference); err != nil {
		return true, err
	}

	res, err := s.hubnet.NewTransaction(ctx, hubnet.TransactionRequest{
		Network:    network,
		Phone:      phone,
		VolumeMB:   volumeMB,
		Reference:  reference,
		Referrer:   order.CustomerPhone,
		WebhookURL: s.cfg.Hubnet.WebhookURL,
	})
	if err != nil {
		return true, s.failSubmission(ctx, item, err, "Hubnet request failed")
	}

	itemsSubmitted.WithLabelValues(string(entities.ProviderHubnet)).Inc()
	s.logger.InfoContext(ctx, "item submitted to hubnet",
		slog.String("item_id", item.ID),
		slog.String("reference", reference),
		slog.String("network", network),
		slog.Int("volume_mb", volumeMB),
	)
	return true, s.repo.MarkItemSubmitted(ctx, item.ID, res.TransactionID, res.PaymentID)
}

type WebhookResult struct {
	ItemID  string
	Ignored bool
}

// ApplyWebhook reconciles an inbound hubnet delivery notification against the
// item carrying its reference. Unknown references are acknowledged and
// ignored; webhooks can arrive for orders this instance never placed.
func (s *Service) ApplyWebhook(ctx context.Context, payload map[string]any) (WebhookResult, error) {
	reference, ok := provider.FirstString(payload,
		"reference", "data.reference", "data.transaction.reference")
	if !ok {
		return WebhookResult{}, entities.ErrMissingReference
	}

	item, err := s.repo.FindItemByReference(ctx, reference)
	if errors.Is(err, entities.ErrItemNotFound) {
		webhooksApplied.WithLabelValues("ignored").Inc()
		return WebhookResult{Ignored: true}, nil
	}
	if err != nil {
		return WebhookResult{}, err
	}

	okFlag := provider.AnyTrue(payload, "status", "data.status")
	statusText, _ := provider.FirstString(payload,
		"delivery_status", "status_text", "data.delivery_status", "data.status")
	delivered := okFlag || deliveredPattern.MatchString(statusText)

	transactionID, _ := provider.FirstString(payload, "transaction_id", "data.transaction_id")
	paymentID, _ := provider.FirstString(payload, "payment_id", "data.payment_id")

	if delivered {
		webhooksApplied.WithLabelValues("delivered").Inc()
		return WebhookResult{ItemID: item.ID}, s.markDelivered(ctx, item, transactionID, paymentID, "webhook")
	}

	reason, _ := provider.FirstString(payload, "reason", "code", "message")
	if reason == "" {
		reason = "Hubnet failed"
	}
	webhooksApplied.WithLabelValues("failed").Inc()
	itemsFailed.WithLabelValues(string(entities.ProviderHubnet)).Inc()
	// Attempts are untouched: reconciliation failures are not submission
	// attempts, and a FAILED item stays eligible for re-dispatch until the
	// cap exhausts it.
	return WebhookResult{ItemID: item.ID}, s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{Reason: reason})
}

func (s *Service) ListItems(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	return s.repo.ListItems(ctx, orderID, 200)
}

func (s *Service) HubnetBalance(ctx context.Context) (json.RawMessage, error) {
	return s.hubnet.Balance(ctx)
}

func (s *Service) DatahubnetBalance(ctx context.Context) (json.RawMessage, error) {
	return s.datahubnet.Balance(ctx)
}

// markDelivered records the terminal success, then runs the order
// aggregation: once no non-skipped sibling is undelivered the order is
// complete. The count and the update are separate statements; both are
// idempotent, so racing deliveries converge on the same outcome.
func (s *Service) markDelivered(ctx context.Context, item entities.OrderItem, transactionID, paymentID, path string) error {
	if err := s.repo.MarkItemDelivered(ctx, item.ID, transactionID, paymentID); err != nil {
		return err
	}
	itemsDelivered.WithLabelValues(path).Inc()
	s.logger.InfoContext(ctx, "item delivered",
		slog.String("item_id", item.ID),
		slog.String("order_id", item.OrderID),
		slog.String("path", path),
	)

	remaining, err := s.repo.CountUndelivered(ctx, item.OrderID)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}

	deliverable, err := s.repo.CountDeliverable(ctx, item.OrderID)
	if err != nil {
		return err
	}
	if deliverable == 0 {
		// An all-skipped order never completes through delivery.
		return nil
	}

	if err := s.repo.MarkOrderCompleted(ctx, item.OrderID); err != nil {
		return err
	}
	ordersCompleted.Inc()
	s.logger.InfoContext(ctx, "order completed", slog.String("order_id", item.OrderID))
	return nil
}

// failSubmission converts a provider error into a FAILED state. Errors the
// provider is known never to recover from exhaust the attempt budget on the
// spot; everything else stays retry-eligible under backoff.
func (s *Service) failSubmission(ctx context.Context, item entities.OrderItem, callErr error, fallback string) error {
	message := errMessage(callErr, fallback)
	itemsFailed.WithLabelValues(string(item.Provider)).Inc()
	s.logger.WarnContext(ctx, "item submission failed",
		slog.String("item_id", item.ID),
		slog.String("error", message),
	)
	return s.repo.MarkItemFailed(ctx, item.ID, repo.FailItemParams{
		Reason:  message,
		Exhaust: permanentPattern.MatchString(message),
	})
}

func (s *Service) backoffCutoff() time.Time {
	return s.now().Add(-s.cfg.Fulfillment.DispatchInterval)
}

func recipientPhone(item entities.OrderItem, order entities.Order) string {
	if item.RecipientPhone != "" {
		return item.RecipientPhone
	}
	return order.CustomerPhone
}

func errMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
