package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ghbundles/fulfillment-service/internal/entities"
	"github.com/ghbundles/fulfillment-service/internal/fulfillment"
	"github.com/ghbundles/fulfillment-service/internal/provider/datahubnet"
	"github.com/ghbundles/fulfillment-service/internal/provider/hubnet"
	"github.com/ghbundles/fulfillment-service/pkg/cache"
	"github.com/ghbundles/fulfillment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type FulfillmentService interface {
	QueueOrder(ctx context.Context, orderID string) (bool, error)
	ApplyWebhook(ctx context.Context, payload map[string]any) (fulfillment.WebhookResult, error)
	ListItems(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	HubnetBalance(ctx context.Context) (json.RawMessage, error)
	DatahubnetBalance(ctx context.Context) (json.RawMessage, error)
}

const balanceCacheTTL = 30 * time.Second

type HTTPHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	svc           FulfillmentService
	webhookSecret string
	balances      *cache.TTLCache
}

func NewHTTPHandler(logger *slog.Logger, svc FulfillmentService, webhookSecret string) *HTTPHandler {
	return &HTTPHandler{
		logger:        logger.With(slog.String("handler", "http")),
		validate:      validator.New(),
		svc:           svc,
		webhookSecret: webhookSecret,
		balances:      cache.NewTTLCache(balanceCacheTTL),
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/hubnet/webhook", h.HubnetWebhook)

	r.Route("/fulfillment", func(r chi.Router) {
		r.Get("/items", h.ListItems)
		r.Post("/queue/{order_id}", h.QueueOrder)
		r.Get("/balance/{provider}", h.Balance)
	})
}

// HubnetWebhook applies an inbound delivery notification. The response is
// 200 for both applied and unrecognized references; the provider retries on
// anything else and a stale reference is not worth a retry storm.
func (h *HTTPHandler) HubnetWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.webhookSecret != "" {
		headerSecret := r.Header.Get("x-hubnet-secret")
		querySecret := r.URL.Query().Get("secret")
		if headerSecret != h.webhookSecret && querySecret != h.webhookSecret {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	var payload map[string]any
	if err := utils.DecodeBody(r, &payload); err != nil {
		utils.WriteError(w, "invalid payload", http.StatusBadRequest)
		return
	}

	res, err := h.svc.ApplyWebhook(ctx, payload)
	if errors.Is(err, entities.ErrMissingReference) {
		utils.WriteError(w, "missing reference", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to apply webhook", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, WebhookResponse{OK: true, Ignored: res.Ignored, ItemID: res.ItemID}, http.StatusOK)
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := r.URL.Query().Get("order_id")

	items, err := h.svc.ListItems(ctx, orderID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list items", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, ItemEntityToJSON(item))
	}
	utils.WriteJSON(w, map[string]any{"items": out}, http.StatusOK)
}

// QueueOrder re-triggers fulfillment for an order, e.g. after fixing a
// provider mapping. Items already delivered or in flight are untouched.
func (h *HTTPHandler) QueueOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	queued, err := h.svc.QueueOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to queue order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, QueueResponse{Queued: queued}, http.StatusOK)
}

func (h *HTTPHandler) Balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	providerName := chi.URLParam(r, "provider")

	if err := h.validate.Var(providerName, "required,oneof=hubnet datahubnet"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if data, ok := h.balances.Get(providerName); ok {
		utils.WriteJSON(w, json.RawMessage(data), http.StatusOK)
		return
	}

	var (
		balance json.RawMessage
		err     error
	)
	if providerName == "hubnet" {
		balance, err = h.svc.HubnetBalance(ctx)
	} else {
		balance, err = h.svc.DatahubnetBalance(ctx)
	}
	if err != nil {
		h.writeProviderError(ctx, w, err)
		return
	}

	h.balances.Set(providerName, balance)
	utils.WriteJSON(w, balance, http.StatusOK)
}

func (h *HTTPHandler) writeProviderError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hubnet.ErrDisabled) || errors.Is(err, datahubnet.ErrDisabled):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, hubnet.ErrNotConfigured) || errors.Is(err, datahubnet.ErrNotConfigured):
		h.logger.ErrorContext(ctx, "provider not configured", slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
	default:
		var hubnetErr *hubnet.APIError
		var datahubnetErr *datahubnet.APIError
		if errors.As(err, &hubnetErr) || errors.As(err, &datahubnetErr) {
			utils.WriteError(w, err.Error(), http.StatusBadGateway)
			return
		}
		h.logger.ErrorContext(ctx, "balance check failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
