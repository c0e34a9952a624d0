package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghbundles/fulfillment-service/internal/entities"
	"github.com/ghbundles/fulfillment-service/internal/fulfillment"
	"github.com/ghbundles/fulfillment-service/internal/handler"
	mocks "github.com/ghbundles/fulfillment-service/internal/handler/mocks"
	"github.com/ghbundles/fulfillment-service/internal/provider/hubnet"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, webhookSecret string) (*chi.Mux, *mocks.MockFulfillmentService) {
	t.Helper()
	svc := mocks.NewMockFulfillmentService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc, webhookSecret)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func TestHTTPHandler_HubnetWebhook(t *testing.T) {
	testCases := []struct {
		name         string
		secret       string
		header       map[string]string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockFulfillmentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "applied",
			body: `{"reference":"HN-ABC","status":true}`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					ApplyWebhook(mock.Anything, mock.Anything).
					Return(fulfillment.WebhookResult{ItemID: "item-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"item_id":"item-1"`,
		},
		{
			name: "unknown reference still returns 200",
			body: `{"reference":"HN-NOPE"}`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					ApplyWebhook(mock.Anything, mock.Anything).
					Return(fulfillment.WebhookResult{Ignored: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"ignored":true`,
		},
		{
			name: "missing reference",
			body: `{"status":true}`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					ApplyWebhook(mock.Anything, mock.Anything).
					Return(fulfillment.WebhookResult{}, entities.ErrMissingReference).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"missing reference"`,
		},
		{
			name:         "invalid payload",
			body:         `{not json`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid payload"`,
		},
		{
			name: "internal error",
			body: `{"reference":"HN-ABC"}`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					ApplyWebhook(mock.Anything, mock.Anything).
					Return(fulfillment.WebhookResult{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
		{
			name:         "wrong secret",
			secret:       "s3cr3t",
			body:         `{"reference":"HN-ABC"}`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
		{
			name:   "secret via header",
			secret: "s3cr3t",
			header: map[string]string{"x-hubnet-secret": "s3cr3t"},
			body:   `{"reference":"HN-ABC"}`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					ApplyWebhook(mock.Anything, mock.Anything).
					Return(fulfillment.WebhookResult{ItemID: "item-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "secret via query",
			secret: "s3cr3t",
			target: "/hubnet/webhook?secret=s3cr3t",
			body:   `{"reference":"HN-ABC"}`,
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					ApplyWebhook(mock.Anything, mock.Anything).
					Return(fulfillment.WebhookResult{ItemID: "item-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t, tc.secret)
			tc.mockBehavior(svc)

			target := tc.target
			if target == "" {
				target = "/hubnet/webhook"
			}
			req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(tc.body))
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_QueueOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockFulfillmentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "queued",
			orderID: "order-1",
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					QueueOrder(mock.Anything, "order-1").
					Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"queued":true`,
		},
		{
			name:    "not paid",
			orderID: "order-2",
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					QueueOrder(mock.Anything, "order-2").
					Return(false, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"queued":false`,
		},
		{
			name:    "not found",
			orderID: "missing",
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					QueueOrder(mock.Anything, "missing").
					Return(false, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "order-1",
			mockBehavior: func(svc *mocks.MockFulfillmentService) {
				svc.EXPECT().
					QueueOrder(mock.Anything, "order-1").
					Return(false, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newTestRouter(t, "")
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/fulfillment/queue/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListItems(t *testing.T) {
	r, svc := newTestRouter(t, "")
	svc.EXPECT().
		ListItems(mock.Anything, "order-1").
		Return([]entities.OrderItem{
			{ID: "item-1", OrderID: "order-1", HubnetStatus: entities.StatusDelivered},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/fulfillment/items?order_id=order-1", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "item-1", resp.Items[0]["id"])
	assert.Equal(t, "DELIVERED", resp.Items[0]["hubnet_status"])
}

func TestHTTPHandler_Balance(t *testing.T) {
	t.Run("hubnet balance", func(t *testing.T) {
		r, svc := newTestRouter(t, "")
		svc.EXPECT().
			HubnetBalance(mock.Anything).
			Return(json.RawMessage(`{"balance":42}`), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/fulfillment/balance/hubnet", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"balance":42}`, rr.Body.String())
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		r, svc := newTestRouter(t, "")
		svc.EXPECT().
			DatahubnetBalance(mock.Anything).
			Return(json.RawMessage(`{"balance":"120.00"}`), nil).Once()

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodGet, "/fulfillment/balance/datahubnet", nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		r, _ := newTestRouter(t, "")

		req := httptest.NewRequest(http.MethodGet, "/fulfillment/balance/other", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("disabled provider", func(t *testing.T) {
		r, svc := newTestRouter(t, "")
		svc.EXPECT().
			HubnetBalance(mock.Anything).
			Return(nil, hubnet.ErrDisabled).Once()

		req := httptest.NewRequest(http.MethodGet, "/fulfillment/balance/hubnet", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("provider rejection maps to bad gateway", func(t *testing.T) {
		r, svc := newTestRouter(t, "")
		svc.EXPECT().
			HubnetBalance(mock.Anything).
			Return(nil, &hubnet.APIError{StatusCode: 401, Reason: "invalid token"}).Once()

		req := httptest.NewRequest(http.MethodGet, "/fulfillment/balance/hubnet", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
