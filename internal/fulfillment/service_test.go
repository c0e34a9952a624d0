package fulfillment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ghbundles/fulfillment-service/internal/config"
	"github.com/ghbundles/fulfillment-service/internal/entities"
	"github.com/ghbundles/fulfillment-service/internal/fulfillment"
	mocks "github.com/ghbundles/fulfillment-service/internal/fulfillment/mocks"
	"github.com/ghbundles/fulfillment-service/internal/provider/datahubnet"
	"github.com/ghbundles/fulfillment-service/internal/provider/hubnet"
	"github.com/ghbundles/fulfillment-service/internal/repo"
	txMocks "github.com/ghbundles/fulfillment-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() fulfillment.Config {
	return fulfillment.Config{
		Hubnet: config.Hubnet{
			Enabled:    true,
			APIKey:     "hn-key",
			BaseURL:    "https://hubnet.test",
			WebhookURL: "https://shop.test/hubnet/webhook",
		},
		Datahubnet: config.Datahubnet{
			Enabled:    true,
			APIKey:     "dh-key",
			BaseURL:    "https://datahubnet.test",
			AuthScheme: "Token",
			Network:    "telecel",
		},
		Fulfillment: config.Fulfillment{
			DispatchInterval: 13 * time.Second,
			CallTimeout:      30 * time.Second,
			ProviderMap:      map[string]string{"telecel": "datahubnet"},
		},
	}
}

type serviceMocks struct {
	repo       *mocks.MockRepo
	hubnet     *mocks.MockHubnetAPI
	datahubnet *mocks.MockDatahubnetAPI
	tx         *txMocks.MockManager
}

func newTestService(t *testing.T, cfg fulfillment.Config) (*fulfillment.Service, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		repo:       mocks.NewMockRepo(t),
		hubnet:     mocks.NewMockHubnetAPI(t),
		datahubnet: mocks.NewMockDatahubnetAPI(t),
		tx:         txMocks.NewMockManager(t),
	}
	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := fulfillment.NewService(logger, m.tx, m.repo, m.hubnet, m.datahubnet, cfg)
	return svc, m
}

func paidOrder(items ...entities.OrderItem) entities.Order {
	return entities.Order{
		ID:            "order-1",
		OrderCode:     "GH-1001",
		CustomerPhone: "0241234567",
		PaymentStatus: entities.PaymentPaid,
		Status:        entities.OrderPending,
		Items:         items,
	}
}

func TestService_QueueOrder(t *testing.T) {
	dbError := errors.New("db error")

	mtnItem := entities.OrderItem{
		ID:      "item-1",
		OrderID: "order-1",
		Product: entities.Product{Name: "MTN 1GB Data Bundle", Slug: "mtn-1gb", CategorySlug: "mtn"},
	}

	testCases := []struct {
		name         string
		cfg          fulfillment.Config
		mockBehavior func(m serviceMocks)
		wantQueued   bool
		wantErr      error
	}{
		{
			name: "hubnet item queued",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(mtnItem), nil)
				m.repo.EXPECT().QueueItemPending(mock.Anything, "item-1",
					mock.MatchedBy(func(p repo.QueueItemParams) bool {
						return p.Provider == entities.ProviderHubnet &&
							p.Network == "mtn" &&
							p.VolumeMB == 1000 &&
							p.Reference != ""
					})).Return(nil)
				m.repo.EXPECT().MarkOrderProcessing(mock.Anything, "order-1").Return(nil)
			},
			wantQueued: true,
		},
		{
			name: "datahubnet item queued by category routing",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				item := entities.OrderItem{
					ID:      "item-1",
					OrderID: "order-1",
					Product: entities.Product{Name: "Telecel 5GB", Slug: "telecel-5gb", CategorySlug: "telecel"},
				}
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(item), nil)
				m.repo.EXPECT().QueueItemPending(mock.Anything, "item-1",
					mock.MatchedBy(func(p repo.QueueItemParams) bool {
						return p.Provider == entities.ProviderDatahubnet &&
							p.Network == "telecel" &&
							p.VolumeMB == 5000
					})).Return(nil)
				m.repo.EXPECT().MarkOrderProcessing(mock.Anything, "order-1").Return(nil)
			},
			wantQueued: true,
		},
		{
			name: "unpaid order is not queued",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				order := paidOrder(mtnItem)
				order.PaymentStatus = entities.PaymentUnpaid
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(order, nil)
			},
			wantQueued: false,
		},
		{
			name: "failed item requeued with its old reference",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				item := mtnItem
				item.HubnetStatus = entities.StatusFailed
				item.HubnetReference = "HN-KEEPME"
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(item), nil)
				m.repo.EXPECT().QueueItemPending(mock.Anything, "item-1",
					mock.MatchedBy(func(p repo.QueueItemParams) bool {
						return p.Reference == "HN-KEEPME"
					})).Return(nil)
				m.repo.EXPECT().MarkOrderProcessing(mock.Anything, "order-1").Return(nil)
			},
			wantQueued: true,
		},
		{
			name: "submitted item left alone",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				item := mtnItem
				item.HubnetStatus = entities.StatusSubmitted
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(item), nil)
			},
			wantQueued: true,
		},
		{
			name: "pending item requeued idempotently",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				item := mtnItem
				item.HubnetStatus = entities.StatusPending
				item.HubnetReference = "HN-KEEPME"
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(item), nil)
				m.repo.EXPECT().QueueItemPending(mock.Anything, "item-1",
					mock.MatchedBy(func(p repo.QueueItemParams) bool {
						return p.Reference == "HN-KEEPME"
					})).Return(nil)
				m.repo.EXPECT().MarkOrderProcessing(mock.Anything, "order-1").Return(nil)
			},
			wantQueued: true,
		},
		{
			name: "sending item left alone",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				item := mtnItem
				item.HubnetStatus = entities.StatusSending
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(item), nil)
			},
			wantQueued: true,
		},
		{
			name: "unmapped category skipped",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				item := entities.OrderItem{
					ID:      "item-1",
					OrderID: "order-1",
					Product: entities.Product{Name: "Gift Card 50", Slug: "gift-card-50", CategorySlug: "gift-cards"},
				}
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(item), nil)
				m.repo.EXPECT().MarkItemSkipped(mock.Anything, "item-1", entities.ProviderHubnet).Return(nil)
			},
			wantQueued: true,
		},
		{
			name: "unparseable size fails the item",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				item := entities.OrderItem{
					ID:      "item-1",
					OrderID: "order-1",
					Product: entities.Product{Name: "MTN Mystery Bundle", Slug: "mtn-mystery", CategorySlug: "mtn"},
				}
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(paidOrder(item), nil)
				m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
					mock.MatchedBy(func(p repo.FailItemParams) bool {
						return p.CountAttempt && p.Network == "mtn"
					})).Return(nil)
			},
			wantQueued: true,
		},
		{
			name: "no provider configured",
			cfg: func() fulfillment.Config {
				cfg := testConfig()
				cfg.Hubnet.APIKey = ""
				cfg.Datahubnet.Enabled = false
				return cfg
			}(),
			mockBehavior: func(m serviceMocks) {},
			wantQueued:   false,
		},
		{
			name: "order not found",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "repo failure surfaces",
			cfg:  testConfig(),
			mockBehavior: func(m serviceMocks) {
				m.repo.EXPECT().LockOrder(mock.Anything, "order-1").Return(nil)
				m.repo.EXPECT().GetOrder(mock.Anything, "order-1").Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t, tc.cfg)
			tc.mockBehavior(m)

			queued, err := svc.QueueOrder(context.Background(), "order-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantQueued, queued)
		})
	}
}

func TestService_DispatchHubnet(t *testing.T) {
	claimedItem := entities.OrderItem{
		ID:              "item-1",
		OrderID:         "order-1",
		HubnetStatus:    entities.StatusSending,
		HubnetNetwork:   "mtn",
		HubnetVolumeMB:  1000,
		HubnetReference: "HN-ORDER1-ITEM1",
		Product:         entities.Product{Name: "MTN 1GB", Slug: "mtn-1gb", CategorySlug: "mtn"},
	}

	t.Run("nothing to claim", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderHubnet, mock.Anything).
			Return("", entities.ErrNothingToClaim)

		worked, err := svc.DispatchHubnet(context.Background())
		assert.NoError(t, err)
		assert.False(t, worked)
	})

	t.Run("not configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.Hubnet.APIKey = ""
		svc, _ := newTestService(t, cfg)

		worked, err := svc.DispatchHubnet(context.Background())
		assert.NoError(t, err)
		assert.False(t, worked)
	})

	t.Run("submits and records transaction ids", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderHubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(claimedItem, paidOrder(), nil)
		m.repo.EXPECT().SetItemResolution(mock.Anything, "item-1", "mtn", 1000, "HN-ORDER1-ITEM1").
			Return(nil)
		m.hubnet.EXPECT().NewTransaction(mock.Anything,
			mock.MatchedBy(func(req hubnet.TransactionRequest) bool {
				return req.Network == "mtn" &&
					req.Phone == "0241234567" &&
					req.VolumeMB == 1000 &&
					req.Reference == "HN-ORDER1-ITEM1" &&
					req.WebhookURL == "https://shop.test/hubnet/webhook"
			})).Return(hubnet.TransactionResult{TransactionID: "txn-9", PaymentID: "pay-9"}, nil)
		m.repo.EXPECT().MarkItemSubmitted(mock.Anything, "item-1", "txn-9", "pay-9").Return(nil)

		worked, err := svc.DispatchHubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("recipient override wins over customer phone", func(t *testing.T) {
		item := claimedItem
		item.RecipientPhone = "0209999999"

		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderHubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(item, paidOrder(), nil)
		m.repo.EXPECT().SetItemResolution(mock.Anything, "item-1", "mtn", 1000, "HN-ORDER1-ITEM1").
			Return(nil)
		m.hubnet.EXPECT().NewTransaction(mock.Anything,
			mock.MatchedBy(func(req hubnet.TransactionRequest) bool {
				return req.Phone == "0209999999"
			})).Return(hubnet.TransactionResult{TransactionID: "txn-9"}, nil)
		m.repo.EXPECT().MarkItemSubmitted(mock.Anything, "item-1", "txn-9", "").Return(nil)

		worked, err := svc.DispatchHubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("missing phone fails the item without burning an extra attempt", func(t *testing.T) {
		order := paidOrder()
		order.CustomerPhone = ""

		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderHubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(claimedItem, order, nil)
		m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
			mock.MatchedBy(func(p repo.FailItemParams) bool {
				return !p.CountAttempt && !p.Exhaust
			})).Return(nil)

		worked, err := svc.DispatchHubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("provider rejection marks the item failed", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderHubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(claimedItem, paidOrder(), nil)
		m.repo.EXPECT().SetItemResolution(mock.Anything, "item-1", "mtn", 1000, "HN-ORDER1-ITEM1").
			Return(nil)
		m.hubnet.EXPECT().NewTransaction(mock.Anything, mock.Anything).
			Return(hubnet.TransactionResult{}, &hubnet.APIError{StatusCode: 400, Reason: "insufficient balance"})
		m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
			mock.MatchedBy(func(p repo.FailItemParams) bool {
				return p.Reason == "insufficient balance" && !p.Exhaust
			})).Return(nil)

		worked, err := svc.DispatchHubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("permanent rejection exhausts the attempt budget", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderHubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(claimedItem, paidOrder(), nil)
		m.repo.EXPECT().SetItemResolution(mock.Anything, "item-1", "mtn", 1000, "HN-ORDER1-ITEM1").
			Return(nil)
		m.hubnet.EXPECT().NewTransaction(mock.Anything, mock.Anything).
			Return(hubnet.TransactionResult{}, &hubnet.APIError{StatusCode: 400, Reason: "Beneficiary is not eligible for this offer"})
		m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
			mock.MatchedBy(func(p repo.FailItemParams) bool {
				return p.Exhaust
			})).Return(nil)

		worked, err := svc.DispatchHubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})
}

func TestService_DispatchDatahubnet(t *testing.T) {
	claimedItem := entities.OrderItem{
		ID:              "item-1",
		OrderID:         "order-1",
		HubnetStatus:    entities.StatusSending,
		HubnetVolumeMB:  5000,
		HubnetReference: "DH-ORDER1-ITEM1",
		Product:         entities.Product{Name: "Telecel 5GB", Slug: "telecel-5gb", CategorySlug: "telecel"},
	}

	t.Run("nothing to claim", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return("", entities.ErrNothingToClaim)

		worked, err := svc.DispatchDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.False(t, worked)
	})

	t.Run("places an express order", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(claimedItem, paidOrder(), nil)
		m.repo.EXPECT().SetItemResolution(mock.Anything, "item-1", "telecel", 5000, "DH-ORDER1-ITEM1").
			Return(nil)
		m.datahubnet.EXPECT().PlaceOrder(mock.Anything,
			mock.MatchedBy(func(req datahubnet.OrderRequest) bool {
				return req.Network == "telecel" &&
					req.Phone == "0241234567" &&
					req.Capacity == 5 &&
					req.Reference == "DH-ORDER1-ITEM1" &&
					req.Express
			})).Return(datahubnet.OrderResult{OrderID: "dh-77"}, nil)
		m.repo.EXPECT().MarkItemSubmitted(mock.Anything, "item-1", "dh-77", "").Return(nil)

		worked, err := svc.DispatchDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("unresolvable capacity fails the item", func(t *testing.T) {
		item := claimedItem
		item.HubnetVolumeMB = 1500
		item.Product = entities.Product{Name: "Telecel 1500MB", Slug: "telecel-1500mb", CategorySlug: "telecel"}

		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(item, paidOrder(), nil)
		m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
			mock.MatchedBy(func(p repo.FailItemParams) bool {
				return !p.CountAttempt
			})).Return(nil)

		worked, err := svc.DispatchDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("capacity override rescues odd sizes", func(t *testing.T) {
		cfg := testConfig()
		cfg.Datahubnet.CapacityMap = map[string]int{"1500": 2}

		item := claimedItem
		item.HubnetVolumeMB = 1500
		item.Product = entities.Product{Name: "Telecel 1500MB", Slug: "telecel-1500mb", CategorySlug: "telecel"}

		svc, m := newTestService(t, cfg)
		m.repo.EXPECT().ClaimNextItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return("item-1", nil)
		m.repo.EXPECT().GetItemWithOrder(mock.Anything, "item-1").
			Return(item, paidOrder(), nil)
		m.repo.EXPECT().SetItemResolution(mock.Anything, "item-1", "telecel", 1500, "DH-ORDER1-ITEM1").
			Return(nil)
		m.datahubnet.EXPECT().PlaceOrder(mock.Anything,
			mock.MatchedBy(func(req datahubnet.OrderRequest) bool {
				return req.Capacity == 2
			})).Return(datahubnet.OrderResult{OrderID: "dh-78"}, nil)
		m.repo.EXPECT().MarkItemSubmitted(mock.Anything, "item-1", "dh-78", "").Return(nil)

		worked, err := svc.DispatchDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})
}

func TestService_PollDatahubnet(t *testing.T) {
	submitted := entities.OrderItem{
		ID:                  "item-1",
		OrderID:             "order-1",
		HubnetStatus:        entities.StatusSubmitted,
		HubnetReference:     "DH-ORDER1-ITEM1",
		HubnetTransactionID: "dh-77",
	}

	t.Run("no submitted items", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().NextSubmittedItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return(entities.OrderItem{}, entities.ErrItemNotFound)

		worked, err := svc.PollDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.False(t, worked)
	})

	t.Run("delivered status completes the order", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().NextSubmittedItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return(submitted, nil)
		m.repo.EXPECT().TouchItemAttempt(mock.Anything, "item-1").Return(nil)
		m.datahubnet.EXPECT().CheckStatus(mock.Anything, "dh-77").Return("completed", nil)
		m.repo.EXPECT().MarkItemDelivered(mock.Anything, "item-1", "", "").Return(nil)
		m.repo.EXPECT().CountUndelivered(mock.Anything, "order-1").Return(0, nil)
		m.repo.EXPECT().CountDeliverable(mock.Anything, "order-1").Return(1, nil)
		m.repo.EXPECT().MarkOrderCompleted(mock.Anything, "order-1").Return(nil)

		worked, err := svc.PollDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("failed status marks the item failed", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().NextSubmittedItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return(submitted, nil)
		m.repo.EXPECT().TouchItemAttempt(mock.Anything, "item-1").Return(nil)
		m.datahubnet.EXPECT().CheckStatus(mock.Anything, "dh-77").Return("canceled", nil)
		m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
			mock.MatchedBy(func(p repo.FailItemParams) bool {
				return p.Reason == "canceled"
			})).Return(nil)

		worked, err := svc.PollDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("ambiguous status leaves the item submitted", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().NextSubmittedItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return(submitted, nil)
		m.repo.EXPECT().TouchItemAttempt(mock.Anything, "item-1").Return(nil)
		m.datahubnet.EXPECT().CheckStatus(mock.Anything, "dh-77").Return("processing", nil)

		worked, err := svc.PollDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("status check error is recorded, not fatal", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().NextSubmittedItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return(submitted, nil)
		m.repo.EXPECT().TouchItemAttempt(mock.Anything, "item-1").Return(nil)
		m.datahubnet.EXPECT().CheckStatus(mock.Anything, "dh-77").
			Return("", &datahubnet.APIError{StatusCode: 502})
		m.repo.EXPECT().SetItemError(mock.Anything, "item-1", mock.Anything).Return(nil)

		worked, err := svc.PollDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})

	t.Run("falls back to the reference when no transaction id", func(t *testing.T) {
		item := submitted
		item.HubnetTransactionID = ""

		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().NextSubmittedItem(mock.Anything, entities.ProviderDatahubnet, mock.Anything).
			Return(item, nil)
		m.repo.EXPECT().TouchItemAttempt(mock.Anything, "item-1").Return(nil)
		m.datahubnet.EXPECT().CheckStatus(mock.Anything, "DH-ORDER1-ITEM1").Return("processing", nil)

		worked, err := svc.PollDatahubnet(context.Background())
		assert.NoError(t, err)
		assert.True(t, worked)
	})
}

func TestService_ApplyWebhook(t *testing.T) {
	item := entities.OrderItem{
		ID:              "item-1",
		OrderID:         "order-1",
		HubnetStatus:    entities.StatusSubmitted,
		HubnetReference: "HN-ORDER1-ITEM1",
	}

	t.Run("missing reference", func(t *testing.T) {
		svc, _ := newTestService(t, testConfig())

		_, err := svc.ApplyWebhook(context.Background(), map[string]any{"status": true})
		assert.ErrorIs(t, err, entities.ErrMissingReference)
	})

	t.Run("unknown reference is acknowledged and ignored", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-UNKNOWN").
			Return(entities.OrderItem{}, entities.ErrItemNotFound)

		res, err := svc.ApplyWebhook(context.Background(), map[string]any{"reference": "HN-UNKNOWN"})
		assert.NoError(t, err)
		assert.True(t, res.Ignored)
	})

	t.Run("delivered flag completes a single-item order", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-ORDER1-ITEM1").Return(item, nil)
		m.repo.EXPECT().MarkItemDelivered(mock.Anything, "item-1", "txn-9", "pay-9").Return(nil)
		m.repo.EXPECT().CountUndelivered(mock.Anything, "order-1").Return(0, nil)
		m.repo.EXPECT().CountDeliverable(mock.Anything, "order-1").Return(1, nil)
		m.repo.EXPECT().MarkOrderCompleted(mock.Anything, "order-1").Return(nil)

		res, err := svc.ApplyWebhook(context.Background(), map[string]any{
			"reference":      "HN-ORDER1-ITEM1",
			"status":         true,
			"transaction_id": "txn-9",
			"payment_id":     "pay-9",
		})
		assert.NoError(t, err)
		assert.False(t, res.Ignored)
		assert.Equal(t, "item-1", res.ItemID)
	})

	t.Run("nested status true outranks a stale root false", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-ORDER1-ITEM1").Return(item, nil)
		m.repo.EXPECT().MarkItemDelivered(mock.Anything, "item-1", "", "").Return(nil)
		m.repo.EXPECT().CountUndelivered(mock.Anything, "order-1").Return(1, nil)

		res, err := svc.ApplyWebhook(context.Background(), map[string]any{
			"reference": "HN-ORDER1-ITEM1",
			"status":    false,
			"data":      map[string]any{"status": true},
		})
		assert.NoError(t, err)
		assert.Equal(t, "item-1", res.ItemID)
	})

	t.Run("delivered text in a nested payload", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-ORDER1-ITEM1").Return(item, nil)
		m.repo.EXPECT().MarkItemDelivered(mock.Anything, "item-1", "", "").Return(nil)
		m.repo.EXPECT().CountUndelivered(mock.Anything, "order-1").Return(1, nil)

		res, err := svc.ApplyWebhook(context.Background(), map[string]any{
			"data": map[string]any{
				"reference":       "HN-ORDER1-ITEM1",
				"delivery_status": "Delivered successfully",
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "item-1", res.ItemID)
	})

	t.Run("siblings still pending keeps the order open", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-ORDER1-ITEM1").Return(item, nil)
		m.repo.EXPECT().MarkItemDelivered(mock.Anything, "item-1", "", "").Return(nil)
		m.repo.EXPECT().CountUndelivered(mock.Anything, "order-1").Return(2, nil)

		_, err := svc.ApplyWebhook(context.Background(), map[string]any{
			"reference": "HN-ORDER1-ITEM1",
			"status":    true,
		})
		assert.NoError(t, err)
	})

	t.Run("all items skipped never completes through delivery", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-ORDER1-ITEM1").Return(item, nil)
		m.repo.EXPECT().MarkItemDelivered(mock.Anything, "item-1", "", "").Return(nil)
		m.repo.EXPECT().CountUndelivered(mock.Anything, "order-1").Return(0, nil)
		m.repo.EXPECT().CountDeliverable(mock.Anything, "order-1").Return(0, nil)

		_, err := svc.ApplyWebhook(context.Background(), map[string]any{
			"reference": "HN-ORDER1-ITEM1",
			"status":    true,
		})
		assert.NoError(t, err)
	})

	t.Run("failure webhook records the reason without touching attempts", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-ORDER1-ITEM1").Return(item, nil)
		m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
			mock.MatchedBy(func(p repo.FailItemParams) bool {
				return p.Reason == "Recipient unreachable" && !p.CountAttempt && !p.Exhaust
			})).Return(nil)

		res, err := svc.ApplyWebhook(context.Background(), map[string]any{
			"reference": "HN-ORDER1-ITEM1",
			"status":    false,
			"reason":    "Recipient unreachable",
		})
		assert.NoError(t, err)
		assert.Equal(t, "item-1", res.ItemID)
	})

	t.Run("failure without a reason gets a fallback", func(t *testing.T) {
		svc, m := newTestService(t, testConfig())
		m.repo.EXPECT().FindItemByReference(mock.Anything, "HN-ORDER1-ITEM1").Return(item, nil)
		m.repo.EXPECT().MarkItemFailed(mock.Anything, "item-1",
			mock.MatchedBy(func(p repo.FailItemParams) bool {
				return p.Reason == "Hubnet failed"
			})).Return(nil)

		_, err := svc.ApplyWebhook(context.Background(), map[string]any{
			"reference": "HN-ORDER1-ITEM1",
			"status":    false,
		})
		assert.NoError(t, err)
	})
}
