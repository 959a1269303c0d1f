package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	model "auction-settlement/internal/models"
	"auction-settlement/internal/tradeerrors"
	"auction-settlement/services/trading/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*MockTradingServiceInterface, *MockRoyaltyStore, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockTradingServiceInterface(ctrl)
	mockRoyalties := NewMockRoyaltyStore(ctrl)
	h := NewTradingHandler(mockService, mockRoyalties)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/items", h.OnboardItemHandler)
	router.POST("/items/:item_id/listings", h.StartListingHandler)
	router.POST("/items/:item_id/bids", h.AcceptBidHandler)
	router.POST("/items/:item_id/complete", h.CompleteListingHandler)
	router.POST("/accounts/:account_id/reclaim", h.ReclaimHandler)
	router.GET("/items/:item_id/listing", h.GetListingHandler)
	router.GET("/accounts/:account_id/escrow", h.GetEscrowHandler)
	router.GET("/accounts/:account_id/balance", h.GetBalanceHandler)

	return mockService, mockRoyalties, router
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Test OnboardItemHandler
func TestOnboardItemHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(service *MockTradingServiceInterface, royalties *MockRoyaltyStore)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_without_royalty",
			requestBody: helpers.OnboardItemRequest{
				ItemID:     "item1",
				Collection: "genesis",
				Name:       "Sunrise #1",
			},
			mockSetup: func(service *MockTradingServiceInterface, royalties *MockRoyaltyStore) {
				service.EXPECT().Onboard(model.ItemID("item1"), "genesis", "Sunrise #1").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "item onboarded successfully",
		},
		{
			name: "success_with_royalty",
			requestBody: helpers.OnboardItemRequest{
				ItemID:     "item1",
				Collection: "genesis",
				Name:       "Sunrise #1",
				Royalty:    &helpers.RoyaltyTermsDTO{Numerator: 1, Denominator: 10, Recipient: "artist"},
			},
			mockSetup: func(service *MockTradingServiceInterface, royalties *MockRoyaltyStore) {
				service.EXPECT().Onboard(model.ItemID("item1"), "genesis", "Sunrise #1").Return(nil)
				royalties.EXPECT().
					SetRoyaltyTerms(model.ItemID("item1"), model.RoyaltyTerms{Numerator: 1, Denominator: 10, Recipient: "artist"}).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "item onboarded successfully",
		},
		{
			name: "royalty_fraction_at_or_above_one",
			requestBody: helpers.OnboardItemRequest{
				ItemID:     "item1",
				Collection: "genesis",
				Name:       "Sunrise #1",
				Royalty:    &helpers.RoyaltyTermsDTO{Numerator: 2, Denominator: 1, Recipient: "artist"},
			},
			mockSetup:      func(service *MockTradingServiceInterface, royalties *MockRoyaltyStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "operation precondition not met",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(service *MockTradingServiceInterface, royalties *MockRoyaltyStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_item_id",
			requestBody: helpers.OnboardItemRequest{
				Collection: "genesis",
				Name:       "Sunrise #1",
			},
			mockSetup:      func(service *MockTradingServiceInterface, royalties *MockRoyaltyStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "already_onboarded",
			requestBody: helpers.OnboardItemRequest{
				ItemID:     "item1",
				Collection: "genesis",
				Name:       "Sunrise #1",
			},
			mockSetup: func(service *MockTradingServiceInterface, royalties *MockRoyaltyStore) {
				service.EXPECT().
					Onboard(model.ItemID("item1"), "genesis", "Sunrise #1").
					Return(tradeerrors.ErrAlreadyOnboarded)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "operation conflicts with current state",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService, mockRoyalties, router := setupHandlerTest(t)
			tc.mockSetup(mockService, mockRoyalties)

			resp, w := performJSON(t, router, http.MethodPost, "/items", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
		})
	}
}

// Test AcceptBidHandler
func TestAcceptBidHandler(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(service *MockTradingServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: helpers.AcceptBidRequest{Bidder: "buyer1", ListingIndex: 0, Price: 100},
			mockSetup: func(service *MockTradingServiceInterface) {
				service.EXPECT().
					AcceptBid(model.AccountID("buyer1"), model.ItemID("item1"), uint64(0), uint64(100)).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "bid_too_low",
			requestBody: helpers.AcceptBidRequest{Bidder: "buyer1", ListingIndex: 0, Price: 5},
			mockSetup: func(service *MockTradingServiceInterface) {
				service.EXPECT().
					AcceptBid(model.AccountID("buyer1"), model.ItemID("item1"), uint64(0), uint64(5)).
					Return(tradeerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "instant_sale_taken",
			requestBody: helpers.AcceptBidRequest{Bidder: "buyer1", ListingIndex: 0, Price: 200},
			mockSetup: func(service *MockTradingServiceInterface) {
				service.EXPECT().
					AcceptBid(model.AccountID("buyer1"), model.ItemID("item1"), uint64(0), uint64(200)).
					Return(tradeerrors.ErrAlreadySold)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "unknown_item",
			requestBody: helpers.AcceptBidRequest{Bidder: "buyer1", ListingIndex: 0, Price: 100},
			mockSetup: func(service *MockTradingServiceInterface) {
				service.EXPECT().
					AcceptBid(model.AccountID("buyer1"), model.ItemID("item1"), uint64(0), uint64(100)).
					Return(tradeerrors.ErrNotOnboarded)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing_price",
			requestBody:    helpers.AcceptBidRequest{Bidder: "buyer1", ListingIndex: 0},
			mockSetup:      func(service *MockTradingServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, router := setupHandlerTest(t)
			tc.mockSetup(mockService)

			_, w := performJSON(t, router, http.MethodPost, "/items/item1/bids", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test StartListingHandler
func TestStartListingHandler(t *testing.T) {
	expiresAt := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	mockService, _, router := setupHandlerTest(t)
	mockService.EXPECT().
		Start(model.AccountID("seller"), model.ItemID("item1"), false, expiresAt, uint64(10)).
		Return(uint64(3), nil)

	resp, w := performJSON(t, router, http.MethodPost, "/items/item1/listings", helpers.StartListingRequest{
		Owner:     "seller",
		ExpiresAt: expiresAt.Unix(),
		MinPrice:  10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, "item1", data["item_id"])
	require.Equal(t, float64(3), data["listing_index"])
}

// Test CompleteListingHandler
func TestCompleteListingHandler(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", serviceErr: nil, expectedStatus: http.StatusOK},
		{name: "not_ended", serviceErr: tradeerrors.ErrListingNotEnded, expectedStatus: http.StatusBadRequest},
		{name: "invariant_broken", serviceErr: tradeerrors.ErrEmptyProceeds, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService, _, router := setupHandlerTest(t)
			mockService.EXPECT().
				Complete(model.AccountID("seller"), model.ItemID("item1"), uint64(2)).
				Return(tc.serviceErr)

			_, w := performJSON(t, router, http.MethodPost, "/items/item1/complete", helpers.CompleteListingRequest{
				Owner:        "seller",
				ListingIndex: 2,
			})
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test ReclaimHandler
func TestReclaimHandler(t *testing.T) {
	mockService, _, router := setupHandlerTest(t)
	mockService.EXPECT().Reclaim(model.AccountID("buyer1")).Return(uint64(150), nil)

	resp, w := performJSON(t, router, http.MethodPost, "/accounts/buyer1/reclaim", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, float64(150), data["reclaimed"])
}

// Test GetListingHandler
func TestGetListingHandler(t *testing.T) {
	mockService, _, router := setupHandlerTest(t)
	mockService.EXPECT().Listing(model.ItemID("item1")).Return(model.ListingView{
		Item:         "item1",
		ListingIndex: 0,
		MinPrice:     10,
		BidPrices:    []uint64{15, 20},
		HighestBid:   20,
	}, nil)

	resp, w := performJSON(t, router, http.MethodGet, "/items/item1/listing", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, float64(20), data["highest_bid"])

	// Missing listing maps to a conflict.
	mockService.EXPECT().Listing(model.ItemID("item1")).Return(model.ListingView{}, tradeerrors.ErrNotActive)
	_, w = performJSON(t, router, http.MethodGet, "/items/item1/listing", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

// Test GetEscrowHandler
func TestGetEscrowHandler(t *testing.T) {
	mockService, _, router := setupHandlerTest(t)
	mockService.EXPECT().OpenEscrow(model.AccountID("buyer1")).Return([]model.EscrowEntryView{
		{BidID: model.BidID{Bidder: "buyer1", Item: "item1", ListingIndex: 0, Price: 50}, Amount: 50},
	})

	resp, w := performJSON(t, router, http.MethodGet, "/accounts/buyer1/escrow", nil)
	require.Equal(t, http.StatusOK, w.Code)

	entries := resp["data"].([]any)
	require.Len(t, entries, 1)
}

// Test GetBalanceHandler
func TestGetBalanceHandler(t *testing.T) {
	mockService, _, router := setupHandlerTest(t)
	mockService.EXPECT().Balance(model.AccountID("buyer1")).Return(uint64(777))

	resp, w := performJSON(t, router, http.MethodGet, "/accounts/buyer1/balance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]any)
	require.Equal(t, float64(777), data["balance"])
}
