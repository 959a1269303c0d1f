package handler

import (
	"fmt"
	"net/http"
	"time"

	model "auction-settlement/internal/models"
	"auction-settlement/services/trading/helpers"
	"auction-settlement/utils"

	"github.com/gin-gonic/gin"
)

type TradingServiceInterface interface {
	Onboard(item model.ItemID, collection, name string) error
	Start(owner model.AccountID, item model.ItemID, instantSale bool, expiresAt time.Time, minPrice uint64) (uint64, error)
	AcceptBid(bidder model.AccountID, item model.ItemID, listingIndex uint64, price uint64) error
	Complete(owner model.AccountID, item model.ItemID, listingIndex uint64) error
	Reclaim(bidder model.AccountID) (uint64, error)
	Listing(item model.ItemID) (model.ListingView, error)
	OpenEscrow(bidder model.AccountID) []model.EscrowEntryView
	Balance(account model.AccountID) uint64
}

// RoyaltyStore persists per-item royalty terms supplied at onboarding
type RoyaltyStore interface {
	SetRoyaltyTerms(item model.ItemID, terms model.RoyaltyTerms) error
}

type TradingHandler struct {
	service   TradingServiceInterface
	royalties RoyaltyStore
}

func NewTradingHandler(service TradingServiceInterface, royalties RoyaltyStore) *TradingHandler {
	return &TradingHandler{service: service, royalties: royalties}
}

// OnboardItemHandler handles POST /items
func (h *TradingHandler) OnboardItemHandler(c *gin.Context) {
	var req helpers.OnboardItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "OnboardItemHandler", err)
		return
	}

	item := model.ItemID(req.ItemID)
	if req.Royalty != nil {
		// Reject bad terms before anything is registered.
		if err := req.Royalty.Validate(); err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, err, message)
			utils.Warn("OnboardItemHandler: invalid royalty terms", map[string]any{
				"item_id": req.ItemID,
				"error":   err.Error(),
			})
			return
		}
	}
	if err := h.service.Onboard(item, req.Collection, req.Name); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("OnboardItemHandler: failed to onboard item", map[string]any{
			"item_id": req.ItemID,
			"error":   err.Error(),
		})
		return
	}

	if req.Royalty != nil {
		terms := model.RoyaltyTerms{
			Numerator:   req.Royalty.Numerator,
			Denominator: req.Royalty.Denominator,
			Recipient:   model.AccountID(req.Royalty.Recipient),
		}
		if err := h.royalties.SetRoyaltyTerms(item, terms); err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Error("OnboardItemHandler: failed to store royalty terms", map[string]any{
				"item_id": req.ItemID,
				"error":   err.Error(),
			})
			return
		}
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"item_id": req.ItemID}, "item onboarded successfully")
	helpers.LogSuccess("OnboardItemHandler", "item onboarded successfully", map[string]any{
		"item_id":    req.ItemID,
		"collection": req.Collection,
	})
}

// StartListingHandler handles POST /items/:item_id/listings
func (h *TradingHandler) StartListingHandler(c *gin.Context) {
	var req helpers.StartListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartListingHandler", err)
		return
	}

	itemID := c.Param("item_id")
	index, err := h.service.Start(model.AccountID(req.Owner), model.ItemID(itemID), req.InstantSale, time.Unix(req.ExpiresAt, 0).UTC(), req.MinPrice)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("StartListingHandler: failed to start listing", map[string]any{
			"item_id": itemID,
			"owner":   req.Owner,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.StartListingResponse{ItemID: itemID, ListingIndex: index}
	utils.JSONResponse(c, http.StatusCreated, resp, "listing started successfully")
	helpers.LogSuccess("StartListingHandler", "listing started successfully", map[string]any{
		"item_id":       itemID,
		"listing_index": index,
		"instant_sale":  req.InstantSale,
	})
}

// AcceptBidHandler handles POST /items/:item_id/bids
func (h *TradingHandler) AcceptBidHandler(c *gin.Context) {
	var req helpers.AcceptBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AcceptBidHandler", err)
		return
	}

	itemID := c.Param("item_id")
	err := h.service.AcceptBid(model.AccountID(req.Bidder), model.ItemID(itemID), req.ListingIndex, req.Price)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AcceptBidHandler: bid rejected", map[string]any{
			"item_id": itemID,
			"bidder":  req.Bidder,
			"price":   req.Price,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{
		"item_id":       itemID,
		"listing_index": req.ListingIndex,
		"price":         req.Price,
	}, "bid accepted successfully")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted successfully", map[string]any{
		"item_id": itemID,
		"bidder":  req.Bidder,
		"price":   req.Price,
	})
}

// CompleteListingHandler handles POST /items/:item_id/complete
func (h *TradingHandler) CompleteListingHandler(c *gin.Context) {
	var req helpers.CompleteListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CompleteListingHandler", err)
		return
	}

	itemID := c.Param("item_id")
	err := h.service.Complete(model.AccountID(req.Owner), model.ItemID(itemID), req.ListingIndex)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CompleteListingHandler: failed to complete listing", map[string]any{
			"item_id":       itemID,
			"listing_index": req.ListingIndex,
			"error":         err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{
		"item_id":       itemID,
		"listing_index": req.ListingIndex,
	}, "listing completed successfully")
	helpers.LogSuccess("CompleteListingHandler", "listing completed successfully", map[string]any{
		"item_id":       itemID,
		"listing_index": req.ListingIndex,
	})
}

// ReclaimHandler handles POST /accounts/:account_id/reclaim
func (h *TradingHandler) ReclaimHandler(c *gin.Context) {
	accountID := c.Param("account_id")
	reclaimed, err := h.service.Reclaim(model.AccountID(accountID))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ReclaimHandler: failed to reclaim", map[string]any{
			"account_id": accountID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.ReclaimResponse{AccountID: accountID, Reclaimed: reclaimed}
	utils.JSONResponse(c, http.StatusOK, resp, "expired bids reclaimed successfully")
	helpers.LogSuccess("ReclaimHandler", "expired bids reclaimed successfully", map[string]any{
		"account_id": accountID,
		"reclaimed":  reclaimed,
	})
}

// GetListingHandler handles GET /items/:item_id/listing
func (h *TradingHandler) GetListingHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	view, err := h.service.Listing(model.ItemID(itemID))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingHandler: error retrieving listing", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"item_id":       itemID,
		"listing_index": view.ListingIndex,
	})
}

// GetEscrowHandler handles GET /accounts/:account_id/escrow
func (h *TradingHandler) GetEscrowHandler(c *gin.Context) {
	accountID := c.Param("account_id")
	entries := h.service.OpenEscrow(model.AccountID(accountID))

	utils.JSONResponse(c, http.StatusOK, entries, "escrow entries retrieved successfully")
	helpers.LogSuccess("GetEscrowHandler", "escrow entries retrieved successfully", map[string]any{
		"account_id": accountID,
		"count":      len(entries),
	})
}

// GetBalanceHandler handles GET /accounts/:account_id/balance
func (h *TradingHandler) GetBalanceHandler(c *gin.Context) {
	accountID := c.Param("account_id")
	balance := h.service.Balance(model.AccountID(accountID))

	resp := helpers.BalanceResponse{AccountID: accountID, Balance: balance}
	utils.JSONResponse(c, http.StatusOK, resp, "balance retrieved successfully")
}
