package helpers

import (
	"fmt"

	"auction-settlement/internal/tradeerrors"
)

// Request/Response DTOs
type OnboardItemRequest struct {
	ItemID     string           `json:"item_id" binding:"required"`
	Collection string           `json:"collection" binding:"required"`
	Name       string           `json:"name" binding:"required"`
	Royalty    *RoyaltyTermsDTO `json:"royalty,omitempty"`
}

type RoyaltyTermsDTO struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
	Recipient   string `json:"recipient"`
}

// Validate rejects a royalty fraction at or above one; such terms could never
// produce settlement proceeds. A zero numerator means no royalty and is fine.
func (r RoyaltyTermsDTO) Validate() error {
	if r.Numerator > 0 && r.Numerator >= r.Denominator {
		return fmt.Errorf("royalty %d/%d: %w", r.Numerator, r.Denominator, tradeerrors.ErrRoyaltyOutOfRange)
	}
	return nil
}

type StartListingRequest struct {
	Owner       string `json:"owner" binding:"required"`
	InstantSale bool   `json:"instant_sale"`
	ExpiresAt   int64  `json:"expires_at" binding:"required"` // unix seconds
	MinPrice    uint64 `json:"min_price" binding:"required,gt=0"`
}

type StartListingResponse struct {
	ItemID       string `json:"item_id"`
	ListingIndex uint64 `json:"listing_index"`
}

type AcceptBidRequest struct {
	Bidder       string `json:"bidder" binding:"required"`
	ListingIndex uint64 `json:"listing_index"`
	Price        uint64 `json:"price" binding:"required,gt=0"`
}

type CompleteListingRequest struct {
	Owner        string `json:"owner" binding:"required"`
	ListingIndex uint64 `json:"listing_index"`
}

type ReclaimResponse struct {
	AccountID string `json:"account_id"`
	Reclaimed uint64 `json:"reclaimed"`
}

type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   uint64 `json:"balance"`
}
