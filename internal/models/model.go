package models

import "time"

// AccountID identifies a participant account (lister, bidder or royalty recipient)
type AccountID string

// ItemID identifies a tradable item
type ItemID string

// BidID uniquely identifies one escrow reservation. Equality is structural:
// two BidIDs name the same reservation iff all four fields match. ListingIndex
// disambiguates sequential listings of the same item.
type BidID struct {
	Bidder       AccountID `json:"bidder"`
	Item         ItemID    `json:"item"`
	ListingIndex uint64    `json:"listing_index"`
	Price        uint64    `json:"price"`
}

// Funds is an amount of settlement currency extracted from some balance.
// A Funds value is exclusively owned by its holder until merged back into a
// balance or split for a payout; the zero value holds nothing.
type Funds struct {
	amount uint64
}

// NewFunds wraps a raw amount into a Funds value
func NewFunds(amount uint64) Funds {
	return Funds{amount: amount}
}

// ZeroFunds returns an empty Funds value
func ZeroFunds() Funds {
	return Funds{}
}

// Amount returns the amount held
func (f Funds) Amount() uint64 {
	return f.amount
}

// IsZero reports whether the value holds nothing
func (f Funds) IsZero() bool {
	return f.amount == 0
}

// Merge combines two Funds values into one
func (f Funds) Merge(other Funds) Funds {
	return Funds{amount: f.amount + other.amount}
}

// Split extracts amount from f and returns (extracted, remainder).
// The third return value reports whether f held enough to cover the split.
func (f Funds) Split(amount uint64) (Funds, Funds, bool) {
	if amount > f.amount {
		return Funds{}, f, false
	}
	return Funds{amount: amount}, Funds{amount: f.amount - amount}, true
}

// RoyaltyTerms is the fraction of settlement proceeds owed to a recipient.
// Zero numerator or denominator means no royalty is due.
type RoyaltyTerms struct {
	Numerator   uint64    `json:"numerator"`
	Denominator uint64    `json:"denominator"`
	Recipient   AccountID `json:"recipient"`
}

// EscrowEntry is one live reservation: funds held against a BidID until the
// bid is settled or its expiry passes and the bidder reclaims it.
type EscrowEntry struct {
	Amount    Funds
	ExpiresAt time.Time
}

// EscrowEntryView is a read-only snapshot of an open reservation
type EscrowEntryView struct {
	BidID     BidID     `json:"bid_id"`
	Amount    uint64    `json:"amount"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ListingView is a read-only snapshot of an item's active listing
type ListingView struct {
	Item         ItemID    `json:"item"`
	ListingIndex uint64    `json:"listing_index"`
	InstantSale  bool      `json:"instant_sale"`
	MinPrice     uint64    `json:"min_price"`
	ExpiresAt    time.Time `json:"expires_at"`
	BidPrices    []uint64  `json:"bid_prices"`
	HighestBid   uint64    `json:"highest_bid"`
}

// Journal entry kinds
const (
	JournalKindSettlement   = "settlement"
	JournalKindReclaim      = "reclaim"
	JournalKindMissedWindow = "missed_window"
)

// JournalEntry is one persisted record of fund movement out of escrow
type JournalEntry struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Kind          string    `gorm:"index" json:"kind"`
	Item          string    `gorm:"index" json:"item"`
	ListingIndex  uint64    `json:"listing_index"`
	Bidder        string    `gorm:"index" json:"bidder"`
	Seller        string    `json:"seller"`
	GrossAmount   uint64    `json:"gross_amount"`
	RoyaltyAmount uint64    `json:"royalty_amount"`
	NetAmount     uint64    `json:"net_amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// RoyaltyTermsRecord is the persisted per-item royalty configuration
type RoyaltyTermsRecord struct {
	Item        string `gorm:"primaryKey" json:"item"`
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
	Recipient   string `json:"recipient"`
}
