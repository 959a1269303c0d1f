package trading

import (
	"fmt"
	"sync"
	"time"

	"auction-settlement/internal/bank"
	"auction-settlement/internal/clock"
	"auction-settlement/internal/escrow"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/registry"
	"auction-settlement/internal/tradeerrors"
	"auction-settlement/utils"
)

// EscrowLedger is the reservation/release contract the trading service
// delegates fund custody to. Placement and settlement are reachable only
// through this service, never directly by external callers.
type EscrowLedger interface {
	Place(bidder model.AccountID, item model.ItemID, listingIndex uint64, price uint64, expiry time.Time) (model.BidID, error)
	Settle(id model.BidID, royalty *model.RoyaltyTerms) (model.Funds, error)
	ReclaimExpired(bidder model.AccountID) uint64
	OpenEntries(bidder model.AccountID) []model.EscrowEntryView
}

// RoyaltyPolicy resolves the royalty terms for an item. A nil result with a
// nil error means no royalty is configured.
type RoyaltyPolicy interface {
	TermsFor(item model.ItemID) (*model.RoyaltyTerms, error)
}

// Journal receives one record per fund movement out of escrow
type Journal interface {
	Append(entry model.JournalEntry) error
}

// NopJournal discards every record
type NopJournal struct{}

func (NopJournal) Append(model.JournalEntry) error { return nil }

// Options carries the deployment's listing and settlement policy
type Options struct {
	// SettlementWindow bounds how long after a listing's nominal close its
	// winning bid may still be executed by Complete.
	SettlementWindow time.Duration
	// MinListingLead and MaxListingLead bound a new listing's expiry relative
	// to now; too-soon and too-far listings are rejected.
	MinListingLead time.Duration
	MaxListingLead time.Duration
	// MaxPrice bounds accepted prices; zero means no upper bound.
	MaxPrice uint64
}

// DefaultOptions returns the standard deployment policy
func DefaultOptions() Options {
	return Options{
		SettlementWindow: 24 * time.Hour,
		MinListingLead:   time.Minute,
		MaxListingLead:   30 * 24 * time.Hour,
	}
}

// listing is one open sale period for an item. bidPrices is strictly
// increasing in insertion order; bidIndex keys are exactly its values.
type listing struct {
	minPrice    uint64
	instantSale bool
	expiresAt   time.Time
	bidPrices   []uint64
	bidIndex    map[uint64]model.BidID
}

// itemRegistry tracks one item's listing history. nextIndex guarantees BidID
// uniqueness across the item's lifetime; hasActive is the single-listing gate.
type itemRegistry struct {
	mu          sync.Mutex
	nextIndex   uint64
	hasActive   bool
	activeIndex uint64
	listings    map[uint64]*listing
}

// Service is the per-item auction/trading state machine. Each item moves
// idle -> open -> closed; closing re-enables a fresh listing. All fund custody
// is delegated to the escrow ledger.
type Service struct {
	ledger    EscrowLedger
	bank      bank.Bank
	titles    registry.TitleRegistry
	royalties RoyaltyPolicy
	journal   Journal
	clock     clock.Clock
	opts      Options

	mu    sync.RWMutex
	items map[model.ItemID]*itemRegistry
}

// NewService creates a new trading service instance
func NewService(ledger EscrowLedger, b bank.Bank, titles registry.TitleRegistry, royalties RoyaltyPolicy, journal Journal, clk clock.Clock, opts Options) *Service {
	if journal == nil {
		journal = NopJournal{}
	}
	return &Service{
		ledger:    ledger,
		bank:      b,
		titles:    titles,
		royalties: royalties,
		journal:   journal,
		clock:     clk,
		opts:      opts,
		items:     make(map[model.ItemID]*itemRegistry),
	}
}

// Onboard registers an item with the trading service after verifying its
// identity against the expected collection and name. An item must be
// onboarded exactly once before it can be listed.
func (s *Service) Onboard(item model.ItemID, collection, name string) error {
	if err := s.titles.VerifyIdentity(item, collection, name); err != nil {
		return fmt.Errorf("onboard item %s: %w", item, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[item]; exists {
		return fmt.Errorf("onboard item %s: %w", item, tradeerrors.ErrAlreadyOnboarded)
	}
	s.items[item] = &itemRegistry{listings: make(map[uint64]*listing)}
	return nil
}

// Start opens a new listing on an item and returns its listing index
func (s *Service) Start(owner model.AccountID, item model.ItemID, instantSale bool, expiresAt time.Time, minPrice uint64) (uint64, error) {
	reg, err := s.registryFor(item)
	if err != nil {
		return 0, fmt.Errorf("start listing for item %s: %w", item, err)
	}
	if !s.titles.IsOwner(item, owner) {
		return 0, fmt.Errorf("start listing for item %s by %s: %w", item, owner, tradeerrors.ErrNotOwner)
	}
	if minPrice == 0 || (s.opts.MaxPrice > 0 && minPrice > s.opts.MaxPrice) {
		return 0, fmt.Errorf("start listing for item %s with min price %d: %w", item, minPrice, tradeerrors.ErrPriceOutOfRange)
	}

	now := s.clock.Now()
	if expiresAt.Before(now.Add(s.opts.MinListingLead)) || expiresAt.After(now.Add(s.opts.MaxListingLead)) {
		return 0, fmt.Errorf("start listing for item %s expiring at %s: %w", item, expiresAt, tradeerrors.ErrExpiryOutOfRange)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.hasActive {
		return 0, fmt.Errorf("start listing for item %s: %w", item, tradeerrors.ErrAlreadyActive)
	}

	index := reg.nextIndex
	reg.nextIndex++
	reg.listings[index] = &listing{
		minPrice:    minPrice,
		instantSale: instantSale,
		expiresAt:   expiresAt,
		bidIndex:    make(map[uint64]model.BidID),
	}
	reg.hasActive = true
	reg.activeIndex = index

	utils.Info("listing started", map[string]any{
		"item":          string(item),
		"listing_index": index,
		"instant_sale":  instantSale,
		"min_price":     minPrice,
	})
	return index, nil
}

// AcceptBid reserves the bidder's funds via the escrow ledger and records the
// bid in price order. For a standard listing the price must strictly exceed
// the current highest (or the minimum price when no bids exist). An instant
// sale accepts a single qualifying bid; a second bid is reserved first, then
// rejected with ErrAlreadySold and left reclaimable at its own expiry.
func (s *Service) AcceptBid(bidder model.AccountID, item model.ItemID, listingIndex uint64, price uint64) error {
	reg, err := s.registryFor(item)
	if err != nil {
		return fmt.Errorf("accept bid on item %s: %w", item, err)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if !reg.hasActive || reg.activeIndex != listingIndex {
		return fmt.Errorf("accept bid on item %s listing %d: %w", item, listingIndex, tradeerrors.ErrNotActive)
	}
	lst := reg.listings[listingIndex]

	now := s.clock.Now()
	if !now.Before(lst.expiresAt) {
		return fmt.Errorf("accept bid on item %s listing %d: %w", item, listingIndex, tradeerrors.ErrListingExpired)
	}
	if s.titles.IsOwner(item, bidder) {
		return fmt.Errorf("accept bid on item %s by %s: %w", item, bidder, tradeerrors.ErrOwnBid)
	}
	// Pre-check gives a precise error before the ledger would reject the debit.
	if s.bank.BalanceOf(bidder) < price {
		return fmt.Errorf("accept bid of %d on item %s by %s: %w", price, item, bidder, tradeerrors.ErrInsufficientBalance)
	}

	escrowExpiry := lst.expiresAt.Add(s.opts.SettlementWindow)

	if lst.instantSale {
		if price < lst.minPrice {
			return fmt.Errorf("accept bid of %d on item %s: %w", price, item, tradeerrors.ErrBidTooLow)
		}
		// Reserve first. A disqualified second bid keeps its escrow entry and
		// stays reclaimable once the entry expires.
		id, err := s.ledger.Place(bidder, item, listingIndex, price, escrowExpiry)
		if err != nil {
			return fmt.Errorf("accept bid on item %s: %w", item, err)
		}
		if len(lst.bidPrices) > 0 {
			return fmt.Errorf("accept bid on item %s listing %d: %w", item, listingIndex, tradeerrors.ErrAlreadySold)
		}
		lst.bidPrices = append(lst.bidPrices, price)
		lst.bidIndex[price] = id
		s.logBidAccepted(id)
		return nil
	}

	floor := lst.minPrice
	if n := len(lst.bidPrices); n > 0 {
		floor = lst.bidPrices[n-1]
	}
	if price <= floor {
		return fmt.Errorf("accept bid of %d on item %s (current floor %d): %w", price, item, floor, tradeerrors.ErrBidTooLow)
	}

	id, err := s.ledger.Place(bidder, item, listingIndex, price, escrowExpiry)
	if err != nil {
		return fmt.Errorf("accept bid on item %s: %w", item, err)
	}
	lst.bidPrices = append(lst.bidPrices, price)
	lst.bidIndex[price] = id
	s.logBidAccepted(id)
	return nil
}

// Complete closes a listing at or after its expiry. With a recorded bid and
// inside the settlement window it settles the winning bid, pays royalty and
// proceeds, and transfers title. Past the window it discards the listing
// without settling, deliberately leaving the winning bid's escrow entry to be
// reclaimed by its bidder. With no bids it only clears state. In every
// outcome the listing is discarded and a new one may be started.
func (s *Service) Complete(owner model.AccountID, item model.ItemID, listingIndex uint64) error {
	reg, err := s.registryFor(item)
	if err != nil {
		return fmt.Errorf("complete listing for item %s: %w", item, err)
	}
	if !s.titles.IsOwner(item, owner) {
		return fmt.Errorf("complete listing for item %s by %s: %w", item, owner, tradeerrors.ErrNotOwner)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if !reg.hasActive || reg.activeIndex != listingIndex {
		return fmt.Errorf("complete listing %d for item %s: %w", listingIndex, item, tradeerrors.ErrNotActive)
	}
	lst := reg.listings[listingIndex]

	now := s.clock.Now()
	if now.Before(lst.expiresAt) {
		return fmt.Errorf("complete listing %d for item %s: %w", listingIndex, item, tradeerrors.ErrListingNotEnded)
	}

	switch {
	case len(lst.bidPrices) == 0:
		// Nothing to settle, nothing to transfer.

	case !now.After(lst.expiresAt.Add(s.opts.SettlementWindow)):
		highest := lst.bidPrices[len(lst.bidPrices)-1]
		winning := lst.bidIndex[highest]

		terms, err := s.royalties.TermsFor(item)
		if err != nil {
			return fmt.Errorf("complete listing %d for item %s: royalty lookup: %w", listingIndex, item, err)
		}
		proceeds, err := s.ledger.Settle(winning, terms)
		if err != nil {
			return fmt.Errorf("complete listing %d for item %s: %w", listingIndex, item, err)
		}
		if proceeds.IsZero() {
			return fmt.Errorf("complete listing %d for item %s: %w", listingIndex, item, tradeerrors.ErrEmptyProceeds)
		}
		// Owner was verified above and the item lock serializes completions,
		// so the registry cannot have changed underneath this transfer.
		if err := s.titles.Transfer(item, owner, winning.Bidder); err != nil {
			return fmt.Errorf("complete listing %d for item %s: %w", listingIndex, item, err)
		}
		net := proceeds.Amount()
		s.bank.Credit(owner, proceeds)

		s.appendJournal(model.JournalEntry{
			Kind:          model.JournalKindSettlement,
			Item:          string(item),
			ListingIndex:  listingIndex,
			Bidder:        string(winning.Bidder),
			Seller:        string(owner),
			GrossAmount:   highest,
			RoyaltyAmount: highest - net,
			NetAmount:     net,
		})
		utils.Info("listing settled", map[string]any{
			"item":          string(item),
			"listing_index": listingIndex,
			"winner":        string(winning.Bidder),
			"gross":         highest,
			"net":           net,
		})

	default:
		// Settlement window elapsed: discard without settling. The winning
		// bid's escrow entry stays in the ledger until its bidder reclaims it.
		highest := lst.bidPrices[len(lst.bidPrices)-1]
		winning := lst.bidIndex[highest]
		s.appendJournal(model.JournalEntry{
			Kind:         model.JournalKindMissedWindow,
			Item:         string(item),
			ListingIndex: listingIndex,
			Bidder:       string(winning.Bidder),
			Seller:       string(owner),
			GrossAmount:  highest,
		})
		utils.Warn("settlement window missed", map[string]any{
			"item":          string(item),
			"listing_index": listingIndex,
			"highest_bid":   highest,
		})
	}

	delete(reg.listings, listingIndex)
	reg.hasActive = false
	return nil
}

// Reclaim sweeps the bidder's expired escrow entries back into their
// spendable balance and returns the reclaimed amount. Safe to call at any
// time; a second call with no new expiries is a no-op.
func (s *Service) Reclaim(bidder model.AccountID) (uint64, error) {
	reclaimed := s.ledger.ReclaimExpired(bidder)
	if reclaimed > 0 {
		s.appendJournal(model.JournalEntry{
			Kind:        model.JournalKindReclaim,
			Bidder:      string(bidder),
			GrossAmount: reclaimed,
			NetAmount:   reclaimed,
		})
	}
	return reclaimed, nil
}

// Listing returns a snapshot of the item's active listing
func (s *Service) Listing(item model.ItemID) (model.ListingView, error) {
	reg, err := s.registryFor(item)
	if err != nil {
		return model.ListingView{}, fmt.Errorf("listing for item %s: %w", item, err)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if !reg.hasActive {
		return model.ListingView{}, fmt.Errorf("listing for item %s: %w", item, tradeerrors.ErrNotActive)
	}
	lst := reg.listings[reg.activeIndex]

	view := model.ListingView{
		Item:         item,
		ListingIndex: reg.activeIndex,
		InstantSale:  lst.instantSale,
		MinPrice:     lst.minPrice,
		ExpiresAt:    lst.expiresAt,
		BidPrices:    append([]uint64(nil), lst.bidPrices...),
	}
	if n := len(lst.bidPrices); n > 0 {
		view.HighestBid = lst.bidPrices[n-1]
	}
	return view, nil
}

// OpenEscrow returns the bidder's live reservations
func (s *Service) OpenEscrow(bidder model.AccountID) []model.EscrowEntryView {
	return s.ledger.OpenEntries(bidder)
}

// Balance returns an account's spendable balance
func (s *Service) Balance(account model.AccountID) uint64 {
	return s.bank.BalanceOf(account)
}

func (s *Service) registryFor(item model.ItemID) (*itemRegistry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reg, ok := s.items[item]
	if !ok {
		return nil, tradeerrors.ErrNotOnboarded
	}
	return reg, nil
}

func (s *Service) appendJournal(entry model.JournalEntry) {
	entry.ID = utils.GenerateID()
	entry.CreatedAt = s.clock.Now()
	if err := s.journal.Append(entry); err != nil {
		utils.Error("journal append failed", map[string]any{
			"kind":  entry.Kind,
			"item":  entry.Item,
			"error": err.Error(),
		})
	}
}

func (s *Service) logBidAccepted(id model.BidID) {
	utils.Info("bid accepted", map[string]any{
		"item":          string(id.Item),
		"listing_index": id.ListingIndex,
		"bidder":        string(id.Bidder),
		"price":         id.Price,
	})
}

// compile-time check that the concrete ledger satisfies the service contract
var _ EscrowLedger = (*escrow.Ledger)(nil)
