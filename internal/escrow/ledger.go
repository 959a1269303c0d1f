package escrow

import (
	"fmt"
	"sync"
	"time"

	"auction-settlement/internal/bank"
	"auction-settlement/internal/clock"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/tradeerrors"

	"github.com/shopspring/decimal"
)

// Ledger holds bidder funds reserved against open bids. One account record is
// created lazily per bidder on its first bid. The ledger knows nothing about
// auction rules; it only enforces one live entry per BidID and that funds
// entering an entry leave it exactly once, by settlement or by reclamation.
type Ledger struct {
	bank     bank.Bank
	clock    clock.Clock
	maxPrice uint64

	mu       sync.RWMutex
	accounts map[model.AccountID]*account
}

// account is one bidder's escrow record. orderedIDs preserves insertion order
// for deterministic expiry sweeps; its key set always equals entries' key set.
type account struct {
	mu         sync.Mutex
	orderedIDs []model.BidID
	entries    map[model.BidID]model.EscrowEntry
}

// NewLedger creates a new escrow ledger. maxPrice bounds accepted bid prices;
// zero means no upper bound.
func NewLedger(b bank.Bank, clk clock.Clock, maxPrice uint64) *Ledger {
	return &Ledger{
		bank:     b,
		clock:    clk,
		maxPrice: maxPrice,
		accounts: make(map[model.AccountID]*account),
	}
}

// Place reserves price from the bidder's spendable balance against a new
// BidID. This is the only path by which funds leave a spendable balance into
// escrow. Fails with ErrDuplicateBid if a live entry already exists for the
// exact same (bidder, item, listingIndex, price).
func (l *Ledger) Place(bidder model.AccountID, item model.ItemID, listingIndex uint64, price uint64, expiry time.Time) (model.BidID, error) {
	if price == 0 || (l.maxPrice > 0 && price > l.maxPrice) {
		return model.BidID{}, fmt.Errorf("place bid of %d: %w", price, tradeerrors.ErrPriceOutOfRange)
	}
	if !expiry.After(l.clock.Now()) {
		return model.BidID{}, fmt.Errorf("place bid expiring at %s: %w", expiry, tradeerrors.ErrExpiryOutOfRange)
	}

	id := model.BidID{Bidder: bidder, Item: item, ListingIndex: listingIndex, Price: price}

	acct := l.accountFor(bidder)
	acct.mu.Lock()
	defer acct.mu.Unlock()

	if _, exists := acct.entries[id]; exists {
		return model.BidID{}, fmt.Errorf("place bid %+v: %w", id, tradeerrors.ErrDuplicateBid)
	}

	funds, err := l.bank.Debit(bidder, price)
	if err != nil {
		return model.BidID{}, fmt.Errorf("place bid %+v: %w", id, err)
	}

	acct.entries[id] = model.EscrowEntry{Amount: funds, ExpiresAt: expiry}
	acct.orderedIDs = append(acct.orderedIDs, id)
	return id, nil
}

// Settle destroys the entry for id and returns its funds net of royalty. If
// royalty terms are present the royalty share is paid to the recipient inside
// this call; the remainder is returned for the caller to dispose. A royalty
// that would consume the full price fails with ErrEmptyProceeds before any
// payout or removal, leaving the entry intact. Settlement is a single
// destructive pass and is not reversible.
func (l *Ledger) Settle(id model.BidID, royalty *model.RoyaltyTerms) (model.Funds, error) {
	acct := l.accountFor(id.Bidder)
	acct.mu.Lock()
	defer acct.mu.Unlock()

	entry, ok := acct.entries[id]
	if !ok {
		return model.ZeroFunds(), fmt.Errorf("settle bid %+v: %w", id, tradeerrors.ErrBidNotFound)
	}

	funds := entry.Amount
	if funds.Amount() != id.Price {
		return model.ZeroFunds(), fmt.Errorf("settle bid %+v: escrowed %d: %w", id, funds.Amount(), tradeerrors.ErrAmountMismatch)
	}
	if funds.IsZero() {
		return model.ZeroFunds(), fmt.Errorf("settle bid %+v: %w", id, tradeerrors.ErrEmptyAmount)
	}

	royaltyAmount := RoyaltyAmount(funds.Amount(), royalty)
	if royaltyAmount >= funds.Amount() {
		return model.ZeroFunds(), fmt.Errorf("settle bid %+v: royalty %d consumes the full price: %w", id, royaltyAmount, tradeerrors.ErrEmptyProceeds)
	}
	if royaltyAmount > 0 {
		share, remainder, _ := funds.Split(royaltyAmount)
		l.bank.Credit(royalty.Recipient, share)
		funds = remainder
	}

	// Removal is the final step; an aborted settlement leaves the entry intact.
	delete(acct.entries, id)
	acct.orderedIDs = removeID(acct.orderedIDs, id)
	return funds, nil
}

// ReclaimExpired sweeps every entry of bidder whose expiry is at or before
// now, deposits the accumulated funds back to the bidder's spendable balance
// as one transfer, and returns the reclaimed total. Entries not yet expired
// are left untouched; the call is idempotent and never errors on an empty or
// all-unexpired record.
func (l *Ledger) ReclaimExpired(bidder model.AccountID) uint64 {
	l.mu.RLock()
	acct, ok := l.accounts[bidder]
	l.mu.RUnlock()
	if !ok {
		return 0
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()

	now := l.clock.Now()
	reclaimed := model.ZeroFunds()
	kept := acct.orderedIDs[:0]
	for _, id := range acct.orderedIDs {
		entry := acct.entries[id]
		if entry.ExpiresAt.After(now) {
			kept = append(kept, id)
			continue
		}
		reclaimed = reclaimed.Merge(entry.Amount)
		delete(acct.entries, id)
	}
	acct.orderedIDs = kept

	if reclaimed.IsZero() {
		return 0
	}
	total := reclaimed.Amount()
	l.bank.Credit(bidder, reclaimed)
	return total
}

// OpenEntries returns snapshots of the bidder's live reservations in
// insertion order.
func (l *Ledger) OpenEntries(bidder model.AccountID) []model.EscrowEntryView {
	l.mu.RLock()
	acct, ok := l.accounts[bidder]
	l.mu.RUnlock()
	if !ok {
		return []model.EscrowEntryView{}
	}

	acct.mu.Lock()
	defer acct.mu.Unlock()

	views := make([]model.EscrowEntryView, 0, len(acct.orderedIDs))
	for _, id := range acct.orderedIDs {
		entry := acct.entries[id]
		views = append(views, model.EscrowEntryView{
			BidID:     id,
			Amount:    entry.Amount.Amount(),
			ExpiresAt: entry.ExpiresAt,
		})
	}
	return views
}

// RoyaltyAmount computes floor(amount * numerator / denominator). Nil terms or
// a zero numerator or denominator mean no royalty; a fraction above one is
// capped at the full amount. Decimal math keeps the product exact for prices
// near the uint64 ceiling.
func RoyaltyAmount(amount uint64, terms *model.RoyaltyTerms) uint64 {
	if terms == nil || terms.Numerator == 0 || terms.Denominator == 0 {
		return 0
	}
	amountDec := decimal.NewFromUint64(amount)
	product := amountDec.Mul(decimal.NewFromUint64(terms.Numerator))
	quotient, _ := product.QuoRem(decimal.NewFromUint64(terms.Denominator), 0)
	// Cap before converting; BigInt().Uint64() wraps past the uint64 ceiling.
	if quotient.GreaterThanOrEqual(amountDec) {
		return amount
	}
	return quotient.BigInt().Uint64()
}

// accountFor returns the bidder's record, creating it lazily on first use
func (l *Ledger) accountFor(bidder model.AccountID) *account {
	l.mu.RLock()
	acct, ok := l.accounts[bidder]
	l.mu.RUnlock()
	if ok {
		return acct
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if acct, ok = l.accounts[bidder]; ok {
		return acct
	}
	acct = &account{entries: make(map[model.BidID]model.EscrowEntry)}
	l.accounts[bidder] = acct
	return acct
}

func removeID(ids []model.BidID, id model.BidID) []model.BidID {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
