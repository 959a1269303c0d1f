package bank

import (
	"fmt"
	"sync"

	model "auction-settlement/internal/models"
	"auction-settlement/internal/tradeerrors"
)

// Bank defines the balance primitives the settlement core consumes. Debit is
// the only way funds leave a spendable balance; Credit is the only way they
// return. A Funds value handed out by Debit must eventually be credited
// somewhere, exactly once.
type Bank interface {
	BalanceOf(account model.AccountID) uint64
	Debit(account model.AccountID, amount uint64) (model.Funds, error)
	Credit(account model.AccountID, funds model.Funds)
}

// MemoryBank is a concurrency-safe in-memory implementation of Bank
type MemoryBank struct {
	mu       sync.RWMutex
	balances map[model.AccountID]uint64
}

// NewMemoryBank creates a new in-memory bank instance
func NewMemoryBank() *MemoryBank {
	return &MemoryBank{
		balances: make(map[model.AccountID]uint64),
	}
}

// Deposit seeds an account's spendable balance
func (b *MemoryBank) Deposit(account model.AccountID, amount uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[account] += amount
}

// BalanceOf returns the spendable balance for an account
func (b *MemoryBank) BalanceOf(account model.AccountID) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.balances[account]
}

// Debit extracts amount from the account's spendable balance
func (b *MemoryBank) Debit(account model.AccountID, amount uint64) (model.Funds, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	balance := b.balances[account]
	if amount > balance {
		return model.ZeroFunds(), fmt.Errorf("debit %d from account %s: %w", amount, account, tradeerrors.ErrInsufficientBalance)
	}
	b.balances[account] = balance - amount
	return model.NewFunds(amount), nil
}

// Credit merges funds back into the account's spendable balance
func (b *MemoryBank) Credit(account model.AccountID, funds model.Funds) {
	if funds.IsZero() {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[account] += funds.Amount()
}
