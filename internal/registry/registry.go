package registry

import (
	"fmt"
	"sync"

	model "auction-settlement/internal/models"
	"auction-settlement/internal/tradeerrors"
)

// TitleRegistry is the ownership authority the settlement core consults. It
// answers who currently holds title to an item and moves title at settlement.
type TitleRegistry interface {
	IsOwner(item model.ItemID, account model.AccountID) bool
	Transfer(item model.ItemID, from, to model.AccountID) error
	VerifyIdentity(item model.ItemID, collection, name string) error
}

type itemIdentity struct {
	collection string
	name       string
}

// MemoryRegistry is a concurrency-safe in-memory implementation of TitleRegistry
type MemoryRegistry struct {
	mu         sync.RWMutex
	owners     map[model.ItemID]model.AccountID
	identities map[model.ItemID]itemIdentity
}

// NewMemoryRegistry creates a new in-memory title registry instance
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		owners:     make(map[model.ItemID]model.AccountID),
		identities: make(map[model.ItemID]itemIdentity),
	}
}

// Register records an item, its identity and its initial owner
func (r *MemoryRegistry) Register(item model.ItemID, collection, name string, owner model.AccountID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[item] = owner
	r.identities[item] = itemIdentity{collection: collection, name: name}
}

// IsOwner reports whether account currently holds title to item
func (r *MemoryRegistry) IsOwner(item model.ItemID, account model.AccountID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	owner, ok := r.owners[item]
	return ok && owner == account
}

// Transfer moves title from one account to another
func (r *MemoryRegistry) Transfer(item model.ItemID, from, to model.AccountID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner, ok := r.owners[item]
	if !ok {
		return fmt.Errorf("transfer item %s: %w", item, tradeerrors.ErrNotOnboarded)
	}
	if owner != from {
		return fmt.Errorf("transfer item %s from %s: %w", item, from, tradeerrors.ErrOwnershipMismatch)
	}
	r.owners[item] = to
	return nil
}

// VerifyIdentity checks that an item matches the expected collection and name
func (r *MemoryRegistry) VerifyIdentity(item model.ItemID, collection, name string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.identities[item]
	if !ok {
		return fmt.Errorf("verify identity of item %s: %w", item, tradeerrors.ErrNotOnboarded)
	}
	if identity.collection != collection || identity.name != name {
		return fmt.Errorf("verify identity of item %s: %w", item, tradeerrors.ErrIdentityMismatch)
	}
	return nil
}
