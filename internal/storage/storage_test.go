package storage

import (
	"errors"
	"testing"
	"time"

	model "auction-settlement/internal/models"
	"auction-settlement/internal/tradeerrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RoyaltyTerms(t *testing.T) {
	store := newTestStore(t)

	// Absent terms are not an error.
	terms, err := store.TermsFor("item1")
	require.NoError(t, err)
	require.Nil(t, terms)

	want := model.RoyaltyTerms{Numerator: 1, Denominator: 20, Recipient: "artist"}
	require.NoError(t, store.SetRoyaltyTerms("item1", want))

	terms, err = store.TermsFor("item1")
	require.NoError(t, err)
	require.NotNil(t, terms)
	require.Equal(t, want, *terms)

	// Save replaces existing terms.
	want.Numerator = 1
	want.Denominator = 10
	require.NoError(t, store.SetRoyaltyTerms("item1", want))
	terms, err = store.TermsFor("item1")
	require.NoError(t, err)
	require.Equal(t, uint64(10), terms.Denominator)

	// A fraction at or above one is rejected at intake and leaves the stored
	// terms untouched.
	err = store.SetRoyaltyTerms("item1", model.RoyaltyTerms{Numerator: 3, Denominator: 2, Recipient: "artist"})
	require.True(t, errors.Is(err, tradeerrors.ErrRoyaltyOutOfRange))
	terms, err = store.TermsFor("item1")
	require.NoError(t, err)
	require.Equal(t, uint64(1), terms.Numerator)
	require.Equal(t, uint64(10), terms.Denominator)
}

func TestStore_Journal(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []model.JournalEntry{
		{ID: uuid.NewString(), Kind: model.JournalKindSettlement, Item: "item1", Bidder: "buyer1", Seller: "seller", GrossAmount: 100, RoyaltyAmount: 10, NetAmount: 90, CreatedAt: now},
		{ID: uuid.NewString(), Kind: model.JournalKindReclaim, Bidder: "buyer2", GrossAmount: 50, NetAmount: 50, CreatedAt: now.Add(time.Minute)},
		{ID: uuid.NewString(), Kind: model.JournalKindMissedWindow, Item: "item1", Bidder: "buyer2", Seller: "seller", GrossAmount: 70, CreatedAt: now.Add(2 * time.Minute)},
	}
	for _, entry := range entries {
		require.NoError(t, store.Append(entry))
	}

	byItem, err := store.EntriesForItem("item1")
	require.NoError(t, err)
	require.Len(t, byItem, 2)
	require.Equal(t, model.JournalKindSettlement, byItem[0].Kind)
	require.Equal(t, model.JournalKindMissedWindow, byItem[1].Kind)

	byBidder, err := store.EntriesForBidder("buyer2")
	require.NoError(t, err)
	require.Len(t, byBidder, 2)
	require.Equal(t, uint64(50), byBidder[0].NetAmount)
}
