package diff_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokwatch/stokwatch/internal/diff"
	domain "github.com/stokwatch/stokwatch/pkg/types"
)

func item(inStock bool) *domain.WishlistItem {
	return &domain.WishlistItem{
		ID:          "item-1",
		WishlistID:  "list-1",
		ProductID:   "A1",
		ProductName: "Linen blend shirt",
		ProductURL:  "https://example.com/A1",
		InStock:     inStock,
	}
}

func snapshot(inStock bool) *domain.StockSnapshot {
	return &domain.StockSnapshot{
		ProductID:   "A1",
		ProductName: "Linen blend shirt",
		ProductURL:  "https://example.com/A1",
		Price:       "399.95 TL",
		Sizes:       []string{"S", "M"},
		Colors:      []string{"ecru"},
		InStock:     inStock,
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev *domain.WishlistItem
		snap *domain.StockSnapshot
		want diff.Transition
	}{
		{
			name: "unseen item is created, not alerted",
			prev: nil,
			snap: snapshot(true),
			want: diff.Created,
		},
		{
			name: "unseen out of stock item is also created",
			prev: nil,
			snap: snapshot(false),
			want: diff.Created,
		},
		{
			name: "out of stock to in stock",
			prev: item(false),
			snap: snapshot(true),
			want: diff.BecameInStock,
		},
		{
			name: "in stock to out of stock",
			prev: item(true),
			snap: snapshot(false),
			want: diff.BecameOutOfStock,
		},
		{
			name: "still in stock",
			prev: item(true),
			snap: snapshot(true),
			want: diff.Unchanged,
		},
		{
			name: "still out of stock",
			prev: item(false),
			snap: snapshot(false),
			want: diff.Unchanged,
		},
		{
			name: "missing snapshot is an extraction failure",
			prev: item(true),
			snap: nil,
			want: diff.ExtractionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, diff.Classify(tt.prev, tt.snap))
		})
	}
}

// An identical snapshot applied twice must classify BecameInStock exactly
// once; once merged, the second pass sees Unchanged.
func TestClassify_NoFlappingOnIdenticalInput(t *testing.T) {
	t.Parallel()

	prev := item(false)
	snap := snapshot(true)

	first := diff.Classify(prev, snap)
	require.Equal(t, diff.BecameInStock, first)

	merged := diff.Merge(prev, snap, prev.WishlistID, time.Now())
	second := diff.Classify(merged, snap)
	assert.Equal(t, diff.Unchanged, second)
}

// false -> true -> false yields exactly one BecameInStock and one
// BecameOutOfStock.
func TestClassify_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now()
	var inStockCount, outOfStockCount int

	state := item(false)
	for _, stock := range []bool{true, false} {
		snap := snapshot(stock)
		switch diff.Classify(state, snap) {
		case diff.BecameInStock:
			inStockCount++
		case diff.BecameOutOfStock:
			outOfStockCount++
		}
		state = diff.Merge(state, snap, state.WishlistID, now)
	}

	assert.Equal(t, 1, inStockCount)
	assert.Equal(t, 1, outOfStockCount)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("nil previous yields fresh item", func(t *testing.T) {
		t.Parallel()

		got := diff.Merge(nil, snapshot(true), "list-9", now)
		assert.Equal(t, "list-9", got.WishlistID)
		assert.Equal(t, "A1", got.ProductID)
		assert.Equal(t, "S, M", got.Size)
		assert.Equal(t, "ecru", got.Color)
		assert.True(t, got.InStock)
		assert.Equal(t, now, got.LastChecked)
		assert.Empty(t, got.ID)
	})

	t.Run("price and variants refreshed even when unchanged", func(t *testing.T) {
		t.Parallel()

		prev := item(true)
		prev.Price = "499.95 TL"
		snap := snapshot(true)
		snap.Price = "349.95 TL"
		snap.Sizes = []string{"L"}

		got := diff.Merge(prev, snap, prev.WishlistID, now)
		assert.Equal(t, diff.Unchanged, diff.Classify(prev, snap))
		assert.Equal(t, "349.95 TL", got.Price)
		assert.Equal(t, "L", got.Size)
		assert.Equal(t, prev.ID, got.ID, "identity survives the merge")
	})

	t.Run("does not mutate the previous item", func(t *testing.T) {
		t.Parallel()

		prev := item(false)
		_ = diff.Merge(prev, snapshot(true), prev.WishlistID, now)
		assert.False(t, prev.InStock)
	})
}
