package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/stokwatch/stokwatch/internal/notify/mocks"
	"github.com/stokwatch/stokwatch/internal/scrape"
	scrapeMocks "github.com/stokwatch/stokwatch/internal/scrape/mocks"
	"github.com/stokwatch/stokwatch/internal/store"
	storeMocks "github.com/stokwatch/stokwatch/internal/store/mocks"
	"github.com/stokwatch/stokwatch/pkg/logger"
	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// stubScrapers resolves every store name to the same scraper.
type stubScrapers struct {
	scraper scrape.Scraper
	err     error
}

func (s stubScrapers) For(string) (scrape.Scraper, error) {
	return s.scraper, s.err
}

func testWishlist() *domain.Wishlist {
	return &domain.Wishlist{
		ID:        "list-1",
		Name:      "Summer picks",
		StoreName: "zara",
		URL:       "https://www.zara.com/share/wishlist-abc",
		Active:    true,
	}
}

func storedItem(productID string, inStock bool) *domain.WishlistItem {
	return &domain.WishlistItem{
		ID:          "item-" + productID,
		WishlistID:  "list-1",
		ProductID:   productID,
		ProductName: "Product " + productID,
		ProductURL:  "https://www.zara.com/product/" + productID,
		InStock:     inStock,
	}
}

func snapshot(productID string, inStock bool) domain.StockSnapshot {
	return domain.StockSnapshot{
		ProductID:   productID,
		ProductName: "Product " + productID,
		ProductURL:  "https://www.zara.com/product/" + productID,
		Price:       "399,95 TL",
		InStock:     inStock,
	}
}

func newTestEngine(
	ms *storeMocks.MockStore,
	sc scrape.Scraper,
	mn *notifyMocks.MockNotifier,
	opts ...EngineOption,
) *Engine {
	d := NewDispatcher(ms, mn, logger.Discard())
	opts = append([]EngineOption{WithLogger(logger.Discard())}, opts...)
	return NewEngine(ms, stubScrapers{scraper: sc}, d, opts...)
}

func TestCheckList_BecameInStockSendsAlert(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	sc.EXPECT().
		ScrapeWishlist(mock.Anything, wl.URL).
		Return([]domain.StockSnapshot{snapshot("A1", true)}, nil).
		Once()

	ms.EXPECT().GetItem(mock.Anything, "list-1", "A1").Return(storedItem("A1", false), nil).Once()
	ms.EXPECT().UpsertItem(mock.Anything, mock.Anything).Return(nil).Once()

	ms.EXPECT().
		CreateNotificationIfAbsent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *domain.Notification) {
			n.ID = "n1"
			assert.Equal(t, "list-1", n.WishlistID)
			assert.Equal(t, "A1", n.ProductID)
			assert.Equal(t, domain.KindStockAlert, n.Kind)
		}).
		Return(true, nil).
		Once()
	mn.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().MarkNotificationSent(mock.Anything, "n1", mock.Anything).Return(nil).Once()

	ms.EXPECT().UpdateWishlistLastSwept(mock.Anything, "list-1", mock.Anything).Return(nil).Once()

	eng := newTestEngine(ms, sc, mn)
	processed, err := eng.CheckList(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestCheckList_CreatedItemDoesNotAlert(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	sc.EXPECT().
		ScrapeWishlist(mock.Anything, wl.URL).
		Return([]domain.StockSnapshot{snapshot("A1", true)}, nil).
		Once()

	// Never seen before: created and persisted, but no notification even
	// though the first observation is in stock.
	ms.EXPECT().GetItem(mock.Anything, "list-1", "A1").Return(nil, store.ErrNotFound).Once()
	ms.EXPECT().UpsertItem(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().UpdateWishlistLastSwept(mock.Anything, "list-1", mock.Anything).Return(nil).Once()

	eng := newTestEngine(ms, sc, mn)
	processed, err := eng.CheckList(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestCheckList_UnchangedIsIdempotent(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Twice()
	sc.EXPECT().
		ScrapeWishlist(mock.Anything, wl.URL).
		Return([]domain.StockSnapshot{snapshot("A1", true)}, nil).
		Twice()
	ms.EXPECT().GetItem(mock.Anything, "list-1", "A1").Return(storedItem("A1", true), nil).Twice()
	ms.EXPECT().UpsertItem(mock.Anything, mock.Anything).Return(nil).Twice()
	ms.EXPECT().UpdateWishlistLastSwept(mock.Anything, "list-1", mock.Anything).Return(nil).Twice()

	eng := newTestEngine(ms, sc, mn)
	for range 2 {
		processed, err := eng.CheckList(context.Background(), "list-1")
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	}
	// No notifier expectations set: any Send call would fail the test.
}

func TestCheckList_ScrapeFailureAbortsOnlyThisList(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	sc.EXPECT().
		ScrapeWishlist(mock.Anything, wl.URL).
		Return(nil, errors.New("page did not load")).
		Once()

	eng := newTestEngine(ms, sc, mn)
	processed, err := eng.CheckList(context.Background(), "list-1")
	require.Error(t, err)
	assert.Zero(t, processed)
	// Items stay untouched: no GetItem/UpsertItem expectations.
}

func TestCheckList_UnsupportedStore(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	wl := testWishlist()
	wl.StoreName = "mango"

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()

	d := NewDispatcher(ms, mn, logger.Discard())
	eng := NewEngine(
		ms,
		stubScrapers{err: scrape.ErrUnsupportedStore},
		d,
		WithLogger(logger.Discard()),
	)

	_, err := eng.CheckList(context.Background(), "list-1")
	assert.ErrorIs(t, err, scrape.ErrUnsupportedStore)
}

func TestCheckList_PerItemFailureSkipped(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	sc.EXPECT().
		ScrapeWishlist(mock.Anything, wl.URL).
		Return([]domain.StockSnapshot{snapshot("A1", false), snapshot("B2", false)}, nil).
		Once()

	// First item's upsert fails; the second still goes through.
	ms.EXPECT().GetItem(mock.Anything, "list-1", "A1").Return(storedItem("A1", false), nil).Once()
	ms.EXPECT().GetItem(mock.Anything, "list-1", "B2").Return(storedItem("B2", false), nil).Once()
	ms.EXPECT().
		UpsertItem(mock.Anything, mock.MatchedBy(func(i *domain.WishlistItem) bool {
			return i.ProductID == "A1"
		})).
		Return(errors.New("connection reset")).
		Once()
	ms.EXPECT().
		UpsertItem(mock.Anything, mock.MatchedBy(func(i *domain.WishlistItem) bool {
			return i.ProductID == "B2"
		})).
		Return(nil).
		Once()
	ms.EXPECT().UpdateWishlistLastSwept(mock.Anything, "list-1", mock.Anything).Return(nil).Once()

	eng := newTestEngine(ms, sc, mn)
	processed, err := eng.CheckList(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestCheckList_SoftDeadlineCommitsPartialProgress(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	sc.EXPECT().
		ScrapeWishlist(mock.Anything, wl.URL).
		Return([]domain.StockSnapshot{snapshot("A1", false), snapshot("B2", false)}, nil).
		Once()
	// Deadline already passed: no items are picked up, but the sweep
	// timestamp is still recorded.
	ms.EXPECT().UpdateWishlistLastSwept(mock.Anything, "list-1", mock.Anything).Return(nil).Once()

	eng := newTestEngine(ms, sc, mn, WithSoftTimeout(-time.Second))
	processed, err := eng.CheckList(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Zero(t, processed)
}

func TestCheckList_DeliveryFailureDoesNotAbortCheck(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	sc.EXPECT().
		ScrapeWishlist(mock.Anything, wl.URL).
		Return([]domain.StockSnapshot{snapshot("A1", true)}, nil).
		Once()
	ms.EXPECT().GetItem(mock.Anything, "list-1", "A1").Return(storedItem("A1", false), nil).Once()
	ms.EXPECT().UpsertItem(mock.Anything, mock.Anything).Return(nil).Once()

	ms.EXPECT().
		CreateNotificationIfAbsent(mock.Anything, mock.Anything).
		Return(true, nil).
		Once()
	mn.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("fcm unreachable")).Once()
	// Record stays unsent: MarkNotificationSent must not be called.

	ms.EXPECT().UpdateWishlistLastSwept(mock.Anything, "list-1", mock.Anything).Return(nil).Once()

	eng := newTestEngine(ms, sc, mn)
	processed, err := eng.CheckList(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestCheckItem(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()
	prev := storedItem("A1", false)

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	ms.EXPECT().GetItemByID(mock.Anything, "item-A1").Return(prev, nil).Once()
	sc.EXPECT().
		ScrapeItem(mock.Anything, prev.ProductURL).
		Return(&domain.StockSnapshot{InStock: true, Sizes: []string{"S", "M"}}, nil).
		Once()

	ms.EXPECT().
		UpsertItem(mock.Anything, mock.MatchedBy(func(i *domain.WishlistItem) bool {
			return i.ProductID == "A1" && i.InStock && i.Size == "S, M"
		})).
		Return(nil).
		Once()

	ms.EXPECT().
		CreateNotificationIfAbsent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *domain.Notification) { n.ID = "n1" }).
		Return(true, nil).
		Once()
	mn.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().MarkNotificationSent(mock.Anything, "n1", mock.Anything).Return(nil).Once()

	eng := newTestEngine(ms, sc, mn)
	require.NoError(t, eng.CheckItem(context.Background(), "list-1", "item-A1"))
}

func TestCheckItem_ExtractionFailurePreservesState(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	sc := scrapeMocks.NewMockScraper(t)

	wl := testWishlist()
	prev := storedItem("A1", true)

	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(wl, nil).Once()
	ms.EXPECT().GetItemByID(mock.Anything, "item-A1").Return(prev, nil).Once()
	sc.EXPECT().
		ScrapeItem(mock.Anything, prev.ProductURL).
		Return(nil, errors.New("timeout")).
		Once()
	// No UpsertItem: the last known state is left untouched.

	eng := newTestEngine(ms, sc, mn)
	err := eng.CheckItem(context.Background(), "list-1", "item-A1")
	assert.Error(t, err)
}
