package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stokwatch/stokwatch/internal/notify"
	notifyMocks "github.com/stokwatch/stokwatch/internal/notify/mocks"
	"github.com/stokwatch/stokwatch/internal/store"
	storeMocks "github.com/stokwatch/stokwatch/internal/store/mocks"
	"github.com/stokwatch/stokwatch/pkg/logger"
	domain "github.com/stokwatch/stokwatch/pkg/types"
)

func TestNotifyStockAlert_CreatesSendsAndMarks(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		CreateNotificationIfAbsent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n *domain.Notification) { n.ID = "n1" }).
		Return(true, nil).
		Once()
	mn.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(m notify.Message) bool {
			return m.Title == "Stok Geldi! - Summer picks" &&
				m.Data["type"] == "stock_alert" &&
				m.Data["wishlist_id"] == "list-1" &&
				m.Data["product_id"] == "A1" &&
				m.Data["product_name"] == "Product A1"
		})).
		Return(nil).
		Once()
	ms.EXPECT().MarkNotificationSent(mock.Anything, "n1", mock.Anything).Return(nil).Once()

	d := NewDispatcher(ms, mn, logger.Discard())
	err := d.NotifyStockAlert(context.Background(), testWishlist(), storedItem("A1", true))
	require.NoError(t, err)
}

func TestNotifyStockAlert_AlreadyPendingIsBenign(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		CreateNotificationIfAbsent(mock.Anything, mock.Anything).
		Return(false, nil).
		Once()
	// Suppressed: Send must not be called.

	d := NewDispatcher(ms, mn, logger.Discard())
	err := d.NotifyStockAlert(context.Background(), testWishlist(), storedItem("A1", true))
	require.NoError(t, err)
}

func TestNotifyStockAlert_DeliveryFailureKeepsRecordUnsent(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		CreateNotificationIfAbsent(mock.Anything, mock.Anything).
		Return(true, nil).
		Once()
	mn.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("fcm down")).Once()
	// MarkNotificationSent must not be called.

	d := NewDispatcher(ms, mn, logger.Discard())
	err := d.NotifyStockAlert(context.Background(), testWishlist(), storedItem("A1", true))
	assert.Error(t, err)
}

func TestNotifyStockAlert_PersistenceError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		CreateNotificationIfAbsent(mock.Anything, mock.Anything).
		Return(false, errors.New("connection refused")).
		Once()

	d := NewDispatcher(ms, mn, logger.Discard())
	err := d.NotifyStockAlert(context.Background(), testWishlist(), storedItem("A1", true))
	assert.Error(t, err)
}

func TestProcessUnsent(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	pending := []domain.Notification{
		{ID: "n1", WishlistID: "list-1", ProductID: "A1", Title: "t1", Body: "b1", Kind: domain.KindStockAlert},
		{ID: "n2", WishlistID: "list-1", ProductID: "B2", Title: "t2", Body: "b2", Kind: domain.KindStockAlert},
	}

	ms.EXPECT().ListUnsentNotifications(mock.Anything).Return(pending, nil).Once()
	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(testWishlist(), nil).Times(2)
	ms.EXPECT().GetItem(mock.Anything, "list-1", "A1").Return(storedItem("A1", true), nil).Once()
	ms.EXPECT().GetItem(mock.Anything, "list-1", "B2").Return(storedItem("B2", true), nil).Once()

	// First delivery fails and stays unsent; second succeeds.
	mn.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(m notify.Message) bool {
			return m.Data["product_id"] == "A1"
		})).
		Return(errors.New("fcm down")).
		Once()
	mn.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(m notify.Message) bool {
			return m.Data["product_id"] == "B2"
		})).
		Return(nil).
		Once()
	ms.EXPECT().MarkNotificationSent(mock.Anything, "n2", mock.Anything).Return(nil).Once()

	d := NewDispatcher(ms, mn, logger.Discard())
	require.NoError(t, d.ProcessUnsent(context.Background()))
}

func TestProcessUnsent_RebuildsSamePayloadShape(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	pending := []domain.Notification{
		{ID: "n1", WishlistID: "list-1", ProductID: "A1", Title: "t1", Body: "b1", Kind: domain.KindStockAlert},
	}

	ms.EXPECT().ListUnsentNotifications(mock.Anything).Return(pending, nil).Once()
	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(testWishlist(), nil).Once()
	ms.EXPECT().GetItem(mock.Anything, "list-1", "A1").Return(storedItem("A1", true), nil).Once()

	var sent notify.Message
	mn.EXPECT().
		Send(mock.Anything, mock.Anything).
		Run(func(_ context.Context, m notify.Message) { sent = m }).
		Return(nil).
		Once()
	ms.EXPECT().MarkNotificationSent(mock.Anything, "n1", mock.Anything).Return(nil).Once()

	d := NewDispatcher(ms, mn, logger.Discard())
	require.NoError(t, d.ProcessUnsent(context.Background()))

	// Identical shape to the first-send path: identifiers plus display fields.
	want := notify.StockAlert(testWishlist(), storedItem("A1", true))
	assert.Equal(t, want.Data, sent.Data)
	assert.Equal(t, "list-1", sent.Data["wishlist_id"])
	assert.Equal(t, "A1", sent.Data["product_id"])
}

func TestProcessUnsent_SkipsRemovedItems(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	pending := []domain.Notification{
		{ID: "n1", WishlistID: "list-1", ProductID: "gone", Kind: domain.KindStockAlert},
	}

	ms.EXPECT().ListUnsentNotifications(mock.Anything).Return(pending, nil).Once()
	ms.EXPECT().GetWishlist(mock.Anything, "list-1").Return(testWishlist(), nil).Once()
	ms.EXPECT().GetItem(mock.Anything, "list-1", "gone").Return(nil, store.ErrNotFound).Once()
	// Send must not be called for a record whose item no longer exists.

	d := NewDispatcher(ms, mn, logger.Discard())
	require.NoError(t, d.ProcessUnsent(context.Background()))
}

func TestProcessUnsent_NothingPending(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().ListUnsentNotifications(mock.Anything).Return(nil, nil).Once()

	d := NewDispatcher(ms, mn, logger.Discard())
	require.NoError(t, d.ProcessUnsent(context.Background()))
}

func TestPurgeOldNotifications(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().
		DeleteNotificationsBefore(mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
			// 30 days back, give or take.
			return time.Since(cutoff) > 29*24*time.Hour
		})).
		Return(int64(3), nil).
		Once()

	d := NewDispatcher(ms, mn, logger.Discard())
	count, err := d.PurgeOldNotifications(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
