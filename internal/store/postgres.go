package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// Pool sizing comes from the connection string (pool_max_conns).
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateWishlist inserts a new wishlist.
func (s *PostgresStore) CreateWishlist(ctx context.Context, w *domain.Wishlist) error {
	args := pgx.NamedArgs{
		"name":          w.Name,
		"store_name":    w.StoreName,
		"url":           w.URL,
		"is_active":     w.Active,
		"auto_purchase": w.AutoPurchase,
	}

	err := s.pool.QueryRow(ctx, queryCreateWishlist, args).Scan(
		&w.ID, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating wishlist: %w", err)
	}
	return nil
}

// GetWishlist retrieves a wishlist by its ID.
func (s *PostgresStore) GetWishlist(ctx context.Context, id string) (*domain.Wishlist, error) {
	w := &domain.Wishlist{}
	err := s.pool.QueryRow(ctx, queryGetWishlist, id).Scan(
		&w.ID, &w.Name, &w.StoreName, &w.URL, &w.Active, &w.AutoPurchase,
		&w.LastSweptAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting wishlist: %w", err)
	}
	return w, nil
}

// ListWishlists returns all wishlists, optionally only active ones.
func (s *PostgresStore) ListWishlists(
	ctx context.Context,
	activeOnly bool,
) ([]domain.Wishlist, error) {
	query := queryListWishlistsAll
	if activeOnly {
		query = queryListWishlistsActive
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying wishlists: %w", err)
	}
	defer rows.Close()

	var lists []domain.Wishlist
	for rows.Next() {
		var w domain.Wishlist
		if err := rows.Scan(
			&w.ID, &w.Name, &w.StoreName, &w.URL, &w.Active, &w.AutoPurchase,
			&w.LastSweptAt, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning wishlist: %w", err)
		}
		lists = append(lists, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating wishlists: %w", err)
	}

	return lists, nil
}

// DeleteWishlist removes a wishlist; items and notifications cascade.
func (s *PostgresStore) DeleteWishlist(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteWishlist, id); err != nil {
		return fmt.Errorf("deleting wishlist: %w", err)
	}
	return nil
}

// SetWishlistActive sets the active flag of a wishlist.
func (s *PostgresStore) SetWishlistActive(ctx context.Context, id string, active bool) error {
	if _, err := s.pool.Exec(ctx, querySetWishlistActive, id, active); err != nil {
		return fmt.Errorf("setting wishlist active: %w", err)
	}
	return nil
}

// UpdateWishlistLastSwept records the time of the last completed sweep.
func (s *PostgresStore) UpdateWishlistLastSwept(
	ctx context.Context,
	id string,
	t time.Time,
) error {
	if _, err := s.pool.Exec(ctx, queryUpdateWishlistLastSwept, id, t); err != nil {
		return fmt.Errorf("updating wishlist last swept: %w", err)
	}
	return nil
}

// GetItem retrieves an item by its (wishlist_id, product_id) key.
func (s *PostgresStore) GetItem(
	ctx context.Context,
	wishlistID, productID string,
) (*domain.WishlistItem, error) {
	item := &domain.WishlistItem{}
	err := scanItem(s.pool.QueryRow(ctx, queryGetItem, wishlistID, productID), item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemByID retrieves an item by its internal UUID.
func (s *PostgresStore) GetItemByID(ctx context.Context, id string) (*domain.WishlistItem, error) {
	item := &domain.WishlistItem{}
	err := scanItem(s.pool.QueryRow(ctx, queryGetItemByID, id), item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns all items belonging to a wishlist.
func (s *PostgresStore) ListItems(
	ctx context.Context,
	wishlistID string,
) ([]domain.WishlistItem, error) {
	rows, err := s.pool.Query(ctx, queryListItems, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []domain.WishlistItem
	for rows.Next() {
		var item domain.WishlistItem
		if err := scanItemRow(rows, &item); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// UpsertItem inserts or updates an item by its (wishlist_id, product_id) key.
func (s *PostgresStore) UpsertItem(ctx context.Context, item *domain.WishlistItem) error {
	args := pgx.NamedArgs{
		"wishlist_id":   item.WishlistID,
		"product_id":    item.ProductID,
		"product_name":  item.ProductName,
		"product_url":   item.ProductURL,
		"product_image": item.ProductImage,
		"price":         item.Price,
		"size":          item.Size,
		"color":         item.Color,
		"in_stock":      item.InStock,
		"last_checked":  item.LastChecked,
	}

	err := s.pool.QueryRow(ctx, queryUpsertItem, args).Scan(
		&item.ID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting item: %w", err)
	}
	return nil
}

// CreateNotificationIfAbsent inserts an unsent notification unless one
// already exists for the same (wishlist_id, product_id) pair. Returns
// false when the insert was suppressed by the partial unique index.
func (s *PostgresStore) CreateNotificationIfAbsent(
	ctx context.Context,
	n *domain.Notification,
) (bool, error) {
	args := pgx.NamedArgs{
		"wishlist_id": n.WishlistID,
		"product_id":  n.ProductID,
		"title":       n.Title,
		"body":        n.Body,
		"kind":        string(n.Kind),
	}

	err := s.pool.QueryRow(ctx, queryCreateNotificationIfAbsent, args).Scan(
		&n.ID, &n.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict with an existing unsent record: already pending.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating notification: %w", err)
	}
	return true, nil
}

// MarkNotificationSent flips a notification record to sent.
func (s *PostgresStore) MarkNotificationSent(
	ctx context.Context,
	id string,
	sentAt time.Time,
) error {
	if _, err := s.pool.Exec(ctx, queryMarkNotificationSent, id, sentAt); err != nil {
		return fmt.Errorf("marking notification sent: %w", err)
	}
	return nil
}

// ListNotifications returns notifications, newest first. An empty
// wishlistID returns records across all wishlists.
func (s *PostgresStore) ListNotifications(
	ctx context.Context,
	wishlistID string,
	limit int,
) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows pgx.Rows
	var err error
	if wishlistID == "" {
		rows, err = s.pool.Query(ctx, queryListNotificationsAll, limit)
	} else {
		rows, err = s.pool.Query(ctx, queryListNotifications, wishlistID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// ListUnsentNotifications returns all unsent records, oldest first.
// These are the durable markers an external re-dispatch can scan for.
func (s *PostgresStore) ListUnsentNotifications(
	ctx context.Context,
) ([]domain.Notification, error) {
	rows, err := s.pool.Query(ctx, queryListUnsentNotifications)
	if err != nil {
		return nil, fmt.Errorf("querying unsent notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// DeleteNotificationsBefore removes all records created before the cutoff,
// regardless of send status. Returns the number of rows deleted.
func (s *PostgresStore) DeleteNotificationsBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteNotificationsBefore, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *domain.WishlistItem) error {
	err := scanItemRow(row, item)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("getting item: %w", err)
	}
	return nil
}

func scanItemRow(row rowScanner, item *domain.WishlistItem) error {
	return row.Scan(
		&item.ID, &item.WishlistID, &item.ProductID, &item.ProductName,
		&item.ProductURL, &item.ProductImage, &item.Price, &item.Size,
		&item.Color, &item.InStock, &item.LastChecked,
		&item.CreatedAt, &item.UpdatedAt,
	)
}

func collectNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var kind string
		if err := rows.Scan(
			&n.ID, &n.WishlistID, &n.ProductID, &n.Title, &n.Body, &kind,
			&n.Sent, &n.SentAt, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		n.Kind = domain.NotificationKind(kind)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return notifications, nil
}
