package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Wishlist queries.
const (
	queryCreateWishlist = `
		INSERT INTO wishlists (
			name, store_name, url, is_active, auto_purchase, created_at, updated_at
		) VALUES (
			@name, @store_name, @url, @is_active, @auto_purchase, now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetWishlist = `
		SELECT id, name, store_name, url, is_active, auto_purchase,
			last_swept_at, created_at, updated_at
		FROM wishlists
		WHERE id = $1`

	queryListWishlistsAll = `
		SELECT id, name, store_name, url, is_active, auto_purchase,
			last_swept_at, created_at, updated_at
		FROM wishlists
		ORDER BY created_at DESC`

	queryListWishlistsActive = `
		SELECT id, name, store_name, url, is_active, auto_purchase,
			last_swept_at, created_at, updated_at
		FROM wishlists
		WHERE is_active = true
		ORDER BY created_at DESC`

	queryDeleteWishlist = `DELETE FROM wishlists WHERE id = $1`

	querySetWishlistActive = `
		UPDATE wishlists SET
			is_active = $2,
			updated_at = now()
		WHERE id = $1`

	queryUpdateWishlistLastSwept = `
		UPDATE wishlists SET last_swept_at = $2 WHERE id = $1`
)

// Item queries.
const (
	queryUpsertItem = `
		INSERT INTO wishlist_items (
			wishlist_id, product_id, product_name, product_url, product_image,
			price, size, color, in_stock, last_checked, created_at, updated_at
		) VALUES (
			@wishlist_id, @product_id, @product_name, @product_url, @product_image,
			@price, @size, @color, @in_stock, @last_checked, now(), now()
		)
		ON CONFLICT (wishlist_id, product_id) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			product_url = EXCLUDED.product_url,
			product_image = EXCLUDED.product_image,
			price = EXCLUDED.price,
			size = EXCLUDED.size,
			color = EXCLUDED.color,
			in_stock = EXCLUDED.in_stock,
			last_checked = EXCLUDED.last_checked,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetItem = `
		SELECT id, wishlist_id, product_id, product_name, product_url,
			COALESCE(product_image, ''), COALESCE(price, ''), COALESCE(size, ''),
			COALESCE(color, ''), in_stock, last_checked, created_at, updated_at
		FROM wishlist_items
		WHERE wishlist_id = $1 AND product_id = $2`

	queryGetItemByID = `
		SELECT id, wishlist_id, product_id, product_name, product_url,
			COALESCE(product_image, ''), COALESCE(price, ''), COALESCE(size, ''),
			COALESCE(color, ''), in_stock, last_checked, created_at, updated_at
		FROM wishlist_items
		WHERE id = $1`

	queryListItems = `
		SELECT id, wishlist_id, product_id, product_name, product_url,
			COALESCE(product_image, ''), COALESCE(price, ''), COALESCE(size, ''),
			COALESCE(color, ''), in_stock, last_checked, created_at, updated_at
		FROM wishlist_items
		WHERE wishlist_id = $1
		ORDER BY product_name`
)

// Notification queries.
const (
	// The partial unique index notifications_unsent_key enforces the
	// at-most-one-unsent invariant; a conflicting insert is silently
	// suppressed and detected via the missing RETURNING row.
	queryCreateNotificationIfAbsent = `
		INSERT INTO notifications (
			wishlist_id, product_id, title, body, kind, is_sent, created_at
		) VALUES (
			@wishlist_id, @product_id, @title, @body, @kind, false, now()
		)
		ON CONFLICT (wishlist_id, product_id) WHERE is_sent = false DO NOTHING
		RETURNING id, created_at`

	queryMarkNotificationSent = `
		UPDATE notifications SET
			is_sent = true,
			sent_at = $2
		WHERE id = $1`

	queryListNotifications = `
		SELECT id, wishlist_id, product_id, title, body, kind,
			is_sent, sent_at, created_at
		FROM notifications
		WHERE wishlist_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	queryListNotificationsAll = `
		SELECT id, wishlist_id, product_id, title, body, kind,
			is_sent, sent_at, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1`

	queryListUnsentNotifications = `
		SELECT id, wishlist_id, product_id, title, body, kind,
			is_sent, sent_at, created_at
		FROM notifications
		WHERE is_sent = false
		ORDER BY created_at ASC`

	queryDeleteNotificationsBefore = `
		DELETE FROM notifications WHERE created_at < $1`
)
