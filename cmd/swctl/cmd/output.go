package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/stokwatch/stokwatch/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printWishlistTable(lists []domain.Wishlist) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tSTORE\tACTIVE\tLAST SWEPT\n")
	for i := range lists {
		swept := "-"
		if lists[i].LastSweptAt != nil {
			swept = lists[i].LastSweptAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%v\t%s\n",
			lists[i].ID,
			lists[i].Name,
			lists[i].StoreName,
			lists[i].Active,
			swept,
		)
	}
	return tw.finish()
}

func printWishlistDetail(w *domain.Wishlist) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", w.ID)
	tw.writef("Name:\t%s\n", w.Name)
	tw.writef("Store:\t%s\n", w.StoreName)
	tw.writef("URL:\t%s\n", w.URL)
	tw.writef("Active:\t%v\n", w.Active)
	tw.writef("Auto-purchase:\t%v\n", w.AutoPurchase)
	if w.LastSweptAt != nil {
		tw.writef("Last swept:\t%s\n", w.LastSweptAt.Format("2006-01-02 15:04:05"))
	}
	return tw.finish()
}

func printItemsTable(items []domain.WishlistItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPRODUCT\tNAME\tPRICE\tIN STOCK\tLAST CHECKED\n")
	for i := range items {
		price := items[i].Price
		if price == "" {
			price = "-"
		}
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			items[i].ID,
			items[i].ProductID,
			truncate(items[i].ProductName, 40),
			price,
			items[i].InStock,
			items[i].LastChecked.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printNotificationsTable(notifications []domain.Notification) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tWISHLIST\tPRODUCT\tTITLE\tSENT\tCREATED\n")
	for i := range notifications {
		n := &notifications[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			n.ID,
			n.WishlistID,
			n.ProductID,
			truncate(n.Title, 40),
			n.Sent,
			n.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
