package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Inspect wishlists",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List wishlists",
		RunE:  runWishlistList,
	}
	listCmd.Flags().Bool("active", false, "only active wishlists")

	cmd.AddCommand(listCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "show [id]",
		Short: "Show wishlist details",
		Args:  cobra.ExactArgs(1),
		RunE:  runWishlistShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "items [id]",
		Short: "List tracked items of a wishlist",
		Args:  cobra.ExactArgs(1),
		RunE:  runWishlistItems,
	})
	checkCmd := &cobra.Command{
		Use:   "check [id]",
		Short: "Queue an immediate stock check",
		Args:  cobra.ExactArgs(1),
		RunE:  runWishlistCheck,
	}
	checkCmd.Flags().String("item", "", "check a single item instead of the whole wishlist")
	cmd.AddCommand(checkCmd)

	return cmd
}

func runWishlistList(cmd *cobra.Command, _ []string) error {
	activeOnly, err := cmd.Flags().GetBool("active")
	if err != nil {
		return err
	}

	lists, err := newClient().ListWishlists(cmd.Context(), activeOnly)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(lists)
	}
	return printWishlistTable(lists)
}

func runWishlistShow(cmd *cobra.Command, args []string) error {
	w, err := newClient().GetWishlist(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(w)
	}
	return printWishlistDetail(w)
}

func runWishlistItems(cmd *cobra.Command, args []string) error {
	items, err := newClient().ListItems(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(items)
	}
	return printItemsTable(items)
}

func runWishlistCheck(cmd *cobra.Command, args []string) error {
	itemID, err := cmd.Flags().GetString("item")
	if err != nil {
		return err
	}

	if itemID != "" {
		if err := newClient().TriggerItemCheck(cmd.Context(), args[0], itemID); err != nil {
			return err
		}
		fmt.Println("item checked")
		return nil
	}

	if err := newClient().TriggerCheck(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Println("check queued")
	return nil
}
