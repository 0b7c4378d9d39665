package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inspect notification history",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		RunE:  runNotificationsList,
	}
	listCmd.Flags().String("wishlist", "", "filter by wishlist ID")
	listCmd.Flags().Int("limit", 50, "maximum number of records")

	cmd.AddCommand(listCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete notifications older than the server retention window",
		RunE:  runNotificationsPurge,
	})

	return cmd
}

func runNotificationsList(cmd *cobra.Command, _ []string) error {
	wishlistID, err := cmd.Flags().GetString("wishlist")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	notifications, err := newClient().ListNotifications(cmd.Context(), wishlistID, limit)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(notifications)
	}
	return printNotificationsTable(notifications)
}

func runNotificationsPurge(cmd *cobra.Command, _ []string) error {
	purged, err := newClient().PurgeNotifications(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("purged %d notification records\n", purged)
	return nil
}
