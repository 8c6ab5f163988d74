package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newInventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Access the Inventory API",
	}
	cmd.AddCommand(newInventoryListCmd())
	return cmd
}

func newInventoryListCmd() *cobra.Command {
	var (
		userID      uint64
		maxPageSize uint32
		pageToken   string
		filter      string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Inventory().ListItems(cmd.Context(), rbx.ListInventoryItemsParams{
				UserID:      rbx.UserID(userID),
				MaxPageSize: rbx.PageSize(maxPageSize),
				PageToken:   pageToken,
				Filter:      filter,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&userID, "user-id", "U", 0, "User ID (required)")
	cmd.Flags().Uint32VarP(&maxPageSize, "max-page-size", "m", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&pageToken, "page-token", "t", "", "Token for the next page of results")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter expression, e.g. \"onlyCollectibles=true\"")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
