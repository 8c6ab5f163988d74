package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Access the Subscriptions API",
	}
	cmd.AddCommand(newSubscriptionGetCmd())
	return cmd
}

func newSubscriptionGetCmd() *cobra.Command {
	var (
		universeID   uint64
		product      string
		subscription string
		view         string
		pretty       bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a subscription within a subscription product",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			params := rbx.GetSubscriptionParams{
				UniverseID:   rbx.UniverseID(universeID),
				Product:      product,
				Subscription: subscription,
			}
			switch view {
			case "":
			case "basic":
				params.View = rbx.SubscriptionViewBasic
			case "full":
				params.View = rbx.SubscriptionViewFull
			default:
				return fmt.Errorf("--view must be \"basic\" or \"full\"")
			}
			res, err := client.Subscription().Get(cmd.Context(), params)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&product, "product", "r", "", "Subscription product ID (required)")
	cmd.Flags().StringVarP(&subscription, "subscription", "s", "", "Subscription ID (required)")
	cmd.Flags().StringVarP(&view, "view", "v", "", "Response view: basic or full")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("subscription")

	return cmd
}
