package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newMessagingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messaging",
		Short: "Access the Messaging API",
	}
	cmd.AddCommand(newMessagingPublishCmd())
	return cmd
}

func newMessagingPublishCmd() *cobra.Command {
	var (
		universeID uint64
		topic      string
		message    string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a message to a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.Messaging(rbx.UniverseID(universeID), topic).Publish(cmd.Context(), message); err != nil {
				return err
			}
			success("message published")
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Message topic (required)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message to send (required)")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
