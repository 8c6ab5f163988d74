package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newNotificationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notification",
		Short: "Access the Notifications API",
	}
	cmd.AddCommand(newNotificationSendCmd())
	return cmd
}

func newNotificationSendCmd() *cobra.Command {
	var (
		universeID uint64
		userID     uint64
		payload    string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send an experience notification to a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			var p rbx.NotificationPayload
			if err := json.Unmarshal([]byte(payload), &p); err != nil {
				return err
			}
			res, err := client.Notification(rbx.UniverseID(universeID)).Send(cmd.Context(), rbx.UserID(userID), p)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&userID, "user-id", "U", 0, "User ID (required)")
	cmd.Flags().StringVarP(&payload, "payload", "P", "", "JSON notification payload (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("payload")

	return cmd
}
