package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newUserRestrictionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user-restriction",
		Short: "Access the User Restrictions API",
	}
	cmd.AddCommand(newUserRestrictionGetCmd())
	cmd.AddCommand(newUserRestrictionUpdateCmd())
	cmd.AddCommand(newUserRestrictionListCmd())
	cmd.AddCommand(newUserRestrictionLogsCmd())
	return cmd
}

// restrictionPlaceID maps the optional --place-id flag to a pointer so
// an unset flag means universe scope rather than place 0.
func restrictionPlaceID(cmd *cobra.Command, placeID uint64) *rbx.PlaceID {
	if !cmd.Flags().Changed("place-id") {
		return nil
	}
	id := rbx.PlaceID(placeID)
	return &id
}

func newUserRestrictionGetCmd() *cobra.Command {
	var (
		universeID uint64
		placeID    uint64
		userID     uint64
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a user's restriction state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.UserRestriction(rbx.UniverseID(universeID)).
				Get(cmd.Context(), rbx.UserID(userID), restrictionPlaceID(cmd, placeID))
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID; universe-wide when unset")
	cmd.Flags().Uint64VarP(&userID, "user-id", "U", 0, "User ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newUserRestrictionUpdateCmd() *cobra.Command {
	var (
		universeID         uint64
		placeID            uint64
		userID             uint64
		active             bool
		duration           uint64
		privateReason      string
		displayReason      string
		excludeAltAccounts bool
		pretty             bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Restrict or unrestrict a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			params := rbx.UpdateUserRestrictionParams{
				UserID:             rbx.UserID(userID),
				PlaceID:            restrictionPlaceID(cmd, placeID),
				Active:             active,
				PrivateReason:      privateReason,
				DisplayReason:      displayReason,
				ExcludeAltAccounts: excludeAltAccounts,
			}
			if cmd.Flags().Changed("duration") {
				params.DurationSeconds = &duration
			}
			res, err := client.UserRestriction(rbx.UniverseID(universeID)).
				Update(cmd.Context(), params)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID; universe-wide when unset")
	cmd.Flags().Uint64VarP(&userID, "user-id", "U", 0, "User ID (required)")
	cmd.Flags().BoolVarP(&active, "active", "a", false, "Whether the restriction is in effect")
	cmd.Flags().Uint64VarP(&duration, "duration", "d", 0, "Restriction length in seconds; permanent when unset")
	cmd.Flags().StringVarP(&privateReason, "private-reason", "r", "", "Reason visible only to the developer")
	cmd.Flags().StringVarP(&displayReason, "display-reason", "R", "", "Reason shown to the restricted user")
	cmd.Flags().BoolVarP(&excludeAltAccounts, "exclude-alt-accounts", "x", false, "Do not extend the restriction to alt accounts")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newUserRestrictionListCmd() *cobra.Command {
	var (
		universeID  uint64
		placeID     uint64
		maxPageSize uint32
		pageToken   string
		filter      string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restricted users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.UserRestriction(rbx.UniverseID(universeID)).
				List(cmd.Context(), rbx.ListUserRestrictionsParams{
					PlaceID:     restrictionPlaceID(cmd, placeID),
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

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID; universe-wide when unset")
	cmd.Flags().Uint32VarP(&maxPageSize, "max-page-size", "m", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&pageToken, "page-token", "t", "", "Token for the next page of results")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter expression")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")

	return cmd
}

func newUserRestrictionLogsCmd() *cobra.Command {
	var (
		universeID  uint64
		placeID     uint64
		maxPageSize uint32
		pageToken   string
		filter      string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List restriction audit log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.UserRestriction(rbx.UniverseID(universeID)).
				ListLogs(cmd.Context(), rbx.ListUserRestrictionsParams{
					PlaceID:     restrictionPlaceID(cmd, placeID),
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

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID; universe-wide when unset")
	cmd.Flags().Uint32VarP(&maxPageSize, "max-page-size", "m", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&pageToken, "page-token", "t", "", "Token for the next page of results")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter expression")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")

	return cmd
}
