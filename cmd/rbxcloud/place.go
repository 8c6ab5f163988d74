package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newPlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Access the Place API",
	}
	cmd.AddCommand(newPlaceGetCmd())
	cmd.AddCommand(newPlaceUpdateNameCmd())
	cmd.AddCommand(newPlaceUpdateDescriptionCmd())
	cmd.AddCommand(newPlaceUpdateServerSizeCmd())
	return cmd
}

func newPlaceGetCmd() *cobra.Command {
	var (
		universeID uint64
		placeID    uint64
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get place information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Place(rbx.UniverseID(universeID), rbx.PlaceID(placeID)).Get(cmd.Context())
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")

	return cmd
}

func newPlaceUpdateNameCmd() *cobra.Command {
	var (
		universeID uint64
		placeID    uint64
		name       string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "update-name",
		Short: "Update the place's display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Place(rbx.UniverseID(universeID), rbx.PlaceID(placeID)).
				Update(cmd.Context(), "displayName", rbx.UpdatePlaceInfo{DisplayName: &name})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "New display name (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlaceUpdateDescriptionCmd() *cobra.Command {
	var (
		universeID  uint64
		placeID     uint64
		description string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "update-description",
		Short: "Update the place's description",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Place(rbx.UniverseID(universeID), rbx.PlaceID(placeID)).
				Update(cmd.Context(), "description", rbx.UpdatePlaceInfo{Description: &description})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newPlaceUpdateServerSizeCmd() *cobra.Command {
	var (
		universeID uint64
		placeID    uint64
		serverSize int32
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "update-server-size",
		Short: "Update the place's server size",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Place(rbx.UniverseID(universeID), rbx.PlaceID(placeID)).
				Update(cmd.Context(), "serverSize", rbx.UpdatePlaceInfo{ServerSize: &serverSize})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().Int32VarP(&serverSize, "server-size", "s", 0, "New server size (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")
	_ = cmd.MarkFlagRequired("server-size")

	return cmd
}
